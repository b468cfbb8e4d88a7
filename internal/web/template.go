package web

// profileTemplate is the pilot profile page. Charts are embedded as
// pre-rendered fragments.
const profileTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Name}} - Flight Logbook</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f5f7fa; color: #1f2937; }
.container { max-width: 960px; margin: 0 auto; padding: 24px; }
header { margin-bottom: 24px; }
header h1 { margin: 0 0 4px; font-size: 28px; }
header .handle { color: #6b7280; font-size: 14px; }
.bio { margin: 12px 0; color: #374151; }
section { background: #ffffff; border-radius: 8px; padding: 20px; margin-bottom: 20px; box-shadow: 0 1px 2px rgba(0,0,0,0.06); }
section h2 { margin: 0 0 16px; font-size: 18px; }
.cards { display: flex; flex-wrap: wrap; gap: 12px; }
.card { flex: 1 1 120px; background: #f9fafb; border-radius: 6px; padding: 12px; text-align: center; }
.card .value { font-size: 22px; font-weight: 600; }
.card .label { font-size: 12px; color: #6b7280; text-transform: uppercase; }
table { width: 100%; border-collapse: collapse; font-size: 14px; }
th, td { text-align: left; padding: 8px 10px; border-bottom: 1px solid #e5e7eb; }
th { color: #6b7280; font-weight: 500; font-size: 12px; text-transform: uppercase; }
.current-yes { color: #059669; font-weight: 600; }
.current-no { color: #dc2626; font-weight: 600; }
.facts { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 12px; }
.fact { background: #eef2ff; border-radius: 6px; padding: 14px; }
.fact .label { font-size: 12px; color: #4338ca; text-transform: uppercase; }
.fact .value { font-size: 20px; font-weight: 600; margin: 4px 0; }
.fact .detail { font-size: 13px; color: #6b7280; }
footer { text-align: center; color: #9ca3af; font-size: 12px; padding: 16px 0; }
</style>
</head>
<body>
<div class="container">
<header>
<h1>{{.Name}}</h1>
<div class="handle">@{{.Handle}}</div>
{{if .BioHTML}}<div class="bio">{{.BioHTML}}</div>{{end}}
</header>

<section>
<h2>Career Totals</h2>
<div class="cards">
{{range .TotalCards}}<div class="card"><div class="value">{{.Value}}</div><div class="label">{{.Label}}</div></div>
{{end}}</div>
</section>

<section>
<h2>Last 90 Days</h2>
<div class="cards">
{{range .Last90Cards}}<div class="card"><div class="value">{{.Value}}</div><div class="label">{{.Label}}</div></div>
{{end}}</div>
</section>

<section>
<h2>Currency</h2>
<table>
<thead><tr><th>Type</th><th>Requirement</th><th>Window</th><th>Logged</th><th>Status</th></tr></thead>
<tbody>
{{range .Currency}}<tr>
<td>{{.Name}}</td>
<td>{{.Requirement}}</td>
<td>{{.Window}}</td>
<td>{{.Counts}}</td>
<td>{{if .Current}}<span class="current-yes">Current</span>{{else}}<span class="current-no">Not current</span>{{end}}</td>
</tr>
{{end}}</tbody>
</table>
</section>

{{if .Facts}}<section>
<h2>Highlights</h2>
<div class="facts">
{{range .Facts}}<div class="fact">
<div class="label">{{.Label}}</div>
<div class="value">{{.Value}}</div>
{{if .Detail}}<div class="detail">{{.Detail}}</div>{{end}}
</div>
{{end}}</div>
</section>{{end}}

<section>
<h2>Hours by Month</h2>
{{.MonthlyChart}}
</section>

<section>
<h2>Activity</h2>
{{.HeatmapChart}}
</section>

{{if .Recent}}<section>
<h2>Recent Flights</h2>
<table>
<thead><tr><th>Date</th><th>Route</th><th>Aircraft</th><th>Hours</th><th>Landings</th></tr></thead>
<tbody>
{{range .Recent}}<tr><td>{{.Date}}</td><td>{{.Route}}</td><td>{{.Aircraft}}</td><td>{{.Hours}}</td><td>{{.Landings}}</td></tr>
{{end}}</tbody>
</table>
</section>{{end}}

{{if .Routes}}<section>
<h2>Top Routes</h2>
<table>
<thead><tr><th>Route</th><th>Flights</th><th>Hours</th><th>Last Flown</th></tr></thead>
<tbody>
{{range .Routes}}<tr><td>{{.Route}}</td><td>{{.Flights}}</td><td>{{.Hours}}</td><td>{{.LastFlown}}</td></tr>
{{end}}</tbody>
</table>
</section>{{end}}

<footer>Generated {{.GeneratedAt}} &middot; v{{.Version}}</footer>
</div>
</body>
</html>
`
