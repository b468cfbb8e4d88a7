package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"flightsite/internal/config"
	"flightsite/internal/format"
	"flightsite/internal/logger"
	"flightsite/internal/models"
	"flightsite/internal/stats"
)

// Profile carries everything the profile page needs
type Profile struct {
	Handle string
	Name   string
	Bio    string
	Bundle *models.StatsBundle
}

// ProfileBuilder renders pilot profile pages
type ProfileBuilder struct {
	charts   *ChartBuilder
	goldmark goldmark.Markdown
	log      *logger.Logger
}

// NewProfileBuilder creates a profile page builder
func NewProfileBuilder() *ProfileBuilder {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)
	return &ProfileBuilder{
		charts:   NewChartBuilder(),
		goldmark: md,
		log:      logger.WithComponent("web"),
	}
}

type statCard struct {
	Label string
	Value string
}

type currencyRow struct {
	Name        string
	Requirement string
	Window      string
	Counts      string
	Current     bool
}

type routeRow struct {
	Route     string
	Flights   string
	Hours     string
	LastFlown string
}

type flightRow struct {
	Date     string
	Route    string
	Aircraft string
	Hours    string
	Landings string
}

type factCard struct {
	Label  string
	Value  string
	Detail string
}

type profileData struct {
	Name        string
	Handle      string
	BioHTML     template.HTML
	GeneratedAt string
	Version     string

	TotalCards  []statCard
	Last90Cards []statCard
	Currency    []currencyRow
	Facts       []factCard
	Routes      []routeRow
	Recent      []flightRow

	MonthlyChart template.HTML
	HeatmapChart template.HTML
}

// BuildPage renders the full profile page for a pilot
func (pb *ProfileBuilder) BuildPage(p *Profile) (string, error) {
	bundle := p.Bundle
	if bundle == nil {
		return "", fmt.Errorf("no stats bundle for pilot %q", p.Handle)
	}

	bioHTML, err := pb.renderBio(p.Bio)
	if err != nil {
		return "", err
	}

	monthlyChart, err := pb.charts.MonthlyBarChart(bundle.Monthly)
	if err != nil {
		pb.log.Warn("monthly chart unavailable", logger.Fields{"handle": p.Handle, "error": err.Error()})
		monthlyChart = "<p>Monthly chart unavailable</p>"
	}
	heatmapChart, err := pb.charts.ActivityHeatmap(bundle.Heatmap)
	if err != nil {
		pb.log.Warn("activity heatmap unavailable", logger.Fields{"handle": p.Handle, "error": err.Error()})
		heatmapChart = "<p>Activity heatmap unavailable</p>"
	}

	name := p.Name
	if name == "" {
		name = p.Handle
	}

	data := profileData{
		Name:         name,
		Handle:       p.Handle,
		BioHTML:      template.HTML(bioHTML),
		GeneratedAt:  bundle.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"),
		Version:      config.GetVersion(),
		TotalCards:   totalCards(bundle.Totals),
		Last90Cards:  last90Cards(bundle.Last90),
		Currency:     currencyRows(bundle.Currency),
		Facts:        factCards(stats.SelectFunFacts(bundle.FunFacts, stats.FactBudgetFull)),
		Routes:       routeRows(bundle.Routes, 10),
		Recent:       flightRows(bundle.Recent),
		MonthlyChart: template.HTML(monthlyChart),
		HeatmapChart: template.HTML(heatmapChart),
	}

	tmpl, err := template.New("profile").Parse(profileTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse profile template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute profile template: %w", err)
	}
	return buf.String(), nil
}

// renderBio converts the pilot's markdown bio to HTML
func (pb *ProfileBuilder) renderBio(bio string) (string, error) {
	if bio == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := pb.goldmark.Convert([]byte(bio), &buf); err != nil {
		return "", fmt.Errorf("failed to convert bio markdown: %w", err)
	}
	return buf.String(), nil
}

func totalCards(b models.AggregateBucket) []statCard {
	return []statCard{
		{"Total time", format.Hours(b.TotalTime)},
		{"Flights", format.Count(b.Flights)},
		{"PIC", format.Hours(b.PICTime)},
		{"Night", format.Hours(b.NightTime)},
		{"Cross country", format.Hours(b.XCTime)},
		{"Instrument", format.Hours(b.InstrumentTime)},
		{"Landings", format.Count(b.Landings)},
	}
}

func last90Cards(b models.AggregateBucket) []statCard {
	return []statCard{
		{"Hours", format.Hours(b.TotalTime)},
		{"Flights", format.Count(b.Flights)},
		{"Landings", format.Count(b.Landings)},
		{"Approaches", format.Count(b.Approaches)},
	}
}

func currencyRows(c models.CurrencyReport) []currencyRow {
	row := func(name string, r models.CurrencyWindowResult, counts string) currencyRow {
		sep := ".."
		if r.EndExclusive {
			sep = "..<"
		}
		return currencyRow{
			Name:        name,
			Requirement: r.Requirement,
			Window: r.WindowStart.Format("2006-01-02") + sep +
				r.WindowEnd.Format("2006-01-02"),
			Counts:  counts,
			Current: r.Current,
		}
	}
	return []currencyRow{
		row("Day", c.Day, fmt.Sprintf("%d takeoffs / %d landings", c.Day.Takeoffs, c.Day.Landings)),
		row("Night", c.Night, fmt.Sprintf("%d takeoffs / %d landings", c.Night.Takeoffs, c.Night.Landings)),
		row("Instrument", c.IFR, fmt.Sprintf("%d approaches / %d holds", c.IFR.Approaches, c.IFR.Holds)),
	}
}

func factCards(facts []models.FunFact) []factCard {
	cards := make([]factCard, 0, len(facts))
	for _, f := range facts {
		cards = append(cards, factCard{Label: f.Label, Value: f.Value, Detail: f.Detail})
	}
	return cards
}

func routeRows(routes []models.RouteAggregate, limit int) []routeRow {
	if limit > 0 && limit < len(routes) {
		routes = routes[:limit]
	}
	rows := make([]routeRow, 0, len(routes))
	for _, r := range routes {
		lastFlown := ""
		if !r.LastFlown.IsZero() {
			lastFlown = r.LastFlown.Format("2006-01-02")
		}
		rows = append(rows, routeRow{
			Route:     r.From + " - " + r.To,
			Flights:   format.Count(r.Flights),
			Hours:     format.Hours(r.Hours),
			LastFlown: lastFlown,
		})
	}
	return rows
}

func flightRows(recent []models.RecentFlight) []flightRow {
	rows := make([]flightRow, 0, len(recent))
	for _, f := range recent {
		route := f.From
		if f.To != "" {
			route += " - " + f.To
		}
		rows = append(rows, flightRow{
			Date:     f.Date,
			Route:    route,
			Aircraft: f.AircraftType,
			Hours:    format.Hours(f.Hours),
			Landings: format.Count(f.Landings),
		})
	}
	return rows
}

// BuildSnapshotFiles renders the files published for a profile snapshot:
// the page itself, the raw bundle, and a static monthly chart.
func (pb *ProfileBuilder) BuildSnapshotFiles(p *Profile) (map[string][]byte, error) {
	page, err := pb.BuildPage(p)
	if err != nil {
		return nil, err
	}

	bundleJSON, err := json.Marshal(p.Bundle)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stats bundle: %w", err)
	}

	files := map[string][]byte{
		"index.html":  []byte(page),
		"bundle.json": bundleJSON,
	}

	if png, err := pb.charts.MonthlyPNG(p.Bundle.Monthly); err == nil {
		files["monthly.png"] = png
	} else {
		pb.log.Warn("monthly PNG skipped", logger.Fields{"handle": p.Handle, "error": err.Error()})
	}

	return files, nil
}
