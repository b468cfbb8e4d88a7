package stats

import (
	"fmt"
	"sort"
	"time"

	"flightsite/internal/format"
	"flightsite/internal/geo"
	"flightsite/internal/models"
)

// factPriority is the fixed walk order of the selector. It intentionally
// overrides candidate scores: scores only matter for filling leftover slots.
var factPriority = []string{
	"furthest_leg",
	"most_frequent_route",
	"biggest_day_hours",
	"unique_airports",
	"longest_flight_time",
	"avg_flight_duration",
	"longest_streak",
	"busiest_day_flights",
	"most_northern",
	"most_southern",
}

// SelectFunFacts picks up to max facts in two phases: first the fixed priority
// order, then any remaining candidates by score descending.
func SelectFunFacts(candidates []models.FunFact, max int) []models.FunFact {
	if len(candidates) == 0 || max <= 0 {
		return nil
	}
	byID := make(map[string]models.FunFact, len(candidates))
	for _, f := range candidates {
		if _, seen := byID[f.ID]; !seen {
			byID[f.ID] = f
		}
	}

	var chosen []models.FunFact
	picked := make(map[string]bool)
	for _, id := range factPriority {
		if len(chosen) >= max {
			break
		}
		if f, ok := byID[id]; ok {
			chosen = append(chosen, f)
			picked[id] = true
		}
	}

	if len(chosen) < max {
		remaining := make([]models.FunFact, 0)
		for _, f := range candidates {
			if !picked[f.ID] {
				remaining = append(remaining, f)
				picked[f.ID] = true
			}
		}
		sort.SliceStable(remaining, func(i, j int) bool {
			return remaining[i].Score > remaining[j].Score
		})
		for _, f := range remaining {
			if len(chosen) >= max {
				break
			}
			chosen = append(chosen, f)
		}
	}

	return chosen
}

// GenerateFunFacts runs every fact generator over the aggregate views. A
// generator with no qualifying data contributes nothing.
func GenerateFunFacts(records []models.FlightRecord, heatmap []models.DailyAggregate, mapRoutes []models.RouteAggregate) []models.FunFact {
	var facts []models.FunFact
	add := func(f models.FunFact, ok bool) {
		if ok && f.Value != "" {
			facts = append(facts, f)
		}
	}

	add(longestFlightFact(records))
	add(furthestLegFact(mapRoutes))
	add(biggestDayFact(heatmap))
	add(busiestDayFact(heatmap))
	add(mostFrequentRouteFact(mapRoutes))
	add(uniqueAirportsFact(records))
	north, south, ok := latitudeExtremeFacts(records)
	add(north, ok)
	add(south, ok)
	add(longestStreakFact(heatmap))
	add(averageFlightFact(records))

	return facts
}

func longestFlightFact(records []models.FlightRecord) (models.FunFact, bool) {
	var best *models.FlightRecord
	for i := range records {
		if records[i].TotalTime <= 0 {
			continue
		}
		if best == nil || records[i].TotalTime > best.TotalTime {
			best = &records[i]
		}
	}
	if best == nil {
		return models.FunFact{}, false
	}
	return models.FunFact{
		ID:     "longest_flight_time",
		Label:  "Longest flight",
		Value:  format.HoursLabel(best.TotalTime),
		Detail: fmt.Sprintf("%s → %s", best.From, best.To),
		Score:  6,
	}, true
}

func furthestLegFact(mapRoutes []models.RouteAggregate) (models.FunFact, bool) {
	var best *models.RouteAggregate
	var bestDist float64
	for i := range mapRoutes {
		r := &mapRoutes[i]
		if r.FromCoords == nil || r.ToCoords == nil {
			continue
		}
		dist := geo.DistanceNM(r.FromCoords.Lat, r.FromCoords.Lon, r.ToCoords.Lat, r.ToCoords.Lon)
		if dist > bestDist {
			bestDist = dist
			best = r
		}
	}
	if best == nil || bestDist <= 0 {
		return models.FunFact{}, false
	}
	return models.FunFact{
		ID:     "furthest_leg",
		Label:  "Furthest leg",
		Value:  format.NauticalMiles(bestDist),
		Detail: fmt.Sprintf("%s → %s", best.From, best.To),
		Score:  9,
	}, true
}

func biggestDayFact(heatmap []models.DailyAggregate) (models.FunFact, bool) {
	var best *models.DailyAggregate
	for i := range heatmap {
		if best == nil || heatmap[i].Hours > best.Hours {
			best = &heatmap[i]
		}
	}
	if best == nil || best.Hours <= 0 {
		return models.FunFact{}, false
	}
	return models.FunFact{
		ID:     "biggest_day_hours",
		Label:  "Longest day",
		Value:  format.HoursLabel(best.Hours),
		Detail: best.Date,
		Score:  8,
	}, true
}

func busiestDayFact(heatmap []models.DailyAggregate) (models.FunFact, bool) {
	var best *models.DailyAggregate
	for i := range heatmap {
		if best == nil || heatmap[i].Flights > best.Flights {
			best = &heatmap[i]
		}
	}
	if best == nil || best.Flights <= 0 {
		return models.FunFact{}, false
	}
	return models.FunFact{
		ID:     "busiest_day_flights",
		Label:  "Busiest day",
		Value:  fmt.Sprintf("%d flights", best.Flights),
		Detail: best.Date,
		Score:  5,
	}, true
}

func mostFrequentRouteFact(mapRoutes []models.RouteAggregate) (models.FunFact, bool) {
	var best *models.RouteAggregate
	for i := range mapRoutes {
		if best == nil || mapRoutes[i].Flights > best.Flights {
			best = &mapRoutes[i]
		}
	}
	if best == nil || best.Flights <= 0 {
		return models.FunFact{}, false
	}
	return models.FunFact{
		ID:     "most_frequent_route",
		Label:  "Most frequent route",
		Value:  fmt.Sprintf("%d legs", best.Flights),
		Detail: fmt.Sprintf("%s → %s", best.From, best.To),
		Score:  9,
	}, true
}

func uniqueAirportsFact(records []models.FlightRecord) (models.FunFact, bool) {
	counts := make(map[string]int)
	for i := range records {
		if records[i].From != "" {
			counts[records[i].From]++
		}
		if records[i].To != "" {
			counts[records[i].To]++
		}
	}
	if len(counts) == 0 {
		return models.FunFact{}, false
	}

	mostCommon := ""
	for code, n := range counts {
		if mostCommon == "" || n > counts[mostCommon] || (n == counts[mostCommon] && code < mostCommon) {
			mostCommon = code
		}
	}

	return models.FunFact{
		ID:     "unique_airports",
		Label:  "Airports visited",
		Value:  fmt.Sprintf("%d airports", len(counts)),
		Detail: fmt.Sprintf("Most common: %s (%d times)", mostCommon, counts[mostCommon]),
		Score:  10,
	}, true
}

func latitudeExtremeFacts(records []models.FlightRecord) (north, south models.FunFact, ok bool) {
	type visited struct {
		code string
		lat  float64
	}
	seen := make(map[string]float64)
	for i := range records {
		r := &records[i]
		if r.From != "" && r.FromCoords != nil {
			if _, dup := seen[r.From]; !dup {
				seen[r.From] = r.FromCoords.Lat
			}
		}
		if r.To != "" && r.ToCoords != nil {
			if _, dup := seen[r.To]; !dup {
				seen[r.To] = r.ToCoords.Lat
			}
		}
	}
	if len(seen) == 0 {
		return models.FunFact{}, models.FunFact{}, false
	}

	var mostNorth, mostSouth *visited
	for code, lat := range seen {
		v := visited{code: code, lat: lat}
		if mostNorth == nil || v.lat > mostNorth.lat || (v.lat == mostNorth.lat && v.code < mostNorth.code) {
			n := v
			mostNorth = &n
		}
		if mostSouth == nil || v.lat < mostSouth.lat || (v.lat == mostSouth.lat && v.code < mostSouth.code) {
			s := v
			mostSouth = &s
		}
	}

	north = models.FunFact{
		ID:     "most_northern",
		Label:  "Farthest north",
		Value:  format.Latitude(mostNorth.lat),
		Detail: mostNorth.code,
		Score:  6,
	}
	south = models.FunFact{
		ID:     "most_southern",
		Label:  "Farthest south",
		Value:  format.Latitude(mostSouth.lat),
		Detail: mostSouth.code,
		Score:  6,
	}
	return north, south, true
}

func longestStreakFact(heatmap []models.DailyAggregate) (models.FunFact, bool) {
	length, start, end := LongestStreak(heatmap)
	if length <= 1 {
		return models.FunFact{}, false
	}
	return models.FunFact{
		ID:     "longest_streak",
		Label:  "Longest streak",
		Value:  fmt.Sprintf("%d days", length),
		Detail: fmt.Sprintf("%s → %s", start, end),
		Score:  7,
	}, true
}

// LongestStreak finds the longest run of consecutive calendar dates with at
// least one flight. Heatmap rows arrive sorted ascending by date; a run
// extends only when the gap to the previous flying date is exactly one day.
func LongestStreak(heatmap []models.DailyAggregate) (length int, start, end string) {
	var prev time.Time
	var curLen int
	var curStart string

	for _, d := range heatmap {
		if d.Flights <= 0 {
			continue
		}
		day, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			continue
		}
		if curLen > 0 && day.Sub(prev) == 24*time.Hour {
			curLen++
		} else {
			curLen = 1
			curStart = d.Date
		}
		if curLen > length {
			length = curLen
			start = curStart
			end = d.Date
		}
		prev = day
	}
	return length, start, end
}

func averageFlightFact(records []models.FlightRecord) (models.FunFact, bool) {
	if len(records) == 0 {
		return models.FunFact{}, false
	}
	var total float64
	for i := range records {
		total += records[i].TotalTime
	}
	avg := total / float64(len(records))
	if avg <= 0 {
		return models.FunFact{}, false
	}
	return models.FunFact{
		ID:     "avg_flight_duration",
		Label:  "Average flight",
		Value:  format.HoursLabel(avg),
		Detail: fmt.Sprintf("Across %d flights", len(records)),
		Score:  5,
	}, true
}
