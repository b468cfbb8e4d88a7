package stats

import (
	"time"

	"flightsite/internal/models"
)

// Default fact budgets for the two presentation contexts.
const (
	FactBudgetCards = 4 // public card grid
	FactBudgetFull  = 6 // pilot profile page
)

// RecentFlightsLimit caps the recent-flights table on the profile page.
const RecentFlightsLimit = 10

// BuildStatsBundle runs the whole pipeline over one pilot's records: totals,
// windowed totals, monthly series, daily heatmap, both route aggregations,
// currency, and the full candidate fact list. Deterministic for a fixed
// records slice and now; the caller owns persistence and presentation.
func BuildStatsBundle(records []models.FlightRecord, now time.Time) *models.StatsBundle {
	heatmap := ComputeDailyHeatmap(records)
	mapRoutes := AggregateRoutesUndirected(records)

	bundle := &models.StatsBundle{
		GeneratedAt: now.UTC(),
		Totals:      RoundBucket(ComputeTotals(records)),
		Last90:      RoundBucket(ComputeWindowedTotals(records, Last90Window(now))),
		Monthly:     ComputeMonthlySeries(records),
		Heatmap:     heatmap,
		Routes:      AggregateRoutesDirected(records),
		MapRoutes:   mapRoutes,
		Recent:      ComputeRecentFlights(records, RecentFlightsLimit),
		Currency:    EvaluateCurrency(records, now),
		FunFacts:    GenerateFunFacts(records, heatmap, mapRoutes),
	}

	for i := range bundle.Monthly {
		bundle.Monthly[i].Hours = Round1(bundle.Monthly[i].Hours)
	}
	for i := range bundle.Heatmap {
		bundle.Heatmap[i].Hours = Round1(bundle.Heatmap[i].Hours)
	}
	for i := range bundle.Routes {
		bundle.Routes[i].Hours = Round1(bundle.Routes[i].Hours)
	}
	for i := range bundle.MapRoutes {
		bundle.MapRoutes[i].Hours = Round1(bundle.MapRoutes[i].Hours)
	}

	return bundle
}
