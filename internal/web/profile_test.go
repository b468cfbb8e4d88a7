package web

import (
	"strings"
	"testing"
	"time"

	"flightsite/internal/models"
)

func sampleBundle() *models.StatsBundle {
	return &models.StatsBundle{
		GeneratedAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		Totals: models.AggregateBucket{
			Flights: 240, TotalTime: 512.3, PICTime: 460.1, NightTime: 120.4,
			XCTime: 498.0, InstrumentTime: 88.2, Landings: 240,
		},
		Last90: models.AggregateBucket{
			Flights: 80, TotalTime: 160.5, Landings: 80, Approaches: 52,
		},
		Monthly: []models.MonthlyTotal{
			{Month: "2024-04", Hours: 82.1},
			{Month: "2024-05", Hours: 78.5},
		},
		Heatmap: []models.DailyAggregate{
			{Date: "2024-05-01", Hours: 3.2, Flights: 2},
			{Date: "2024-05-02", Hours: 1.5, Flights: 1},
		},
		Routes: []models.RouteAggregate{
			{From: "KSLC", To: "KDEN", Flights: 14, Hours: 21.3,
				LastFlown: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		},
		Currency: models.CurrencyReport{
			Day: models.CurrencyWindowResult{
				Requirement: "≥3 takeoffs & landings in last 90 days",
				WindowStart: time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
				WindowEnd:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
				Takeoffs:    80, Landings: 80, Current: true,
			},
			Night: models.CurrencyWindowResult{
				Requirement: "≥3 night takeoffs & landings in last 90 days (full-stop requirement not verified here)",
				Takeoffs:    2, Landings: 2, Current: false,
			},
			IFR: models.CurrencyWindowResult{
				Requirement:  "Instrument: ≥6 approaches + holding within preceding 6 calendar months (intercept/track not tracked)",
				Approaches:   30, Holds: 4, Current: true,
				EndExclusive: true,
			},
		},
		Recent: []models.RecentFlight{
			{Date: "2024-06-14", From: "KSLC", To: "KDEN", AircraftType: "A320", Hours: 1.5, Landings: 1},
			{Date: "2024-06-13", From: "KDEN", To: "KSLC", AircraftType: "A320", Hours: 1.6, Landings: 1},
		},
		FunFacts: []models.FunFact{
			{ID: "furthest_leg", Label: "Furthest leg", Value: "1630 nm", Detail: "KSLC - KANC", Score: 9},
			{ID: "unique_airports", Label: "Airports visited", Value: "31 airports", Detail: "Most common: KSLC (188 times)", Score: 10},
		},
	}
}

func TestBuildPage(t *testing.T) {
	builder := NewProfileBuilder()

	page, err := builder.BuildPage(&Profile{
		Handle: "jane",
		Name:   "Jane Doe",
		Bio:    "Airline pilot flying the **A320** out of Salt Lake City.",
		Bundle: sampleBundle(),
	})
	if err != nil {
		t.Fatalf("Expected build to succeed, got: %v", err)
	}

	for _, want := range []string{
		"Jane Doe",
		"@jane",
		"<strong>A320</strong>",
		"512.3",
		"Last 90 Days",
		"Furthest leg",
		"1630 nm",
		"KSLC - KDEN",
		"Recent Flights",
		"2024-06-14",
		"Current",
		"Not current",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
}

func TestBuildPageSelectsFacts(t *testing.T) {
	builder := NewProfileBuilder()

	// Full candidate list in generator order; the page must apply the
	// priority-then-score budget, not render all of them.
	bundle := sampleBundle()
	bundle.FunFacts = []models.FunFact{
		{ID: "longest_flight_time", Label: "Longest flight", Value: "5.0 h", Score: 5},
		{ID: "furthest_leg", Label: "Furthest leg", Value: "1630 nm", Score: 9},
		{ID: "biggest_day_hours", Label: "Biggest day", Value: "8.2 h", Score: 8},
		{ID: "busiest_day_flights", Label: "Busiest day", Value: "3 flights", Score: 3},
		{ID: "most_frequent_route", Label: "Most flown route", Value: "KSLC - KDEN", Score: 7},
		{ID: "unique_airports", Label: "Airports visited", Value: "31 airports", Score: 10},
		{ID: "avg_flight_duration", Label: "Average flight", Value: "2.1 h", Score: 4},
		{ID: "longest_streak", Label: "Longest streak", Value: "7 days", Score: 6},
		{ID: "most_northern", Label: "Most northern", Value: "61.17°N", Score: 2},
		{ID: "most_southern", Label: "Most southern", Value: "33.94°S", Score: 1},
	}

	page, err := builder.BuildPage(&Profile{Handle: "jane", Bundle: bundle})
	if err != nil {
		t.Fatalf("Expected build to succeed, got: %v", err)
	}

	if got := strings.Count(page, `<div class="fact">`); got != 6 {
		t.Errorf("Expected 6 fact cards on the page, got %d", got)
	}
	furthest := strings.Index(page, "Furthest leg")
	longest := strings.Index(page, "Longest flight")
	if furthest == -1 || longest == -1 {
		t.Fatal("Expected both priority facts on the page")
	}
	if furthest > longest {
		t.Error("Expected priority order, with the furthest leg before the longest flight")
	}
	if strings.Contains(page, "Most southern") {
		t.Error("Expected facts past the budget to be dropped")
	}
}

func TestBuildPageFallsBackToHandle(t *testing.T) {
	builder := NewProfileBuilder()

	page, err := builder.BuildPage(&Profile{Handle: "demo", Bundle: sampleBundle()})
	if err != nil {
		t.Fatalf("Expected build to succeed, got: %v", err)
	}
	if !strings.Contains(page, "<h1>demo</h1>") {
		t.Error("Expected handle used as display name when name empty")
	}
}

func TestBuildPageNilBundle(t *testing.T) {
	builder := NewProfileBuilder()

	if _, err := builder.BuildPage(&Profile{Handle: "jane"}); err == nil {
		t.Error("Expected error for missing bundle")
	}
}

func TestBuildPageEscapesPilotInput(t *testing.T) {
	builder := NewProfileBuilder()

	page, err := builder.BuildPage(&Profile{
		Handle: "jane",
		Name:   "<script>alert(1)</script>",
		Bundle: sampleBundle(),
	})
	if err != nil {
		t.Fatalf("Expected build to succeed, got: %v", err)
	}
	if strings.Contains(page, "<script>alert(1)</script>") {
		t.Error("Expected pilot name to be HTML-escaped")
	}
}

func TestBuildSnapshotFiles(t *testing.T) {
	builder := NewProfileBuilder()

	files, err := builder.BuildSnapshotFiles(&Profile{
		Handle: "jane",
		Name:   "Jane Doe",
		Bundle: sampleBundle(),
	})
	if err != nil {
		t.Fatalf("Expected snapshot build to succeed, got: %v", err)
	}

	if _, ok := files["index.html"]; !ok {
		t.Error("Expected index.html in snapshot files")
	}
	if data, ok := files["bundle.json"]; !ok {
		t.Error("Expected bundle.json in snapshot files")
	} else if !strings.Contains(string(data), "furthest_leg") {
		t.Error("Expected bundle JSON to carry fun facts")
	}
	if png, ok := files["monthly.png"]; !ok {
		t.Error("Expected monthly.png in snapshot files")
	} else if len(png) == 0 {
		t.Error("Expected non-empty PNG data")
	}
}

func TestMonthlyBarChart(t *testing.T) {
	cb := NewChartBuilder()

	html, err := cb.MonthlyBarChart([]models.MonthlyTotal{
		{Month: "2024-04", Hours: 82.1},
		{Month: "2024-05", Hours: 78.5},
	})
	if err != nil {
		t.Fatalf("Expected chart render to succeed, got: %v", err)
	}
	if !strings.Contains(html, "2024-04") {
		t.Error("Expected month labels in chart output")
	}
	if !strings.Contains(html, "echarts") {
		t.Error("Expected echarts runtime reference in chart output")
	}
}

func TestActivityHeatmap(t *testing.T) {
	cb := NewChartBuilder()

	html, err := cb.ActivityHeatmap([]models.DailyAggregate{
		{Date: "2024-05-01", Hours: 3.2, Flights: 2},
		{Date: "2024-05-08", Hours: 1.5, Flights: 1},
	})
	if err != nil {
		t.Fatalf("Expected heatmap render to succeed, got: %v", err)
	}
	if !strings.Contains(html, "Mon") {
		t.Error("Expected weekday labels in heatmap output")
	}
}

func TestMonthlyPNGEmptyData(t *testing.T) {
	cb := NewChartBuilder()

	if _, err := cb.MonthlyPNG(nil); err == nil {
		t.Error("Expected error for empty monthly data")
	}
}
