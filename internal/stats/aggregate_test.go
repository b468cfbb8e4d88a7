package stats

import (
	"math"
	"reflect"
	"testing"
	"time"

	"flightsite/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func flight(date string, mutate func(*models.FlightRecord)) models.FlightRecord {
	r := models.FlightRecord{Date: day(date)}
	if mutate != nil {
		mutate(&r)
	}
	return r
}

func TestComputeTotals(t *testing.T) {
	records := []models.FlightRecord{
		flight("2024-03-01", func(r *models.FlightRecord) {
			r.TotalTime = 1.5
			r.PICTime = 1.5
			r.NightTime = 0.4
			r.DayLandings = 1
			r.DayTakeoffs = 1
			r.Approaches = 2
		}),
		flight("2024-03-02", func(r *models.FlightRecord) {
			r.TotalTime = 2.0
			r.SICTime = 2.0
			r.NightLandings = 2
			r.NightTakeoffs = 2
			r.Holds = 1
		}),
	}

	got := ComputeTotals(records)

	if got.Flights != 2 {
		t.Errorf("Expected 2 flights, got %d", got.Flights)
	}
	if math.Abs(got.TotalTime-3.5) > 1e-9 {
		t.Errorf("Expected total time 3.5, got %v", got.TotalTime)
	}
	if got.Landings != 3 {
		t.Errorf("Expected 3 landings (day+night), got %d", got.Landings)
	}
	if got.DayLandings != 1 || got.NightLandings != 2 {
		t.Errorf("Expected day/night landings 1/2, got %d/%d", got.DayLandings, got.NightLandings)
	}
	if got.Approaches != 2 || got.Holds != 1 {
		t.Errorf("Expected approaches/holds 2/1, got %d/%d", got.Approaches, got.Holds)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(nil)
	if !reflect.DeepEqual(got, models.AggregateBucket{}) {
		t.Errorf("Expected all-zero bucket for empty input, got %+v", got)
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	records := []models.FlightRecord{
		flight("2024-01-05", func(r *models.FlightRecord) { r.TotalTime = 1.1; r.DayLandings = 1 }),
		flight("2024-01-07", func(r *models.FlightRecord) { r.TotalTime = 2.2; r.NightLandings = 1 }),
	}
	first := ComputeTotals(records)
	second := ComputeTotals(records)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results on repeated calls, got %+v then %+v", first, second)
	}
}

func TestComputeTotalsAdditivity(t *testing.T) {
	setA := []models.FlightRecord{
		flight("2024-01-01", func(r *models.FlightRecord) { r.TotalTime = 1.5; r.DayLandings = 1; r.Approaches = 1 }),
		flight("2024-01-02", func(r *models.FlightRecord) { r.TotalTime = 0.9; r.NightTime = 0.9 }),
	}
	setB := []models.FlightRecord{
		flight("2024-02-01", func(r *models.FlightRecord) { r.TotalTime = 3.0; r.NightLandings = 2; r.Holds = 1 }),
	}

	combined := ComputeTotals(append(append([]models.FlightRecord{}, setA...), setB...))
	a := ComputeTotals(setA)
	b := ComputeTotals(setB)

	if combined.Flights != a.Flights+b.Flights {
		t.Errorf("Expected flight count %d, got %d", a.Flights+b.Flights, combined.Flights)
	}
	if math.Abs(combined.TotalTime-(a.TotalTime+b.TotalTime)) > 1e-9 {
		t.Errorf("Expected total %v, got %v", a.TotalTime+b.TotalTime, combined.TotalTime)
	}
	if combined.Landings != a.Landings+b.Landings {
		t.Errorf("Expected landings %d, got %d", a.Landings+b.Landings, combined.Landings)
	}
	if combined.Approaches != a.Approaches+b.Approaches || combined.Holds != a.Holds+b.Holds {
		t.Errorf("Expected approaches/holds to add componentwise")
	}
}

func TestComputeMonthlySeries(t *testing.T) {
	records := []models.FlightRecord{
		flight("2024-02-10", func(r *models.FlightRecord) { r.TotalTime = 2.0 }),
		flight("2024-01-15", func(r *models.FlightRecord) { r.TotalTime = 1.5 }),
		flight("2024-01-20", func(r *models.FlightRecord) { r.TotalTime = 1.0 }),
	}

	got := ComputeMonthlySeries(records)

	want := []models.MonthlyTotal{
		{Month: "2024-01", Hours: 2.5},
		{Month: "2024-02", Hours: 2.0},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d months, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Month != want[i].Month {
			t.Errorf("Expected month %s at index %d, got %s", want[i].Month, i, got[i].Month)
		}
		if math.Abs(got[i].Hours-want[i].Hours) > 1e-9 {
			t.Errorf("Expected %v hours for %s, got %v", want[i].Hours, want[i].Month, got[i].Hours)
		}
	}
}

func TestComputeMonthlySeriesEmpty(t *testing.T) {
	if got := ComputeMonthlySeries(nil); len(got) != 0 {
		t.Errorf("Expected empty series, got %v", got)
	}
}

func TestComputeDailyHeatmap(t *testing.T) {
	records := []models.FlightRecord{
		flight("2024-03-02", func(r *models.FlightRecord) { r.TotalTime = 1.0 }),
		flight("2024-03-01", func(r *models.FlightRecord) { r.TotalTime = 1.5 }),
		flight("2024-03-01", func(r *models.FlightRecord) { r.TotalTime = 2.0 }),
	}

	got := ComputeDailyHeatmap(records)

	if len(got) != 2 {
		t.Fatalf("Expected 2 days, got %d", len(got))
	}
	if got[0].Date != "2024-03-01" || got[1].Date != "2024-03-02" {
		t.Errorf("Expected ascending date order, got %s then %s", got[0].Date, got[1].Date)
	}
	if got[0].Flights != 2 {
		t.Errorf("Expected 2 flights on 2024-03-01, got %d", got[0].Flights)
	}
	if math.Abs(got[0].Hours-3.5) > 1e-9 {
		t.Errorf("Expected 3.5 hours on 2024-03-01, got %v", got[0].Hours)
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.04, 1.0},
		{1.05, 1.1},
		{3.1000000000000005, 3.1},
		{41, 41},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Round1(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestRoundingHappensOnceNotDuringSummation(t *testing.T) {
	// Many values that individually round down must still sum exactly.
	var records []models.FlightRecord
	for i := 0; i < 10; i++ {
		records = append(records, flight("2024-05-01", func(r *models.FlightRecord) { r.TotalTime = 0.33 }))
	}
	got := ComputeTotals(records)
	if Round1(got.TotalTime) != 3.3 {
		t.Errorf("Expected sum-then-round to yield 3.3, got %v", Round1(got.TotalTime))
	}
}
