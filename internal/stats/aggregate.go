// Package stats is the aggregation and derived-metrics engine: pure,
// deterministic transformations from a slice of flight records into totals,
// time series, route tables, currency determinations, and highlight facts.
// Every window-sensitive function takes "now" as an explicit parameter so the
// whole package stays referentially transparent.
package stats

import (
	"math"
	"sort"

	"flightsite/internal/models"
)

// ComputeTotals sums every numeric field across the given records. Sums are
// carried in full precision; use Round1 at the presentation boundary.
func ComputeTotals(records []models.FlightRecord) models.AggregateBucket {
	var b models.AggregateBucket
	for i := range records {
		r := &records[i]
		b.Flights++
		b.TotalTime += r.TotalTime
		b.PICTime += r.PICTime
		b.SICTime += r.SICTime
		b.DualTime += r.DualTime
		b.NightTime += r.NightTime
		b.XCTime += r.XCTime
		b.XCNightTime += r.XCNightTime
		b.InstrumentTime += r.InstrumentTime
		b.InstrumentSim += r.InstrumentSim
		b.InstrumentActual += r.InstrumentActual
		b.DayLandings += r.DayLandings
		b.NightLandings += r.NightLandings
		b.DayTakeoffs += r.DayTakeoffs
		b.NightTakeoffs += r.NightTakeoffs
		b.Approaches += r.Approaches
		b.Holds += r.Holds
	}
	b.Landings = b.DayLandings + b.NightLandings
	return b
}

// ComputeWindowedTotals filters records to the window, then sums them.
func ComputeWindowedTotals(records []models.FlightRecord, win Window) models.AggregateBucket {
	return ComputeTotals(FilterWindow(records, win))
}

// FilterWindow returns the records whose date falls inside the window.
func FilterWindow(records []models.FlightRecord, win Window) []models.FlightRecord {
	var out []models.FlightRecord
	for _, r := range records {
		if win.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out
}

// ComputeMonthlySeries groups records by calendar month and sums total time,
// ordered ascending by the zero-padded "YYYY-MM" key.
func ComputeMonthlySeries(records []models.FlightRecord) []models.MonthlyTotal {
	byMonth := make(map[string]float64)
	for _, r := range records {
		byMonth[r.Date.UTC().Format("2006-01")] += r.TotalTime
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]models.MonthlyTotal, 0, len(months))
	for _, m := range months {
		out = append(out, models.MonthlyTotal{Month: m, Hours: byMonth[m]})
	}
	return out
}

// ComputeDailyHeatmap groups records by calendar date, summing hours and
// counting flights, ordered ascending by date. Days without flights are
// absent; the heatmap view fills gaps itself if it wants them.
func ComputeDailyHeatmap(records []models.FlightRecord) []models.DailyAggregate {
	type acc struct {
		hours   float64
		flights int
	}
	byDay := make(map[string]*acc)
	for _, r := range records {
		key := r.Date.UTC().Format("2006-01-02")
		a := byDay[key]
		if a == nil {
			a = &acc{}
			byDay[key] = a
		}
		a.hours += r.TotalTime
		a.flights++
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)

	out := make([]models.DailyAggregate, 0, len(days))
	for _, d := range days {
		out = append(out, models.DailyAggregate{Date: d, Hours: byDay[d].hours, Flights: byDay[d].flights})
	}
	return out
}

// Round1 rounds an hour sum to one decimal. Applied once per value, at the
// boundary, so intermediate sums never compound rounding error.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RoundBucket returns a copy of the bucket with every hour field rounded for
// serialization.
func RoundBucket(b models.AggregateBucket) models.AggregateBucket {
	b.TotalTime = Round1(b.TotalTime)
	b.PICTime = Round1(b.PICTime)
	b.SICTime = Round1(b.SICTime)
	b.DualTime = Round1(b.DualTime)
	b.NightTime = Round1(b.NightTime)
	b.XCTime = Round1(b.XCTime)
	b.XCNightTime = Round1(b.XCNightTime)
	b.InstrumentTime = Round1(b.InstrumentTime)
	b.InstrumentSim = Round1(b.InstrumentSim)
	b.InstrumentActual = Round1(b.InstrumentActual)
	return b
}
