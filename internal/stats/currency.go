package stats

import (
	"time"

	"flightsite/internal/models"
)

const (
	dayCurrencyRequirement   = "≥3 takeoffs & landings in last 90 days"
	nightCurrencyRequirement = "≥3 night takeoffs & landings in last 90 days (full-stop requirement not verified here)"
	ifrCurrencyRequirement   = "Instrument: ≥6 approaches + holding within preceding 6 calendar months (intercept/track not tracked)"
)

// EvaluateCurrency runs all three recency requirements against the records as
// of the given date.
func EvaluateCurrency(records []models.FlightRecord, now time.Time) models.CurrencyReport {
	return models.CurrencyReport{
		Day:   EvaluateDayCurrency(records, now),
		Night: EvaluateNightCurrency(records, now),
		IFR:   EvaluateIFRCurrency(records, now),
	}
}

// EvaluateDayCurrency counts day takeoffs and landings over the rolling 90-day
// window. Current when the lesser of the two counts reaches 3.
func EvaluateDayCurrency(records []models.FlightRecord, now time.Time) models.CurrencyWindowResult {
	win := Last90Window(now)
	b := ComputeWindowedTotals(records, win)
	return models.CurrencyWindowResult{
		Requirement: dayCurrencyRequirement,
		WindowStart: win.Start,
		WindowEnd:   win.End,
		Takeoffs:    b.DayTakeoffs,
		Landings:    b.DayLandings,
		Current:     min(b.DayTakeoffs, b.DayLandings) >= 3,
	}
}

// EvaluateNightCurrency applies the same rule to the night counters. The
// record model has no full-stop flag, so the full-stop distinction required by
// the actual night rule is knowingly not verified.
func EvaluateNightCurrency(records []models.FlightRecord, now time.Time) models.CurrencyWindowResult {
	win := Last90Window(now)
	b := ComputeWindowedTotals(records, win)
	return models.CurrencyWindowResult{
		Requirement: nightCurrencyRequirement,
		WindowStart: win.Start,
		WindowEnd:   win.End,
		Takeoffs:    b.NightTakeoffs,
		Landings:    b.NightLandings,
		Current:     min(b.NightTakeoffs, b.NightLandings) >= 3,
	}
}

// EvaluateIFRCurrency sums approaches and holds over the preceding six full
// calendar months. Current here means "tracked items satisfied", not full
// legal instrument currency: the intercept-and-track task is not representable
// in the record model, so this is a deliberate proxy.
func EvaluateIFRCurrency(records []models.FlightRecord, now time.Time) models.CurrencyWindowResult {
	win := PrecedingCalendarMonths(now, 6)
	b := ComputeWindowedTotals(records, win)
	return models.CurrencyWindowResult{
		Requirement:      ifrCurrencyRequirement,
		WindowStart:      win.Start,
		WindowEnd:        win.End,
		EndExclusive:     true,
		Approaches:       b.Approaches,
		Holds:            b.Holds,
		InstrumentTime:   b.InstrumentTime,
		InstrumentSim:    b.InstrumentSim,
		InstrumentActual: b.InstrumentActual,
		Current:          b.Approaches >= 6 && b.Holds >= 1,
	}
}
