package stats

import (
	"sort"

	"flightsite/internal/models"
)

// ComputeRecentFlights returns the newest flights, most recent first, capped
// at limit. Ordering among same-day flights preserves input order.
func ComputeRecentFlights(records []models.FlightRecord, limit int) []models.RecentFlight {
	indexed := make([]int, len(records))
	for i := range indexed {
		indexed[i] = i
	}
	sort.SliceStable(indexed, func(a, b int) bool {
		return records[indexed[a]].Date.After(records[indexed[b]].Date)
	})

	if limit > 0 && limit < len(indexed) {
		indexed = indexed[:limit]
	}

	out := make([]models.RecentFlight, 0, len(indexed))
	for _, i := range indexed {
		r := &records[i]
		out = append(out, models.RecentFlight{
			Date:         DateOnly(r.Date).Format("2006-01-02"),
			From:         r.From,
			To:           r.To,
			AircraftType: r.AircraftType,
			Hours:        Round1(r.TotalTime),
			Landings:     r.DayLandings + r.NightLandings,
		})
	}
	return out
}
