package stats

import (
	"sort"

	"flightsite/internal/models"
)

// AggregateRoutesDirected groups flights by exact (from, to) pair, preserving
// direction, for the "most flown legs" table. Sorted by flight count
// descending, ties broken by most recent last-flown date. Records with a
// missing endpoint or a self-loop are excluded.
func AggregateRoutesDirected(records []models.FlightRecord) []models.RouteAggregate {
	byKey := make(map[string]*models.RouteAggregate)
	for i := range records {
		r := &records[i]
		if !r.HasRoute() {
			continue
		}
		key := r.From + "-" + r.To
		agg := byKey[key]
		if agg == nil {
			agg = &models.RouteAggregate{
				From:       r.From,
				To:         r.To,
				FromCoords: r.FromCoords,
				ToCoords:   r.ToCoords,
			}
			byKey[key] = agg
		}
		agg.Flights++
		agg.Hours += r.TotalTime
		day := DateOnly(r.Date)
		if day.After(agg.LastFlown) {
			agg.LastFlown = day
		}
		if agg.FromCoords == nil {
			agg.FromCoords = r.FromCoords
		}
		if agg.ToCoords == nil {
			agg.ToCoords = r.ToCoords
		}
	}

	out := materializeRoutes(byKey)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Flights != out[j].Flights {
			return out[i].Flights > out[j].Flights
		}
		if !out[i].LastFlown.Equal(out[j].LastFlown) {
			return out[i].LastFlown.After(out[j].LastFlown)
		}
		return out[i].From+out[i].To < out[j].From+out[j].To
	})
	return out
}

// AggregateRoutesUndirected normalizes each pair lexicographically before
// grouping, so A→B and B→A land in the same bucket. The representative
// from/to is the sorted order. Used for map density and distance facts.
func AggregateRoutesUndirected(records []models.FlightRecord) []models.RouteAggregate {
	byKey := make(map[string]*models.RouteAggregate)
	for i := range records {
		r := &records[i]
		if !r.HasRoute() {
			continue
		}
		from, to := r.From, r.To
		fromCoords, toCoords := r.FromCoords, r.ToCoords
		if to < from {
			from, to = to, from
			fromCoords, toCoords = toCoords, fromCoords
		}
		key := from + "-" + to
		agg := byKey[key]
		if agg == nil {
			agg = &models.RouteAggregate{From: from, To: to}
			byKey[key] = agg
		}
		agg.Flights++
		agg.Hours += r.TotalTime
		day := DateOnly(r.Date)
		if day.After(agg.LastFlown) {
			agg.LastFlown = day
		}
		if agg.FromCoords == nil {
			agg.FromCoords = fromCoords
		}
		if agg.ToCoords == nil {
			agg.ToCoords = toCoords
		}
	}

	out := materializeRoutes(byKey)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Flights != out[j].Flights {
			return out[i].Flights > out[j].Flights
		}
		return out[i].From+out[i].To < out[j].From+out[j].To
	})
	return out
}

func materializeRoutes(byKey map[string]*models.RouteAggregate) []models.RouteAggregate {
	out := make([]models.RouteAggregate, 0, len(byKey))
	for _, agg := range byKey {
		out = append(out, *agg)
	}
	return out
}
