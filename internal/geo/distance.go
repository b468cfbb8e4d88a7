// Package geo provides the great-circle distance used by route ranking and the
// furthest-leg highlight.
package geo

import "math"

const (
	earthRadiusMeters = 6371000 // mean radius
	metersPerNM       = 1852
)

// DistanceNM returns the haversine great-circle distance between two points in
// nautical miles. Inputs are decimal degrees. The result is finite and
// non-negative for any finite inputs; coincident points yield 0.
func DistanceNM(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c / metersPerNM
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
