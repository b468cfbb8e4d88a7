package models

import "time"

// Coordinates is a WGS84 position in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FlightRecord is one logged flight leg, already normalized by the importer.
// All hour fields are decimal hours, all counters are non-negative, and every
// numeric field defaults to zero when the source column was empty. TotalTime is
// independent of its component times (actual + simulated instrument need not
// sum to total instrument, and so on) and is never re-derived here.
type FlightRecord struct {
	Date time.Time `json:"date"` // calendar date, UTC midnight

	From       string       `json:"from"` // ICAO-style code, "" when unknown
	To         string       `json:"to"`
	FromCoords *Coordinates `json:"fromCoords,omitempty"`
	ToCoords   *Coordinates `json:"toCoords,omitempty"`

	AircraftType string `json:"aircraftType,omitempty"`
	Remarks      string `json:"remarks,omitempty"`

	TotalTime        float64 `json:"totalTime"`
	PICTime          float64 `json:"picTime"`
	SICTime          float64 `json:"sicTime"`
	DualTime         float64 `json:"dualTime"`
	NightTime        float64 `json:"nightTime"`
	XCTime           float64 `json:"xcTime"`
	XCNightTime      float64 `json:"xcNightTime"`
	InstrumentTime   float64 `json:"instrumentTime"`
	InstrumentSim    float64 `json:"instrumentSimTime"`
	InstrumentActual float64 `json:"instrumentActualTime"`

	DayLandings   int `json:"dayLandings"`
	NightLandings int `json:"nightLandings"`
	DayTakeoffs   int `json:"dayTakeoffs"`
	NightTakeoffs int `json:"nightTakeoffs"`

	Approaches int `json:"approaches"`
	Holds      int `json:"holds"`
}

// HasRoute reports whether the record can participate in route aggregation:
// both endpoints known and not a self-loop.
func (f *FlightRecord) HasRoute() bool {
	return f.From != "" && f.To != "" && f.From != f.To
}

// HasCoordinates reports whether both endpoints carry a known position.
func (f *FlightRecord) HasCoordinates() bool {
	return f.FromCoords != nil && f.ToCoords != nil
}
