package models

import "time"

// AggregateBucket is a componentwise sum of every numeric FlightRecord field
// over some filtered subset of records. Hour sums carry full float precision;
// rounding to one decimal happens once, at the serialization boundary.
type AggregateBucket struct {
	Flights  int `json:"flights"`
	Landings int `json:"landings"` // dayLandings + nightLandings

	TotalTime        float64 `json:"total"`
	PICTime          float64 `json:"pic"`
	SICTime          float64 `json:"sic"`
	DualTime         float64 `json:"dual"`
	NightTime        float64 `json:"night"`
	XCTime           float64 `json:"xc"`
	XCNightTime      float64 `json:"xcNight"`
	InstrumentTime   float64 `json:"instrument"`
	InstrumentSim    float64 `json:"instrumentSim"`
	InstrumentActual float64 `json:"instrumentActual"`

	DayLandings   int `json:"dayLandings"`
	NightLandings int `json:"nightLandings"`
	DayTakeoffs   int `json:"dayTakeoffs"`
	NightTakeoffs int `json:"nightTakeoffs"`
	Approaches    int `json:"approaches"`
	Holds         int `json:"holds"`
}

// DailyAggregate is one heatmap row: everything flown on a single calendar day.
// Days without flights are absent.
type DailyAggregate struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Hours   float64 `json:"hours"`
	Flights int     `json:"flights"`
}

// MonthlyTotal is one bar of the monthly hours chart.
type MonthlyTotal struct {
	Month string  `json:"month"` // YYYY-MM
	Hours float64 `json:"total"`
}

// RouteAggregate is one row per route leg. In directed mode From/To preserve
// flight direction; in undirected mode they are the lexicographically sorted
// pair representing both directions.
type RouteAggregate struct {
	From       string       `json:"from"`
	To         string       `json:"to"`
	FromCoords *Coordinates `json:"fromCoords,omitempty"`
	ToCoords   *Coordinates `json:"toCoords,omitempty"`
	Flights    int          `json:"flights"`
	Hours      float64      `json:"hours"`
	LastFlown  time.Time    `json:"lastFlown"`
}

// RecentFlight is one row of the recent-flights table on the profile page.
type RecentFlight struct {
	Date         string  `json:"date"` // YYYY-MM-DD
	From         string  `json:"from"`
	To           string  `json:"to"`
	AircraftType string  `json:"aircraftType,omitempty"`
	Hours        float64 `json:"hours"`
	Landings     int     `json:"landings"`
}

// CurrencyWindowResult reports one named recency requirement: the raw counted
// quantities, whether the tracked items are satisfied, and the literal window
// boundaries that were used, so callers can display them without recomputing
// "today".
type CurrencyWindowResult struct {
	Requirement string `json:"requirement"`

	WindowStart time.Time `json:"windowStart"`
	WindowEnd   time.Time `json:"windowEnd"`
	// EndExclusive marks calendar-month windows, where WindowEnd is the first
	// excluded day rather than the last included one.
	EndExclusive bool `json:"endExclusive"`

	Takeoffs int `json:"takeoffs,omitempty"`
	Landings int `json:"landings,omitempty"`

	Approaches       int     `json:"approaches,omitempty"`
	Holds            int     `json:"holds,omitempty"`
	InstrumentTime   float64 `json:"instrument,omitempty"`
	InstrumentSim    float64 `json:"instrumentSim,omitempty"`
	InstrumentActual float64 `json:"instrumentActual,omitempty"`

	Current bool `json:"current"`
}

// CurrencyReport bundles the three requirements evaluated for a profile.
type CurrencyReport struct {
	Day   CurrencyWindowResult `json:"day"`
	Night CurrencyWindowResult `json:"night"`
	IFR   CurrencyWindowResult `json:"ifr"`
}

// FunFact is one noteworthy statistic, ready for display.
type FunFact struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Value  string  `json:"value"`
	Detail string  `json:"detail,omitempty"`
	Score  float64 `json:"score"`
}

// StatsBundle is the full output of the aggregation pipeline for one pilot:
// everything the profile page and the snapshot publisher need.
type StatsBundle struct {
	GeneratedAt time.Time        `json:"generatedAt"`
	Totals      AggregateBucket  `json:"totals"`
	Last90      AggregateBucket  `json:"last90"`
	Monthly     []MonthlyTotal   `json:"monthly"`
	Heatmap     []DailyAggregate `json:"heatmap"`
	Routes      []RouteAggregate `json:"routes"`    // directed, for the routes table
	MapRoutes   []RouteAggregate `json:"mapRoutes"` // undirected, for map density
	Recent      []RecentFlight   `json:"recent"`
	Currency    CurrencyReport   `json:"currency"`
	FunFacts    []FunFact        `json:"funFacts"`
}
