package demo

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"flightsite/internal/geo"
	"flightsite/internal/models"
	"flightsite/internal/stats"
)

// DefaultTargetFlights is the flight count the demo profile aims for
const DefaultTargetFlights = 240

// historyDays is how far back the generated logbook reaches
const historyDays = 210

type airport struct {
	ICAO string
	Lat  float64
	Lon  float64
	Name string
}

// Fictional airline schedule anchored on a Salt Lake City hub
var catalog = []airport{
	{"KSLC", 40.7884, -111.977, "Salt Lake City Intl"},
	{"KATL", 33.6407, -84.4277, "Hartsfield-Jackson Atlanta"},
	{"KMSP", 44.882, -93.2218, "Minneapolis/St Paul"},
	{"KDTW", 42.2162, -83.3554, "Detroit Metro"},
	{"KJFK", 40.6413, -73.7781, "John F Kennedy"},
	{"KLGA", 40.7769, -73.874, "LaGuardia"},
	{"KEWR", 40.6895, -74.1745, "Newark Liberty"},
	{"KBOS", 42.3656, -71.0096, "Boston Logan"},
	{"KDCA", 38.8512, -77.0402, "Reagan National"},
	{"KIAD", 38.9531, -77.4565, "Dulles"},
	{"KORD", 41.9742, -87.9073, "Chicago O'Hare"},
	{"KDEN", 39.8561, -104.6737, "Denver"},
	{"KPHX", 33.4342, -112.0116, "Phoenix Sky Harbor"},
	{"KLAX", 33.9416, -118.4085, "Los Angeles"},
	{"KSFO", 37.6213, -122.379, "San Francisco"},
	{"KSEA", 47.4502, -122.3088, "Seattle Tacoma"},
	{"KPDX", 45.5898, -122.5951, "Portland"},
	{"KLAS", 36.084, -115.1537, "Las Vegas"},
	{"KSAN", 32.7338, -117.1933, "San Diego"},
	{"KDFW", 32.8998, -97.0403, "Dallas/Fort Worth"},
	{"KIAH", 29.9902, -95.3368, "Houston Intercontinental"},
	{"KMCO", 28.4312, -81.3081, "Orlando"},
	{"KFLL", 26.0726, -80.1527, "Fort Lauderdale"},
	{"KTPA", 27.9755, -82.5332, "Tampa"},
	{"KBNA", 36.1263, -86.6774, "Nashville"},
	{"KSTL", 38.7477, -90.3597, "St. Louis"},
	{"KCOS", 38.8058, -104.7005, "Colorado Springs"},
	{"KBOI", 43.5644, -116.2228, "Boise"},
	{"KSJC", 37.3639, -121.9289, "San Jose"},
	{"KSMF", 38.6954, -121.5908, "Sacramento"},
	{"KANC", 61.1743, -149.9985, "Anchorage"},
}

var hubCodes = []string{"KSLC", "KATL", "KMSP", "KDTW", "KJFK", "KSEA", "KORD", "KDEN", "KDFW"}

// Generator produces a deterministic demo logbook for a given seed
type Generator struct {
	rng     *rand.Rand
	byCode  map[string]airport
	nonHubs []airport
}

// NewGenerator creates a generator. The same seed always yields the same
// flight list for the same reference date.
func NewGenerator(seed int64) *Generator {
	byCode := make(map[string]airport, len(catalog))
	var nonHubs []airport
	for _, a := range catalog {
		byCode[a.ICAO] = a
		if a.ICAO != "KSLC" {
			nonHubs = append(nonHubs, a)
		}
	}
	return &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		byCode:  byCode,
		nonHubs: nonHubs,
	}
}

// Generate produces a demo logbook covering the historyDays days ending at now
func (g *Generator) Generate(now time.Time, targetFlights int) []models.FlightRecord {
	if targetFlights <= 0 {
		targetFlights = DefaultTargetFlights
	}

	today := stats.DateOnly(now)
	start := today.AddDate(0, 0, -historyDays)

	var flights []models.FlightRecord
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		count := g.flightsPerDay()
		for i := 0; i < count; i++ {
			flights = append(flights, g.buildFlight(d, true))
		}
	}

	// Under target: sprinkle extras on random days within range
	for len(flights) < targetFlights {
		offset := g.rng.Intn(historyDays)
		flights = append(flights, g.buildFlight(start.AddDate(0, 0, offset), false))
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Date.Before(flights[j].Date)
	})

	// Over target: keep the most recent flights so coverage runs through today
	if len(flights) > targetFlights {
		flights = flights[len(flights)-targetFlights:]
	}
	return flights
}

// flightsPerDay biases toward 1-2 flights with occasional days off
func (g *Generator) flightsPerDay() int {
	roll := g.rng.Float64()
	switch {
	case roll < 0.15:
		return 0
	case roll < 0.55:
		return 1
	case roll < 0.85:
		return 2
	default:
		return 3
	}
}

func (g *Generator) buildFlight(date time.Time, detailed bool) models.FlightRecord {
	from, to := g.pickRoute()
	distNM := geo.DistanceNM(from.Lat, from.Lon, to.Lat, to.Lon)
	totalTime := g.durationFromDistance(distNM)

	nightFlight := g.rng.Float64() < 0.28
	var nightTime float64
	if nightFlight {
		nightTime = round1(totalTime * g.between(0.2, 0.6))
	}

	acType := "B737"
	if g.rng.Float64() < 0.6 {
		acType = "A320"
	}

	record := models.FlightRecord{
		Date:         date,
		From:         from.ICAO,
		To:           to.ICAO,
		FromCoords:   &models.Coordinates{Lat: from.Lat, Lon: from.Lon},
		ToCoords:     &models.Coordinates{Lat: to.Lat, Lon: to.Lon},
		AircraftType: acType,
		Remarks:      "Demo flight",
		TotalTime:    totalTime,
		PICTime:      round1(totalTime * 0.9),
		NightTime:    nightTime,
		XCTime:       totalTime,
		XCNightTime:  nightTime,
	}
	if nightFlight {
		record.NightLandings = 1
		record.NightTakeoffs = 1
	} else {
		record.DayLandings = 1
		record.DayTakeoffs = 1
	}

	if detailed {
		instTime := round1(totalTime * g.between(0.2, 0.7))
		instActual := round1(instTime * g.between(0.4, 0.8))
		instSim := round1(math.Max(0, instTime-instActual) * g.between(0.1, 0.4))
		record.InstrumentTime = instTime
		record.InstrumentActual = instActual
		record.InstrumentSim = instSim
		record.Approaches = maxInt(1, int(math.Round(g.between(0.4, 1.6))))
		if g.rng.Float64() < 0.15 {
			record.Holds = 1
		}
	} else {
		record.InstrumentTime = round1(totalTime * g.between(0.2, 0.7))
		record.Approaches = 1
	}

	return record
}

func (g *Generator) pickRoute() (airport, airport) {
	hub := g.byCode["KSLC"]
	roll := g.rng.Float64()

	var from, to airport
	switch {
	case roll < 0.55:
		// Hub-and-spoke leg
		dest := g.nonHubs[g.rng.Intn(len(g.nonHubs))]
		if g.rng.Float64() < 0.7 {
			from, to = hub, dest
		} else {
			from, to = dest, hub
		}
	case roll < 0.8:
		// Between hubs
		from = g.byCode[hubCodes[g.rng.Intn(len(hubCodes))]]
		to = g.byCode[hubCodes[g.rng.Intn(len(hubCodes))]]
		for to.ICAO == from.ICAO {
			to = g.byCode[hubCodes[g.rng.Intn(len(hubCodes))]]
		}
	default:
		// Point-to-point non-hub pair
		from = g.nonHubs[g.rng.Intn(len(g.nonHubs))]
		to = g.nonHubs[g.rng.Intn(len(g.nonHubs))]
		for to.ICAO == from.ICAO {
			to = g.nonHubs[g.rng.Intn(len(g.nonHubs))]
		}
	}

	if from.ICAO == to.ICAO {
		from = hub
		to = g.nonHubs[g.rng.Intn(len(g.nonHubs))]
	}
	return from, to
}

func (g *Generator) durationFromDistance(distNM float64) float64 {
	switch {
	case distNM < 400:
		return round1(g.between(0.7, 1.4))
	case distNM < 900:
		return round1(g.between(1.5, 2.7))
	case distNM < 1500:
		return round1(g.between(2.8, 4.2))
	default:
		return round1(g.between(3.5, 5.0))
	}
}

func (g *Generator) between(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rng.Float64()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
