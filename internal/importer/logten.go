package importer

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"flightsite/internal/airports"
	"flightsite/internal/logger"
	"flightsite/internal/models"
)

// LogTen TSV exports are not strict TSV: metadata rows and multi-line
// remarks are interleaved with flight rows. Only lines beginning with a
// flight date are treated as flights.
var dateRowRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(\t|$)`)

// Required columns in a LogTen export
const (
	colFlightDate = "flight_flightDate"
	colFrom       = "flight_from"
	colTo         = "flight_to"
)

// Result summarizes a parsed import
type Result struct {
	Flights []models.FlightRecord
	Skipped int
}

// Parser normalizes LogTen TSV exports into flight records
type Parser struct {
	index *airports.Index
	log   *logger.Logger
}

// NewParser creates a parser. The airport index is optional; when present,
// records are enriched with endpoint coordinates.
func NewParser(index *airports.Index) *Parser {
	return &Parser{
		index: index,
		log:   logger.WithComponent("importer"),
	}
}

// Parse reads a full LogTen TSV export and returns normalized flight
// records sorted by date ascending.
func (p *Parser) Parse(text string) (*Result, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var headerLine string
	headerIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			headerLine = line
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, fmt.Errorf("empty TSV")
	}

	col := make(map[string]int)
	for i, h := range strings.Split(headerLine, "\t") {
		col[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{colFlightDate, colFrom, colTo} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	result := &Result{}
	for _, line := range lines[headerIdx+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !dateRowRe.MatchString(line) {
			continue
		}

		record, ok := p.parseRow(strings.Split(line, "\t"), col)
		if !ok {
			result.Skipped++
			continue
		}
		result.Flights = append(result.Flights, record)
	}

	sort.SliceStable(result.Flights, func(i, j int) bool {
		return result.Flights[i].Date.Before(result.Flights[j].Date)
	})

	p.log.Info("parsed LogTen export", logger.Fields{
		"flights": len(result.Flights),
		"skipped": result.Skipped,
	})
	return result, nil
}

func (p *Parser) parseRow(fields []string, col map[string]int) (models.FlightRecord, bool) {
	get := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(fields) {
			return ""
		}
		return fields[i]
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(get(colFlightDate)))
	if err != nil {
		return models.FlightRecord{}, false
	}
	from := strings.ToUpper(strings.TrimSpace(get(colFrom)))
	to := strings.ToUpper(strings.TrimSpace(get(colTo)))
	if from == "" || to == "" {
		return models.FlightRecord{}, false
	}

	record := models.FlightRecord{
		Date:             date.UTC(),
		From:             from,
		To:               to,
		AircraftType:     strings.TrimSpace(get("aircraftType_type")),
		Remarks:          strings.TrimSpace(get("flight_remarks")),
		TotalTime:        parseHours(get("flight_totalTime")),
		PICTime:          parseHours(get("flight_pic")),
		SICTime:          parseHours(get("flight_sic")),
		DualTime:         parseHours(get("flight_dualReceived")),
		NightTime:        parseHours(get("flight_night")),
		XCTime:           parseHours(get("flight_crossCountry")),
		XCNightTime:      parseHours(get("flight_nightCrossCountry")),
		InstrumentTime:   parseHours(get("flight_ifr")),
		InstrumentSim:    parseHours(get("flight_simulatedInstrument")),
		InstrumentActual: parseHours(get("flight_actualInstrument")),
		DayLandings:      parseCount(get("flight_dayLandings")),
		NightLandings:    parseCount(get("flight_nightLandings")),
		DayTakeoffs:      parseCount(get("flight_dayTakeoffs")),
		NightTakeoffs:    parseCount(get("flight_nightTakeoffs")),
		Approaches:       parseCount(get("flight_totalApproaches")),
		Holds:            parseCount(get("flight_holds")),
	}

	if p.index != nil {
		if coords, ok := p.index.Lookup(from); ok {
			record.FromCoords = coords
		}
		if coords, ok := p.index.Lookup(to); ok {
			record.ToCoords = coords
		}
	}

	return record, true
}

// parseHours parses a decimal hour field, tolerating thousands separators.
// Invalid or negative values normalize to 0.
func parseHours(s string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseCount(s string) int {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if cleaned == "" {
		return 0
	}
	v, err := strconv.Atoi(cleaned)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
