package airports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"flightsite/internal/models"

	"github.com/go-resty/resty/v2"
)

// codePattern matches the ICAO/IATA code shapes worth indexing
var codePattern = regexp.MustCompile(`^[A-Z0-9]{3,4}$`)

// Fetcher downloads the OurAirports dataset and builds a code index
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a new airport data fetcher
func NewFetcher(client *resty.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch downloads airports.csv from the given URL and builds an Index
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Index, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv").
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch airports CSV: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("airports CSV endpoint returned status %d", resp.StatusCode())
	}

	return ParseCSV(bytes.NewReader(resp.Body()))
}

// ParseCSV builds an Index from OurAirports airports.csv content.
// Each airport is keyed by every code column that looks like a real
// ICAO or IATA code. Later rows never overwrite earlier ones, so
// ident entries win over iata collisions.
func ParseCSV(r io.Reader) (*Index, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read airports CSV header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"ident", "latitude_deg", "longitude_deg"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("airports CSV missing column %q", required)
		}
	}

	entries := make(map[string]models.Coordinates)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read airports CSV row: %w", err)
		}

		lat, latErr := strconv.ParseFloat(field(row, col, "latitude_deg"), 64)
		lon, lonErr := strconv.ParseFloat(field(row, col, "longitude_deg"), 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		coords := models.Coordinates{Lat: lat, Lon: lon}

		for _, key := range []string{"ident", "gps_code", "iata_code"} {
			code := strings.ToUpper(strings.TrimSpace(field(row, col, key)))
			if !codePattern.MatchString(code) {
				continue
			}
			if _, exists := entries[code]; !exists {
				entries[code] = coords
			}
		}
	}

	return NewIndex(entries), nil
}

func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
