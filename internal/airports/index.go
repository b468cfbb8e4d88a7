package airports

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"flightsite/internal/models"
)

// Index maps ICAO/IATA airport codes to coordinates
type Index struct {
	entries map[string]models.Coordinates
}

// NewIndex creates an index from a code -> coordinates map
func NewIndex(entries map[string]models.Coordinates) *Index {
	if entries == nil {
		entries = make(map[string]models.Coordinates)
	}
	return &Index{entries: entries}
}

// Lookup returns the coordinates for an airport code, case-insensitive
func (idx *Index) Lookup(code string) (*models.Coordinates, bool) {
	c, ok := idx.entries[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, false
	}
	coords := c
	return &coords, true
}

// Len returns the number of indexed codes
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Save writes the index to a JSON file
func (idx *Index) Save(path string) error {
	data, err := json.Marshal(idx.entries)
	if err != nil {
		return fmt.Errorf("failed to encode airport index: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write airport index: %w", err)
	}
	return nil
}

// LoadIndex reads a previously saved index from a JSON file
func LoadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read airport index: %w", err)
	}
	var entries map[string]models.Coordinates
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse airport index: %w", err)
	}
	return NewIndex(entries), nil
}
