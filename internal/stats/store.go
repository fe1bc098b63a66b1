// Package stats provides the read-only venue statistics store.
//
// The store is populated from a JSON artifact produced by the ingestion
// pipeline, loaded once at process start and never mutated afterwards, so
// concurrent readers need no locking.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/yourusername/pitch-oracle/internal/models"
)

// Store maps venue names to their historical aggregates.
type Store struct {
	venues map[string]models.VenueStats
}

// Load reads the venue statistics artifact from disk.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read venue stats artifact: %w", err)
	}
	return Parse(data)
}

// Parse builds a store from raw artifact bytes.
func Parse(data []byte) (*Store, error) {
	venues := make(map[string]models.VenueStats)
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to parse venue stats artifact: %w", err)
	}
	if len(venues) == 0 {
		return nil, fmt.Errorf("venue stats artifact contains no venues")
	}

	for name, vs := range venues {
		vs.Venue = name
		venues[name] = vs
	}

	return &Store{venues: venues}, nil
}

// Lookup returns the aggregates for a venue. An unknown venue is a contract
// violation on the caller's side and fails with models.ErrVenueNotFound.
func (s *Store) Lookup(venue string) (models.VenueStats, error) {
	vs, ok := s.venues[venue]
	if !ok {
		return models.VenueStats{}, fmt.Errorf("%w: %q", models.ErrVenueNotFound, venue)
	}
	return vs, nil
}

// Venues returns all known venue names in sorted order.
func (s *Store) Venues() []string {
	names := make([]string, 0, len(s.venues))
	for name := range s.venues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of venues in the store.
func (s *Store) Len() int {
	return len(s.venues)
}
