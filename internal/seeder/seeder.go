// Package seeder reads dictionary fixtures: a flat JSON array of term records.
// Pure functions: file or reader in, domain structs out. No storage dependencies.
package seeder

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// defaultTerms is the fixture used when no seed path is configured.
//
//go:embed default_terms.json
var defaultTerms []byte

// Stats holds fixture statistics for logging.
type Stats struct {
	Total      int
	ByCategory map[domain.Category]int
	Active     int
}

// Parse decodes a fixture from r. Records are returned in file order
// without transformation. Unknown fields are rejected.
func Parse(r io.Reader) ([]domain.SeedTerm, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var seeds []domain.SeedTerm
	if err := dec.Decode(&seeds); err != nil {
		return nil, fmt.Errorf("seeder: decode fixture: %w", err)
	}
	if seeds == nil {
		seeds = []domain.SeedTerm{}
	}
	return seeds, nil
}

// LoadFile reads the fixture at path.
func LoadFile(path string) ([]domain.SeedTerm, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seeder: open %s: %w", path, err)
	}
	defer f.Close()

	seeds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return seeds, nil
}

// Default returns the embedded fixture.
func Default() ([]domain.SeedTerm, error) {
	return Parse(bytes.NewReader(defaultTerms))
}

// Load reads the fixture at path, or the embedded one when path is empty.
func Load(path string) ([]domain.SeedTerm, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Summarize counts fixture records per category and status.
func Summarize(seeds []domain.SeedTerm) Stats {
	s := Stats{Total: len(seeds), ByCategory: make(map[domain.Category]int)}
	for _, seed := range seeds {
		s.ByCategory[seed.Category]++
		if seed.Status == domain.TermStatusActive {
			s.Active++
		}
	}
	return s
}
