package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// Catalog is the static flight dataset, loaded once at startup and
// read-only afterwards. Safe for concurrent use.
type Catalog struct {
	flights []domain.Flight
	byID    map[string]domain.Flight
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	byID := make(map[string]domain.Flight, len(flights))
	for _, f := range flights {
		byID[f.ID] = f
	}
	return &Catalog{flights: flights, byID: byID}, nil
}

// List returns all flights in catalog order. The returned slice is a copy;
// callers may reorder it freely.
func (c *Catalog) List() []domain.Flight {
	out := make([]domain.Flight, len(c.flights))
	copy(out, c.flights)
	return out
}

func (c *Catalog) GetByID(id string) (domain.Flight, bool) {
	f, ok := c.byID[id]
	return f, ok
}

func (c *Catalog) Len() int {
	return len(c.flights)
}

// Airlines derives the airline list by deduplicating airline names in
// catalog order. The code is the uppercased three-character name prefix;
// there is no stored airline registry.
func (c *Catalog) Airlines() []domain.Airline {
	seen := make(map[string]bool)
	var airlines []domain.Airline
	for _, f := range c.flights {
		if seen[f.Airline] {
			continue
		}
		seen[f.Airline] = true
		name := f.Airline
		code := name
		if len(code) > 3 {
			code = code[:3]
		}
		airlines = append(airlines, domain.Airline{
			ID:   fmt.Sprintf("%d", len(airlines)+1),
			Name: name,
			Code: strings.ToUpper(code),
		})
	}
	return airlines
}
