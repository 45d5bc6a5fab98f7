package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

type seedCandidate struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Contact string  `json:"contact"`
	Address string  `json:"address"`
}

type seedCategory struct {
	Candidates []seedCandidate `json:"candidates"`
}

// LoadSeedFile parses the curated facility dataset, a JSON object keyed
// by category with candidate lists. Entries with missing names or
// out-of-range coordinates are dropped rather than failing the load.
func LoadSeedFile(path string) ([]Facility, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}

	var data map[string]seedCategory
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("error parsing seed file: %w", err)
	}

	var out []Facility
	for categoryName, cat := range data {
		category := models.ParseCategory(strings.ToLower(categoryName))
		for _, c := range cat.Candidates {
			if strings.TrimSpace(c.Name) == "" {
				continue
			}
			if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
				continue
			}
			out = append(out, Facility{
				Category:  category,
				Name:      strings.TrimSpace(c.Name),
				Phone:     normalizePhone(c.Contact),
				Address:   strings.TrimSpace(c.Address),
				Latitude:  c.Lat,
				Longitude: c.Lon,
			})
		}
	}
	return out, nil
}

func normalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
