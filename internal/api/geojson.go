package api

import (
	"github.com/mwaleedk/go-emergency-dispatch/internal/repository"
)

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func toGeoJSON(facilities []repository.Facility) FeatureCollection {
	features := make([]Feature, 0, len(facilities))

	for _, f := range facilities {
		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{f.Longitude, f.Latitude},
			},
			Properties: map[string]any{
				"id":         f.ID,
				"category":   string(f.Category),
				"name":       f.Name,
				"phone":      f.Phone,
				"address":    f.Address,
				"updated_at": f.UpdatedAt,
			},
		})
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
