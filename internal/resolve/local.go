package resolve

import (
	"context"
	"fmt"

	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
	"github.com/mwaleedk/go-emergency-dispatch/internal/repository"
)

// LocalSource serves the resolver's second tier from the locally curated
// facility dataset. Distances are straight-line.
type LocalSource struct {
	repo repository.FacilityRepository
}

func NewLocalSource(repo repository.FacilityRepository) *LocalSource {
	return &LocalSource{repo: repo}
}

func (l *LocalSource) Tier() models.SourceTier { return models.TierLocal }

func (l *LocalSource) Find(ctx context.Context, category models.Category, loc models.Coordinates, radiusKM float64) ([]models.FacilityCandidate, error) {
	facilities, err := l.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error listing local facilities: %w", err)
	}

	var candidates []models.FacilityCandidate
	for _, f := range facilities {
		coords := models.Coordinates{Latitude: f.Latitude, Longitude: f.Longitude}
		distance := haversineKM(loc, coords)
		if distance > radiusKM {
			continue
		}
		candidates = append(candidates, models.FacilityCandidate{
			Name:        f.Name,
			Phone:       f.Phone,
			Coordinates: coords,
			DistanceKM:  roundKM(distance),
			SourceTier:  models.TierLocal,
		})
	}
	return candidates, nil
}
