package repository

import (
	"context"
	"time"

	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

// Facility is one row of the locally curated, periodically updated
// facility dataset that backs the resolver's local tier.
type Facility struct {
	ID        int64
	Category  models.Category
	Name      string
	Phone     string
	Address   string
	Latitude  float64
	Longitude float64
	UpdatedAt time.Time
}

type EventFilter struct {
	Limit    int
	Category *models.Category
	Since    *time.Time
}

type FacilityRepository interface {
	AddFacility(ctx context.Context, f *Facility) error
	ListByCategory(ctx context.Context, category models.Category) ([]Facility, error)
	ListAllFacilities(ctx context.Context) ([]Facility, error)
	ReplaceAll(ctx context.Context, facilities []Facility) error
	CountFacilities(ctx context.Context) (int64, error)
}

type EventRepository interface {
	AddEvent(ctx context.Context, e *models.DispatchEvent) error
	ListEvents(ctx context.Context, opts EventFilter) ([]models.DispatchEvent, error)
}
