package resolve

import (
	"context"

	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

// staticContact is one compiled-in fallback entry. The static tier is the
// reliability floor: it never performs I/O and always answers.
type staticContact struct {
	name  string
	phone string
	lat   float64
	lon   float64
}

// defaultStaticContacts covers every service category; a category with no
// entry here is the one fatal misconfiguration the resolver can report.
var defaultStaticContacts = map[models.Category][]staticContact{
	models.CategoryMedical: {
		{name: "Karachi General Hospital", phone: "+92-21-1234567", lat: 24.8615, lon: 67.0099},
		{name: "Dow University Hospital", phone: "+92-21-5566778", lat: 24.8864, lon: 67.0743},
		{name: "Edhi Ambulance Service", phone: "115", lat: 24.8560, lon: 67.0264},
	},
	models.CategoryPolice: {
		{name: "Police Emergency (Madadgar 15)", phone: "15", lat: 24.8600, lon: 67.0100},
	},
	models.CategoryDisaster: {
		{name: "Fire Brigade", phone: "16", lat: 24.8500, lon: 67.0000},
		{name: "Rescue 1122", phone: "1122", lat: 24.8607, lon: 67.0011},
	},
	models.CategoryGeneral: {
		{name: "Citizen Helpline", phone: "1339", lat: 24.8607, lon: 67.0011},
	},
}

// StaticSource is the unconditional last tier, backed by a compiled-in
// per-category contact table.
type StaticSource struct {
	contacts map[models.Category][]staticContact
}

func NewStaticSource() *StaticSource {
	return &StaticSource{contacts: defaultStaticContacts}
}

// newStaticSourceWithContacts exists for tests that need to simulate a
// missing static configuration.
func newStaticSourceWithContacts(contacts map[models.Category][]staticContact) *StaticSource {
	return &StaticSource{contacts: contacts}
}

func (s *StaticSource) Tier() models.SourceTier { return models.TierStatic }

func (s *StaticSource) Find(_ context.Context, category models.Category, loc models.Coordinates, _ float64) ([]models.FacilityCandidate, error) {
	entries := s.contacts[category]
	candidates := make([]models.FacilityCandidate, 0, len(entries))
	for _, e := range entries {
		coords := models.Coordinates{Latitude: e.lat, Longitude: e.lon}
		candidates = append(candidates, models.FacilityCandidate{
			Name:        e.name,
			Phone:       e.phone,
			Coordinates: coords,
			DistanceKM:  roundKM(haversineKM(loc, coords)),
			SourceTier:  models.TierStatic,
		})
	}
	return candidates, nil
}
