package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

// PlacesClient queries an external places provider for facilities near a
// coordinate. The provider may fail, rate-limit or return nothing at any
// time; the resolver treats all of those as a tier failure and moves on.
type PlacesClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewPlacesClient(baseURL, apiKey string, timeout time.Duration) *PlacesClient {
	return &PlacesClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type placesResponse struct {
	Status  string        `json:"status"`
	Results []placeResult `json:"results"`
}

type placeResult struct {
	Name     string  `json:"name"`
	Vicinity string  `json:"vicinity"`
	Rating   float64 `json:"rating"`
	PlaceID  string  `json:"place_id"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// placeTypes maps service categories to the provider's place types.
// Disaster response has no dedicated place type; fire stations are the
// closest match.
var placeTypes = map[models.Category]string{
	models.CategoryMedical:  "hospital",
	models.CategoryPolice:   "police",
	models.CategoryDisaster: "fire_station",
	models.CategoryGeneral:  "hospital",
}

func (p *PlacesClient) Tier() models.SourceTier { return models.TierLive }

func (p *PlacesClient) Find(ctx context.Context, category models.Category, loc models.Coordinates, radiusKM float64) ([]models.FacilityCandidate, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude))
	q.Set("radius", strconv.Itoa(int(radiusKM*1000)))
	q.Set("type", placeTypes[category])
	if category == models.CategoryMedical {
		q.Set("keyword", "emergency")
	}
	if p.apiKey != "" {
		q.Set("key", p.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
	}

	var data placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("error decoding resp.Body: %w", err)
	}

	switch data.Status {
	case "OK", "ZERO_RESULTS":
	default:
		return nil, fmt.Errorf("places provider status: %s", data.Status)
	}

	candidates := make([]models.FacilityCandidate, 0, len(data.Results))
	for _, r := range data.Results {
		candidates = append(candidates, models.FacilityCandidate{
			Name: r.Name,
			Coordinates: models.Coordinates{
				Latitude:  r.Geometry.Location.Lat,
				Longitude: r.Geometry.Location.Lng,
			},
			Rating:     r.Rating,
			SourceTier: models.TierLive,
		})
	}
	return candidates, nil
}
