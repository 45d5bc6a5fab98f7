package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mwaleedk/go-emergency-dispatch/internal/classify"
	"github.com/mwaleedk/go-emergency-dispatch/internal/dispatch"
	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
	"github.com/mwaleedk/go-emergency-dispatch/internal/pipeline"
	"github.com/mwaleedk/go-emergency-dispatch/internal/repository"
	"github.com/mwaleedk/go-emergency-dispatch/internal/resolve"
)

// mockFacilityRepo implements repository.FacilityRepository for testing
type mockFacilityRepo struct {
	facilities []repository.Facility
	replaced   []repository.Facility
}

func (m *mockFacilityRepo) AddFacility(ctx context.Context, f *repository.Facility) error {
	m.facilities = append(m.facilities, *f)
	return nil
}

func (m *mockFacilityRepo) ListByCategory(ctx context.Context, category models.Category) ([]repository.Facility, error) {
	var out []repository.Facility
	for _, f := range m.facilities {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *mockFacilityRepo) ListAllFacilities(ctx context.Context) ([]repository.Facility, error) {
	return append([]repository.Facility(nil), m.facilities...), nil
}

func (m *mockFacilityRepo) ReplaceAll(ctx context.Context, facilities []repository.Facility) error {
	m.replaced = facilities
	m.facilities = facilities
	return nil
}

func (m *mockFacilityRepo) CountFacilities(ctx context.Context) (int64, error) {
	return int64(len(m.facilities)), nil
}

// mockEventRepo implements repository.EventRepository for testing
type mockEventRepo struct {
	events []models.DispatchEvent
}

func (m *mockEventRepo) AddEvent(ctx context.Context, e *models.DispatchEvent) error {
	m.events = append(m.events, *e)
	return nil
}

func (m *mockEventRepo) ListEvents(ctx context.Context, opts repository.EventFilter) ([]models.DispatchEvent, error) {
	out := m.events
	if opts.Category != nil {
		var filtered []models.DispatchEvent
		for _, e := range out {
			if e.Category == *opts.Category {
				filtered = append(filtered, e)
			}
		}
		out = filtered
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func setupTestRouter(facilities repository.FacilityRepository, events repository.EventRepository, seedPath string) *gin.Engine {
	return setupStreamRouter(facilities, events, nil, seedPath)
}

func setupStreamRouter(facilities repository.FacilityRepository, events repository.EventRepository, broadcaster *dispatch.Broadcaster, seedPath string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Static-only resolver; no dispatch manager on the test path.
	pipe := pipeline.New(classify.New(nil), resolve.New(resolve.Options{}), nil, 10)
	handler := NewHandler(pipe, facilities, events, broadcaster, seedPath)
	handler.RegisterRoutes(router)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestDispatch_MedicalEmergency(t *testing.T) {
	router := setupTestRouter(&mockFacilityRepo{}, &mockEventRepo{}, "")

	w := postJSON(router, "/api/dispatch", map[string]any{
		"user_query":      "ایمبولینس چاہیے، مریض بے ہوش ہے",
		"lat":             24.8607,
		"lon":             67.0011,
		"network_quality": "fast",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var res pipeline.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if res.Classification.Category != models.CategoryMedical {
		t.Errorf("category = %s, want medical", res.Classification.Category)
	}
	if res.Classification.Urgency != models.UrgencyCritical {
		t.Errorf("urgency = %d, want 1", res.Classification.Urgency)
	}
	if len(res.Facilities) == 0 {
		t.Error("expected facility candidates")
	}
	if res.Reply.Text == "" {
		t.Error("expected shaped reply text")
	}
}

func TestDispatch_EmptyQuery(t *testing.T) {
	router := setupTestRouter(&mockFacilityRepo{}, &mockEventRepo{}, "")

	for _, query := range []string{"", "   "} {
		w := postJSON(router, "/api/dispatch", map[string]any{
			"user_query": query,
			"lat":        24.8607,
			"lon":        67.0011,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("user_query %q: expected status 400, got %d", query, w.Code)
		}
	}
}

func TestDispatch_InvalidBody(t *testing.T) {
	router := setupTestRouter(&mockFacilityRepo{}, &mockEventRepo{}, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/dispatch", bytes.NewReader([]byte("{not json")))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestDispatch_InvalidCoordinates(t *testing.T) {
	router := setupTestRouter(&mockFacilityRepo{}, &mockEventRepo{}, "")

	w := postJSON(router, "/api/dispatch", map[string]any{
		"user_query": "fire in the building",
		"lat":        120.0,
		"lon":        67.0,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestDispatch_SlowConnectionType(t *testing.T) {
	router := setupTestRouter(&mockFacilityRepo{}, &mockEventRepo{}, "")

	w := postJSON(router, "/api/dispatch", map[string]any{
		"user_query":      "ghar mein aag lag gayi hai madad karo",
		"lat":             24.8607,
		"lon":             67.0011,
		"connection_type": "2g",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var res pipeline.Result
	json.Unmarshal(w.Body.Bytes(), &res)
	if !res.Reply.Minimal {
		t.Error("2g connection should get the minimal reply")
	}
}

func TestGetFacilities_ReturnsGeoJSON(t *testing.T) {
	repo := &mockFacilityRepo{
		facilities: []repository.Facility{
			{ID: 1, Category: models.CategoryMedical, Name: "Aga Khan Hospital", Phone: "+92211234567", Latitude: 24.89, Longitude: 67.07, UpdatedAt: time.Now()},
			{ID: 2, Category: models.CategoryPolice, Name: "Clifton Police Station", Latitude: 24.81, Longitude: 67.03, UpdatedAt: time.Now()},
		},
	}
	router := setupTestRouter(repo, &mockEventRepo{}, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/facilities?category=medical", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/geo+json" {
		t.Errorf("expected content-type application/geo+json, got %s", ct)
	}

	var fc FeatureCollection
	if err := json.Unmarshal(w.Body.Bytes(), &fc); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if fc.Type != "FeatureCollection" {
		t.Errorf("expected type FeatureCollection, got %s", fc.Type)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(fc.Features))
	}
	if fc.Features[0].Properties["name"] != "Aga Khan Hospital" {
		t.Errorf("unexpected feature: %+v", fc.Features[0].Properties)
	}
}

// Without a category filter the endpoint returns the whole dataset,
// not just one category.
func TestGetFacilities_AllCategoriesByDefault(t *testing.T) {
	repo := &mockFacilityRepo{
		facilities: []repository.Facility{
			{ID: 1, Category: models.CategoryMedical, Name: "Aga Khan Hospital", Latitude: 24.89, Longitude: 67.07, UpdatedAt: time.Now()},
			{ID: 2, Category: models.CategoryPolice, Name: "Clifton Police Station", Latitude: 24.81, Longitude: 67.03, UpdatedAt: time.Now()},
			{ID: 3, Category: models.CategoryGeneral, Name: "Citizen Helpline", Latitude: 24.86, Longitude: 67.00, UpdatedAt: time.Now()},
		},
	}
	router := setupTestRouter(repo, &mockEventRepo{}, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/facilities", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var fc FeatureCollection
	if err := json.Unmarshal(w.Body.Bytes(), &fc); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(fc.Features) != 3 {
		t.Errorf("expected 3 features, got %d", len(fc.Features))
	}
}

func TestStreamEvents_DeliversBroadcasts(t *testing.T) {
	b := dispatch.NewBroadcaster()
	router := setupStreamRouter(&mockFacilityRepo{}, &mockEventRepo{}, b, "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, "GET", "/api/events/stream", nil)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		router.ServeHTTP(w, req)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for b.SubscriberCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("stream handler never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	b.Broadcast(&models.DispatchEvent{ID: "evt-stream-1", Category: models.CategoryMedical, Status: "dispatched"})
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream handler did not exit on client disconnect")
	}

	body := w.Body.String()
	if !strings.Contains(body, "evt-stream-1") {
		t.Errorf("stream output missing broadcast event: %q", body)
	}
	if !strings.Contains(body, "event:dispatch") {
		t.Errorf("stream output missing event name: %q", body)
	}
}

func TestStreamEvents_UnavailableWithoutBroadcaster(t *testing.T) {
	router := setupTestRouter(&mockFacilityRepo{}, &mockEventRepo{}, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/events/stream", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", w.Code)
	}
}

func TestReloadFacilities(t *testing.T) {
	seed := `{"medical": {"candidates": [{"name": "Seed Hospital", "lat": 24.86, "lon": 67.01, "contact": "115"}]}}`
	path := filepath.Join(t.TempDir(), "facilities.json")
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("writing seed file: %v", err)
	}

	repo := &mockFacilityRepo{}
	router := setupTestRouter(repo, &mockEventRepo{}, path)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/facilities/reload", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.replaced) != 1 || repo.replaced[0].Name != "Seed Hospital" {
		t.Errorf("unexpected replaced facilities: %+v", repo.replaced)
	}
}

func TestReloadFacilities_NoSeedConfigured(t *testing.T) {
	router := setupTestRouter(&mockFacilityRepo{}, &mockEventRepo{}, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/facilities/reload", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", w.Code)
	}
}

func TestGetEvents_CategoryFilter(t *testing.T) {
	repo := &mockEventRepo{
		events: []models.DispatchEvent{
			{ID: "e1", Category: models.CategoryMedical, CreatedAt: time.Now()},
			{ID: "e2", Category: models.CategoryPolice, CreatedAt: time.Now()},
			{ID: "e3", Category: models.CategoryMedical, CreatedAt: time.Now()},
		},
	}
	router := setupTestRouter(&mockFacilityRepo{}, repo, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/events?category=medical", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Events []models.DispatchEvent `json:"events"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Events) != 2 {
		t.Errorf("expected 2 medical events, got %d", len(resp.Events))
	}
}

func TestHealth(t *testing.T) {
	router := setupTestRouter(&mockFacilityRepo{}, &mockEventRepo{}, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %s", resp["status"])
	}
}
