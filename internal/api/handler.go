package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mwaleedk/go-emergency-dispatch/internal/dispatch"
	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
	"github.com/mwaleedk/go-emergency-dispatch/internal/pipeline"
	"github.com/mwaleedk/go-emergency-dispatch/internal/repository"
	"github.com/mwaleedk/go-emergency-dispatch/internal/resolve"
	"github.com/mwaleedk/go-emergency-dispatch/internal/respond"
)

type Handler struct {
	pipe        *pipeline.Pipeline
	facilities  repository.FacilityRepository
	events      repository.EventRepository
	broadcaster *dispatch.Broadcaster
	seedPath    string
}

func NewHandler(pipe *pipeline.Pipeline, facilities repository.FacilityRepository, events repository.EventRepository, broadcaster *dispatch.Broadcaster, seedPath string) *Handler {
	return &Handler{
		pipe:        pipe,
		facilities:  facilities,
		events:      events,
		broadcaster: broadcaster,
		seedPath:    seedPath,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/dispatch", h.dispatchMessage)
	r.GET("/api/facilities", h.getFacilities)
	r.POST("/api/facilities/reload", h.reloadFacilities)
	r.GET("/api/events", h.getEvents)
	r.GET("/api/events/stream", h.streamEvents)
	r.GET("/health", h.health)
}

type dispatchRequest struct {
	UserQuery      string  `json:"user_query"`
	Latitude       float64 `json:"lat"`
	Longitude      float64 `json:"lon"`
	NetworkQuality string  `json:"network_quality"`
	ConnectionType string  `json:"connection_type"`
}

func (h *Handler) dispatchMessage(c *gin.Context) {
	var req dispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.UserQuery) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_query is required"})
		return
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	result, err := h.pipe.Handle(c.Request.Context(), pipeline.Request{
		Text:     req.UserQuery,
		Location: models.Coordinates{Latitude: req.Latitude, Longitude: req.Longitude},
		Quality:  respond.DetectQuality(req.NetworkQuality, req.ConnectionType),
	})
	if err != nil {
		var noFallback *resolve.ErrNoStaticFallback
		switch {
		case errors.Is(err, pipeline.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_query is required"})
		case errors.As(err, &noFallback):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no facility available for category"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// getFacilities lists the local dataset as GeoJSON, the whole dataset
// by default or one category when ?category= is given.
func (h *Handler) getFacilities(c *gin.Context) {
	var facilities []repository.Facility
	var err error
	if cat := c.Query("category"); cat != "" {
		facilities, err = h.facilities.ListByCategory(c.Request.Context(), models.ParseCategory(strings.ToLower(cat)))
	} else {
		facilities, err = h.facilities.ListAllFacilities(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch facilities"})
		return
	}

	fc := toGeoJSON(facilities)
	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, fc)
}

func (h *Handler) reloadFacilities(c *gin.Context) {
	if h.seedPath == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "no seed file configured"})
		return
	}

	facilities, err := repository.LoadSeedFile(h.seedPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load seed file"})
		return
	}
	if err := h.facilities.ReplaceAll(c.Request.Context(), facilities); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to replace facilities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"loaded": len(facilities)})
}

func (h *Handler) getEvents(c *gin.Context) {
	filter := repository.EventFilter{
		Limit: 20,
	}

	if cat := c.Query("category"); cat != "" {
		category := models.ParseCategory(strings.ToLower(cat))
		filter.Category = &category
	}
	if s := c.Query("since"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			filter.Since = &t
		}
	}
	if l := c.Query("limit"); l != "" {
		if lim, err := strconv.Atoi(l); err == nil && lim > 0 && lim <= 500 {
			filter.Limit = lim
		}
	}

	events, err := h.events.ListEvents(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// streamEvents pushes dispatch events to the client as server-sent
// events until the client disconnects or the broadcaster shuts down.
func (h *Handler) streamEvents(c *gin.Context) {
	if h.broadcaster == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming not available"})
		return
	}

	id, events := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(id)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	for {
		select {
		case e, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent("dispatch", e)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
