// Package dispatch records dispatch events and fans them out to
// subscribers and notifiers once a facility has been resolved for an
// emergency request.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
	"github.com/mwaleedk/go-emergency-dispatch/internal/repository"
	"github.com/mwaleedk/go-emergency-dispatch/internal/worker"
)

const StatusDispatched = "dispatched"

// Notifier delivers a dispatch event to the responding facility's
// channel. Delivery runs on the worker pool, off the request path.
type Notifier interface {
	Notify(ctx context.Context, e *models.DispatchEvent, facility models.FacilityCandidate) error
}

// LogNotifier is the default delivery channel: it writes the dispatch
// to the structured log, which downstream tooling tails.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, e *models.DispatchEvent, facility models.FacilityCandidate) error {
	slog.Info("dispatch notified",
		"event_id", e.ID,
		"category", e.Category,
		"subservice", e.Subservice,
		"urgency", int(e.Urgency),
		"facility", facility.Name,
		"phone", facility.Phone)
	return nil
}

type notifyJob struct {
	event    *models.DispatchEvent
	facility models.FacilityCandidate
}

// Manager persists each dispatch event, broadcasts it to subscribers
// and hands notification delivery to the worker pool.
type Manager struct {
	repo        repository.EventRepository
	broadcaster *Broadcaster
	notifier    Notifier
	pool        *worker.Pool
}

func NewManager(repo repository.EventRepository, broadcaster *Broadcaster, notifier Notifier, workers, bufferSize int) *Manager {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	m := &Manager{
		repo:        repo,
		broadcaster: broadcaster,
		notifier:    notifier,
	}
	m.pool = worker.NewPool(workers, bufferSize, m.process)
	return m
}

func (m *Manager) Start(ctx context.Context) {
	m.pool.Start(ctx)
}

func (m *Manager) Stop() {
	m.pool.Stop()
	if m.broadcaster != nil {
		m.broadcaster.Close()
	}
}

// Record creates and persists a dispatch event for a resolved facility,
// then broadcasts it and queues the notification. Persistence failure
// fails the call; a full notification queue does not.
func (m *Manager) Record(ctx context.Context, result models.ClassificationResult, facility models.FacilityCandidate, loc models.Coordinates) (*models.DispatchEvent, error) {
	event := &models.DispatchEvent{
		ID:         uuid.NewString(),
		Category:   result.Category,
		Subservice: result.Subservice,
		Urgency:    result.Urgency,
		Facility:   facility.Name,
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
		Status:     StatusDispatched,
		CreatedAt:  time.Now().UTC(),
	}

	if err := m.repo.AddEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("error recording dispatch event: %w", err)
	}

	if m.broadcaster != nil {
		m.broadcaster.Broadcast(event)
	}
	m.pool.Submit(notifyJob{event: event, facility: facility})

	return event, nil
}

func (m *Manager) process(ctx context.Context, job worker.Job) error {
	nj, ok := job.(notifyJob)
	if !ok {
		return fmt.Errorf("unexpected job type %T", job)
	}
	return m.notifier.Notify(ctx, nj.event, nj.facility)
}
