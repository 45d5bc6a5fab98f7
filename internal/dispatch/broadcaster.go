package dispatch

import (
	"sync"
	"sync/atomic"

	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

// Broadcaster fans dispatch events out to subscribers (monitoring
// dashboards, audit consumers). Slow subscribers are skipped rather
// than allowed to stall the dispatch path.
type Broadcaster struct {
	subscribers map[uint64]chan *models.DispatchEvent
	nextID      atomic.Uint64
	mu          sync.RWMutex
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[uint64]chan *models.DispatchEvent),
	}
}

func (b *Broadcaster) Subscribe() (uint64, chan *models.DispatchEvent) {
	id := b.nextID.Add(1)
	ch := make(chan *models.DispatchEvent, 64)

	b.mu.Lock()
	b.subscribers[id] = ch
	b.mu.Unlock()

	return id, ch
}

func (b *Broadcaster) Unsubscribe(id uint64) {
	b.mu.Lock()
	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
	b.mu.Unlock()
}

func (b *Broadcaster) Broadcast(e *models.DispatchEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- e:
		default:
			// Skip slow subscribers
		}
	}
}

func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close closes all subscriber channels, letting consumers drain and exit.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
}
