package intake

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
)

const DefaultSessionTTL = 2 * time.Hour

// Registry holds at most one in-progress collector per user. Idle
// collectors expire lazily on lookup.
type Registry struct {
	mu         sync.Mutex
	collectors map[uuid.UUID]*Collector
	ttl        time.Duration
	opts       []Option
	now        func() time.Time
}

func NewRegistry(ttl time.Duration, opts ...Option) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Registry{
		collectors: map[uuid.UUID]*Collector{},
		ttl:        ttl,
		opts:       opts,
		now:        time.Now,
	}
}

// Start replaces any collector the user has with a fresh one for version.
func (r *Registry) Start(userID uuid.UUID, version assessment.SchemaVersion) (*Collector, error) {
	set, err := assessment.Lookup(version)
	if err != nil {
		return nil, err
	}
	c := NewCollector(set, r.opts...)

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.collectors[userID]; ok {
		prev.mu.Lock()
		prev.stopAdvanceLocked()
		prev.mu.Unlock()
	}
	r.collectors[userID] = c
	r.sweepLocked()
	return c, nil
}

func (r *Registry) Get(userID uuid.UUID) (*Collector, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.collectors[userID]
	if !ok {
		return nil, false
	}
	if r.expired(c) {
		delete(r.collectors, userID)
		return nil, false
	}
	return c, true
}

func (r *Registry) Discard(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.collectors, userID)
}

// DiscardIf removes the user's collector only while it is still c, so a
// session started during c's submit survives.
func (r *Registry) DiscardIf(userID uuid.UUID, c *Collector) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.collectors[userID]; !ok || cur != c {
		return false
	}
	delete(r.collectors, userID)
	return true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.collectors)
}

func (r *Registry) expired(c *Collector) bool {
	return r.now().Sub(c.lastTouched()) > r.ttl
}

func (r *Registry) sweepLocked() {
	for id, c := range r.collectors {
		if r.expired(c) {
			delete(r.collectors, id)
		}
	}
}
