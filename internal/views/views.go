// Package views models the rendering layer's view cache as an explicit
// collaborator. After a mutating action, the owning service publishes the
// logical view paths whose cached output is now stale; the rendering layer
// recomputes them on next access. Publication is fire-and-forget: it has no
// failure-visible contract and never blocks an action.
package views

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Logical view paths invalidated by the action layer.
const (
	FinancialServices = "/financial-services"
	SellProducts      = "/sell-products"
	BuyProducts       = "/buy-products"
	Transport         = "/transport"
	Home              = "/"
)

// invalidations counts published staleness events per view path. The label
// set is bounded: only the fixed view paths above are ever published.
var invalidations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "view_invalidations_total",
		Help: "Total number of view invalidation events published.",
	},
	[]string{"view"},
)

func init() {
	prometheus.MustRegister(invalidations)
}

// Invalidator receives staleness events for named logical views.
//
// Implementations must be safe for concurrent use and must not block.
type Invalidator interface {
	// Invalidate marks each named view as stale.
	Invalidate(views ...string)
}

// Registry is the in-process Invalidator: a concurrency-safe staleness set
// the rendering layer can poll and clear. Each event is also logged and
// counted for operators.
type Registry struct {
	mu    sync.Mutex
	stale map[string]time.Time
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{stale: make(map[string]time.Time)}
}

// Invalidate marks each view stale, recording the time of the event.
func (r *Registry) Invalidate(views ...string) {
	now := time.Now().UTC()

	r.mu.Lock()
	for _, v := range views {
		r.stale[v] = now
	}
	r.mu.Unlock()

	for _, v := range views {
		invalidations.WithLabelValues(v).Inc()
		log.Debug().Str("view", v).Msg("view invalidated")
	}
}

// IsStale reports whether view has a pending invalidation.
func (r *Registry) IsStale(view string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.stale[view]
	return ok
}

// StaleSince returns the time of the most recent invalidation of view and
// whether one is pending.
func (r *Registry) StaleSince(view string) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.stale[view]
	return t, ok
}

// Revalidate clears the pending invalidation for view, if any. The rendering
// layer calls this after recomputing the view.
func (r *Registry) Revalidate(view string) {
	r.mu.Lock()
	delete(r.stale, view)
	r.mu.Unlock()
}

// Stale returns the view paths with a pending invalidation, in no
// particular order.
func (r *Registry) Stale() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.stale))
	for v := range r.stale {
		out = append(out, v)
	}
	return out
}
