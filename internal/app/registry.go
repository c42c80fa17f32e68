package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/robotcarousel/internal/domain"
	"github.com/robotcarousel/internal/infra/metrics"
	"github.com/robotcarousel/pkg/logging"
)

// RegistryConfig sizes a registry.
type RegistryConfig struct {
	Component string
	Items     []domain.Item
	PageSize  int
	MaxViews  int
}

// Registry owns the mounted views of one component, keyed by view id.
// Mounting past MaxViews unmounts the oldest view.
type Registry[R any] struct {
	cfg     RegistryConfig
	source  domain.RecordSource[R]
	events  domain.EventPublisher
	sampler *logging.ErrorSampler

	// fetches run on ctx rather than on the request that mounted the view
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	views map[string]*View[R]
	order []string
}

func NewRegistry[R any](
	cfg RegistryConfig,
	source domain.RecordSource[R],
	events domain.EventPublisher,
	sampler *logging.ErrorSampler,
) (*Registry[R], error) {
	if source == nil {
		return nil, errors.New("record source is nil")
	}
	if events == nil {
		return nil, errors.New("event publisher is nil")
	}
	if len(cfg.Items) == 0 {
		return nil, errors.New("no carousel items configured")
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("invalid page size: %d (must be >= 1)", cfg.PageSize)
	}
	if cfg.MaxViews < 1 {
		return nil, fmt.Errorf("invalid max views: %d (must be >= 1)", cfg.MaxViews)
	}
	if cfg.Component == "" {
		cfg.Component = source.Name()
	}
	if sampler == nil {
		sampler = logging.NewErrorSampler(10)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Registry[R]{
		cfg:     cfg,
		source:  source,
		events:  events,
		sampler: sampler,
		ctx:     ctx,
		cancel:  cancel,
		views:   make(map[string]*View[R]),
	}, nil
}

func (r *Registry[R]) Component() string { return r.cfg.Component }

// Mount creates a view and starts its record load.
func (r *Registry[R]) Mount() (*View[R], error) {
	v, err := newView(
		uuid.NewString(),
		r.cfg.Component,
		r.cfg.Items,
		r.cfg.PageSize,
		NewLoader(r.source, r.sampler),
		r.events,
	)
	if err != nil {
		return nil, err
	}

	var evicted *View[R]
	r.mu.Lock()
	if r.ctx.Err() != nil {
		r.mu.Unlock()
		return nil, errors.New("registry is closed")
	}
	if len(r.order) >= r.cfg.MaxViews {
		evicted = r.removeLocked(r.order[0])
	}
	r.views[v.id] = v
	r.order = append(r.order, v.id)
	metrics.ViewsMounted.WithLabelValues(r.cfg.Component).Inc()
	r.mu.Unlock()

	if evicted != nil {
		slog.Info("Evicting oldest view", "component", r.cfg.Component, "view_id", evicted.id)
		evicted.close()
	}

	slog.Debug("View mounted", "component", r.cfg.Component, "view_id", v.id)
	v.start(r.ctx)
	return v, nil
}

func (r *Registry[R]) Get(id string) (*View[R], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[id]
	return v, ok
}

// Unmount tears the view down. An in-flight fetch result is discarded.
func (r *Registry[R]) Unmount(id string) bool {
	r.mu.Lock()
	v := r.removeLocked(id)
	r.mu.Unlock()

	if v == nil {
		return false
	}
	v.close()
	slog.Debug("View unmounted", "component", r.cfg.Component, "view_id", id)
	return true
}

// Remount replaces the view with a freshly loading one.
func (r *Registry[R]) Remount(id string) (*View[R], error) {
	r.Unmount(id)
	return r.Mount()
}

func (r *Registry[R]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Close unmounts every view and cancels outstanding fetches.
func (r *Registry[R]) Close() {
	r.mu.Lock()
	ids := append([]string(nil), r.order...)
	views := make([]*View[R], 0, len(ids))
	for _, id := range ids {
		views = append(views, r.removeLocked(id))
	}
	r.cancel()
	r.mu.Unlock()

	for _, v := range views {
		v.close()
	}
}

func (r *Registry[R]) removeLocked(id string) *View[R] {
	v, ok := r.views[id]
	if !ok {
		return nil
	}
	delete(r.views, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	metrics.ViewsMounted.WithLabelValues(r.cfg.Component).Dec()
	return v
}
