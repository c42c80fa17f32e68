package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robotcarousel/internal/carousel"
	"github.com/robotcarousel/internal/domain"
	"github.com/robotcarousel/internal/infra/metrics"
)

// Snapshot is everything the presentation layer needs to render a view.
type Snapshot[R any] struct {
	ViewID       string            `json:"view_id"`
	Component    string            `json:"component"`
	Item         domain.Item       `json:"item"`
	ItemCount    int               `json:"item_count"`
	State        carousel.State    `json:"state"`
	PageSize     int               `json:"page_size"`
	CanPaginate  bool              `json:"can_paginate"`
	Status       domain.LoadStatus `json:"status"`
	Error        string            `json:"error,omitempty"`
	Records      []R               `json:"records"`
	TotalRecords int               `json:"total_records"`
}

// View is one mounted carousel component: a fixed item list, a record loader
// and the controller coupling the two. All state changes are serialized.
type View[R any] struct {
	id        string
	component string
	items     []domain.Item
	loader    *Loader[R]
	events    domain.EventPublisher

	mu   sync.Mutex
	ctrl *carousel.Controller
}

func newView[R any](
	id, component string,
	items []domain.Item,
	pageSize int,
	loader *Loader[R],
	events domain.EventPublisher,
) (*View[R], error) {
	ctrl, err := carousel.NewController(len(items), pageSize)
	if err != nil {
		return nil, err
	}
	v := &View[R]{
		id:        id,
		component: component,
		items:     items,
		loader:    loader,
		events:    events,
		ctrl:      ctrl,
	}
	loader.OnTransition(v.onLoad)
	return v, nil
}

func (v *View[R]) ID() string { return v.id }

// Done is closed once the record load finished or the view was unmounted.
func (v *View[R]) Done() <-chan struct{} { return v.loader.Done() }

func (v *View[R]) start(ctx context.Context) {
	v.publish(domain.EventMounted, v.Snapshot())
	v.loader.Start(ctx)
}

// Snapshot syncs the page count with the loaded records and returns the view state.
func (v *View[R]) Snapshot() Snapshot[R] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked(v.syncLocked())
}

// Advance moves to the next item and page.
func (v *View[R]) Advance() Snapshot[R] {
	v.mu.Lock()
	state := v.syncLocked()
	v.ctrl.Advance()
	snap := v.snapshotLocked(state)
	v.mu.Unlock()

	metrics.Navigations.WithLabelValues(v.component, "next").Inc()
	v.publish(domain.EventAdvanced, snap)
	return snap
}

// Retreat moves to the previous item and page.
func (v *View[R]) Retreat() Snapshot[R] {
	v.mu.Lock()
	state := v.syncLocked()
	v.ctrl.Retreat()
	snap := v.snapshotLocked(state)
	v.mu.Unlock()

	metrics.Navigations.WithLabelValues(v.component, "prev").Inc()
	v.publish(domain.EventRetreated, snap)
	return snap
}

func (v *View[R]) close() {
	v.loader.Close()
	v.publish(domain.EventUnmounted, v.Snapshot())
}

// syncLocked reads the load state once and recomputes the page count from it,
// so a single operation never sees two different record counts.
func (v *View[R]) syncLocked() domain.LoadState[R] {
	state := v.loader.State()
	v.ctrl.SetRecordCount(state.RecordCount())
	return state
}

func (v *View[R]) snapshotLocked(state domain.LoadState[R]) Snapshot[R] {
	snap := Snapshot[R]{
		ViewID:       v.id,
		Component:    v.component,
		Item:         v.items[v.ctrl.Index()],
		ItemCount:    len(v.items),
		State:        v.ctrl.State(),
		PageSize:     v.ctrl.PageSize(),
		CanPaginate:  v.ctrl.CanPaginate(),
		Status:       state.Status,
		Records:      carousel.VisibleSlice(state.Records, v.ctrl.Page(), v.ctrl.PageSize()),
		TotalRecords: state.RecordCount(),
	}
	if state.Err != nil {
		snap.Error = state.Err.Error()
	}
	return snap
}

func (v *View[R]) onLoad(state domain.LoadState[R]) {
	v.mu.Lock()
	v.ctrl.SetRecordCount(state.RecordCount())
	snap := v.snapshotLocked(state)
	v.mu.Unlock()

	if state.Status == domain.StatusFailed {
		v.publish(domain.EventFailed, snap)
		return
	}
	v.publish(domain.EventLoaded, snap)
}

func (v *View[R]) publish(t domain.EventType, snap Snapshot[R]) {
	event := domain.ViewEvent{
		ViewID:     v.id,
		Component:  v.component,
		Type:       t,
		Index:      snap.State.Index,
		Page:       snap.State.Page,
		TotalPages: snap.State.TotalPages,
		Status:     snap.Status,
		Error:      snap.Error,
		At:         time.Now().UTC(),
	}
	if err := v.events.Publish(context.Background(), event); err != nil {
		slog.Warn("Failed to publish view event", "view_id", v.id, "type", t, "error", err)
		metrics.EventPublishErrors.WithLabelValues(v.component).Inc()
	}
}
