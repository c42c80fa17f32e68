package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robotcarousel/internal/domain"
	"github.com/robotcarousel/internal/infra/metrics"
	"github.com/robotcarousel/pkg/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Loader performs the single record fetch of one mounted view.
//
// The state moves Loading -> Ready or Loading -> Failed exactly once. After
// Close the in-flight fetch is left to finish but its result is dropped.
type Loader[R any] struct {
	source  domain.RecordSource[R]
	sampler *logging.ErrorSampler
	observe func(domain.LoadState[R])

	// notify orders the terminal transition against Close: once Close
	// returns no observer runs, and Close waits out one already running.
	notify sync.Mutex

	mu     sync.RWMutex
	state  domain.LoadState[R]
	closed bool

	startOnce sync.Once
	doneOnce  sync.Once
	done      chan struct{}
}

func NewLoader[R any](source domain.RecordSource[R], sampler *logging.ErrorSampler) *Loader[R] {
	if sampler == nil {
		sampler = logging.NewErrorSampler(10)
	}
	return &Loader[R]{
		source:  source,
		sampler: sampler,
		state:   domain.Loading[R](),
		done:    make(chan struct{}),
	}
}

// OnTransition registers fn to run after the terminal transition and before
// Done is closed. It must be called before Start.
func (l *Loader[R]) OnTransition(fn func(domain.LoadState[R])) {
	l.observe = fn
}

// Start launches the fetch. Only the first call has any effect.
func (l *Loader[R]) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		go l.run(ctx)
	})
}

// State returns the current load state.
func (l *Loader[R]) State() domain.LoadState[R] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Done is closed once the load reached a terminal state or the loader was closed.
func (l *Loader[R]) Done() <-chan struct{} {
	return l.done
}

// Close detaches the loader from its view.
func (l *Loader[R]) Close() {
	l.notify.Lock()
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.notify.Unlock()
	l.finish()
}

func (l *Loader[R]) finish() {
	l.doneOnce.Do(func() { close(l.done) })
}

func (l *Loader[R]) run(ctx context.Context) {
	name := l.source.Name()

	tr := otel.Tracer("robot-carousel")
	ctx, span := tr.Start(ctx, "fetchRecords",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("source", name)),
	)
	defer span.End()

	start := time.Now()
	records, err := l.source.Fetch(ctx)
	metrics.RecordFetchDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	var next domain.LoadState[R]
	if err != nil {
		err = asLoadError(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		next = domain.Failed[R](err)
	} else {
		span.SetAttributes(attribute.Int("records", len(records)))
		next = domain.Ready(records)
	}

	l.notify.Lock()
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		l.notify.Unlock()
		slog.Debug("Discarding fetch result after teardown", "source", name)
		metrics.DiscardedResults.WithLabelValues(name).Inc()
		return
	}
	l.state = next
	l.mu.Unlock()

	l.report(name, next)
	if l.observe != nil {
		l.observe(next)
	}
	l.notify.Unlock()
	l.finish()
}

func (l *Loader[R]) report(name string, state domain.LoadState[R]) {
	if state.Status == domain.StatusReady {
		metrics.RecordFetches.WithLabelValues(name, "success").Inc()
		metrics.RecordsLoaded.WithLabelValues(name).Observe(float64(len(state.Records)))
		l.sampler.ClearPrefix(name + ":")
		slog.Info("Records loaded", "source", name, "count", len(state.Records))
		return
	}

	kind := string(errorKind(state.Err))
	metrics.RecordFetches.WithLabelValues(name, kind).Inc()
	if ok, n := l.sampler.Sample(name + ":" + kind); ok {
		slog.Error("Record fetch failed", "source", name, "kind", kind, "occurrences", n, "error", state.Err)
	}
}

// asLoadError keeps the failure taxonomy closed: anything a source returns
// that is not already a LoadError is reported as a network failure.
func asLoadError(err error) error {
	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		return err
	}
	return domain.NewNetworkError(0, err)
}

func errorKind(err error) domain.ErrorKind {
	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Kind
	}
	return domain.KindNetwork
}
