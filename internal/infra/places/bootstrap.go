package places

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/robotcarousel/internal/domain"
	"github.com/robotcarousel/internal/infra/metrics"
)

// Bootstrap loads the maps API bootstrap script for the whole process.
//
// Concurrent callers share one in-flight attempt. A successful load is kept
// for the lifetime of the Bootstrap. A failed load is reported to every caller
// waiting on that attempt and then forgotten, so the next EnsureLoaded (a
// remounted view) requests the script again.
type Bootstrap struct {
	url    string
	client *http.Client

	mu      sync.Mutex
	loaded  bool
	pending *attempt

	// callers currently blocked on an attempt
	waiters atomic.Int32
}

type attempt struct {
	done chan struct{}
	err  error
}

func NewBootstrap(baseURL, apiKey string, client *http.Client) *Bootstrap {
	q := url.Values{}
	q.Set("key", apiKey)
	q.Set("libraries", "places")

	if client == nil {
		client = http.DefaultClient
	}
	return &Bootstrap{
		url:    baseURL + "/maps/api/js?" + q.Encode(),
		client: client,
	}
}

// EnsureLoaded blocks until the script is loaded, the current attempt failed,
// or ctx is done. Cancelling ctx abandons the wait, not the load.
func (b *Bootstrap) EnsureLoaded(ctx context.Context) error {
	b.mu.Lock()
	if b.loaded {
		b.mu.Unlock()
		return nil
	}
	a := b.pending
	if a == nil {
		a = &attempt{done: make(chan struct{})}
		b.pending = a
		go b.load(context.WithoutCancel(ctx), a)
	}
	b.mu.Unlock()

	b.waiters.Add(1)
	defer b.waiters.Add(-1)

	select {
	case <-a.done:
		return a.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Loaded reports whether a bootstrap completed successfully.
func (b *Bootstrap) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}

func (b *Bootstrap) load(ctx context.Context, a *attempt) {
	err := b.fetchScript(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = nil
	if err != nil {
		slog.Error("Failed to load maps API", "error", err)
		metrics.ScriptLoads.WithLabelValues("error").Inc()
		a.err = domain.NewScriptLoadError(err)
	} else {
		slog.Info("Maps API loaded")
		metrics.ScriptLoads.WithLabelValues("success").Inc()
		b.loaded = true
	}
	close(a.done)
}

func (b *Bootstrap) fetchScript(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("Failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bootstrap returned status %d", resp.StatusCode)
	}
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("failed to read bootstrap script: %w", err)
	}
	return nil
}
