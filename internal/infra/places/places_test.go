package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robotcarousel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMaps struct {
	server        *httptest.Server
	scriptLoads   atomic.Int32
	searches      atomic.Int32
	scriptStatus  atomic.Int32
	scriptGate    atomic.Value // chan struct{}; script requests block until it is closed
	searchPayload string
	lastQuery     atomic.Value
}

func newFakeMaps(t *testing.T, searchPayload string) *fakeMaps {
	t.Helper()
	f := &fakeMaps{searchPayload: searchPayload}
	f.scriptStatus.Store(http.StatusOK)

	mux := http.NewServeMux()
	mux.HandleFunc("/maps/api/js", func(w http.ResponseWriter, r *http.Request) {
		f.scriptLoads.Add(1)
		if gate, ok := f.scriptGate.Load().(chan struct{}); ok {
			<-gate
		}
		w.WriteHeader(int(f.scriptStatus.Load()))
		_, _ = w.Write([]byte("window.google = {maps: {}};"))
	})
	mux.HandleFunc("/maps/api/place/nearbysearch/json", func(w http.ResponseWriter, r *http.Request) {
		f.searches.Add(1)
		f.lastQuery.Store(r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(f.searchPayload))
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeMaps) source() *Source {
	client := f.server.Client()
	return NewSource(
		NewBootstrap(f.server.URL, "test-key", client),
		NewService(f.server.URL, "test-key", client),
	)
}

func TestSource_Fetch_MapsResults(t *testing.T) {
	maps := newFakeMaps(t, `{"status":"OK","results":[
		{"place_id":"p1","name":"Zuni Cafe","vicinity":"1658 Market St","rating":4.4},
		{"place_id":"p2","name":"Unrated Diner","vicinity":"1 Main St"}
	]}`)

	places, err := maps.source().Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, "p1", places[0].PlaceID)
	assert.Equal(t, "1658 Market St", places[0].Address)
	require.NotNil(t, places[0].Rating)
	assert.InDelta(t, 4.4, *places[0].Rating, 1e-9)
	assert.Nil(t, places[1].Rating)

	q := maps.lastQuery.Load().(url.Values)
	assert.Equal(t, []string{"37.7749,-122.4194"}, q["location"])
	assert.Equal(t, []string{"1500"}, q["radius"])
	assert.Equal(t, []string{"restaurant"}, q["type"])
	assert.Equal(t, []string{"test-key"}, q["key"])
}

func TestSource_Fetch_NonOKStatusIsServiceError(t *testing.T) {
	maps := newFakeMaps(t, `{"status":"ZERO_RESULTS","results":[]}`)

	_, err := maps.source().Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrService))

	var loadErr *domain.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "ZERO_RESULTS", loadErr.Status)
	assert.Equal(t, "failed to fetch places: ZERO_RESULTS", err.Error())
}

func TestSource_Fetch_MalformedBodyIsDecodeError(t *testing.T) {
	maps := newFakeMaps(t, `{"status":`)

	_, err := maps.source().Fetch(context.Background())
	assert.True(t, errors.Is(err, domain.ErrDecode))
}

func TestSource_Fetch_ScriptFailureSkipsSearch(t *testing.T) {
	maps := newFakeMaps(t, `{"status":"OK","results":[]}`)
	maps.scriptStatus.Store(http.StatusForbidden)

	_, err := maps.source().Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrScriptLoad))
	assert.Equal(t, int32(0), maps.searches.Load())
}

func TestBootstrap_LoadsOnceForConcurrentCallers(t *testing.T) {
	maps := newFakeMaps(t, `{"status":"OK","results":[]}`)
	boot := NewBootstrap(maps.server.URL, "test-key", maps.server.Client())
	assert.False(t, boot.Loaded())

	var wg sync.WaitGroup
	errs := make([]error, 20)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = boot.EnsureLoaded(context.Background())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	require.NoError(t, boot.EnsureLoaded(context.Background()))
	assert.True(t, boot.Loaded())
	assert.Equal(t, int32(1), maps.scriptLoads.Load())
}

func TestBootstrap_FailureIsSharedThenRetried(t *testing.T) {
	maps := newFakeMaps(t, `{"status":"OK","results":[]}`)
	maps.scriptStatus.Store(http.StatusServiceUnavailable)
	gate := make(chan struct{})
	maps.scriptGate.Store(gate)
	boot := NewBootstrap(maps.server.URL, "test-key", maps.server.Client())

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = boot.EnsureLoaded(context.Background())
		}(i)
	}
	require.Eventually(t, func() bool {
		return boot.waiters.Load() == int32(len(errs)) && maps.scriptLoads.Load() == 1
	}, 2*time.Second, 5*time.Millisecond)
	close(gate)
	wg.Wait()

	for _, err := range errs {
		assert.True(t, errors.Is(err, domain.ErrScriptLoad))
	}
	assert.False(t, boot.Loaded())
	assert.Equal(t, int32(1), maps.scriptLoads.Load())

	// The failure is not kept: the next caller requests the script again.
	maps.scriptStatus.Store(http.StatusOK)
	require.NoError(t, boot.EnsureLoaded(context.Background()))
	assert.True(t, boot.Loaded())
	assert.Equal(t, int32(2), maps.scriptLoads.Load())

	require.NoError(t, boot.EnsureLoaded(context.Background()))
	assert.Equal(t, int32(2), maps.scriptLoads.Load())
}

func TestSource_Fetch_RecoversAfterScriptFailure(t *testing.T) {
	maps := newFakeMaps(t, `{"status":"OK","results":[{"place_id":"p1","name":"Zuni Cafe","vicinity":"1658 Market St"}]}`)
	maps.scriptStatus.Store(http.StatusServiceUnavailable)
	src := maps.source()

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrScriptLoad))
	assert.Equal(t, int32(0), maps.searches.Load())

	maps.scriptStatus.Store(http.StatusOK)
	places, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, int32(2), maps.scriptLoads.Load())
	assert.Equal(t, int32(1), maps.searches.Load())
}

func TestBootstrap_CancelledWaitDoesNotAbortLoad(t *testing.T) {
	maps := newFakeMaps(t, `{"status":"OK","results":[]}`)
	boot := NewBootstrap(maps.server.URL, "test-key", maps.server.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// The wait may observe either outcome; the load itself must still complete.
	_ = boot.EnsureLoaded(ctx)

	require.NoError(t, boot.EnsureLoaded(context.Background()))
	assert.Equal(t, int32(1), maps.scriptLoads.Load())
}

func TestService_NearbySearch_InvokesCallback(t *testing.T) {
	maps := newFakeMaps(t, `{"status":"OVER_QUERY_LIMIT","results":[]}`)
	svc := NewService(maps.server.URL, "test-key", maps.server.Client())

	done := make(chan Status, 1)
	svc.NearbySearch(context.Background(), NearbyRequest{Location: SearchCenter, Radius: SearchRadius, Type: SearchType},
		func(results []Result, status Status, err error) {
			assert.NoError(t, err)
			assert.Empty(t, results)
			done <- status
		})

	assert.Equal(t, Status("OVER_QUERY_LIMIT"), <-done)
}
