package upstream

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	staleToken = "stale-token"
	freshToken = "fresh-token"
)

// upstreamStub simulates the remote API: data endpoints accept only
// freshToken, and the refresh endpoint exchanges any bearer for it.
type upstreamStub struct {
	refreshCalls atomic.Int64
	dataCalls    atomic.Int64
	refreshFails bool
	lastBody     atomic.Value
}

func (s *upstreamStub) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == RefreshPath {
			s.refreshCalls.Add(1)
			if s.refreshFails {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"data":null,"message":"session expired","isSuccess":false,"errors":[]}`))
				return
			}
			w.Write([]byte(`{"data":{"token":"` + freshToken + `"},"message":null,"isSuccess":true,"errors":[]}`))
			return
		}

		s.dataCalls.Add(1)
		if body, _ := io.ReadAll(r.Body); len(body) > 0 {
			s.lastBody.Store(string(body))
		}
		if r.Header.Get("Authorization") != "Bearer "+freshToken {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"data":null,"message":"unauthorized","isSuccess":false,"errors":[]}`))
			return
		}
		w.Write([]byte(`{"data":{"ok":true},"message":null,"isSuccess":true,"errors":[]}`))
	})
}

func newGuardedClient(t *testing.T, stub *upstreamStub, store tokenstore.Store) (*httptest.Server, *http.Client) {
	t.Helper()
	server := httptest.NewServer(stub.handler())
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout: 5 * time.Second,
		Transport: &AuthTransport{
			Store:   store,
			BaseURL: server.URL,
		},
	}
	return server, client
}

func TestAuthTransport_AttachesStoredToken(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), freshToken))
	stub := &upstreamStub{}
	server, client := newGuardedClient(t, stub, store)

	// Act
	resp, err := client.Get(server.URL + "/api/Employee")

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), stub.dataCalls.Load())
	assert.Equal(t, int64(0), stub.refreshCalls.Load())
}

func TestAuthTransport_NoTokenPassesThroughUnauthorized(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStore()
	stub := &upstreamStub{}
	server, client := newGuardedClient(t, stub, store)

	// Act
	resp, err := client.Get(server.URL + "/api/Employee")

	// Assert: without an attached token there is nothing to refresh.
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int64(0), stub.refreshCalls.Load())
}

func TestAuthTransport_RefreshesOnceAndReplays(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), staleToken))
	stub := &upstreamStub{}
	server, client := newGuardedClient(t, stub, store)

	// Act
	resp, err := client.Get(server.URL + "/api/Employee")

	// Assert: 401 -> refresh -> replay with the fresh token.
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), stub.refreshCalls.Load())
	assert.Equal(t, int64(2), stub.dataCalls.Load())

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, freshToken, stored)
}

func TestAuthTransport_ConcurrentUnauthorizedTriggersSingleRefresh(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), staleToken))
	stub := &upstreamStub{}
	server, client := newGuardedClient(t, stub, store)

	// Act: a burst of requests sharing the same expired token.
	const workers = 16
	statuses := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := client.Get(server.URL + "/api/Employee")
			if err != nil {
				return
			}
			defer resp.Body.Close()
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	// Assert: every request succeeds, and however many hit the expiry
	// window, the refresh endpoint was called exactly once.
	for i, status := range statuses {
		assert.Equal(t, http.StatusOK, status, "request %d", i)
	}
	assert.Equal(t, int64(1), stub.refreshCalls.Load())
}

func TestAuthTransport_ReplayRewindsRequestBody(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), staleToken))
	stub := &upstreamStub{}
	server, client := newGuardedClient(t, stub, store)

	// Act: a POST whose body must survive the 401 and be re-sent on the
	// replay.
	resp, err := client.Post(server.URL+"/api/Employee", "application/json",
		bytes.NewReader([]byte(`{"name":"Ayu"}`)))

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"name":"Ayu"}`, stub.lastBody.Load())
}

func TestAuthTransport_FailedRefreshClearsTokenAndReturnsOriginal401(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), staleToken))
	stub := &upstreamStub{refreshFails: true}
	server, client := newGuardedClient(t, stub, store)

	// Act
	resp, err := client.Get(server.URL + "/api/Employee")

	// Assert: the caller sees the original 401, not a transport error,
	// and the dead token is gone (implicit logout).
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int64(1), stub.refreshCalls.Load())

	_, loadErr := store.Load(context.Background())
	assert.ErrorIs(t, loadErr, tokenstore.ErrNoToken)
}

func TestAuthTransport_RefreshEndpointNeverRecovered(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), staleToken))
	stub := &upstreamStub{refreshFails: true}
	server, client := newGuardedClient(t, stub, store)

	// Act: a direct call to the refresh endpoint that itself 401s.
	resp, err := client.Post(server.URL+RefreshPath, "application/json", nil)

	// Assert: no recursive recovery attempt.
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int64(1), stub.refreshCalls.Load())
}
