package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	zsrhttp "github.com/fivetwenty-io/octane-zsr/internal/http"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncClient_DeliversOneResult(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"_id":"abc"}`))
	}))
	defer server.Close()

	async := zsrhttp.NewAsyncClient(zsrhttp.NewClient(baseURL(t, server.URL)), 1)

	results := async.RestAsync(get(t, async, "/events/abc"))

	res, ok := <-results
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Equal(t, 200, res.Response.StatusCode)

	_, ok = <-results
	assert.False(t, ok)
}

func TestAsyncClient_LimitsInFlight(t *testing.T) {
	t.Parallel()

	var (
		current atomic.Int32
		peak    atomic.Int32
	)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		now := current.Add(1)
		defer current.Add(-1)

		for {
			seen := peak.Load()
			if now <= seen || peak.CompareAndSwap(seen, now) {
				break
			}
		}

		time.Sleep(20 * time.Millisecond)
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	async := zsrhttp.NewAsyncClient(zsrhttp.NewClient(baseURL(t, server.URL)), 2)

	var wg sync.WaitGroup

	for range 6 {
		req := get(t, async, "/games")

		wg.Add(1)

		go func() {
			defer wg.Done()

			res := <-async.RestAsync(req)
			assert.NoError(t, res.Err)
		}()
	}

	wg.Wait()
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestAsyncClient_ContextCanceledWhileWaiting(t *testing.T) {
	t.Parallel()

	started := make(chan struct{}, 1)
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		started <- struct{}{}
		<-release
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	async := zsrhttp.NewAsyncClient(zsrhttp.NewClient(baseURL(t, server.URL)), 1)

	blocker := async.RestAsync(get(t, async, "/events"))
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	waiting := async.RestAsync(get(t, async, "/matches").WithContext(ctx))

	cancel()

	res := <-waiting
	require.ErrorIs(t, res.Err, context.Canceled)

	close(release)

	first := <-blocker
	require.NoError(t, first.Err)
}

func TestAsyncClient_QueryAsync(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"name":"RLCS"}`))
	}))
	defer server.Close()

	async := zsrhttp.NewAsyncClient(zsrhttp.NewClient(baseURL(t, server.URL)), 0)

	raw, err := zsr.QueryRawAsync(context.Background(), rawEndpoint{path: "/events/rlcs"}, async)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"RLCS"}`, string(raw))
}

type rawEndpoint struct {
	zsr.BaseEndpoint

	path string
}

func (e rawEndpoint) Path() string { return e.path }
