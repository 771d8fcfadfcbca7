package http

import (
	"net/http"
	"net/url"

	"github.com/fivetwenty-io/octane-zsr/internal/constants"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"golang.org/x/sync/semaphore"
)

// AsyncClient runs each exchange of a Client on its own goroutine, with at
// most maxInFlight exchanges on the wire. It implements zsr.AsyncClient.
type AsyncClient struct {
	client *Client
	sem    *semaphore.Weighted
}

var _ zsr.AsyncClient = (*AsyncClient)(nil)

// NewAsyncClient wraps client. maxInFlight <= 0 uses the default limit.
func NewAsyncClient(client *Client, maxInFlight int64) *AsyncClient {
	if maxInFlight <= 0 {
		maxInFlight = constants.DefaultMaxInFlight
	}

	return &AsyncClient{
		client: client,
		sem:    semaphore.NewWeighted(maxInFlight),
	}
}

// RestEndpoint implements zsr.RestClient.
func (a *AsyncClient) RestEndpoint(path string) (*url.URL, error) {
	return a.client.RestEndpoint(path)
}

// RestAsync implements zsr.AsyncClient. The channel receives one Result
// and is then closed. Waiting for a slot honours the request context.
func (a *AsyncClient) RestAsync(req *http.Request) <-chan zsr.Result {
	results := make(chan zsr.Result, 1)

	go func() {
		defer close(results)

		if req == nil {
			results <- zsr.Result{Err: ErrNilRequest}

			return
		}

		err := a.sem.Acquire(req.Context(), 1)
		if err != nil {
			results <- zsr.Result{Err: &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}}

			return
		}
		defer a.sem.Release(1)

		resp, err := a.client.Rest(req)
		results <- zsr.Result{Response: resp, Err: err}
	}()

	return results
}
