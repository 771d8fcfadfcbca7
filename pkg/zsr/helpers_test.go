package zsr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
)

var errConnectionRefused = errors.New("connection refused")

// fakeClient serves requests from a handler and records every request. It
// implements both the blocking and async transports.
type fakeClient struct {
	base    *url.URL
	handler func(req *http.Request) (*zsr.Response, error)

	mu       sync.Mutex
	requests []*http.Request
}

func newFakeClient(handler func(req *http.Request) (*zsr.Response, error)) *fakeClient {
	base, _ := url.Parse("https://zsr.test/")

	return &fakeClient{base: base, handler: handler}
}

func (f *fakeClient) RestEndpoint(path string) (*url.URL, error) {
	return f.base.Parse(strings.TrimPrefix(path, "/")) //nolint:wrapcheck
}

func (f *fakeClient) Rest(req *http.Request) (*zsr.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	return f.handler(req)
}

func (f *fakeClient) RestAsync(req *http.Request) <-chan zsr.Result {
	results := make(chan zsr.Result, 1)

	go func() {
		defer close(results)

		resp, err := f.Rest(req)
		results <- zsr.Result{Response: resp, Err: err}
	}()

	return results
}

func (f *fakeClient) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.requests)
}

func (f *fakeClient) requestedPages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	pages := make([]string, 0, len(f.requests))
	for _, req := range f.requests {
		pages = append(pages, req.URL.Query().Get("page"))
	}

	return pages
}

func jsonResponse(status int, body string) *zsr.Response {
	return &zsr.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(body),
	}
}

func staticHandler(status int, body string) func(*http.Request) (*zsr.Response, error) {
	return func(*http.Request) (*zsr.Response, error) {
		return jsonResponse(status, body), nil
	}
}

// pagedHandler serves total numbered items under the "items" key, honoring
// page and perPage (default perPage 20).
func pagedHandler(total int) func(*http.Request) (*zsr.Response, error) {
	return func(req *http.Request) (*zsr.Response, error) {
		query := req.URL.Query()

		page := 1
		if raw := query.Get("page"); raw != "" {
			page, _ = strconv.Atoi(raw)
		}

		perPage := 20
		if raw := query.Get("perPage"); raw != "" {
			perPage, _ = strconv.Atoi(raw)
		}

		start := (page - 1) * perPage
		end := min(start+perPage, total)

		items := make([]widget, 0)
		for i := start; i < end; i++ {
			items = append(items, widget{ID: fmt.Sprintf("w%d", i), Rank: i})
		}

		body, err := json.Marshal(map[string]interface{}{
			"teams":    items,
			"page":     page,
			"perPage":  perPage,
			"pageSize": len(items),
		})
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return &zsr.Response{StatusCode: http.StatusOK, Body: body}, nil
	}
}

type widget struct {
	ID   string `json:"_id"  validate:"required"`
	Rank int    `json:"rank"`
}

type widgetParams struct {
	Name  *string                  `url:"name,omitempty"`
	Tier  *string                  `url:"tier,omitempty"`
	Alive *bool                    `url:"alive,omitempty"`
	Sort  *zsr.Sort[widgetSortKey] `url:"sort,omitempty"`
}

type widgetSortKey string

func (k widgetSortKey) SortKey() string { return string(k) }

// widgetEndpoint is a plain descriptor.
type widgetEndpoint struct {
	zsr.BaseEndpoint

	id string
}

func (e widgetEndpoint) Path() string { return "widgets/" + e.id }

// listWidgets is a paginated descriptor with query parameters.
type listWidgets struct {
	zsr.BaseEndpoint
	zsr.Paged

	params widgetParams
}

func (listWidgets) Path() string { return "/widgets" }

func (e listWidgets) QueryParameters() (*zsr.QueryParams, error) {
	return zsr.ParamsFrom(e.params)
}

// createWidget posts a JSON body.
type createWidget struct {
	zsr.BaseEndpoint

	name string
}

func (createWidget) Path() string   { return "widgets" }
func (createWidget) Method() string { return http.MethodPost }

func (e createWidget) Body() (*zsr.Body, error) {
	return zsr.JSONBody(map[string]string{"name": e.name})
}

// brokenBody fails to encode its body.
type brokenBody struct {
	zsr.BaseEndpoint
}

func (brokenBody) Path() string { return "widgets" }

func (brokenBody) Body() (*zsr.Body, error) {
	return zsr.JSONBody(make(chan int))
}

func strPtr(s string) *string { return &s }
