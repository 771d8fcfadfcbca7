package zsr

import (
	"context"
	"net/http"
)

// Page wraps a pageable descriptor with a page number and an optional page
// size. Page is itself an Endpoint: its parameters are the descriptor's
// parameters extended with page and perPage.
type Page struct {
	endpoint Pageable
	number   int
	perPage  int
}

// PageBuilder configures a Page.
type PageBuilder struct {
	endpoint Pageable
	number   int
	perPage  int
}

// NewPage starts a page builder for ep at page 1 with the server's default
// page size.
func NewPage(ep Pageable) *PageBuilder {
	return &PageBuilder{endpoint: ep, number: 1}
}

// Page sets the 1-based page number. Values below 1 mean page 1.
func (b *PageBuilder) Page(n int) *PageBuilder {
	b.number = n

	return b
}

// PerPage sets the page size. Values below 1 leave it to the server.
func (b *PageBuilder) PerPage(n int) *PageBuilder {
	b.perPage = n

	return b
}

// Build returns the configured page.
func (b *PageBuilder) Build() Page {
	number := b.number
	if number < 1 {
		number = 1
	}

	perPage := b.perPage
	if perPage < 0 {
		perPage = 0
	}

	return Page{endpoint: b.endpoint, number: number, perPage: perPage}
}

// Number returns the page number.
func (p Page) Number() int {
	return p.number
}

// PerPage returns the page size and whether one was set.
func (p Page) PerPage() (int, bool) {
	return p.perPage, p.perPage > 0
}

// Endpoint returns the wrapped descriptor.
func (p Page) Endpoint() Pageable {
	return p.endpoint
}

// Params returns only the page parameters. page is omitted for page 1 and
// perPage when unset.
func (p Page) Params() *QueryParams {
	params := NewQueryParams()

	if p.number > 1 {
		params.SetInt(ParamPage, p.number)
	}

	if p.perPage > 0 {
		params.SetInt(ParamPerPage, p.perPage)
	}

	return params
}

// Path implements Endpoint.
func (p Page) Path() string {
	return p.endpoint.Path()
}

// Method implements Endpoint.
func (p Page) Method() string {
	method := p.endpoint.Method()
	if method == "" {
		return http.MethodGet
	}

	return method
}

// QueryParameters implements Endpoint.
func (p Page) QueryParameters() (*QueryParams, error) {
	params, err := p.endpoint.QueryParameters()
	if err != nil {
		return nil, err
	}

	return params.Clone().Extend(p.Params()), nil
}

// Body implements Endpoint.
func (p Page) Body() (*Body, error) {
	return p.endpoint.Body()
}

// QueryPage fetches exactly one page on a blocking client. The returned
// Pagination is nil when the server sent none.
func QueryPage[T any](ctx context.Context, p Page, c Client) (Collection[T], error) {
	return Query[Collection[T]](ctx, p, c)
}

// QueryPageAsync fetches exactly one page on an async client.
func QueryPageAsync[T any](ctx context.Context, p Page, c AsyncClient) (Collection[T], error) {
	return QueryAsync[Collection[T]](ctx, p, c)
}

// fetchPage dispatches one page request for a traversal. A collection
// without pagination metadata is a response error there, since the next
// step cannot be decided.
func fetchPage[T any](ctx context.Context, p Page, c RestClient, exec executor) (Collection[T], error) {
	coll, requestURL, err := dispatch[Collection[T]](ctx, p, c, exec)
	if err != nil {
		return Collection[T]{}, err
	}

	if coll.Pagination == nil {
		return Collection[T]{}, &APIError{
			Kind: KindResponse,
			URL:  requestURL,
			Err:  &ResponseError{Kind: KindMissingPagination, Err: ErrMissingPagination},
		}
	}

	return coll, nil
}

// TraversalOption configures Iter and Stream.
type TraversalOption func(*traversalConfig)

type traversalConfig struct {
	startPage int
	perPage   int
}

// WithStartPage begins the traversal at page n.
func WithStartPage(n int) TraversalOption {
	return func(c *traversalConfig) {
		c.startPage = n
	}
}

// WithPerPage requests n items per page.
func WithPerPage(n int) TraversalOption {
	return func(c *traversalConfig) {
		c.perPage = n
	}
}

func newTraversalConfig(opts []TraversalOption) traversalConfig {
	cfg := traversalConfig{startPage: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.startPage < 1 {
		cfg.startPage = 1
	}

	return cfg
}
