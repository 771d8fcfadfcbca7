package zsr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Content types used by request bodies.
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// Endpoint describes one API call. Implementations must be deterministic:
// the same descriptor always yields the same path, parameters and body.
type Endpoint interface {
	// Path is relative to the client's base URL.
	Path() string
	Method() string
	QueryParameters() (*QueryParams, error)
	// Body returns nil when the request carries no body.
	Body() (*Body, error)
}

// Pageable marks descriptors whose responses are paginated collections.
// Embed Paged to implement it.
type Pageable interface {
	Endpoint
	pageable()
}

// BaseEndpoint supplies the defaults: GET, no parameters, no body.
type BaseEndpoint struct{}

// Method returns GET.
func (BaseEndpoint) Method() string {
	return http.MethodGet
}

// QueryParameters returns an empty parameter list.
func (BaseEndpoint) QueryParameters() (*QueryParams, error) {
	return NewQueryParams(), nil
}

// Body returns no body.
func (BaseEndpoint) Body() (*Body, error) {
	return nil, nil //nolint:nilnil
}

// Paged opts a descriptor into pagination.
type Paged struct{}

func (Paged) pageable() {}

// Body is an encoded request body with its content type.
type Body struct {
	ContentType string
	Data        []byte
}

// JSONBody encodes v as an application/json body.
func JSONBody(v any) (*Body, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBodyEncoding, err)
	}

	return &Body{ContentType: ContentTypeJSON, Data: data}, nil
}

// FormBody encodes values as an application/x-www-form-urlencoded body.
func FormBody(values *QueryParams) (*Body, error) {
	if values == nil {
		return nil, fmt.Errorf("%w: nil form values", ErrBodyEncoding)
	}

	return &Body{ContentType: ContentTypeForm, Data: []byte(values.Encode())}, nil
}

// FormBodyFrom encodes the url-tagged fields of v as a form body.
func FormBodyFrom(v any) (*Body, error) {
	params, err := ParamsFrom(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBodyEncoding, err)
	}

	return FormBody(params)
}

// FormBodyValues encodes url.Values as a form body.
func FormBodyValues(values url.Values) *Body {
	return &Body{ContentType: ContentTypeForm, Data: []byte(values.Encode())}
}
