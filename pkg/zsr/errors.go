package zsr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrMissingPagination = errors.New("paginated response carries no pagination metadata")
	ErrMissingCollection = errors.New("response carries no collection array")
	ErrNoMoreItems       = errors.New("no more items")
	ErrTransportClosed   = errors.New("transport closed the result channel without a result")
	ErrNoResponse        = errors.New("transport returned neither a response nor an error")
	ErrBodyEncoding      = errors.New("failed to encode request body")
	ErrParamEncoding     = errors.New("failed to encode query parameters")
	ErrInvalidDirection  = errors.New("invalid sort direction")
)

// ErrorKind tags the stage of a query that failed.
type ErrorKind int

const (
	// KindBody is a failure to encode the request body or query parameters.
	KindBody ErrorKind = iota + 1
	// KindClient is a failure reported by the transport.
	KindClient
	// KindURL is a failure to resolve the endpoint path or build the request URL.
	KindURL
	// KindResponse is a failure to interpret the HTTP response.
	KindResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindBody:
		return "body"
	case KindClient:
		return "client"
	case KindURL:
		return "url"
	case KindResponse:
		return "response"
	default:
		return "unknown"
	}
}

// APIError is the single error type returned by every query entry point.
type APIError struct {
	Kind ErrorKind
	// URL is the request URL. It is empty when the request was never built.
	URL string
	Err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch e.Kind {
	case KindBody:
		return fmt.Sprintf("failed to create request data: %v", e.Err)
	case KindClient:
		if e.URL != "" {
			return fmt.Sprintf("client error for url %s: %v", e.URL, e.Err)
		}

		return fmt.Sprintf("client error: %v", e.Err)
	case KindURL:
		return fmt.Sprintf("url parse error: %v", e.Err)
	case KindResponse:
		return fmt.Sprintf("error in HTTP response for url %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("api error: %v", e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// ResponseErrorKind tags the reason an HTTP response could not be used.
type ResponseErrorKind int

const (
	// KindParse means the body was not valid JSON.
	KindParse ResponseErrorKind = iota + 1
	// KindHTTPStatus means the status code was outside the 2xx range.
	KindHTTPStatus
	// KindDataType means the JSON did not fit the requested type.
	KindDataType
	// KindMissingPagination means a paginated response had no page metadata.
	KindMissingPagination
)

func (k ResponseErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindHTTPStatus:
		return "http status"
	case KindDataType:
		return "data type"
	case KindMissingPagination:
		return "missing pagination"
	default:
		return "unknown"
	}
}

// ResponseError describes why a response body could not be turned into the
// requested value. Value holds the parsed JSON for status and data type
// failures.
type ResponseError struct {
	Kind       ResponseErrorKind
	StatusCode int
	Value      json.RawMessage
	TypeName   string
	Err        error
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	switch e.Kind {
	case KindParse:
		return fmt.Sprintf("failed to parse JSON: %v", e.Err)
	case KindHTTPStatus:
		return fmt.Sprintf("HTTP status %d: %s", e.StatusCode, string(e.Value))
	case KindDataType:
		return fmt.Sprintf("could not decode JSON into %s: %v", e.TypeName, e.Err)
	case KindMissingPagination:
		return ErrMissingPagination.Error()
	default:
		return fmt.Sprintf("response error: %v", e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *ResponseError) Unwrap() error {
	return e.Err
}

// PageError reports the page a traversal failed on. A new traversal started
// with WithStartPage(Page) retries from the failed page.
type PageError struct {
	Page int
	Err  error
}

// Error implements the error interface.
func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

// Unwrap returns the underlying error.
func (e *PageError) Unwrap() error {
	return e.Err
}

// AsAPIError extracts an APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// AsResponseError extracts a ResponseError from err.
func AsResponseError(err error) (*ResponseError, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr, true
	}

	return nil, false
}

// IsBody reports whether err is a body or parameter encoding failure.
func IsBody(err error) bool {
	return hasKind(err, KindBody)
}

// IsClient reports whether err is a transport failure.
func IsClient(err error) bool {
	return hasKind(err, KindClient)
}

// IsURL reports whether err is a URL resolution failure.
func IsURL(err error) bool {
	return hasKind(err, KindURL)
}

// IsParse reports whether the response body was not JSON.
func IsParse(err error) bool {
	return hasResponseKind(err, KindParse)
}

// IsHTTPStatus reports whether the response had a non-2xx status.
func IsHTTPStatus(err error) bool {
	return hasResponseKind(err, KindHTTPStatus)
}

// IsDataType reports whether the response did not match the requested type.
func IsDataType(err error) bool {
	return hasResponseKind(err, KindDataType)
}

// IsNotFound reports whether err is an HTTP 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == 404
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	respErr, ok := AsResponseError(err)
	if !ok {
		return 0
	}

	return respErr.StatusCode
}

func hasKind(err error, kind ErrorKind) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.Kind == kind
}

func hasResponseKind(err error, kind ResponseErrorKind) bool {
	respErr, ok := AsResponseError(err)

	return ok && respErr.Kind == kind
}
