package zsr

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals
var validate = validator.New(validator.WithRequiredStructEnabled())

// executor runs one built request. Blocking and async queries differ only
// in the executor they pass to dispatch.
type executor func(req *http.Request) (*Response, error)

func blocking(c Client) executor {
	return c.Rest
}

func awaiting(c AsyncClient) executor {
	return func(req *http.Request) (*Response, error) {
		results := c.RestAsync(req)

		select {
		case res, ok := <-results:
			if !ok {
				return nil, ErrTransportClosed
			}

			return res.Response, res.Err
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}
}

// Query executes ep on a blocking client and decodes the response into T.
func Query[T any](ctx context.Context, ep Endpoint, c Client) (T, error) {
	value, _, err := dispatch[T](ctx, ep, c, blocking(c))

	return value, err
}

// QueryAsync executes ep on an async client and decodes the response into T.
// The calling goroutine waits only for the transport result or ctx.
func QueryAsync[T any](ctx context.Context, ep Endpoint, c AsyncClient) (T, error) {
	value, _, err := dispatch[T](ctx, ep, c, awaiting(c))

	return value, err
}

// QueryRaw executes ep and returns the response JSON undecoded.
func QueryRaw(ctx context.Context, ep Endpoint, c Client) (json.RawMessage, error) {
	return Query[json.RawMessage](ctx, ep, c)
}

// QueryRawAsync is QueryRaw on an async client.
func QueryRawAsync(ctx context.Context, ep Endpoint, c AsyncClient) (json.RawMessage, error) {
	return QueryAsync[json.RawMessage](ctx, ep, c)
}

// BuildRequest builds the HTTP request for ep without sending it.
func BuildRequest(ctx context.Context, ep Endpoint, c RestClient) (*http.Request, error) {
	u, err := c.RestEndpoint(ep.Path())
	if err != nil {
		return nil, &APIError{Kind: KindURL, Err: err}
	}

	params, err := ep.QueryParameters()
	if err != nil {
		return nil, &APIError{Kind: KindBody, Err: err}
	}

	params.ApplyTo(u)

	body, err := ep.Body()
	if err != nil {
		return nil, &APIError{Kind: KindBody, Err: err}
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body.Data)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method(), u.String(), reader)
	if err != nil {
		return nil, &APIError{Kind: KindURL, Err: err}
	}

	if body != nil {
		req.Header.Set("Content-Type", body.ContentType)
	}

	return req, nil
}

// dispatch is the one query algorithm. It returns the request URL so that
// callers can attach it to errors found after decoding.
func dispatch[T any](ctx context.Context, ep Endpoint, c RestClient, exec executor) (T, string, error) {
	var zero T

	req, err := BuildRequest(ctx, ep, c)
	if err != nil {
		return zero, "", err
	}

	requestURL := req.URL.String()

	resp, err := exec(req)
	if err != nil {
		return zero, requestURL, &APIError{Kind: KindClient, URL: requestURL, Err: err}
	}

	if resp == nil {
		return zero, requestURL, &APIError{Kind: KindClient, URL: requestURL, Err: ErrNoResponse}
	}

	value, err := decode[T](resp)
	if err != nil {
		return zero, requestURL, &APIError{Kind: KindResponse, URL: requestURL, Err: err}
	}

	return value, requestURL, nil
}

// decode parses the body as JSON, then checks the status, then coerces the
// JSON into T.
func decode[T any](resp *Response) (T, error) {
	var (
		zero T
		raw  json.RawMessage
	)

	err := json.Unmarshal(resp.Body, &raw)
	if err != nil {
		return zero, &ResponseError{Kind: KindParse, StatusCode: resp.StatusCode, Err: err}
	}

	if !resp.IsSuccess() {
		return zero, &ResponseError{Kind: KindHTTPStatus, StatusCode: resp.StatusCode, Value: raw}
	}

	var out T

	err = json.Unmarshal(raw, &out)
	if err == nil {
		err = validateValue(reflect.ValueOf(&out))
	}

	if err != nil {
		return zero, &ResponseError{
			Kind:       KindDataType,
			StatusCode: resp.StatusCode,
			Value:      raw,
			TypeName:   reflect.TypeFor[T]().String(),
			Err:        err,
		}
	}

	return out, nil
}

// validateValue checks `validate` tags on structs, including structs held in
// slices.
func validateValue(v reflect.Value) error {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}

		v = v.Elem()
	}

	switch v.Kind() { //nolint:exhaustive
	case reflect.Struct:
		return validate.Struct(v.Interface())
	case reflect.Slice, reflect.Array:
		if !holdsStructs(v.Type().Elem()) {
			return nil
		}

		for i := range v.Len() {
			err := validateValue(v.Index(i))
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func holdsStructs(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct || t.Kind() == reflect.Interface
}
