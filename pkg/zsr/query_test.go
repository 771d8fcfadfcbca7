package zsr_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_DecodesResponse(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK, `{"_id":"abc","rank":3}`))

	got, err := zsr.Query[widget](context.Background(), widgetEndpoint{id: "abc"}, client)
	require.NoError(t, err)
	assert.Equal(t, widget{ID: "abc", Rank: 3}, got)

	require.Equal(t, 1, client.requestCount())
	assert.Equal(t, "https://zsr.test/widgets/abc", client.requests[0].URL.String())
	assert.Equal(t, http.MethodGet, client.requests[0].Method)
}

func TestQuery_AsyncParity(t *testing.T) {
	t.Parallel()

	ep := listWidgets{params: widgetParams{
		Name: strPtr("RLCS"),
		Sort: zsr.SortBy(widgetSortKey("name"), zsr.Desc),
	}}

	syncClient := newFakeClient(staticHandler(http.StatusOK, `{"teams":[],"page":1,"perPage":20,"pageSize":0}`))
	asyncClient := newFakeClient(staticHandler(http.StatusOK, `{"teams":[],"page":1,"perPage":20,"pageSize":0}`))

	syncResult, syncErr := zsr.Query[zsr.Collection[widget]](context.Background(), ep, syncClient)
	asyncResult, asyncErr := zsr.QueryAsync[zsr.Collection[widget]](context.Background(), ep, asyncClient)

	require.NoError(t, syncErr)
	require.NoError(t, asyncErr)
	assert.Equal(t, syncResult, asyncResult)

	require.Equal(t, 1, syncClient.requestCount())
	require.Equal(t, 1, asyncClient.requestCount())
	assert.Equal(t, syncClient.requests[0].URL.String(), asyncClient.requests[0].URL.String())
	assert.Equal(t, "https://zsr.test/widgets?name=RLCS&sort=name%3Adesc", syncClient.requests[0].URL.String())
}

func TestQuery_ErrorParity(t *testing.T) {
	t.Parallel()

	handlers := map[string]func(*http.Request) (*zsr.Response, error){
		"status":    staticHandler(http.StatusNotFound, `{"error":"not found"}`),
		"parse":     staticHandler(http.StatusOK, `<html>`),
		"data type": staticHandler(http.StatusOK, `{"rank":"high"}`),
		"client": func(*http.Request) (*zsr.Response, error) {
			return nil, errConnectionRefused
		},
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ep := widgetEndpoint{id: "abc"}

			_, syncErr := zsr.Query[widget](context.Background(), ep, newFakeClient(handler))
			_, asyncErr := zsr.QueryAsync[widget](context.Background(), ep, newFakeClient(handler))

			require.Error(t, syncErr)
			require.Error(t, asyncErr)
			assert.Equal(t, syncErr.Error(), asyncErr.Error())
			assert.Equal(t, zsr.IsHTTPStatus(syncErr), zsr.IsHTTPStatus(asyncErr))
			assert.Equal(t, zsr.IsParse(syncErr), zsr.IsParse(asyncErr))
			assert.Equal(t, zsr.IsDataType(syncErr), zsr.IsDataType(asyncErr))
			assert.Equal(t, zsr.IsClient(syncErr), zsr.IsClient(asyncErr))
		})
	}
}

func TestQuery_HTTPStatusKeepsJSON(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusNotFound, `{"error":"not found"}`))

	_, err := zsr.Query[widget](context.Background(), widgetEndpoint{id: "missing"}, client)
	require.Error(t, err)

	apiErr, ok := zsr.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, zsr.KindResponse, apiErr.Kind)
	assert.Equal(t, "https://zsr.test/widgets/missing", apiErr.URL)

	respErr, ok := zsr.AsResponseError(err)
	require.True(t, ok)
	assert.Equal(t, zsr.KindHTTPStatus, respErr.Kind)
	assert.Equal(t, http.StatusNotFound, respErr.StatusCode)
	assert.JSONEq(t, `{"error":"not found"}`, string(respErr.Value))

	assert.True(t, zsr.IsHTTPStatus(err))
	assert.True(t, zsr.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, zsr.StatusCode(err))
}

func TestQuery_ParseBeforeStatus(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusInternalServerError, `Internal Server Error`))

	_, err := zsr.Query[widget](context.Background(), widgetEndpoint{id: "abc"}, client)
	require.Error(t, err)
	assert.True(t, zsr.IsParse(err))
	assert.False(t, zsr.IsHTTPStatus(err))
}

func TestQuery_MissingRequiredField(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK, `{"rank":3}`))

	_, err := zsr.Query[widget](context.Background(), widgetEndpoint{id: "abc"}, client)
	require.Error(t, err)
	assert.True(t, zsr.IsDataType(err))

	respErr, ok := zsr.AsResponseError(err)
	require.True(t, ok)
	assert.JSONEq(t, `{"rank":3}`, string(respErr.Value))
	assert.Equal(t, "zsr_test.widget", respErr.TypeName)
}

func TestQuery_MissingRequiredFieldInCollection(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK, `{"teams":[{"_id":"a"},{"rank":1}]}`))

	_, err := zsr.Query[zsr.Collection[widget]](context.Background(), widgetEndpoint{id: "abc"}, client)
	require.Error(t, err)
	assert.True(t, zsr.IsDataType(err))
}

func TestQuery_TypeMismatch(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK, `["not","an","object"]`))

	_, err := zsr.Query[widget](context.Background(), widgetEndpoint{id: "abc"}, client)
	require.Error(t, err)
	assert.True(t, zsr.IsDataType(err))
}

func TestQuery_ClientErrorIsVerbatim(t *testing.T) {
	t.Parallel()

	client := newFakeClient(func(*http.Request) (*zsr.Response, error) {
		return nil, &url.Error{Op: "Get", URL: "https://zsr.test/widgets/abc", Err: errConnectionRefused}
	})

	_, err := zsr.Query[widget](context.Background(), widgetEndpoint{id: "abc"}, client)
	require.Error(t, err)
	assert.True(t, zsr.IsClient(err))
	require.ErrorIs(t, err, errConnectionRefused)

	var urlErr *url.Error
	require.ErrorAs(t, err, &urlErr)
	assert.Equal(t, "Get", urlErr.Op)
}

func TestQuery_NilResponseIsClientError(t *testing.T) {
	t.Parallel()

	client := newFakeClient(func(*http.Request) (*zsr.Response, error) {
		return nil, nil //nolint:nilnil
	})

	_, err := zsr.Query[widget](context.Background(), widgetEndpoint{id: "abc"}, client)
	require.ErrorIs(t, err, zsr.ErrNoResponse)
	assert.True(t, zsr.IsClient(err))

	_, err = zsr.QueryAsync[widget](context.Background(), widgetEndpoint{id: "abc"}, client)
	require.ErrorIs(t, err, zsr.ErrNoResponse)
	assert.True(t, zsr.IsClient(err))
}

func TestQuery_BodyError(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK, `{}`))

	_, err := zsr.Query[json.RawMessage](context.Background(), brokenBody{}, client)
	require.Error(t, err)
	assert.True(t, zsr.IsBody(err))
	require.ErrorIs(t, err, zsr.ErrBodyEncoding)
	assert.Equal(t, 0, client.requestCount())
}

func TestQuery_URLError(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK, `{}`))

	_, err := zsr.Query[json.RawMessage](context.Background(), widgetEndpoint{id: "%zz"}, client)
	require.Error(t, err)
	assert.True(t, zsr.IsURL(err))
	assert.Equal(t, 0, client.requestCount())
}

func TestBuildRequest_Body(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK, `{}`))

	req, err := zsr.BuildRequest(context.Background(), createWidget{name: "octane"}, client)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, zsr.ContentTypeJSON, req.Header.Get("Content-Type"))

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"octane"}`, string(body))
}

func TestBuildRequest_NoBody(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK, `{}`))

	req, err := zsr.BuildRequest(context.Background(), widgetEndpoint{id: "abc"}, client)
	require.NoError(t, err)
	assert.Empty(t, req.Header.Get("Content-Type"))
	assert.Equal(t, http.NoBody, req.Body)
}

func TestQueryRaw(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK, `{"anything":[1,2,3]}`))

	raw, err := zsr.QueryRaw(context.Background(), widgetEndpoint{id: "abc"}, client)
	require.NoError(t, err)
	assert.JSONEq(t, `{"anything":[1,2,3]}`, string(raw))
}

func TestQueryAsync_ContextCancelled(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	client := newFakeClient(func(*http.Request) (*zsr.Response, error) {
		<-release

		return jsonResponse(http.StatusOK, `{}`), nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := zsr.QueryAsync[json.RawMessage](ctx, widgetEndpoint{id: "abc"}, client)
	require.Error(t, err)
	assert.True(t, zsr.IsClient(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestAPIError_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      *zsr.APIError
		expected string
	}{
		{
			err:      &zsr.APIError{Kind: zsr.KindBody, Err: zsr.ErrBodyEncoding},
			expected: "failed to create request data: failed to encode request body",
		},
		{
			err:      &zsr.APIError{Kind: zsr.KindClient, URL: "https://zsr.test/x", Err: errConnectionRefused},
			expected: "client error for url https://zsr.test/x: connection refused",
		},
		{
			err: &zsr.APIError{
				Kind: zsr.KindResponse,
				URL:  "https://zsr.test/x",
				Err:  &zsr.ResponseError{Kind: zsr.KindHTTPStatus, StatusCode: 404, Value: json.RawMessage(`{"error":"not found"}`)},
			},
			expected: `error in HTTP response for url https://zsr.test/x: HTTP status 404: {"error":"not found"}`,
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.err.Error())
	}
}
