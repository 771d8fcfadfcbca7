package zsr_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Params(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     zsr.Page
		expected string
	}{
		{
			name:     "defaults",
			page:     zsr.NewPage(listWidgets{}).Build(),
			expected: "",
		},
		{
			name:     "page one is omitted",
			page:     zsr.NewPage(listWidgets{}).Page(1).PerPage(10).Build(),
			expected: "perPage=10",
		},
		{
			name:     "page and size",
			page:     zsr.NewPage(listWidgets{}).Page(3).PerPage(10).Build(),
			expected: "page=3&perPage=10",
		},
		{
			name:     "page below one",
			page:     zsr.NewPage(listWidgets{}).Page(-4).Build(),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.page.Params().Encode())
		})
	}
}

func TestPage_ExtendsDescriptorParams(t *testing.T) {
	t.Parallel()

	ep := listWidgets{params: widgetParams{Name: strPtr("RLCS")}}
	page := zsr.NewPage(ep).Page(2).PerPage(5).Build()

	params, err := page.QueryParameters()
	require.NoError(t, err)
	assert.Equal(t, "name=RLCS&page=2&perPage=5", params.Encode())

	own, err := ep.QueryParameters()
	require.NoError(t, err)
	assert.Equal(t, "name=RLCS", own.Encode())
}

// fixedPerPageWidgets carries its own perPage parameter.
type fixedPerPageWidgets struct {
	listWidgets
}

func (fixedPerPageWidgets) QueryParameters() (*zsr.QueryParams, error) {
	return zsr.NewQueryParams().Push("perPage", "7"), nil
}

func TestPage_DescriptorKeysNotClobbered(t *testing.T) {
	t.Parallel()

	page := zsr.NewPage(fixedPerPageWidgets{}).Page(2).PerPage(5).Build()

	params, err := page.QueryParameters()
	require.NoError(t, err)
	assert.Equal(t, "perPage=7&page=2", params.Encode())
	assert.Equal(t, []string{"perPage", "page"}, params.Keys())
}

func TestQueryPage_SyncAndAsync(t *testing.T) {
	t.Parallel()

	ep := listWidgets{}
	page := zsr.NewPage(ep).Page(2).PerPage(5).Build()

	syncClient := newFakeClient(pagedHandler(12))
	asyncClient := newFakeClient(pagedHandler(12))

	syncPage, err := zsr.QueryPage[widget](context.Background(), page, syncClient)
	require.NoError(t, err)

	asyncPage, err := zsr.QueryPageAsync[widget](context.Background(), page, asyncClient)
	require.NoError(t, err)

	assert.Equal(t, syncPage, asyncPage)
	require.Len(t, syncPage.Inner, 5)
	assert.Equal(t, "w5", syncPage.Inner[0].ID)
	assert.Equal(t, &zsr.Pagination{Page: 2, PerPage: 5, PageSize: 5}, syncPage.Pagination)
	assert.Equal(t, syncClient.requests[0].URL.String(), asyncClient.requests[0].URL.String())
}

func TestQueryPage_WithoutPagination(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK, `{"teams":[{"_id":"a"}]}`))

	page, err := zsr.QueryPage[widget](context.Background(), zsr.NewPage(listWidgets{}).Build(), client)
	require.NoError(t, err)
	assert.Nil(t, page.Pagination)
	assert.Len(t, page.Inner, 1)
}

func TestIter_TraversesAllPages(t *testing.T) {
	t.Parallel()

	client := newFakeClient(pagedHandler(45))

	it := zsr.Iter[widget](context.Background(), listWidgets{}, client, zsr.WithPerPage(20))

	items, err := it.All()
	require.NoError(t, err)
	require.Len(t, items, 45)

	for i, item := range items {
		assert.Equal(t, i, item.Rank)
	}

	assert.Equal(t, 3, it.Pages())
	assert.Equal(t, []string{"", "2", "3"}, client.requestedPages())
}

func TestIter_FullLastPageFetchesOneMore(t *testing.T) {
	t.Parallel()

	client := newFakeClient(pagedHandler(40))

	items, err := zsr.Iter[widget](context.Background(), listWidgets{}, client, zsr.WithPerPage(20)).All()
	require.NoError(t, err)
	assert.Len(t, items, 40)
	assert.Equal(t, []string{"", "2", "3"}, client.requestedPages())
}

func TestIter_EmptyFirstPage(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK, `{"teams":[],"page":1,"perPage":20,"pageSize":0}`))

	it := zsr.Iter[widget](context.Background(), listWidgets{}, client)

	assert.False(t, it.HasNext())

	_, err := it.Next()
	require.ErrorIs(t, err, zsr.ErrNoMoreItems)
	assert.Equal(t, 1, client.requestCount())
}

func TestIter_ErrorEndsTraversal(t *testing.T) {
	t.Parallel()

	paged := pagedHandler(100)
	client := newFakeClient(func(req *http.Request) (*zsr.Response, error) {
		if req.URL.Query().Get("page") == "2" {
			return jsonResponse(http.StatusServiceUnavailable, `{"error":"maintenance"}`), nil
		}

		return paged(req)
	})

	it := zsr.Iter[widget](context.Background(), listWidgets{}, client, zsr.WithPerPage(10))

	var (
		items  []widget
		errs   []error
		rounds int
	)

	for it.HasNext() {
		rounds++
		require.Less(t, rounds, 100)

		item, err := it.Next()
		if err != nil {
			errs = append(errs, err)

			continue
		}

		items = append(items, item)
	}

	assert.Len(t, items, 10)
	require.Len(t, errs, 1)

	var pageErr *zsr.PageError
	require.ErrorAs(t, errs[0], &pageErr)
	assert.Equal(t, 2, pageErr.Page)
	assert.True(t, zsr.IsHTTPStatus(errs[0]))
	assert.Equal(t, http.StatusServiceUnavailable, zsr.StatusCode(errs[0]))

	assert.False(t, it.HasNext())
	assert.Equal(t, 2, client.requestCount())
}

func TestIter_ResumeFromFailedPage(t *testing.T) {
	t.Parallel()

	client := newFakeClient(pagedHandler(25))

	items, err := zsr.Iter[widget](
		context.Background(), listWidgets{}, client,
		zsr.WithStartPage(2), zsr.WithPerPage(10),
	).All()
	require.NoError(t, err)
	require.Len(t, items, 15)
	assert.Equal(t, "w10", items[0].ID)
	assert.Equal(t, []string{"2", "3"}, client.requestedPages())
}

func TestIter_MissingPagination(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK, `[{"_id":"a"},{"_id":"b"}]`))

	it := zsr.Iter[widget](context.Background(), listWidgets{}, client)

	require.True(t, it.HasNext())

	_, err := it.Next()
	require.Error(t, err)
	require.ErrorIs(t, err, zsr.ErrMissingPagination)

	respErr, ok := zsr.AsResponseError(err)
	require.True(t, ok)
	assert.Equal(t, zsr.KindMissingPagination, respErr.Kind)

	assert.False(t, it.HasNext())
}

func TestIter_NullPaginationStopsTraversal(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK,
		`{"teams":[{"_id":"a"}],"page":null,"perPage":null,"pageSize":null}`))

	it := zsr.Iter[widget](context.Background(), listWidgets{}, client)

	_, err := it.Next()
	require.ErrorIs(t, err, zsr.ErrMissingPagination)

	assert.False(t, it.HasNext())
	assert.Equal(t, 1, client.requestCount())
}

func TestStream_NullPaginationStopsTraversal(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK,
		`{"teams":[{"_id":"a"}],"page":null,"perPage":null,"pageSize":null}`))

	var errs []error

	for _, err := range zsr.Stream[widget](context.Background(), listWidgets{}, client) {
		errs = append(errs, err)
	}

	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], zsr.ErrMissingPagination)
	assert.Equal(t, 1, client.requestCount())
}

func TestIter_ForEach(t *testing.T) {
	t.Parallel()

	client := newFakeClient(pagedHandler(7))

	var ids []string

	err := zsr.Iter[widget](context.Background(), listWidgets{}, client, zsr.WithPerPage(3)).
		ForEach(func(w widget) error {
			ids = append(ids, w.ID)

			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{"w0", "w1", "w2", "w3", "w4", "w5", "w6"}, ids)
}

func TestIter_ForEachStopsOnCallbackError(t *testing.T) {
	t.Parallel()

	client := newFakeClient(pagedHandler(50))
	stop := errors.New("stop")

	count := 0
	err := zsr.Iter[widget](context.Background(), listWidgets{}, client, zsr.WithPerPage(10)).
		ForEach(func(widget) error {
			count++
			if count == 3 {
				return stop
			}

			return nil
		})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, client.requestCount())
}

func TestIter_Seq(t *testing.T) {
	t.Parallel()

	client := newFakeClient(pagedHandler(5))

	count := 0
	for item, err := range zsr.Iter[widget](context.Background(), listWidgets{}, client, zsr.WithPerPage(2)).Seq() {
		require.NoError(t, err)
		assert.Equal(t, count, item.Rank)
		count++
	}

	assert.Equal(t, 5, count)
}

func TestStream_TraversesAllPages(t *testing.T) {
	t.Parallel()

	client := newFakeClient(pagedHandler(45))

	var items []widget

	for item, err := range zsr.Stream[widget](context.Background(), listWidgets{}, client, zsr.WithPerPage(20)) {
		require.NoError(t, err)

		items = append(items, item)
	}

	assert.Len(t, items, 45)
	assert.Equal(t, []string{"", "2", "3"}, client.requestedPages())
}

func TestStream_StopsFetchingOnBreak(t *testing.T) {
	t.Parallel()

	client := newFakeClient(pagedHandler(100))

	count := 0

	for _, err := range zsr.Stream[widget](context.Background(), listWidgets{}, client, zsr.WithPerPage(10)) {
		require.NoError(t, err)

		count++
		if count == 15 {
			break
		}
	}

	assert.Equal(t, 15, count)
	assert.Equal(t, 2, client.requestCount())
}

func TestStream_NothingFetchedUntilRanged(t *testing.T) {
	t.Parallel()

	client := newFakeClient(pagedHandler(10))

	seq := zsr.Stream[widget](context.Background(), listWidgets{}, client)
	assert.Equal(t, 0, client.requestCount())

	for range seq {
		break
	}

	assert.Equal(t, 1, client.requestCount())
}

func TestStream_YieldsOneError(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusOK, `not json`))

	var errs []error

	for _, err := range zsr.Stream[widget](context.Background(), listWidgets{}, client) {
		errs = append(errs, err)
	}

	require.Len(t, errs, 1)
	assert.True(t, zsr.IsParse(errs[0]))
	assert.Equal(t, 1, client.requestCount())
}

func TestStream_MatchesIter(t *testing.T) {
	t.Parallel()

	iterItems, err := zsr.Iter[widget](context.Background(), listWidgets{}, newFakeClient(pagedHandler(33)), zsr.WithPerPage(8)).All()
	require.NoError(t, err)

	var streamItems []widget

	for item, err := range zsr.Stream[widget](context.Background(), listWidgets{}, newFakeClient(pagedHandler(33)), zsr.WithPerPage(8)) {
		require.NoError(t, err)

		streamItems = append(streamItems, item)
	}

	assert.Equal(t, iterItems, streamItems)
}

func TestForEachConcurrent(t *testing.T) {
	t.Parallel()

	client := newFakeClient(pagedHandler(30))

	var (
		mu       sync.Mutex
		seen     = map[string]bool{}
		inFlight atomic.Int32
		peak     atomic.Int32
	)

	seq := zsr.Stream[widget](context.Background(), listWidgets{}, client, zsr.WithPerPage(10))

	err := zsr.ForEachConcurrent(context.Background(), seq, 3, func(_ context.Context, w widget) error {
		current := inFlight.Add(1)
		defer inFlight.Add(-1)

		for {
			old := peak.Load()
			if current <= old || peak.CompareAndSwap(old, current) {
				break
			}
		}

		mu.Lock()
		seen[w.ID] = true
		mu.Unlock()

		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 30)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestForEachConcurrent_ReturnsCallbackError(t *testing.T) {
	t.Parallel()

	client := newFakeClient(pagedHandler(30))
	boom := errors.New("boom")

	seq := zsr.Stream[widget](context.Background(), listWidgets{}, client, zsr.WithPerPage(10))

	err := zsr.ForEachConcurrent(context.Background(), seq, 2, func(_ context.Context, w widget) error {
		if w.ID == "w4" {
			return boom
		}

		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestForEachConcurrent_ReturnsSequenceError(t *testing.T) {
	t.Parallel()

	client := newFakeClient(staticHandler(http.StatusBadGateway, `{"error":"bad gateway"}`))

	seq := zsr.Stream[widget](context.Background(), listWidgets{}, client)

	err := zsr.ForEachConcurrent(context.Background(), seq, 2, func(context.Context, widget) error {
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, zsr.StatusCode(err))
}
