package zsrclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/octane-zsr/pkg/octane"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsrclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty uses default", "", "https://zsr.octane.gg/"},
		{"adds scheme and slash", "zsr.octane.gg", "https://zsr.octane.gg/"},
		{"keeps http", "http://localhost:8080", "http://localhost:8080/"},
		{"keeps prefix", "https://proxy.test/zsr", "https://proxy.test/zsr/"},
		{"already normal", "https://zsr.octane.gg/", "https://zsr.octane.gg/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := zsrclient.NormalizeBaseURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestNormalizeBaseURL_Invalid(t *testing.T) {
	t.Parallel()

	_, err := zsrclient.NormalizeBaseURL("https://")
	require.ErrorIs(t, err, zsrclient.ErrInvalidBaseURL)
}

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	_, err := zsrclient.New(nil)
	require.ErrorIs(t, err, zsrclient.ErrConfigRequired)

	_, err = zsrclient.NewAsync(nil)
	require.ErrorIs(t, err, zsrclient.ErrConfigRequired)
}

func eventServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/events/rlcs-2021", request.URL.Path)
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"_id":"rlcs-2021","slug":"rlcs-2021","name":"RLCS 2021","tier":"S","region":"INT","mode":3}`))
	}))
}

func TestNew_QueryEvent(t *testing.T) {
	t.Parallel()

	server := eventServer(t)
	defer server.Close()

	reg := prometheus.NewRegistry()

	config := zsrclient.DefaultConfig()
	config.BaseURL = server.URL
	config.MetricsRegisterer = reg

	client, err := zsrclient.New(config)
	require.NoError(t, err)

	ep, err := octane.NewGetEvent("rlcs-2021")
	require.NoError(t, err)

	event, err := zsr.Query[octane.Event](context.Background(), ep, client)
	require.NoError(t, err)
	assert.Equal(t, "RLCS 2021", event.Name)
	assert.Equal(t, octane.TierS, event.Tier)
	assert.Equal(t, octane.RegionInternational, event.Region)
	assert.Equal(t, octane.ModeThree, event.Mode)

	assert.Equal(t, 1, testutil.CollectAndCount(reg, "zsr_requests_total"))
}

func TestNewAsync_QueryEvent(t *testing.T) {
	t.Parallel()

	server := eventServer(t)
	defer server.Close()

	config := zsrclient.DefaultConfig()
	config.BaseURL = server.URL
	config.MaxInFlight = 2

	client, err := zsrclient.NewAsync(config)
	require.NoError(t, err)

	ep, err := octane.NewGetEvent("rlcs-2021")
	require.NoError(t, err)

	event, err := zsr.QueryAsync[octane.Event](context.Background(), ep, client)
	require.NoError(t, err)
	assert.Equal(t, octane.EventID("rlcs-2021"), event.ID)
}

func TestNewAndNewAsync_ShareMetricsRegistry(t *testing.T) {
	t.Parallel()

	server := eventServer(t)
	defer server.Close()

	reg := prometheus.NewRegistry()

	config := zsrclient.DefaultConfig()
	config.BaseURL = server.URL
	config.MetricsRegisterer = reg

	client, err := zsrclient.New(config)
	require.NoError(t, err)

	var async zsr.AsyncClient

	require.NotPanics(t, func() {
		async, err = zsrclient.NewAsync(config)
	})
	require.NoError(t, err)

	ep, err := octane.NewGetEvent("rlcs-2021")
	require.NoError(t, err)

	_, err = zsr.Query[octane.Event](context.Background(), ep, client)
	require.NoError(t, err)

	_, err = zsr.QueryAsync[octane.Event](context.Background(), ep, async)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() == "zsr_requests_total" {
			require.Len(t, family.GetMetric(), 1)
			assert.InDelta(t, 2, family.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}
}

func TestNew_HTTPStatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"message":"not found"}`))
	}))
	defer server.Close()

	client, err := zsrclient.NewWithBaseURL(server.URL)
	require.NoError(t, err)

	ep, err := octane.NewGetPlayer("nobody")
	require.NoError(t, err)

	_, err = zsr.Query[octane.Player](context.Background(), ep, client)
	require.Error(t, err)
	assert.True(t, zsr.IsNotFound(err))

	assert.Equal(t, 404, zsr.StatusCode(err))
}
