package octane_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/fivetwenty-io/octane-zsr/pkg/octane"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encoded(t *testing.T, ep zsr.Endpoint) string {
	t.Helper()

	params, err := ep.QueryParameters()
	require.NoError(t, err)

	return params.Encode()
}

func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDescriptors_Paths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint zsr.Endpoint
		path     string
	}{
		{"event", must(octane.NewGetEvent("5f35882d53fbbb5894b43040")), "/events/5f35882d53fbbb5894b43040"},
		{"event matches", must(octane.NewEventMatches("abc")), "/events/abc/matches"},
		{"event participants", must(octane.NewEventParticipants("abc")), "/events/abc/participants"},
		{"escaped id", must(octane.NewGetEvent("a/b c")), "/events/a%2Fb%20c"},
		{"events", must(octane.NewListEvents().Build()), "/events"},
		{"match", must(octane.NewGetMatch("m1")), "/matches/m1"},
		{"match games", must(octane.NewMatchGames("m1")), "/matches/m1/games"},
		{"matches", must(octane.NewListMatches().Build()), "/matches"},
		{"game", must(octane.NewGetGame("g1")), "/games/g1"},
		{"games", must(octane.NewListGames().Build()), "/games"},
		{"player", must(octane.NewGetPlayer("p1")), "/players/p1"},
		{"players", must(octane.NewListPlayers().Build()), "/players"},
		{"team", must(octane.NewGetTeam("t1")), "/teams/t1"},
		{"active teams", octane.ListActiveTeams{}, "/teams/active"},
		{"teams", must(octane.NewListTeams().Build()), "/teams"},
		{"player stats", must(octane.NewPlayerStats("goals").Build()), "/stats/players"},
		{"player stats by team", must(octane.NewPlayerStats("goals").Breakdown(octane.BreakdownTeams).Build()), "/stats/players/teams"},
		{"team stats by opponent", must(octane.NewTeamStats("saves").Breakdown(octane.BreakdownOpponents).Build()), "/stats/teams/opponents"},
		{"player records", must(octane.NewPlayerRecords(octane.AggregateGame, "score").Build()), "/records/players"},
		{"team records", must(octane.NewTeamRecords(octane.AggregateSeries, "goals").Build()), "/records/teams"},
		{"series records", must(octane.NewSeriesRecords().Build()), "/records/series"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.path, tt.endpoint.Path())
			assert.Equal(t, http.MethodGet, tt.endpoint.Method())

			body, err := tt.endpoint.Body()
			require.NoError(t, err)
			assert.Nil(t, body)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDescriptors_QueryParameters(t *testing.T) {
	t.Parallel()

	after := time.Date(2021, 10, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2021, 12, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	tests := []struct {
		name     string
		endpoint zsr.Endpoint
		expected string
	}{
		{
			name:     "no filters",
			endpoint: must(octane.NewListEvents().Build()),
			expected: "",
		},
		{
			name: "event filters use wire tokens",
			endpoint: must(octane.NewListEvents().
				Tier(octane.TierShowMatch).
				Region(octane.RegionNorthAmerica).
				Mode(octane.ModeThree).
				Sort(octane.EventSortName, zsr.Desc).
				Build()),
			expected: "mode=3&region=NA&sort=name%3Adesc&tier=Show+Match",
		},
		{
			name: "times are RFC3339 in UTC",
			endpoint: must(octane.NewListMatches().
				After(after).
				Before(before).
				Build()),
			expected: "after=2021-10-01T00%3A00%3A00Z&before=2021-12-01T11%3A00%3A00Z",
		},
		{
			name: "match filters",
			endpoint: must(octane.NewListMatches().
				Event("e1").
				Stage(2).
				BestOf(octane.BestOfSeven).
				ReverseSweepAttempt(true).
				Sort(octane.MatchSortReverseSweepAttempt, zsr.Asc).
				Build()),
			expected: "bestOf=7&event=e1&reverseSweepAttempt=true&sort=reverseSweepAttempt%3Aasc&stage=2",
		},
		{
			name:     "game match filter",
			endpoint: must(octane.NewListGames().Match("m1").Player("p1").Build()),
			expected: "match=m1&player=p1",
		},
		{
			name:     "players",
			endpoint: must(octane.NewListPlayers().Country("fr").Tag("kaydop").Build()),
			expected: "country=fr&tag=kaydop",
		},
		{
			name:     "teams sorted",
			endpoint: must(octane.NewListTeams().Name("Vitality").Sort(octane.TeamSortName, zsr.Asc).Build()),
			expected: "name=Vitality&sort=name%3Aasc",
		},
		{
			name:     "stats require stat",
			endpoint: must(octane.NewPlayerStats("goals").Winner(true).Nationality("us").Build()),
			expected: "nationality=us&stat=goals&winner=true",
		},
		{
			name:     "records carry aggregation type",
			endpoint: must(octane.NewPlayerRecords(octane.AggregateSeries, "saves").Tier(octane.TierS).Build()),
			expected: "stat=saves&tier=S&type=series",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, encoded(t, tt.endpoint))
		})
	}
}

func TestDescriptors_MissingFields(t *testing.T) {
	t.Parallel()

	_, err := octane.NewGetEvent("")
	require.ErrorIs(t, err, octane.ErrMissingField)

	_, err = octane.NewMatchGames("")
	require.ErrorIs(t, err, octane.ErrMissingField)

	_, err = octane.NewPlayerStats("").Build()
	require.ErrorIs(t, err, octane.ErrMissingField)

	_, err = octane.NewTeamRecords(0, "goals").Build()
	require.ErrorIs(t, err, octane.ErrMissingField)
}

func TestDescriptors_UnknownValues(t *testing.T) {
	t.Parallel()

	_, err := octane.NewListEvents().Tier(octane.Tier(42)).Build()
	require.ErrorIs(t, err, octane.ErrUnknownValue)

	_, err = octane.NewListMatches().Mode(octane.Mode(4)).Build()
	require.ErrorIs(t, err, octane.ErrUnknownValue)

	_, err = octane.NewListGames().BestOf(octane.BestOf(4)).Build()
	require.ErrorIs(t, err, octane.ErrUnknownValue)

	_, err = octane.NewPlayerRecords(octane.AggregationType(9), "goals").Build()
	require.ErrorIs(t, err, octane.ErrUnknownValue)

	_, err = octane.NewPlayerStats("goals").Breakdown("maps").Build()
	require.ErrorIs(t, err, octane.ErrUnknownValue)

	_, err = octane.NewTeamStats("goals").Breakdown(octane.BreakdownTeams).Build()
	require.ErrorIs(t, err, octane.ErrUnknownValue)
}

func TestDescriptors_Paged(t *testing.T) {
	t.Parallel()

	ep := must(octane.NewListEvents().Tier(octane.TierA).Build())

	page := zsr.NewPage(ep).Page(3).PerPage(25).Build()

	assert.Equal(t, "/events", page.Path())
	assert.Equal(t, "tier=A&page=3&perPage=25", encoded(t, page))
}
