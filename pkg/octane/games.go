package octane

import (
	"time"

	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
)

// GameSort is a sort field of ListGames.
type GameSort string

const (
	GameSortEvent     GameSort = "event"
	GameSortStage     GameSort = "stage"
	GameSortMatch     GameSort = "match"
	GameSortQualifier GameSort = "qualifier"
	GameSortTier      GameSort = "tier"
	GameSortRegion    GameSort = "region"
	GameSortMode      GameSort = "mode"
	GameSortGroup     GameSort = "group"
	GameSortBefore    GameSort = "before"
	GameSortAfter     GameSort = "after"
	GameSortBestOf    GameSort = "bestOf"
	GameSortPlayer    GameSort = "player"
	GameSortTeam      GameSort = "team"
	GameSortDate      GameSort = "date"
)

// SortKey implements zsr.SortKey.
func (s GameSort) SortKey() string { return string(s) }

// GetGame fetches one game by id.
type GetGame struct {
	zsr.BaseEndpoint

	id GameID
}

// NewGetGame builds a GetGame descriptor.
func NewGetGame(id GameID) (*GetGame, error) {
	err := requireID("GetGame", string(id))
	if err != nil {
		return nil, err
	}

	return &GetGame{id: id}, nil
}

// Path implements zsr.Endpoint.
func (e *GetGame) Path() string {
	return "/games/" + escapeID(string(e.id))
}

type listGamesParams struct {
	Filters

	Sort *zsr.Sort[GameSort] `url:"sort,omitempty"`
}

// ListGames lists games. It is paginated.
type ListGames struct {
	zsr.BaseEndpoint
	zsr.Paged

	params listGamesParams
}

// Path implements zsr.Endpoint.
func (e *ListGames) Path() string {
	return "/games"
}

// QueryParameters implements zsr.Endpoint.
func (e *ListGames) QueryParameters() (*zsr.QueryParams, error) {
	return zsr.ParamsFrom(e.params)
}

// ListGamesBuilder configures a ListGames descriptor.
type ListGamesBuilder struct {
	params listGamesParams
}

// NewListGames starts a ListGames builder.
func NewListGames() *ListGamesBuilder {
	return &ListGamesBuilder{}
}

// Sort orders the games by one field.
func (b *ListGamesBuilder) Sort(key GameSort, direction zsr.Direction) *ListGamesBuilder {
	b.params.Sort = zsr.SortBy(key, direction)

	return b
}

// Build validates the builder and returns the descriptor.
func (b *ListGamesBuilder) Build() (*ListGames, error) {
	err := checkParams("ListGames", b.params)
	if err != nil {
		return nil, err
	}

	return &ListGames{params: b.params}, nil
}

// Event restricts results to one event.
func (b *ListGamesBuilder) Event(id EventID) *ListGamesBuilder {
	b.params.Event = &id

	return b
}

// Stage restricts results to one stage of the event.
func (b *ListGamesBuilder) Stage(id StageID) *ListGamesBuilder {
	b.params.Stage = &id

	return b
}

// Match restricts results to one match.
func (b *ListGamesBuilder) Match(id MatchID) *ListGamesBuilder {
	b.params.Match = &id

	return b
}

// Qualifier selects qualifier or main stages.
func (b *ListGamesBuilder) Qualifier(qualifier bool) *ListGamesBuilder {
	b.params.Qualifier = &qualifier

	return b
}

// Tier filters by event tier.
func (b *ListGamesBuilder) Tier(tier Tier) *ListGamesBuilder {
	b.params.Tier = &tier

	return b
}

// Region filters by event region.
func (b *ListGamesBuilder) Region(region Region) *ListGamesBuilder {
	b.params.Region = &region

	return b
}

// Mode filters by team size.
func (b *ListGamesBuilder) Mode(mode Mode) *ListGamesBuilder {
	b.params.Mode = &mode

	return b
}

// Group filters by event group.
func (b *ListGamesBuilder) Group(group string) *ListGamesBuilder {
	b.params.Group = &group

	return b
}

// Before keeps results dated before t.
func (b *ListGamesBuilder) Before(t time.Time) *ListGamesBuilder {
	b.params.Before = utc(t)

	return b
}

// After keeps results dated after t.
func (b *ListGamesBuilder) After(t time.Time) *ListGamesBuilder {
	b.params.After = utc(t)

	return b
}

// BestOf filters by series length.
func (b *ListGamesBuilder) BestOf(bestOf BestOf) *ListGamesBuilder {
	b.params.BestOf = &bestOf

	return b
}

// Player restricts results to one player.
func (b *ListGamesBuilder) Player(id PlayerID) *ListGamesBuilder {
	b.params.Player = &id

	return b
}

// Team restricts results to one team.
func (b *ListGamesBuilder) Team(id TeamID) *ListGamesBuilder {
	b.params.Team = &id

	return b
}
