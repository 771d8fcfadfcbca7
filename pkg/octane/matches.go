package octane

import (
	"time"

	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
)

// MatchSort is a sort field of ListMatches.
type MatchSort string

const (
	MatchSortEvent               MatchSort = "event"
	MatchSortStage               MatchSort = "stage"
	MatchSortQualifier           MatchSort = "qualifier"
	MatchSortTier                MatchSort = "tier"
	MatchSortRegion              MatchSort = "region"
	MatchSortMode                MatchSort = "mode"
	MatchSortGroup               MatchSort = "group"
	MatchSortBefore              MatchSort = "before"
	MatchSortAfter               MatchSort = "after"
	MatchSortDate                MatchSort = "date"
	MatchSortReverseSweep        MatchSort = "reverseSweep"
	MatchSortReverseSweepAttempt MatchSort = "reverseSweepAttempt"
	MatchSortPlayer              MatchSort = "player"
	MatchSortTeam                MatchSort = "team"
)

// SortKey implements zsr.SortKey.
func (s MatchSort) SortKey() string { return string(s) }

// GetMatch fetches one match by id.
type GetMatch struct {
	zsr.BaseEndpoint

	id MatchID
}

// NewGetMatch builds a GetMatch descriptor.
func NewGetMatch(id MatchID) (*GetMatch, error) {
	err := requireID("GetMatch", string(id))
	if err != nil {
		return nil, err
	}

	return &GetMatch{id: id}, nil
}

// Path implements zsr.Endpoint.
func (e *GetMatch) Path() string {
	return "/matches/" + escapeID(string(e.id))
}

// MatchGames lists the games of a match.
type MatchGames struct {
	zsr.BaseEndpoint

	id MatchID
}

// NewMatchGames builds a MatchGames descriptor.
func NewMatchGames(id MatchID) (*MatchGames, error) {
	err := requireID("MatchGames", string(id))
	if err != nil {
		return nil, err
	}

	return &MatchGames{id: id}, nil
}

// Path implements zsr.Endpoint.
func (e *MatchGames) Path() string {
	return "/matches/" + escapeID(string(e.id)) + "/games"
}

type listMatchesParams struct {
	Filters

	Sort *zsr.Sort[MatchSort] `url:"sort,omitempty"`
}

// ListMatches lists matches. It is paginated.
type ListMatches struct {
	zsr.BaseEndpoint
	zsr.Paged

	params listMatchesParams
}

// Path implements zsr.Endpoint.
func (e *ListMatches) Path() string {
	return "/matches"
}

// QueryParameters implements zsr.Endpoint.
func (e *ListMatches) QueryParameters() (*zsr.QueryParams, error) {
	return zsr.ParamsFrom(e.params)
}

// ListMatchesBuilder configures a ListMatches descriptor.
type ListMatchesBuilder struct {
	params listMatchesParams
}

// NewListMatches starts a ListMatches builder.
func NewListMatches() *ListMatchesBuilder {
	return &ListMatchesBuilder{}
}

// Sort orders the matches by one field.
func (b *ListMatchesBuilder) Sort(key MatchSort, direction zsr.Direction) *ListMatchesBuilder {
	b.params.Sort = zsr.SortBy(key, direction)

	return b
}

// Build validates the builder and returns the descriptor.
func (b *ListMatchesBuilder) Build() (*ListMatches, error) {
	err := checkParams("ListMatches", b.params)
	if err != nil {
		return nil, err
	}

	return &ListMatches{params: b.params}, nil
}

// Event restricts results to one event.
func (b *ListMatchesBuilder) Event(id EventID) *ListMatchesBuilder {
	b.params.Event = &id

	return b
}

// Stage restricts results to one stage of the event.
func (b *ListMatchesBuilder) Stage(id StageID) *ListMatchesBuilder {
	b.params.Stage = &id

	return b
}

// Qualifier selects qualifier or main stages.
func (b *ListMatchesBuilder) Qualifier(qualifier bool) *ListMatchesBuilder {
	b.params.Qualifier = &qualifier

	return b
}

// Tier filters by event tier.
func (b *ListMatchesBuilder) Tier(tier Tier) *ListMatchesBuilder {
	b.params.Tier = &tier

	return b
}

// Region filters by event region.
func (b *ListMatchesBuilder) Region(region Region) *ListMatchesBuilder {
	b.params.Region = &region

	return b
}

// Mode filters by team size.
func (b *ListMatchesBuilder) Mode(mode Mode) *ListMatchesBuilder {
	b.params.Mode = &mode

	return b
}

// Group filters by event group.
func (b *ListMatchesBuilder) Group(group string) *ListMatchesBuilder {
	b.params.Group = &group

	return b
}

// Before keeps results dated before t.
func (b *ListMatchesBuilder) Before(t time.Time) *ListMatchesBuilder {
	b.params.Before = utc(t)

	return b
}

// After keeps results dated after t.
func (b *ListMatchesBuilder) After(t time.Time) *ListMatchesBuilder {
	b.params.After = utc(t)

	return b
}

// BestOf filters by series length.
func (b *ListMatchesBuilder) BestOf(bestOf BestOf) *ListMatchesBuilder {
	b.params.BestOf = &bestOf

	return b
}

// ReverseSweep selects series won after trailing by the maximum margin.
func (b *ListMatchesBuilder) ReverseSweep(reverseSweep bool) *ListMatchesBuilder {
	b.params.ReverseSweep = &reverseSweep

	return b
}

// ReverseSweepAttempt selects series where the trailing side forced a deciding game.
func (b *ListMatchesBuilder) ReverseSweepAttempt(attempt bool) *ListMatchesBuilder {
	b.params.ReverseSweepAttempt = &attempt

	return b
}

// Player restricts results to one player.
func (b *ListMatchesBuilder) Player(id PlayerID) *ListMatchesBuilder {
	b.params.Player = &id

	return b
}

// Team restricts results to one team.
func (b *ListMatchesBuilder) Team(id TeamID) *ListMatchesBuilder {
	b.params.Team = &id

	return b
}
