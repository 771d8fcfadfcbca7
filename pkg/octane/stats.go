package octane

import (
	"fmt"
	"time"

	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
)

// StatsBreakdown splits aggregated stats by a second dimension.
type StatsBreakdown string

const (
	// BreakdownNone aggregates over everything matching the filters.
	BreakdownNone      StatsBreakdown = ""
	BreakdownEvents    StatsBreakdown = "events"
	BreakdownOpponents StatsBreakdown = "opponents"
	BreakdownTeams     StatsBreakdown = "teams"
)

// ParseStatsBreakdown accepts "", "events", "opponents" or "teams".
func ParseStatsBreakdown(s string) (StatsBreakdown, error) {
	switch b := StatsBreakdown(s); b {
	case BreakdownNone, BreakdownEvents, BreakdownOpponents, BreakdownTeams:
		return b, nil
	default:
		return BreakdownNone, fmt.Errorf("%w: breakdown %q", ErrUnknownValue, s)
	}
}

func statsPath(root string, breakdown StatsBreakdown) string {
	if breakdown == BreakdownNone {
		return root
	}

	return root + "/" + string(breakdown)
}

type statsParams struct {
	Filters

	Stat string `url:"stat" validate:"required"`
}

// PlayerStats aggregates one stat over players.
type PlayerStats struct {
	zsr.BaseEndpoint

	breakdown StatsBreakdown
	params    statsParams
}

// Path implements zsr.Endpoint.
func (e *PlayerStats) Path() string {
	return statsPath("/stats/players", e.breakdown)
}

// QueryParameters implements zsr.Endpoint.
func (e *PlayerStats) QueryParameters() (*zsr.QueryParams, error) {
	return zsr.ParamsFrom(e.params)
}

// PlayerStatsBuilder configures a PlayerStats descriptor.
type PlayerStatsBuilder struct {
	breakdown StatsBreakdown
	params    statsParams
}

// NewPlayerStats starts a PlayerStats builder for stat, e.g. "goals".
func NewPlayerStats(stat string) *PlayerStatsBuilder {
	return &PlayerStatsBuilder{params: statsParams{Stat: stat}}
}

// Breakdown groups the stats by events, opponents or teams.
func (b *PlayerStatsBuilder) Breakdown(breakdown StatsBreakdown) *PlayerStatsBuilder {
	b.breakdown = breakdown

	return b
}

// Build validates the builder and returns the descriptor.
func (b *PlayerStatsBuilder) Build() (*PlayerStats, error) {
	err := checkParams("PlayerStats", b.params)
	if err != nil {
		return nil, err
	}

	_, err = ParseStatsBreakdown(string(b.breakdown))
	if err != nil {
		return nil, fmt.Errorf("PlayerStats: %w", err)
	}

	return &PlayerStats{breakdown: b.breakdown, params: b.params}, nil
}

// TeamStats aggregates one stat over teams.
type TeamStats struct {
	zsr.BaseEndpoint

	breakdown StatsBreakdown
	params    statsParams
}

// Path implements zsr.Endpoint.
func (e *TeamStats) Path() string {
	return statsPath("/stats/teams", e.breakdown)
}

// QueryParameters implements zsr.Endpoint.
func (e *TeamStats) QueryParameters() (*zsr.QueryParams, error) {
	return zsr.ParamsFrom(e.params)
}

// TeamStatsBuilder configures a TeamStats descriptor.
type TeamStatsBuilder struct {
	breakdown StatsBreakdown
	params    statsParams
}

// NewTeamStats starts a TeamStats builder for stat.
func NewTeamStats(stat string) *TeamStatsBuilder {
	return &TeamStatsBuilder{params: statsParams{Stat: stat}}
}

// Breakdown groups the stats by events or opponents.
func (b *TeamStatsBuilder) Breakdown(breakdown StatsBreakdown) *TeamStatsBuilder {
	b.breakdown = breakdown

	return b
}

// Build validates the builder and returns the descriptor.
func (b *TeamStatsBuilder) Build() (*TeamStats, error) {
	err := checkParams("TeamStats", b.params)
	if err != nil {
		return nil, err
	}

	switch b.breakdown {
	case BreakdownNone, BreakdownEvents, BreakdownOpponents:
	default:
		return nil, fmt.Errorf("TeamStats: %w: breakdown %q", ErrUnknownValue, b.breakdown)
	}

	return &TeamStats{breakdown: b.breakdown, params: b.params}, nil
}

// Event restricts results to one event.
func (b *PlayerStatsBuilder) Event(id EventID) *PlayerStatsBuilder {
	b.params.Event = &id

	return b
}

// Stage restricts results to one stage of the event.
func (b *PlayerStatsBuilder) Stage(id StageID) *PlayerStatsBuilder {
	b.params.Stage = &id

	return b
}

// Match restricts results to one match.
func (b *PlayerStatsBuilder) Match(id MatchID) *PlayerStatsBuilder {
	b.params.Match = &id

	return b
}

// Qualifier selects qualifier or main stages.
func (b *PlayerStatsBuilder) Qualifier(qualifier bool) *PlayerStatsBuilder {
	b.params.Qualifier = &qualifier

	return b
}

// Winner selects winning or losing sides.
func (b *PlayerStatsBuilder) Winner(winner bool) *PlayerStatsBuilder {
	b.params.Winner = &winner

	return b
}

// Nationality filters players by nationality.
func (b *PlayerStatsBuilder) Nationality(nationality string) *PlayerStatsBuilder {
	b.params.Nationality = &nationality

	return b
}

// Tier filters by event tier.
func (b *PlayerStatsBuilder) Tier(tier Tier) *PlayerStatsBuilder {
	b.params.Tier = &tier

	return b
}

// Region filters by event region.
func (b *PlayerStatsBuilder) Region(region Region) *PlayerStatsBuilder {
	b.params.Region = &region

	return b
}

// Mode filters by team size.
func (b *PlayerStatsBuilder) Mode(mode Mode) *PlayerStatsBuilder {
	b.params.Mode = &mode

	return b
}

// Group filters by event group.
func (b *PlayerStatsBuilder) Group(group string) *PlayerStatsBuilder {
	b.params.Group = &group

	return b
}

// Before keeps results dated before t.
func (b *PlayerStatsBuilder) Before(t time.Time) *PlayerStatsBuilder {
	b.params.Before = utc(t)

	return b
}

// After keeps results dated after t.
func (b *PlayerStatsBuilder) After(t time.Time) *PlayerStatsBuilder {
	b.params.After = utc(t)

	return b
}

// BestOf filters by series length.
func (b *PlayerStatsBuilder) BestOf(bestOf BestOf) *PlayerStatsBuilder {
	b.params.BestOf = &bestOf

	return b
}

// Player restricts results to one player.
func (b *PlayerStatsBuilder) Player(id PlayerID) *PlayerStatsBuilder {
	b.params.Player = &id

	return b
}

// Team restricts results to one team.
func (b *PlayerStatsBuilder) Team(id TeamID) *PlayerStatsBuilder {
	b.params.Team = &id

	return b
}

// Event restricts results to one event.
func (b *TeamStatsBuilder) Event(id EventID) *TeamStatsBuilder {
	b.params.Event = &id

	return b
}

// Stage restricts results to one stage of the event.
func (b *TeamStatsBuilder) Stage(id StageID) *TeamStatsBuilder {
	b.params.Stage = &id

	return b
}

// Match restricts results to one match.
func (b *TeamStatsBuilder) Match(id MatchID) *TeamStatsBuilder {
	b.params.Match = &id

	return b
}

// Qualifier selects qualifier or main stages.
func (b *TeamStatsBuilder) Qualifier(qualifier bool) *TeamStatsBuilder {
	b.params.Qualifier = &qualifier

	return b
}

// Winner selects winning or losing sides.
func (b *TeamStatsBuilder) Winner(winner bool) *TeamStatsBuilder {
	b.params.Winner = &winner

	return b
}

// Nationality filters players by nationality.
func (b *TeamStatsBuilder) Nationality(nationality string) *TeamStatsBuilder {
	b.params.Nationality = &nationality

	return b
}

// Tier filters by event tier.
func (b *TeamStatsBuilder) Tier(tier Tier) *TeamStatsBuilder {
	b.params.Tier = &tier

	return b
}

// Region filters by event region.
func (b *TeamStatsBuilder) Region(region Region) *TeamStatsBuilder {
	b.params.Region = &region

	return b
}

// Mode filters by team size.
func (b *TeamStatsBuilder) Mode(mode Mode) *TeamStatsBuilder {
	b.params.Mode = &mode

	return b
}

// Group filters by event group.
func (b *TeamStatsBuilder) Group(group string) *TeamStatsBuilder {
	b.params.Group = &group

	return b
}

// Before keeps results dated before t.
func (b *TeamStatsBuilder) Before(t time.Time) *TeamStatsBuilder {
	b.params.Before = utc(t)

	return b
}

// After keeps results dated after t.
func (b *TeamStatsBuilder) After(t time.Time) *TeamStatsBuilder {
	b.params.After = utc(t)

	return b
}

// BestOf filters by series length.
func (b *TeamStatsBuilder) BestOf(bestOf BestOf) *TeamStatsBuilder {
	b.params.BestOf = &bestOf

	return b
}

// Team restricts results to one team.
func (b *TeamStatsBuilder) Team(id TeamID) *TeamStatsBuilder {
	b.params.Team = &id

	return b
}
