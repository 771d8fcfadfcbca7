package octane

import (
	"time"

	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
)

type recordsParams struct {
	Filters

	Type AggregationType `url:"type" validate:"required,known"`
	Stat string          `url:"stat" validate:"required"`
}

// PlayerRecords lists the best single performances of players for one stat.
type PlayerRecords struct {
	zsr.BaseEndpoint

	params recordsParams
}

// Path implements zsr.Endpoint.
func (e *PlayerRecords) Path() string {
	return "/records/players"
}

// QueryParameters implements zsr.Endpoint.
func (e *PlayerRecords) QueryParameters() (*zsr.QueryParams, error) {
	return zsr.ParamsFrom(e.params)
}

// PlayerRecordsBuilder configures a PlayerRecords descriptor.
type PlayerRecordsBuilder struct {
	params recordsParams
}

// NewPlayerRecords starts a PlayerRecords builder.
func NewPlayerRecords(aggregation AggregationType, stat string) *PlayerRecordsBuilder {
	return &PlayerRecordsBuilder{params: recordsParams{Type: aggregation, Stat: stat}}
}

// Build validates the builder and returns the descriptor.
func (b *PlayerRecordsBuilder) Build() (*PlayerRecords, error) {
	err := checkParams("PlayerRecords", b.params)
	if err != nil {
		return nil, err
	}

	return &PlayerRecords{params: b.params}, nil
}

// TeamRecords lists the best single performances of teams for one stat.
type TeamRecords struct {
	zsr.BaseEndpoint

	params recordsParams
}

// Path implements zsr.Endpoint.
func (e *TeamRecords) Path() string {
	return "/records/teams"
}

// QueryParameters implements zsr.Endpoint.
func (e *TeamRecords) QueryParameters() (*zsr.QueryParams, error) {
	return zsr.ParamsFrom(e.params)
}

// TeamRecordsBuilder configures a TeamRecords descriptor.
type TeamRecordsBuilder struct {
	params recordsParams
}

// NewTeamRecords starts a TeamRecords builder.
func NewTeamRecords(aggregation AggregationType, stat string) *TeamRecordsBuilder {
	return &TeamRecordsBuilder{params: recordsParams{Type: aggregation, Stat: stat}}
}

// Build validates the builder and returns the descriptor.
func (b *TeamRecordsBuilder) Build() (*TeamRecords, error) {
	err := checkParams("TeamRecords", b.params)
	if err != nil {
		return nil, err
	}

	return &TeamRecords{params: b.params}, nil
}

type seriesRecordsParams struct {
	Filters
}

// SeriesRecords lists record series.
type SeriesRecords struct {
	zsr.BaseEndpoint

	params seriesRecordsParams
}

// Path implements zsr.Endpoint.
func (e *SeriesRecords) Path() string {
	return "/records/series"
}

// QueryParameters implements zsr.Endpoint.
func (e *SeriesRecords) QueryParameters() (*zsr.QueryParams, error) {
	return zsr.ParamsFrom(e.params)
}

// SeriesRecordsBuilder configures a SeriesRecords descriptor.
type SeriesRecordsBuilder struct {
	params seriesRecordsParams
}

// NewSeriesRecords starts a SeriesRecords builder.
func NewSeriesRecords() *SeriesRecordsBuilder {
	return &SeriesRecordsBuilder{}
}

// Build validates the builder and returns the descriptor.
func (b *SeriesRecordsBuilder) Build() (*SeriesRecords, error) {
	err := checkParams("SeriesRecords", b.params)
	if err != nil {
		return nil, err
	}

	return &SeriesRecords{params: b.params}, nil
}

// Event restricts results to one event.
func (b *PlayerRecordsBuilder) Event(id EventID) *PlayerRecordsBuilder {
	b.params.Event = &id

	return b
}

// Stage restricts results to one stage of the event.
func (b *PlayerRecordsBuilder) Stage(id StageID) *PlayerRecordsBuilder {
	b.params.Stage = &id

	return b
}

// Match restricts results to one match.
func (b *PlayerRecordsBuilder) Match(id MatchID) *PlayerRecordsBuilder {
	b.params.Match = &id

	return b
}

// Qualifier selects qualifier or main stages.
func (b *PlayerRecordsBuilder) Qualifier(qualifier bool) *PlayerRecordsBuilder {
	b.params.Qualifier = &qualifier

	return b
}

// Winner selects winning or losing sides.
func (b *PlayerRecordsBuilder) Winner(winner bool) *PlayerRecordsBuilder {
	b.params.Winner = &winner

	return b
}

// Nationality filters players by nationality.
func (b *PlayerRecordsBuilder) Nationality(nationality string) *PlayerRecordsBuilder {
	b.params.Nationality = &nationality

	return b
}

// Tier filters by event tier.
func (b *PlayerRecordsBuilder) Tier(tier Tier) *PlayerRecordsBuilder {
	b.params.Tier = &tier

	return b
}

// Region filters by event region.
func (b *PlayerRecordsBuilder) Region(region Region) *PlayerRecordsBuilder {
	b.params.Region = &region

	return b
}

// Mode filters by team size.
func (b *PlayerRecordsBuilder) Mode(mode Mode) *PlayerRecordsBuilder {
	b.params.Mode = &mode

	return b
}

// Group filters by event group.
func (b *PlayerRecordsBuilder) Group(group string) *PlayerRecordsBuilder {
	b.params.Group = &group

	return b
}

// Before keeps results dated before t.
func (b *PlayerRecordsBuilder) Before(t time.Time) *PlayerRecordsBuilder {
	b.params.Before = utc(t)

	return b
}

// After keeps results dated after t.
func (b *PlayerRecordsBuilder) After(t time.Time) *PlayerRecordsBuilder {
	b.params.After = utc(t)

	return b
}

// BestOf filters by series length.
func (b *PlayerRecordsBuilder) BestOf(bestOf BestOf) *PlayerRecordsBuilder {
	b.params.BestOf = &bestOf

	return b
}

// Player restricts results to one player.
func (b *PlayerRecordsBuilder) Player(id PlayerID) *PlayerRecordsBuilder {
	b.params.Player = &id

	return b
}

// Team restricts results to one team.
func (b *PlayerRecordsBuilder) Team(id TeamID) *PlayerRecordsBuilder {
	b.params.Team = &id

	return b
}

// Event restricts results to one event.
func (b *TeamRecordsBuilder) Event(id EventID) *TeamRecordsBuilder {
	b.params.Event = &id

	return b
}

// Stage restricts results to one stage of the event.
func (b *TeamRecordsBuilder) Stage(id StageID) *TeamRecordsBuilder {
	b.params.Stage = &id

	return b
}

// Match restricts results to one match.
func (b *TeamRecordsBuilder) Match(id MatchID) *TeamRecordsBuilder {
	b.params.Match = &id

	return b
}

// Qualifier selects qualifier or main stages.
func (b *TeamRecordsBuilder) Qualifier(qualifier bool) *TeamRecordsBuilder {
	b.params.Qualifier = &qualifier

	return b
}

// Winner selects winning or losing sides.
func (b *TeamRecordsBuilder) Winner(winner bool) *TeamRecordsBuilder {
	b.params.Winner = &winner

	return b
}

// Nationality filters players by nationality.
func (b *TeamRecordsBuilder) Nationality(nationality string) *TeamRecordsBuilder {
	b.params.Nationality = &nationality

	return b
}

// Tier filters by event tier.
func (b *TeamRecordsBuilder) Tier(tier Tier) *TeamRecordsBuilder {
	b.params.Tier = &tier

	return b
}

// Region filters by event region.
func (b *TeamRecordsBuilder) Region(region Region) *TeamRecordsBuilder {
	b.params.Region = &region

	return b
}

// Mode filters by team size.
func (b *TeamRecordsBuilder) Mode(mode Mode) *TeamRecordsBuilder {
	b.params.Mode = &mode

	return b
}

// Group filters by event group.
func (b *TeamRecordsBuilder) Group(group string) *TeamRecordsBuilder {
	b.params.Group = &group

	return b
}

// Before keeps results dated before t.
func (b *TeamRecordsBuilder) Before(t time.Time) *TeamRecordsBuilder {
	b.params.Before = utc(t)

	return b
}

// After keeps results dated after t.
func (b *TeamRecordsBuilder) After(t time.Time) *TeamRecordsBuilder {
	b.params.After = utc(t)

	return b
}

// BestOf filters by series length.
func (b *TeamRecordsBuilder) BestOf(bestOf BestOf) *TeamRecordsBuilder {
	b.params.BestOf = &bestOf

	return b
}

// Team restricts results to one team.
func (b *TeamRecordsBuilder) Team(id TeamID) *TeamRecordsBuilder {
	b.params.Team = &id

	return b
}

// Event restricts results to one event.
func (b *SeriesRecordsBuilder) Event(id EventID) *SeriesRecordsBuilder {
	b.params.Event = &id

	return b
}

// Stage restricts results to one stage of the event.
func (b *SeriesRecordsBuilder) Stage(id StageID) *SeriesRecordsBuilder {
	b.params.Stage = &id

	return b
}

// Match restricts results to one match.
func (b *SeriesRecordsBuilder) Match(id MatchID) *SeriesRecordsBuilder {
	b.params.Match = &id

	return b
}

// Qualifier selects qualifier or main stages.
func (b *SeriesRecordsBuilder) Qualifier(qualifier bool) *SeriesRecordsBuilder {
	b.params.Qualifier = &qualifier

	return b
}

// Tier filters by event tier.
func (b *SeriesRecordsBuilder) Tier(tier Tier) *SeriesRecordsBuilder {
	b.params.Tier = &tier

	return b
}

// Region filters by event region.
func (b *SeriesRecordsBuilder) Region(region Region) *SeriesRecordsBuilder {
	b.params.Region = &region

	return b
}

// Mode filters by team size.
func (b *SeriesRecordsBuilder) Mode(mode Mode) *SeriesRecordsBuilder {
	b.params.Mode = &mode

	return b
}

// Group filters by event group.
func (b *SeriesRecordsBuilder) Group(group string) *SeriesRecordsBuilder {
	b.params.Group = &group

	return b
}

// Before keeps results dated before t.
func (b *SeriesRecordsBuilder) Before(t time.Time) *SeriesRecordsBuilder {
	b.params.Before = utc(t)

	return b
}

// After keeps results dated after t.
func (b *SeriesRecordsBuilder) After(t time.Time) *SeriesRecordsBuilder {
	b.params.After = utc(t)

	return b
}

// BestOf filters by series length.
func (b *SeriesRecordsBuilder) BestOf(bestOf BestOf) *SeriesRecordsBuilder {
	b.params.BestOf = &bestOf

	return b
}

// Player restricts results to one player.
func (b *SeriesRecordsBuilder) Player(id PlayerID) *SeriesRecordsBuilder {
	b.params.Player = &id

	return b
}

// Team restricts results to one team.
func (b *SeriesRecordsBuilder) Team(id TeamID) *SeriesRecordsBuilder {
	b.params.Team = &id

	return b
}
