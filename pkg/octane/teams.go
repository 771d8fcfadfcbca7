package octane

import (
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
)

// TeamSort is a sort field of ListTeams.
type TeamSort string

const (
	TeamSortName TeamSort = "name"
)

// SortKey implements zsr.SortKey.
func (s TeamSort) SortKey() string { return string(s) }

// GetTeam fetches one team by id.
type GetTeam struct {
	zsr.BaseEndpoint

	id TeamID
}

// NewGetTeam builds a GetTeam descriptor.
func NewGetTeam(id TeamID) (*GetTeam, error) {
	err := requireID("GetTeam", string(id))
	if err != nil {
		return nil, err
	}

	return &GetTeam{id: id}, nil
}

// Path implements zsr.Endpoint.
func (e *GetTeam) Path() string {
	return "/teams/" + escapeID(string(e.id))
}

// ListActiveTeams lists the teams currently competing.
type ListActiveTeams struct {
	zsr.BaseEndpoint
}

// Path implements zsr.Endpoint.
func (ListActiveTeams) Path() string {
	return "/teams/active"
}

type listTeamsParams struct {
	Filters

	Sort *zsr.Sort[TeamSort] `url:"sort,omitempty"`
}

// ListTeams lists teams. It is paginated.
type ListTeams struct {
	zsr.BaseEndpoint
	zsr.Paged

	params listTeamsParams
}

// Path implements zsr.Endpoint.
func (e *ListTeams) Path() string {
	return "/teams"
}

// QueryParameters implements zsr.Endpoint.
func (e *ListTeams) QueryParameters() (*zsr.QueryParams, error) {
	return zsr.ParamsFrom(e.params)
}

// ListTeamsBuilder configures a ListTeams descriptor.
type ListTeamsBuilder struct {
	params listTeamsParams
}

// NewListTeams starts a ListTeams builder.
func NewListTeams() *ListTeamsBuilder {
	return &ListTeamsBuilder{}
}

// Sort orders the teams by one field.
func (b *ListTeamsBuilder) Sort(key TeamSort, direction zsr.Direction) *ListTeamsBuilder {
	b.params.Sort = zsr.SortBy(key, direction)

	return b
}

// Build validates the builder and returns the descriptor.
func (b *ListTeamsBuilder) Build() (*ListTeams, error) {
	err := checkParams("ListTeams", b.params)
	if err != nil {
		return nil, err
	}

	return &ListTeams{params: b.params}, nil
}

// Name filters by name.
func (b *ListTeamsBuilder) Name(name string) *ListTeamsBuilder {
	b.params.Name = &name

	return b
}
