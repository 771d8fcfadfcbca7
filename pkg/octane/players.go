package octane

import (
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
)

// PlayerSort is a sort field of ListPlayers.
type PlayerSort string

const (
	PlayerSortTag     PlayerSort = "tag"
	PlayerSortCountry PlayerSort = "country"
	PlayerSortTeam    PlayerSort = "team"
)

// SortKey implements zsr.SortKey.
func (s PlayerSort) SortKey() string { return string(s) }

// GetPlayer fetches one player by id.
type GetPlayer struct {
	zsr.BaseEndpoint

	id PlayerID
}

// NewGetPlayer builds a GetPlayer descriptor.
func NewGetPlayer(id PlayerID) (*GetPlayer, error) {
	err := requireID("GetPlayer", string(id))
	if err != nil {
		return nil, err
	}

	return &GetPlayer{id: id}, nil
}

// Path implements zsr.Endpoint.
func (e *GetPlayer) Path() string {
	return "/players/" + escapeID(string(e.id))
}

type listPlayersParams struct {
	Filters

	Sort *zsr.Sort[PlayerSort] `url:"sort,omitempty"`
}

// ListPlayers lists players. It is paginated.
type ListPlayers struct {
	zsr.BaseEndpoint
	zsr.Paged

	params listPlayersParams
}

// Path implements zsr.Endpoint.
func (e *ListPlayers) Path() string {
	return "/players"
}

// QueryParameters implements zsr.Endpoint.
func (e *ListPlayers) QueryParameters() (*zsr.QueryParams, error) {
	return zsr.ParamsFrom(e.params)
}

// ListPlayersBuilder configures a ListPlayers descriptor.
type ListPlayersBuilder struct {
	params listPlayersParams
}

// NewListPlayers starts a ListPlayers builder.
func NewListPlayers() *ListPlayersBuilder {
	return &ListPlayersBuilder{}
}

// Sort orders the players by one field.
func (b *ListPlayersBuilder) Sort(key PlayerSort, direction zsr.Direction) *ListPlayersBuilder {
	b.params.Sort = zsr.SortBy(key, direction)

	return b
}

// Build validates the builder and returns the descriptor.
func (b *ListPlayersBuilder) Build() (*ListPlayers, error) {
	err := checkParams("ListPlayers", b.params)
	if err != nil {
		return nil, err
	}

	return &ListPlayers{params: b.params}, nil
}

// Tag filters by player tag.
func (b *ListPlayersBuilder) Tag(tag string) *ListPlayersBuilder {
	b.params.Tag = &tag

	return b
}

// Country filters by country code.
func (b *ListPlayersBuilder) Country(country string) *ListPlayersBuilder {
	b.params.Country = &country

	return b
}

// Team restricts results to one team.
func (b *ListPlayersBuilder) Team(id TeamID) *ListPlayersBuilder {
	b.params.Team = &id

	return b
}
