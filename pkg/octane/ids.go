package octane

import (
	"strconv"
)

// EventID identifies an event, e.g. "5f35882d53fbbb5894b43040".
type EventID string

// MatchID identifies a match.
type MatchID string

// GameID identifies a game.
type GameID string

// PlayerID identifies a player.
type PlayerID string

// TeamID identifies a team.
type TeamID string

// StageID identifies a stage within an event.
type StageID int

// SubstageID identifies a substage within a stage.
type SubstageID int

func (id EventID) String() string  { return string(id) }
func (id MatchID) String() string  { return string(id) }
func (id GameID) String() string   { return string(id) }
func (id PlayerID) String() string { return string(id) }
func (id TeamID) String() string   { return string(id) }

func (id StageID) String() string    { return strconv.Itoa(int(id)) }
func (id SubstageID) String() string { return strconv.Itoa(int(id)) }
