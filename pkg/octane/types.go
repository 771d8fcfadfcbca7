package octane

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event is a tournament or league.
type Event struct {
	ID        EventID    `json:"_id"                 validate:"required" yaml:"id"`
	Slug      string     `json:"slug"                yaml:"slug"`
	Name      string     `json:"name,omitempty"      yaml:"name,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"   yaml:"endDate,omitempty"`
	Region    Region     `json:"region,omitempty"    yaml:"region,omitempty"`
	Mode      Mode       `json:"mode,omitempty"      yaml:"mode,omitempty"`
	Prize     *Prize     `json:"prize,omitempty"     yaml:"prize,omitempty"`
	Tier      Tier       `json:"tier,omitempty"      yaml:"tier,omitempty"`
	Image     string     `json:"image,omitempty"     yaml:"image,omitempty"`
	Stages    []Stage    `json:"stages,omitempty"    yaml:"stages,omitempty"`
	Groups    []string   `json:"groups,omitempty"    yaml:"groups,omitempty"`
}

// Stage returns the stage with id.
func (e *Event) Stage(id StageID) (*Stage, bool) {
	for i := range e.Stages {
		if e.Stages[i].ID == id {
			return &e.Stages[i], true
		}
	}

	return nil, false
}

// LANStages returns the stages played on LAN.
func (e *Event) LANStages() []Stage {
	var lan []Stage

	for _, stage := range e.Stages {
		if stage.LAN {
			lan = append(lan, stage)
		}
	}

	return lan
}

// Prize is a prize pool.
type Prize struct {
	Amount   float64 `json:"amount"   yaml:"amount"`
	Currency string  `json:"currency" yaml:"currency"`
}

func (p Prize) String() string {
	return fmt.Sprintf("%.0f %s", p.Amount, p.Currency)
}

// Stage is a phase of an event.
type Stage struct {
	ID         StageID    `json:"_id"                  yaml:"id"`
	Name       string     `json:"name"                 yaml:"name"`
	Format     string     `json:"format,omitempty"     yaml:"format,omitempty"`
	Region     Region     `json:"region,omitempty"     yaml:"region,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"  yaml:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"    yaml:"endDate,omitempty"`
	Liquipedia string     `json:"liquipedia,omitempty" yaml:"liquipedia,omitempty"`
	Substages  []Substage `json:"substages,omitempty"  yaml:"substages,omitempty"`
	Prize      *Prize     `json:"prize,omitempty"      yaml:"prize,omitempty"`
	Qualifier  bool       `json:"qualifier,omitempty"  yaml:"qualifier,omitempty"`
	LAN        bool       `json:"lan,omitempty"        yaml:"lan,omitempty"`
	Location   *Location  `json:"location,omitempty"   yaml:"location,omitempty"`
}

// Substage is a phase of a stage.
type Substage struct {
	ID     SubstageID `json:"_id"              yaml:"id"`
	Name   string     `json:"name"             yaml:"name"`
	Format string     `json:"format,omitempty" yaml:"format,omitempty"`
}

// Location is where a LAN stage takes place.
type Location struct {
	Venue   string `json:"venue,omitempty"   yaml:"venue,omitempty"`
	City    string `json:"city,omitempty"    yaml:"city,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

// Match is a series between two sides.
type Match struct {
	ID                  MatchID     `json:"_id"                           validate:"required" yaml:"id"`
	Slug                string      `json:"slug"                          yaml:"slug"`
	OctaneID            string      `json:"octane_id,omitempty"           yaml:"octaneId,omitempty"`
	Event               *Event      `json:"event,omitempty"               yaml:"event,omitempty"`
	Stage               *Stage      `json:"stage,omitempty"               yaml:"stage,omitempty"`
	Date                *time.Time  `json:"date,omitempty"                yaml:"date,omitempty"`
	Format              *Format     `json:"format,omitempty"              yaml:"format,omitempty"`
	Blue                *Side       `json:"blue,omitempty"                yaml:"blue,omitempty"`
	Orange              *Side       `json:"orange,omitempty"              yaml:"orange,omitempty"`
	Number              *int64      `json:"number,omitempty"              yaml:"number,omitempty"`
	Games               []GameScore `json:"games,omitempty"               yaml:"games,omitempty"`
	ReverseSweepAttempt *bool       `json:"reverseSweepAttempt,omitempty" yaml:"reverseSweepAttempt,omitempty"`
	ReverseSweep        *bool       `json:"reverseSweep,omitempty"        yaml:"reverseSweep,omitempty"`
}

// Winner returns the side that won the series, or nil.
func (m *Match) Winner() *Side {
	switch {
	case m.Blue != nil && m.Blue.Winner:
		return m.Blue
	case m.Orange != nil && m.Orange.Winner:
		return m.Orange
	default:
		return nil
	}
}

// FormatType is the kind of a match format.
type FormatType string

const (
	FormatBestOf FormatType = "best"
	FormatSet    FormatType = "set"
)

// Format is the series format, e.g. best of 7.
type Format struct {
	Type   FormatType `json:"type"   validate:"oneof=best set" yaml:"type"`
	Length int64      `json:"length" yaml:"length"`
}

func (f Format) String() string {
	if f.Type == FormatSet {
		return fmt.Sprintf("set of %d", f.Length)
	}

	return fmt.Sprintf("best of %d", f.Length)
}

// Side is one team's half of a match or game.
type Side struct {
	Score       *int64       `json:"score,omitempty"       yaml:"score,omitempty"`
	Winner      bool         `json:"winner,omitempty"      yaml:"winner,omitempty"`
	MatchWinner *bool        `json:"matchWinner,omitempty" yaml:"matchWinner,omitempty"`
	Team        *TeamInfo    `json:"team,omitempty"        yaml:"team,omitempty"`
	Players     []PlayerInfo `json:"players,omitempty"     yaml:"players,omitempty"`
}

// TeamName returns the side's team name or "TBD".
func (s *Side) TeamName() string {
	if s == nil || s.Team == nil || s.Team.Team.Name == "" {
		return "TBD"
	}

	return s.Team.Team.Name
}

// TeamInfo is a team with its stats for a match or game.
type TeamInfo struct {
	Team  Team           `json:"team"            yaml:"team"`
	Stats *TeamGameStats `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// Team is a roster.
type Team struct {
	ID       TeamID `json:"_id"                validate:"required" yaml:"id"`
	Slug     string `json:"slug,omitempty"     yaml:"slug,omitempty"`
	Name     string `json:"name"               yaml:"name"`
	Image    string `json:"image,omitempty"    yaml:"image,omitempty"`
	Region   Region `json:"region,omitempty"   yaml:"region,omitempty"`
	Relevant bool   `json:"relevant,omitempty" yaml:"relevant,omitempty"`
}

// TeamGameStats are a team's stats for a match or game.
type TeamGameStats struct {
	Core        CoreStats          `json:"core"                  yaml:"core"`
	Boost       *TeamBoostStats    `json:"boost,omitempty"       yaml:"boost,omitempty"`
	Ball        *BallStats         `json:"ball,omitempty"        yaml:"ball,omitempty"`
	Movement    *TeamMovementStats `json:"movement,omitempty"    yaml:"movement,omitempty"`
	Positioning *PositioningStats  `json:"positioning,omitempty" yaml:"positioning,omitempty"`
	Demo        *DemoStats         `json:"demo,omitempty"        yaml:"demo,omitempty"`
}

// CoreStats are the scoreboard stats. Score is a float because the
// database holds some fractional scores.
type CoreStats struct {
	Shots              int64   `json:"shots"              yaml:"shots"`
	Goals              int64   `json:"goals"              yaml:"goals"`
	Saves              int64   `json:"saves"              yaml:"saves"`
	Assists            int64   `json:"assists"            yaml:"assists"`
	Score              float64 `json:"score"              yaml:"score"`
	ShootingPercentage float64 `json:"shootingPercentage" yaml:"shootingPercentage"`
}

// TeamBoostStats are a team's boost stats.
type TeamBoostStats struct {
	BPM                       float64 `json:"bpm"                       yaml:"bpm"`
	BCPM                      float64 `json:"bcpm"                      yaml:"bcpm"`
	AvgAmount                 float64 `json:"avgAmount"                 yaml:"avgAmount"`
	AmountCollected           int64   `json:"amountCollected"           yaml:"amountCollected"`
	AmountStolen              int64   `json:"amountStolen"              yaml:"amountStolen"`
	AmountCollectedBig        int64   `json:"amountCollectedBig"        yaml:"amountCollectedBig"`
	AmountStolenBig           int64   `json:"amountStolenBig"           yaml:"amountStolenBig"`
	AmountCollectedSmall      int64   `json:"amountCollectedSmall"      yaml:"amountCollectedSmall"`
	AmountStolenSmall         int64   `json:"amountStolenSmall"         yaml:"amountStolenSmall"`
	CountCollectedBig         int64   `json:"countCollectedBig"         yaml:"countCollectedBig"`
	CountStolenBig            int64   `json:"countStolenBig"            yaml:"countStolenBig"`
	CountCollectedSmall       int64   `json:"countCollectedSmall"       yaml:"countCollectedSmall"`
	CountStolenSmall          int64   `json:"countStolenSmall"          yaml:"countStolenSmall"`
	AmountOverfill            int64   `json:"amountOverfill"            yaml:"amountOverfill"`
	AmountOverfillStolen      int64   `json:"amountOverfillStolen"      yaml:"amountOverfillStolen"`
	AmountUsedWhileSupersonic int64   `json:"amountUsedWhileSupersonic" yaml:"amountUsedWhileSupersonic"`
	TimeZeroBoost             float64 `json:"timeZeroBoost"             yaml:"timeZeroBoost"`
	TimeFullBoost             float64 `json:"timeFullBoost"             yaml:"timeFullBoost"`
	TimeBoost0To25            float64 `json:"timeBoost0To25"            yaml:"timeBoost0To25"`
	TimeBoost25To50           float64 `json:"timeBoost25To50"           yaml:"timeBoost25To50"`
	TimeBoost50To75           float64 `json:"timeBoost50To75"           yaml:"timeBoost50To75"`
	TimeBoost75To100          float64 `json:"timeBoost75To100"          yaml:"timeBoost75To100"`
}

// TeamMovementStats are a team's movement stats.
type TeamMovementStats struct {
	TotalDistance       int64   `json:"totalDistance"       yaml:"totalDistance"`
	TimeSupersonicSpeed float64 `json:"timeSupersonicSpeed" yaml:"timeSupersonicSpeed"`
	TimeBoostSpeed      float64 `json:"timeBoostSpeed"      yaml:"timeBoostSpeed"`
	TimeSlowSpeed       float64 `json:"timeSlowSpeed"       yaml:"timeSlowSpeed"`
	TimeGround          float64 `json:"timeGround"          yaml:"timeGround"`
	TimeLowAir          float64 `json:"timeLowAir"          yaml:"timeLowAir"`
	TimeHighAir         float64 `json:"timeHighAir"         yaml:"timeHighAir"`
	TimePowerslide      float64 `json:"timePowerslide"      yaml:"timePowerslide"`
	CountPowerslide     int64   `json:"countPowerslide"     yaml:"countPowerslide"`
}

// PositioningStats are a team's positioning stats.
type PositioningStats struct {
	TimeDefensiveThird float64 `json:"timeDefensiveThird" yaml:"timeDefensiveThird"`
	TimeNeutralThird   float64 `json:"timeNeutralThird"   yaml:"timeNeutralThird"`
	TimeOffensiveThird float64 `json:"timeOffensiveThird" yaml:"timeOffensiveThird"`
	TimeDefensiveHalf  float64 `json:"timeDefensiveHalf"  yaml:"timeDefensiveHalf"`
	TimeOffensiveHalf  float64 `json:"timeOffensiveHalf"  yaml:"timeOffensiveHalf"`
	TimeBehindBall     float64 `json:"timeBehindBall"     yaml:"timeBehindBall"`
	TimeInfrontBall    float64 `json:"timeInfrontBall"    yaml:"timeInfrontBall"`
}

// DemoStats count demolitions.
type DemoStats struct {
	Inflicted int64 `json:"inflicted" yaml:"inflicted"`
	Taken     int64 `json:"taken"     yaml:"taken"`
}

// BallStats are a team's ball control stats.
type BallStats struct {
	PossessionTime float64 `json:"possessionTime" yaml:"possessionTime"`
	TimeInSide     float64 `json:"timeInSide"     yaml:"timeInSide"`
}

// PlayerInfo is a player with their stats for a match or game.
type PlayerInfo struct {
	Player   Player           `json:"player"             yaml:"player"`
	Stats    *PlayerGameStats `json:"stats,omitempty"    yaml:"stats,omitempty"`
	Advanced *AdvancedStats   `json:"advanced,omitempty" yaml:"advanced,omitempty"`
}

// Player is a competitor.
type Player struct {
	ID         PlayerID  `json:"_id"                  validate:"required" yaml:"id"`
	Slug       string    `json:"slug,omitempty"       yaml:"slug,omitempty"`
	Tag        string    `json:"tag"                  yaml:"tag"`
	Country    string    `json:"country,omitempty"    yaml:"country,omitempty"`
	Name       string    `json:"name,omitempty"       yaml:"name,omitempty"`
	Accounts   []Account `json:"accounts,omitempty"   yaml:"accounts,omitempty"`
	Relevant   bool      `json:"relevant,omitempty"   yaml:"relevant,omitempty"`
	Team       *Team     `json:"team,omitempty"       yaml:"team,omitempty"`
	Substitute bool      `json:"substitute,omitempty" yaml:"substitute,omitempty"`
	Coach      bool      `json:"coach,omitempty"      yaml:"coach,omitempty"`
}

// Account is a player's platform account.
type Account struct {
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`
	ID       string `json:"id,omitempty"       yaml:"id,omitempty"`
}

// PlayerGameStats are a player's stats for a match or game.
type PlayerGameStats struct {
	Core        CoreStats               `json:"core"                  yaml:"core"`
	Boost       *PlayerBoostStats       `json:"boost,omitempty"       yaml:"boost,omitempty"`
	Movement    *PlayerMovementStats    `json:"movement,omitempty"    yaml:"movement,omitempty"`
	Positioning *PlayerPositioningStats `json:"positioning,omitempty" yaml:"positioning,omitempty"`
	Demo        *DemoStats              `json:"demo,omitempty"        yaml:"demo,omitempty"`
}

// PlayerBoostStats are a player's boost stats.
type PlayerBoostStats struct {
	TeamBoostStats `yaml:",inline"`

	PercentZeroBoost    float64 `json:"percentZeroBoost"    yaml:"percentZeroBoost"`
	PercentFullBoost    float64 `json:"percentFullBoost"    yaml:"percentFullBoost"`
	PercentBoost0To25   float64 `json:"percentBoost0To25"   yaml:"percentBoost0To25"`
	PercentBoost25To50  float64 `json:"percentBoost25To50"  yaml:"percentBoost25To50"`
	PercentBoost50To75  float64 `json:"percentBoost50To75"  yaml:"percentBoost50To75"`
	PercentBoost75To100 float64 `json:"percentBoost75To100" yaml:"percentBoost75To100"`
}

// PlayerMovementStats are a player's movement stats.
type PlayerMovementStats struct {
	TeamMovementStats `yaml:",inline"`

	AvgSpeed               float64 `json:"avgSpeed"               yaml:"avgSpeed"`
	AvgPowerslideDuration  float64 `json:"avgPowerslideDuration"  yaml:"avgPowerslideDuration"`
	AvgSpeedPercentage     float64 `json:"avgSpeedPercentage"     yaml:"avgSpeedPercentage"`
	PercentSlowSpeed       float64 `json:"percentSlowSpeed"       yaml:"percentSlowSpeed"`
	PercentBoostSpeed      float64 `json:"percentBoostSpeed"      yaml:"percentBoostSpeed"`
	PercentSupersonicSpeed float64 `json:"percentSupersonicSpeed" yaml:"percentSupersonicSpeed"`
	PercentGround          float64 `json:"percentGround"          yaml:"percentGround"`
	PercentLowAir          float64 `json:"percentLowAir"          yaml:"percentLowAir"`
	PercentHighAir         float64 `json:"percentHighAir"         yaml:"percentHighAir"`
}

// PlayerPositioningStats are a player's positioning stats.
type PlayerPositioningStats struct {
	PositioningStats `yaml:",inline"`

	AvgDistanceToBall             float64 `json:"avgDistanceToBall"             yaml:"avgDistanceToBall"`
	AvgDistanceToBallPossession   float64 `json:"avgDistanceToBallPossession"   yaml:"avgDistanceToBallPossession"`
	AvgDistanceToBallNoPossession float64 `json:"avgDistanceToBallNoPossession" yaml:"avgDistanceToBallNoPossession"`
	AvgDistanceToMates            float64 `json:"avgDistanceToMates"            yaml:"avgDistanceToMates"`
	TimeMostBack                  float64 `json:"timeMostBack"                  yaml:"timeMostBack"`
	TimeMostForward               float64 `json:"timeMostForward"               yaml:"timeMostForward"`
	GoalsAgainstWhileLastDefender int64   `json:"goalsAgainstWhileLastDefender" yaml:"goalsAgainstWhileLastDefender"`
	TimeClosestToBall             float64 `json:"timeClosestToBall"             yaml:"timeClosestToBall"`
	TimeFarthestFromBall          float64 `json:"timeFarthestFromBall"          yaml:"timeFarthestFromBall"`
	PercentDefensiveThird         float64 `json:"percentDefensiveThird"         yaml:"percentDefensiveThird"`
	PercentOffensiveThird         float64 `json:"percentOffensiveThird"         yaml:"percentOffensiveThird"`
	PercentNeutralThird           float64 `json:"percentNeutralThird"           yaml:"percentNeutralThird"`
	PercentDefensiveHalf          float64 `json:"percentDefensiveHalf"          yaml:"percentDefensiveHalf"`
	PercentOffensiveHalf          float64 `json:"percentOffensiveHalf"          yaml:"percentOffensiveHalf"`
	PercentBehindBall             float64 `json:"percentBehindBall"             yaml:"percentBehindBall"`
	PercentInfrontBall            float64 `json:"percentInfrontBall"            yaml:"percentInfrontBall"`
	PercentMostBack               float64 `json:"percentMostBack"               yaml:"percentMostBack"`
	PercentMostForward            float64 `json:"percentMostForward"            yaml:"percentMostForward"`
	PercentClosestToBall          float64 `json:"percentClosestToBall"          yaml:"percentClosestToBall"`
	PercentFarthestFromBall       float64 `json:"percentFarthestFromBall"       yaml:"percentFarthestFromBall"`
}

// AdvancedStats are derived per-player stats.
type AdvancedStats struct {
	GoalParticipation float64  `json:"goalParticipation"  yaml:"goalParticipation"`
	Rating            *float64 `json:"rating,omitempty"   yaml:"rating,omitempty"`
	MVP               bool     `json:"mvp,omitempty"      yaml:"mvp,omitempty"`
}

// GameScore is the score line of one game inside a match.
type GameScore struct {
	ID          GameID `json:"_id,omitempty"         yaml:"id,omitempty"`
	Blue        int64  `json:"blue"                  yaml:"blue"`
	Orange      int64  `json:"orange"                yaml:"orange"`
	Duration    *int64 `json:"duration,omitempty"    yaml:"duration,omitempty"`
	Ballchasing string `json:"ballchasing,omitempty" yaml:"ballchasing,omitempty"`
	Overtime    bool   `json:"overtime,omitempty"    yaml:"overtime,omitempty"`
}

// Game is a single game of a match.
type Game struct {
	ID              GameID     `json:"_id"                       validate:"required" yaml:"id"`
	OctaneID        string     `json:"octane_id,omitempty"       yaml:"octaneId,omitempty"`
	Number          int64      `json:"number"                    yaml:"number"`
	Match           *Match     `json:"match,omitempty"           yaml:"match,omitempty"`
	Map             *Map       `json:"map,omitempty"             yaml:"map,omitempty"`
	Duration        *int64     `json:"duration,omitempty"        yaml:"duration,omitempty"`
	Date            *time.Time `json:"date,omitempty"            yaml:"date,omitempty"`
	Blue            *Side      `json:"blue,omitempty"            yaml:"blue,omitempty"`
	Orange          *Side      `json:"orange,omitempty"          yaml:"orange,omitempty"`
	Ballchasing     string     `json:"ballchasing,omitempty"     yaml:"ballchasing,omitempty"`
	Overtime        *bool      `json:"overtime,omitempty"        yaml:"overtime,omitempty"`
	FlipBallchasing *bool      `json:"flipBallchasing,omitempty" yaml:"flipBallchasing,omitempty"`
}

// Map is the arena a game was played on.
type Map struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	ID   string `json:"id,omitempty"   yaml:"id,omitempty"`
}

// Record is one entry of a records leaderboard.
type Record struct {
	Game     *Game   `json:"game,omitempty"     yaml:"game,omitempty"`
	Match    *Match  `json:"match,omitempty"    yaml:"match,omitempty"`
	Team     *Team   `json:"team,omitempty"     yaml:"team,omitempty"`
	Opponent *Team   `json:"opponent,omitempty" yaml:"opponent,omitempty"`
	Winner   bool    `json:"winner"             yaml:"winner"`
	Player   *Player `json:"player,omitempty"   yaml:"player,omitempty"`
	Stat     float64 `json:"stat"               yaml:"stat"`
}

// Participant is a team and its roster at an event.
type Participant struct {
	Team    Team     `json:"team"    yaml:"team"`
	Players []Player `json:"players" yaml:"players"`
}

// StatsEntry is one row of an aggregated stats response. Stats keeps the
// aggregated values keyed by stat name.
type StatsEntry struct {
	Player    *Player                    `json:"player,omitempty"    yaml:"player,omitempty"`
	Team      *Team                      `json:"team,omitempty"      yaml:"team,omitempty"`
	Teams     []Team                     `json:"teams,omitempty"     yaml:"teams,omitempty"`
	Events    []Event                    `json:"events,omitempty"    yaml:"events,omitempty"`
	Opponents []Team                     `json:"opponents,omitempty" yaml:"opponents,omitempty"`
	Games     map[string]json.RawMessage `json:"games,omitempty"     yaml:"-"`
	Stats     map[string]json.RawMessage `json:"stats,omitempty"     yaml:"-"`
}

// Stat decodes one aggregated value.
func (s *StatsEntry) Stat(name string) (float64, bool) {
	raw, ok := s.Stats[name]
	if !ok {
		return 0, false
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, false
	}

	return value, true
}
