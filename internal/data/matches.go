package data

import (
	"MatchEngineApi/internal/pins"
	"MatchEngineApi/internal/stats"
	"MatchEngineApi/internal/validator"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NeutralRating is the rating of a player with no recorded events.
const NeutralRating = 6.0

// DefaultTacticalBalance gives both sides an equal share of possession.
const DefaultTacticalBalance = 0.5

type MatchStatus int64

const (
	StatusScheduled MatchStatus = iota
	StatusInProgress
	StatusFinished
	StatusPostponed
	StatusCancelled
)

var matchStatusNames = map[MatchStatus]string{
	StatusScheduled:  "scheduled",
	StatusInProgress: "in-progress",
	StatusFinished:   "finished",
	StatusPostponed:  "postponed",
	StatusCancelled:  "cancelled",
}

func (s MatchStatus) String() string {
	if name, ok := matchStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("MatchStatus(%d)", int64(s))
}

func (s MatchStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *MatchStatus) UnmarshalText(text []byte) error {
	for status, name := range matchStatusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown match status %q", text)
}

type CompetitionType string

const (
	CompetitionLeague           CompetitionType = "league"
	CompetitionKnockout         CompetitionType = "knockout"
	CompetitionGroupAndKnockout CompetitionType = "group_and_knockout"
)

var CompetitionTypes = []CompetitionType{
	CompetitionLeague, CompetitionKnockout, CompetitionGroupAndKnockout,
}

type MatchImportance string

const (
	ImportanceFriendly    MatchImportance = "friendly"
	ImportanceLeague      MatchImportance = "league"
	ImportanceCup         MatchImportance = "cup"
	ImportanceFinal       MatchImportance = "final"
	ImportanceContinental MatchImportance = "continental"
)

var Importances = []MatchImportance{
	ImportanceFriendly, ImportanceLeague, ImportanceCup, ImportanceFinal, ImportanceContinental,
}

type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Match is the record a simulation fills in. It is created Scheduled with an empty event log
// and rating map.
type Match struct {
	ID              uuid.UUID              `json:"id"`
	Pin             pins.Pin               `json:"pin"`
	CreatedAt       time.Time              `json:"-"`
	Version         int64                  `json:"-"`
	HomeTeamID      uuid.UUID              `json:"home_team_id"`
	AwayTeamID      uuid.UUID              `json:"away_team_id"`
	CompetitionType CompetitionType        `json:"competition_type"`
	Importance      MatchImportance        `json:"importance"`
	TacticalBalance float64                `json:"tactical_balance"`
	ScheduledTime   time.Time              `json:"scheduled_time"`
	Status          MatchStatus            `json:"status"`
	HalftimeScore   *Score                 `json:"halftime_score,omitempty"`
	FulltimeScore   *Score                 `json:"fulltime_score,omitempty"`
	Events          []MatchEvent           `json:"events"`
	PlayerRatings   map[uuid.UUID]float64  `json:"player_ratings"`
	Lineups         MatchLineups           `json:"lineups"`
	Statline        *stats.GameStatlineDto `json:"statline,omitempty"`
}

type MatchLineups struct {
	Home Lineup `json:"home"`
	Away Lineup `json:"away"`
}

func NewMatch(homeTeamID, awayTeamID uuid.UUID, competition CompetitionType,
	importance MatchImportance) *Match {
	return &Match{
		ID:              uuid.New(),
		HomeTeamID:      homeTeamID,
		AwayTeamID:      awayTeamID,
		CompetitionType: competition,
		Importance:      importance,
		TacticalBalance: DefaultTacticalBalance,
		ScheduledTime:   time.Now().UTC(),
		Status:          StatusScheduled,
		Events:          []MatchEvent{},
		PlayerRatings:   make(map[uuid.UUID]float64),
	}
}

// RequiresExtraTime reports whether a drawn match must be played on.
func (m *Match) RequiresExtraTime() bool {
	return m.CompetitionType == CompetitionKnockout
}

// Rating returns a player's match rating, NeutralRating when none was recorded.
func (m *Match) Rating(playerID uuid.UUID) float64 {
	if r, ok := m.PlayerRatings[playerID]; ok {
		return r
	}
	return NeutralRating
}

// EventsFor returns the events whose primary player is playerID, in log order.
func (m *Match) EventsFor(playerID uuid.UUID) []MatchEvent {
	events := make([]MatchEvent, 0)
	for _, e := range m.Events {
		if e.PlayerID == playerID {
			events = append(events, e)
		}
	}
	return events
}

// TopRated returns the highest rated player, or false when no ratings exist.
func (m *Match) TopRated() (uuid.UUID, float64, bool) {
	var best uuid.UUID
	bestRating := -1.0
	for id, r := range m.PlayerRatings {
		if r > bestRating || (r == bestRating && id.String() < best.String()) {
			best, bestRating = id, r
		}
	}
	return best, bestRating, bestRating >= 0
}

func ValidateMatch(v *validator.Validator, match *Match) {
	v.Check(match.HomeTeamID != uuid.Nil, "home_team_id", "must be provided")
	v.Check(match.AwayTeamID != uuid.Nil, "away_team_id", "must be provided")
	v.Check(match.HomeTeamID != match.AwayTeamID, "away_team_id", "must differ from home team")
	v.Check(validator.In(match.CompetitionType, CompetitionTypes...), "competition_type",
		"must be league, knockout or group_and_knockout")
	v.Check(validator.In(match.Importance, Importances...), "importance",
		"must be friendly, league, cup, final or continental")
	v.Check(match.TacticalBalance >= 0 && match.TacticalBalance <= 1, "tactical_balance",
		"must be between 0 and 1")
	v.Check(match.Status == StatusScheduled, "status", "must be scheduled")
	v.Check(len(match.Events) == 0, "events", "must be empty before simulation")
}

type MatchModel struct {
	db *sql.DB
}
