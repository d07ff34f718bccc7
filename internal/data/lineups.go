package data

import (
	"MatchEngineApi/internal/validator"
	"fmt"

	"github.com/google/uuid"
)

const StartingElevenSize = 11

// PlayerMatchStats are the discrete counters of one player's match. Saves stays nil until the
// first save is recorded.
type PlayerMatchStats struct {
	Goals           int  `json:"goals"`
	Assists         int  `json:"assists"`
	ShotsOnTarget   int  `json:"shots_on_target"`
	ShotsOffTarget  int  `json:"shots_off_target"`
	KeyPasses       int  `json:"key_passes"`
	PassesCompleted int  `json:"passes_completed"`
	Dribbles        int  `json:"dribbles"`
	TacklesWon      int  `json:"tackles_won"`
	Interceptions   int  `json:"interceptions"`
	Clearances      int  `json:"clearances"`
	Blocks          int  `json:"blocks"`
	AerialsWon      int  `json:"aerials_won"`
	Saves           *int `json:"saves,omitempty"`
	YellowCards     int  `json:"yellow_cards"`
	RedCards        int  `json:"red_cards"`
	MinutesPlayed   int  `json:"minutes_played"`
}

type PlayerInMatch struct {
	PlayerID    uuid.UUID        `json:"player_id"`
	Position    Position         `json:"position"`
	ShirtNumber int              `json:"shirt_number"`
	Rating      *float64         `json:"rating,omitempty"`
	Stats       PlayerMatchStats `json:"stats"`
}

type Lineup struct {
	Formation   string          `json:"formation"`
	StartingXI  []PlayerInMatch `json:"starting_xi"`
	Substitutes []PlayerInMatch `json:"substitutes"`
}

// Entry returns the lineup entry of a player, starters first.
func (l *Lineup) Entry(playerID uuid.UUID) (*PlayerInMatch, bool) {
	for i := range l.StartingXI {
		if l.StartingXI[i].PlayerID == playerID {
			return &l.StartingXI[i], true
		}
	}
	for i := range l.Substitutes {
		if l.Substitutes[i].PlayerID == playerID {
			return &l.Substitutes[i], true
		}
	}
	return nil, false
}

func (l *Lineup) playerIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(l.StartingXI)+len(l.Substitutes))
	for _, p := range l.StartingXI {
		ids = append(ids, p.PlayerID)
	}
	for _, p := range l.Substitutes {
		ids = append(ids, p.PlayerID)
	}
	return ids
}

// ValidateLineup checks the lineup shape and that every listed player exists in roster.
func ValidateLineup(v *validator.Validator, key string, lineup *Lineup, roster []Player) {
	v.Check(validator.Matches(lineup.Formation, validator.FormationRX), key+".formation",
		"must look like 4-4-2")
	v.Check(len(lineup.StartingXI) <= StartingElevenSize, key+".starting_xi",
		fmt.Sprintf("must not contain more than %d players", StartingElevenSize))

	ids := lineup.playerIDs()
	v.Check(validator.Unique(ids), key, "must not list a player twice")

	inRoster := make(map[uuid.UUID]bool, len(roster))
	for _, p := range roster {
		inRoster[p.ID] = true
	}
	for _, id := range ids {
		if !inRoster[id] {
			v.AddError(key, fmt.Sprintf("player %s is not in the roster", id))
			break
		}
	}

	entries := append(append([]PlayerInMatch{}, lineup.StartingXI...), lineup.Substitutes...)
	for _, p := range entries {
		v.Check(validator.In(p.Position, Positions...), key+".position", "must be a valid position")
		v.Check(p.ShirtNumber >= 1 && p.ShirtNumber <= 99, key+".shirt_number",
			"must be between 1 and 99")
	}
}
