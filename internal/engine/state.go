package engine

import (
	"MatchEngineApi/internal/data"
	"slices"

	"github.com/google/uuid"
)

type side int

const (
	home side = iota
	away
)

func (s side) opponent() side {
	if s == home {
		return away
	}
	return home
}

// neutralOpposition gives a difficulty multiplier of exactly 1.
const neutralOpposition = 50.0

// matchState lives for one Simulate call. Rosters are copies so a simulation never aliases the
// caller's slices.
type matchState struct {
	matchID           uuid.UUID
	teams             [2]uuid.UUID
	rosters           [2][]data.Player
	tacticalBalance   float64
	score             data.Score
	oppositionQuality [2]float64
	importance        data.MatchImportance
}

func newMatchState(match *data.Match, homeRoster, awayRoster []data.Player) *matchState {
	st := &matchState{
		matchID:         match.ID,
		teams:           [2]uuid.UUID{match.HomeTeamID, match.AwayTeamID},
		rosters:         [2][]data.Player{slices.Clone(homeRoster), slices.Clone(awayRoster)},
		tacticalBalance: match.TacticalBalance,
		importance:      match.Importance,
	}
	st.oppositionQuality[home] = rosterQuality(st.rosters[away])
	st.oppositionQuality[away] = rosterQuality(st.rosters[home])
	return st
}

// scoreDifference is home goals minus away goals.
func (st *matchState) scoreDifference() int {
	return st.score.Home - st.score.Away
}

func (st *matchState) addGoal(s side) {
	if s == home {
		st.score.Home++
	} else {
		st.score.Away++
	}
}

// onField returns the roster members named in the lineup's starting XI, in roster order. A
// lineup without starters leaves the whole roster on the field.
func onField(roster []data.Player, lineup *data.Lineup) []data.Player {
	if len(lineup.StartingXI) == 0 {
		return roster
	}

	starters := make(map[uuid.UUID]bool, len(lineup.StartingXI))
	for _, p := range lineup.StartingXI {
		starters[p.PlayerID] = true
	}

	players := make([]data.Player, 0, len(lineup.StartingXI))
	for _, p := range roster {
		if starters[p.ID] {
			players = append(players, p)
		}
	}
	return players
}

// rosterQuality is the mean overall attribute average of a roster.
func rosterQuality(roster []data.Player) float64 {
	if len(roster) == 0 {
		return neutralOpposition
	}
	var total float64
	for _, p := range roster {
		total += p.OverallAverage()
	}
	return total / float64(len(roster))
}
