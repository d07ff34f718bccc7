package data

import (
	"fmt"

	"github.com/google/uuid"
)

type GoalSummary struct {
	Minute   int       `json:"minute"`
	TeamID   uuid.UUID `json:"team_id"`
	PlayerID uuid.UUID `json:"player_id"`
}

type PlayerOfTheMatch struct {
	PlayerID uuid.UUID `json:"player_id"`
	Rating   float64   `json:"rating"`
}

// MatchSummary is the short form of a finished match published to feed watchers and used in
// matchday reports.
type MatchSummary struct {
	MatchID          uuid.UUID         `json:"match_id"`
	Pin              string            `json:"pin,omitempty"`
	HomeTeamID       uuid.UUID         `json:"home_team_id"`
	AwayTeamID       uuid.UUID         `json:"away_team_id"`
	CompetitionType  CompetitionType   `json:"competition_type"`
	Halftime         Score             `json:"halftime_score"`
	Fulltime         Score             `json:"fulltime_score"`
	ExtraTime        bool              `json:"extra_time"`
	EventCount       int               `json:"event_count"`
	Goals            []GoalSummary     `json:"goals"`
	PlayerOfTheMatch *PlayerOfTheMatch `json:"player_of_the_match,omitempty"`
}

func (m *Match) Summary() MatchSummary {
	s := MatchSummary{
		MatchID:         m.ID,
		Pin:             m.Pin.Pin,
		HomeTeamID:      m.HomeTeamID,
		AwayTeamID:      m.AwayTeamID,
		CompetitionType: m.CompetitionType,
		EventCount:      len(m.Events),
		Goals:           make([]GoalSummary, 0),
	}
	if m.HalftimeScore != nil {
		s.Halftime = *m.HalftimeScore
	}
	if m.FulltimeScore != nil {
		s.Fulltime = *m.FulltimeScore
	}

	for _, e := range m.Events {
		if e.Half == HalfExtraTime {
			s.ExtraTime = true
		}
		if e.Type == EventGoal && e.Success {
			s.Goals = append(s.Goals, GoalSummary{Minute: e.Minute, TeamID: e.TeamID, PlayerID: e.PlayerID})
		}
	}

	if id, rating, ok := m.TopRated(); ok {
		s.PlayerOfTheMatch = &PlayerOfTheMatch{PlayerID: id, Rating: rating}
	}

	return s
}

// Scoreline renders the fulltime score as "2-1", with "aet" appended after extra time.
func (s MatchSummary) Scoreline() string {
	line := fmt.Sprintf("%d-%d", s.Fulltime.Home, s.Fulltime.Away)
	if s.ExtraTime {
		line += " aet"
	}
	return line
}
