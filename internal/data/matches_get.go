package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

func (m *MatchModel) Get(pin string) (*Match, error) {
	stmt := `
		SELECT id, pin, created_at, version, home_team_id, away_team_id, competition_type,
			importance, tactical_balance, scheduled_time, status, halftime_score, fulltime_score,
			events, player_ratings, lineups, statline
			FROM matches
			WHERE pin = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	match := &Match{}
	var cols matchColumns
	err := m.db.QueryRowContext(ctx, stmt, pin).Scan(
		&match.ID,
		&match.Pin.Pin,
		&match.CreatedAt,
		&match.Version,
		&match.HomeTeamID,
		&match.AwayTeamID,
		&match.CompetitionType,
		&match.Importance,
		&match.TacticalBalance,
		&match.ScheduledTime,
		&match.Status,
		&cols.halftime,
		&cols.fulltime,
		&cols.events,
		&cols.ratings,
		&cols.lineups,
		&cols.statline,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	targets := []struct {
		src  []byte
		dest any
	}{
		{cols.halftime, &match.HalftimeScore},
		{cols.fulltime, &match.FulltimeScore},
		{cols.events, &match.Events},
		{cols.ratings, &match.PlayerRatings},
		{cols.lineups, &match.Lineups},
		{cols.statline, &match.Statline},
	}
	for _, t := range targets {
		if len(t.src) == 0 {
			continue
		}
		if err := json.Unmarshal(t.src, t.dest); err != nil {
			return nil, fmt.Errorf("decode match %s: %w", pin, err)
		}
	}

	return match, nil
}
