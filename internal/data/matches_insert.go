package data

import (
	"MatchEngineApi/internal/pins"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

const maxPinAttempts = 5

// Insert stores a finished match under a freshly generated pin.
func (m *MatchModel) Insert(match *Match) error {
	if match.Status != StatusFinished {
		return fmt.Errorf("insert match %s: status is %s", match.ID, match.Status)
	}

	columns, err := encodeMatchColumns(match)
	if err != nil {
		return err
	}

	stmt := `
		INSERT INTO matches (id, pin, home_team_id, away_team_id, competition_type, importance,
			tactical_balance, scheduled_time, status, halftime_score, fulltime_score, events,
			player_ratings, lineups, statline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, version`

	for attempt := 0; attempt < maxPinAttempts; attempt++ {
		match.Pin = pins.NewMatchPin()

		args := []any{
			match.ID,
			match.Pin.Pin,
			match.HomeTeamID,
			match.AwayTeamID,
			match.CompetitionType,
			match.Importance,
			match.TacticalBalance,
			match.ScheduledTime,
			match.Status,
			columns.halftime,
			columns.fulltime,
			columns.events,
			columns.ratings,
			columns.lineups,
			columns.statline,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = m.db.QueryRowContext(ctx, stmt, args...).Scan(&match.CreatedAt, &match.Version)
		cancel()
		if err == nil {
			return nil
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "matches_pin_key" {
			continue
		}
		return err
	}

	return pins.ErrDuplicatePin
}

type matchColumns struct {
	halftime []byte
	fulltime []byte
	events   []byte
	ratings  []byte
	lineups  []byte
	statline []byte
}

func encodeMatchColumns(match *Match) (matchColumns, error) {
	var cols matchColumns
	var err error

	targets := []struct {
		dest  *[]byte
		value any
	}{
		{&cols.halftime, match.HalftimeScore},
		{&cols.fulltime, match.FulltimeScore},
		{&cols.events, match.Events},
		{&cols.ratings, match.PlayerRatings},
		{&cols.lineups, match.Lineups},
		{&cols.statline, match.Statline},
	}
	for _, t := range targets {
		*t.dest, err = json.Marshal(t.value)
		if err != nil {
			return matchColumns{}, fmt.Errorf("encode match %s: %w", match.ID, err)
		}
	}

	return cols, nil
}
