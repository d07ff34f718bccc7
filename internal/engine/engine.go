package engine

import (
	"MatchEngineApi/internal/clock"
	"MatchEngineApi/internal/data"
	"MatchEngineApi/internal/jsonlog"
	"errors"
	"fmt"
	"strconv"
)

var ErrMatchNotScheduled = errors.New("match is not scheduled")

type Config struct {
	// ApplyImportance folds the match importance factor into the clutch multiplier.
	ApplyImportance bool
}

// Engine simulates matches. An Engine owns its random stream and must not be shared between
// goroutines; use one Engine per concurrent simulation.
type Engine struct {
	rng    Rand
	config Config
	logger *jsonlog.Logger
}

// New returns an Engine drawing from rng. A nil rng gets an unseeded stream and a nil logger
// discards output.
func New(rng Rand, cfg Config, logger *jsonlog.Logger) *Engine {
	if rng == nil {
		rng = newUnseededRand()
	}
	if logger == nil {
		logger = jsonlog.Discard()
	}

	return &Engine{
		rng:    rng,
		config: cfg,
		logger: logger,
	}
}

// Simulate plays a scheduled match minute by minute, then rates every player who took part and
// fills in the lineup statistics. The rosters are read, never written. When a side's lineup
// names a starting XI, only those starters take part; otherwise the whole roster does.
func (e *Engine) Simulate(match *data.Match, homeRoster, awayRoster []data.Player) error {
	if match.Status != data.StatusScheduled {
		return fmt.Errorf("simulate match %s (%s): %w", match.ID, match.Status, ErrMatchNotScheduled)
	}

	mc, err := clock.NewMatchClock(clock.Football)
	if err != nil {
		return err
	}

	st := newMatchState(match, onField(homeRoster, &match.Lineups.Home),
		onField(awayRoster, &match.Lineups.Away))
	if match.Events == nil {
		match.Events = make([]data.MatchEvent, 0, mc.RegulationLength()*2)
	}
	match.Status = data.StatusInProgress

	for mc.Tick() {
		minute := mc.Minute()
		if mc.Period() == 2 && mc.IsPeriodStart() {
			halftime := st.score
			match.HalftimeScore = &halftime
		}

		match.Events = append(match.Events, e.playMinute(st, minute, matchHalf(mc))...)

		if minute == mc.RegulationLength()-1 && match.RequiresExtraTime() &&
			st.score.Home == st.score.Away {
			mc.ExtendToExtraTime()
		}
	}

	fulltime := st.score
	match.FulltimeScore = &fulltime

	if mc.Done() {
		match.PlayerRatings = CalculatePlayerRatings(match.Events)
		statline := AccumulateStatistics(match.Events, &match.Lineups.Home, &match.Lineups.Away)
		applyLineupRatings(match)
		match.Statline = &statline
	}
	match.Status = data.StatusFinished

	e.logger.PrintDebug("match simulated", map[string]string{
		"match_id": match.ID.String(),
		"events":   strconv.Itoa(len(match.Events)),
		"score":    fmt.Sprintf("%d-%d", fulltime.Home, fulltime.Away),
		"minutes":  strconv.Itoa(mc.Length()),
		"final":    mc.Get(),
	})

	return nil
}

// playMinute produces the events of one minute: an action by the side in possession and, with
// a fixed chance, a reactive action by the other side.
func (e *Engine) playMinute(st *matchState, minute int, half data.MatchHalf) []data.MatchEvent {
	events := make([]data.MatchEvent, 0, 2)

	attacking := selectPossession(e.rng, st.tacticalBalance)
	if p, ok := selectPlayer(e.rng, st.rosters[attacking], involvementWeight); ok {
		et := decideActionType(e.rng, p.PrimaryPosition)
		event := e.synthesizeEvent(st, p, attacking, minute, half, et)
		events = append(events, event)
		if event.Type == data.EventGoal && event.Success {
			st.addGoal(attacking)
		}
	}

	if e.rng.Float64() < defensiveActionChance {
		defending := attacking.opponent()
		if p, ok := selectPlayer(e.rng, st.rosters[defending], defensiveWeight); ok {
			et := decideDefensiveActionType(e.rng, p.PrimaryPosition)
			events = append(events, e.synthesizeEvent(st, p, defending, minute, half, et))
		}
	}

	return events
}

// matchHalf tags the clock's current minute with its half.
func matchHalf(mc *clock.MatchClock) data.MatchHalf {
	switch {
	case mc.IsExtraTime():
		return data.HalfExtraTime
	case mc.Period() == 1:
		return data.HalfFirst
	default:
		return data.HalfSecond
	}
}

// applyLineupRatings copies each rated player's rating onto their lineup entry.
func applyLineupRatings(match *data.Match) {
	for _, lineup := range []*data.Lineup{&match.Lineups.Home, &match.Lineups.Away} {
		for id, rating := range match.PlayerRatings {
			if entry, ok := lineup.Entry(id); ok {
				r := rating
				entry.Rating = &r
			}
		}
	}
}
