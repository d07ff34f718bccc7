package engine

import (
	"MatchEngineApi/internal/data"
	"MatchEngineApi/internal/stats"
	"errors"
	"fmt"
)

// minutesPerStarter is credited to every starter; substitutions are not modelled.
const minutesPerStarter = 90

// statFor maps an event to the counter it increments. Every mapped type counts each event
// except goals and assists, which deliberately depart from a plain per-type count and only
// count when the event succeeded, so the goal counter always agrees with the live score.
func statFor(e data.MatchEvent) (stats.PrimitiveStat, bool) {
	switch e.Type {
	case data.EventGoal:
		return stats.Goal, e.Success
	case data.EventAssist:
		return stats.Assist, e.Success
	case data.EventShotOnTarget:
		return stats.ShotOnTarget, true
	case data.EventShotOffTarget:
		return stats.ShotOffTarget, true
	case data.EventKeyPass:
		return stats.KeyPass, true
	case data.EventPassSuccess:
		return stats.PassCompleted, true
	case data.EventDribbleSuccess:
		return stats.Dribble, true
	case data.EventTackleWon:
		return stats.TackleWon, true
	case data.EventInterception:
		return stats.Interception, true
	case data.EventClearance:
		return stats.Clearance, true
	case data.EventBlock:
		return stats.Block, true
	case data.EventAerialDuelWon:
		return stats.AerialWon, true
	case data.EventSave:
		return stats.Save, true
	case data.EventYellowCard:
		return stats.YellowCard, true
	case data.EventRedCard:
		return stats.RedCard, true
	default:
		return "", false
	}
}

// AccumulateStatistics replays the event log into the lineups. Every lineup entry is reset
// first, so replaying the same log twice gives the same counters. Events by players missing
// from both lineups are ignored.
func AccumulateStatistics(events []data.MatchEvent, homeLineup, awayLineup *data.Lineup) stats.GameStatlineDto {
	statline := stats.NewGameStatline(lineupKeys(homeLineup), lineupKeys(awayLineup),
		stats.FootballBlueprint)

	recordEvents(statline, events)

	for _, lineup := range []*data.Lineup{homeLineup, awayLineup} {
		for i := range lineup.StartingXI {
			fillStats(&lineup.StartingXI[i], statline, minutesPerStarter)
		}
		for i := range lineup.Substitutes {
			fillStats(&lineup.Substitutes[i], statline, 0)
		}
	}

	return statline.GetDto()
}

// recordEvents adds every mapped event to the statline. Events by players outside the statline
// are skipped; a mapped stat the blueprint does not track is a programming error and panics.
func recordEvents(statline *stats.GameStatline, events []data.MatchEvent) {
	for _, e := range events {
		stat, ok := statFor(e)
		if !ok {
			continue
		}
		_, err := statline.Add(e.PlayerID.String(), stat, 1)
		if err != nil && !errors.Is(err, stats.ErrUnknownPlayer) {
			panic(fmt.Errorf("record %s for player %s: %w", e.Type, e.PlayerID, err))
		}
	}
}

func lineupKeys(lineup *data.Lineup) []string {
	keys := make([]string, 0, len(lineup.StartingXI)+len(lineup.Substitutes))
	for _, p := range lineup.StartingXI {
		keys = append(keys, p.PlayerID.String())
	}
	for _, p := range lineup.Substitutes {
		keys = append(keys, p.PlayerID.String())
	}
	return keys
}

func fillStats(entry *data.PlayerInMatch, statline *stats.GameStatline, minutes int) {
	key := entry.PlayerID.String()
	s := data.PlayerMatchStats{
		Goals:           statline.Get(key, stats.Goal),
		Assists:         statline.Get(key, stats.Assist),
		ShotsOnTarget:   statline.Get(key, stats.ShotOnTarget),
		ShotsOffTarget:  statline.Get(key, stats.ShotOffTarget),
		KeyPasses:       statline.Get(key, stats.KeyPass),
		PassesCompleted: statline.Get(key, stats.PassCompleted),
		Dribbles:        statline.Get(key, stats.Dribble),
		TacklesWon:      statline.Get(key, stats.TackleWon),
		Interceptions:   statline.Get(key, stats.Interception),
		Clearances:      statline.Get(key, stats.Clearance),
		Blocks:          statline.Get(key, stats.Block),
		AerialsWon:      statline.Get(key, stats.AerialWon),
		YellowCards:     statline.Get(key, stats.YellowCard),
		RedCards:        statline.Get(key, stats.RedCard),
		MinutesPlayed:   minutes,
	}
	if saves := statline.Get(key, stats.Save); saves > 0 {
		s.Saves = &saves
	}
	entry.Stats = s
}
