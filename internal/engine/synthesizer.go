package engine

import (
	"MatchEngineApi/internal/data"

	"github.com/google/uuid"
)

type threshold struct {
	below float64
	event data.EventType
}

// roll picks the first outcome whose threshold is above draw, else fallback.
func roll(draw float64, table []threshold, fallback data.EventType) data.EventType {
	for _, t := range table {
		if draw < t.below {
			return t.event
		}
	}
	return fallback
}

// decideActionType draws the action of a player in possession from their position's table.
func decideActionType(rng Rand, pos data.Position) data.EventType {
	draw := rng.Float64()

	switch pos {
	case data.PositionGK:
		return roll(draw, []threshold{
			{0.6, data.EventClaimCross},
			{0.8, data.EventPunchClear},
			{0.95, data.EventSave},
		}, data.EventSweeperClearance)
	case data.PositionCB:
		return roll(draw, []threshold{
			{0.4, data.EventTackleWon},
			{0.7, data.EventInterception},
			{0.9, data.EventClearance},
		}, data.EventAerialDuelWon)
	case data.PositionFB, data.PositionRB, data.PositionLB:
		return roll(draw, []threshold{
			{0.3, data.EventCrossSuccess},
			{0.6, data.EventTackleWon},
			{0.85, data.EventPassSuccess},
		}, data.EventDribbleSuccess)
	case data.PositionDM:
		return roll(draw, []threshold{
			{0.4, data.EventTackleWon},
			{0.75, data.EventInterception},
			{0.95, data.EventPassSuccess},
		}, data.EventDribbleSuccess)
	case data.PositionCM:
		return roll(draw, []threshold{
			{0.25, data.EventKeyPass},
			{0.5, data.EventPassSuccess},
			{0.7, data.EventDribbleSuccess},
			{0.9, data.EventTackleWon},
		}, data.EventThroughBall)
	case data.PositionRM, data.PositionLM:
		return roll(draw, []threshold{
			{0.3, data.EventCrossSuccess},
			{0.55, data.EventKeyPass},
			{0.8, data.EventDribbleSuccess},
		}, data.EventPassSuccess)
	case data.PositionRW, data.PositionLW:
		return roll(draw, []threshold{
			{0.4, data.EventDribbleSuccess},
			{0.7, data.EventCrossSuccess},
			{0.9, data.EventKeyPass},
		}, data.EventShotOnTarget)
	case data.PositionCF, data.PositionSS:
		return roll(draw, []threshold{
			{0.5, data.EventShotOnTarget},
			{0.75, data.EventGoal},
			{0.95, data.EventDribbleSuccess},
		}, data.EventAssist)
	case data.PositionAM:
		return roll(draw, []threshold{
			{0.25, data.EventKeyPass},
			{0.5, data.EventPassSuccess},
			{0.7, data.EventDribbleSuccess},
			{0.9, data.EventShotOnTarget},
		}, data.EventThroughBall)
	default:
		return data.EventPassSuccess
	}
}

// decideDefensiveActionType draws a reactive action for a defending player. Centre-backs take
// a second draw when the first does not land a tackle.
func decideDefensiveActionType(rng Rand, pos data.Position) data.EventType {
	first := rng.Float64()

	switch {
	case pos == data.PositionGK:
		if first < 0.8 {
			return data.EventSave
		}
		return data.EventClaimCross
	case pos == data.PositionCB:
		if first < 0.5 {
			return data.EventTackleWon
		}
		second := rng.Float64()
		if second < 0.8 {
			return data.EventInterception
		}
		return data.EventClearance
	case pos.IsFullBack():
		if first < 0.6 {
			return data.EventTackleWon
		}
		return data.EventInterception
	default:
		if first < 0.5 {
			return data.EventTackleWon
		}
		return data.EventInterception
	}
}

// determinePitchZone pushes play further forward as the match goes on.
func determinePitchZone(rng Rand, minute int) data.PitchZone {
	finalThirdChance := 0.2 + float64(minute)/90*0.3

	if rng.Float64() < finalThirdChance {
		if rng.Float64() < 0.6 {
			return data.ZoneFinalThird
		}
		return data.ZoneBox
	}
	if rng.Float64() < 0.5 {
		return data.ZoneMiddleThird
	}
	return data.ZoneDefensiveThird
}

// selectSecondaryPlayer picks a uniformly random member of the opposing roster.
func selectSecondaryPlayer(rng Rand, opposition []data.Player) *uuid.UUID {
	if len(opposition) == 0 {
		return nil
	}
	id := opposition[rng.IntN(len(opposition))].ID
	return &id
}

// synthesizeEvent turns a chosen action into a scored event. Draws are taken in a fixed order:
// secondary player, pitch zone, success.
func (e *Engine) synthesizeEvent(st *matchState, p *data.Player, acting side, minute int,
	half data.MatchHalf, et data.EventType) data.MatchEvent {
	secondary := selectSecondaryPlayer(e.rng, st.rosters[acting.opponent()])
	zone := determinePitchZone(e.rng, minute)
	success := e.rng.Float64() < successProbability(p, et)

	diff := st.scoreDifference()
	return data.MatchEvent{
		ID:                uuid.New(),
		MatchID:           st.matchID,
		TeamID:            st.teams[acting],
		Minute:            minute,
		Half:              half,
		Type:              et,
		PlayerID:          p.ID,
		SecondaryPlayerID: secondary,
		Zone:              zone,
		Success:           success,
		Impact: data.Impact{
			Base:       BaseImpact(et),
			Time:       TimeMultiplier(minute, diff),
			Position:   PositionMultiplier(et, p.PrimaryPosition),
			Difficulty: DifficultyMultiplier(st.oppositionQuality[acting]),
			Clutch:     ClutchMultiplier(minute, diff, st.importance, e.config.ApplyImportance),
		},
	}
}
