package engine

import (
	"MatchEngineApi/internal/data"
	"math"
)

const maxSuccessProbability = 0.95

func involvementPositionFactor(pos data.Position) float64 {
	switch pos {
	case data.PositionCF, data.PositionSS:
		return 1.2
	case data.PositionRW, data.PositionLW:
		return 1.1
	case data.PositionCM:
		return 1.0
	case data.PositionRM, data.PositionLM, data.PositionAM:
		return 0.9
	case data.PositionFB:
		return 0.8
	case data.PositionDM:
		return 0.85
	case data.PositionCB, data.PositionRB, data.PositionLB:
		return 0.7
	case data.PositionGK:
		return 0.3
	default:
		return 1.0
	}
}

func defensivePositionFactor(pos data.Position) float64 {
	switch pos {
	case data.PositionCB:
		return 1.3
	case data.PositionFB, data.PositionRB, data.PositionLB:
		return 1.2
	case data.PositionDM:
		return 1.1
	case data.PositionGK:
		return 1.0
	case data.PositionCM:
		return 0.9
	case data.PositionRM, data.PositionLM:
		return 0.8
	case data.PositionRW, data.PositionLW, data.PositionAM:
		return 0.7
	case data.PositionCF, data.PositionSS:
		return 0.5
	default:
		return 1.0
	}
}

// involvementWeight is how likely a player is to act when their side has the ball.
func involvementWeight(p *data.Player) float64 {
	return involvementPositionFactor(p.PrimaryPosition) *
		(p.Form / 50) *
		(p.Morale / 50) *
		(p.Technical.Average() / 50)
}

// defensiveWeight is how likely a player is to make a reactive defensive action.
func defensiveWeight(p *data.Player) float64 {
	return defensivePositionFactor(p.PrimaryPosition) *
		(float64(p.Technical.Tackling) / 50) *
		(float64(p.Mental.Positioning) / 50)
}

func baseSuccessRate(p *data.Player, et data.EventType) float64 {
	switch et {
	case data.EventGoal:
		return float64(p.Technical.Shooting) / 120
	case data.EventShotOnTarget:
		return float64(p.Technical.Shooting) / 100
	case data.EventKeyPass:
		return float64(p.Technical.Passing) / 100
	case data.EventAssist:
		return float64(p.Technical.Passing) / 90
	case data.EventDribbleSuccess:
		return float64(p.Technical.Dribbling) / 100
	case data.EventTackleWon:
		return float64(p.Technical.Tackling) / 100
	case data.EventInterception:
		return float64(p.Mental.Vision) / 100
	case data.EventBlock:
		return float64(p.Mental.Positioning) / 100
	case data.EventClearance:
		return float64(p.Mental.Positioning) / 90
	case data.EventSave:
		return float64(p.Hidden.BigMatchTemperament) / 100
	default:
		return 0.7
	}
}

// successProbability scales the attribute-driven base rate by form and morale, capped below
// certainty.
func successProbability(p *data.Player, et data.EventType) float64 {
	adjusted := baseSuccessRate(p, et) * (p.Form / 70) * (p.Morale / 70)
	return math.Min(adjusted, maxSuccessProbability)
}
