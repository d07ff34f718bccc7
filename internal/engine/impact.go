package engine

import (
	"MatchEngineApi/internal/data"
	"math"
)

const (
	maxClutchMultiplier  = 2.0
	lateGameMinute       = 75 // clutch bonus applies after this minute
	pressureMinute       = 70 // time pressure peaks after this minute
	closeScoreMargin     = 1
	timeMultiplierGrowth = 0.3 // over 90 minutes
	difficultySlope      = 0.3
)

// BaseImpact is the unscaled rating contribution of an event type.
func BaseImpact(et data.EventType) float64 {
	switch et {
	// Positive actions
	case data.EventGoal:
		return 8.0
	case data.EventAssist:
		return 5.0
	case data.EventKeyPass:
		return 2.5
	case data.EventShotOnTarget:
		return 1.5
	case data.EventShotOffTarget:
		return 0.8
	case data.EventDribbleSuccess:
		return 0.7
	case data.EventTackleWon:
		return 1.2
	case data.EventInterception:
		return 1.0
	case data.EventBlock:
		return 2.0
	case data.EventClearance:
		return 0.8
	case data.EventAerialDuelWon:
		return 0.6

	// Goalkeeping
	case data.EventSave:
		return 2.5
	case data.EventReflexSave:
		return 3.5
	case data.EventOneOnOneSave:
		return 4.0
	case data.EventClaimCross:
		return 0.5
	case data.EventPunchClear:
		return 0.6
	case data.EventSweeperClearance:
		return 1.0

	// Negative actions
	case data.EventGoalConceded:
		return -2.0
	case data.EventFoulCommitted:
		return -0.5
	case data.EventYellowCard:
		return -1.0
	case data.EventRedCard:
		return -3.0
	case data.EventMissedBigChance:
		return -2.5
	case data.EventPenaltyConceded:
		return -2.0

	// Penalties
	case data.EventPenaltyWon:
		return 2.0
	case data.EventPenaltySaved:
		return 4.0
	case data.EventPenaltyMissed:
		return -3.0

	default:
		return 0.0
	}
}

func isClose(scoreDiff int) bool {
	return scoreDiff >= -closeScoreMargin && scoreDiff <= closeScoreMargin
}

// TimeMultiplier grows through the match and compounds with close-game pressure.
func TimeMultiplier(minute, scoreDiff int) float64 {
	base := 1.0 + float64(minute)/90*timeMultiplierGrowth

	pressure := 1.0
	switch {
	case isClose(scoreDiff) && minute > pressureMinute:
		pressure = 1.4
	case isClose(scoreDiff):
		pressure = 1.2
	}

	return base * pressure
}

// PositionMultiplier weights actions outside a position's usual repertoire.
func PositionMultiplier(et data.EventType, pos data.Position) float64 {
	switch et {
	case data.EventGoal:
		switch pos {
		case data.PositionCF, data.PositionSS:
			return 1.0
		case data.PositionRW, data.PositionLW:
			return 1.1
		case data.PositionCM, data.PositionAM, data.PositionRM, data.PositionLM:
			return 1.2
		case data.PositionDM:
			return 1.3
		case data.PositionFB, data.PositionRB, data.PositionLB:
			return 1.4
		case data.PositionCB:
			return 1.5
		case data.PositionGK:
			return 2.0
		}
	case data.EventTackleWon, data.EventInterception, data.EventClearance:
		switch pos {
		case data.PositionCF, data.PositionSS:
			return 1.4
		case data.PositionRW, data.PositionLW:
			return 1.3
		case data.PositionCM, data.PositionAM:
			return 1.2
		case data.PositionGK:
			return 1.1
		case data.PositionDM, data.PositionCB, data.PositionFB, data.PositionRB, data.PositionLB,
			data.PositionRM, data.PositionLM:
			return 1.0
		}
	case data.EventKeyPass, data.EventAssist:
		switch pos {
		case data.PositionGK:
			return 1.6
		case data.PositionCB:
			return 1.5
		case data.PositionFB, data.PositionRB, data.PositionLB:
			return 1.4
		case data.PositionDM:
			return 1.3
		case data.PositionCF, data.PositionSS:
			return 1.2
		case data.PositionCM, data.PositionAM:
			return 1.1
		case data.PositionRM, data.PositionLM, data.PositionRW, data.PositionLW:
			return 1.0
		}
	}
	return 1.0
}

// DifficultyMultiplier rewards actions against opposition above the 50 average.
func DifficultyMultiplier(oppositionQuality float64) float64 {
	return 1.0 + (oppositionQuality/50-1.0)*difficultySlope
}

func ImportanceFactor(importance data.MatchImportance) float64 {
	switch importance {
	case data.ImportanceFriendly:
		return 0.8
	case data.ImportanceCup:
		return 1.2
	case data.ImportanceFinal:
		return 1.5
	case data.ImportanceContinental:
		return 1.4
	default:
		return 1.0
	}
}

// ClutchMultiplier boosts late and close-game actions. The importance factor only takes part
// when applyImportance is set.
func ClutchMultiplier(minute, scoreDiff int, importance data.MatchImportance,
	applyImportance bool) float64 {
	multiplier := 1.0
	if minute > lateGameMinute {
		multiplier *= 1.2
	}
	if isClose(scoreDiff) {
		multiplier *= 1.15
	}
	if applyImportance {
		multiplier *= ImportanceFactor(importance)
	}
	return math.Min(multiplier, maxClutchMultiplier)
}
