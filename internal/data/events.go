package data

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// EventType is the closed set of atomic match actions.
type EventType int

const (
	// Attacking
	EventGoal EventType = iota
	EventShotOnTarget
	EventShotOffTarget
	EventKeyPass
	EventAssist
	EventDribbleSuccess
	EventDribbleFailed
	EventCrossSuccess
	EventCrossFailed
	EventThroughBall
	EventChanceCreated
	EventPenaltyWon
	EventFoulWon
	EventMissedBigChance
	EventPenaltyMissed

	// Defensive
	EventTackleWon
	EventTackleLost
	EventInterception
	EventBlock
	EventClearance
	EventAerialDuelWon
	EventAerialDuelLost
	EventLastManTackle
	EventGoalLineClearance

	// Goalkeeping
	EventSave
	EventReflexSave
	EventOneOnOneSave
	EventClaimCross
	EventPunchClear
	EventSweeperClearance
	EventGoalConceded
	EventPenaltySaved

	// Transition
	EventBallRecovery
	EventCounterAttackStart
	EventCounterAttackInvolvement
	EventTurnoverCommitted
	EventTurnoverForced

	// Discipline
	EventFoulCommitted
	EventYellowCard
	EventSecondYellow
	EventRedCard
	EventPenaltyConceded

	// Off-ball
	EventPressSuccess
	EventPressBroken
	EventOffBallRun
	EventSpaceCreated
	EventMarkingError
	EventTrackingBackStop

	// Other
	EventPassSuccess
	EventPassFailed

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	EventGoal:                     "goal",
	EventShotOnTarget:             "shot_on_target",
	EventShotOffTarget:            "shot_off_target",
	EventKeyPass:                  "key_pass",
	EventAssist:                   "assist",
	EventDribbleSuccess:           "dribble_success",
	EventDribbleFailed:            "dribble_failed",
	EventCrossSuccess:             "cross_success",
	EventCrossFailed:              "cross_failed",
	EventThroughBall:              "through_ball",
	EventChanceCreated:            "chance_created",
	EventPenaltyWon:               "penalty_won",
	EventFoulWon:                  "foul_won",
	EventMissedBigChance:          "missed_big_chance",
	EventPenaltyMissed:            "penalty_missed",
	EventTackleWon:                "tackle_won",
	EventTackleLost:               "tackle_lost",
	EventInterception:             "interception",
	EventBlock:                    "block",
	EventClearance:                "clearance",
	EventAerialDuelWon:            "aerial_duel_won",
	EventAerialDuelLost:           "aerial_duel_lost",
	EventLastManTackle:            "last_man_tackle",
	EventGoalLineClearance:        "goal_line_clearance",
	EventSave:                     "save",
	EventReflexSave:               "reflex_save",
	EventOneOnOneSave:             "one_on_one_save",
	EventClaimCross:               "claim_cross",
	EventPunchClear:               "punch_clear",
	EventSweeperClearance:         "sweeper_clearance",
	EventGoalConceded:             "goal_conceded",
	EventPenaltySaved:             "penalty_saved",
	EventBallRecovery:             "ball_recovery",
	EventCounterAttackStart:       "counter_attack_start",
	EventCounterAttackInvolvement: "counter_attack_involvement",
	EventTurnoverCommitted:        "turnover_committed",
	EventTurnoverForced:           "turnover_forced",
	EventFoulCommitted:            "foul_committed",
	EventYellowCard:               "yellow_card",
	EventSecondYellow:             "second_yellow",
	EventRedCard:                  "red_card",
	EventPenaltyConceded:          "penalty_conceded",
	EventPressSuccess:             "press_success",
	EventPressBroken:              "press_broken",
	EventOffBallRun:               "off_ball_run",
	EventSpaceCreated:             "space_created",
	EventMarkingError:             "marking_error",
	EventTrackingBackStop:         "tracking_back_stop",
	EventPassSuccess:              "pass_success",
	EventPassFailed:               "pass_failed",
}

func (et EventType) Valid() bool {
	return et >= 0 && et < eventTypeCount
}

func (et EventType) String() string {
	if !et.Valid() {
		return fmt.Sprintf("EventType(%d)", int(et))
	}
	return eventTypeNames[et]
}

func (et EventType) MarshalText() ([]byte, error) {
	if !et.Valid() {
		return nil, fmt.Errorf("invalid event type %d", int(et))
	}
	return []byte(eventTypeNames[et]), nil
}

func (et *EventType) UnmarshalText(text []byte) error {
	for i, name := range eventTypeNames {
		if name == string(text) {
			*et = EventType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown event type %q", text)
}

type EventGroup string

const (
	GroupAttacking   EventGroup = "attacking"
	GroupDefensive   EventGroup = "defensive"
	GroupGoalkeeping EventGroup = "goalkeeping"
	GroupTransition  EventGroup = "transition"
	GroupDiscipline  EventGroup = "discipline"
	GroupOffBall     EventGroup = "off_ball"
	GroupOther       EventGroup = "other"
)

// Group relies on the declaration order of the EventType constants.
func (et EventType) Group() EventGroup {
	switch {
	case et <= EventPenaltyMissed:
		return GroupAttacking
	case et <= EventGoalLineClearance:
		return GroupDefensive
	case et <= EventPenaltySaved:
		return GroupGoalkeeping
	case et <= EventTurnoverForced:
		return GroupTransition
	case et <= EventPenaltyConceded:
		return GroupDiscipline
	case et <= EventTrackingBackStop:
		return GroupOffBall
	default:
		return GroupOther
	}
}

type PitchZone string

const (
	ZoneDefensiveThird PitchZone = "defensive_third"
	ZoneMiddleThird    PitchZone = "middle_third"
	ZoneFinalThird     PitchZone = "final_third"
	ZoneBox            PitchZone = "box"
)

type MatchHalf string

const (
	HalfFirst     MatchHalf = "first"
	HalfSecond    MatchHalf = "second"
	HalfExtraTime MatchHalf = "extra_time"
)

// Impact holds the factors of an event's impact score.
type Impact struct {
	Base       float64 `json:"base_impact"`
	Time       float64 `json:"time_multiplier"`
	Position   float64 `json:"position_multiplier"`
	Difficulty float64 `json:"difficulty_multiplier"`
	Clutch     float64 `json:"clutch_multiplier"`
}

// Total is the product of the base impact and every multiplier.
func (i Impact) Total() float64 {
	return i.Base * i.Time * i.Position * i.Difficulty * i.Clutch
}

// MatchEvent is one atomic action in a match log. The total impact score is never stored; it
// is always derived from Impact.
type MatchEvent struct {
	ID                uuid.UUID  `json:"id"`
	MatchID           uuid.UUID  `json:"match_id"`
	TeamID            uuid.UUID  `json:"team_id"`
	Minute            int        `json:"minute"`
	Half              MatchHalf  `json:"half"`
	Type              EventType  `json:"event_type"`
	PlayerID          uuid.UUID  `json:"player_id"`
	SecondaryPlayerID *uuid.UUID `json:"secondary_player_id,omitempty"`
	Zone              PitchZone  `json:"pitch_zone"`
	Success           bool       `json:"success"`
	Impact
}

func (e MatchEvent) TotalImpactScore() float64 {
	return e.Impact.Total()
}

func (e MatchEvent) MarshalJSON() ([]byte, error) {
	type event MatchEvent
	return json.Marshal(struct {
		event
		TotalImpactScore float64 `json:"total_impact_score"`
	}{
		event:            event(e),
		TotalImpactScore: e.TotalImpactScore(),
	})
}
