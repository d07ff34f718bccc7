package engine

import (
	"MatchEngineApi/internal/data"

	"github.com/google/uuid"
)

// scriptedRand replays fixed draws so tests can walk exact branches. It panics when a test
// takes more float draws than it scripted.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func newTestPlayer(pos data.Position, attr int) data.Player {
	return data.Player{
		ID:              uuid.New(),
		Name:            "Test " + string(pos),
		PrimaryPosition: pos,
		Technical: data.TechnicalAttributes{
			Dribbling: attr, Passing: attr, Shooting: attr, FirstTouch: attr, Tackling: attr,
			Crossing: attr,
		},
		Physical: data.PhysicalAttributes{
			Pace: attr, Stamina: attr, Strength: attr, Agility: attr, Jumping: attr,
		},
		Mental: data.MentalAttributes{
			Composure: attr, Vision: attr, WorkRate: attr, Determination: attr, Positioning: attr,
			Teamwork: attr,
		},
		Hidden: data.HiddenAttributes{
			InjuryProneness: attr, Consistency: attr, BigMatchTemperament: attr,
			Professionalism: attr, PotentialCeiling: attr, Versatility: attr, Ambition: attr,
			Loyalty: attr, Ego: attr,
		},
		Form:   50,
		Morale: 50,
	}
}

var fourFourTwo = []data.Position{
	data.PositionGK, data.PositionRB, data.PositionCB, data.PositionCB, data.PositionLB,
	data.PositionRM, data.PositionCM, data.PositionCM, data.PositionLM, data.PositionCF,
	data.PositionSS,
}

func newTestSquad(attr int) ([]data.Player, data.Lineup) {
	roster := make([]data.Player, 0, len(fourFourTwo))
	lineup := data.Lineup{Formation: "4-4-2"}
	for i, pos := range fourFourTwo {
		p := newTestPlayer(pos, attr)
		roster = append(roster, p)
		lineup.StartingXI = append(lineup.StartingXI, data.PlayerInMatch{
			PlayerID:    p.ID,
			Position:    pos,
			ShirtNumber: i + 1,
		})
	}
	return roster, lineup
}

func newTestEvent(playerID uuid.UUID, et data.EventType, impact data.Impact) data.MatchEvent {
	return data.MatchEvent{
		ID:       uuid.New(),
		PlayerID: playerID,
		Type:     et,
		Success:  true,
		Impact:   impact,
	}
}

// flatImpact is an impact whose total equals base.
func flatImpact(base float64) data.Impact {
	return data.Impact{Base: base, Time: 1, Position: 1, Difficulty: 1, Clutch: 1}
}
