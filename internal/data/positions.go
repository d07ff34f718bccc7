package data

// Position is a player's on-pitch role.
type Position string

const (
	PositionGK Position = "GK"
	PositionRB Position = "RB"
	PositionCB Position = "CB"
	PositionLB Position = "LB"
	PositionFB Position = "FB"
	PositionDM Position = "DM"
	PositionRM Position = "RM"
	PositionCM Position = "CM"
	PositionLM Position = "LM"
	PositionAM Position = "AM"
	PositionRW Position = "RW"
	PositionLW Position = "LW"
	PositionCF Position = "CF"
	PositionSS Position = "SS"
)

var Positions = []Position{
	PositionGK, PositionRB, PositionCB, PositionLB, PositionFB, PositionDM, PositionRM,
	PositionCM, PositionLM, PositionAM, PositionRW, PositionLW, PositionCF, PositionSS,
}

func (p Position) IsGoalkeeper() bool {
	return p == PositionGK
}

// IsFullBack reports whether p plays on a defensive flank.
func (p Position) IsFullBack() bool {
	return p == PositionFB || p == PositionRB || p == PositionLB
}

func (p Position) IsForward() bool {
	return p == PositionCF || p == PositionSS
}
