package data

import (
	"MatchEngineApi/internal/validator"

	"github.com/google/uuid"
)

type TechnicalAttributes struct {
	Dribbling  int `json:"dribbling"`
	Passing    int `json:"passing"`
	Shooting   int `json:"shooting"`
	FirstTouch int `json:"first_touch"`
	Tackling   int `json:"tackling"`
	Crossing   int `json:"crossing"`
}

func (a TechnicalAttributes) Average() float64 {
	sum := a.Dribbling + a.Passing + a.Shooting + a.FirstTouch + a.Tackling + a.Crossing
	return float64(sum) / 6
}

func (a TechnicalAttributes) values() []int {
	return []int{a.Dribbling, a.Passing, a.Shooting, a.FirstTouch, a.Tackling, a.Crossing}
}

type PhysicalAttributes struct {
	Pace     int `json:"pace"`
	Stamina  int `json:"stamina"`
	Strength int `json:"strength"`
	Agility  int `json:"agility"`
	Jumping  int `json:"jumping"`
}

func (a PhysicalAttributes) Average() float64 {
	sum := a.Pace + a.Stamina + a.Strength + a.Agility + a.Jumping
	return float64(sum) / 5
}

func (a PhysicalAttributes) values() []int {
	return []int{a.Pace, a.Stamina, a.Strength, a.Agility, a.Jumping}
}

type MentalAttributes struct {
	Composure     int `json:"composure"`
	Vision        int `json:"vision"`
	WorkRate      int `json:"work_rate"`
	Determination int `json:"determination"`
	Positioning   int `json:"positioning"`
	Teamwork      int `json:"teamwork"`
}

func (a MentalAttributes) Average() float64 {
	sum := a.Composure + a.Vision + a.WorkRate + a.Determination + a.Positioning + a.Teamwork
	return float64(sum) / 6
}

func (a MentalAttributes) values() []int {
	return []int{a.Composure, a.Vision, a.WorkRate, a.Determination, a.Positioning, a.Teamwork}
}

// HiddenAttributes are never shown to the user but still drive simulation outcomes.
type HiddenAttributes struct {
	InjuryProneness     int `json:"injury_proneness"`
	Consistency         int `json:"consistency"`
	BigMatchTemperament int `json:"big_match_temperament"`
	Professionalism     int `json:"professionalism"`
	PotentialCeiling    int `json:"potential_ceiling"`
	Versatility         int `json:"versatility"`
	Ambition            int `json:"ambition"`
	Loyalty             int `json:"loyalty"`
	Ego                 int `json:"ego"`
}

func (a HiddenAttributes) values() []int {
	return []int{a.InjuryProneness, a.Consistency, a.BigMatchTemperament, a.Professionalism,
		a.PotentialCeiling, a.Versatility, a.Ambition, a.Loyalty, a.Ego}
}

// Player is the read-only view of a squad member the engine simulates with. Form and Morale
// are on a 0-100 scale.
type Player struct {
	ID              uuid.UUID           `json:"id"`
	Name            string              `json:"name"`
	PrimaryPosition Position            `json:"primary_position"`
	Technical       TechnicalAttributes `json:"technical"`
	Physical        PhysicalAttributes  `json:"physical"`
	Mental          MentalAttributes    `json:"mental"`
	Hidden          HiddenAttributes    `json:"hidden"`
	Form            float64             `json:"form"`
	Morale          float64             `json:"morale"`
}

// OverallAverage is the mean of the technical, physical and mental group averages.
func (p Player) OverallAverage() float64 {
	return (p.Technical.Average() + p.Physical.Average() + p.Mental.Average()) / 3
}

func ValidatePlayer(v *validator.Validator, player *Player) {
	v.Check(player.ID != uuid.Nil, "id", "must be provided")
	v.Check(player.Name != "", "name", "must be provided")
	v.Check(len(player.Name) <= 60, "name", "must be 60 characters or less")
	v.Check(validator.In(player.PrimaryPosition, Positions...), "primary_position",
		"must be a valid position")

	groups := map[string][]int{
		"technical": player.Technical.values(),
		"physical":  player.Physical.values(),
		"mental":    player.Mental.values(),
		"hidden":    player.Hidden.values(),
	}
	for key, values := range groups {
		for _, value := range values {
			v.Check(value >= 1 && value <= 100, key, "attributes must be between 1 and 100")
		}
	}

	v.Check(player.Form >= 0 && player.Form <= 100, "form", "must be between 0 and 100")
	v.Check(player.Morale >= 0 && player.Morale <= 100, "morale", "must be between 0 and 100")
}

// ValidateRoster validates each player under a key prefixed with the roster name.
func ValidateRoster(v *validator.Validator, key string, roster []Player) {
	ids := make([]uuid.UUID, 0, len(roster))
	for i := range roster {
		pv := validator.New()
		ValidatePlayer(pv, &roster[i])
		for k, msg := range pv.Errors {
			v.AddError(key+"."+k, msg)
		}
		ids = append(ids, roster[i].ID)
	}
	v.Check(validator.Unique(ids), key, "must not contain duplicate player ids")
}
