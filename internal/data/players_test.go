package data

import (
	"MatchEngineApi/internal/assert"
	"MatchEngineApi/internal/validator"
	"testing"

	"github.com/google/uuid"
)

func newValidPlayer(pos Position) Player {
	return Player{
		ID:              uuid.New(),
		Name:            "Valid Player",
		PrimaryPosition: pos,
		Technical:       TechnicalAttributes{60, 60, 60, 60, 60, 60},
		Physical:        PhysicalAttributes{70, 70, 70, 70, 70},
		Mental:          MentalAttributes{80, 80, 80, 80, 80, 80},
		Hidden:          HiddenAttributes{50, 50, 50, 50, 50, 50, 50, 50, 50},
		Form:            50,
		Morale:          50,
	}
}

func TestOverallAverage(t *testing.T) {
	p := newValidPlayer(PositionCM)
	assert.InDelta(t, p.OverallAverage(), 70, 1e-9)
}

func TestValidatePlayer(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(p *Player)
		wantKeys []string
	}{
		{
			name:   "Valid",
			modify: func(p *Player) {},
		},
		{
			name:     "Missing Name",
			modify:   func(p *Player) { p.Name = "" },
			wantKeys: []string{"name"},
		},
		{
			name:     "Unknown Position",
			modify:   func(p *Player) { p.PrimaryPosition = "XX" },
			wantKeys: []string{"primary_position"},
		},
		{
			name:     "Attribute Out Of Range",
			modify:   func(p *Player) { p.Technical.Passing = 0; p.Hidden.Ego = 101 },
			wantKeys: []string{"technical", "hidden"},
		},
		{
			name:     "Form And Morale",
			modify:   func(p *Player) { p.Form = -1; p.Morale = 100.5 },
			wantKeys: []string{"form", "morale"},
		},
		{
			name:     "Nil Id",
			modify:   func(p *Player) { p.ID = uuid.Nil },
			wantKeys: []string{"id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newValidPlayer(PositionCF)
			tt.modify(&p)

			v := validator.New()
			ValidatePlayer(v, &p)
			assert.Equal(t, len(v.Errors), len(tt.wantKeys))
			for _, key := range tt.wantKeys {
				_, ok := v.Errors[key]
				assert.True(t, ok, "missing error for "+key)
			}
		})
	}
}

func TestValidateRoster(t *testing.T) {
	p := newValidPlayer(PositionGK)
	bad := newValidPlayer(PositionCB)
	bad.Name = ""

	v := validator.New()
	ValidateRoster(v, "home_roster", []Player{p, p, bad})

	_, dup := v.Errors["home_roster"]
	assert.True(t, dup, "duplicate ids are reported")
	_, name := v.Errors["home_roster.name"]
	assert.True(t, name, "player errors are prefixed")
}
