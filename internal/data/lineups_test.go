package data

import (
	"MatchEngineApi/internal/assert"
	"MatchEngineApi/internal/validator"
	"testing"
)

func TestValidateLineup(t *testing.T) {
	keeper := newValidPlayer(PositionGK)
	striker := newValidPlayer(PositionCF)
	roster := []Player{keeper, striker}

	valid := func() Lineup {
		return Lineup{
			Formation: "4-4-2",
			StartingXI: []PlayerInMatch{
				{PlayerID: keeper.ID, Position: PositionGK, ShirtNumber: 1},
			},
			Substitutes: []PlayerInMatch{
				{PlayerID: striker.ID, Position: PositionCF, ShirtNumber: 9},
			},
		}
	}

	tests := []struct {
		name    string
		modify  func(l *Lineup)
		wantKey string
	}{
		{name: "Valid", modify: func(l *Lineup) {}},
		{name: "Five Band Formation", modify: func(l *Lineup) { l.Formation = "4-2-1-2-1" }},
		{
			name:    "Bad Formation",
			modify:  func(l *Lineup) { l.Formation = "442" },
			wantKey: "home.formation",
		},
		{
			name: "Too Many Starters",
			modify: func(l *Lineup) {
				for range StartingElevenSize {
					l.StartingXI = append(l.StartingXI, l.StartingXI[0])
				}
			},
			wantKey: "home.starting_xi",
		},
		{
			name: "Duplicate Player",
			modify: func(l *Lineup) {
				l.Substitutes = append(l.Substitutes, l.StartingXI[0])
			},
			wantKey: "home",
		},
		{
			name: "Not In Roster",
			modify: func(l *Lineup) {
				l.Substitutes[0].PlayerID = newValidPlayer(PositionCF).ID
			},
			wantKey: "home",
		},
		{
			name:    "Shirt Number",
			modify:  func(l *Lineup) { l.StartingXI[0].ShirtNumber = 100 },
			wantKey: "home.shirt_number",
		},
		{
			name:    "Position",
			modify:  func(l *Lineup) { l.StartingXI[0].Position = "" },
			wantKey: "home.position",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid()
			tt.modify(&l)

			v := validator.New()
			ValidateLineup(v, "home", &l, roster)
			if tt.wantKey == "" {
				assert.True(t, v.Valid(), "lineup should be valid")
				return
			}
			_, ok := v.Errors[tt.wantKey]
			assert.True(t, ok, "missing error for "+tt.wantKey)
		})
	}
}

func TestLineupEntry(t *testing.T) {
	keeper := newValidPlayer(PositionGK)
	sub := newValidPlayer(PositionCM)
	l := Lineup{
		StartingXI:  []PlayerInMatch{{PlayerID: keeper.ID}},
		Substitutes: []PlayerInMatch{{PlayerID: sub.ID}},
	}

	entry, ok := l.Entry(sub.ID)
	assert.True(t, ok, "substitute found")
	entry.ShirtNumber = 12
	assert.Equal(t, l.Substitutes[0].ShirtNumber, 12)

	_, ok = l.Entry(newValidPlayer(PositionCM).ID)
	assert.Equal(t, ok, false)
}
