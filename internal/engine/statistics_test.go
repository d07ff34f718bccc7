package engine

import (
	"MatchEngineApi/internal/assert"
	"MatchEngineApi/internal/data"
	"MatchEngineApi/internal/stats"
	"testing"

	"github.com/google/uuid"
)

func TestAccumulateStatistics(t *testing.T) {
	keeper, striker, sub, outsider := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	homeLineup := data.Lineup{
		Formation:   "4-4-2",
		StartingXI:  []data.PlayerInMatch{{PlayerID: striker, Position: data.PositionCF, ShirtNumber: 9}},
		Substitutes: []data.PlayerInMatch{{PlayerID: sub, Position: data.PositionCM, ShirtNumber: 14}},
	}
	awayLineup := data.Lineup{
		Formation:  "4-3-3",
		StartingXI: []data.PlayerInMatch{{PlayerID: keeper, Position: data.PositionGK, ShirtNumber: 1}},
	}

	failedGoal := newTestEvent(striker, data.EventGoal, flatImpact(8))
	failedGoal.Success = false
	events := []data.MatchEvent{
		newTestEvent(striker, data.EventGoal, flatImpact(8)),
		failedGoal,
		newTestEvent(striker, data.EventShotOnTarget, flatImpact(1.5)),
		newTestEvent(striker, data.EventOffBallRun, flatImpact(0)),
		newTestEvent(keeper, data.EventSave, flatImpact(2.5)),
		newTestEvent(keeper, data.EventSave, flatImpact(2.5)),
		newTestEvent(keeper, data.EventClaimCross, flatImpact(0.5)),
		newTestEvent(sub, data.EventYellowCard, flatImpact(-1)),
		newTestEvent(outsider, data.EventGoal, flatImpact(8)),
	}

	dto := AccumulateStatistics(events, &homeLineup, &awayLineup)

	strikerStats := homeLineup.StartingXI[0].Stats
	assert.Equal(t, strikerStats.Goals, 1)
	assert.Equal(t, strikerStats.ShotsOnTarget, 1)
	assert.Equal(t, strikerStats.MinutesPlayed, 90)
	assert.Equal(t, strikerStats.Saves == nil, true)

	keeperStats := awayLineup.StartingXI[0].Stats
	assert.Equal(t, *keeperStats.Saves, 2)
	assert.Equal(t, keeperStats.Clearances, 0)

	subStats := homeLineup.Substitutes[0].Stats
	assert.Equal(t, subStats.YellowCards, 1)
	assert.Equal(t, subStats.MinutesPlayed, 0)

	assert.Equal(t, dto.GameStats["Score"], any("1-0"))

	t.Run("Idempotent", func(t *testing.T) {
		first := homeLineup.StartingXI[0].Stats
		firstSaves := *awayLineup.StartingXI[0].Stats.Saves

		AccumulateStatistics(events, &homeLineup, &awayLineup)

		assert.Equal(t, homeLineup.StartingXI[0].Stats.Goals, first.Goals)
		assert.Equal(t, homeLineup.StartingXI[0].Stats.ShotsOnTarget, first.ShotsOnTarget)
		assert.Equal(t, *awayLineup.StartingXI[0].Stats.Saves, firstSaves)
	})

	t.Run("Empty Log Resets", func(t *testing.T) {
		AccumulateStatistics(nil, &homeLineup, &awayLineup)
		assert.Equal(t, homeLineup.StartingXI[0].Stats.Goals, 0)
		assert.Equal(t, awayLineup.StartingXI[0].Stats.Saves == nil, true)
		assert.Equal(t, homeLineup.StartingXI[0].Stats.MinutesPlayed, 90)
	})
}

func TestStatFor(t *testing.T) {
	tests := []struct {
		name    string
		et      data.EventType
		success bool
		wantOk  bool
	}{
		{name: "Scored Goal", et: data.EventGoal, success: true, wantOk: true},
		{name: "Missed Goal", et: data.EventGoal, success: false, wantOk: false},
		{name: "Failed Tackle Still Counted", et: data.EventTackleWon, success: false, wantOk: true},
		{name: "Unmapped", et: data.EventPressSuccess, success: true, wantOk: false},
		{name: "Red Card", et: data.EventRedCard, success: true, wantOk: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := statFor(data.MatchEvent{Type: tt.et, Success: tt.success})
			assert.Equal(t, ok, tt.wantOk)
		})
	}
}

func TestRecordEvents(t *testing.T) {
	player := uuid.New()
	events := []data.MatchEvent{newTestEvent(player, data.EventTackleWon, flatImpact(1))}

	t.Run("Unknown Player Skipped", func(t *testing.T) {
		statline := stats.NewGameStatline(nil, nil, stats.FootballBlueprint)
		recordEvents(statline, events)
		assert.Equal(t, statline.Get(player.String(), stats.TackleWon), 0)
	})

	t.Run("Untracked Stat Panics", func(t *testing.T) {
		statline := stats.NewGameStatline([]string{player.String()}, nil, stats.GameStatlineBlueprint{})

		defer func() {
			r := recover()
			assert.True(t, r != nil, "untracked stat must panic")
			err, ok := r.(error)
			assert.True(t, ok, "panic value is an error")
			assert.ErrorIs(t, err, stats.ErrStatNotTracked)
		}()
		recordEvents(statline, events)
	})
}
