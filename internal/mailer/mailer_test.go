package mailer

import (
	"MatchEngineApi/internal/assert"
	"MatchEngineApi/internal/data"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRenderMatchdayReport(t *testing.T) {
	star := uuid.New()
	report := map[string]any{
		"SimulatedAt": time.Date(2024, 5, 19, 15, 0, 0, 0, time.UTC),
		"Matches": []data.MatchSummary{
			{
				HomeTeamID:       uuid.New(),
				AwayTeamID:       uuid.New(),
				Pin:              "ABCD1234",
				Halftime:         data.Score{Home: 1},
				Fulltime:         data.Score{Home: 2, Away: 2},
				ExtraTime:        true,
				EventCount:       131,
				PlayerOfTheMatch: &data.PlayerOfTheMatch{PlayerID: star, Rating: 8.25},
			},
			{HomeTeamID: uuid.New(), AwayTeamID: uuid.New()},
		},
	}

	subject, plain, html, err := render("matchday_report.tmpl", report)
	assert.NilError(t, err)

	assert.Equal(t, subject, "Matchday report: 2 matches simulated")
	assert.StringContains(t, plain, "2024-05-19 15:00 UTC")
	assert.StringContains(t, plain, "2-2 aet")
	assert.StringContains(t, plain, "Pin: ABCD1234")
	assert.StringContains(t, plain, star.String()+" (8.2)")
	assert.StringContains(t, html, "<td>0-0</td>")
}

func TestRenderMissingTemplate(t *testing.T) {
	_, _, _, err := render("nope.tmpl", nil)
	assert.True(t, err != nil, "missing template fails")
}
