package main

import (
	"MatchEngineApi/internal/data"
	"MatchEngineApi/internal/engine"
	"MatchEngineApi/internal/gamehub"
	"MatchEngineApi/internal/pins"
	"MatchEngineApi/internal/validator"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxMatchdayFixtures = 64

type sideInput struct {
	Roster []data.Player `json:"roster"`
	Lineup data.Lineup   `json:"lineup"`
}

type fixtureInput struct {
	HomeTeamID      uuid.UUID            `json:"home_team_id"`
	AwayTeamID      uuid.UUID            `json:"away_team_id"`
	CompetitionType data.CompetitionType `json:"competition_type"`
	Importance      data.MatchImportance `json:"importance"`
	TacticalBalance *float64             `json:"tactical_balance"`
	Home            sideInput            `json:"home"`
	Away            sideInput            `json:"away"`
}

// fixture builds a scheduled match from the input, recording problems under keys starting
// with prefix.
func (in fixtureInput) fixture(v *validator.Validator, prefix string) engine.Fixture {
	match := data.NewMatch(in.HomeTeamID, in.AwayTeamID, in.CompetitionType, in.Importance)
	if in.TacticalBalance != nil {
		match.TacticalBalance = *in.TacticalBalance
	}
	match.Lineups = data.MatchLineups{Home: in.Home.Lineup, Away: in.Away.Lineup}

	mv := validator.New()
	data.ValidateMatch(mv, match)
	data.ValidateRoster(mv, "home.roster", in.Home.Roster)
	data.ValidateRoster(mv, "away.roster", in.Away.Roster)
	data.ValidateLineup(mv, "home.lineup", &match.Lineups.Home, in.Home.Roster)
	data.ValidateLineup(mv, "away.lineup", &match.Lineups.Away, in.Away.Roster)
	for k, msg := range mv.Errors {
		v.AddError(prefix+k, msg)
	}

	return engine.Fixture{Match: match, Home: in.Home.Roster, Away: in.Away.Roster}
}

func (app *application) SimulateMatch(w http.ResponseWriter, r *http.Request) {
	var input struct {
		fixtureInput
		Seed *uint64 `json:"seed"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	f := input.fixture(v, "")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = engine.New(app.engineRand(input.Seed), app.engineConfig(), app.logger).
		Simulate(f.Match, f.Home, f.Away)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !app.storeMatch(w, r, f.Match) {
		return
	}
	app.publish(gamehub.NewMatchFinished(f.Match.Summary()))

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/matches/%s", f.Match.Pin.Pin))

	err = app.writeJSON(w, http.StatusCreated, envelope{"match": f.Match}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) SimulateMatchday(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Fixtures []fixtureInput `json:"fixtures"`
		Seed     *uint64        `json:"seed"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(len(input.Fixtures) > 0, "fixtures", "must contain at least one fixture")
	v.Check(len(input.Fixtures) <= maxMatchdayFixtures, "fixtures",
		fmt.Sprintf("must not contain more than %d fixtures", maxMatchdayFixtures))

	fixtures := make([]engine.Fixture, 0, len(input.Fixtures))
	for i, in := range input.Fixtures {
		fixtures = append(fixtures, in.fixture(v, fmt.Sprintf("fixtures[%d].", i)))
	}
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = engine.SimulateMatchday(r.Context(), fixtures, engine.MatchdayOptions{
		Config:  app.engineConfig(),
		Seed:    app.matchdaySeed(input.Seed),
		Workers: app.config.engine.workers,
		Logger:  app.logger,
	})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	summaries := make([]data.MatchSummary, 0, len(fixtures))
	for _, f := range fixtures {
		if !app.storeMatch(w, r, f.Match) {
			return
		}
		summaries = append(summaries, f.Match.Summary())
	}
	app.publish(gamehub.NewMatchdayFinished(summaries))

	if recipient := app.config.smtp.recipient; recipient != "" {
		app.backgroundTask(func() {
			report := map[string]any{
				"SimulatedAt": time.Now().UTC(),
				"Matches":     summaries,
			}
			err := app.mailer.Send(recipient, "matchday_report.tmpl", report)
			if err != nil {
				app.logger.PrintError(err, map[string]string{"recipient": recipient})
			}
		})
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"matches": summaries}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetMatch(w http.ResponseWriter, r *http.Request) {
	pin := chi.URLParam(r, "pin")
	if !pins.Valid(pin, pins.MatchPinLength) {
		app.notFoundResponse(w, r)
		return
	}

	match, err := app.models.Matches.Get(pin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"match": match}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// storeMatch inserts a finished match and writes the error response when it fails.
func (app *application) storeMatch(w http.ResponseWriter, r *http.Request, match *data.Match) bool {
	err := app.models.Matches.Insert(match)
	if err != nil {
		switch {
		case errors.Is(err, pins.ErrDuplicatePin):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return false
	}
	return true
}

func (app *application) publish(msg gamehub.Message) {
	if err := app.hub.Publish(msg); err != nil {
		app.logger.PrintError(err, map[string]string{"kind": string(msg.Kind)})
	}
}
