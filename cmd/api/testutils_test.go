package main

import (
	"MatchEngineApi/internal/data"
	"MatchEngineApi/internal/gamehub"
	"MatchEngineApi/internal/jsonlog"
	"MatchEngineApi/internal/pins"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
)

type memoryMatches struct {
	mu      sync.Mutex
	matches map[string]*data.Match
}

func (m *memoryMatches) Insert(match *data.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	match.Pin = pins.NewMatchPin()
	if _, exists := m.matches[match.Pin.Pin]; exists {
		return pins.ErrDuplicatePin
	}
	m.matches[match.Pin.Pin] = match
	return nil
}

func (m *memoryMatches) Get(pin string) (*data.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	match, ok := m.matches[pin]
	if !ok {
		return nil, data.ErrRecordNotFound
	}
	return match, nil
}

func newTestApplication(t *testing.T) (*application, *memoryMatches) {
	t.Helper()

	store := &memoryMatches{matches: make(map[string]*data.Match)}
	app := &application{
		logger: jsonlog.Discard(),
		models: data.Models{Matches: store},
		hub:    gamehub.NewHub(nil),
	}
	app.config.env = "testing"
	app.config.version = "test"
	app.config.engine.workers = 2

	ctx, cancel := context.WithCancel(context.Background())
	go app.hub.Run(ctx)
	t.Cleanup(cancel)

	return app, store
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return &testServer{ts}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, http.Header, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		js, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(js)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rs, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer rs.Body.Close()

	respBody, err := io.ReadAll(rs.Body)
	if err != nil {
		t.Fatal(err)
	}
	return rs.StatusCode, rs.Header, bytes.TrimSpace(respBody)
}

var testFormation = []data.Position{
	data.PositionGK, data.PositionRB, data.PositionCB, data.PositionCB, data.PositionLB,
	data.PositionDM, data.PositionCM, data.PositionAM, data.PositionRW, data.PositionLW,
	data.PositionCF,
}

func newTestSide(attr int) sideInput {
	side := sideInput{Lineup: data.Lineup{Formation: "4-3-3"}}
	for i, pos := range testFormation {
		p := data.Player{
			ID:              uuid.New(),
			Name:            "Player " + string(pos),
			PrimaryPosition: pos,
			Technical:       data.TechnicalAttributes{Dribbling: attr, Passing: attr, Shooting: attr, FirstTouch: attr, Tackling: attr, Crossing: attr},
			Physical:        data.PhysicalAttributes{Pace: attr, Stamina: attr, Strength: attr, Agility: attr, Jumping: attr},
			Mental:          data.MentalAttributes{Composure: attr, Vision: attr, WorkRate: attr, Determination: attr, Positioning: attr, Teamwork: attr},
			Hidden:          data.HiddenAttributes{InjuryProneness: attr, Consistency: attr, BigMatchTemperament: attr, Professionalism: attr, PotentialCeiling: attr, Versatility: attr, Ambition: attr, Loyalty: attr, Ego: attr},
			Form:            60,
			Morale:          55,
		}
		side.Roster = append(side.Roster, p)
		side.Lineup.StartingXI = append(side.Lineup.StartingXI, data.PlayerInMatch{
			PlayerID:    p.ID,
			Position:    pos,
			ShirtNumber: i + 1,
		})
	}
	return side
}

func newTestFixtureInput(competition data.CompetitionType) fixtureInput {
	return fixtureInput{
		HomeTeamID:      uuid.New(),
		AwayTeamID:      uuid.New(),
		CompetitionType: competition,
		Importance:      data.ImportanceLeague,
		Home:            newTestSide(70),
		Away:            newTestSide(62),
	}
}
