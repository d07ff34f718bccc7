package gamehub

import (
	"MatchEngineApi/internal/assert"
	"MatchEngineApi/internal/data"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func TestHubPublish(t *testing.T) {
	hub, _ := startHub(t)
	first, second := NewWatcher(hub, nil), NewWatcher(hub, nil)
	assert.NilError(t, hub.Join(first))
	assert.NilError(t, hub.Join(second))
	assert.Equal(t, hub.WatcherCount(), 2)

	summary := data.MatchSummary{MatchID: uuid.New(), Fulltime: data.Score{Home: 2, Away: 1}}
	assert.NilError(t, hub.Publish(NewMatchFinished(summary)))

	for _, w := range []*Watcher{first, second} {
		msg := <-w.Receive
		var got struct {
			Kind    MessageKind       `json:"kind"`
			Payload data.MatchSummary `json:"payload"`
		}
		assert.NilError(t, json.Unmarshal(msg, &got))
		assert.Equal(t, got.Kind, KindMatchFinished)
		assert.Equal(t, got.Payload.MatchID, summary.MatchID)
		assert.Equal(t, got.Payload.Fulltime, summary.Fulltime)
	}
}

func TestHubLeave(t *testing.T) {
	hub, _ := startHub(t)
	w := NewWatcher(hub, nil)
	assert.NilError(t, hub.Join(w))

	hub.Leave(w)
	_, ok := <-w.Receive
	assert.Equal(t, ok, false)
	assert.Equal(t, hub.WatcherCount(), 0)

	hub.Leave(w)
	assert.Equal(t, hub.WatcherCount(), 0)
}

func TestHubDropsSlowWatcher(t *testing.T) {
	hub, _ := startHub(t)
	slow := NewWatcher(hub, nil)
	assert.NilError(t, hub.Join(slow))

	msg := NewMatchdayFinished([]data.MatchSummary{{MatchID: uuid.New()}})
	for range sendBufferSize + 1 {
		assert.NilError(t, hub.Publish(msg))
	}
	assert.Equal(t, hub.WatcherCount(), 0)

	received := 0
	for range slow.Receive {
		received++
	}
	assert.Equal(t, received, sendBufferSize)
}

func TestHubClosed(t *testing.T) {
	hub, cancel := startHub(t)
	w := NewWatcher(hub, nil)
	assert.NilError(t, hub.Join(w))

	cancel()
	_, ok := <-w.Receive
	assert.Equal(t, ok, false)

	assert.ErrorIs(t, hub.Publish(NewMatchFinished(data.MatchSummary{})), ErrHubClosed)
	assert.ErrorIs(t, hub.Join(NewWatcher(hub, nil)), ErrHubClosed)
	assert.Equal(t, hub.WatcherCount(), 0)
}

func TestPublishUnknownKind(t *testing.T) {
	hub, _ := startHub(t)
	err := hub.Publish(Message{Kind: "goal_alert"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}
