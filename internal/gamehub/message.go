package gamehub

import (
	"MatchEngineApi/internal/data"
	"encoding/json"
	"fmt"
	"time"
)

type MessageKind string

const (
	KindMatchFinished    MessageKind = "match_finished"
	KindMatchdayFinished MessageKind = "matchday_finished"
)

// Message is the envelope every feed frame is written in.
type Message struct {
	Kind    MessageKind `json:"kind"`
	SentAt  time.Time   `json:"sent_at"`
	Payload any         `json:"payload"`
}

type matchdayPayload struct {
	Matches []data.MatchSummary `json:"matches"`
}

func NewMatchFinished(summary data.MatchSummary) Message {
	return Message{Kind: KindMatchFinished, SentAt: time.Now().UTC(), Payload: summary}
}

func NewMatchdayFinished(summaries []data.MatchSummary) Message {
	return Message{
		Kind:    KindMatchdayFinished,
		SentAt:  time.Now().UTC(),
		Payload: matchdayPayload{Matches: summaries},
	}
}

func (m Message) encode() ([]byte, error) {
	switch m.Kind {
	case KindMatchFinished, KindMatchdayFinished:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, m.Kind)
	}

	js, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s message: %w", m.Kind, err)
	}
	return js, nil
}
