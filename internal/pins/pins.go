package pins

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
)

const MatchPinLength = 8

var (
	ErrDuplicatePin = errors.New("duplicate pin")
	letterRunes     = []rune("abcdefghijklmnopqrstuvwxyz1234567890")
	PinScopeMatches = "matches"
)

// Pin is the short public code a stored record is fetched by.
type Pin struct {
	Pin   string
	Scope string
}

func (p Pin) MarshalJSON() ([]byte, error) {
	jsonValue := strconv.Quote(p.Pin)
	return []byte(jsonValue), nil
}

func (p *Pin) UnmarshalJSON(js []byte) error {
	s, err := strconv.Unquote(string(js))
	if err != nil {
		return fmt.Errorf("pin must be a JSON string: %w", err)
	}
	p.Pin = s
	return nil
}

func NewMatchPin() Pin {
	return Pin{Pin: GeneratePin(MatchPinLength), Scope: PinScopeMatches}
}

func GeneratePin(l int) string {
	b := make([]rune, l)
	for i := range b {
		b[i] = letterRunes[rand.IntN(len(letterRunes))]
	}
	return string(b)
}

// Valid reports whether s could have been produced by GeneratePin with length l.
func Valid(s string, l int) bool {
	if len(s) != l {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
