package data

import (
	"database/sql"
	"errors"
)

var ErrRecordNotFound = errors.New("record not found")

// MatchStore persists finished matches and looks them up by pin.
type MatchStore interface {
	Insert(match *Match) error
	Get(pin string) (*Match, error)
}

type Models struct {
	Matches MatchStore
}

func NewModels(initDb *sql.DB) Models {
	return Models{
		Matches: &MatchModel{db: initDb},
	}
}
