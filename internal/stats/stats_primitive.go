package stats

import (
	"errors"
	"sync"
)

var (
	ErrStatNotTracked = errors.New("stat not tracked by statline")
	ErrUnknownPlayer  = errors.New("player not in statline")
)

// PrimitiveStat is a string type to define keys of map in PrimitiveStatline
type PrimitiveStat string

const (
	Goal          PrimitiveStat = "Gls"
	Assist        PrimitiveStat = "Ast"
	ShotOnTarget  PrimitiveStat = "SoT"
	ShotOffTarget PrimitiveStat = "SoffT"
	KeyPass       PrimitiveStat = "KP"
	PassCompleted PrimitiveStat = "Cmp"
	Dribble       PrimitiveStat = "Drb"
	TackleWon     PrimitiveStat = "TklW"
	Interception  PrimitiveStat = "Int"
	Clearance     PrimitiveStat = "Clr"
	Block         PrimitiveStat = "Blk"
	AerialWon     PrimitiveStat = "AerW"
	Save          PrimitiveStat = "Sv"
	YellowCard    PrimitiveStat = "CrdY"
	RedCard       PrimitiveStat = "CrdR"
)

// PrimitiveStatline holds a map with keys of type PrimitiveStat and value of type int. Int value
// holds current value of stat.
type PrimitiveStatline struct {
	stats map[PrimitiveStat]int
	mu    sync.Mutex
}

func (psl *PrimitiveStatline) get(stat PrimitiveStat) int {
	psl.mu.Lock()
	defer psl.mu.Unlock()
	return psl.stats[stat]
}

// set adds add to stat and returns the new value. A change that would take the value below zero
// is ignored.
func (psl *PrimitiveStatline) set(stat PrimitiveStat, add int) (int, error) {
	psl.mu.Lock()
	defer psl.mu.Unlock()

	current, ok := psl.stats[stat]
	if !ok {
		return 0, ErrStatNotTracked
	}
	if current+add < 0 {
		return current, nil
	}
	psl.stats[stat] = current + add
	return psl.stats[stat], nil
}

// newPrimitiveStatline returns a PrimitiveStatline tracking primStats, all starting at 0.
func newPrimitiveStatline(primStats []PrimitiveStat) *PrimitiveStatline {
	statline := PrimitiveStatline{
		stats: make(map[PrimitiveStat]int),
	}
	for _, s := range primStats {
		statline.stats[s] = 0
	}
	return &statline
}
