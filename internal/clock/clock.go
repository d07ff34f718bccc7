package clock

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid clock config")

type state int

const (
	fresh state = iota
	playing
	done
)

// Config describes the periods of a match in simulated minutes.
type Config struct {
	PeriodLength  int
	PeriodCount   int
	OtLength      int
	OtPeriodCount int
}

// Football is two 45 minute halves with two 15 minute extra time periods.
var Football = Config{
	PeriodLength:  45,
	PeriodCount:   2,
	OtLength:      15,
	OtPeriodCount: 2,
}

func (c Config) validate() error {
	if c.PeriodLength <= 0 || c.PeriodCount <= 0 {
		return fmt.Errorf("%w: periods must be positive", ErrInvalidConfig)
	}
	if c.OtLength < 0 || c.OtPeriodCount < 0 {
		return fmt.Errorf("%w: extra time must not be negative", ErrInvalidConfig)
	}
	return nil
}

// MatchClock steps through the minutes of a match. A fresh clock moves to playing on the first
// Tick and to done once the last minute of regulation, or of extra time when extended, has been
// handed out.
type MatchClock struct {
	minute    int
	state     state
	config    Config
	extraTime bool
}

func NewMatchClock(cfg Config) (*MatchClock, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &MatchClock{
		state:  fresh,
		config: cfg,
	}, nil
}

// ExtendToExtraTime adds the extra time periods. It only succeeds before the clock is done and
// when the config has extra time.
func (mc *MatchClock) ExtendToExtraTime() bool {
	if mc.state == done || mc.extraTime || mc.config.OtLength*mc.config.OtPeriodCount == 0 {
		return false
	}
	mc.extraTime = true
	return true
}

// Tick advances to the next minute and reports whether one was available.
func (mc *MatchClock) Tick() bool {
	switch mc.state {
	case fresh:
		mc.state = playing
		mc.minute = 0
		return true
	case playing:
		if mc.minute+1 >= mc.Length() {
			mc.state = done
			return false
		}
		mc.minute++
		return true
	default:
		return false
	}
}

func (mc *MatchClock) Minute() int {
	return mc.minute
}

func (mc *MatchClock) Done() bool {
	return mc.state == done
}

// RegulationLength is the number of minutes before extra time.
func (mc *MatchClock) RegulationLength() int {
	return mc.config.PeriodLength * mc.config.PeriodCount
}

// Length is the total number of minutes the clock will hand out.
func (mc *MatchClock) Length() int {
	length := mc.RegulationLength()
	if mc.extraTime {
		length += mc.config.OtLength * mc.config.OtPeriodCount
	}
	return length
}

// Period returns the 1-based period of the current minute. Extra time periods follow the
// regulation periods.
func (mc *MatchClock) Period() int {
	regulation := mc.RegulationLength()
	if mc.minute < regulation || mc.config.OtLength == 0 {
		return mc.minute/mc.config.PeriodLength + 1
	}
	return mc.config.PeriodCount + (mc.minute-regulation)/mc.config.OtLength + 1
}

func (mc *MatchClock) IsExtraTime() bool {
	return mc.minute >= mc.RegulationLength()
}

// IsPeriodStart reports whether the current minute opens a period after the first.
func (mc *MatchClock) IsPeriodStart() bool {
	if mc.state != playing || mc.minute == 0 {
		return false
	}
	regulation := mc.RegulationLength()
	if mc.minute < regulation {
		return mc.minute%mc.config.PeriodLength == 0
	}
	return mc.config.OtLength > 0 && (mc.minute-regulation)%mc.config.OtLength == 0
}

// Get returns the current minute in the broadcast style, "46'".
func (mc *MatchClock) Get() string {
	if mc.state == fresh {
		return ""
	}
	return fmt.Sprintf("%d'", mc.minute+1)
}
