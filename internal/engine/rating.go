package engine

import (
	"MatchEngineApi/internal/data"
	"math"

	"github.com/google/uuid"
)

const (
	MinRating = 4.5
	MaxRating = 9.9

	lowInvolvementCap       = 6.8 // ceiling for players below the involvement threshold
	lowInvolvementThreshold = 0.3
	meaningfulImpact        = 0.3 // |base impact| an event needs to count towards involvement
	fullInvolvementEvents   = 10
	repeatDecay             = 0.7 // weight of a repeated event type is repeatDecay / repeat index
	minConsistency          = 0.5
	negativeImpactWeight    = 1.2
	impactEpsilon           = 0.001
)

// CalculatePlayerRatings rates every player who is the primary player of at least one event.
func CalculatePlayerRatings(events []data.MatchEvent) map[uuid.UUID]float64 {
	byPlayer := make(map[uuid.UUID][]data.MatchEvent)
	for _, e := range events {
		byPlayer[e.PlayerID] = append(byPlayer[e.PlayerID], e)
	}

	ratings := make(map[uuid.UUID]float64, len(byPlayer))
	for id, playerEvents := range byPlayer {
		ratings[id] = PlayerRating(playerEvents)
	}
	return ratings
}

// PlayerRating folds one player's events into a rating in [MinRating, MaxRating].
func PlayerRating(events []data.MatchEvent) float64 {
	if len(events) == 0 {
		return data.NeutralRating
	}

	var positive, negative float64
	for _, e := range events {
		total := e.TotalImpactScore()
		if total >= 0 {
			positive += total
		} else {
			negative += -total
		}
	}

	rating := data.NeutralRating +
		positive*ConsistencyFactor(events) -
		negative*negativeImpactWeight

	if InvolvementScore(events) < lowInvolvementThreshold {
		rating = math.Min(rating, lowInvolvementCap)
	}

	return math.Max(MinRating, math.Min(MaxRating, rating))
}

// InvolvementScore is the share of ten meaningful events a player reached, capped at 1.
func InvolvementScore(events []data.MatchEvent) float64 {
	var meaningful int
	for _, e := range events {
		if math.Abs(e.Base) > meaningfulImpact {
			meaningful++
		}
	}
	return math.Min(1.0, float64(meaningful)/fullInvolvementEvents)
}

// ConsistencyFactor discounts repeats of the same event type. The first event of each type
// counts fully and the n-th repeat is weighted repeatDecay/n. The result is the weighted share of
// total impact, floored at minConsistency.
func ConsistencyFactor(events []data.MatchEvent) float64 {
	repeats := make(map[data.EventType]int)
	var weighted, total float64

	for _, e := range events {
		n := repeats[e.Type]
		repeats[e.Type] = n + 1

		weight := 1.0
		if n > 0 {
			weight = repeatDecay / float64(n)
		}

		impact := e.TotalImpactScore()
		weighted += impact * weight
		total += impact
	}

	if math.Abs(total) <= impactEpsilon {
		return 1.0
	}
	return math.Max(weighted/total, minConsistency)
}
