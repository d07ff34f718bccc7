package engine

import (
	"MatchEngineApi/internal/data"
	"MatchEngineApi/internal/jsonlog"
	"context"

	"golang.org/x/sync/errgroup"
)

// Fixture is one match of a matchday with the rosters of both sides.
type Fixture struct {
	Match *data.Match
	Home  []data.Player
	Away  []data.Player
}

type MatchdayOptions struct {
	Config Config
	// Seed makes fixture i draw from NewRand(Seed + i). Nil gives every fixture its own
	// unseeded stream.
	Seed *uint64
	// Workers bounds the simulations running at once; zero or less means no bound.
	Workers int
	Logger  *jsonlog.Logger
}

// SimulateMatchday simulates every fixture concurrently, each on its own Engine. It stops
// scheduling fixtures once ctx is done or a simulation fails and returns the first error.
func SimulateMatchday(ctx context.Context, fixtures []Fixture, opts MatchdayOptions) error {
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, f := range fixtures {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var rng Rand
			if opts.Seed != nil {
				rng = NewRand(*opts.Seed + uint64(i))
			}
			return New(rng, opts.Config, opts.Logger).Simulate(f.Match, f.Home, f.Away)
		})
	}

	return g.Wait()
}
