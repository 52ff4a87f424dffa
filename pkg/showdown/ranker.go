package showdown

import (
	"context"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Options configures a Ranker
type Options struct {
	// Workers is the maximum number of hands searched at once
	Workers int
	// ParallelThreshold is the number of players from which the search fans out
	ParallelThreshold int
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Workers:           runtime.NumCPU(),
		ParallelThreshold: 8,
	}
}

// Ranker ranks the hands of a game, searching each player's best hand concurrently for large games
type Ranker struct {
	logger logrus.FieldLogger
	opts   Options
}

// NewRanker returns a new Ranker
func NewRanker(logger logrus.FieldLogger, opts Options) *Ranker {
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	return &Ranker{
		logger: logger,
		opts:   opts,
	}
}

// RankHands is like the package level RankHands but stops early if ctx is cancelled
func (r *Ranker) RankHands(ctx context.Context, game Game) ([]RankedHand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	n := game.Players()
	log := r.logger.WithFields(logrus.Fields{
		"game":    game.Type(),
		"players": n,
	})

	if n < r.opts.ParallelThreshold || r.opts.Workers == 1 {
		ranked := RankHands(game)
		log.WithField("elapsed", time.Since(start)).Debug("ranked hands")
		return ranked, nil
	}

	// every worker writes to its own index, so the input order is kept
	ranked := make([]RankedHand, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			ranked[i] = rankPlayer(game, i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("ranking cancelled")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"elapsed": time.Since(start),
		"workers": r.opts.Workers,
	}).Debug("ranked hands in parallel")

	return ranked, nil
}

// Showdown ranks, groups and sorts the hands of the game, weakest group first
func (r *Ranker) Showdown(ctx context.Context, game Game) ([]Group, error) {
	ranked, err := r.RankHands(ctx, game)
	if err != nil {
		return nil, err
	}

	return SortHands(GroupHands(ranked)), nil
}
