package jps

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SearchAll runs every query on e concurrently, with at most
// BatchOptions.Workers searches in flight, and returns one Outcome per query
// in query order.
//
// An unreachable goal or a tripped expansion limit is recorded in that
// query's Outcome.Err and does not stop the batch. Any other error, such as
// cancellation of ctx, aborts the remaining searches and is returned. A nil
// Engine yields ErrNilSpace.
func SearchAll(ctx context.Context, e *Engine, queries []Query, opts ...BatchOption) ([]Outcome, error) {
	if e == nil {
		return nil, ErrNilSpace
	}
	cfg := DefaultBatchOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]Outcome, len(queries))
	began := time.Now()

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			res, err := e.ExecuteContext(groupCtx, q.Start, q.Goal)
			switch {
			case err == nil:
			case errors.Is(err, ErrNoPath), errors.Is(err, ErrExpansionLimit):
			default:
				return err
			}
			// Each goroutine owns out[i].
			out[i] = Outcome{Query: q, Result: res, Err: err}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, o := range out {
		if o.Err != nil {
			failed++
		}
	}
	e.opts.Logger.Debug("jps batch done",
		zap.Int("queries", len(queries)),
		zap.Int("failed", failed),
		zap.Int("workers", cfg.Workers),
		zap.Duration("elapsed", time.Since(began)),
	)

	return out, nil
}
