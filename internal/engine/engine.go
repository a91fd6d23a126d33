package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sirkon/castvalue/internal/cir"
)

// Engine explores functions path by path and reports findings.
type Engine struct {
	opts     Options
	reporter *Reporter
}

// New creates an engine reporting into the given reporter.
func New(reporter *Reporter, opts Options) *Engine {
	return &Engine{
		opts:     opts.withDefaults(),
		reporter: reporter,
	}
}

// Result sums up exploration of a single function.
type Result struct {
	Function string

	// Paths is the number of paths explored till the end.
	Paths int

	// Truncated means the path budget was exhausted.
	Truncated bool
}

// Explore explores every path of the function. Functions are explored on
// the calling goroutine.
func (e *Engine) Explore(ctx context.Context, fn *cir.Function) (Result, error) {
	return newExplorer(e, fn).run(ctx)
}

// ExploreAll explores functions concurrently, up to [Options.Workers] at once.
// Results follow the order of functions.
func (e *Engine) ExploreAll(ctx context.Context, fns []*cir.Function) ([]Result, error) {
	res := make([]Result, len(fns))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for i, fn := range fns {
		g.Go(func() error {
			r, err := e.Explore(ctx, fn)
			if err != nil {
				return fmt.Errorf("explore %s: %w", fn.Name, err)
			}

			res[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}
