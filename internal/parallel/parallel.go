// Package parallel provides helpers for running a fixed set of remote
// fetches concurrently.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pair runs two functions concurrently and returns both results. The
// first error cancels the other function's context and is returned.
func Pair[A, B any](
	ctx context.Context,
	fa func(ctx context.Context) (A, error),
	fb func(ctx context.Context) (B, error),
) (A, B, error) {
	var (
		a A
		b B
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		a, err = fa(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = fb(gctx)
		return err
	})

	err := g.Wait()
	return a, b, err
}
