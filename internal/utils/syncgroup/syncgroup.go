package syncgroup

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

type (
	// Group is an errgroup.Group with optional throttling of the number of
	// goroutines running at the same time.
	Group struct {
		group *errgroup.Group
		ctx   context.Context
		sem   *semaphore.Weighted
	}

	Option func(g *Group)
)

func New(ctx context.Context, opts ...Option) (*Group, context.Context) {
	group, ctx := errgroup.WithContext(ctx)
	g := &Group{
		group: group,
		ctx:   ctx,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, ctx
}

// WithThrottling limits the number of concurrently running goroutines.
func WithThrottling(maxWorkers int) Option {
	return func(g *Group) {
		g.sem = semaphore.NewWeighted(int64(maxWorkers))
	}
}

func (g *Group) Go(f func() error) {
	g.group.Go(func() error {
		if g.sem != nil {
			if err := g.sem.Acquire(g.ctx, 1); err != nil {
				return err
			}
			defer g.sem.Release(1)
		}

		return f()
	})
}

func (g *Group) Wait() error {
	return g.group.Wait()
}
