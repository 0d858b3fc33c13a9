package chain

import (
	"context"

	"github.com/ib-77/pipe3/pkg/pipe"
	"github.com/ib-77/pipe3/pkg/pipe/drive"
)

// Chain wraps a pipe.Pipe with context to enable fluent composition
type Chain[A, B any] struct {
	ctx context.Context
	p   pipe.Pipe[A, B]
}

// Start creates a new chain from an existing pipe
func Start[A, B any](ctx context.Context, p pipe.Pipe[A, B]) *Chain[A, B] {
	return &Chain[A, B]{
		ctx: ctx,
		p:   p,
	}
}

// FromFunc creates a new chain from a plain mapping function
func FromFunc[A, B any](ctx context.Context, f func(A) B) *Chain[A, B] {
	return Start(ctx, pipe.Map(f))
}

// Pipe returns the underlying composed pipe
func (c *Chain[A, B]) Pipe() pipe.Pipe[A, B] {
	return c.p
}

// Then composes the chain's pipe with next, feeding this chain's output
// into next's input
func Then[A, B, C any](c *Chain[A, B], next pipe.Pipe[B, C]) *Chain[A, C] {
	return &Chain[A, C]{
		ctx: c.ctx,
		p:   pipe.Compose(next, c.p),
	}
}

// ThenFunc composes the chain's pipe with a mapping stage
func ThenFunc[A, B, C any](c *Chain[A, B], f func(B) C) *Chain[A, C] {
	return Then(c, pipe.Map(f))
}

// MapOut lifts g over the chain's output side without adding a stage
func MapOut[A, B, C any](c *Chain[A, B], g func(B) C) *Chain[A, C] {
	return &Chain[A, C]{
		ctx: c.ctx,
		p:   pipe.MapOutput(c.p, g),
	}
}

// Keep appends a filtering stage to the chain
func (c *Chain[A, B]) Keep(keep func(B) bool) *Chain[A, B] {
	return Then(c, pipe.Filter(keep))
}

// Collect collapses the chain over inputs via the synchronous driver
func (c *Chain[A, B]) Collect(inputs []A) ([]B, error) {
	return drive.Collect(c.ctx, c.p, inputs)
}

// Stream collapses the chain over an input channel via the channel driver
func (c *Chain[A, B]) Stream(inputCh <-chan A) <-chan B {
	return drive.Run(c.ctx, inputCh, c.p)
}
