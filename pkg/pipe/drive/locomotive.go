package drive

import (
	"context"
	"sync"

	"github.com/ib-77/pipe3/pkg/pipe"
)

type CancellationHandlers[A, B any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan A, outCh chan<- B)
	OnCancelUnprocessed func(ctx context.Context, unprocessed A, outCh chan<- B)
}

// Locomotive drives p between inputCh and outCh until the input channel
// closes and the pipe drains, the pipe closes on its own, or ctx is
// cancelled. onYield runs after every delivered output. A pipe is a
// sequential state machine, so exactly one locomotive may drive it.
func Locomotive[A, B any](ctx context.Context, inputCh <-chan A, outCh chan<- B,
	p pipe.Pipe[A, B], handlers CancellationHandlers[A, B],
	onYield func(ctx context.Context, out B), wg *sync.WaitGroup) {
	defer wg.Done()

	finalized := false
	for {
		if ctx.Err() != nil {
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		}

		var st pipe.Step[pipe.Pipe[A, B], B]

		if p.AwaitingInput() {
			if finalized {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case in, ok := <-inputCh:
				if !ok {
					p = p.Finalize()
					finalized = true
					continue
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelUnprocessed != nil {
						handlers.OnCancelUnprocessed(ctx, in, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				default:
				}

				st = p.Consume(in)
			}
		} else {
			st = p.Produce()
		}

		switch st.Kind() {
		case pipe.KindYield:
			select {
			case <-ctx.Done():
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case outCh <- st.Value():
				if onYield != nil {
					onYield(ctx, st.Value())
				}
			}
			p = st.State()
		case pipe.KindContinue:
			p = st.State()
		default:
			// Closed, or a Blocked reply the mode check should prevent
			return
		}
	}
}

// Run drives p between inputCh and a fresh output channel, closed once the
// locomotive finishes.
func Run[A, B any](ctx context.Context, inputCh <-chan A, p pipe.Pipe[A, B]) <-chan B {
	return RunWith(ctx, inputCh, p, CancellationHandlers[A, B]{}, nil)
}

// RunWith is Run with cancellation handlers and a yield observer.
func RunWith[A, B any](ctx context.Context, inputCh <-chan A, p pipe.Pipe[A, B],
	handlers CancellationHandlers[A, B],
	onYield func(ctx context.Context, out B)) <-chan B {

	out := make(chan B)
	wg := &sync.WaitGroup{}

	wg.Add(1)
	go Locomotive(ctx, inputCh, out, p, handlers, onYield, wg)

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// DrainRemaining builds an OnCancel handler that reads the unprocessed rest
// of the input channel, reporting every dropped value to onDropped. Honors
// the context-carried drain option.
func DrainRemaining[A, B any](onDropped func(ctx context.Context, in A)) func(ctx context.Context, inputCh <-chan A, outCh chan<- B) {
	return func(ctx context.Context, inputCh <-chan A, outCh chan<- B) {
		if !IsDrainRemainingEnabled(ctx, true) {
			return
		}

		for in := range inputCh {
			if onDropped != nil {
				onDropped(ctx, in)
			}
		}
	}
}
