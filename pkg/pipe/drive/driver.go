package drive

import (
	"context"
	"errors"

	"github.com/ib-77/pipe3/pkg/pipe"
)

var (
	// ErrStalled indicates the pipe replied Blocked to the operation its own
	// mode called for, so the driver cannot make progress.
	ErrStalled = errors.New("drive: pipe blocked the operation its mode called for")
	// ErrStepLimit indicates the context-carried step limit was exhausted
	// before the pipe closed.
	ErrStepLimit = errors.New("drive: step limit exhausted")
)

// Collect drives p over inputs synchronously and returns the outputs in
// emission order. It consumes while the pipe awaits input, produces
// otherwise, finalizes once inputs run out and drains until the pipe closes
// or reports nothing left to do. Cancellation of ctx and the step limit from
// WithStepOptions cut the run short with the outputs gathered so far.
func Collect[A, B any](ctx context.Context, p pipe.Pipe[A, B], inputs []A) ([]B, error) {
	limit := MaxSteps(ctx, 0)
	out := make([]B, 0, len(inputs))
	next := 0
	finalized := false

	for steps := 0; ; steps++ {
		if limit > 0 && steps >= limit {
			return out, ErrStepLimit
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}

		var st pipe.Step[pipe.Pipe[A, B], B]
		if p.AwaitingInput() {
			if next < len(inputs) {
				st = p.Consume(inputs[next])
				next++
			} else if !finalized {
				p = p.Finalize()
				finalized = true
				continue
			} else {
				// finalized and still awaiting: nothing left to drain
				return out, nil
			}
		} else {
			st = p.Produce()
		}

		switch st.Kind() {
		case pipe.KindYield:
			out = append(out, st.Value())
			p = st.State()
		case pipe.KindContinue:
			p = st.State()
		case pipe.KindClosed:
			return out, nil
		default:
			return out, ErrStalled
		}
	}
}
