package trace

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/pipe3/pkg/pipe"
)

// Traced wraps p so every consume, produce, and finalize transition is
// logged at debug level under the given name. The wrapped pipe behaves
// identically to p.
func Traced[A, B any](log zerolog.Logger, name string, p pipe.Pipe[A, B]) pipe.Pipe[A, B] {
	return pipe.New(p,
		func(cur pipe.Pipe[A, B], input A) pipe.Step[pipe.Pipe[A, B], B] {
			st := cur.Consume(input)
			logStep(log, name, "consume", st)
			return st
		},
		func(cur pipe.Pipe[A, B]) pipe.Step[pipe.Pipe[A, B], B] {
			st := cur.Produce()
			logStep(log, name, "produce", st)
			return st
		},
		func(cur pipe.Pipe[A, B]) bool {
			return cur.AwaitingInput()
		},
		func(cur pipe.Pipe[A, B]) pipe.Pipe[A, B] {
			log.Debug().Str("pipe", name).Str("op", "finalize").Msg("pipe finalized")
			return cur.Finalize()
		},
	)
}

func logStep[S, B any](log zerolog.Logger, name, op string, st pipe.Step[S, B]) {
	log.Debug().
		Str("pipe", name).
		Str("op", op).
		Stringer("step", st.Kind()).
		Str("step_id", st.Id().String()).
		Msg("pipe step")
}

// Yields builds an onYield observer for drive.Locomotive that logs every
// delivered output.
func Yields[B any](log zerolog.Logger, name string) func(ctx context.Context, out B) {
	return func(ctx context.Context, out B) {
		log.Debug().Str("pipe", name).Interface("value", out).Msg("pipe yield")
	}
}
