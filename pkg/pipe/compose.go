package pipe

type composeKind uint8

// Cross product of the two sides' modes, plus the two post-closure states.
const (
	consumeBoth composeKind = iota
	produceLeft
	produceRight
	produceBoth
	produceLeftOnly
	produceNone
)

// composed is the state of a serial composition: the downstream pipe left
// (B -> C) fed by the upstream pipe right (A -> B). The Pipe values act as
// the opaque handles to each side's state.
type composed[A, B, C any] struct {
	kind  composeKind
	left  Pipe[B, C]
	right Pipe[A, B]
}

// classify recomputes the composite mode from both sides' own modes.
func classify[A, B, C any](left Pipe[B, C], right Pipe[A, B]) composed[A, B, C] {
	awaitL := left.AwaitingInput()
	awaitR := right.AwaitingInput()

	var kind composeKind
	switch {
	case awaitL && awaitR:
		kind = consumeBoth
	case awaitL && !awaitR:
		kind = produceRight
	case !awaitL && awaitR:
		kind = produceLeft
	default:
		kind = produceBoth
	}
	return composed[A, B, C]{kind: kind, left: left, right: right}
}

// Compose wires right's output into left's input, forming a single pipe from
// A to C. The composite awaits input only while both sides do; in every
// other mode the driver must call Produce. At most one value is in flight
// across the boundary: right's output is forwarded into left before the
// composite step returns.
func Compose[A, B, C any](left Pipe[B, C], right Pipe[A, B]) Pipe[A, C] {
	return New(classify(left, right),
		composeConsume[A, B, C],
		composeProduce[A, B, C],
		func(s composed[A, B, C]) bool {
			return s.kind == consumeBoth
		},
		composeFinalize[A, B, C],
	)
}

func composeConsume[A, B, C any](s composed[A, B, C], input A) Step[composed[A, B, C], C] {
	if s.kind != consumeBoth {
		// driver misuse, retry with Produce
		return Blocked[composed[A, B, C], C]()
	}

	rs := s.right.Consume(input)
	switch rs.Kind() {
	case KindYield:
		return forward(s.left, rs.Value(), rs.State())
	case KindContinue:
		return Continue[composed[A, B, C], C](classify[A, B, C](s.left, rs.State()))
	case KindClosed:
		return retireRight[A, B, C](s.left)
	default:
		panic(ErrConsumeContract)
	}
}

func composeProduce[A, B, C any](s composed[A, B, C]) Step[composed[A, B, C], C] {
	switch s.kind {
	case consumeBoth:
		// driver misuse, retry with Consume
		return Blocked[composed[A, B, C], C]()

	case produceRight:
		rs := s.right.Produce()
		switch rs.Kind() {
		case KindYield:
			return forward(s.left, rs.Value(), rs.State())
		case KindContinue:
			return Continue[composed[A, B, C], C](classify[A, B, C](s.left, rs.State()))
		case KindClosed:
			return retireRight[A, B, C](s.left)
		default:
			panic(ErrProduceContract)
		}

	case produceLeft, produceBoth:
		ls := s.left.Produce()
		switch ls.Kind() {
		case KindYield:
			return Yield(ls.Value(), classify[A, B, C](ls.State(), s.right))
		case KindContinue:
			return Continue[composed[A, B, C], C](classify[A, B, C](ls.State(), s.right))
		case KindClosed:
			// downstream closure wins, whatever right still holds
			return Closed[composed[A, B, C], C]()
		default:
			panic(ErrProduceContract)
		}

	case produceLeftOnly:
		ls := s.left.Produce()
		switch ls.Kind() {
		case KindYield:
			return Yield(ls.Value(), leftOnly[A, B, C](ls.State()))
		case KindContinue:
			return Continue[composed[A, B, C], C](leftOnly[A, B, C](ls.State()))
		case KindClosed:
			return Closed[composed[A, B, C], C]()
		default:
			panic(ErrProduceContract)
		}

	default: // produceNone
		return Closed[composed[A, B, C], C]()
	}
}

// forward hands one value produced by right into left and maps left's step
// onto the composite step.
func forward[A, B, C any](left Pipe[B, C], value B, right Pipe[A, B]) Step[composed[A, B, C], C] {
	ls := left.Consume(value)
	switch ls.Kind() {
	case KindYield:
		return Yield(ls.Value(), classify[A, B, C](ls.State(), right))
	case KindContinue:
		return Continue[composed[A, B, C], C](classify[A, B, C](ls.State(), right))
	case KindClosed:
		return Closed[composed[A, B, C], C]()
	default:
		panic(ErrConsumeContract)
	}
}

// retireRight handles right's permanent closure: left is finalized and, if
// it still holds output, drained through produceLeftOnly before the
// composite itself closes.
func retireRight[A, B, C any](left Pipe[B, C]) Step[composed[A, B, C], C] {
	final := left.Finalize()
	if final.AwaitingInput() {
		return Closed[composed[A, B, C], C]()
	}
	return Continue[composed[A, B, C], C](composed[A, B, C]{kind: produceLeftOnly, left: final})
}

func leftOnly[A, B, C any](left Pipe[B, C]) composed[A, B, C] {
	if left.AwaitingInput() {
		// right is gone, nothing can ever feed left again
		return composed[A, B, C]{kind: produceNone}
	}
	return composed[A, B, C]{kind: produceLeftOnly, left: left}
}

func composeFinalize[A, B, C any](s composed[A, B, C]) composed[A, B, C] {
	switch s.kind {
	case produceLeftOnly, produceNone:
		// already finalized with respect to right
		return s
	default:
		return classify[A, B, C](s.left, s.right.Finalize())
	}
}
