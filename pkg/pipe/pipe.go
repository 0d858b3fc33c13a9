package pipe

// Pipe is an immutable description of a stateful incremental transformation
// from A values to B values. The internal state is opaque: New erases the
// concrete state type behind any, so composed pipes never leak their sides'
// state types. Every operation returns a fresh value; nothing mutates in place.
type Pipe[A, B any] struct {
	state    any
	consume  func(state any, input A) Step[any, B]
	produce  func(state any) Step[any, B]
	awaiting func(state any) bool
	finalize func(state any) any
}

// New builds a Pipe from a typed state machine:
// consume feeds one input, produce makes progress with no new input,
// awaiting classifies whether the state wants input, finalize signals
// that no more input will ever arrive.
//
// Contract: consume must not return Blocked while awaiting reports true,
// produce must not return Blocked while awaiting reports false, and after
// finalize the state must never await input again.
func New[S, A, B any](initial S,
	consume func(s S, input A) Step[S, B],
	produce func(s S) Step[S, B],
	awaiting func(s S) bool,
	finalize func(s S) S) Pipe[A, B] {

	return Pipe[A, B]{
		state: initial,
		consume: func(state any, input A) Step[any, B] {
			return eraseStep(consume(state.(S), input))
		},
		produce: func(state any) Step[any, B] {
			return eraseStep(produce(state.(S)))
		},
		awaiting: func(state any) bool {
			return awaiting(state.(S))
		},
		finalize: func(state any) any {
			return finalize(state.(S))
		},
	}
}

func eraseStep[S, B any](st Step[S, B]) Step[any, B] {
	out := Step[any, B]{
		id:        st.id,
		createdAt: st.createdAt,
		kind:      st.kind,
		value:     st.value,
		hasValue:  st.hasValue,
	}
	if st.hasState {
		out.state = st.state
		out.hasState = true
	}
	return out
}

// AwaitingInput reports whether the pipe currently wants Consume (true)
// or must be driven via Produce (false).
func (p Pipe[A, B]) AwaitingInput() bool {
	return p.awaiting(p.state)
}

// Consume feeds one input value. The returned step carries the successor
// pipe as its state; on Blocked the caller keeps using the receiver.
func (p Pipe[A, B]) Consume(input A) Step[Pipe[A, B], B] {
	return p.rebind(p.consume(p.state, input))
}

// Produce attempts progress without new input.
func (p Pipe[A, B]) Produce() Step[Pipe[A, B], B] {
	return p.rebind(p.produce(p.state))
}

// Finalize signals that no more input will arrive. The returned pipe only
// drains buffered output and eventually closes. Idempotent.
func (p Pipe[A, B]) Finalize() Pipe[A, B] {
	p.state = p.finalize(p.state)
	return p
}

func (p Pipe[A, B]) rebind(st Step[any, B]) Step[Pipe[A, B], B] {
	out := Step[Pipe[A, B], B]{
		id:        st.id,
		createdAt: st.createdAt,
		kind:      st.kind,
		value:     st.value,
		hasValue:  st.hasValue,
	}
	if st.hasState {
		p.state = st.state
		out.state = p
		out.hasState = true
	}
	return out
}

// MapOutput lifts g over the output side of p: every yielded B becomes g(B),
// all other step kinds pass through untouched.
func MapOutput[A, B, C any](p Pipe[A, B], g func(B) C) Pipe[A, C] {
	return Pipe[A, C]{
		state: p.state,
		consume: func(state any, input A) Step[any, C] {
			return mapStep(p.consume(state, input), g)
		},
		produce: func(state any) Step[any, C] {
			return mapStep(p.produce(state), g)
		},
		awaiting: p.awaiting,
		finalize: p.finalize,
	}
}

func mapStep[B, C any](st Step[any, B], g func(B) C) Step[any, C] {
	out := Step[any, C]{
		id:        st.id,
		createdAt: st.createdAt,
		kind:      st.kind,
		state:     st.state,
		hasState:  st.hasState,
	}
	if st.hasValue {
		out.value = g(st.value)
		out.hasValue = true
	}
	return out
}
