package pipe

type funcState struct {
	done bool
}

// Map returns a pipe that yields f(input) for every input, one for one.
// It stays in consume mode until finalized; Produce before finalize is the
// wrong operation and reports Blocked, after finalize it reports Closed.
func Map[A, B any](f func(A) B) Pipe[A, B] {
	return New(funcState{},
		func(s funcState, input A) Step[funcState, B] {
			if s.done {
				return Blocked[funcState, B]()
			}
			return Yield(f(input), s)
		},
		func(s funcState) Step[funcState, B] {
			if s.done {
				return Closed[funcState, B]()
			}
			return Blocked[funcState, B]()
		},
		func(s funcState) bool {
			return !s.done
		},
		func(s funcState) funcState {
			s.done = true
			return s
		},
	)
}

// Identity passes every input through unchanged.
func Identity[A any]() Pipe[A, A] {
	return Map(func(input A) A {
		return input
	})
}

// Filter keeps the inputs keep reports true for; dropped inputs step the
// pipe with Continue and no output.
func Filter[A any](keep func(A) bool) Pipe[A, A] {
	return New(funcState{},
		func(s funcState, input A) Step[funcState, A] {
			if s.done {
				return Blocked[funcState, A]()
			}
			if keep(input) {
				return Yield(input, s)
			}
			return Continue[funcState, A](s)
		},
		func(s funcState) Step[funcState, A] {
			if s.done {
				return Closed[funcState, A]()
			}
			return Blocked[funcState, A]()
		},
		func(s funcState) bool {
			return !s.done
		},
		func(s funcState) funcState {
			s.done = true
			return s
		},
	)
}

type scanState[B any] struct {
	acc  B
	done bool
}

// Scan yields the running accumulation fold(acc, input) for every input,
// starting from init.
func Scan[A, B any](init B, fold func(B, A) B) Pipe[A, B] {
	return New(scanState[B]{acc: init},
		func(s scanState[B], input A) Step[scanState[B], B] {
			if s.done {
				return Blocked[scanState[B], B]()
			}
			s.acc = fold(s.acc, input)
			return Yield(s.acc, s)
		},
		func(s scanState[B]) Step[scanState[B], B] {
			if s.done {
				return Closed[scanState[B], B]()
			}
			return Blocked[scanState[B], B]()
		},
		func(s scanState[B]) bool {
			return !s.done
		},
		func(s scanState[B]) scanState[B] {
			s.done = true
			return s
		},
	)
}
