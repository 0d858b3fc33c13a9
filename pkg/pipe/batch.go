package pipe

type chunkState[A any] struct {
	buf []A
	ph  Phase[A, []A]
}

// Chunk groups inputs into slices of size. Accepting the size-th input moves
// the pipe to produce mode until the chunk is handed out; Finalize flushes a
// partial chunk. Snapshots stay valid for replay: the buffer is copied on
// every append.
func Chunk[A any](size int) Pipe[A, []A] {
	if size < 1 {
		size = 1
	}
	return New(chunkState[A]{ph: ConsumePhase[A, []A]()},
		func(s chunkState[A], input A) Step[chunkState[A], []A] {
			if !s.ph.IsConsume() {
				return Blocked[chunkState[A], []A]()
			}
			buf := make([]A, 0, len(s.buf)+1)
			buf = append(buf, s.buf...)
			buf = append(buf, input)
			if len(buf) < size {
				s.buf = buf
				return Continue[chunkState[A], []A](s)
			}
			s.buf = nil
			s.ph = s.ph.Enqueue(buf)
			return Continue[chunkState[A], []A](s)
		},
		func(s chunkState[A]) Step[chunkState[A], []A] {
			if s.ph.IsProduce() {
				chunk, ph := s.ph.Dequeue()
				s.ph = ph
				return Yield(chunk, s)
			}
			if s.ph.IsFinished() {
				return Closed[chunkState[A], []A]()
			}
			return Blocked[chunkState[A], []A]()
		},
		func(s chunkState[A]) bool {
			return s.ph.IsConsume()
		},
		func(s chunkState[A]) chunkState[A] {
			if len(s.buf) > 0 {
				s.ph = s.ph.Enqueue(s.buf)
				s.buf = nil
			}
			s.ph = s.ph.Finish()
			return s
		},
	)
}

// Expand replays every element of each input slice as its own output,
// in order. Non-empty input moves the pipe to produce mode until drained.
func Expand[A any]() Pipe[[]A, A] {
	return New(ConsumePhase[[]A, A](),
		func(s Phase[[]A, A], input []A) Step[Phase[[]A, A], A] {
			if !s.IsConsume() {
				return Blocked[Phase[[]A, A], A]()
			}
			return Continue[Phase[[]A, A], A](s.Enqueue(input...))
		},
		func(s Phase[[]A, A]) Step[Phase[[]A, A], A] {
			if s.IsProduce() {
				head, next := s.Dequeue()
				return Yield(head, next)
			}
			if s.IsFinished() {
				return Closed[Phase[[]A, A], A]()
			}
			return Blocked[Phase[[]A, A], A]()
		},
		func(s Phase[[]A, A]) bool {
			return s.IsConsume()
		},
		func(s Phase[[]A, A]) Phase[[]A, A] {
			return s.Finish()
		},
	)
}
