package pipe

// PhaseKind tags the two sides of a Phase.
type PhaseKind uint8

const (
	// PhaseConsume means the combinator wants the next A.
	PhaseConsume PhaseKind = iota
	// PhaseProduce means the combinator holds B values ready to emit.
	PhaseProduce
)

// Phase is the simple consume/produce union used by queue-style combinators:
// either the whole state is "waiting for the next A" or it is "holding B
// values to hand out in order". It is distinct from the opaque state Compose
// threads through its machine.
type Phase[A, B any] struct {
	kind  PhaseKind
	queue []B
	done  bool
}

// ConsumePhase returns a Phase that wants input.
func ConsumePhase[A, B any]() Phase[A, B] {
	return Phase[A, B]{kind: PhaseConsume}
}

// ProducePhase returns a Phase holding outs ready to emit, oldest first.
// With no outs it degenerates to the consume side.
func ProducePhase[A, B any](outs ...B) Phase[A, B] {
	if len(outs) == 0 {
		return ConsumePhase[A, B]()
	}
	return Phase[A, B]{kind: PhaseProduce, queue: outs}
}

func (p Phase[A, B]) Kind() PhaseKind {
	return p.kind
}

func (p Phase[A, B]) IsConsume() bool {
	return p.kind == PhaseConsume && !p.done
}

func (p Phase[A, B]) IsProduce() bool {
	return p.kind == PhaseProduce
}

// Pending returns how many outputs are queued.
func (p Phase[A, B]) Pending() int {
	return len(p.queue)
}

// Enqueue appends outs to the ready queue, switching to the produce side
// when anything is queued.
func (p Phase[A, B]) Enqueue(outs ...B) Phase[A, B] {
	if len(outs) == 0 {
		return p
	}
	next := make([]B, 0, len(p.queue)+len(outs))
	next = append(next, p.queue...)
	next = append(next, outs...)
	return Phase[A, B]{kind: PhaseProduce, queue: next, done: p.done}
}

// Dequeue pops the oldest queued output. With one element left the phase
// returns to the consume side (unless finished).
func (p Phase[A, B]) Dequeue() (B, Phase[A, B]) {
	head := p.queue[0]
	rest := p.queue[1:]
	if len(rest) == 0 {
		return head, Phase[A, B]{kind: PhaseConsume, done: p.done}
	}
	return head, Phase[A, B]{kind: PhaseProduce, queue: rest, done: p.done}
}

// Finish marks the phase as finished: it never returns to wanting input.
func (p Phase[A, B]) Finish() Phase[A, B] {
	p.done = true
	return p
}

func (p Phase[A, B]) IsFinished() bool {
	return p.done
}
