package pipe

import (
	"time"

	"github.com/google/uuid"
)

// StepKind tags the outcome of one consume or produce invocation.
type StepKind uint8

const (
	KindYield StepKind = iota
	KindContinue
	KindBlocked
	KindClosed
)

func (k StepKind) String() string {
	switch k {
	case KindYield:
		return "yield"
	case KindContinue:
		return "continue"
	case KindBlocked:
		return "blocked"
	case KindClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Step is the result of one atomic progress step of a pipe with state S
// producing values of type B. Blocked and Closed carry no state: a pipe
// replying Blocked is unchanged, a Closed pipe is done for good.
type Step[S, B any] struct {
	id        uuid.UUID
	createdAt time.Time
	kind      StepKind
	value     B
	state     S
	hasValue  bool
	hasState  bool
}

func Yield[S, B any](value B, next S) Step[S, B] {
	return Step[S, B]{
		kind:      KindYield,
		value:     value,
		state:     next,
		hasValue:  true,
		hasState:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Continue[S, B any](next S) Step[S, B] {
	return Step[S, B]{
		kind:      KindContinue,
		state:     next,
		hasState:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Blocked[S, B any]() Step[S, B] {
	return Step[S, B]{
		kind:      KindBlocked,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Closed[S, B any]() Step[S, B] {
	return Step[S, B]{
		kind:      KindClosed,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (s Step[S, B]) Kind() StepKind {
	return s.kind
}

// Value returns the emitted value. Only meaningful when IsYield reports true.
func (s Step[S, B]) Value() B {
	return s.value
}

// State returns the successor state carried by a Yield or Continue step.
func (s Step[S, B]) State() S {
	return s.state
}

func (s Step[S, B]) IsYield() bool {
	return s.kind == KindYield
}

func (s Step[S, B]) IsContinue() bool {
	return s.kind == KindContinue
}

func (s Step[S, B]) IsBlocked() bool {
	return s.kind == KindBlocked
}

func (s Step[S, B]) IsClosed() bool {
	return s.kind == KindClosed
}

func (s Step[S, B]) HasValue() bool {
	return s.hasValue
}

func (s Step[S, B]) HasState() bool {
	return s.hasState
}

func (s Step[S, B]) CreatedAt() time.Time {
	return s.createdAt
}

func (s Step[S, B]) Id() uuid.UUID {
	return s.id
}
