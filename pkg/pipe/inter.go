package pipe

import "time"

type ValueProvider[B any] interface {
	// Value returns the emitted value of a yield step
	Value() B
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithKind defines an interface for step-like types that expose their outcome tag
type WithKind[B any] interface {
	ValueProvider[B]
	// Kind returns the outcome tag of the step
	Kind() StepKind
	// IsYield returns true if the step emitted a value
	IsYield() bool
}

// WithClose extends WithKind with termination inspection
type WithClose[B any] interface {
	WithKind[B]
	// IsClosed returns true if the pipe is permanently done
	IsClosed() bool
	// IsBlocked returns true if the invocation hit the wrong mode
	IsBlocked() bool
}

//type WithProgress[B any] interface {
//	WithClose[B]
//	IsContinue() bool
//}
