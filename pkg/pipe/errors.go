package pipe

import "errors"

var (
	// ErrConsumeContract indicates a pipe answered Blocked from Consume while
	// its state awaited input. This is a defect in the pipe, not in the driver.
	ErrConsumeContract = errors.New("pipe: consume returned blocked in consume mode")
	// ErrProduceContract indicates a pipe answered Blocked from Produce while
	// its state did not await input.
	ErrProduceContract = errors.New("pipe: produce returned blocked in produce mode")
)
