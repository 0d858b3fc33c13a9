// Package pipe implements a composable streaming-pipe engine: stateful,
// incremental transformations from A values to B values, advanced one step
// at a time by an external driver and composed serially without buffering
// intermediate results.
//
// A pipe alternates between a consuming state (it needs input to make
// progress) and a producing state (it can emit output without new input).
// Every consume or produce invocation returns a Step: Yield carries an
// output and the successor pipe, Continue carries only the successor,
// Blocked means the wrong operation was invoked for the current mode and
// nothing changed, Closed means the pipe is permanently done.
//
// Key operations:
// - New: build a pipe from a typed state machine (state stays opaque)
// - Map/Identity/Filter/Scan: one-for-one consume-mode combinators
// - Chunk/Expand: queue-style combinators built on the Phase union
// - MapOutput: lift a function over a pipe's output side
// - Compose: wire one pipe's output into another pipe's input
//
// Driver contract: call Consume while AwaitingInput reports true, Produce
// otherwise, and Finalize once the input is exhausted; then keep producing
// until Closed. A Blocked reply never loses state, so the driver simply
// switches operations. A sub-pipe replying Blocked to the operation its own
// mode legalized is a defect and panics with ErrConsumeContract or
// ErrProduceContract.
package pipe
