// Package chain provides a fluent wrapper around pipe.Pipe
// for building serial compositions without nesting Compose calls.
//
// It composes pipes behind a convenient Chain[A, B] type carrying the
// context the eventual driver will run under.
//
// Key operations:
// - Start/FromFunc: begin a chain from a pipe or a mapping function
// - Then: append any pipe as the next stage
// - ThenFunc: append a mapping stage
// - MapOut: transform the output side without adding a stage
// - Keep: append a filtering stage
// - Collect/Stream: collapse the chain through the drive package
package chain
