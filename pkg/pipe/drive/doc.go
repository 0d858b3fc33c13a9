// Package drive contains the plumbing that runs pipes: the synchronous
// Collect loop, the channel locomotive, channel bridge helpers, and driver
// configuration carried via context. It holds no transformation logic; it
// only sequences consume/produce/finalize calls the way the pipe contract
// requires.
package drive
