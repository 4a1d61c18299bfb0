// Package exitcodes defines the process exit contract.
package exitcodes

// Exit codes form the scripting contract: anything other than full
// success (including a declined confirmation) exits non-zero.
const (
	Success = 0 // Every target deleted, or help/version requested
	Failure = 1 // Usage error, or at least one target not deleted
)
