package rmdir

// Options configures a deletion run. Built once from the command line,
// immutable thereafter.
type Options struct {
	// Force permits deleting non-empty directories (with confirmation).
	Force bool
	// Brutal implies Force and additionally terminates processes holding
	// open files under the target before deletion.
	Brutal bool
	// Yes skips interactive confirmation.
	Yes bool
	// Debug indicates whether debug output is enabled.
	Debug bool
	// ConfigPath overrides the default safety config location.
	ConfigPath string
}

// Status classifies a target path at the start of its processing.
type Status int

// Status values. Only StatusOK allows processing to continue.
const (
	StatusOK Status = iota
	StatusMissing
	StatusNotDir
	StatusDenied
	StatusAccessError
)

// SizeReport holds advisory aggregate statistics for a directory tree.
// It is display data only and never feeds correctness decisions.
type SizeReport struct {
	// Bytes is the cumulative size of all regular files.
	Bytes int64
	// Files is the number of regular files. Directories are not counted.
	Files int64
}

// Outcome is the terminal state of a single target.
type Outcome int

// Outcome values.
const (
	// OutcomeDeleted means the tree was removed.
	OutcomeDeleted Outcome = iota
	// OutcomeCancelled means the user declined confirmation. Not a
	// success, but reported distinctly from failure.
	OutcomeCancelled
	// OutcomeFailed covers inspection rejection, guard refusal, missing
	// force/brutal flags, and removal errors.
	OutcomeFailed
)
