package rmdir

import (
	"context"
	"fmt"
	"io"

	"github.com/idelchi/rmdir/internal/fsops"
	"github.com/idelchi/rmdir/internal/procs"
	"github.com/idelchi/rmdir/internal/safety"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
	out     io.Writer
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(l.out, format, args...)
	}
}

// Result is the terminal state of one target.
type Result struct {
	// Path is the target as given on the command line.
	Path string
	// Outcome classifies how processing ended.
	Outcome Outcome
	// Reason carries the failure or cancellation message, empty on
	// success.
	Reason string
}

// Runner sequences the per-target state machine. All collaborators are
// injected so tests can prove, via the fake deleter, exactly which trees
// would have been removed.
type Runner struct {
	// Options is the immutable flag record.
	Options Options
	// Deleter performs the actual tree removal.
	Deleter fsops.Deleter
	// Inspector enumerates and terminates processes in brutal mode.
	Inspector procs.Inspector
	// Guard refuses system-critical paths.
	Guard *safety.Guard
	// Prompter runs the confirmation gate.
	Prompter Confirmer
	// Err receives warnings and per-target error messages.
	Err io.Writer
	// Progress, when set, receives throttled size-scan updates.
	Progress func(files, bytes int64)
}

// Run processes every target strictly sequentially: one target's
// confirmation, kill phase and deletion complete fully before the next
// target's inspection begins. One target's failure never blocks the
// rest.
func (r *Runner) Run(ctx context.Context, targets []string) []Result {
	results := make([]Result, 0, len(targets))

	for _, target := range targets {
		results = append(results, r.process(ctx, target))
	}

	return results
}

// process drives a single target through
// Inspect → {Rejected | EmptyDelete | GateConfirm} → [BrutalKill] → Delete.
func (r *Runner) process(ctx context.Context, path string) Result {
	log := logger{enabled: r.Options.Debug, out: r.Err}

	status, message := Check(path)
	if status != StatusOK {
		return r.failed(path, message)
	}

	if err := r.Guard.Validate(path); err != nil {
		return r.failed(path, fmt.Sprintf("refusing to delete %s", err))
	}

	// Empty directories are removed directly, bypassing confirmation and
	// process-killing entirely, regardless of flags.
	if IsEmpty(path) {
		log.printf("[debug]: %s is empty, deleting directly\n", path)

		return r.remove(path)
	}

	if !r.Options.Force && !r.Options.Brutal {
		return r.failed(path, "directory not empty (use --force or --brutal)")
	}

	if !r.Options.Yes {
		report := Size(ctx, path, r.Progress)
		if !r.Prompter.Confirm(path, report, r.Options.Brutal) {
			fmt.Fprintf(r.Err, "Cancelled: %s\n", path)

			return Result{Path: path, Outcome: OutcomeCancelled, Reason: "cancelled by user"}
		}
	}

	if r.Options.Brutal {
		r.brutalKill(ctx, path, log)
	}

	return r.remove(path)
}

// brutalKill enumerates and terminates processes holding open files
// under path. Best-effort: scan and kill problems surface as warnings
// and deletion proceeds regardless.
func (r *Runner) brutalKill(ctx context.Context, path string, log logger) {
	handles, err := r.Inspector.ListOpenHandles(ctx, path)
	if err != nil {
		fmt.Fprintf(r.Err, "Warning: process scan failed for %s: %v\n", path, err)
	}

	if len(handles) == 0 {
		log.printf("[debug]: no processes with open files under %s\n", path)

		return
	}

	result := r.Inspector.Kill(ctx, handles)

	for _, h := range result.Killed {
		fmt.Fprintf(r.Err, "Killed %s (pid %d)\n", h.Name, h.PID)
	}

	for _, f := range result.Failed {
		fmt.Fprintf(r.Err, "Warning: could not kill %s (pid %d): %s\n", f.Handle.Name, f.Handle.PID, f.Reason)
	}
}

// remove deletes the tree and maps the error to an outcome.
func (r *Runner) remove(path string) Result {
	if err := r.Deleter.RemoveAll(path); err != nil {
		return r.failed(path, err.Error())
	}

	return Result{Path: path, Outcome: OutcomeDeleted}
}

// failed reports the message on the error stream and records the
// outcome.
func (r *Runner) failed(path, reason string) Result {
	fmt.Fprintf(r.Err, "rmdir: %s: %s\n", path, reason)

	return Result{Path: path, Outcome: OutcomeFailed, Reason: reason}
}
