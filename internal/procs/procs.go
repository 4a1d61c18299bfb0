// Package procs enumerates and terminates processes holding open files
// under a directory. All shell-parsing fragility lives behind the
// Inspector seam; both operations are best-effort and never block a
// deletion.
package procs

import (
	"context"
	"time"
)

const (
	// ScanTimeout bounds a single external enumeration call so a hung or
	// missing system tool cannot stall the run.
	ScanTimeout = 5 * time.Second
	// KillTimeout bounds each individual termination attempt.
	KillTimeout = 3 * time.Second
)

// Handle identifies a process with an open file under the scanned
// directory. Results have set semantics, keyed by PID.
type Handle struct {
	PID  int32
	Name string
}

// KillFailure records one termination attempt that did not succeed.
type KillFailure struct {
	Handle Handle
	Reason string
}

// KillResult partitions a batch of termination attempts. It is always
// fully populated; one failure never aborts the batch.
type KillResult struct {
	Killed []Handle
	Failed []KillFailure
}

// Inspector is the platform seam for process-to-open-file association
// and termination.
//
// ListOpenHandles returns the deduplicated set of processes holding
// files open anywhere under dir. An empty result means "no known
// processes", never "scan successful": tool-missing, non-zero exit and
// timeout all degrade to an empty set, with the error returned for
// logging only.
//
// Kill attempts forceful termination of each handle independently and
// never returns an error; the partition in KillResult is the whole
// story.
type Inspector interface {
	ListOpenHandles(ctx context.Context, dir string) ([]Handle, error)
	Kill(ctx context.Context, handles []Handle) KillResult
}

// New returns the Inspector for the current platform.
func New() Inspector {
	return newInspector()
}

// dedupe collapses duplicate PIDs, keeping the first occurrence.
// Ordering of the result is not significant.
func dedupe(handles []Handle) []Handle {
	seen := make(map[int32]struct{}, len(handles))
	out := make([]Handle, 0, len(handles))

	for _, h := range handles {
		if _, ok := seen[h.PID]; ok {
			continue
		}

		seen[h.PID] = struct{}{}
		out = append(out, h)
	}

	return out
}
