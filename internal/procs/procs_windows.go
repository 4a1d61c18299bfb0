//go:build windows

package procs

import (
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
)

// windowsInspector prefers Sysinternals handle.exe for enumeration and
// falls back to tasklist path-substring matching when it is not
// installed. Termination goes through taskkill.
type windowsInspector struct{}

func newInspector() Inspector {
	return windowsInspector{}
}

// ListOpenHandles enumerates processes with open handles under dir.
func (windowsInspector) ListOpenHandles(ctx context.Context, dir string) ([]Handle, error) {
	ctx, cancel := context.WithTimeout(ctx, ScanTimeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, "handle.exe", "-nobanner", dir).Output()
	if err == nil {
		return parseHandle(string(output)), nil
	}

	if !errors.Is(err, exec.ErrNotFound) {
		// handle.exe exists but failed or timed out; still try tasklist.
		handles, tasklistErr := tasklistScan(ctx, dir)
		if tasklistErr != nil {
			return nil, err
		}

		return handles, nil
	}

	return tasklistScan(ctx, dir)
}

// tasklistScan lists all processes verbosely and keeps rows mentioning
// dir anywhere in their fields. Best-effort substring matching.
func tasklistScan(ctx context.Context, dir string) ([]Handle, error) {
	output, err := exec.CommandContext(ctx, "tasklist", "/V", "/FO", "CSV").Output()
	if err != nil {
		return nil, err
	}

	return parseTasklistCSV(string(output), dir), nil
}

// Kill terminates each handle with `taskkill /F /PID`, each attempt
// bounded by its own timeout so one stuck process cannot stall the
// batch.
func (windowsInspector) Kill(ctx context.Context, handles []Handle) KillResult {
	var result KillResult

	for _, h := range handles {
		killCtx, cancel := context.WithTimeout(ctx, KillTimeout)
		output, err := exec.CommandContext(killCtx, "taskkill", "/F", "/PID", strconv.Itoa(int(h.PID))).CombinedOutput()
		cancel()

		if err != nil {
			reason := strings.TrimSpace(string(output))
			if reason == "" {
				reason = err.Error()
			}

			result.Failed = append(result.Failed, KillFailure{Handle: h, Reason: reason})

			continue
		}

		result.Killed = append(result.Killed, h)
	}

	return result
}
