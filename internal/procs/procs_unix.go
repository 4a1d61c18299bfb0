//go:build !windows

package procs

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/v4/process"
)

// unixInspector shells out to lsof for enumeration and sends SIGKILL for
// termination. When lsof is not installed it falls back to a native
// /proc scan via gopsutil.
type unixInspector struct{}

func newInspector() Inspector {
	return unixInspector{}
}

// ListOpenHandles runs `lsof +D dir` scoped to the directory subtree.
// lsof exits non-zero for warnings as well as real failures, so whatever
// parses out of its stdout is used regardless of the exit status.
func (unixInspector) ListOpenHandles(ctx context.Context, dir string) ([]Handle, error) {
	ctx, cancel := context.WithTimeout(ctx, ScanTimeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, "lsof", "+D", dir).Output()

	handles := parseLsof(string(output))
	if len(handles) > 0 {
		return handles, nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return nativeScan(ctx, dir), nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// Timeout or failure to start. Empty result, error for logging.
		return nil, err
	}

	// Non-zero exit with nothing parsed: no open files under dir.
	return nil, nil
}

// nativeScan walks /proc with gopsutil and keeps processes with an open
// file under dir. Per-process errors (races with process exit, denied
// fd listings) are skipped.
func nativeScan(ctx context.Context, dir string) []Handle {
	prefix := filepath.Clean(dir) + string(filepath.Separator)

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil
	}

	var handles []Handle

	for _, p := range procs {
		files, err := p.OpenFilesWithContext(ctx)
		if err != nil {
			continue
		}

		for _, f := range files {
			if !strings.HasPrefix(f.Path, prefix) {
				continue
			}

			name, err := p.NameWithContext(ctx)
			if err != nil {
				name = "?"
			}

			handles = append(handles, Handle{PID: p.Pid, Name: name})

			break
		}
	}

	return dedupe(handles)
}

// Kill sends SIGKILL to each handle independently. Sending a signal
// cannot block, so no per-attempt timeout is needed on this platform.
func (unixInspector) Kill(_ context.Context, handles []Handle) KillResult {
	var result KillResult

	for _, h := range handles {
		if err := syscall.Kill(int(h.PID), syscall.SIGKILL); err != nil {
			result.Failed = append(result.Failed, KillFailure{Handle: h, Reason: err.Error()})

			continue
		}

		result.Killed = append(result.Killed, h)
	}

	return result
}
