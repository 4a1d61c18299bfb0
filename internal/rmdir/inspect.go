package rmdir

import (
	"errors"
	"io/fs"
	"os"
)

// Check classifies path without propagating filesystem errors: any stat
// failure maps to a Status, with the underlying message returned for
// display. The classification is advisory and used for messaging; the
// orchestrator decides what to do with it.
func Check(path string) (Status, string) {
	info, err := os.Stat(path)

	switch {
	case err == nil && info.IsDir():
		return StatusOK, ""
	case err == nil:
		return StatusNotDir, "not a directory"
	case errors.Is(err, fs.ErrNotExist):
		return StatusMissing, "no such directory"
	case errors.Is(err, fs.ErrPermission):
		return StatusDenied, "permission denied"
	default:
		return StatusAccessError, err.Error()
	}
}

// IsEmpty reports whether the directory's direct entry count is zero.
// A read error counts as "not empty": that forces the gated force/brutal
// path instead of silently succeeding.
func IsEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false
	}

	return len(entries) == 0
}
