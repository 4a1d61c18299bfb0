// Package safety refuses deletion of system-critical paths. The guard
// is a backstop, not a substitute for the confirmation gate: it only
// blocks paths no deletion tool should ever remove.
package safety

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrProtected is returned for paths the guard refuses to delete.
var ErrProtected = errors.New("protected path")

// Guard validates delete targets against a protected-path list.
type Guard struct {
	protected []string
}

// NewGuard creates a guard with platform defaults plus any extra
// protected paths (typically from the user's config file).
func NewGuard(extra []string) *Guard {
	protected := defaultProtected()

	for _, p := range extra {
		if strings.TrimSpace(p) == "" {
			continue
		}

		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}

		protected = append(protected, filepath.Clean(abs))
	}

	return &Guard{protected: protected}
}

// Validate returns ErrProtected when path resolves to exactly a
// protected path. Children of protected roots are deliberately allowed:
// deleting /etc is refused, deleting /tmp/build is not, and deleting a
// scratch dir under the home directory is fine while the home directory
// itself is not.
func (g *Guard) Validate(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil // Leave unresolvable paths to the inspector
	}

	clean := filepath.Clean(abs)

	for _, p := range g.protected {
		if clean == p {
			return ErrProtected
		}
	}

	return nil
}

// defaultProtected returns the base protected set for the current
// platform.
func defaultProtected() []string {
	var base []string

	if runtime.GOOS == "windows" {
		systemDrive := os.Getenv("SystemDrive")
		if systemDrive == "" {
			systemDrive = "C:"
		}

		base = []string{
			systemDrive + `\`,
			filepath.Join(systemDrive+`\`, "Windows"),
			filepath.Join(systemDrive+`\`, "Program Files"),
			filepath.Join(systemDrive+`\`, "Program Files (x86)"),
		}
	} else {
		base = []string{
			"/",
			"/etc",
			"/bin",
			"/usr",
			"/boot",
			"/lib",
			"/lib64",
			"/sbin",
			"/var",
			"/home",
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		base = append(base, filepath.Clean(home))
	}

	return base
}
