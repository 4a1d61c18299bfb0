// Package fsops abstracts the recursive-remove primitive so tests can
// prove which trees would have been deleted without touching the disk.
package fsops

import "os"

// Deleter removes a directory tree unconditionally. All gating
// (emptiness, flags, confirmation, safety) happens before this is
// invoked.
type Deleter interface {
	RemoveAll(path string) error
}

// OSDeleter implements Deleter using real os package calls.
type OSDeleter struct{}

// RemoveAll deletes path and every descendant.
func (OSDeleter) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// FakeDeleter implements Deleter for testing. It records every call and
// can inject a failure for specific paths.
type FakeDeleter struct {
	Calls []string
	// Errs maps a path to the error its removal should return.
	Errs map[string]error
}

// RemoveAll records the call without deleting anything.
func (f *FakeDeleter) RemoveAll(path string) error {
	f.Calls = append(f.Calls, path)

	return f.Errs[path]
}
