package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/idelchi/rmdir/internal/fsops"
	"github.com/idelchi/rmdir/internal/procs"
	"github.com/idelchi/rmdir/internal/rmdir"
	"github.com/idelchi/rmdir/internal/safety"
)

// clearingPrompter wipes the in-place progress line before the
// confirmation prompt is printed, so the two never interleave.
type clearingPrompter struct {
	prompter *rmdir.Prompter
	clear    func()
}

func (p clearingPrompter) Confirm(path string, report rmdir.SizeReport, brutal bool) bool {
	p.clear()

	return p.prompter.Confirm(path, report, brutal)
}

// run builds the real collaborators, processes all targets sequentially
// and reports the aggregate result. The returned error is nil only when
// every target was deleted.
func run(cmd *cobra.Command, options rmdir.Options, targets []string) error {
	cfg, err := safety.LoadConfig(options.ConfigPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "rmdir: %v\n", err)

		return err
	}

	enableProgress := !options.Debug && isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	clearLine := func() {}

	if enableProgress {
		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
		clearLine = func() {
			fmt.Fprint(os.Stderr, "\r\033[2K\r")
		}
	}

	runner := &rmdir.Runner{
		Options:   options,
		Deleter:   fsops.OSDeleter{},
		Inspector: procs.New(),
		Guard:     safety.NewGuard(cfg.Protected),
		Prompter: clearingPrompter{
			prompter: &rmdir.Prompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()},
			clear:    clearLine,
		},
		Err:      cmd.ErrOrStderr(),
		Progress: progressHook,
	}

	results := runner.Run(cmd.Context(), targets)

	deleted := 0

	for _, result := range results {
		if result.Outcome == rmdir.OutcomeDeleted {
			deleted++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d of %d directories\n", deleted, len(results))

	if deleted != len(results) {
		return fmt.Errorf("deleted %d of %d directories", deleted, len(results))
	}

	return nil
}
