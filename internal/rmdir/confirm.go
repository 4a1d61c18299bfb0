package rmdir

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// Confirmer is the confirmation gate seam, satisfied by Prompter and by
// scripted fakes in tests.
type Confirmer interface {
	Confirm(path string, report SizeReport, brutal bool) bool
}

// Prompter asks the user to confirm a deletion. In and Out are injectable
// so tests can script answers.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	// reader wraps In once; a fresh bufio.Reader per prompt could
	// buffer ahead and swallow input meant for the next target.
	reader *bufio.Reader
}

// Confirm displays the target path and its size report, blocks on a
// single line of input, and reports whether the user accepted.
// Affirmative answers are exactly "y" or "yes", case-insensitive;
// anything else, including an empty line or a read error, declines.
//
// When brutal is set, the prompt additionally warns that running
// processes will be terminated.
func (p *Prompter) Confirm(path string, report SizeReport, brutal bool) bool {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}

	fmt.Fprintf(p.Out, "Delete %q? (%s in %s)",
		path, humanize.IBytes(uint64(report.Bytes)), plural(report.Files, "file")) //nolint:gosec // Bytes is always positive

	if brutal {
		fmt.Fprintf(p.Out, "\nProcesses with open files in this directory will be forcefully terminated.")
	}

	fmt.Fprintf(p.Out, " [y/N]: ")

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// plural formats a count with a naive pluralized unit.
func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}

	return fmt.Sprintf("%s %ss", humanize.Comma(n), unit)
}
