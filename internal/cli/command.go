// Package cli wires the command-line surface to the deletion core.
package cli

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/rmdir/internal/rmdir"
	"github.com/idelchi/rmdir/internal/safety"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the process arguments. Help and version
// short-circuit before any target processing; any failure, declined
// confirmation or usage error surfaces as a non-nil error, already
// reported to the user.
func (c CLI) Execute() error {
	return c.Command().Execute()
}

// Command builds the root command. Exposed so tests can inject
// arguments and streams.
func (c CLI) Command() *cobra.Command {
	var options rmdir.Options

	root := &cobra.Command{
		Use:   "rmdir [flags] <dir> [dir2 ...]",
		Short: "Recursively delete directories",
		Long: heredoc.Doc(`
			rmdir recursively deletes directories.

			Empty directories are removed directly. Non-empty directories require
			--force or --brutal and an interactive confirmation (skipped with --yes).
			Brutal mode additionally terminates processes holding open files under
			the target before deletion.

			System-critical paths (/, /etc, the home directory itself, ...) are
			always refused. Additional protected paths can be listed in the config
			file under the key 'protected'.
		`),
		Example: heredoc.Doc(`
			# Delete an empty directory
			rmdir ./scratch

			# Delete a non-empty tree after confirmation
			rmdir --force ./build

			# Delete without prompting, killing processes that hold files open
			rmdir --brutal --yes ./node_modules
		`),
		Version:       c.version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No directory specified")
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())

				return fmt.Errorf("no directory specified")
			}

			return run(cmd, options, args)
		},
	}

	root.Flags().BoolVarP(&options.Force, "force", "f", false,
		"Permit deleting non-empty directories (with confirmation unless --yes)")
	root.Flags().BoolVarP(&options.Brutal, "brutal", "b", false,
		"Like --force, plus terminate processes with open files in the tree first")
	root.Flags().BoolVarP(&options.Yes, "yes", "y", false, "Skip interactive confirmation")
	root.Flags().BoolVar(&options.Debug, "debug", false, "Enable debug output")
	root.Flags().StringVar(&options.ConfigPath, "config", safety.DefaultConfigPath(), "Path to the safety config file")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if token, ok := unknownToken(err); ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "Unknown option: %s\n", token)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
		}

		// cmd.Usage() would go to OutOrStderr; keep the usage text on
		// the same stream as the error message.
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())

		return err
	})

	return root
}

// unknownToken recovers the offending token from pflag's unknown-flag
// error messages, restoring the dashes the user typed. Other flag
// errors (missing argument, bad value) report false.
func unknownToken(err error) (string, bool) {
	msg := err.Error()

	switch {
	case strings.HasPrefix(msg, "unknown flag: "):
		return strings.TrimPrefix(msg, "unknown flag: "), true
	case strings.HasPrefix(msg, "unknown shorthand flag: "):
		// Shaped like: unknown shorthand flag: 'x' in -xyz
		if _, after, found := strings.Cut(msg, " in "); found {
			return after, true
		}

		return msg, true
	default:
		return "", false
	}
}
