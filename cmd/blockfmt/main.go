// Package main is the entry point for blockfmt.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/blockfmt/internal/rules" // Registers rules via init().
	"github.com/donaldgifford/blockfmt/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the root command with args and returns the process exit
// code.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &runner.Options{Stdin: stdin, Stdout: stdout, Stderr: stderr}
	var listRules bool
	exitCode := runner.ExitOK

	cmd := &cobra.Command{
		Use:   "blockfmt [flags] [path...]",
		Short: "Format BlockScript source files",
		Long: `Format BlockScript source files.

With no paths, reads from stdin and writes to stdout. Directories are
walked recursively for BlockScript files. Changed files are rewritten in
place unless --check or --diff is given.`,
		Version:       fmt.Sprintf("%s (%s) %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listRules {
				for _, name := range rules.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			opts.Paths = args
			exitCode = runner.Run(cmd.Context(), opts)
			return nil
		},
	}
	cmd.SetVersionTemplate("blockfmt {{.Version}}\n")

	flags := cmd.Flags()
	flags.BoolVarP(&opts.Check, "check", "c", false, "exit 1 if any file is not formatted")
	flags.BoolVarP(&opts.Diff, "diff", "d", false, "print unified diff of changes")
	flags.BoolVarP(&opts.Write, "write", "w", false, "write result to file (default for path arguments; rejected with --check, --diff or stdin)")
	flags.StringVar(&opts.Lines, "lines", "", "format only lines first:last (1-based, inclusive)")
	flags.StringVar(&opts.ConfigPath, "config", "", "path to config file")
	flags.StringVar(&opts.Color, "color", runner.ColorAuto, "colorize output (auto|always|never)")
	flags.IntVarP(&opts.Jobs, "jobs", "j", 0, "number of files formatted in parallel (default GOMAXPROCS)")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress informational output")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "print files as they are processed")
	flags.BoolVar(&listRules, "list-rules", false, "print the formatting rules in execution order and exit")

	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "blockfmt: %v\n", err)
		return runner.ExitError
	}
	return exitCode
}
