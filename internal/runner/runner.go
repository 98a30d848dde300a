// Package runner orchestrates the collect -> format -> output pipeline.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/formatter"
	"github.com/donaldgifford/blockfmt/internal/rules"
	"github.com/donaldgifford/blockfmt/pkg/diff"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFormatDiff = 1
	ExitError      = 2
)

// stdinName labels standard input in diffs.
const stdinName = "<stdin>"

// Options configures the runner behavior.
type Options struct {
	Paths      []string
	Check      bool
	Diff       bool
	Write      bool
	Lines      string // "first:last", 1-based and inclusive.
	ConfigPath string
	Color      string // auto, always or never.
	Jobs       int
	Quiet      bool
	Verbose    bool
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
}

// runner holds the state shared by every file of one invocation.
type runner struct {
	opts  *Options
	cfg   *config.Config
	rules []formatter.FormatRule
	lines lineRange
	out   *palette
}

// result is the outcome of formatting one file.
type result struct {
	path   string
	input  string
	output string
	mode   fs.FileMode
	err    error
}

// validate rejects mode combinations with no single meaning. Write is the
// default for path arguments; asking for it explicitly conflicts with the
// read-only modes and with standard input.
func (o *Options) validate() error {
	if !o.Write {
		return nil
	}
	if o.Check || o.Diff {
		return errors.New("--write cannot be used with --check or --diff")
	}
	if len(o.Paths) == 0 {
		return errors.New("cannot use --write with standard input")
	}
	return nil
}

// Run executes the format pipeline and returns an exit code.
func Run(ctx context.Context, opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}

	out, err := newPalette(opts.Color, opts.Stdout, opts.Stderr)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "blockfmt: %v\n", err)
		return ExitError
	}

	if err := opts.validate(); err != nil {
		out.errorf(opts.Stderr, "%v", err)
		return ExitError
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		out.errorf(opts.Stderr, "%v", err)
		return ExitError
	}

	lines, err := parseLineRange(opts.Lines)
	if err != nil {
		out.errorf(opts.Stderr, "%v", err)
		return ExitError
	}

	r := &runner{
		opts:  opts,
		cfg:   cfg,
		rules: rules.FormatRules(),
		lines: lines,
		out:   out,
	}

	// stdin mode: no paths given.
	if len(opts.Paths) == 0 {
		return r.runStdin(ctx)
	}

	files, exitCode := r.collect(ctx)
	for _, res := range r.formatFiles(ctx, files) {
		exitCode = max(exitCode, r.report(res))
	}
	return exitCode
}

func (r *runner) runStdin(ctx context.Context) int {
	src, err := io.ReadAll(r.opts.Stdin)
	if err != nil {
		r.out.errorf(r.opts.Stderr, "reading stdin: %v", err)
		return ExitError
	}

	input := string(src)
	output, err := r.format(ctx, input)
	if err != nil {
		r.out.errorf(r.opts.Stderr, "%v", err)
		return ExitError
	}

	if r.opts.Check {
		if input != output {
			return ExitFormatDiff
		}
		return ExitOK
	}

	if r.opts.Diff {
		if d := diff.Unified(stdinName, input, output); d != "" {
			fmt.Fprint(r.opts.Stdout, r.out.colorDiff(d))
			return ExitFormatDiff
		}
		return ExitOK
	}

	fmt.Fprint(r.opts.Stdout, output)
	return ExitOK
}

// collect expands the path arguments into BlockScript files. Directories
// are walked recursively; excluded directory names are skipped. A file
// argument with another extension is skipped with a warning.
func (r *runner) collect(ctx context.Context) ([]string, int) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	exitCode := ExitOK
	for _, p := range r.opts.Paths {
		info, err := os.Stat(p)
		if err != nil {
			r.out.errorf(r.opts.Stderr, "%v", err)
			exitCode = ExitError
			continue
		}

		if !info.IsDir() {
			if !r.isSource(p) {
				if !r.opts.Quiet {
					r.out.warnf(r.opts.Stderr, "%s: not a BlockScript file, skipping", p)
				}
				continue
			}
			addFile(p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && slices.Contains(r.cfg.Files.Exclude, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if r.isSource(path) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			r.out.errorf(r.opts.Stderr, "walking %s: %v", p, err)
			exitCode = ExitError
		}
	}

	return files, exitCode
}

func (r *runner) isSource(path string) bool {
	return slices.Contains(r.cfg.Files.Extensions, filepath.Ext(path))
}

// formatFiles formats files concurrently and returns the results in input
// order. Failures are recorded per file and do not stop the others.
func (r *runner) formatFiles(ctx context.Context, files []string) []result {
	results := make([]result, len(files))
	if len(files) == 0 {
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(r.opts.Jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			results[i] = r.formatFile(gctx, path)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *runner) formatFile(ctx context.Context, path string) result {
	res := result{path: path}

	info, err := os.Stat(path)
	if err != nil {
		res.err = err
		return res
	}
	res.mode = info.Mode().Perm()

	src, err := os.ReadFile(path)
	if err != nil {
		res.err = err
		return res
	}

	res.input = string(src)
	res.output, res.err = r.format(ctx, res.input)
	if res.err != nil {
		res.err = fmt.Errorf("formatting %s: %w", path, res.err)
	}
	return res
}

func (r *runner) format(ctx context.Context, input string) (string, error) {
	if r.lines.set() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		start, end := r.lines.offsets(input)
		return formatter.FormatRange(input, start, end, &r.cfg.Formatter, r.rules), nil
	}
	return formatter.FormatContext(ctx, input, &r.cfg.Formatter, r.rules)
}

// report prints or writes one result and returns its exit code.
func (r *runner) report(res result) int {
	if res.err != nil {
		r.out.errorf(r.opts.Stderr, "%v", res.err)
		return ExitError
	}

	if r.opts.Verbose {
		fmt.Fprintf(r.opts.Stderr, "%s\n", res.path)
	}

	changed := res.input != res.output

	if r.opts.Check {
		if changed {
			if !r.opts.Quiet {
				fmt.Fprintf(r.opts.Stderr, "%s\n", res.path)
			}
			return ExitFormatDiff
		}
		return ExitOK
	}

	if r.opts.Diff {
		if d := diff.Unified(res.path, res.input, res.output); d != "" {
			fmt.Fprint(r.opts.Stdout, r.out.colorDiff(d))
			return ExitFormatDiff
		}
		return ExitOK
	}

	// Write mode (default for path args).
	if !changed {
		return ExitOK
	}

	if err := os.WriteFile(res.path, []byte(res.output), res.mode); err != nil {
		r.out.errorf(r.opts.Stderr, "writing %s: %v", res.path, err)
		return ExitError
	}

	return ExitOK
}
