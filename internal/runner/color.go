package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color modes accepted by Options.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// palette colours diff output on stdout and diagnostics on stderr. Each
// side is switched on or off on its own.
type palette struct {
	header *color.Color
	hunk   *color.Color
	add    *color.Color
	del    *color.Color

	err  *color.Color
	warn *color.Color
}

func newPalette(mode string, stdout, stderr io.Writer) (*palette, error) {
	var outOn, errOn bool
	switch mode {
	case "", ColorAuto:
		outOn, errOn = colorTerminal(stdout), colorTerminal(stderr)
	case ColorAlways:
		outOn, errOn = true, true
	case ColorNever:
	default:
		return nil, fmt.Errorf("invalid color mode %q: want %s, %s or %s", mode, ColorAuto, ColorAlways, ColorNever)
	}

	return &palette{
		header: switched(color.New(color.Bold), outOn),
		hunk:   switched(color.New(color.FgCyan), outOn),
		add:    switched(color.New(color.FgGreen), outOn),
		del:    switched(color.New(color.FgRed), outOn),
		err:    switched(color.New(color.FgRed, color.Bold), errOn),
		warn:   switched(color.New(color.FgYellow), errOn),
	}, nil
}

func switched(c *color.Color, on bool) *color.Color {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// colorTerminal reports whether w is a terminal and NO_COLOR is unset.
func colorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (p *palette) errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, p.err.Sprint("blockfmt: "+fmt.Sprintf(format, args...)))
}

func (p *palette) warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, p.warn.Sprint("blockfmt: warning: "+fmt.Sprintf(format, args...)))
}

// colorDiff colours a unified diff line by line.
func (p *palette) colorDiff(d string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(d, "\n") {
		if line == "" {
			continue
		}
		text, nl := strings.CutSuffix(line, "\n")

		switch {
		case strings.HasPrefix(text, "--- "), strings.HasPrefix(text, "+++ "):
			b.WriteString(p.header.Sprint(text))
		case strings.HasPrefix(text, "@@"):
			b.WriteString(p.hunk.Sprint(text))
		case strings.HasPrefix(text, "+"):
			b.WriteString(p.add.Sprint(text))
		case strings.HasPrefix(text, "-"):
			b.WriteString(p.del.Sprint(text))
		default:
			b.WriteString(text)
		}
		if nl {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
