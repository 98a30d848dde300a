// Package diff computes line diffs between an original and a formatted
// text, as hunks or as unified diff output.
package diff

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultContext is the number of unchanged lines shown around each hunk
// in unified output.
const DefaultContext = 3

// Kind classifies a diff line.
type Kind int

const (
	// Equal lines appear in both texts.
	Equal Kind = iota
	// Insert lines appear only in the new text.
	Insert
	// Delete lines appear only in the old text.
	Delete
)

// Line is one line of a hunk. Text keeps its trailing newline, if any.
type Line struct {
	Kind Kind
	Text string
}

// Hunk is a run of changes plus surrounding context. Starts are 0-based
// line indexes; for a hunk that only inserts, OldStart is the index the
// new lines go before.
type Hunk struct {
	OldStart, OldLines int
	NewStart, NewLines int
	Lines              []Line
}

// Added returns the concatenated text of the hunk's inserted lines.
func (h Hunk) Added() string {
	var b strings.Builder
	for _, l := range h.Lines {
		if l.Kind == Insert {
			b.WriteString(l.Text)
		}
	}
	return b.String()
}

// Unified generates a unified diff between oldText and newText.
// Returns an empty string if the inputs are identical.
func Unified(filename, oldText, newText string) string {
	hunks := Hunks(oldText, newText, DefaultContext)
	if len(hunks) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", filename)
	fmt.Fprintf(&b, "+++ b/%s\n", filename)
	for _, h := range hunks {
		writeHunk(&b, h)
	}
	return b.String()
}

// Hunks returns the changes between oldText and newText grouped into hunks
// with up to context unchanged lines around each one. Hunks whose context
// would overlap are merged. Identical inputs yield nil.
func Hunks(oldText, newText string, context int) []Hunk {
	if oldText == newText {
		return nil
	}
	context = max(context, 0)

	a := splitLines(oldText)
	b := splitLines(newText)
	script := editScript(a, b)

	var hunks []Hunk
	for i := 0; i < len(script); {
		if script[i].kind == Equal {
			i++
			continue
		}

		// Extend over changes separated by at most 2*context equal lines.
		end := i
		for j := i; j < len(script); j++ {
			if script[j].kind != Equal {
				end = j
				continue
			}
			if j-end > 2*context {
				break
			}
		}

		lo := max(i-context, 0)
		hi := min(end+context+1, len(script))
		hunks = append(hunks, newHunk(script[lo:hi], script, lo, a, b))
		i = hi
	}
	return hunks
}

// step is one entry of an edit script: an index into the old text, the
// new text, or both.
type step struct {
	kind Kind
	old  int
	new  int
}

func newHunk(steps, script []step, lo int, a, b []string) Hunk {
	h := Hunk{Lines: make([]Line, 0, len(steps))}
	h.OldStart, h.NewStart = position(script, lo)

	for _, s := range steps {
		switch s.kind {
		case Equal:
			h.OldLines++
			h.NewLines++
			h.Lines = append(h.Lines, Line{Kind: Equal, Text: a[s.old]})
		case Delete:
			h.OldLines++
			h.Lines = append(h.Lines, Line{Kind: Delete, Text: a[s.old]})
		case Insert:
			h.NewLines++
			h.Lines = append(h.Lines, Line{Kind: Insert, Text: b[s.new]})
		}
	}
	return h
}

// position returns the old and new line indexes at script[at], counting
// the lines consumed by the steps before it.
func position(script []step, at int) (oldPos, newPos int) {
	for _, s := range script[:at] {
		if s.kind != Insert {
			oldPos++
		}
		if s.kind != Delete {
			newPos++
		}
	}
	return oldPos, newPos
}

// maxEditDistance bounds the Myers search. Past it, the lines between the
// common prefix and suffix are replaced wholesale.
const maxEditDistance = 1024

// editScript returns an edit script turning a into b. The common prefix and
// suffix are matched directly; only the lines between them are searched.
func editScript(a, b []string) []step {
	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix &&
		a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	midA := a[prefix : len(a)-suffix]
	midB := b[prefix : len(b)-suffix]
	middle, ok := shortestEdit(midA, midB, maxEditDistance)
	if !ok {
		middle = replaceAll(len(midA), len(midB))
	}

	script := make([]step, 0, prefix+len(middle)+suffix)
	for i := range prefix {
		script = append(script, step{kind: Equal, old: i, new: i})
	}
	for _, s := range middle {
		if s.old >= 0 {
			s.old += prefix
		}
		if s.new >= 0 {
			s.new += prefix
		}
		script = append(script, s)
	}
	for i := range suffix {
		script = append(script, step{kind: Equal, old: len(a) - suffix + i, new: len(b) - suffix + i})
	}
	return script
}

// replaceAll deletes n old lines and inserts m new ones.
func replaceAll(n, m int) []step {
	script := make([]step, 0, n+m)
	for i := range n {
		script = append(script, step{kind: Delete, old: i, new: -1})
	}
	for i := range m {
		script = append(script, step{kind: Insert, old: -1, new: i})
	}
	return script
}

// shortestEdit computes a minimal edit script with the Myers algorithm. It
// reports false when more than maxD edits are needed.
func shortestEdit(a, b []string, maxD int) ([]step, bool) {
	n, m := len(a), len(b)
	limit := n + m
	if limit == 0 {
		return nil, true
	}

	// v[offset+k] is the furthest x reached on diagonal k.
	offset := limit + 1
	v := make([]int, 2*limit+3)

	// trace[d] holds diagonals -d..d of v as they were before step d.
	var trace [][]int

	for d := 0; d <= min(limit, maxD); d++ {
		trace = append(trace, slices.Clone(v[offset-d:offset+d+1]))

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k

			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[offset+k] = x

			if x >= n && y >= m {
				return backtrack(trace, n, m), true
			}
		}
	}
	return nil, false
}

// backtrack walks the saved frontiers from the end of both texts back to
// the start and returns the edit script in forward order.
func backtrack(trace [][]int, n, m int) []step {
	x, y := n, m
	var script []step

	for d := len(trace) - 1; d > 0; d-- {
		w := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && w[k-1+d] < w[k+1+d]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := w[prevK+d]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			script = append(script, step{kind: Equal, old: x, new: y})
		}

		if x == prevX {
			script = append(script, step{kind: Insert, old: -1, new: prevY})
		} else {
			script = append(script, step{kind: Delete, old: prevX, new: -1})
		}
		x, y = prevX, prevY
	}

	// Step 0 is a single snake from the origin.
	for x > 0 && y > 0 {
		x--
		y--
		script = append(script, step{kind: Equal, old: x, new: y})
	}

	slices.Reverse(script)
	return script
}

// splitLines splits text into lines, each keeping its trailing newline.
// An empty string produces zero lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func writeHunk(b *strings.Builder, h Hunk) {
	fmt.Fprintf(b, "@@ -%s +%s @@\n", rangeHeader(h.OldStart, h.OldLines), rangeHeader(h.NewStart, h.NewLines))

	for _, l := range h.Lines {
		switch l.Kind {
		case Equal:
			b.WriteByte(' ')
		case Delete:
			b.WriteByte('-')
		case Insert:
			b.WriteByte('+')
		}
		b.WriteString(l.Text)
		if !strings.HasSuffix(l.Text, "\n") {
			b.WriteString("\n\\ No newline at end of file\n")
		}
	}
}

// rangeHeader renders a 0-based start and count as a unified diff range.
// An empty range names the line before it.
func rangeHeader(start, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", start)
	}
	return fmt.Sprintf("%d,%d", start+1, count)
}
