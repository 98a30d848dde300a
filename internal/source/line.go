package source

import "strings"

// CommentMarker introduces a comment that runs to the end of the line.
const CommentMarker = "//"

// Span is a piece of a line's code segment. Literal spans are string or
// character literals, quotes included, and are never rewritten.
type Span struct {
	Text    string
	Literal bool
}

// Line is a single source line with the views the rules need.
type Line struct {
	Text     string
	literals [][2]int // [start, end) byte ranges of string literals.
	comment  int      // byte offset of the comment marker, -1 if none.
}

// Parse scans text for string literals and the first comment marker that
// is not inside one.
func Parse(text string) Line {
	literals, comment := scan(text)
	return Line{Text: text, literals: literals, comment: comment}
}

// scan walks text once. Literals open with ' or " and close on the same
// quote; a backslash escapes the next byte. An unterminated literal runs to
// the end of the line.
func scan(text string) (literals [][2]int, comment int) {
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"' || c == '\'':
			start := i
			i++
			for i < len(text) && text[i] != c {
				if text[i] == '\\' {
					i++
				}
				i++
			}
			end := min(i+1, len(text))
			literals = append(literals, [2]int{start, end})
			i = end - 1
		case strings.HasPrefix(text[i:], CommentMarker):
			return literals, i
		}
	}
	return literals, -1
}

// Trimmed returns the line without leading and trailing whitespace.
func (l Line) Trimmed() string {
	return strings.TrimSpace(l.Text)
}

// IsBlank reports whether the line holds only whitespace.
func (l Line) IsBlank() bool {
	return l.Trimmed() == ""
}

// Indent returns the leading whitespace of the line. It is a view of the
// line as written; the indentation rule derives the new prefix from brace
// depth and never reads it.
func (l Line) Indent() string {
	return l.Text[:len(l.Text)-len(strings.TrimLeft(l.Text, " \t"))]
}

// CommentIndex returns the byte offset of the comment marker, or -1.
func (l Line) CommentIndex() int {
	return l.comment
}

// Code returns the text before the comment marker (the whole line when
// there is no comment).
func (l Line) Code() string {
	if l.comment < 0 {
		return l.Text
	}
	return l.Text[:l.comment]
}

// Comment returns the text from the comment marker to the end of the line.
func (l Line) Comment() string {
	if l.comment < 0 {
		return ""
	}
	return l.Text[l.comment:]
}

// Spans splits the code segment into alternating code and literal spans.
// Empty spans are omitted.
func (l Line) Spans() []Span {
	code := l.Code()
	spans := make([]Span, 0, 2*len(l.literals)+1)
	pos := 0
	for _, lit := range l.literals {
		if lit[0] > pos {
			spans = append(spans, Span{Text: code[pos:lit[0]]})
		}
		spans = append(spans, Span{Text: code[lit[0]:lit[1]], Literal: true})
		pos = lit[1]
	}
	if pos < len(code) {
		spans = append(spans, Span{Text: code[pos:]})
	}
	return spans
}

// MapCode applies fn to every non-literal span of the code segment and
// returns the reassembled line with the comment segment unchanged.
func (l Line) MapCode(fn func(string) string) string {
	var b strings.Builder
	b.Grow(len(l.Text))
	for _, s := range l.Spans() {
		if s.Literal {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(fn(s.Text))
	}
	b.WriteString(l.Comment())
	return b.String()
}

// BraceDelta returns the number of '{' minus the number of '}' in the code
// segment, ignoring string literals.
func (l Line) BraceDelta() int {
	delta := 0
	for _, s := range l.Spans() {
		if s.Literal {
			continue
		}
		delta += strings.Count(s.Text, "{") - strings.Count(s.Text, "}")
	}
	return delta
}
