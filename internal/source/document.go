// Package source provides the line views the formatter works on: a document
// split into lines, and per-line code, comment and string-literal spans.
package source

import "strings"

// Document is the ordered line sequence of a single formatting call.
type Document []string

// Split breaks text into lines on '\n'. The result always has at least one
// element; text ending in a newline yields a trailing empty line.
func Split(text string) Document {
	return strings.Split(text, "\n")
}

// String joins the lines back into text.
func (d Document) String() string {
	return strings.Join(d, "\n")
}

// Map returns a new document with fn applied to every line.
func (d Document) Map(fn func(string) string) Document {
	out := make(Document, len(d))
	for i, line := range d {
		out[i] = fn(line)
	}
	return out
}

// Clone returns a copy of the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	copy(out, d)
	return out
}
