// Package writer provides an indenting source printer shared by the emitters
package writer

import (
	"fmt"
	"strings"
)

// Writer accumulates generated source with consistent indentation
type Writer struct {
	sb           strings.Builder
	indentLevel  int
	indentString string
	linePrefix   string
	needsIndent  bool
}

// NewWriter creates a new code writer with specified indentation string
func NewWriter(indentString string) *Writer {
	return &Writer{
		indentString: indentString,
		needsIndent:  true,
	}
}

// Indent increases the indentation level
func (w *Writer) Indent() {
	w.indentLevel++
	w.updatePrefix()
}

// Dedent decreases the indentation level
func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
		w.updatePrefix()
	}
}

// Write writes a string without adding a newline
func (w *Writer) Write(s string) {
	if w.needsIndent && s != "" {
		w.sb.WriteString(w.linePrefix)
		w.needsIndent = false
	}
	w.sb.WriteString(s)
}

// Writef writes a formatted string without adding a newline
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteLine writes a string and adds a newline
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.Newline()
}

// WriteLinef writes a formatted string and adds a newline
func (w *Writer) WriteLinef(format string, args ...any) {
	w.Writef(format, args...)
	w.Newline()
}

// Newline adds a newline character
func (w *Writer) Newline() {
	w.sb.WriteString("\n")
	w.needsIndent = true
}

// BlankLine adds an empty line unless the output already ends with one
func (w *Writer) BlankLine() {
	if w.sb.Len() > 0 && !strings.HasSuffix(w.sb.String(), "\n\n") {
		w.Newline()
	}
}

// String returns the generated code as a string
func (w *Writer) String() string {
	return w.sb.String()
}

// Bytes returns the generated code as a byte slice
func (w *Writer) Bytes() []byte {
	return []byte(w.sb.String())
}

func (w *Writer) updatePrefix() {
	w.linePrefix = strings.Repeat(w.indentString, w.indentLevel)
}

// WriteBlock writes content inside a block with proper indentation
// Example: WriteBlock("public Foo foo() {", "}", func() { w.WriteLine("return foo;") })
func (w *Writer) WriteBlock(opener, closer string, content func()) {
	w.WriteLine(opener)
	w.Indent()
	content()
	w.Dedent()
	w.WriteLine(closer)
}

// WriteSeparated calls item for 0..n-1 with a blank line between items
func (w *Writer) WriteSeparated(n int, item func(i int)) {
	for i := 0; i < n; i++ {
		if i > 0 {
			w.Newline()
		}
		item(i)
	}
}

// WriteComment writes a single-line // comment
func (w *Writer) WriteComment(comment string) {
	if comment == "" {
		w.WriteLine("//")
		return
	}
	w.WriteLinef("// %s", comment)
}

// WriteDocComment writes a // documentation comment block, one line per line of doc
func (w *Writer) WriteDocComment(doc string) {
	for _, line := range docLines(doc) {
		w.WriteComment(line)
	}
}

// WriteBlockDoc writes a /** ... */ documentation block as used by Java and
// TypeScript. A single line doc is kept on one line.
func (w *Writer) WriteBlockDoc(doc string) {
	lines := docLines(doc)
	switch len(lines) {
	case 0:
		return
	case 1:
		w.WriteLinef("/** %s */", lines[0])
	default:
		w.WriteLine("/**")
		for _, line := range lines {
			if line == "" {
				w.WriteLine(" *")
				continue
			}
			w.WriteLinef(" * %s", line)
		}
		w.WriteLine(" */")
	}
}

func docLines(doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
