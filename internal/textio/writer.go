// Package textio provides the indented text sink that diagnostics and token
// dumps are written through.
package textio

import (
	"bytes"
	"fmt"
	"io"
)

// IndentWidth is the number of spaces one indentation level adds.
const IndentWidth = 2

// Writer wraps an io.Writer and prefixes every non-empty line with the
// current indentation. It remembers the first write error and drops all
// output after it; check Err once the writing is done.
type Writer struct {
	w           io.Writer
	indent      int
	atLineStart bool
	err         error
}

// NewWriter returns a Writer with no indentation on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, atLineStart: true}
}

// Write implements io.Writer. The returned count is len(p) on success even
// though indentation adds bytes to the underlying writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n := len(p)
	for len(p) > 0 {
		if p[0] == '\n' {
			w.emit(p[:1])
			w.atLineStart = true
			p = p[1:]
			continue
		}
		end := bytes.IndexByte(p, '\n')
		if end < 0 {
			end = len(p)
		}
		w.writeIndent()
		w.emit(p[:end])
		p = p[end:]
	}
	if w.err != nil {
		return 0, w.err
	}
	return n, nil
}

// WriteString writes s.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Printf formats according to a format specifier and writes the result.
func (w *Writer) Printf(format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// Println writes its operands separated by spaces, followed by a newline.
func (w *Writer) Println(args ...any) {
	fmt.Fprintln(w, args...)
}

// Err returns the first error returned by the underlying writer.
func (w *Writer) Err() error {
	return w.err
}

// Level returns the current indentation in spaces.
func (w *Writer) Level() int {
	return w.indent
}

// Indent adds one indentation level. The level stays until Pop is called on
// the returned guard; pair it with defer.
func (w *Writer) Indent() *IndentGuard {
	w.indent += IndentWidth
	return &IndentGuard{w: w}
}

// WithIndent runs fn one indentation level deeper and restores the previous
// level however fn exits, including by panic.
func (w *Writer) WithIndent(fn func() error) error {
	g := w.Indent()
	defer g.Pop()
	return fn()
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	w.atLineStart = false
	if w.indent == 0 {
		return
	}
	w.emit(bytes.Repeat([]byte{' '}, w.indent))
}

func (w *Writer) emit(p []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(p)
}

// IndentGuard restores the indentation level that was active before the
// matching Indent call.
type IndentGuard struct {
	w *Writer
}

// Pop removes the indentation level. Calling it more than once is a no-op.
func (g *IndentGuard) Pop() {
	if g.w == nil {
		return
	}
	g.w.indent -= IndentWidth
	if g.w.indent < 0 {
		g.w.indent = 0
	}
	g.w = nil
}
