package bed

import (
	"encoding"
	"io"
	"strings"
)

var newline = []byte{'\n'}

// Writer writes records of a single BED type as tab-delimited lines.
// The type parameter fixes the record type, so a stream can never mix
// record shapes.  The first error encountered sticks: later writes
// return it without touching the underlying writer.
type Writer[T encoding.TextMarshaler] struct {
	w   io.Writer
	err error
}

// NewWriter constructs a Writer for record type T writing to w.
func NewWriter[T encoding.TextMarshaler](w io.Writer) *Writer[T] {
	return &Writer[T]{w: w}
}

// Write writes rec as one body line.
func (w *Writer[T]) Write(rec T) error {
	if w.err != nil {
		return w.err
	}
	text, err := rec.MarshalText()
	if err != nil {
		w.err = err
		return w.err
	}
	w.writeln(string(text))
	return w.err
}

// WriteComment writes comment, one output line per comment line.  Lines
// already starting with a comment prefix ("#", "browser", "track") are
// written verbatim; anything else gets a "# " prefix.
func (w *Writer[T]) WriteComment(comment string) error {
	lines := strings.Split(comment, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for _, line := range lines {
		if isComment(line) {
			w.writeln(line)
		} else {
			w.writeln("# " + line)
		}
	}
	return w.err
}

func (w *Writer[T]) writeln(line string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, line)
	if w.err == nil {
		_, w.err = w.w.Write(newline)
	}
}
