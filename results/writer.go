package results

import (
	"bufio"
	"fmt"
	"io"
)

// Writer writes records one per line through a buffer. Nothing reaches the
// underlying writer before Flush or a full buffer.
type Writer struct {
	w     *bufio.Writer
	lines int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Emit writes a single record.
func (w *Writer) Emit(r Record) error {
	if _, err := fmt.Fprintln(w.w, r.String()); err != nil {
		return fmt.Errorf("writing result %v: %w", r, err)
	}
	w.lines++
	return nil
}

func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flushing results: %w", err)
	}
	return nil
}

// Lines returns the number of records emitted so far.
func (w *Writer) Lines() int {
	return w.lines
}
