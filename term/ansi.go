// Package term provides the terminal frame sinks used by spinny.
package term

import (
	"bufio"
	"fmt"
	"io"
)

const csi = "\x1b["

// ANSI redraws frames in place on a VT100-compatible terminal: after each
// frame the cursor is moved back up to the first row and the line is
// cleared, so the next frame overwrites the previous one without scrolling.
type ANSI struct {
	w *bufio.Writer
}

// NewANSI returns an ANSI sink writing to w.
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: bufio.NewWriter(w)}
}

// Draw writes rows, one line each.
func (a *ANSI) Draw(rows []string) error {
	for _, row := range rows {
		a.w.WriteString(row)
		a.w.WriteByte('\n')
	}
	return a.flush("draw")
}

// Rewind moves the cursor up rows lines and clears the current line.
func (a *ANSI) Rewind(rows int) error {
	if rows > 0 {
		fmt.Fprintf(a.w, csi+"%dA", rows)
	}
	a.w.WriteString(csi + "2K")
	return a.flush("rewind")
}

// Release moves the cursor below a rewound frame of rows lines so later
// output does not land on top of it.
func (a *ANSI) Release(rows int) error {
	if rows > 0 {
		fmt.Fprintf(a.w, csi+"%dB", rows)
	}
	return a.flush("release")
}

func (a *ANSI) flush(op string) error {
	if err := a.w.Flush(); err != nil {
		return fmt.Errorf("term: %s: %w", op, err)
	}
	return nil
}
