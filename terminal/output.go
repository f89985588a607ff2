// @lixen: #focus{sys[term,io,output]}
package terminal

import (
	"bufio"
	"io"
	"sync"
)

// Output buffers writes to the terminal device
// Write errors are sticky inside the buffered writer and surface on Flush
// Safe for concurrent use; the signal guard interrupts through Interrupt
type Output struct {
	mu     sync.Mutex
	dst    io.Writer
	writer *bufio.Writer
	halted bool
}

// NewOutput wraps w for terminal output
func NewOutput(w io.Writer) *Output {
	return &Output{dst: w, writer: bufio.NewWriterSize(w, 4096)}
}

// with runs fn on the buffer unless output was interrupted
func (o *Output) with(fn func(w *bufio.Writer)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.halted {
		return
	}
	fn(o.writer)
}

// HideCursor makes the text cursor invisible
func (o *Output) HideCursor() { o.with(func(w *bufio.Writer) { w.Write(csiCursorHide) }) }

// ShowCursor makes the text cursor visible
func (o *Output) ShowCursor() { o.with(func(w *bufio.Writer) { w.Write(csiCursorShow) }) }

// SaveCursor records the cursor position for RestoreCursor
func (o *Output) SaveCursor() { o.with(func(w *bufio.Writer) { w.Write(escCursorSave) }) }

// RestoreCursor returns to the last saved position
func (o *Output) RestoreCursor() { o.with(func(w *bufio.Writer) { w.Write(escCursorRestore) }) }

// CursorBackward moves the cursor n columns left, n <= 0 is a no-op
func (o *Output) CursorBackward(n int) {
	o.with(func(w *bufio.Writer) { writeCursorBackward(w, n) })
}

// Colored writes s wrapped in an SGR color code and a reset
func (o *Output) Colored(code int, s string) {
	o.with(func(w *bufio.Writer) {
		writeSGR(w, code)
		w.WriteString(s)
		w.Write(csiReset)
	})
}

// ColoredRune writes r wrapped in an SGR color code and a reset
func (o *Output) ColoredRune(code int, r rune) {
	o.with(func(w *bufio.Writer) {
		writeSGR(w, code)
		w.WriteRune(r)
		w.Write(csiReset)
	})
}

// WriteString writes s verbatim, escape sequences included
func (o *Output) WriteString(s string) { o.with(func(w *bufio.Writer) { w.WriteString(s) }) }

// WriteRune writes a single scalar
func (o *Output) WriteRune(r rune) { o.with(func(w *bufio.Writer) { w.WriteRune(r) }) }

// Write implements io.Writer so advisories can be printed through the same buffer
func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.halted {
		return len(p), nil
	}
	return o.writer.Write(p)
}

// Flush sends buffered bytes to the device, returning the first write error
func (o *Output) Flush() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.halted {
		return nil
	}
	return o.writer.Flush()
}

// Interrupt drops any partly built frame, writes p straight to the device
// and turns every later write into a no-op. Only the first call writes.
func (o *Output) Interrupt(p []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.halted {
		return nil
	}
	o.halted = true
	o.writer.Reset(o.dst)
	_, err := o.dst.Write(p)
	return err
}
