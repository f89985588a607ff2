// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	csiEnd   = []byte("m")
	csiReset = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorLeft = []byte("\x1b[D")

	// DECSC/DECRC save and restore position plus attributes
	escCursorSave    = []byte("\x1b7")
	escCursorRestore = []byte("\x1b8")
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorBackward writes cursor backward N columns
// CUB with a zero count moves one column on most terminals, so n <= 0 writes nothing
func writeCursorBackward(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	if n == 1 {
		w.Write(csiCursorLeft)
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('D')
}

// writeSGR writes a single-parameter Select Graphic Rendition sequence
func writeSGR(w *bufio.Writer, code int) {
	w.Write(csi)
	writeInt(w, code)
	w.Write(csiEnd)
}
