package terminal

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// Control codes the prompt reacts to
const (
	KeyEnter     = '\r'
	KeyNewline   = '\n'
	KeyBackspace = 0x7f // DEL, sent by most terminals for Backspace
	KeyCtrlH     = 0x08 // BS, sent by some terminals for Backspace
)

// DecodeError reports a malformed UTF-8 sequence on input
type DecodeError struct {
	Offset int64 // byte offset of the invalid byte in the input stream
	Byte   byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid utf-8 byte 0x%02x at input offset %d", e.Byte, e.Offset)
}

// RuneReader decodes one Unicode scalar per call from raw input
// Partial multi-byte sequences are completed by further blocking reads
type RuneReader struct {
	r      *bufio.Reader
	offset int64
}

// NewRuneReader wraps a raw byte source
func NewRuneReader(r io.Reader) *RuneReader {
	return &RuneReader{r: bufio.NewReaderSize(r, 64)}
}

// ReadRune implements io.RuneReader
// Returns *DecodeError for malformed input and io.EOF when input closes
func (r *RuneReader) ReadRune() (rune, int, error) {
	ch, size, err := r.r.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	if ch == utf8.RuneError && size == 1 {
		// Recover the offending byte for the error report
		_ = r.r.UnreadRune()
		b, _ := r.r.ReadByte()
		off := r.offset
		r.offset++
		return 0, 0, &DecodeError{Offset: off, Byte: b}
	}
	r.offset += int64(size)
	return ch, size, nil
}
