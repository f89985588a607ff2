package terminal

import (
	"bytes"
	"errors"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput_Sequences(t *testing.T) {
	tests := []struct {
		name  string
		write func(o *Output)
		want  string
	}{
		{"hide", (*Output).HideCursor, "\x1b[?25l"},
		{"show", (*Output).ShowCursor, "\x1b[?25h"},
		{"save", (*Output).SaveCursor, "\x1b7"},
		{"restore", (*Output).RestoreCursor, "\x1b8"},
		{"back zero", func(o *Output) { o.CursorBackward(0) }, ""},
		{"back negative", func(o *Output) { o.CursorBackward(-3) }, ""},
		{"back one", func(o *Output) { o.CursorBackward(1) }, "\x1b[D"},
		{"back four", func(o *Output) { o.CursorBackward(4) }, "\x1b[4D"},
		{"back large", func(o *Output) { o.CursorBackward(1234) }, "\x1b[1234D"},
		{"colored", func(o *Output) { o.Colored(33, "Enter < $ > ") }, "\x1b[33mEnter < $ > \x1b[0m"},
		{"colored rune", func(o *Output) { o.ColoredRune(36, '󱃓') }, "\x1b[36m󱃓\x1b[0m"},
		{"rune", func(o *Output) { o.WriteRune('*') }, "*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			o := NewOutput(&buf)
			tt.write(o)
			require.NoError(t, o.Flush())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestOutput_BuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	o := NewOutput(&buf)
	o.WriteString("abc")
	assert.Zero(t, buf.Len())
	require.NoError(t, o.Flush())
	assert.Equal(t, "abc", buf.String())
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestOutput_StickyError(t *testing.T) {
	boom := errors.New("boom")
	o := NewOutput(failWriter{boom})
	o.WriteString("x")
	assert.ErrorIs(t, o.Flush(), boom)
	o.WriteString("y")
	assert.ErrorIs(t, o.Flush(), boom)
}

// drawFrame writes one indicator redraw the way the spinner does
func drawFrame(o *Output) {
	o.HideCursor()
	o.SaveCursor()
	o.CursorBackward(3)
	o.ColoredRune(36, 'x')
	o.RestoreCursor()
	o.ShowCursor()
}

const frame = "\x1b[?25l\x1b7\x1b[3D\x1b[36mx\x1b[0m\x1b8\x1b[?25h"

func TestOutput_InterruptDropsPartialFrame(t *testing.T) {
	var buf bytes.Buffer
	o := NewOutput(&buf)

	drawFrame(o)
	require.NoError(t, o.Flush())
	o.HideCursor()
	o.SaveCursor()

	require.NoError(t, o.Interrupt([]byte("\n")))
	assert.Equal(t, frame+"\n", buf.String())

	// Later writes and interrupts are ignored
	drawFrame(o)
	n, err := o.Write([]byte("late"))
	assert.Equal(t, 4, n)
	require.NoError(t, err)
	require.NoError(t, o.Flush())
	require.NoError(t, o.Interrupt([]byte("again")))
	assert.Equal(t, frame+"\n", buf.String())
}

func TestOutput_InterruptConcurrentWithRender(t *testing.T) {
	var buf bytes.Buffer
	o := NewOutput(&buf)

	var (
		stop   atomic.Bool
		frames atomic.Int64
		wg     sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for !stop.Load() {
			drawFrame(o)
			o.WriteString("*")
			_ = o.Flush()
			frames.Add(1)
		}
	}()

	for frames.Load() < 3 {
		runtime.Gosched()
	}
	require.NoError(t, o.Interrupt([]byte("\n")))
	stop.Store(true)
	wg.Wait()

	got := buf.String()
	require.True(t, strings.HasSuffix(got, "\n"))
	assert.Empty(t, strings.ReplaceAll(strings.TrimSuffix(got, "\n"), frame+"*", ""),
		"device must only see whole frames")
}
