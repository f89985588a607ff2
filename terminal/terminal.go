package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ttyPath is the controlling terminal device
const ttyPath = "/dev/tty"

// signalTrailer ends the prompt line and shows the cursor on interruption
var signalTrailer = append([]byte("\n"), csiCursorShow...)

// ErrNotTerminal is returned by Init when the input is not a terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Terminal is one raw-mode prompt session.
// Input is read from stdin; interactive output goes to the terminal device
// so stdout stays free for the result.
type Terminal struct {
	backend Backend

	output *Output
	input  *RuneReader
	closer io.Closer

	// exit terminates the process after a signal restore; replaced in tests
	exit func(code int)

	guard *signalGuard

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// Open opens the controlling terminal for output and prepares raw-mode
// control over stdin
func Open() (*Terminal, error) {
	tty, err := os.OpenFile(ttyPath, os.O_WRONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", ttyPath)
	}
	t := New(newBackend(int(os.Stdin.Fd())), tty, os.Stdin)
	t.closer = tty
	return t, nil
}

// New assembles a terminal from explicit parts
func New(backend Backend, out io.Writer, in io.Reader) *Terminal {
	return &Terminal{
		backend: backend,
		output:  NewOutput(out),
		input:   NewRuneReader(in),
		exit:    os.Exit,
	}
}

// Output returns the interactive output stream
func (t *Terminal) Output() *Output {
	return t.output
}

// Input returns the decoded keystroke stream
func (t *Terminal) Input() *RuneReader {
	return t.input
}

// Init enters raw mode and installs the signal guard
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return errors.Wrap(err, "enter raw mode")
	}
	log.Debug("terminal: raw mode entered")

	t.guard = newSignalGuard(t.onSignal)
	t.initialized = true
	return nil
}

// Fini restores the captured terminal mode. Safe to call multiple times;
// only the first call after a successful Init does any work.
func (t *Terminal) Fini() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	t.finalized = true

	if t.guard != nil {
		t.guard.stop()
	}

	// Leave the cursor usable even if a render was interrupted
	t.output.ShowCursor()
	flushErr := t.output.Flush()

	if err := t.backend.Fini(); err != nil {
		return errors.Wrap(err, "leave raw mode")
	}
	log.Debug("terminal: mode restored")
	return flushErr
}

// Close restores the terminal and releases the device handle
func (t *Terminal) Close() error {
	err := t.Fini()
	if t.closer != nil {
		if cerr := t.closer.Close(); err == nil {
			err = cerr
		}
		t.closer = nil
	}
	return err
}

// onSignal runs on the guard goroutine when a terminating signal arrives
func (t *Terminal) onSignal(sig os.Signal, code int) {
	log.WithField("signal", sig.String()).Debug("terminal: interrupted")
	// Any frame still being built is dropped; the device only sees whole frames
	t.output.Interrupt(signalTrailer)
	if err := t.Fini(); err != nil {
		// Raw mode could not be undone through the saved state
		EmergencyReset(os.Stderr)
	}
	t.exit(code)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiReset)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
