//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	fd      int
	oldTerm *term.State
}

func newBackend(fd int) Backend {
	return &unixBackend{fd: fd}
}

// Init enters a cbreak-style raw mode: no echo, no canonical line editing,
// no extended input processing. ISIG and ICRNL are kept so Ctrl-C still
// raises SIGINT and Enter still arrives as '\n'.
func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.fd) {
		return ErrNotTerminal
	}

	old, err := term.GetState(b.fd)
	if err != nil {
		return errors.Wrap(err, "get terminal state")
	}

	termios, err := unix.IoctlGetTermios(b.fd, ioctlReadTermios)
	if err != nil {
		return errors.Wrap(err, "read termios")
	}
	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(b.fd, ioctlWriteTermios, termios); err != nil {
		return errors.Wrap(err, "set raw mode")
	}

	b.oldTerm = old
	return nil
}

func (b *unixBackend) Fini() error {
	if b.oldTerm == nil {
		return nil
	}
	old := b.oldTerm
	b.oldTerm = nil
	if err := term.Restore(b.fd, old); err != nil {
		return errors.Wrap(err, "restore terminal state")
	}
	return nil
}
