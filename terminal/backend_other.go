//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import "github.com/pkg/errors"

// otherBackend reports raw mode as unavailable on platforms without termios
type otherBackend struct{}

func newBackend(int) Backend {
	return otherBackend{}
}

func (otherBackend) Init() error {
	return errors.New("raw terminal mode is not supported on this platform")
}

func (otherBackend) Fini() error {
	return nil
}
