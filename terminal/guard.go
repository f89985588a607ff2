package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// guardedSignals maps each terminating signal to the shell-style exit status
var guardedSignals = map[os.Signal]int{
	syscall.SIGINT:  130,
	syscall.SIGTERM: 143,
	syscall.SIGHUP:  129,
}

// signalGuard watches for terminating signals while raw mode is active
type signalGuard struct {
	sigCh  chan os.Signal
	stopCh chan struct{}
	doneCh chan struct{}
}

// newSignalGuard starts watching; handler receives the signal and exit status
func newSignalGuard(handler func(sig os.Signal, code int)) *signalGuard {
	g := &signalGuard{
		sigCh:  make(chan os.Signal, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}

	sigs := make([]os.Signal, 0, len(guardedSignals))
	for sig := range guardedSignals {
		sigs = append(sigs, sig)
	}
	signal.Notify(g.sigCh, sigs...)

	go func() {
		defer close(g.doneCh)
		defer signal.Stop(g.sigCh)

		select {
		case <-g.stopCh:
			return
		case sig := <-g.sigCh:
			handler(sig, guardedSignals[sig])
		}
	}()
	return g
}

// stop releases the signal subscription
func (g *signalGuard) stop() {
	select {
	case <-g.stopCh:
		return
	default:
	}
	close(g.stopCh)
}
