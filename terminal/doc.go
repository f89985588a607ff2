// @focus: #sys { term }
// Package terminal provides the raw-mode session used by the password prompt.
//
// Features:
//   - Raw input mode (no echo, no line buffering) with guaranteed restore
//   - Direct output to the controlling terminal device, never stdout
//   - UTF-8 rune decoding of stdin with hard failure on malformed input
//   - Cursor-relative ANSI helpers (hide/show, save/restore, move left, SGR)
//   - Restore on SIGINT/SIGTERM/SIGHUP and on panic via EmergencyReset
//
// Signals are left enabled in raw mode so Ctrl-C still interrupts; the
// signal guard restores the saved termios before the process exits.
package terminal
