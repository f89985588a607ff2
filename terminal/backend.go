package terminal

// Backend abstracts platform-specific terminal mode operations.
// Init and Fini bracket a raw-mode session; the prior attributes are
// captured once by Init and restored exactly once by Fini.
type Backend interface {
	// Init captures the current attributes and enters raw input mode
	Init() error

	// Fini restores the captured attributes; no-op if Init did not succeed
	Fini() error
}
