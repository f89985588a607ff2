package main

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileName   = "askpass.log"
	maxLogSizeMB  = 10
	maxLogSize    = maxLogSizeMB << 20
	maxLogBackups = 3
)

// logDir holds debug logs; never stdout or the terminal device
var logDir = defaultLogDir()

// defaultLogDir follows XDG: $XDG_STATE_HOME/askpass or ~/.local/state/askpass
func defaultLogDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); filepath.IsAbs(dir) {
		return filepath.Join(dir, "askpass")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "askpass")
	}
	return filepath.Join(home, ".local", "state", "askpass")
}

// setupLogging routes logrus to a size-rotated debug log when enabled, or
// discards everything. Returns the log for the caller to close, nil otherwise.
func setupLogging(debug bool) io.Closer {
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})

	if !debug {
		log.SetOutput(io.Discard)
		log.SetLevel(log.InfoLevel)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o700); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	// Rotates on write once the file reaches MaxSize
	logger := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		LocalTime:  true,
	}

	log.SetOutput(logger)
	log.SetLevel(log.DebugLevel)
	log.WithField("version", version).Debug("askpass: logging started")
	return logger
}
