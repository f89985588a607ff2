package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

// useLogDir points logging at a temporary directory for one test
func useLogDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "logs")
	prev := logDir
	logDir = dir
	t.Cleanup(func() {
		logDir = prev
		setupLogging(false)
	})
	return dir
}

// backups lists rotated log files in dir
func backups(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if name != logFileName && strings.HasPrefix(name, "askpass-") && filepath.Ext(name) == ".log" {
			names = append(names, name)
		}
	}
	return names
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := useLogDir(t)

	logger := setupLogging(false)
	assert.Nil(t, logger)
	assert.Equal(t, io.Discard, log.StandardLogger().Out)

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "log directory must not be created")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := useLogDir(t)

	logger := setupLogging(true)
	require.NotNil(t, logger)
	defer logger.Close()

	log.Debug("Test log message")

	info, err := os.Stat(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestSetupLogging_RotatesOversizedFile(t *testing.T) {
	dir := useLogDir(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	logPath := filepath.Join(dir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o600))

	logger := setupLogging(true)
	require.NotNil(t, logger)
	defer logger.Close()

	assert.NotEmpty(t, backups(t, dir), "expected a rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(maxLogSize))
}

func TestSetupLogging_RotatesWhileRunning(t *testing.T) {
	dir := useLogDir(t)

	logger := setupLogging(true)
	require.NotNil(t, logger)
	defer logger.Close()

	line := strings.Repeat("x", 64<<10)
	for i := 0; i < 170; i++ {
		log.Debug(line)
	}

	info, err := os.Stat(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(maxLogSize))
	assert.NotEmpty(t, backups(t, dir), "expected rotation during the session")
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	useLogDir(t)

	logger := setupLogging(true)
	require.NotNil(t, logger)
	defer logger.Close()

	out := log.StandardLogger().Out
	assert.IsType(t, &lumberjack.Logger{}, out)
	assert.NotEqual(t, os.Stdout, out)
	assert.NotEqual(t, os.Stderr, out)
}
