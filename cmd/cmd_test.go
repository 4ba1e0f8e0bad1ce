package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/josephlewis42/pipesh/core/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestLogsReport(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")

	fd, err := os.Create(logPath)
	require.NoError(t, err)
	eventLogger := logger.NewJsonLinesLogRecorder(fd)
	session := eventLogger.NewSession()
	session.Record(&logger.RunLine{Line: "ls | grep a", Stages: 2})
	session.Record(&logger.UnknownCommand{Command: []string{"foo"}})
	require.NoError(t, fd.Close())

	out := runRoot(t, "--config", dir, "logs", "report", logPath)
	assert.Contains(t, out, "log_entries: 2")

	out = runRoot(t, "--config", dir, "logs", "bugs", logPath)
	assert.Contains(t, out, "foo")
}

func TestBuiltins(t *testing.T) {
	out := runRoot(t, "builtins")

	for _, name := range []string{"cd\t", "help\t", "filter:grep\t", "filter:less\t"} {
		assert.Contains(t, out, name)
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	runRoot(t, "--config", dir, "init")

	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
	assert.FileExists(t, filepath.Join(dir, "private_key"))
}
