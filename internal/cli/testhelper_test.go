package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/giannimassi/timetrack/pkg/model"
)

// captureStdout captures os.Stdout output from fn.
// Tests using this helper cannot use t.Parallel() since they mutate os.Stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	return buf.String()
}

// setupTracker points the tracker at a fresh temp directory with the console
// notifier configured, and stubs out daemon spawning.
func setupTracker(t *testing.T) model.Config {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("TIME_TRACKER_DIR", tmpDir)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("notifier: console\n"), 0644))

	origSpawn := spawnDaemon
	spawnDaemon = func() error { return nil }
	t.Cleanup(func() { spawnDaemon = origSpawn })

	cfg, err := model.LoadConfig()
	require.NoError(t, err)
	return cfg
}

// runCmd executes the root command with args, returning captured stdout and
// the execution error.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var err error
	out := captureStdout(t, func() {
		cmd := NewRootCmd()
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs(args)
		err = cmd.Execute()
	})
	return out, err
}
