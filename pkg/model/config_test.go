package model

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("TIME_TRACKER_DIR", "")

	cfg := DefaultConfig()
	home, _ := os.UserHomeDir()

	assert.Equal(t, filepath.Join(home, ".time_tracker"), cfg.Root)
	assert.Equal(t, 30*time.Second, cfg.ProbeInterval)
	assert.Equal(t, 180*time.Second, cfg.NotifyInterval)
	assert.Equal(t, "desktop", cfg.Notifier)
}

func TestDefaultConfigEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TIME_TRACKER_DIR", tmpDir)

	cfg := DefaultConfig()
	assert.Equal(t, tmpDir, cfg.Root)
	assert.Equal(t, filepath.Join(tmpDir, "current_session.json"), cfg.SessionFile())
	assert.Equal(t, filepath.Join(tmpDir, "time_logs.csv"), cfg.LogFile())
	assert.Equal(t, filepath.Join(tmpDir, "daemon.pid"), cfg.PIDFile())
}

func TestLoadConfigNoFile(t *testing.T) {
	t.Setenv("TIME_TRACKER_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverlay(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TIME_TRACKER_DIR", tmpDir)

	yaml := "probe_interval_seconds: 5\nnotification_interval_seconds: 60\nnotifier: console\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.ProbeInterval)
	assert.Equal(t, 60*time.Second, cfg.NotifyInterval)
	assert.Equal(t, "console", cfg.Notifier)
}

func TestLoadConfigPartialOverlay(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TIME_TRACKER_DIR", tmpDir)

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("notifier: console\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.ProbeInterval)
	assert.Equal(t, "console", cfg.Notifier)
}

func TestLoadConfigBadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TIME_TRACKER_DIR", tmpDir)

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("probe_interval_seconds: sometimes\n"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestCurrentUser(t *testing.T) {
	t.Setenv("USER", "alice")
	t.Setenv("USERNAME", "")
	assert.Equal(t, "alice", CurrentUser())

	t.Setenv("USER", "")
	t.Setenv("USERNAME", "bob")
	assert.Equal(t, "bob", CurrentUser())

	t.Setenv("USERNAME", "")
	assert.Equal(t, "unknown", CurrentUser())
}

func TestSessionStart(t *testing.T) {
	sess := Session{StartTime: "2025-10-06T09:15:00"}
	start, err := sess.Start()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 6, 9, 15, 0, 0, time.Local), start)

	_, err = Session{StartTime: "yesterday"}.Start()
	assert.Error(t, err)
}
