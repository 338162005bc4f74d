package model

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for timetrack.
type Config struct {
	Root           string        // Where the session record, log, and PID file live
	ProbeInterval  time.Duration // How often the reminder loop wakes
	NotifyInterval time.Duration // Minimum gap between reminders
	Notifier       string        // "desktop" or "console"
}

// DefaultConfig returns a Config rooted at ~/.time_tracker with the default
// intervals. TIME_TRACKER_DIR overrides the root when set.
func DefaultConfig() Config {
	root := os.Getenv("TIME_TRACKER_DIR")
	if root == "" {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, ".time_tracker")
	}
	return Config{
		Root:           root,
		ProbeInterval:  30 * time.Second,
		NotifyInterval: 180 * time.Second,
		Notifier:       "desktop",
	}
}

// LoadConfig returns DefaultConfig overlaid with config.yaml from the root
// directory, when present. A missing file is not an error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(cfg.ConfigFile())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var file struct {
		ProbeIntervalSeconds  int    `yaml:"probe_interval_seconds"`
		NotifyIntervalSeconds int    `yaml:"notification_interval_seconds"`
		Notifier              string `yaml:"notifier"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, err
	}

	if file.ProbeIntervalSeconds > 0 {
		cfg.ProbeInterval = time.Duration(file.ProbeIntervalSeconds) * time.Second
	}
	if file.NotifyIntervalSeconds > 0 {
		cfg.NotifyInterval = time.Duration(file.NotifyIntervalSeconds) * time.Second
	}
	if file.Notifier != "" {
		cfg.Notifier = file.Notifier
	}
	return cfg, nil
}

// SessionFile is the session record path; present iff tracking is active.
func (c Config) SessionFile() string {
	return filepath.Join(c.Root, "current_session.json")
}

// LogFile is the append-only CSV log path.
func (c Config) LogFile() string {
	return filepath.Join(c.Root, "time_logs.csv")
}

// PIDFile is the reminder daemon's PID file path.
func (c Config) PIDFile() string {
	return filepath.Join(c.Root, "daemon.pid")
}

// ConfigFile is the optional YAML config path.
func (c Config) ConfigFile() string {
	return filepath.Join(c.Root, "config.yaml")
}

// EnsureRoot creates the root directory if needed. Idempotent.
func (c Config) EnsureRoot() error {
	return os.MkdirAll(c.Root, 0755)
}

// CurrentUser resolves the acting user from the environment, falling back
// to "unknown" when no user variable is set.
func CurrentUser() string {
	keys := []string{"USER", "USERNAME"}
	if runtime.GOOS == "windows" {
		keys = []string{"USERNAME", "USER"}
	}
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return "unknown"
}
