// Package daemon runs the background reminder loop for an active session.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/giannimassi/timetrack/internal/notify"
	"github.com/giannimassi/timetrack/internal/session"
)

// Reminder polls the session record and periodically delivers a reminder
// naming the current task. It owns no persisted state: the existence of the
// session record is its termination flag.
type Reminder struct {
	Sessions       *session.Store
	PIDFile        string // empty in the in-process form
	ProbeInterval  time.Duration
	NotifyInterval time.Duration
	Notifier       notify.Notifier
}

// Run blocks until the session record disappears or the context is
// cancelled. The elapsed-time bookkeeping uses time.Since, so wall-clock
// adjustments do not trigger reminder storms.
func (r *Reminder) Run(ctx context.Context) error {
	if r.PIDFile != "" {
		if err := r.writePID(); err != nil {
			return fmt.Errorf("write PID: %w", err)
		}
		defer os.Remove(r.PIDFile)
	}

	lastReminder := time.Now()

	ticker := time.NewTicker(r.ProbeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !r.Sessions.Exists() {
				return nil
			}
			if time.Since(lastReminder) < r.NotifyInterval {
				continue
			}
			if err := r.remind(); err != nil {
				fmt.Printf("exiting reminder loop: %v\n", err)
				return nil
			}
			lastReminder = time.Now()
		}
	}
}

// remind re-reads the session record so a description edited mid-session is
// honored, then delivers the reminder. Delivery failures are reported to
// stdout and do not stop the loop; an unreadable record does, since the loop
// cannot name the task it would be reminding about.
func (r *Reminder) remind() error {
	sess, err := r.Sessions.Read()
	if err != nil {
		return fmt.Errorf("read session record: %w", err)
	}

	hours := 0.0
	if start, err := sess.Start(); err == nil {
		hours = time.Since(start).Hours()
	}

	title := "Time Tracker Reminder"
	message := fmt.Sprintf("You've been working for %.1f hours\nCurrent task: %s", hours, sess.Description)
	if err := r.Notifier.Notify(title, message); err != nil {
		fmt.Printf("NOTIFICATION: %s - %s\n", title, message)
	}
	return nil
}

func (r *Reminder) writePID() error {
	return os.WriteFile(r.PIDFile, []byte(strconv.Itoa(os.Getpid())), 0644)
}

// Spawn starts the daemon form: the current executable re-invoked with the
// hidden daemon verb, detached from the foreground command.
func Spawn() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	cmd := exec.Command(exe, "daemon")
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn reminder daemon: %w", err)
	}
	return cmd.Process.Release()
}

// Stop signals the daemon named by the PID file and removes the file. A
// missing PID file is not an error: the loop also exits on its own once the
// session record is gone.
func Stop(pidFile string) error {
	data, err := os.ReadFile(pidFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer os.Remove(pidFile)

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return errors.New("malformed daemon PID file")
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return nil
	}
	// Process may already be gone.
	_ = proc.Signal(syscall.SIGTERM)
	return nil
}

// IsPIDRunning checks if a process with the given PID is running.
func IsPIDRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
