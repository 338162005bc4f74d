package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/giannimassi/timetrack/internal/daemon"
	"github.com/giannimassi/timetrack/internal/session"
	"github.com/giannimassi/timetrack/pkg/model"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show current tracking status",
		Long:  "Display whether a work session is active, and if so its start time, duration, description, and user.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	cfg, err := model.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sessions := session.NewStore(cfg.SessionFile())
	if !sessions.Exists() {
		fmt.Println("Time tracking is not currently running.")
		return nil
	}

	sess, err := sessions.Read()
	if err != nil {
		fmt.Println("Error: could not read session record.")
		return errReported
	}

	fmt.Println("Time tracking is ACTIVE")
	if start, err := sess.Start(); err == nil {
		fmt.Printf("Started: %s\n", start.Format("2006-01-02 15:04:05"))
		fmt.Printf("Duration: %s\n", formatDuration(time.Since(start)))
	} else {
		fmt.Printf("Started: %s\n", sess.StartTime)
	}
	fmt.Printf("Description: %s\n", sess.Description)
	fmt.Printf("User: %s\n", sess.Name)

	if pid, ok := daemonPID(cfg.PIDFile()); ok && daemon.IsPIDRunning(pid) {
		fmt.Printf("Reminder daemon: running (pid %d)\n", pid)
	} else {
		fmt.Println("Reminder daemon: not running")
	}
	return nil
}

// daemonPID reads the reminder daemon's PID file.
func daemonPID(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false
	}
	return pid, true
}
