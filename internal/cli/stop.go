package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/giannimassi/timetrack/internal/daemon"
	"github.com/giannimassi/timetrack/internal/notify"
	"github.com/giannimassi/timetrack/internal/session"
	"github.com/giannimassi/timetrack/internal/store"
	"github.com/giannimassi/timetrack/pkg/model"
)

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop time tracking",
		Long:  "End the active work session, append it to the time log, and stop the reminder loop.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStop()
		},
	}
}

func runStop() error {
	cfg, err := model.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sessions := session.NewStore(cfg.SessionFile())
	if !sessions.Exists() {
		fmt.Println("Time tracking is not running.")
		return errReported
	}

	sess, err := sessions.Read()
	if err != nil {
		if errors.Is(err, session.ErrParse) {
			fmt.Printf("Error: could not read session record; fix or remove %s manually.\n", cfg.SessionFile())
			return errReported
		}
		return err
	}

	start, err := sess.Start()
	if err != nil {
		fmt.Printf("Error: could not read session record; fix or remove %s manually.\n", cfg.SessionFile())
		return errReported
	}

	end := time.Now()
	elapsed := end.Sub(start)
	hours := elapsed.Hours()
	if hours < 0 {
		fmt.Println("warning: session start is in the future; recording zero duration")
		hours = 0
	}

	log := store.NewLog(cfg.LogFile())
	entry := model.Entry{
		Name:          sess.Name,
		Date:          end.Format(model.DateLayout),
		StartTime:     start.Format(model.ClockLayout),
		EndTime:       end.Format(model.ClockLayout),
		DurationHours: store.RoundHours(hours),
		Description:   sess.Description,
	}
	if err := log.Append(entry); err != nil {
		return err
	}

	if err := sessions.Remove(); err != nil && !errors.Is(err, session.ErrNotFound) {
		return fmt.Errorf("remove session record: %w", err)
	}

	// Removing the record alone stops the loop within one probe interval;
	// the daemon form is also signaled so it exits immediately.
	if err := daemon.Stop(cfg.PIDFile()); err != nil {
		fmt.Printf("warning: could not stop reminder daemon: %v\n", err)
	}

	notifier := notify.ForBackend(cfg.Notifier)
	message := fmt.Sprintf("Worked for %s\nLogged to CSV file", formatDuration(elapsed))
	if err := notifier.Notify("Time Tracker Stopped", message); err != nil {
		fmt.Printf("NOTIFICATION: Time Tracker Stopped - %s\n", message)
	}

	fmt.Printf("Time tracking stopped at %s\n", end.Format(model.ClockLayout))
	fmt.Printf("Duration: %s (%s hours)\n", formatDuration(elapsed), store.FormatHours(hours))
	fmt.Printf("Logged to: %s\n", cfg.LogFile())
	return nil
}
