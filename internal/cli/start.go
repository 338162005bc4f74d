package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/giannimassi/timetrack/internal/daemon"
	"github.com/giannimassi/timetrack/internal/notify"
	"github.com/giannimassi/timetrack/internal/session"
	"github.com/giannimassi/timetrack/pkg/model"
)

// spawnDaemon launches the background reminder loop; overridable in tests.
var spawnDaemon = daemon.Spawn

func newStartCmd() *cobra.Command {
	var foreground bool

	cmd := &cobra.Command{
		Use:   "start [description...]",
		Short: "Start time tracking",
		Long:  "Record the start of a work session and spawn the background reminder loop. Remaining arguments are joined into the session description.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(args, foreground)
		},
	}

	cmd.Flags().BoolVar(&foreground, "foreground", false, "Run the reminder loop in the foreground instead of a daemon")

	return cmd
}

func runStart(args []string, foreground bool) error {
	cfg, err := model.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.EnsureRoot(); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	sessions := session.NewStore(cfg.SessionFile())
	if sessions.Exists() {
		if current, err := sessions.Read(); err == nil {
			if start, err := current.Start(); err == nil {
				fmt.Printf("Time tracking already running for %s\n", formatDuration(time.Since(start)))
			} else {
				fmt.Println("Time tracking already running")
			}
			fmt.Printf("Description: %s\n", current.Description)
		} else {
			fmt.Println("Time tracking already running")
		}
		return errReported
	}

	description := descriptionFromArgs(args)
	now := time.Now()

	sess := model.Session{
		Name:        model.CurrentUser(),
		StartTime:   now.Format(model.TimeLayout),
		Description: description,
	}
	if err := sessions.Write(sess); err != nil {
		return err
	}

	notifier := notify.ForBackend(cfg.Notifier)
	if err := notifier.Notify("Time Tracker Started", "Started tracking: "+description); err != nil {
		fmt.Printf("NOTIFICATION: Time Tracker Started - Started tracking: %s\n", description)
	}

	fmt.Printf("Time tracking started at %s\n", now.Format(model.ClockLayout))
	fmt.Printf("Description: %s\n", description)

	if foreground {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		r := &daemon.Reminder{
			Sessions:       sessions,
			ProbeInterval:  cfg.ProbeInterval,
			NotifyInterval: cfg.NotifyInterval,
			Notifier:       notifier,
		}
		return r.Run(ctx)
	}

	if err := spawnDaemon(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: reminder daemon not started: %v\n", err)
	}
	return nil
}
