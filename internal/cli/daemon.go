package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/giannimassi/timetrack/internal/daemon"
	"github.com/giannimassi/timetrack/internal/notify"
	"github.com/giannimassi/timetrack/internal/session"
	"github.com/giannimassi/timetrack/pkg/model"
)

// newDaemonCmd is the re-exec target for the daemon form of the reminder
// loop. It is hidden: users interact with it only through start and stop.
func newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "daemon",
		Short:  "Run the reminder loop",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := model.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := &daemon.Reminder{
				Sessions:       session.NewStore(cfg.SessionFile()),
				PIDFile:        cfg.PIDFile(),
				ProbeInterval:  cfg.ProbeInterval,
				NotifyInterval: cfg.NotifyInterval,
				Notifier:       notify.ForBackend(cfg.Notifier),
			}
			return r.Run(ctx)
		},
	}
}
