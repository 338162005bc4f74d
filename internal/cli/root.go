package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

// errReported marks failures whose message was already printed by the
// command itself; Execute only translates them into a non-zero exit.
var errReported = errors.New("reported")

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "timetrack",
		Short: "Personal command-line time tracker",
		Long:  "Timetrack records named work sessions, reminds you what you are working on, and reports tracked hours per day from a CSV log.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStartCmd(),
		newStopCmd(),
		newStatusCmd(),
		newReportCmd(),
		newDaemonCmd(),
	)

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("timetrack %s\n", Version))

	return root
}

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", cmd.Name())
		}
		os.Exit(1)
	}
}
