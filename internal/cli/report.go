package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/giannimassi/timetrack/internal/store"
	"github.com/giannimassi/timetrack/pkg/model"
)

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true)
	reportTotalStyle = lipgloss.NewStyle().Bold(true)
)

func newReportCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "report [YYYY-MM-DD]",
		Short: "Generate a daily report",
		Long:  "Sum and list the logged sessions for one day. Defaults to today; a date may be given positionally or with --date.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := dateFlag
			if len(args) > 0 {
				date = args[0]
			}
			return runReport(date)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Date in YYYY-MM-DD format (default: today)")

	return cmd
}

func runReport(date string) error {
	cfg, err := model.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if date == "" {
		date = time.Now().Format(model.DateLayout)
	} else if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	log := store.NewLog(cfg.LogFile())
	res, err := log.ScanDay(date)
	if err != nil {
		return fmt.Errorf("scan log: %w", err)
	}

	for _, w := range res.Warnings {
		fmt.Println(w)
	}

	if len(res.Entries) == 0 {
		fmt.Printf("No entries for %s\n", date)
		return nil
	}

	rule := strings.Repeat("-", 70)

	fmt.Println(reportTitleStyle.Render(fmt.Sprintf("=== Daily Report for %s ===", date)))
	fmt.Printf("Total Hours: %s\n", store.FormatHours(res.Total))
	fmt.Printf("Total Entries: %d\n", len(res.Entries))
	fmt.Println(rule)
	for _, line := range res.Lines {
		fmt.Println(line)
	}
	fmt.Println(rule)
	fmt.Println(reportTotalStyle.Render(fmt.Sprintf("Total: %s hours", store.FormatHours(res.Total))))
	return nil
}
