package cli

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// maxDescriptionLen bounds the stored description length in runes.
const maxDescriptionLen = 256

// defaultDescription is used when start is given no arguments.
const defaultDescription = "Work session"

// sanitizeDescription makes a description safe for both the session record
// and the CSV log: double quotes, commas, and control characters become
// spaces, and the result is truncated to maxDescriptionLen runes.
func sanitizeDescription(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '"' || r == ',' || unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultDescription
	}
	runes := []rune(s)
	if len(runes) > maxDescriptionLen {
		s = string(runes[:maxDescriptionLen])
	}
	return s
}

// descriptionFromArgs joins the remaining arguments with single spaces and
// sanitizes the result.
func descriptionFromArgs(args []string) string {
	if len(args) == 0 {
		return defaultDescription
	}
	return sanitizeDescription(strings.Join(args, " "))
}

// formatDuration renders a duration as H:MM:SS.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
