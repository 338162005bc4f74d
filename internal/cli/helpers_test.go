package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text unchanged", in: "write spec", want: "write spec"},
		{name: "double quotes become spaces", in: `fix "the" bug`, want: "fix  the  bug"},
		{name: "commas become spaces", in: "coding, refactoring", want: "coding  refactoring"},
		{name: "control characters become spaces", in: "line1\nline2\ttab", want: "line1 line2 tab"},
		{name: "whitespace only falls back to default", in: "   ", want: defaultDescription},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizeDescription(tt.in))
		})
	}
}

func TestSanitizeDescriptionTruncates(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 1000)
	got := sanitizeDescription(long)
	assert.Len(t, []rune(got), maxDescriptionLen)
}

func TestDescriptionFromArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultDescription, descriptionFromArgs(nil))
	assert.Equal(t, "write spec", descriptionFromArgs([]string{"write", "spec"}))
	assert.Equal(t, "coding  refactoring", descriptionFromArgs([]string{"coding,", "refactoring"}))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{name: "zero", in: 0, want: "0:00:00"},
		{name: "seconds", in: 59 * time.Second, want: "0:00:59"},
		{name: "minutes", in: 5*time.Minute + 12*time.Second, want: "0:05:12"},
		{name: "hours", in: 26*time.Hour + 30*time.Minute, want: "26:30:00"},
		{name: "negative clamps to zero", in: -time.Minute, want: "0:00:00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatDuration(tt.in))
		})
	}
}
