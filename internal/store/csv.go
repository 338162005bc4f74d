package store

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/giannimassi/timetrack/pkg/model"
)

// CSV header for time_logs.csv
const LogCSVHeader = "name,date,start_time,end_time,duration_hours,description"

// MarshalEntry serializes an Entry to a CSV line. Fields are sanitized so
// the row always keeps its six-field shape: embedded commas and newlines
// become spaces, and the duration uses fixed-point with two fractional
// digits.
func MarshalEntry(e model.Entry) string {
	return fmt.Sprintf("%s,%s,%s,%s,%s,%s",
		SanitizeField(e.Name), SanitizeField(e.Date),
		SanitizeField(e.StartTime), SanitizeField(e.EndTime),
		FormatHours(e.DurationHours), SanitizeField(e.Description),
	)
}

// UnmarshalEntry parses a CSV line into an Entry.
func UnmarshalEntry(line string) (model.Entry, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 6 {
		return model.Entry{}, fmt.Errorf("expected 6 fields, got %d", len(fields))
	}

	hours, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return model.Entry{}, fmt.Errorf("invalid duration_hours: %w", err)
	}

	return model.Entry{
		Name:          fields[0],
		Date:          fields[1],
		StartTime:     fields[2],
		EndTime:       fields[3],
		DurationHours: hours,
		Description:   fields[5],
	}, nil
}

// SanitizeField replaces characters that would break the row shape.
func SanitizeField(s string) string {
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// RoundHours rounds a duration in hours to two decimal places, half up.
func RoundHours(h float64) float64 {
	return math.Floor(h*100+0.5) / 100
}

// FormatHours renders hours with exactly two fractional digits.
func FormatHours(h float64) string {
	return strconv.FormatFloat(RoundHours(h), 'f', 2, 64)
}
