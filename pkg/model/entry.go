package model

// Entry represents one completed session in the time log. Fields match the
// CSV schema: name, date, start_time, end_time, duration_hours, description.
type Entry struct {
	Name          string
	Date          string
	StartTime     string
	EndTime       string
	DurationHours float64
	Description   string
}
