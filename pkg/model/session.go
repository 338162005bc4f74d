package model

import "time"

// TimeLayout is the local wall-clock layout used in the session record:
// ISO-8601 to second precision, no time-zone suffix.
const TimeLayout = "2006-01-02T15:04:05"

// DateLayout is the log's date column layout.
const DateLayout = "2006-01-02"

// ClockLayout is the log's start_time/end_time column layout.
const ClockLayout = "15:04:05"

// Session represents the single on-disk record of an active tracking
// session. It exists iff tracking is active.
type Session struct {
	Name        string `json:"name"`
	StartTime   string `json:"start_time"`
	Description string `json:"description"`
}

// Start parses the session's start instant in local time.
func (s Session) Start() (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s.StartTime, time.Local)
}
