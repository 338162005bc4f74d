// Package store owns the append-only CSV time log and its record format.
package store

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/flock"

	"github.com/giannimassi/timetrack/pkg/model"
)

// Log is the append-only CSV history of completed sessions.
type Log struct {
	Path string
}

// NewLog returns a Log at the given path.
func NewLog(path string) *Log {
	return &Log{Path: path}
}

// InitIfAbsent creates the log with its header line if it does not exist.
// The header is written exactly once, at creation.
func (l *Log) InitIfAbsent() error {
	if _, err := os.Stat(l.Path); err == nil {
		return nil
	}
	return os.WriteFile(l.Path, []byte(LogCSVHeader+"\n"), 0644)
}

// Append writes one entry to the log under an exclusive file lock. The log
// is created with its header first when missing.
func (l *Log) Append(e model.Entry) error {
	if err := l.InitIfAbsent(); err != nil {
		return fmt.Errorf("init log: %w", err)
	}

	lock := flock.New(l.Path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock log: %w", err)
	}
	defer lock.Unlock()

	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(MarshalEntry(e) + "\n"); err != nil {
		return fmt.Errorf("append log: %w", err)
	}
	return nil
}

// DayResult holds one day's scan: the matching rows in file order, their
// raw lines, the duration sum, and a warning per skipped malformed row.
type DayResult struct {
	Entries  []model.Entry
	Lines    []string
	Total    float64
	Warnings []string
}

// ScanDay streams the log and collects every row whose date field equals
// date. Malformed rows are skipped with a warning; scanning continues. A
// missing or header-only log yields an empty result.
func (l *Log) ScanDay(date string) (DayResult, error) {
	var res DayResult

	f, err := os.Open(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return res, nil
		}
		return res, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// Skip header
	if scanner.Scan() {
		// consumed
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entry, err := UnmarshalEntry(line)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipping malformed log row %d: %v", lineNo, err))
			continue
		}
		if entry.Date != date {
			continue
		}
		res.Entries = append(res.Entries, entry)
		res.Lines = append(res.Lines, line)
		res.Total += entry.DurationHours
	}

	return res, scanner.Err()
}
