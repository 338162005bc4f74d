// Package session owns the on-disk session record: the single JSON-shaped
// document whose presence means tracking is active.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/giannimassi/timetrack/pkg/model"
)

// ErrNotFound is returned when no session record exists.
var ErrNotFound = errors.New("no active session")

// ErrParse is returned when a session record exists but cannot be read.
var ErrParse = errors.New("unreadable session record")

// Store reads and writes the session record at a fixed path.
type Store struct {
	Path string
}

// NewStore returns a Store for the given session record path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Exists reports whether a session record is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Write atomically creates the session record: the document is written to a
// sibling temp file and renamed into place, so a concurrent reader never
// observes a partial record.
func (s *Store) Write(sess model.Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write session record: %w", err)
	}
	return nil
}

// Read parses the session record. Strict JSON is the fast path; files a user
// edited by hand fall back to a line scan for the three known fields, so the
// record stays hand-editable.
func (s *Store) Read() (model.Session, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Session{}, ErrNotFound
		}
		return model.Session{}, err
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err == nil && sess.StartTime != "" {
		return sess, nil
	}

	sess = scanFields(string(data))
	if sess.StartTime == "" {
		return model.Session{}, fmt.Errorf("%w: %s", ErrParse, filepath.Base(s.Path))
	}
	return sess, nil
}

// Remove deletes the session record.
func (s *Store) Remove() error {
	err := os.Remove(s.Path)
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// scanFields extracts the known fields from a JSON-shaped document without
// requiring valid JSON. Each line is checked for a quoted field name; the
// value is taken between the first and next double quote after the colon.
// Unknown lines are ignored.
func scanFields(doc string) model.Session {
	var sess model.Session
	for _, line := range strings.Split(doc, "\n") {
		for _, field := range []struct {
			key string
			dst *string
		}{
			{"name", &sess.Name},
			{"start_time", &sess.StartTime},
			{"description", &sess.Description},
		} {
			if v, ok := scanValue(line, field.key); ok {
				*field.dst = v
			}
		}
	}
	return sess
}

func scanValue(line, key string) (string, bool) {
	idx := strings.Index(line, `"`+key+`"`)
	if idx < 0 {
		return "", false
	}
	rest := line[idx+len(key)+2:]
	colon := strings.Index(rest, ":")
	if colon < 0 {
		return "", false
	}
	rest = rest[colon+1:]
	open := strings.Index(rest, `"`)
	if open < 0 {
		return "", false
	}
	rest = rest[open+1:]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
