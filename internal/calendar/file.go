package calendar

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// FileCalendar loads a fixed event list from a JSON file at startup. A
// missing file is treated as an empty calendar, never an error.
type FileCalendar struct {
	events []Event
}

// NewFileCalendar reads the event list from a JSON file.
func NewFileCalendar(path string) (*FileCalendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileCalendar{}, nil
		}
		return nil, fmt.Errorf("read calendar file: %w", err)
	}
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parse calendar file: %w", err)
	}
	return &FileCalendar{events: events}, nil
}

func (f *FileCalendar) EventsBetween(from, to time.Time) ([]Event, error) {
	var out []Event
	for _, e := range f.events {
		if !e.Time.Before(from) && !e.Time.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *FileCalendar) Close() error { return nil }
