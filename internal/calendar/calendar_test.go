package calendar

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var baseTime = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func TestFileCalendar_EventsBetween(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	body := `[
		{"time": "2026-08-24T12:30:00Z", "impact": "HIGH", "title": "CPI"},
		{"time": "2026-08-24T15:00:00Z", "impact": "MEDIUM", "title": "Crude Inventories"},
		{"time": "2026-08-25T12:30:00Z", "impact": "HIGH", "title": "NFP"}
	]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cal, err := NewFileCalendar(path)
	if err != nil {
		t.Fatalf("load calendar: %v", err)
	}

	events, err := cal.EventsBetween(baseTime, baseTime.Add(4*time.Hour))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events in window, got %d", len(events))
	}
	if events[0].Title != "CPI" || events[0].Impact != ImpactHigh {
		t.Errorf("unexpected first event: %+v", events[0])
	}
}

func TestFileCalendar_MissingFileIsEmpty(t *testing.T) {
	cal, err := NewFileCalendar("/nonexistent/events.json")
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	events, err := cal.EventsBetween(baseTime, baseTime.Add(24*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestFileCalendar_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileCalendar(path); err == nil {
		t.Error("malformed calendar must fail loudly")
	}
}

func TestSQLiteCalendar_RoundTrip(t *testing.T) {
	cal, err := NewSQLiteCalendar(filepath.Join(t.TempDir(), "calendar.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer cal.Close()

	seed := []Event{
		{Time: baseTime.Add(30 * time.Minute), Impact: ImpactHigh, Title: "CPI"},
		{Time: baseTime.Add(3 * time.Hour), Impact: ImpactLow, Title: "minor"},
		{Time: baseTime.Add(26 * time.Hour), Impact: ImpactHigh, Title: "NFP"},
	}
	for _, e := range seed {
		if err := cal.AddEvent(e); err != nil {
			t.Fatalf("add %q: %v", e.Title, err)
		}
	}

	events, err := cal.EventsBetween(baseTime, baseTime.Add(4*time.Hour))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events in window, got %d", len(events))
	}
	if events[0].Title != "CPI" {
		t.Errorf("expected chronological order, first was %q", events[0].Title)
	}
	if !events[0].Time.Equal(baseTime.Add(30 * time.Minute)) {
		t.Errorf("timestamp round trip lost: %v", events[0].Time)
	}
}

func TestSQLiteCalendar_EmptyWindow(t *testing.T) {
	cal, err := NewSQLiteCalendar(filepath.Join(t.TempDir(), "calendar.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer cal.Close()

	events, err := cal.EventsBetween(baseTime, baseTime.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Errorf("fresh database must have no events, got %d", len(events))
	}
}
