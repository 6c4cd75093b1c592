package calendar

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteCalendar reads scheduled events from a SQLite database maintained by
// an external importer (or seeded by hand).
type SQLiteCalendar struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteCalendar opens (or creates) the calendar database and runs migrations.
func NewSQLiteCalendar(dbPath string) (*SQLiteCalendar, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so the importer can write while the engine reads.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &SQLiteCalendar{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite calendar opened: %s", dbPath)
	return c, nil
}

func (c *SQLiteCalendar) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			impact    TEXT NOT NULL,
			title     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_ts ON events(timestamp)`,
	}
	for _, s := range stmts {
		if _, err := c.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:30], err)
		}
	}
	return nil
}

// AddEvent inserts a scheduled event. Used by the importer and by tests.
func (c *SQLiteCalendar) AddEvent(evt Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(`INSERT INTO events (timestamp, impact, title) VALUES (?,?,?)`,
		evt.Time.Unix(), string(evt.Impact), evt.Title)
	return err
}

func (c *SQLiteCalendar) EventsBetween(from, to time.Time) ([]Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows, err := c.db.Query(
		`SELECT timestamp, impact, title FROM events WHERE timestamp >= ? AND timestamp <= ? ORDER BY timestamp`,
		from.Unix(), to.Unix())
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ts int64
		var impact, title string
		if err := rows.Scan(&ts, &impact, &title); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, Event{
			Time:   time.Unix(ts, 0).UTC(),
			Impact: Impact(impact),
			Title:  title,
		})
	}
	return events, rows.Err()
}

func (c *SQLiteCalendar) Close() error {
	log.Println("[INFO] closing sqlite calendar")
	return c.db.Close()
}
