package calendar

import "time"

// Impact is the scheduled event's expected market impact.
type Impact string

const (
	ImpactHigh   Impact = "HIGH"
	ImpactMedium Impact = "MEDIUM"
	ImpactLow    Impact = "LOW"
)

// Event is a scheduled macro release (NFP, CPI, FOMC, ...).
type Event struct {
	Time   time.Time `json:"time"`
	Impact Impact    `json:"impact"`
	Title  string    `json:"title"`
}

// Calendar supplies scheduled news events to the safety lock.
type Calendar interface {
	// EventsBetween returns events with from <= t <= to, any impact.
	EventsBetween(from, to time.Time) ([]Event, error)
	Close() error
}

// NoopCalendar is used when no calendar source is configured. It returns no
// events, so the news-window trigger fails open.
type NoopCalendar struct{}

func NewNoopCalendar() *NoopCalendar { return &NoopCalendar{} }

func (n *NoopCalendar) EventsBetween(_, _ time.Time) ([]Event, error) { return nil, nil }
func (n *NoopCalendar) Close() error                                  { return nil }
