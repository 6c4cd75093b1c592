package safety

import (
	"errors"
	"testing"
	"time"

	"GoldSentinel/internal/calendar"
	"GoldSentinel/internal/config"
	"GoldSentinel/internal/model"
)

type stubCalendar struct {
	events []calendar.Event
	err    error
}

func (s *stubCalendar) EventsBetween(from, to time.Time) ([]calendar.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []calendar.Event
	for _, e := range s.events {
		if !e.Time.Before(from) && !e.Time.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubCalendar) Close() error { return nil }

func gateConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}
	return cfg
}

func macroPair(prev, last float64) []model.MacroPoint {
	return []model.MacroPoint{{Value: prev}, {Value: last}}
}

func TestGate_NewsWindowEngages(t *testing.T) {
	cfg := gateConfig(t)
	now := time.Date(2026, 8, 24, 13, 30, 0, 0, time.UTC)

	cal := &stubCalendar{events: []calendar.Event{
		{Time: now.Add(3 * time.Minute), Impact: calendar.ImpactHigh, Title: "CPI"},
	}}
	g := NewGate(cfg, cal)

	lock := g.Evaluate(now, nil)
	if !lock.Engaged || lock.Reason != model.LockReasonNewsWindow {
		t.Errorf("high-impact event inside the buffer must lock, got %+v", lock)
	}
}

func TestGate_LowImpactAndDistantEventsIgnored(t *testing.T) {
	cfg := gateConfig(t)
	now := time.Date(2026, 8, 24, 13, 30, 0, 0, time.UTC)

	cal := &stubCalendar{events: []calendar.Event{
		{Time: now.Add(2 * time.Minute), Impact: calendar.ImpactLow, Title: "minor"},
		{Time: now.Add(45 * time.Minute), Impact: calendar.ImpactHigh, Title: "FOMC"},
	}}
	g := NewGate(cfg, cal)

	if lock := g.Evaluate(now, nil); lock.Engaged {
		t.Errorf("no high-impact event in window, must stay open: %+v", lock)
	}
}

func TestGate_CalendarErrorFailsOpen(t *testing.T) {
	cfg := gateConfig(t)
	g := NewGate(cfg, &stubCalendar{err: errors.New("db locked")})

	if lock := g.Evaluate(time.Now(), nil); lock.Engaged {
		t.Errorf("broken calendar must not lock the engine: %+v", lock)
	}
}

func TestGate_NilCalendarFailsOpen(t *testing.T) {
	g := NewGate(gateConfig(t), nil)
	if lock := g.Evaluate(time.Now(), nil); lock.Engaged {
		t.Errorf("no calendar configured must not lock: %+v", lock)
	}
}

func TestGate_VolatilityShock(t *testing.T) {
	cfg := gateConfig(t) // threshold 0.15
	g := NewGate(cfg, nil)
	now := time.Now()

	lock := g.Evaluate(now, macroPair(104.00, 104.20))
	if !lock.Engaged || lock.Reason != model.LockReasonVolatilityShock {
		t.Errorf("0.20 step must lock, got %+v", lock)
	}

	if lock := g.Evaluate(now, macroPair(104.00, 104.10)); lock.Engaged {
		t.Errorf("0.10 step under threshold must not lock, got %+v", lock)
	}

	if lock := g.Evaluate(now, macroPair(104.00, 103.80)); !lock.Engaged {
		t.Error("shock is two-sided, a 0.20 drop must also lock")
	}

	if lock := g.Evaluate(now, nil); lock.Engaged {
		t.Errorf("missing dollar series must not lock by itself, got %+v", lock)
	}
}

func TestGate_ShockCooldownHoldsLock(t *testing.T) {
	cfg := gateConfig(t)
	cfg.Lock.ShockCooldownMin = 10
	g := NewGate(cfg, nil)
	now := time.Date(2026, 8, 24, 15, 0, 0, 0, time.UTC)

	if lock := g.Evaluate(now, macroPair(104.00, 104.30)); !lock.Engaged {
		t.Fatal("shock must lock")
	}
	// Dollar calmed down, but we are inside the cooldown.
	if lock := g.Evaluate(now.Add(5*time.Minute), macroPair(104.30, 104.31)); !lock.Engaged {
		t.Error("cooldown must hold the lock after the shock passes")
	}
	if lock := g.Evaluate(now.Add(15*time.Minute), macroPair(104.31, 104.32)); lock.Engaged {
		t.Error("lock must release after the cooldown expires")
	}
}

func TestGate_ZeroCooldownIsStateless(t *testing.T) {
	cfg := gateConfig(t) // cooldown defaults to 0
	g := NewGate(cfg, nil)
	now := time.Now()

	if lock := g.Evaluate(now, macroPair(104.00, 104.30)); !lock.Engaged {
		t.Fatal("shock must lock")
	}
	if lock := g.Evaluate(now.Add(time.Minute), macroPair(104.30, 104.31)); lock.Engaged {
		t.Error("without a cooldown the lock must release as soon as the shock passes")
	}
}

func TestGate_NewsTakesPrecedenceOverShock(t *testing.T) {
	cfg := gateConfig(t)
	now := time.Date(2026, 8, 24, 13, 30, 0, 0, time.UTC)
	cal := &stubCalendar{events: []calendar.Event{
		{Time: now, Impact: calendar.ImpactHigh, Title: "NFP"},
	}}
	g := NewGate(cfg, cal)

	lock := g.Evaluate(now, macroPair(104.00, 104.50))
	if lock.Reason != model.LockReasonNewsWindow {
		t.Errorf("news reason must win when both triggers fire, got %s", lock.Reason)
	}
}
