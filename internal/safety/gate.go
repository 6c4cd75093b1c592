package safety

import (
	"log"
	"math"
	"sync"
	"time"

	"GoldSentinel/internal/calendar"
	"GoldSentinel/internal/config"
	"GoldSentinel/internal/model"
)

// Gate is the hard safety lock, re-evaluated every cycle from independent
// triggers: a scheduled high-impact news window and a volatility shock on
// the dollar index. Any trigger forces the lock ON; the session gate is a
// separate soft mechanism and never flows through here.
//
// The lock is stateless per cycle except for the optional shock cooldown: a
// configured cooldown keeps the lock ON for that long after the last shock,
// so a single spike cannot flap the lock between adjacent cycles.
type Gate struct {
	cfg *config.Config
	cal calendar.Calendar

	mu         sync.Mutex
	shockUntil time.Time
}

// NewGate creates a gate. A nil calendar leaves the news trigger inactive
// (fails open, not closed).
func NewGate(cfg *config.Config, cal calendar.Calendar) *Gate {
	if cal == nil {
		cal = calendar.NewNoopCalendar()
	}
	return &Gate{cfg: cfg, cal: cal}
}

// Evaluate recomputes the lock state for one cycle.
func (g *Gate) Evaluate(now time.Time, dollar []model.MacroPoint) model.LockState {
	if reason, on := g.newsWindow(now); on {
		return model.LockState{Engaged: true, Reason: reason}
	}
	if reason, on := g.volatilityShock(now, dollar); on {
		return model.LockState{Engaged: true, Reason: reason}
	}
	return model.LockState{Engaged: false, Reason: model.LockReasonNone}
}

func (g *Gate) newsWindow(now time.Time) (model.LockReason, bool) {
	buffer := time.Duration(g.cfg.Lock.NewsBufferMinutes) * time.Minute
	events, err := g.cal.EventsBetween(now.Add(-buffer), now.Add(buffer))
	if err != nil {
		// A broken calendar must not freeze the engine.
		log.Printf("[WARN] calendar lookup failed, news trigger inactive: %v", err)
		return model.LockReasonNone, false
	}
	for _, e := range events {
		if e.Impact == calendar.ImpactHigh {
			return model.LockReasonNewsWindow, true
		}
	}
	return model.LockReasonNone, false
}

func (g *Gate) volatilityShock(now time.Time, dollar []model.MacroPoint) (model.LockReason, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(dollar) >= 2 {
		last := dollar[len(dollar)-1].Value
		prev := dollar[len(dollar)-2].Value
		if math.Abs(last-prev) > g.cfg.Lock.ShockThreshold {
			if cooldown := g.cfg.Lock.ShockCooldownMin; cooldown > 0 {
				g.shockUntil = now.Add(time.Duration(cooldown) * time.Minute)
			}
			return model.LockReasonVolatilityShock, true
		}
	}
	if now.Before(g.shockUntil) {
		return model.LockReasonVolatilityShock, true
	}
	return model.LockReasonNone, false
}
