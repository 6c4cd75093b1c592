package engine

import (
	"context"
	"log"
	"sync"
	"time"

	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/config"
	"GoldSentinel/internal/model"
	"GoldSentinel/internal/report"
	"GoldSentinel/internal/safety"
	"GoldSentinel/internal/session"
	"GoldSentinel/internal/strategy"
)

// Evaluator coordinates evaluation cycles: at most one computation is in
// flight at a time, concurrent callers are served the most recently
// completed report, and a fresh report within the cache TTL short-circuits
// recomputation. This bounds load on the upstream data provider under high
// polling frequency.
type Evaluator struct {
	col  *collector.Collector
	gate *safety.Gate
	cfg  *config.Config
	now  func() time.Time

	mu       sync.Mutex
	last     *model.SignalReport
	lastAt   time.Time
	inflight chan struct{}
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(col *collector.Collector, gate *safety.Gate, cfg *config.Config) *Evaluator {
	return &Evaluator{col: col, gate: gate, cfg: cfg, now: time.Now}
}

// Evaluate returns a SignalReport for the current market state. It never
// returns an error: the worst case is a WAIT report with lock reason
// "data-unavailable".
func (e *Evaluator) Evaluate(ctx context.Context) model.SignalReport {
	ttl := time.Duration(e.cfg.Engine.CacheTTLSeconds) * time.Second

	e.mu.Lock()
	if e.last != nil && e.now().Sub(e.lastAt) < ttl {
		rep := *e.last
		e.mu.Unlock()
		return rep
	}
	if e.inflight != nil {
		// A computation is already running. Serve the stale report if one
		// exists, otherwise wait for the in-flight result.
		if e.last != nil {
			rep := *e.last
			e.mu.Unlock()
			return rep
		}
		done := e.inflight
		e.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return e.degraded(e.now())
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.last != nil {
			return *e.last
		}
		return e.degraded(e.now())
	}
	done := make(chan struct{})
	e.inflight = done
	e.mu.Unlock()

	rep := e.compute(ctx)

	e.mu.Lock()
	e.last = &rep
	e.lastAt = e.now()
	e.inflight = nil
	close(done)
	e.mu.Unlock()
	return rep
}

// Last returns the most recently completed report without triggering a
// computation.
func (e *Evaluator) Last() (model.SignalReport, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.last == nil {
		return model.SignalReport{}, false
	}
	return *e.last, true
}

func (e *Evaluator) compute(ctx context.Context) model.SignalReport {
	now := e.now()
	sess := session.Profile(now, e.cfg)

	snap, err := e.col.Collect(ctx)
	if err != nil {
		log.Printf("[ERROR] collect snapshot: %v, degrading to WAIT", err)
		return e.degraded(now)
	}

	ev := strategy.Evaluate(snap, sess, e.cfg)
	lock := e.gate.Evaluate(now, snap.DollarSeries)
	return report.Assemble(ev, lock, sess, snap.CurrentPrice, now, e.cfg)
}

// degraded is the well-formed worst-case report: never a crash, never a
// missing report, just a locked WAIT.
func (e *Evaluator) degraded(now time.Time) model.SignalReport {
	return model.SignalReport{
		Signal:         model.SignalWait,
		Confidence:     0,
		Actionable:     false,
		Lock:           model.LockState{Engaged: true, Reason: model.LockReasonDataUnavailable},
		Forecast:       model.ForecastStayOut,
		TrendDirection: model.TrendUndetermined,
		Session:        session.Profile(now, e.cfg),
		EvaluatedAt:    now,
	}
}
