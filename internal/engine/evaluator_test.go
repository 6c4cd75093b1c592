package engine

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/config"
	"GoldSentinel/internal/model"
	"GoldSentinel/internal/safety"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}
	return cfg
}

func fixtureBars(n int, dt time.Duration) []model.OHLCV {
	t0 := time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, n)
	prev := 1800.0
	for i := range bars {
		c := 1800.0 + float64(i)
		bars[i] = model.OHLCV{
			Time: t0.Add(time.Duration(i) * dt),
			Open: prev, High: math.Max(prev, c) + 1, Low: math.Min(prev, c) - 1,
			Close: c, Volume: 1000,
		}
		prev = c
	}
	return bars
}

func newTestEvaluator(t *testing.T, mock *collector.MockFetcher) (*Evaluator, *config.Config) {
	t.Helper()
	cfg := testConfig(t)
	col := collector.NewCollector(mock, cfg)
	return NewEvaluator(col, safety.NewGate(cfg, nil), cfg), cfg
}

func healthyMock() *collector.MockFetcher {
	return &collector.MockFetcher{
		FastBars: fixtureBars(250, 5*time.Minute),
		SlowBars: fixtureBars(250, time.Hour),
		SeriesBy: map[string][]model.MacroPoint{},
	}
}

func TestEvaluate_DegradesOnFetchFailure(t *testing.T) {
	eval, _ := newTestEvaluator(t, &collector.MockFetcher{Err: errors.New("upstream 503")})

	rep := eval.Evaluate(context.Background())

	if rep.Signal != model.SignalWait {
		t.Errorf("degraded report must be WAIT, got %s", rep.Signal)
	}
	if !rep.Lock.Engaged || rep.Lock.Reason != model.LockReasonDataUnavailable {
		t.Errorf("degraded report must be locked with data-unavailable, got %+v", rep.Lock)
	}
	if rep.Confidence != 0 {
		t.Errorf("degraded report must carry zero confidence, got %.1f", rep.Confidence)
	}
	if rep.Forecast != model.ForecastStayOut {
		t.Errorf("degraded forecast must be %q, got %q", model.ForecastStayOut, rep.Forecast)
	}
	if rep.Session.Name == "" {
		t.Error("degraded report must still carry a session profile")
	}
}

func TestEvaluate_CacheWithinTTL(t *testing.T) {
	mock := healthyMock()
	eval, _ := newTestEvaluator(t, mock)

	first := eval.Evaluate(context.Background())
	countAfterFirst := mock.FetchCount
	second := eval.Evaluate(context.Background())

	if mock.FetchCount != countAfterFirst {
		t.Errorf("second call within TTL must not refetch: %d -> %d", countAfterFirst, mock.FetchCount)
	}
	if first.EvaluatedAt != second.EvaluatedAt {
		t.Error("cached report must be the same evaluation")
	}
}

func TestEvaluate_RecomputesAfterTTL(t *testing.T) {
	mock := healthyMock()
	eval, cfg := newTestEvaluator(t, mock)

	clock := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	eval.now = func() time.Time { return clock }

	eval.Evaluate(context.Background())
	countAfterFirst := mock.FetchCount

	clock = clock.Add(time.Duration(cfg.Engine.CacheTTLSeconds+1) * time.Second)
	eval.Evaluate(context.Background())

	if mock.FetchCount <= countAfterFirst {
		t.Error("expired cache must trigger a recomputation")
	}
}

func TestEvaluate_SingleFlight(t *testing.T) {
	mock := healthyMock()
	eval, _ := newTestEvaluator(t, mock)

	const callers = 16
	var wg sync.WaitGroup
	reports := make([]model.SignalReport, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reports[i] = eval.Evaluate(context.Background())
		}(i)
	}
	wg.Wait()

	// One computation fetches the fast and the slow series once each.
	if mock.FetchCount > 2 {
		t.Errorf("%d concurrent callers caused %d bar fetches, want at most 2", callers, mock.FetchCount)
	}
	for i := 1; i < callers; i++ {
		if reports[i].Signal != reports[0].Signal {
			t.Fatalf("caller %d got signal %s, caller 0 got %s", i, reports[i].Signal, reports[0].Signal)
		}
	}
}

func TestLast(t *testing.T) {
	eval, _ := newTestEvaluator(t, healthyMock())

	if _, ok := eval.Last(); ok {
		t.Error("Last before any evaluation must report nothing")
	}
	want := eval.Evaluate(context.Background())
	got, ok := eval.Last()
	if !ok {
		t.Fatal("Last after an evaluation must report the cached result")
	}
	if got.EvaluatedAt != want.EvaluatedAt || got.Signal != want.Signal {
		t.Error("Last must return the most recent report")
	}
}
