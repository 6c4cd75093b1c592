package collector

import (
	"context"
	"fmt"
	"time"

	"GoldSentinel/internal/config"
	"GoldSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	FastBars   []model.OHLCV
	SlowBars   []model.OHLCV
	SeriesBy   map[string][]model.MacroPoint
	Err        error
	FetchCount int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, _, interval string, _ int) ([]model.OHLCV, error) {
	m.FetchCount++
	if m.Err != nil {
		return nil, m.Err
	}
	if interval == "1h" {
		return m.SlowBars, nil
	}
	return m.FastBars, nil
}

func (m *MockFetcher) FetchSeries(_ context.Context, symbol, _ string, _ int) ([]model.MacroPoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.SeriesBy[symbol], nil
}

// Collector assembles the full market snapshot for one evaluation cycle.
type Collector struct {
	Fetcher Fetcher
	Cfg     *config.Config
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, cfg *config.Config) *Collector {
	return &Collector{Fetcher: fetcher, Cfg: cfg}
}

// Collect fetches both instrument timeframes plus the macro series under a
// single deadline. Any upstream failure aborts the snapshot; the caller
// degrades the cycle to WAIT instead of propagating the error outward.
func (c *Collector) Collect(ctx context.Context) (*model.MarketSnapshot, error) {
	ds := c.Cfg.DataSource
	ctx, cancel := context.WithTimeout(ctx, time.Duration(ds.TimeoutSeconds)*time.Second)
	defer cancel()

	fastBars, err := c.Fetcher.FetchBars(ctx, ds.Symbol, ds.FastInterval, ds.FastLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch fast bars: %w", err)
	}
	if len(fastBars) == 0 {
		return nil, fmt.Errorf("fetch fast bars: empty series")
	}
	slowBars, err := c.Fetcher.FetchBars(ctx, ds.Symbol, ds.SlowInterval, ds.SlowLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch slow bars: %w", err)
	}
	yield, err := c.Fetcher.FetchSeries(ctx, ds.YieldSymbol, ds.FastInterval, ds.MacroLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch yield series: %w", err)
	}
	dollar, err := c.Fetcher.FetchSeries(ctx, ds.DollarSymbol, ds.FastInterval, ds.MacroLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch dollar series: %w", err)
	}

	return &model.MarketSnapshot{
		Symbol:       ds.Symbol,
		FastBars:     fastBars,
		SlowBars:     slowBars,
		YieldSeries:  yield,
		DollarSeries: dollar,
		CurrentPrice: fastBars[len(fastBars)-1].Close,
		FetchedAt:    time.Now(),
	}, nil
}
