package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// MacroPoint is a single observation of a macro series (bond yield, DXY).
type MacroPoint struct {
	Time  time.Time
	Value float64
}

// MarketSnapshot holds all raw input data for one evaluation cycle.
// It is built once per cycle and never mutated afterwards.
type MarketSnapshot struct {
	Symbol       string
	FastBars     []OHLCV      // fast timeframe, e.g. 5m
	SlowBars     []OHLCV      // slow timeframe, e.g. 1h
	YieldSeries  []MacroPoint // 10Y yield proxy
	DollarSeries []MacroPoint // volatility proxy (DXY)
	CurrentPrice float64
	FetchedAt    time.Time
}
