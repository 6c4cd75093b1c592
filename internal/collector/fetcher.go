package collector

import (
	"context"

	"GoldSentinel/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchBars(ctx context.Context, symbol, interval string, limit int) ([]model.OHLCV, error)
	FetchSeries(ctx context.Context, symbol, interval string, limit int) ([]model.MacroPoint, error)
	Name() string
}
