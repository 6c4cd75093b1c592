package calculator

import (
	"errors"
	"math"

	"GoldSentinel/internal/model"
)

// TrueRange returns the true range of bar relative to the previous close:
// max of high-low, |high-prevClose|, |low-prevClose|.
func TrueRange(bar model.OHLCV, prevClose float64) float64 {
	hl := bar.High - bar.Low
	hc := math.Abs(bar.High - prevClose)
	lc := math.Abs(bar.Low - prevClose)
	return math.Max(hl, math.Max(hc, lc))
}

// CalculateATR computes the average true range as a rolling mean of per-bar
// true range over the most recent `period` bars. Requires period+1 bars.
func CalculateATR(bars []model.OHLCV, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(bars) < period+1 {
		return 0, errors.New("not enough data for ATR calculation")
	}
	sum := 0.0
	for i := len(bars) - period; i < len(bars); i++ {
		sum += TrueRange(bars[i], bars[i-1].Close)
	}
	return sum / float64(period), nil
}
