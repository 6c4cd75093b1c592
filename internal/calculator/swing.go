package calculator

import (
	"errors"
	"math"

	"GoldSentinel/internal/model"
)

// PriorExtremes scans the `window` bars preceding the current (last) bar and
// returns their extreme high and low. The current bar is excluded so a sweep
// of those levels by the current bar is observable.
func PriorExtremes(bars []model.OHLCV, window int) (high, low float64, err error) {
	if window <= 0 {
		return 0, 0, errors.New("window must be positive")
	}
	if len(bars) < window+1 {
		return 0, 0, errors.New("not enough bars for prior extremes")
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := len(bars) - 1 - window; i < len(bars)-1; i++ {
		if bars[i].High > high {
			high = bars[i].High
		}
		if bars[i].Low < low {
			low = bars[i].Low
		}
	}
	return high, low, nil
}
