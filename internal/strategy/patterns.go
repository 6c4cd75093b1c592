package strategy

import (
	"GoldSentinel/internal/calculator"
	"GoldSentinel/internal/model"
)

// AlignedTrend compares the fast-timeframe trend with the slow-timeframe
// trend. Agreement on a direction yields that direction; disagreement, a
// neutral side, or an undetermined side yields no alignment.
func AlignedTrend(fast, slow model.TimeframeIndicators) model.Trend {
	if fast.Trend == model.TrendBullish && slow.Trend == model.TrendBullish {
		return model.TrendBullish
	}
	if fast.Trend == model.TrendBearish && slow.Trend == model.TrendBearish {
		return model.TrendBearish
	}
	return model.TrendNeutral
}

// StopRun is a detected liquidity-grab pattern on the fast timeframe.
type StopRun struct {
	Direction int     // +1 bullish (low swept, closed back above), -1 bearish
	Level     float64 // the swept extreme
}

// DetectStopRun looks for a sweep-and-reject of the prior extreme over the
// `window` bars preceding the current bar. The current bar must pierce the
// extreme by more than `margin` yet close back inside the range; a close
// beyond the extreme is continuation, not a stop run.
func DetectStopRun(bars []model.OHLCV, window int, margin float64) (StopRun, bool) {
	high, low, err := calculator.PriorExtremes(bars, window)
	if err != nil {
		return StopRun{}, false
	}
	cur := bars[len(bars)-1]

	if cur.High > high+margin && cur.Close < high {
		return StopRun{Direction: -1, Level: high}, true
	}
	if cur.Low < low-margin && cur.Close > low {
		return StopRun{Direction: +1, Level: low}, true
	}
	return StopRun{}, false
}
