package calculator

import (
	"errors"
	"math"

	"GoldSentinel/internal/model"
)

// VolumeSpike reports whether the last bar's volume exceeds spikeRatio times
// the rolling mean volume of the preceding volWindow bars.
func VolumeSpike(bars []model.OHLCV, volWindow int, spikeRatio float64) (bool, error) {
	if volWindow <= 0 {
		return false, errors.New("volume window must be positive")
	}
	if len(bars) < volWindow+1 {
		return false, errors.New("not enough data for volume baseline")
	}
	last := bars[len(bars)-1]
	sum := 0.0
	for i := len(bars) - 1 - volWindow; i < len(bars)-1; i++ {
		sum += bars[i].Volume
	}
	avg := sum / float64(volWindow)
	if avg == 0 {
		return false, nil
	}
	return last.Volume > avg*spikeRatio, nil
}

// ExpansionBar reports whether the last bar's body exceeds expansionRatio
// times the rolling mean range of the preceding rangeWindow bars. Wide-body
// bars on a quiet baseline mark institutional order flow.
func ExpansionBar(bars []model.OHLCV, rangeWindow int, expansionRatio float64) (bool, error) {
	if rangeWindow <= 0 {
		return false, errors.New("range window must be positive")
	}
	if len(bars) < rangeWindow+1 {
		return false, errors.New("not enough data for range baseline")
	}
	last := bars[len(bars)-1]
	body := math.Abs(last.Close - last.Open)
	sum := 0.0
	for i := len(bars) - 1 - rangeWindow; i < len(bars)-1; i++ {
		sum += bars[i].High - bars[i].Low
	}
	avg := sum / float64(rangeWindow)
	if avg == 0 {
		return false, nil
	}
	return body > avg*expansionRatio, nil
}

// BarDirection returns +1 for an up-close bar, -1 for a down-close bar,
// 0 for a doji.
func BarDirection(bar model.OHLCV) int {
	switch {
	case bar.Close > bar.Open:
		return +1
	case bar.Close < bar.Open:
		return -1
	default:
		return 0
	}
}

// ClassifyVSA labels a flagged bar against the prevailing trend: a flagged
// bar closing with the trend confirms it, against the trend contradicts it.
// Unflagged bars, dojis, and trendless timeframes stay neutral.
func ClassifyVSA(dir int, flagged bool, trend model.Trend) model.VSAClass {
	if !flagged || dir == 0 {
		return model.VSANeutral
	}
	switch trend {
	case model.TrendBullish:
		if dir > 0 {
			return model.VSAConfirm
		}
		return model.VSAContradict
	case model.TrendBearish:
		if dir < 0 {
			return model.VSAConfirm
		}
		return model.VSAContradict
	default:
		return model.VSANeutral
	}
}
