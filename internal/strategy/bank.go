package strategy

import (
	"log"

	"GoldSentinel/internal/calculator"
	"GoldSentinel/internal/config"
	"GoldSentinel/internal/model"
)

// ComputeTimeframe runs the full indicator bank over one timeframe's bars.
// Every indicator fails soft: a series too short for a window marks that
// indicator undetermined (or neutral) instead of aborting the cycle.
func ComputeTimeframe(bars []model.OHLCV, cfg *config.Config) model.TimeframeIndicators {
	in := cfg.Indicators
	ind := model.TimeframeIndicators{
		Trend:     model.TrendUndetermined,
		RSI:       50,
		VSA:       model.VSANeutral,
		Expansion: model.VSANeutral,
	}
	if len(bars) == 0 {
		return ind
	}
	closes := calculator.ExtractCloses(bars)
	price := closes[len(closes)-1]

	ema200, err200 := calculator.CalculateEMA(closes, in.TrendPeriod)
	emaSlow, errSlow := calculator.CalculateEMA(closes, in.EMASlowSpan)
	emaFast, errFast := calculator.CalculateEMA(closes, in.EMAFastSpan)
	if err200 != nil || errSlow != nil || errFast != nil {
		log.Printf("[WARN] trend EMAs unavailable (%d bars), trend undetermined", len(bars))
	} else {
		ind.EMA200 = ema200
		ind.EMA50 = emaSlow
		ind.EMA21 = emaFast
		switch {
		case price > ema200 && emaFast > emaSlow:
			ind.Trend = model.TrendBullish
		case price < ema200 && emaFast < emaSlow:
			ind.Trend = model.TrendBearish
		default:
			ind.Trend = model.TrendNeutral
		}
	}

	if rsi, err := calculator.CalculateRSI(bars, in.RSIPeriod); err != nil {
		log.Printf("[WARN] RSI calculation failed: %v, defaulting to 50", err)
	} else {
		ind.RSI = rsi
	}

	if atr, err := calculator.CalculateATR(bars, in.ATRPeriod); err != nil {
		log.Printf("[WARN] ATR calculation failed: %v, risk levels disabled", err)
	} else {
		ind.ATR = atr
		ind.ATRValid = true
	}

	dir := calculator.BarDirection(bars[len(bars)-1])
	if spike, err := calculator.VolumeSpike(bars, in.VolumeWindow, in.VolumeSpikeRatio); err == nil {
		ind.VSA = calculator.ClassifyVSA(dir, spike, ind.Trend)
		if spike {
			ind.VSADir = dir
		}
	}
	if expansion, err := calculator.ExpansionBar(bars, in.RangeWindow, in.ExpansionRatio); err == nil {
		ind.Expansion = calculator.ClassifyVSA(dir, expansion, ind.Trend)
		if expansion {
			ind.ExpDir = dir
		}
	}

	if high, low, err := calculator.PriorExtremes(bars, in.StopRunWindow); err == nil {
		ind.SwingHigh = high
		ind.SwingLow = low
	}

	return ind
}
