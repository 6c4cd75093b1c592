package strategy

import (
	"time"

	"GoldSentinel/internal/config"
	"GoldSentinel/internal/model"
)

const baseScore = 50.0

// Evaluation is the full factor breakdown for one cycle. Everything in it is
// derived deterministically from the snapshot and the session profile.
type Evaluation struct {
	Fast         model.TimeframeIndicators
	Slow         model.TimeframeIndicators
	Aligned      model.Trend
	StopRun      StopRun
	StopRunFound bool
	YieldSupport int
	Factors      []model.FactorScore
	Net          float64 // signed weighted sum before session scaling
	Score        model.ScoreResult
	Signal       model.Signal
}

// Evaluate runs the indicator bank, pattern detectors, and yield analyzer
// over the snapshot and combines them into a bounded confidence score and a
// discrete signal. Identical inputs always produce identical output; the
// safety lock is applied by the caller on top of this result.
func Evaluate(snap *model.MarketSnapshot, sess model.SessionProfile, cfg *config.Config) *Evaluation {
	ev := &Evaluation{
		Fast: ComputeTimeframe(snap.FastBars, cfg),
		Slow: ComputeTimeframe(snap.SlowBars, cfg),
	}
	ev.Aligned = AlignedTrend(ev.Fast, ev.Slow)

	if ev.Fast.ATRValid {
		margin := ev.Fast.ATR * cfg.Indicators.StopRunMarginATR
		ev.StopRun, ev.StopRunFound = DetectStopRun(snap.FastBars, cfg.Indicators.StopRunWindow, margin)
	}

	tolerance := time.Duration(cfg.Indicators.AlignToleranceMin) * time.Minute
	ev.YieldSupport = YieldBias(snap.FastBars, snap.YieldSeries, cfg.Indicators.YieldWindow, tolerance)

	w := cfg.Weights
	ev.Factors = []model.FactorScore{
		scoreAlignment(ev.Aligned, w.Alignment),
		scoreMomentum(ev.Fast.RSI, cfg.Indicators.RSIBullLevel, cfg.Indicators.RSIBearLevel, w.Momentum),
		scoreVolumeEvent(FactorVSA, ev.Fast.VSADir, w.VSA),
		scoreVolumeEvent(FactorExpansion, ev.Fast.ExpDir, w.Expansion),
		scoreLiquidity(ev.StopRun, ev.StopRunFound, w.Liquidity),
		scoreYield(ev.YieldSupport, w.Yield),
	}
	for _, f := range ev.Factors {
		ev.Net += f.Weighted
	}

	// Session multiplier scales the deviation from base, then confidence is
	// the magnitude of that deviation: a bearish stack reads as high
	// confidence with a SELL bias, not as a low score.
	deviation := ev.Net * sess.Multiplier
	confidence := clamp(baseScore+abs(deviation), 0, 100)

	bias := model.BiasNeutral
	switch {
	case ev.Net > 0:
		bias = model.BiasBuy
	case ev.Net < 0:
		bias = model.BiasSell
	}

	ev.Score = model.ScoreResult{Confidence: confidence, Bias: bias}
	ev.Signal = mapSignal(ev.Score, cfg)
	return ev
}

// mapSignal applies the dead-zone thresholding: nothing below the actionable
// threshold ever emits a directional signal.
func mapSignal(score model.ScoreResult, cfg *config.Config) model.Signal {
	if score.Confidence < cfg.Thresholds.Actionable || score.Bias == model.BiasNeutral {
		return model.SignalWait
	}
	strong := score.Confidence >= cfg.Thresholds.Strong
	if score.Bias == model.BiasBuy {
		if strong {
			return model.SignalStrongBuy
		}
		return model.SignalBuy
	}
	if strong {
		return model.SignalStrongSell
	}
	return model.SignalSell
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
