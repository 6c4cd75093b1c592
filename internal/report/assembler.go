package report

import (
	"time"

	"GoldSentinel/internal/config"
	"GoldSentinel/internal/model"
	"GoldSentinel/internal/strategy"
)

// Assemble packages one evaluation cycle into the immutable SignalReport.
// The lock strictly dominates: when engaged the emitted signal is WAIT and
// no risk levels are produced, while the computed confidence stays visible
// for transparency.
func Assemble(ev *strategy.Evaluation, lock model.LockState, sess model.SessionProfile,
	price float64, evaluatedAt time.Time, cfg *config.Config) model.SignalReport {

	signal := ev.Signal
	if lock.Engaged {
		signal = model.SignalWait
	}
	actionable := !lock.Engaged && signal != model.SignalWait

	rep := model.SignalReport{
		Signal:         signal,
		Confidence:     ev.Score.Confidence,
		Actionable:     actionable,
		Lock:           lock,
		Forecast:       strategy.Forecast(ev, lock, cfg),
		TrendDirection: ev.Fast.Trend,
		Session:        sess,
		Factors:        ev.Factors,
		EvaluatedAt:    evaluatedAt,
	}

	if actionable && ev.Fast.ATRValid {
		rep.StopLoss, rep.TakeProfit = riskLevels(signal, price, ev.Fast, cfg)
	}
	return rep
}

// riskLevels anchors the stop beyond the recent swing extreme in the trade's
// disfavor by a multiple of ATR, and sets the target at the configured
// risk-reward multiple of the stop distance.
func riskLevels(signal model.Signal, price float64, fast model.TimeframeIndicators, cfg *config.Config) (sl, tp float64) {
	mult := cfg.Risk.StopATRMult
	rr := cfg.Risk.RewardRatio

	switch signal {
	case model.SignalBuy, model.SignalStrongBuy:
		anchor := fast.SwingLow
		if anchor == 0 || anchor > price {
			anchor = price
		}
		sl = anchor - mult*fast.ATR
		tp = price + rr*(price-sl)
	case model.SignalSell, model.SignalStrongSell:
		anchor := fast.SwingHigh
		if anchor == 0 || anchor < price {
			anchor = price
		}
		sl = anchor + mult*fast.ATR
		tp = price - rr*(sl-price)
	}
	return sl, tp
}
