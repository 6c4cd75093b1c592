package strategy

import (
	"GoldSentinel/internal/config"
	"GoldSentinel/internal/model"
)

// Forecast maps the active factor combination to one label from the fixed
// set. Conditions are checked in strict priority order; the first match
// wins, and Consolidation is the fallback when nothing fires.
func Forecast(ev *Evaluation, lock model.LockState, cfg *config.Config) model.ForecastLabel {
	if lock.Engaged {
		return model.ForecastStayOut
	}

	conf := ev.Score.Confidence
	if conf >= cfg.Thresholds.Strong {
		if ev.Fast.VSADir > 0 || ev.Fast.ExpDir > 0 {
			return model.ForecastInstoRally
		}
		if ev.Fast.VSADir < 0 || ev.Fast.ExpDir < 0 {
			return model.ForecastInstoDump
		}
	}
	if ev.Aligned == model.TrendBullish || ev.Aligned == model.TrendBearish {
		return model.ForecastConfluence
	}
	if ev.StopRunFound {
		return model.ForecastLiqReversal
	}
	if ev.YieldSupport != 0 {
		return model.ForecastYieldSupport
	}
	if (ev.Fast.Trend == model.TrendBullish || ev.Fast.Trend == model.TrendBearish) &&
		conf >= cfg.Thresholds.Actionable {
		return model.ForecastContinuation
	}
	if conf > baseScore {
		if ev.Score.Bias == model.BiasBuy {
			return model.ForecastProbableUp
		}
		if ev.Score.Bias == model.BiasSell {
			return model.ForecastProbableDown
		}
	}
	return model.ForecastConsolidation
}
