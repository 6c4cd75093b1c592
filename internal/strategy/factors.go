package strategy

import (
	"fmt"

	"GoldSentinel/internal/model"
)

// Factor names, stable across evaluations: the report formatter and tests
// look factors up by name.
const (
	FactorAlignment = "trend_alignment"
	FactorMomentum  = "momentum"
	FactorVSA       = "vsa_confirmation"
	FactorExpansion = "smart_money_expansion"
	FactorLiquidity = "liquidity_reversal"
	FactorYield     = "yield_support"
)

func makeFactor(name string, dir int, weight float64, commentary string) model.FactorScore {
	return model.FactorScore{
		Name:       name,
		Direction:  dir,
		Weight:     weight,
		Weighted:   float64(dir) * weight,
		Commentary: commentary,
	}
}

// scoreAlignment rewards agreement of the fast and slow timeframe trends.
// Disagreement is deliberately neutral, not negative: a split market is an
// absence of edge, not an opposite edge.
func scoreAlignment(aligned model.Trend, weight float64) model.FactorScore {
	switch aligned {
	case model.TrendBullish:
		return makeFactor(FactorAlignment, +1, weight, "fast+slow trends bullish")
	case model.TrendBearish:
		return makeFactor(FactorAlignment, -1, weight, "fast+slow trends bearish")
	default:
		return makeFactor(FactorAlignment, 0, weight, "timeframes disagree")
	}
}

// scoreMomentum is a secondary confirmation from the fast-timeframe RSI,
// never a standalone trigger.
func scoreMomentum(rsi, bullLevel, bearLevel, weight float64) model.FactorScore {
	commentary := fmt.Sprintf("RSI=%.0f", rsi)
	switch {
	case rsi > bullLevel:
		return makeFactor(FactorMomentum, +1, weight, commentary)
	case rsi < bearLevel:
		return makeFactor(FactorMomentum, -1, weight, commentary)
	default:
		return makeFactor(FactorMomentum, 0, weight, commentary)
	}
}

// scoreVolumeEvent scores a flagged volume or expansion bar by the direction
// it closed in.
func scoreVolumeEvent(name string, dir int, weight float64) model.FactorScore {
	switch {
	case dir > 0:
		return makeFactor(name, +1, weight, "big money buying")
	case dir < 0:
		return makeFactor(name, -1, weight, "big money selling")
	default:
		return makeFactor(name, 0, weight, "no volume event")
	}
}

// scoreLiquidity scores a detected stop run in the direction of the
// expected reversal.
func scoreLiquidity(run StopRun, found bool, weight float64) model.FactorScore {
	if !found {
		return makeFactor(FactorLiquidity, 0, weight, "no sweep detected")
	}
	if run.Direction > 0 {
		return makeFactor(FactorLiquidity, +1, weight, fmt.Sprintf("low %.2f swept and rejected", run.Level))
	}
	return makeFactor(FactorLiquidity, -1, weight, fmt.Sprintf("high %.2f swept and rejected", run.Level))
}

// scoreYield scores the macro yield relationship.
func scoreYield(support int, weight float64) model.FactorScore {
	switch {
	case support > 0:
		return makeFactor(FactorYield, +1, weight, "yields falling against rising gold")
	case support < 0:
		return makeFactor(FactorYield, -1, weight, "yields rising against falling gold")
	default:
		return makeFactor(FactorYield, 0, weight, "yield relationship flat or broken")
	}
}
