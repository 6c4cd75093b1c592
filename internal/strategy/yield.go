package strategy

import (
	"time"

	"GoldSentinel/internal/model"
)

// YieldBias measures whether the macro yield series supports the
// instrument's recent move. Gold trades inversely to real yields, so a move
// backed by yields going the opposite way earns a directional contribution:
// +1 when a rising price is paired with falling yields, -1 when a falling
// price is paired with rising yields. Yields confirming the same direction
// break the relationship and contribute nothing, as do flat legs, a short
// series, or a stale series (last point further than tolerance from the
// last bar). This factor only adjusts confidence; it never overrides the
// other factors.
func YieldBias(bars []model.OHLCV, yields []model.MacroPoint, window int, tolerance time.Duration) int {
	if len(bars) < window+1 || len(yields) < window+1 {
		return 0
	}
	lastBar := bars[len(bars)-1]
	lastYield := yields[len(yields)-1]
	drift := lastBar.Time.Sub(lastYield.Time)
	if drift < 0 {
		drift = -drift
	}
	if drift > tolerance {
		return 0
	}

	priceDelta := bars[len(bars)-1].Close - bars[len(bars)-1-window].Close
	yieldDelta := yields[len(yields)-1].Value - yields[len(yields)-1-window].Value
	if priceDelta == 0 || yieldDelta == 0 {
		return 0
	}
	if (priceDelta > 0) == (yieldDelta > 0) {
		return 0 // yields confirm the move, inverse relationship broken
	}
	if priceDelta > 0 {
		return +1
	}
	return -1
}
