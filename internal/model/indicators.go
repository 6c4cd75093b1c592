package model

// Trend is the direction estimate for one timeframe.
type Trend string

const (
	TrendBullish      Trend = "BULLISH"
	TrendBearish      Trend = "BEARISH"
	TrendNeutral      Trend = "NEUTRAL"
	TrendUndetermined Trend = "UNDETERMINED"
)

// VSAClass is the volume/spread verdict for the most recent bar.
type VSAClass string

const (
	VSAConfirm    VSAClass = "CONFIRM"
	VSANeutral    VSAClass = "NEUTRAL"
	VSAContradict VSAClass = "CONTRADICT"
)

// TimeframeIndicators holds all computed indicators for one timeframe.
type TimeframeIndicators struct {
	Trend     Trend
	EMA200    float64
	EMA50     float64
	EMA21     float64
	RSI       float64
	ATR       float64
	ATRValid  bool
	VSA       VSAClass
	VSADir    int      // signed direction of a flagged volume bar, 0 when unflagged
	Expansion VSAClass // smart-money expansion bar verdict
	ExpDir    int
	SwingHigh float64  // prior extreme excluding the current bar
	SwingLow  float64
}
