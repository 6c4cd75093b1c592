package model

import "time"

// Signal is the discrete action emitted once per evaluation cycle.
type Signal string

const (
	SignalStrongBuy  Signal = "STRONG_BUY"
	SignalBuy        Signal = "BUY"
	SignalWait       Signal = "WAIT"
	SignalSell       Signal = "SELL"
	SignalStrongSell Signal = "STRONG_SELL"
)

// Bias is the directional lean derived from the net factor sum.
type Bias string

const (
	BiasBuy     Bias = "BUY"
	BiasSell    Bias = "SELL"
	BiasNeutral Bias = "NEUTRAL"
)

// FactorScore represents a single factor's contribution to the confidence score.
type FactorScore struct {
	Name       string
	Direction  int     // +1 / 0 / -1
	Weight     float64 // absolute points the factor can move the score
	Weighted   float64 // Direction * Weight
	Commentary string
}

// ScoreResult is the bounded confidence plus directional bias.
type ScoreResult struct {
	Confidence float64 // [0,100]
	Bias       Bias
}

// LockReason explains why the safety lock engaged.
type LockReason string

const (
	LockReasonNone            LockReason = "none"
	LockReasonNewsWindow      LockReason = "news-window"
	LockReasonVolatilityShock LockReason = "volatility-shock"
	LockReasonDataUnavailable LockReason = "data-unavailable"
)

// LockState is the safety-lock outcome for one cycle. Recomputed every
// evaluation; it is a gate, not a latch.
type LockState struct {
	Engaged bool       `json:"engaged"`
	Reason  LockReason `json:"reason"`
}

// ForecastLabel is one of the fixed human-readable forecast outcomes.
// New labels must be additive; consumers key on these strings.
type ForecastLabel string

const (
	ForecastStayOut       ForecastLabel = "Stay Out (Dangerous)"
	ForecastInstoRally    ForecastLabel = "Institutional Rally"
	ForecastInstoDump     ForecastLabel = "Institutional Dump"
	ForecastConfluence    ForecastLabel = "Multi-Timeframe Confluence"
	ForecastLiqReversal   ForecastLabel = "Liquidity Reversal"
	ForecastYieldSupport  ForecastLabel = "Yield-Supported"
	ForecastContinuation  ForecastLabel = "High Probability Continuation"
	ForecastProbableUp    ForecastLabel = "Probable Upside"
	ForecastProbableDown  ForecastLabel = "Probable Downside"
	ForecastConsolidation ForecastLabel = "Consolidation"
)

// SessionProfile classifies the current trading session (Dubai clock).
type SessionProfile struct {
	Name        string  `json:"name"`
	Multiplier  float64 `json:"multiplier"`   // scales score deviation from base
	ReducedSize bool    `json:"reduced_size"` // soft gate: trade smaller, do not force WAIT
}

// SignalReport is the sole externally observed artifact of the engine.
// Immutable once emitted.
type SignalReport struct {
	Signal         Signal         `json:"signal"`
	Confidence     float64        `json:"confidence"`
	Actionable     bool           `json:"actionable"`
	Lock           LockState      `json:"lock"`
	Forecast       ForecastLabel  `json:"forecast"`
	TrendDirection Trend          `json:"trend"`
	StopLoss       float64        `json:"stop_loss"`
	TakeProfit     float64        `json:"take_profit"`
	Session        SessionProfile `json:"session"`
	Factors        []FactorScore  `json:"-"`
	EvaluatedAt    time.Time      `json:"evaluated_at"`
}
