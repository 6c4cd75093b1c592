package strategy

import (
	"testing"
	"time"

	"GoldSentinel/internal/model"
)

func TestAlignedTrend(t *testing.T) {
	tests := []struct {
		fast, slow model.Trend
		want       model.Trend
	}{
		{model.TrendBullish, model.TrendBullish, model.TrendBullish},
		{model.TrendBearish, model.TrendBearish, model.TrendBearish},
		{model.TrendBullish, model.TrendBearish, model.TrendNeutral},
		{model.TrendBullish, model.TrendNeutral, model.TrendNeutral},
		{model.TrendUndetermined, model.TrendBullish, model.TrendNeutral},
		{model.TrendNeutral, model.TrendNeutral, model.TrendNeutral},
	}
	for _, tt := range tests {
		got := AlignedTrend(
			model.TimeframeIndicators{Trend: tt.fast},
			model.TimeframeIndicators{Trend: tt.slow},
		)
		if got != tt.want {
			t.Errorf("AlignedTrend(%s,%s) = %s, want %s", tt.fast, tt.slow, got, tt.want)
		}
	}
}

func TestDetectStopRun_BullishSweep(t *testing.T) {
	bars := flatBars(20, 2000, 5*time.Minute) // prior low 1995, prior high 2005
	last := &bars[len(bars)-1]
	last.Low = 1985
	last.Close = 1998

	run, found := DetectStopRun(bars, 15, 1.0)
	if !found {
		t.Fatal("expected detection")
	}
	if run.Direction != +1 {
		t.Errorf("expected bullish direction, got %d", run.Direction)
	}
	if run.Level != 1995 {
		t.Errorf("expected swept level 1995, got %.1f", run.Level)
	}
}

func TestDetectStopRun_BearishSweep(t *testing.T) {
	bars := flatBars(20, 2000, 5*time.Minute)
	last := &bars[len(bars)-1]
	last.High = 2015
	last.Close = 2002

	run, found := DetectStopRun(bars, 15, 1.0)
	if !found {
		t.Fatal("expected detection")
	}
	if run.Direction != -1 {
		t.Errorf("expected bearish direction, got %d", run.Direction)
	}
	if run.Level != 2005 {
		t.Errorf("expected swept level 2005, got %.1f", run.Level)
	}
}

func TestDetectStopRun_ContinuationIsNotASweep(t *testing.T) {
	bars := flatBars(20, 2000, 5*time.Minute)
	// Breaks the prior high and holds above it: a breakout, not a trap.
	last := &bars[len(bars)-1]
	last.High = 2015
	last.Close = 2012

	if _, found := DetectStopRun(bars, 15, 1.0); found {
		t.Error("close beyond the extreme must not count as a stop run")
	}
}

func TestDetectStopRun_MarginFiltersShallowPierces(t *testing.T) {
	bars := flatBars(20, 2000, 5*time.Minute)
	last := &bars[len(bars)-1]
	last.Low = 1994.5 // pierces by 0.5, under the 1.0 margin
	last.Close = 1998

	if _, found := DetectStopRun(bars, 15, 1.0); found {
		t.Error("pierce within margin must not trigger")
	}
}

func TestDetectStopRun_ShortSeries(t *testing.T) {
	if _, found := DetectStopRun(flatBars(5, 2000, 5*time.Minute), 15, 1.0); found {
		t.Error("short series must not trigger")
	}
}

func TestYieldBias(t *testing.T) {
	rising := trendingBars(20, 2000, 1, 5*time.Minute)
	falling := trendingBars(20, 2020, -1, 5*time.Minute)
	tolerance := 90 * time.Minute

	tests := []struct {
		name   string
		bars   []model.OHLCV
		yields []model.MacroPoint
		want   int
	}{
		{"price up, yields down", rising, yieldSeries(rising, 4.5, -0.01), +1},
		{"price down, yields up", falling, yieldSeries(falling, 4.0, 0.01), -1},
		{"price up, yields up", rising, yieldSeries(rising, 4.0, 0.01), 0},
		{"flat yields", rising, yieldSeries(rising, 4.2, 0), 0},
		{"flat price", flatBars(20, 2000, 5*time.Minute), yieldSeries(rising, 4.5, -0.01), 0},
		{"short yield series", rising, yieldSeries(rising, 4.5, -0.01)[:5], 0},
	}
	for _, tt := range tests {
		if got := YieldBias(tt.bars, tt.yields, 10, tolerance); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestYieldBias_StaleSeriesIgnored(t *testing.T) {
	rising := trendingBars(20, 2000, 1, 5*time.Minute)
	yields := yieldSeries(rising, 4.5, -0.01)
	// Push the whole macro series half a day behind the bars.
	for i := range yields {
		yields[i].Time = yields[i].Time.Add(-12 * time.Hour)
	}
	if got := YieldBias(rising, yields, 10, 90*time.Minute); got != 0 {
		t.Errorf("stale yields must contribute nothing, got %d", got)
	}
}
