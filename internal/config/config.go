package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL        string `yaml:"base_url"` // self-hosted bridge API; empty means Yahoo Finance
		APIKey         string `yaml:"api_key"`
		Symbol         string `yaml:"symbol"`
		YieldSymbol    string `yaml:"yield_symbol"`
		DollarSymbol   string `yaml:"dollar_symbol"`
		FastInterval   string `yaml:"fast_interval"`
		SlowInterval   string `yaml:"slow_interval"`
		FastLimit      int    `yaml:"fast_limit"`
		SlowLimit      int    `yaml:"slow_limit"`
		MacroLimit     int    `yaml:"macro_limit"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"data_source"`
	Indicators struct {
		TrendPeriod       int     `yaml:"trend_period"`
		EMAFastSpan       int     `yaml:"ema_fast_span"`
		EMASlowSpan       int     `yaml:"ema_slow_span"`
		RSIPeriod         int     `yaml:"rsi_period"`
		RSIBullLevel      float64 `yaml:"rsi_bull_level"`
		RSIBearLevel      float64 `yaml:"rsi_bear_level"`
		ATRPeriod         int     `yaml:"atr_period"`
		VolumeWindow      int     `yaml:"volume_window"`
		VolumeSpikeRatio  float64 `yaml:"volume_spike_ratio"`
		RangeWindow       int     `yaml:"range_window"`
		ExpansionRatio    float64 `yaml:"expansion_ratio"`
		StopRunWindow     int     `yaml:"stop_run_window"`
		StopRunMarginATR  float64 `yaml:"stop_run_margin_atr"` // sweep margin as a fraction of ATR
		YieldWindow       int     `yaml:"yield_window"`
		AlignToleranceMin int     `yaml:"align_tolerance_minutes"`
	} `yaml:"indicators"`
	Weights struct {
		Alignment float64 `yaml:"alignment"`
		Momentum  float64 `yaml:"momentum"`
		VSA       float64 `yaml:"vsa"`
		Expansion float64 `yaml:"expansion"`
		Liquidity float64 `yaml:"liquidity"`
		Yield     float64 `yaml:"yield"`
	} `yaml:"weights"`
	Thresholds struct {
		Actionable float64 `yaml:"actionable"`
		Strong     float64 `yaml:"strong"`
	} `yaml:"thresholds"`
	Lock struct {
		NewsBufferMinutes int     `yaml:"news_buffer_minutes"`
		ShockThreshold    float64 `yaml:"shock_threshold"`
		ShockCooldownMin  int     `yaml:"shock_cooldown_minutes"` // 0 disables the sticky lock
	} `yaml:"lock"`
	Sessions struct {
		Asian   float64 `yaml:"asian"`
		London  float64 `yaml:"london"`
		Overlap float64 `yaml:"overlap"`
		NewYork float64 `yaml:"new_york"`
		LateNY  float64 `yaml:"late_ny"`
	} `yaml:"sessions"`
	Risk struct {
		StopATRMult float64 `yaml:"stop_atr_mult"`
		RewardRatio float64 `yaml:"reward_ratio"`
	} `yaml:"risk"`
	Engine struct {
		CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
	} `yaml:"engine"`
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Calendar struct {
		SQLitePath string `yaml:"sqlite_path"`
		FilePath   string `yaml:"file_path"`
	} `yaml:"calendar"`
	Schedule struct {
		EvalCron string `yaml:"eval_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("CALENDAR_SQLITE_PATH"); v != "" {
		cfg.Calendar.SQLitePath = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	ds := &c.DataSource
	if ds.Symbol == "" {
		ds.Symbol = "GC=F"
	}
	if ds.YieldSymbol == "" {
		ds.YieldSymbol = "^TNX"
	}
	if ds.DollarSymbol == "" {
		ds.DollarSymbol = "DX-Y.NYB"
	}
	if ds.FastInterval == "" {
		ds.FastInterval = "5m"
	}
	if ds.SlowInterval == "" {
		ds.SlowInterval = "1h"
	}
	if ds.FastLimit == 0 {
		ds.FastLimit = 300
	}
	if ds.SlowLimit == 0 {
		ds.SlowLimit = 300
	}
	if ds.MacroLimit == 0 {
		ds.MacroLimit = 21
	}
	if ds.TimeoutSeconds == 0 {
		ds.TimeoutSeconds = 30
	}

	in := &c.Indicators
	if in.TrendPeriod == 0 {
		in.TrendPeriod = 200
	}
	if in.EMAFastSpan == 0 {
		in.EMAFastSpan = 21
	}
	if in.EMASlowSpan == 0 {
		in.EMASlowSpan = 50
	}
	if in.RSIPeriod == 0 {
		in.RSIPeriod = 14
	}
	if in.RSIBullLevel == 0 {
		in.RSIBullLevel = 58
	}
	if in.RSIBearLevel == 0 {
		in.RSIBearLevel = 42
	}
	if in.ATRPeriod == 0 {
		in.ATRPeriod = 14
	}
	if in.VolumeWindow == 0 {
		in.VolumeWindow = 20
	}
	if in.VolumeSpikeRatio == 0 {
		in.VolumeSpikeRatio = 1.5
	}
	if in.RangeWindow == 0 {
		in.RangeWindow = 50
	}
	if in.ExpansionRatio == 0 {
		in.ExpansionRatio = 1.8
	}
	if in.StopRunWindow == 0 {
		in.StopRunWindow = 15
	}
	if in.StopRunMarginATR == 0 {
		in.StopRunMarginATR = 0.1
	}
	if in.YieldWindow == 0 {
		in.YieldWindow = 10
	}
	if in.AlignToleranceMin == 0 {
		in.AlignToleranceMin = 90
	}

	w := &c.Weights
	if w.Alignment == 0 {
		w.Alignment = 20
	}
	if w.Momentum == 0 {
		w.Momentum = 10
	}
	if w.VSA == 0 {
		w.VSA = 10
	}
	if w.Expansion == 0 {
		w.Expansion = 10
	}
	if w.Liquidity == 0 {
		w.Liquidity = 7
	}
	if w.Yield == 0 {
		w.Yield = 5
	}

	if c.Thresholds.Actionable == 0 {
		c.Thresholds.Actionable = 60
	}
	if c.Thresholds.Strong == 0 {
		c.Thresholds.Strong = 80
	}

	if c.Lock.NewsBufferMinutes == 0 {
		c.Lock.NewsBufferMinutes = 5
	}
	if c.Lock.ShockThreshold == 0 {
		c.Lock.ShockThreshold = 0.15
	}

	s := &c.Sessions
	if s.Asian == 0 {
		s.Asian = 0.5
	}
	if s.London == 0 {
		s.London = 1.2
	}
	if s.Overlap == 0 {
		s.Overlap = 1.6
	}
	if s.NewYork == 0 {
		s.NewYork = 1.4
	}
	if s.LateNY == 0 {
		s.LateNY = 0.9
	}

	if c.Risk.StopATRMult == 0 {
		c.Risk.StopATRMult = 1.0
	}
	if c.Risk.RewardRatio == 0 {
		c.Risk.RewardRatio = 2.0
	}

	if c.Engine.CacheTTLSeconds == 0 {
		c.Engine.CacheTTLSeconds = 30
	}
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Schedule.EvalCron == "" {
		c.Schedule.EvalCron = "0 */5 * * * *"
	}
}

// Validate checks that configuration is structurally sound. A zero or
// negative window is a deployment error, not a market condition.
func (c *Config) Validate() error {
	in := c.Indicators
	for name, v := range map[string]int{
		"indicators.trend_period":    in.TrendPeriod,
		"indicators.ema_fast_span":   in.EMAFastSpan,
		"indicators.ema_slow_span":   in.EMASlowSpan,
		"indicators.rsi_period":      in.RSIPeriod,
		"indicators.atr_period":      in.ATRPeriod,
		"indicators.volume_window":   in.VolumeWindow,
		"indicators.range_window":    in.RangeWindow,
		"indicators.stop_run_window": in.StopRunWindow,
		"indicators.yield_window":    in.YieldWindow,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	if in.VolumeSpikeRatio <= 0 || in.ExpansionRatio <= 0 {
		return fmt.Errorf("vsa ratios must be positive")
	}
	if c.Thresholds.Actionable <= 50 || c.Thresholds.Actionable > 100 {
		return fmt.Errorf("thresholds.actionable must be in (50,100], got %.1f", c.Thresholds.Actionable)
	}
	if c.Thresholds.Strong < c.Thresholds.Actionable || c.Thresholds.Strong > 100 {
		return fmt.Errorf("thresholds.strong must be in [actionable,100], got %.1f", c.Thresholds.Strong)
	}
	if c.Lock.ShockThreshold <= 0 {
		return fmt.Errorf("lock.shock_threshold must be positive")
	}
	if c.Lock.ShockCooldownMin < 0 {
		return fmt.Errorf("lock.shock_cooldown_minutes must not be negative")
	}
	if c.Risk.StopATRMult <= 0 {
		return fmt.Errorf("risk.stop_atr_mult must be positive")
	}
	if c.Risk.RewardRatio < 1 {
		return fmt.Errorf("risk.reward_ratio must be at least 1")
	}
	for name, m := range map[string]float64{
		"sessions.asian":    c.Sessions.Asian,
		"sessions.london":   c.Sessions.London,
		"sessions.overlap":  c.Sessions.Overlap,
		"sessions.new_york": c.Sessions.NewYork,
		"sessions.late_ny":  c.Sessions.LateNY,
	} {
		if m <= 0 {
			return fmt.Errorf("%s multiplier must be positive, got %.2f", name, m)
		}
	}
	return nil
}
