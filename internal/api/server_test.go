package api

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/config"
	"GoldSentinel/internal/engine"
	"GoldSentinel/internal/model"
	"GoldSentinel/internal/safety"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg, err := config.Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}

	t0 := time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, 250)
	prev := 1800.0
	for i := range bars {
		c := 1800.0 + float64(i)
		bars[i] = model.OHLCV{
			Time: t0.Add(time.Duration(i) * 5 * time.Minute),
			Open: prev, High: math.Max(prev, c) + 1, Low: math.Min(prev, c) - 1,
			Close: c, Volume: 1000,
		}
		prev = c
	}
	mock := &collector.MockFetcher{FastBars: bars, SlowBars: bars}
	col := collector.NewCollector(mock, cfg)
	eval := engine.NewEvaluator(col, safety.NewGate(cfg, nil), cfg)
	return NewServer(eval, cfg)
}

func TestStatus(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Engine.Signal == "" {
		t.Error("response must carry a signal")
	}
	if resp.Session.Name == "" {
		t.Error("response must carry a session profile")
	}
	if resp.Timestamp == "" {
		t.Error("response must carry a timestamp")
	}
}

func TestStatus_IntervalParam(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/status?interval=5m", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("configured interval must be accepted, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/status?interval=4h", nil)
	rec = httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unsupported interval must be rejected, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("healthz: status %d", rec.Code)
	}
}
