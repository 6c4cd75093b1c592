package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"GoldSentinel/internal/model"
)

// BridgeFetcher implements Fetcher against a self-hosted market-data bridge
// REST API, for deployments that cannot reach Yahoo directly.
type BridgeFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewBridgeFetcher creates a new fetcher with optional proxy support.
func NewBridgeFetcher(baseURL, apiKey, proxyURL string, timeout time.Duration) *BridgeFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &BridgeFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *BridgeFetcher) Name() string { return "bridge" }

// bridgeBar is the expected JSON shape from the bridge API.
type bridgeBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

func (f *BridgeFetcher) FetchBars(ctx context.Context, symbol, interval string, limit int) ([]model.OHLCV, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars?symbol=%s&interval=%s&limit=%d",
		f.BaseURL, url.QueryEscape(symbol), interval, limit)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}
	var raw []bridgeBar
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	bars := make([]model.OHLCV, len(raw))
	for i, b := range raw {
		bars[i] = model.OHLCV{
			Time:   time.Unix(b.Timestamp, 0),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func (f *BridgeFetcher) FetchSeries(ctx context.Context, symbol, interval string, limit int) ([]model.MacroPoint, error) {
	bars, err := f.FetchBars(ctx, symbol, interval, limit)
	if err != nil {
		return nil, err
	}
	points := make([]model.MacroPoint, len(bars))
	for i, b := range bars {
		points[i] = model.MacroPoint{Time: b.Time, Value: b.Close}
	}
	return points, nil
}
