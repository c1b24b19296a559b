package collector

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"TrendScope/internal/model"
)

// StooqFetcher implements Fetcher using the Stooq daily CSV endpoint.
// Stooq serves US tickers with a ".us" suffix (e.g. "aapl.us").
type StooqFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewStooqFetcher creates a new fetcher with optional proxy support.
func NewStooqFetcher(proxyURL string) *StooqFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &StooqFetcher{
		BaseURL: "https://stooq.com",
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *StooqFetcher) Name() string { return "stooq" }

func (f *StooqFetcher) stooqSymbol(symbol string) string {
	s := strings.ToLower(symbol)
	if !strings.Contains(s, ".") {
		s += ".us"
	}
	return s
}

func (f *StooqFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	endpoint := fmt.Sprintf("%s/q/d/l/?s=%s&i=d", f.BaseURL, url.QueryEscape(f.stooqSymbol(symbol)))

	resp, err := f.Client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("stooq fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("stooq: status %d, body: %s", resp.StatusCode, string(body))
	}

	bars, err := parseStooqCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("stooq parse: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("stooq: no data for %s", symbol)
	}
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

// parseStooqCSV parses the "Date,Open,High,Low,Close,Volume" format.
// Rows with unparseable fields are skipped.
func parseStooqCSV(r io.Reader) ([]model.OHLCV, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	bars := make([]model.OHLCV, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 5 {
			continue
		}
		ts, err := time.Parse("2006-01-02", rec[0])
		if err != nil {
			continue
		}
		o, err1 := strconv.ParseFloat(rec[1], 64)
		h, err2 := strconv.ParseFloat(rec[2], 64)
		l, err3 := strconv.ParseFloat(rec[3], 64)
		c, err4 := strconv.ParseFloat(rec[4], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		var v float64
		if len(rec) >= 6 {
			v, _ = strconv.ParseFloat(rec[5], 64)
		}
		bars = append(bars, model.OHLCV{Time: ts, Open: o, High: h, Low: l, Close: c, Volume: v})
	}
	return bars, nil
}
