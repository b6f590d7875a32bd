package provider

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-insight/internal/types"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider fetches daily price history from the Yahoo Finance chart
// API and company fundamentals from the quoteSummary API.
type YahooProvider struct {
	client *resty.Client
}

// NewYahooProvider creates a Yahoo Finance provider.
func NewYahooProvider() *YahooProvider {
	return NewYahooProviderWithBaseURL(yahooBaseURL)
}

// NewYahooProviderWithBaseURL creates a provider against a custom endpoint.
// Used by tests to point at a local server.
func NewYahooProviderWithBaseURL(baseURL string) *YahooProvider {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", "Mozilla/5.0 (compatible; argo-insight)").
		SetTimeout(30 * time.Second)

	return &YahooProvider{
		client: client,
	}
}

// yahooChartResponse is the top-level chart API container.
type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// yahooValue is Yahoo's {"raw": 12.3, "fmt": "12.30"} number wrapper.
type yahooValue struct {
	Raw *float64 `json:"raw"`
}

type yahooQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			SummaryProfile struct {
				Sector  string `json:"sector"`
				Country string `json:"country"`
			} `json:"summaryProfile"`
			SummaryDetail struct {
				TrailingPE yahooValue `json:"trailingPE"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics struct {
				PriceToBook yahooValue `json:"priceToBook"`
				TrailingEps yahooValue `json:"trailingEps"`
			} `json:"defaultKeyStatistics"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"quoteSummary"`
}

// GetDailyHistory implements HistoryProvider.
func (p *YahooProvider) GetDailyHistory(ctx context.Context, ticker string, start, end time.Time) (types.PriceSeries, error) {
	var out yahooChartResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"period1":  strconv.FormatInt(start.Unix(), 10),
			"period2":  strconv.FormatInt(end.Unix(), 10),
			"interval": "1d",
		}).
		SetResult(&out).
		Get(fmt.Sprintf("/v8/finance/chart/%s", ticker))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeHistoryFetchFailed, err,
			"yahoo chart request failed for %s", ticker)
	}

	if resp.IsError() {
		return nil, errors.Newf(errors.ErrCodeHistoryFetchFailed,
			"yahoo chart request for %s returned status %d", ticker, resp.StatusCode())
	}

	if len(out.Chart.Result) == 0 {
		return nil, errors.Newf(errors.ErrCodeDataNotFound, "yahoo returned no chart data for %s", ticker)
	}

	result := out.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, errors.Newf(errors.ErrCodeHistoryParseFailed, "yahoo chart data for %s has no quote block", ticker)
	}

	quote := result.Indicators.Quote[0]

	// Every quote array must line up with the timestamps; a truncated
	// block in any one of them makes the whole response unusable.
	fields := []struct {
		name   string
		length int
	}{
		{"open", len(quote.Open)},
		{"high", len(quote.High)},
		{"low", len(quote.Low)},
		{"close", len(quote.Close)},
		{"volume", len(quote.Volume)},
	}

	for _, field := range fields {
		if field.length != len(result.Timestamp) {
			return nil, errors.Newf(errors.ErrCodeHistoryParseFailed,
				"yahoo chart data for %s is misaligned: %d %s values for %d timestamps",
				ticker, field.length, field.name, len(result.Timestamp))
		}
	}

	series := make(types.PriceSeries, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		series = append(series, types.MarketData{
			Time:   time.Unix(ts, 0).UTC(),
			Ticker: ticker,
			Open:   quote.Open[i],
			High:   quote.High[i],
			Low:    quote.Low[i],
			Close:  quote.Close[i],
			Volume: quote.Volume[i],
		})
	}

	return series, nil
}

// GetFundamentals implements FundamentalsProvider. Fields missing from the
// upstream response are None.
func (p *YahooProvider) GetFundamentals(ctx context.Context, ticker string) (types.Fundamentals, error) {
	var out yahooQuoteSummaryResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("modules", "summaryProfile,summaryDetail,defaultKeyStatistics").
		SetResult(&out).
		Get(fmt.Sprintf("/v10/finance/quoteSummary/%s", ticker))
	if err != nil {
		return types.Fundamentals{}, errors.Wrapf(errors.ErrCodeFundamentalsFetchFailed, err,
			"yahoo quoteSummary request failed for %s", ticker)
	}

	if resp.IsError() {
		return types.Fundamentals{}, errors.Newf(errors.ErrCodeFundamentalsFetchFailed,
			"yahoo quoteSummary request for %s returned status %d", ticker, resp.StatusCode())
	}

	if len(out.QuoteSummary.Result) == 0 {
		return types.Fundamentals{}, errors.Newf(errors.ErrCodeDataNotFound,
			"yahoo returned no fundamentals for %s", ticker)
	}

	result := out.QuoteSummary.Result[0]

	return types.Fundamentals{
		Ticker:      ticker,
		Sector:      stringOption(result.SummaryProfile.Sector),
		Country:     stringOption(result.SummaryProfile.Country),
		PERatio:     optional.FromNillable(result.SummaryDetail.TrailingPE.Raw),
		PBRatio:     optional.FromNillable(result.DefaultKeyStatistics.PriceToBook.Raw),
		TrailingEPS: optional.FromNillable(result.DefaultKeyStatistics.TrailingEps.Raw),
	}, nil
}

func stringOption(value string) optional.Option[string] {
	if value == "" {
		return optional.None[string]()
	}

	return optional.Some(value)
}
