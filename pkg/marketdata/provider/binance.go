package provider

import (
	"context"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/rxtech-lab/argo-insight/internal/types"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
)

// BinanceProvider fetches daily klines from Binance. Crypto symbols have no
// company fundamentals, so it implements HistoryProvider only.
type BinanceProvider struct {
	client *binance.Client
}

// NewBinanceProvider creates a Binance history provider. Public kline data
// requires no API credentials.
func NewBinanceProvider() *BinanceProvider {
	return &BinanceProvider{
		client: binance.NewClient("", ""),
	}
}

// GetDailyHistory implements HistoryProvider.
func (p *BinanceProvider) GetDailyHistory(ctx context.Context, ticker string, start, end time.Time) (types.PriceSeries, error) {
	klines, err := p.client.NewKlinesService().
		Symbol(ticker).
		Interval("1d").
		StartTime(start.UnixMilli()).
		EndTime(end.UnixMilli()).
		Limit(1000).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeHistoryFetchFailed, err,
			"binance klines request failed for %s", ticker)
	}

	series := make(types.PriceSeries, 0, len(klines))

	for _, k := range klines {
		bar, err := klineToBar(ticker, k)
		if err != nil {
			return nil, err
		}

		series = append(series, bar)
	}

	return series, nil
}

func klineToBar(ticker string, k *binance.Kline) (types.MarketData, error) {
	fields := []string{k.Open, k.High, k.Low, k.Close, k.Volume}
	parsed := make([]float64, len(fields))

	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return types.MarketData{}, errors.Wrapf(errors.ErrCodeHistoryParseFailed, err,
				"failed to parse binance kline field %q", field)
		}

		parsed[i] = value
	}

	return types.MarketData{
		Time:   time.UnixMilli(k.OpenTime).UTC(),
		Ticker: ticker,
		Open:   parsed[0],
		High:   parsed[1],
		Low:    parsed[2],
		Close:  parsed[3],
		Volume: parsed[4],
	}, nil
}
