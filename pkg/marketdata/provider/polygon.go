package provider

import (
	"context"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	"github.com/rxtech-lab/argo-insight/internal/types"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
)

// PolygonProvider fetches daily price history from Polygon.io.
type PolygonProvider struct {
	client *polygon.Client
}

// NewPolygonProvider creates a Polygon history provider.
func NewPolygonProvider(apiKey string) (*PolygonProvider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "polygon apiKey is required")
	}

	return &PolygonProvider{
		client: polygon.New(apiKey),
	}, nil
}

// GetDailyHistory implements HistoryProvider.
func (p *PolygonProvider) GetDailyHistory(ctx context.Context, ticker string, start, end time.Time) (types.PriceSeries, error) {
	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     ticker,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(start),
		To:         models.Millis(end),
	}.WithOrder(models.Asc).WithLimit(50000)

	iter := p.client.ListAggs(ctx, params)

	var series types.PriceSeries

	for iter.Next() {
		agg := iter.Item()

		series = append(series, types.MarketData{
			Time:   time.Time(agg.Timestamp).UTC(),
			Ticker: ticker,
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeHistoryFetchFailed, err,
			"polygon aggregates request failed for %s", ticker)
	}

	return series, nil
}
