// Package provider defines the upstream data collaborators: price-history
// providers keyed by ticker and date range, and fundamentals providers
// keyed by ticker.
package provider

import (
	"context"
	"time"

	"github.com/rxtech-lab/argo-insight/internal/types"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderPolygon ProviderType = "polygon"
	ProviderYahoo   ProviderType = "yahoo"
	ProviderBinance ProviderType = "binance"
)

// OnDownloadProgress reports bulk download progress.
type OnDownloadProgress = func(current float64, total float64, message string)

// HistoryProvider fetches daily price history for a ticker.
type HistoryProvider interface {
	// GetDailyHistory returns the daily bars for the ticker between start
	// and end, ordered by trading date.
	GetDailyHistory(ctx context.Context, ticker string, start, end time.Time) (types.PriceSeries, error)
}

// FundamentalsProvider fetches a company fundamentals snapshot for a
// ticker. Fields the upstream cannot supply are None, never an error.
type FundamentalsProvider interface {
	GetFundamentals(ctx context.Context, ticker string) (types.Fundamentals, error)
}

// NewHistoryProvider creates a history provider of the given type.
// The config parameter carries the API key for providers that need one.
func NewHistoryProvider(providerType ProviderType, config any) (HistoryProvider, error) {
	switch providerType {
	case ProviderPolygon:
		apiKey, ok := config.(string)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration, "polygon provider requires API key string config")
		}

		return NewPolygonProvider(apiKey)
	case ProviderYahoo:
		return NewYahooProvider(), nil
	case ProviderBinance:
		return NewBinanceProvider(), nil
	default:
		return nil, errors.Newf(errors.ErrCodeProviderUnsupported, "unsupported market data provider: %s", providerType)
	}
}
