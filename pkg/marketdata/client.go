// Package marketdata downloads daily price history from a provider into
// the local DuckDB store.
package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-insight/internal/logger"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
	"github.com/rxtech-lab/argo-insight/pkg/marketdata/provider"
	"github.com/rxtech-lab/argo-insight/pkg/marketdata/store"
	"github.com/schollz/progressbar/v3"
)

// ClientConfig holds the configuration for the market data client.
type ClientConfig struct {
	ProviderType  provider.ProviderType `validate:"required,oneof=polygon yahoo binance"`
	StorePath     string                `validate:"required"`
	PolygonApiKey string                `validate:"required_if=ProviderType polygon"`
}

// DownloadParams holds the parameters for one download request.
type DownloadParams struct {
	Ticker    string    `validate:"required"`
	StartDate time.Time `validate:"required"`
	EndDate   time.Time `validate:"required,gtfield=StartDate"`
	// OnProgress, when set, is invoked after each stored chunk.
	OnProgress provider.OnDownloadProgress
}

// Client downloads history from a provider and persists it in the store.
type Client struct {
	provider provider.HistoryProvider
	store    *store.Store
	config   ClientConfig
	validate *validator.Validate
	logger   *logger.Logger
}

// NewClient creates a market data client with the given configuration.
func NewClient(config ClientConfig, log *logger.Logger) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid client configuration", err)
	}

	var providerConfig any
	if config.ProviderType == provider.ProviderPolygon {
		providerConfig = config.PolygonApiKey
	}

	historyProvider, err := provider.NewHistoryProvider(config.ProviderType, providerConfig)
	if err != nil {
		return nil, err
	}

	barStore, err := store.NewStore(config.StorePath, log)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Client{
		provider: historyProvider,
		store:    barStore,
		config:   config,
		validate: validate,
		logger:   log,
	}, nil
}

// Download fetches the daily history for the given parameters and writes
// it to the store, reporting progress bar-by-bar.
func (c *Client) Download(ctx context.Context, params DownloadParams) (int, error) {
	if err := c.validate.Struct(params); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid download parameters", err)
	}

	series, err := c.provider.GetDailyHistory(ctx, params.Ticker, params.StartDate, params.EndDate)
	if err != nil {
		return 0, err
	}

	if len(series) == 0 {
		return 0, errors.Newf(errors.ErrCodeDataNotFound,
			"no bars returned for %s between %s and %s",
			params.Ticker, params.StartDate.Format("2006-01-02"), params.EndDate.Format("2006-01-02"))
	}

	bar := progressbar.NewOptions(len(series),
		progressbar.OptionSetDescription(fmt.Sprintf("Storing %s", params.Ticker)),
		progressbar.OptionShowCount(),
	)

	// Write in chunks so the bar tracks real store progress.
	const chunkSize = 250

	for offset := 0; offset < len(series); offset += chunkSize {
		limit := offset + chunkSize
		if limit > len(series) {
			limit = len(series)
		}

		if err := c.store.WriteBars(series[offset:limit]); err != nil {
			return 0, err
		}

		_ = bar.Add(limit - offset)

		if params.OnProgress != nil {
			params.OnProgress(float64(limit), float64(len(series)),
				fmt.Sprintf("stored %d/%d bars for %s", limit, len(series), params.Ticker))
		}
	}

	return len(series), nil
}

// Store exposes the underlying bar store.
func (c *Client) Store() *store.Store {
	return c.store
}

// Close releases the store.
func (c *Client) Close() error {
	return c.store.Close()
}
