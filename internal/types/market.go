package types

import (
	"time"

	"github.com/rxtech-lab/argo-insight/pkg/errors"
)

// MarketData is a single daily bar for a ticker.
type MarketData struct {
	Time   time.Time `json:"time"`
	Ticker string    `json:"ticker"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries is a daily price history ordered by trading date.
type PriceSeries []MarketData

// Validate checks the ordering invariant: strictly increasing by date,
// no duplicate dates.
func (s PriceSeries) Validate() error {
	for i := 1; i < len(s); i++ {
		if s[i].Time.Equal(s[i-1].Time) {
			return errors.Newf(errors.ErrCodeDuplicateDate,
				"duplicate date %s at row %d", s[i].Time.Format("2006-01-02"), i)
		}

		if s[i].Time.Before(s[i-1].Time) {
			return errors.Newf(errors.ErrCodeUnorderedSeries,
				"date %s at row %d precedes previous row", s[i].Time.Format("2006-01-02"), i)
		}
	}

	return nil
}

// Closes returns the closing prices in series order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, bar := range s {
		closes[i] = bar.Close
	}

	return closes
}

// Dates returns the trading dates in series order.
func (s PriceSeries) Dates() []time.Time {
	dates := make([]time.Time, len(s))
	for i, bar := range s {
		dates[i] = bar.Time
	}

	return dates
}
