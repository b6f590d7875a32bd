package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-insight/internal/types"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
)

// EMA indicator implements Exponential Moving Average calculation over a
// full price series.
type EMA struct {
	span int
}

// NewEMA creates a new EMA indicator with default configuration.
func NewEMA() *EMA {
	return &EMA{
		span: 20, // Default span
	}
}

// Name returns the name of the indicator.
func (e *EMA) Name() types.IndicatorType {
	return types.IndicatorTypeEMA
}

// Config configures the EMA indicator. Expected parameters: span (int).
func (e *EMA) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 1 parameter: span (int)")
	}

	span, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for span parameter, expected int")
	}

	if span <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "span must be a positive integer, got %d", span)
	}

	e.span = span

	return nil
}

// Compute implements the Indicator interface.
func (e *EMA) Compute(closes []float64) (Series, error) {
	return ExponentialMovingAverage(closes, e.span)
}

// ExponentialMovingAverage returns the recursive non-adjusted EMA of the
// closing prices, seeded by the first value.
// Use alpha = 2/(span+1) to match pandas ewm implementation with adjust=False.
func ExponentialMovingAverage(closes []float64, span int) (Series, error) {
	if span <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "span must be a positive integer, got %d", span)
	}

	out := NewSeries(len(closes))
	if len(closes) == 0 {
		return out, nil
	}

	alpha := 2.0 / float64(span+1)

	ema := closes[0]
	out[0] = optional.Some(ema)

	for i := 1; i < len(closes); i++ {
		// EMA = price * alpha + EMA_prev * (1 - alpha)
		ema = (closes[i] * alpha) + (ema * (1 - alpha))
		out[i] = optional.Some(ema)
	}

	return out, nil
}
