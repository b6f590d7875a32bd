package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-insight/internal/types"
)

// MACD spans are fixed and not user-configurable.
const (
	macdFastSpan = 12
	macdSlowSpan = 26
)

// MACD represents the Moving Average Convergence Divergence indicator.
type MACD struct{}

// NewMACD creates a new MACD indicator.
func NewMACD() *MACD {
	return &MACD{}
}

// Name returns the name of the indicator.
func (m *MACD) Name() types.IndicatorType {
	return types.IndicatorTypeMACD
}

// Config accepts no parameters; the 12/26 spans are fixed.
func (m *MACD) Config(params ...any) error {
	return nil
}

// Compute implements the Indicator interface.
func (m *MACD) Compute(closes []float64) (Series, error) {
	return MovingAverageConvergenceDivergence(closes)
}

// MovingAverageConvergenceDivergence returns EMA(12) - EMA(26) of the
// closing prices. Both EMAs are seeded by the first value, so the result is
// defined at every position.
func MovingAverageConvergenceDivergence(closes []float64) (Series, error) {
	fast, err := ExponentialMovingAverage(closes, macdFastSpan)
	if err != nil {
		return nil, err
	}

	slow, err := ExponentialMovingAverage(closes, macdSlowSpan)
	if err != nil {
		return nil, err
	}

	out := NewSeries(len(closes))
	for i := range closes {
		out[i] = optional.Some(fast[i].Unwrap() - slow[i].Unwrap())
	}

	return out, nil
}
