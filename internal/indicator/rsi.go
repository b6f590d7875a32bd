package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-insight/internal/types"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
)

// RSI represents the Relative Strength Index indicator.
type RSI struct {
	period int
}

// NewRSI creates a new RSI indicator with default configuration.
func NewRSI() *RSI {
	return &RSI{
		period: 20, // Default period
	}
}

// Name returns the name of the indicator.
func (r *RSI) Name() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// Config configures the RSI indicator. Expected parameters: period (int).
func (r *RSI) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 1 parameter: period (int)")
	}

	period, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for period parameter, expected int")
	}

	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	r.period = period

	return nil
}

// Compute implements the Indicator interface.
func (r *RSI) Compute(closes []float64) (Series, error) {
	return RelativeStrengthIndex(closes, r.period)
}

// RelativeStrengthIndex computes the RSI from trailing rolling means of
// day-over-day gains and losses.
//
// The first position has no prior close; its gain and loss both count as
// zero, so the result is defined from position period-1 onward. A window
// with zero rolling loss and positive rolling gain saturates to exactly
// 100. A completely flat window (zero gain and zero loss) is undefined.
func RelativeStrengthIndex(closes []float64, period int) (Series, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	n := len(closes)
	out := NewSeries(n)

	gains := make([]float64, n)
	losses := make([]float64, n)

	for i := 1; i < n; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	gainSum := 0.0
	lossSum := 0.0

	for i := 0; i < n; i++ {
		gainSum += gains[i]
		lossSum += losses[i]

		if i >= period {
			gainSum -= gains[i-period]
			lossSum -= losses[i-period]
		}

		if i < period-1 {
			continue
		}

		meanGain := gainSum / float64(period)
		meanLoss := lossSum / float64(period)

		switch {
		case meanLoss == 0 && meanGain == 0:
			// 0/0 ratio, no value
		case meanLoss == 0:
			out[i] = optional.Some(100.0)
		default:
			ratio := meanGain / meanLoss
			out[i] = optional.Some(100.0 - 100.0/(1.0+ratio))
		}
	}

	return out, nil
}
