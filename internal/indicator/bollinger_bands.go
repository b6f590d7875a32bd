package indicator

import (
	"math"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-insight/internal/types"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
)

// BollingerBands implements the Indicator interface for Bollinger Bands.
type BollingerBands struct {
	window int     // Number of periods for the rolling window
	numStd float64 // Number of standard deviations
}

// NewBollingerBands creates a new Bollinger Bands indicator with default
// configuration.
func NewBollingerBands() *BollingerBands {
	return &BollingerBands{
		window: 20,  // Default window
		numStd: 2.0, // Default standard deviations
	}
}

// Name returns the name of the indicator.
func (bb *BollingerBands) Name() types.IndicatorType {
	return types.IndicatorTypeBollingerBands
}

// Config configures the Bollinger Bands indicator. Expected parameters:
// window (int), numStd (float64).
func (bb *BollingerBands) Config(params ...any) error {
	if len(params) != 2 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 2 parameters: window (int), numStd (float64)")
	}

	window, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for window parameter, expected int")
	}

	if window < 2 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "window must be at least 2, got %d", window)
	}

	numStd, ok := params[1].(float64)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for numStd parameter, expected float64")
	}

	if numStd < 0 {
		return errors.Newf(errors.ErrCodeInvalidStdDev, "numStd must be non-negative, got %f", numStd)
	}

	bb.window = window
	bb.numStd = numStd

	return nil
}

// Compute implements the Indicator interface. It returns the middle band,
// which is the rolling mean.
func (bb *BollingerBands) Compute(closes []float64) (Series, error) {
	return SimpleMovingAverage(closes, bb.window)
}

// Bands returns the upper and lower Bollinger bands as a pair of aligned
// series: rolling mean ± numStd × rolling sample standard deviation.
// Positions before window-1 are undefined.
func (bb *BollingerBands) Bands(closes []float64) (upper Series, lower Series, err error) {
	return Bands(closes, bb.window, bb.numStd)
}

// Bands computes Bollinger bands over an explicit rolling window.
func Bands(closes []float64, window int, numStd float64) (upper Series, lower Series, err error) {
	if window < 2 {
		return nil, nil, errors.Newf(errors.ErrCodeInvalidPeriod, "window must be at least 2, got %d", window)
	}

	if numStd < 0 {
		return nil, nil, errors.Newf(errors.ErrCodeInvalidStdDev, "numStd must be non-negative, got %f", numStd)
	}

	n := len(closes)
	upper = NewSeries(n)
	lower = NewSeries(n)

	for i := window - 1; i < n; i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += closes[j]
		}

		mean := sum / float64(window)

		// Sample standard deviation (n-1 denominator), matching a rolling
		// std with ddof=1.
		sq := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := closes[j] - mean
			sq += d * d
		}

		std := math.Sqrt(sq / float64(window-1))

		upper[i] = optional.Some(mean + numStd*std)
		lower[i] = optional.Some(mean - numStd*std)
	}

	return upper, lower, nil
}
