package indicator

import (
	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-insight/internal/types"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
)

// Indicator is a technical indicator computed over a full series of closing
// prices.
type Indicator interface {
	// Name returns the name of the indicator.
	Name() types.IndicatorType
	// Compute returns the indicator series for the given closing prices.
	Compute(closes []float64) (Series, error)
	// Config reconfigures the indicator parameters.
	Config(params ...any) error
}

// BandIndicator is implemented by indicators that yield an aligned
// upper/lower envelope pair in addition to their primary series.
type BandIndicator interface {
	Bands(closes []float64) (upper Series, lower Series, err error)
}

// Params holds the user-configurable window lengths for one computation.
// The short and long windows are bounded independently; a short window
// larger than the long window is allowed.
type Params struct {
	ShortWindow int     `yaml:"short_window" json:"short_window" validate:"min=10,max=100" jsonschema:"title=Short MA Window,description=Short-term moving average window in days,minimum=10,maximum=100"`
	LongWindow  int     `yaml:"long_window" json:"long_window" validate:"min=50,max=200" jsonschema:"title=Long MA Window,description=Long-term moving average window in days,minimum=50,maximum=200"`
	RSIPeriod   int     `yaml:"rsi_period" json:"rsi_period" validate:"min=2" jsonschema:"title=RSI Period,default=20"`
	BBWindow    int     `yaml:"bb_window" json:"bb_window" validate:"min=2" jsonschema:"title=Bollinger Window,default=20"`
	BBStdDev    float64 `yaml:"bb_std_dev" json:"bb_std_dev" validate:"min=0" jsonschema:"title=Bollinger Std Devs,default=2"`
}

// DefaultParams returns the default window lengths.
func DefaultParams() Params {
	return Params{
		ShortWindow: 10,
		LongWindow:  50,
		RSIPeriod:   20,
		BBWindow:    20,
		BBStdDev:    2.0,
	}
}

// Set holds every derived series for one render, aligned 1:1 by position
// with the price series they were computed from.
type Set struct {
	Params          Params `json:"params"`
	ShortMA         Series `json:"sma_short"`
	LongMA          Series `json:"sma_long"`
	RSI             Series `json:"rsi"`
	MACD            Series `json:"macd"`
	UpperBand       Series `json:"upper_band"`
	LowerBand       Series `json:"lower_band"`
	Crossover       Series `json:"crossover"`
	CrossoverSignal Series `json:"crossover_signal"`
}

var validate = validator.New()

// Compute recomputes every indicator series from scratch for the given
// price series. The result depends only on the inputs. A fresh registry is
// built per call so reconfigured indicator state never leaks between
// concurrent computations.
func Compute(series types.PriceSeries, params Params) (*Set, error) {
	registry, err := NewDefaultRegistry()
	if err != nil {
		return nil, err
	}

	return ComputeWith(registry, series, params)
}

// ComputeWith recomputes every indicator series using the implementations
// registered in the given registry.
func ComputeWith(registry IndicatorRegistry, series types.PriceSeries, params Params) (*Set, error) {
	if err := validate.Struct(params); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid indicator parameters", err)
	}

	if err := series.Validate(); err != nil {
		return nil, err
	}

	closes := series.Closes()

	shortMA, err := configuredSeries(registry, types.IndicatorTypeSMA, closes, params.ShortWindow)
	if err != nil {
		return nil, err
	}

	longMA, err := configuredSeries(registry, types.IndicatorTypeSMA, closes, params.LongWindow)
	if err != nil {
		return nil, err
	}

	rsi, err := configuredSeries(registry, types.IndicatorTypeRSI, closes, params.RSIPeriod)
	if err != nil {
		return nil, err
	}

	macd, err := configuredSeries(registry, types.IndicatorTypeMACD, closes)
	if err != nil {
		return nil, err
	}

	upper, lower, err := bandSeries(registry, closes, params)
	if err != nil {
		return nil, err
	}

	flag, err := CrossoverFlag(shortMA, longMA)
	if err != nil {
		return nil, err
	}

	return &Set{
		Params:          params,
		ShortMA:         shortMA,
		LongMA:          longMA,
		RSI:             rsi,
		MACD:            macd,
		UpperBand:       upper,
		LowerBand:       lower,
		Crossover:       flag,
		CrossoverSignal: CrossoverSignal(flag),
	}, nil
}

// configuredSeries draws an indicator from the registry, reconfigures it and
// computes it over the closes.
func configuredSeries(registry IndicatorRegistry, name types.IndicatorType, closes []float64, params ...any) (Series, error) {
	ind, err := registry.GetIndicator(name)
	if err != nil {
		return nil, err
	}

	if err := ind.Config(params...); err != nil {
		return nil, err
	}

	return ind.Compute(closes)
}

func bandSeries(registry IndicatorRegistry, closes []float64, params Params) (Series, Series, error) {
	ind, err := registry.GetIndicator(types.IndicatorTypeBollingerBands)
	if err != nil {
		return nil, nil, err
	}

	if err := ind.Config(params.BBWindow, params.BBStdDev); err != nil {
		return nil, nil, err
	}

	bands, ok := ind.(BandIndicator)
	if !ok {
		return nil, nil, errors.Newf(errors.ErrCodeIndicatorCalculation,
			"indicator %s does not produce an envelope pair", ind.Name())
	}

	return bands.Bands(closes)
}
