package types

// IndicatorType identifies a technical indicator.
type IndicatorType string

const (
	IndicatorTypeSMA             IndicatorType = "sma"
	IndicatorTypeEMA             IndicatorType = "ema"
	IndicatorTypeRSI             IndicatorType = "rsi"
	IndicatorTypeMACD            IndicatorType = "macd"
	IndicatorTypeBollingerBands  IndicatorType = "bollinger_bands"
	IndicatorTypeCrossoverSignal IndicatorType = "crossover_signal"
)
