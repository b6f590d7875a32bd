// Package pipeline assembles indicator columns into a feature matrix and
// label vector and partitions them for training.
package pipeline

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-insight/internal/indicator"
	"github.com/rxtech-lab/argo-insight/internal/types"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MinRows is the minimum number of complete rows required before a
// train/test split is attempted.
const MinRows = 5

// FeatureColumns names the feature matrix columns in order.
var FeatureColumns = []string{"sma_short", "sma_long", "rsi", "macd"}

// TrainingSet is a feature matrix with its aligned label vector. Rows are
// dates with complete indicator data.
type TrainingSet struct {
	Features *mat.Dense
	Labels   []int
	Dates    []time.Time
}

// Rows returns the number of rows in the set.
func (ts *TrainingSet) Rows() int {
	return len(ts.Labels)
}

// Labels derives the next-day-direction label for each position: 1 if the
// next close is strictly greater than the current close, 0 otherwise. The
// final position has no next row and is undefined.
func Labels(series types.PriceSeries) indicator.Series {
	labels := indicator.NewSeries(len(series))

	for i := 0; i+1 < len(series); i++ {
		if series[i+1].Close > series[i].Close {
			labels[i] = optional.Some(1.0)
		} else {
			labels[i] = optional.Some(0.0)
		}
	}

	return labels
}

// Build assembles the training set from a price series and its computed
// indicator set. Rows where any of the short MA, long MA, RSI, MACD or
// label is undefined are dropped before assembly; a row with an undefined
// numeric value must never reach the classifier. Fewer than MinRows
// complete rows yields an InsufficientDataError.
func Build(series types.PriceSeries, set *indicator.Set) (*TrainingSet, error) {
	if set == nil {
		return nil, errors.New(errors.ErrCodeFeatureAssembly, "indicator set is nil")
	}

	if len(series) != set.ShortMA.Len() {
		return nil, errors.Newf(errors.ErrCodeFeatureAssembly,
			"series has %d rows but indicator set has %d", len(series), set.ShortMA.Len())
	}

	labels := Labels(series)

	var (
		data     []float64
		labelVec []int
		dates    []time.Time
	)

	for i := range series {
		shortMA, ok := set.ShortMA.Value(i)
		if !ok {
			continue
		}

		longMA, ok := set.LongMA.Value(i)
		if !ok {
			continue
		}

		rsi, ok := set.RSI.Value(i)
		if !ok {
			continue
		}

		macd, ok := set.MACD.Value(i)
		if !ok {
			continue
		}

		label, ok := labels.Value(i)
		if !ok {
			continue
		}

		data = append(data, shortMA, longMA, rsi, macd)
		labelVec = append(labelVec, int(label))
		dates = append(dates, series[i].Time)
	}

	if len(labelVec) < MinRows {
		ticker := ""
		if len(series) > 0 {
			ticker = series[0].Ticker
		}

		return nil, errors.NewInsufficientDataErrorf(MinRows, len(labelVec), ticker,
			"not enough data available for prediction: %d complete rows, need at least %d", len(labelVec), MinRows)
	}

	return &TrainingSet{
		Features: mat.NewDense(len(labelVec), len(FeatureColumns), data),
		Labels:   labelVec,
		Dates:    dates,
	}, nil
}

// subset returns a new TrainingSet containing the given rows.
func (ts *TrainingSet) subset(rows []int) *TrainingSet {
	cols := len(FeatureColumns)
	data := make([]float64, 0, len(rows)*cols)
	labels := make([]int, 0, len(rows))
	dates := make([]time.Time, 0, len(rows))

	for _, row := range rows {
		data = append(data, mat.Row(nil, row, ts.Features)...)
		labels = append(labels, ts.Labels[row])
		dates = append(dates, ts.Dates[row])
	}

	return &TrainingSet{
		Features: mat.NewDense(len(rows), cols, data),
		Labels:   labels,
		Dates:    dates,
	}
}
