// Package ml provides the binary classifier collaborator used by the
// prediction panel. The pipeline depends only on the Classifier interface;
// the bundled implementation is a small random forest.
package ml

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Classifier is a binary classifier with fit/predict capability.
type Classifier interface {
	// Fit trains the classifier on a feature matrix and label vector.
	Fit(features mat.Matrix, labels []int) error
	// Predict returns a label for each row of the feature matrix.
	Predict(features mat.Matrix) ([]int, error)
}

// Accuracy returns the share of predictions matching the true labels.
// Returns 0 when the slices are empty or of different length.
func Accuracy(predicted, truth []int) float64 {
	if len(predicted) == 0 || len(predicted) != len(truth) {
		return 0
	}

	matches := make([]float64, len(predicted))
	for i := range predicted {
		if predicted[i] == truth[i] {
			matches[i] = 1
		}
	}

	return stat.Mean(matches, nil)
}
