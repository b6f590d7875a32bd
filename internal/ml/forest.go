package ml

import (
	"math"
	"math/rand"
	"time"

	"github.com/rxtech-lab/argo-insight/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Forest defaults. Ten trees keeps training fast for interactive renders.
const (
	DefaultNumTrees = 10
	DefaultMaxDepth = 8
	DefaultMinLeaf  = 1
)

// RandomForest is an ensemble of bootstrap-sampled CART trees voting by
// majority.
type RandomForest struct {
	numTrees int
	maxDepth int
	minLeaf  int
	rng      *rand.Rand
	trees    []*decisionTree
	cols     int
}

// ForestOption configures a RandomForest.
type ForestOption func(*RandomForest)

// WithNumTrees sets the ensemble size.
func WithNumTrees(n int) ForestOption {
	return func(f *RandomForest) {
		f.numTrees = n
	}
}

// WithMaxDepth sets the per-tree depth limit.
func WithMaxDepth(depth int) ForestOption {
	return func(f *RandomForest) {
		f.maxDepth = depth
	}
}

// WithSeed makes training deterministic.
func WithSeed(seed int64) ForestOption {
	return func(f *RandomForest) {
		f.rng = rand.New(rand.NewSource(seed))
	}
}

// NewRandomForest creates a random forest classifier with default
// configuration.
func NewRandomForest(opts ...ForestOption) *RandomForest {
	forest := &RandomForest{
		numTrees: DefaultNumTrees,
		maxDepth: DefaultMaxDepth,
		minLeaf:  DefaultMinLeaf,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(forest)
	}

	return forest
}

// Fit implements the Classifier interface.
func (f *RandomForest) Fit(features mat.Matrix, labels []int) error {
	rows, cols := features.Dims()

	if rows == 0 || cols == 0 {
		return errors.New(errors.ErrCodeModelFitFailed, "feature matrix is empty")
	}

	if rows != len(labels) {
		return errors.Newf(errors.ErrCodeModelFitFailed,
			"feature matrix has %d rows but label vector has %d", rows, len(labels))
	}

	f.cols = cols
	f.trees = make([]*decisionTree, 0, f.numTrees)

	maxFeatures := int(math.Sqrt(float64(cols)))
	if maxFeatures < 1 {
		maxFeatures = 1
	}

	for i := 0; i < f.numTrees; i++ {
		// Bootstrap sample: draw rows with replacement.
		sample := make([]int, rows)
		for j := range sample {
			sample[j] = f.rng.Intn(rows)
		}

		tree := &decisionTree{
			maxDepth:    f.maxDepth,
			minLeaf:     f.minLeaf,
			maxFeatures: maxFeatures,
			rng:         f.rng,
		}
		tree.fit(features, labels, sample)

		f.trees = append(f.trees, tree)
	}

	return nil
}

// Predict implements the Classifier interface.
func (f *RandomForest) Predict(features mat.Matrix) ([]int, error) {
	if len(f.trees) == 0 {
		return nil, errors.New(errors.ErrCodeModelNotFitted, "classifier has not been fitted")
	}

	rows, cols := features.Dims()
	if cols != f.cols {
		return nil, errors.Newf(errors.ErrCodeFeatureMismatch,
			"feature matrix has %d columns but classifier was fitted with %d", cols, f.cols)
	}

	predictions := make([]int, rows)

	for row := 0; row < rows; row++ {
		votes := 0

		for _, tree := range f.trees {
			votes += tree.predict(features, row)
		}

		if votes*2 >= len(f.trees) {
			predictions[row] = 1
		}
	}

	return predictions, nil
}
