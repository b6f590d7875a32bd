package pipeline

import (
	"math"
	"math/rand"
	"time"

	"github.com/rxtech-lab/argo-insight/pkg/errors"
)

// DefaultTestFraction is the share of rows held out for testing.
const DefaultTestFraction = 0.2

// Split randomly partitions the training set, holding out testFraction of
// the rows for testing. The test row count is ceil(testFraction × rows),
// clamped so both partitions are non-empty.
//
// Pass a seeded rand for reproducible partitions; a nil rng is seeded from
// the current time, so the default partition is non-deterministic.
func Split(ts *TrainingSet, testFraction float64, rng *rand.Rand) (train *TrainingSet, test *TrainingSet, err error) {
	if ts == nil {
		return nil, nil, errors.New(errors.ErrCodeSplitFailed, "training set is nil")
	}

	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, errors.Newf(errors.ErrCodeInvalidFraction,
			"test fraction must be in (0, 1), got %f", testFraction)
	}

	n := ts.Rows()
	if n < 2 {
		return nil, nil, errors.Newf(errors.ErrCodeSplitFailed,
			"need at least 2 rows to split, got %d", n)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	testCount := int(math.Ceil(testFraction * float64(n)))
	if testCount < 1 {
		testCount = 1
	}

	if testCount > n-1 {
		testCount = n - 1
	}

	perm := rng.Perm(n)

	return ts.subset(perm[testCount:]), ts.subset(perm[:testCount]), nil
}
