package pipeline

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-insight/pkg/errors"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"
)

type SplitTestSuite struct {
	suite.Suite
}

func TestSplitSuite(t *testing.T) {
	suite.Run(t, new(SplitTestSuite))
}

func makeTrainingSet(n int) *TrainingSet {
	cols := len(FeatureColumns)
	data := make([]float64, n*cols)
	labels := make([]int, n)
	dates := make([]time.Time, n)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = float64(i*cols + j)
		}

		labels[i] = i % 2
		dates[i] = start.AddDate(0, 0, i)
	}

	return &TrainingSet{
		Features: mat.NewDense(n, cols, data),
		Labels:   labels,
		Dates:    dates,
	}
}

func (suite *SplitTestSuite) TestPartitionSizes() {
	tests := []struct {
		name         string
		rows         int
		testFraction float64
		expectedTest int
	}{
		{
			name:         "20 percent of 10 rows",
			rows:         10,
			testFraction: 0.2,
			expectedTest: 2,
		},
		{
			name:         "fraction rounds up",
			rows:         11,
			testFraction: 0.2,
			expectedTest: 3,
		},
		{
			name:         "tiny fraction keeps one test row",
			rows:         10,
			testFraction: 0.01,
			expectedTest: 1,
		},
		{
			name:         "large fraction keeps one train row",
			rows:         5,
			testFraction: 0.99,
			expectedTest: 4,
		},
		{
			name:         "two rows split one and one",
			rows:         2,
			testFraction: 0.5,
			expectedTest: 1,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			ts := makeTrainingSet(tt.rows)

			train, test, err := Split(ts, tt.testFraction, rand.New(rand.NewSource(1)))
			suite.Require().NoError(err)
			suite.Equal(tt.expectedTest, test.Rows())
			suite.Equal(tt.rows-tt.expectedTest, train.Rows())
		})
	}
}

func (suite *SplitTestSuite) TestPartitionsAreDisjointAndCover() {
	ts := makeTrainingSet(20)

	train, test, err := Split(ts, DefaultTestFraction, rand.New(rand.NewSource(7)))
	suite.Require().NoError(err)

	seen := make(map[time.Time]int)
	for _, d := range train.Dates {
		seen[d]++
	}

	for _, d := range test.Dates {
		seen[d]++
	}

	suite.Len(seen, 20)
	for date, count := range seen {
		suite.Equal(1, count, date.Format("2006-01-02"))
	}
}

func (suite *SplitTestSuite) TestRowsStayAligned() {
	ts := makeTrainingSet(15)

	train, test, err := Split(ts, 0.3, rand.New(rand.NewSource(3)))
	suite.Require().NoError(err)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, part := range []*TrainingSet{train, test} {
		for i, date := range part.Dates {
			// Recover the original row index from the date and verify the
			// features and label travelled with it
			original := int(date.Sub(start).Hours() / 24)

			suite.Equal(original%2, part.Labels[i])
			suite.Equal(float64(original*len(FeatureColumns)), part.Features.At(i, 0))
		}
	}
}

func (suite *SplitTestSuite) TestSeededSplitIsReproducible() {
	ts := makeTrainingSet(30)

	train1, test1, err := Split(ts, 0.2, rand.New(rand.NewSource(42)))
	suite.Require().NoError(err)

	train2, test2, err := Split(ts, 0.2, rand.New(rand.NewSource(42)))
	suite.Require().NoError(err)

	suite.Equal(train1.Dates, train2.Dates)
	suite.Equal(test1.Dates, test2.Dates)
	suite.Equal(train1.Labels, train2.Labels)
	suite.Equal(test1.Labels, test2.Labels)
}

func (suite *SplitTestSuite) TestInvalidFraction() {
	ts := makeTrainingSet(10)

	for _, fraction := range []float64{0, -0.1, 1, 1.5} {
		_, _, err := Split(ts, fraction, nil)
		suite.Require().Error(err, "fraction %f", fraction)
		suite.True(errors.HasCode(err, errors.ErrCodeInvalidFraction), "fraction %f", fraction)
	}
}

func (suite *SplitTestSuite) TestTooFewRows() {
	_, _, err := Split(makeTrainingSet(1), 0.2, nil)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeSplitFailed))

	_, _, err = Split(nil, 0.2, nil)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeSplitFailed))
}
