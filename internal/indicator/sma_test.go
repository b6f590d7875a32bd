package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-insight/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type SMATestSuite struct {
	suite.Suite
}

func TestSMASuite(t *testing.T) {
	suite.Run(t, new(SMATestSuite))
}

func (suite *SMATestSuite) TestSimpleMovingAverage() {
	tests := []struct {
		name     string
		closes   []float64
		period   int
		defined  []bool
		expected []float64
	}{
		{
			name:     "three day window",
			closes:   []float64{1, 2, 3, 4, 5},
			period:   3,
			defined:  []bool{false, false, true, true, true},
			expected: []float64{0, 0, 2, 3, 4},
		},
		{
			name:     "window equals series length",
			closes:   []float64{2, 4, 6},
			period:   3,
			defined:  []bool{false, false, true},
			expected: []float64{0, 0, 4},
		},
		{
			name:     "window longer than series",
			closes:   []float64{1, 2},
			period:   5,
			defined:  []bool{false, false},
			expected: []float64{0, 0},
		},
		{
			name:     "period one echoes the input",
			closes:   []float64{3, 1, 4},
			period:   1,
			defined:  []bool{true, true, true},
			expected: []float64{3, 1, 4},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			result, err := SimpleMovingAverage(tt.closes, tt.period)
			suite.Require().NoError(err)
			suite.Require().Equal(len(tt.closes), result.Len())

			for i := range tt.closes {
				value, ok := result.Value(i)
				suite.Equal(tt.defined[i], ok, "position %d", i)

				if tt.defined[i] {
					suite.InDelta(tt.expected[i], value, 1e-9, "position %d", i)
				}
			}
		})
	}
}

func (suite *SMATestSuite) TestInvalidPeriod() {
	_, err := SimpleMovingAverage([]float64{1, 2, 3}, 0)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))

	_, err = SimpleMovingAverage([]float64{1, 2, 3}, -5)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}

func (suite *SMATestSuite) TestEmptyInput() {
	result, err := SimpleMovingAverage(nil, 3)
	suite.Require().NoError(err)
	suite.Equal(0, result.Len())
}

func (suite *SMATestSuite) TestConfig() {
	sma := NewSMA()

	suite.Require().NoError(sma.Config(5))

	result, err := sma.Compute([]float64{1, 2, 3, 4, 5})
	suite.Require().NoError(err)

	value, ok := result.Value(4)
	suite.True(ok)
	suite.InDelta(3.0, value, 1e-9)

	// Float periods are truncated
	suite.Require().NoError(sma.Config(2.0))

	err = sma.Config()
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingParameter))

	err = sma.Config("three")
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidType))

	err = sma.Config(0)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}
