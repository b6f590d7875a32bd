package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-insight/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type RSITestSuite struct {
	suite.Suite
}

func TestRSISuite(t *testing.T) {
	suite.Run(t, new(RSITestSuite))
}

func (suite *RSITestSuite) TestKnownValues() {
	// period 3, deltas: +1, -0.5, +1 (the first position counts as no move)
	result, err := RelativeStrengthIndex([]float64{10, 11, 10.5, 11.5}, 3)
	suite.Require().NoError(err)

	suite.False(result.Defined(0))
	suite.False(result.Defined(1))

	// mean gain 1/3, mean loss 1/6 -> ratio 2 -> 100 - 100/3
	value, ok := result.Value(2)
	suite.Require().True(ok)
	suite.InDelta(66.6666667, value, 1e-6)

	// mean gain 2/3, mean loss 1/6 -> ratio 4 -> 80
	value, ok = result.Value(3)
	suite.Require().True(ok)
	suite.InDelta(80.0, value, 1e-9)
}

func (suite *RSITestSuite) TestMonotonicRiseSaturatesAt100() {
	result, err := RelativeStrengthIndex([]float64{1, 2, 3, 4, 5, 6}, 3)
	suite.Require().NoError(err)

	for i := 2; i < result.Len(); i++ {
		value, ok := result.Value(i)
		suite.Require().True(ok, "position %d", i)
		suite.InDelta(100.0, value, 1e-9, "position %d", i)
	}
}

func (suite *RSITestSuite) TestMonotonicFallIsZero() {
	result, err := RelativeStrengthIndex([]float64{6, 5, 4, 3, 2, 1}, 3)
	suite.Require().NoError(err)

	for i := 2; i < result.Len(); i++ {
		value, ok := result.Value(i)
		suite.Require().True(ok, "position %d", i)
		suite.InDelta(0.0, value, 1e-9, "position %d", i)
	}
}

func (suite *RSITestSuite) TestFlatWindowIsUndefined() {
	// No gains and no losses anywhere, so the ratio never exists
	result, err := RelativeStrengthIndex([]float64{5, 5, 5, 5, 5}, 3)
	suite.Require().NoError(err)
	suite.Equal(0, result.DefinedCount())
}

func (suite *RSITestSuite) TestDefinedFromPeriodMinusOne() {
	closes := []float64{10, 11, 12, 11, 13, 12, 14, 13}

	result, err := RelativeStrengthIndex(closes, 5)
	suite.Require().NoError(err)

	for i := 0; i < 4; i++ {
		suite.False(result.Defined(i), "position %d", i)
	}

	for i := 4; i < len(closes); i++ {
		suite.True(result.Defined(i), "position %d", i)
	}
}

func (suite *RSITestSuite) TestValuesStayInRange() {
	closes := []float64{50, 52, 48, 53, 47, 55, 44, 56, 43, 58}

	result, err := RelativeStrengthIndex(closes, 4)
	suite.Require().NoError(err)

	for i := 0; i < result.Len(); i++ {
		if value, ok := result.Value(i); ok {
			suite.GreaterOrEqual(value, 0.0)
			suite.LessOrEqual(value, 100.0)
		}
	}
}

func (suite *RSITestSuite) TestInvalidPeriod() {
	_, err := RelativeStrengthIndex([]float64{1, 2, 3}, 0)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}

func (suite *RSITestSuite) TestConfig() {
	rsi := NewRSI()

	err := rsi.Config("twenty")
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidType))

	suite.Require().NoError(rsi.Config(5))

	result, err := rsi.Compute([]float64{1, 2, 3, 4, 5, 6})
	suite.Require().NoError(err)
	suite.True(result.Defined(4))
	suite.False(result.Defined(3))
}
