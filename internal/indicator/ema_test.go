package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-insight/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type EMATestSuite struct {
	suite.Suite
}

func TestEMASuite(t *testing.T) {
	suite.Run(t, new(EMATestSuite))
}

func (suite *EMATestSuite) TestSeededByFirstValue() {
	// span 3 gives alpha = 0.5, so each step is the midpoint
	result, err := ExponentialMovingAverage([]float64{2, 4, 8}, 3)
	suite.Require().NoError(err)

	expected := []float64{2, 3, 5.5}
	for i, want := range expected {
		value, ok := result.Value(i)
		suite.Require().True(ok, "position %d", i)
		suite.InDelta(want, value, 1e-9, "position %d", i)
	}
}

func (suite *EMATestSuite) TestDefinedEverywhere() {
	result, err := ExponentialMovingAverage([]float64{5, 6, 7, 8, 9}, 20)
	suite.Require().NoError(err)
	suite.Equal(5, result.DefinedCount())
}

func (suite *EMATestSuite) TestConstantSeriesIsFlat() {
	result, err := ExponentialMovingAverage([]float64{7, 7, 7, 7}, 4)
	suite.Require().NoError(err)

	for i := 0; i < result.Len(); i++ {
		value, ok := result.Value(i)
		suite.Require().True(ok)
		suite.InDelta(7.0, value, 1e-9)
	}
}

func (suite *EMATestSuite) TestEmptyInput() {
	result, err := ExponentialMovingAverage(nil, 12)
	suite.Require().NoError(err)
	suite.Equal(0, result.Len())
}

func (suite *EMATestSuite) TestInvalidSpan() {
	_, err := ExponentialMovingAverage([]float64{1, 2}, 0)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}
