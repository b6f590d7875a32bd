package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-insight/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type BollingerBandsTestSuite struct {
	suite.Suite
}

func TestBollingerBandsSuite(t *testing.T) {
	suite.Run(t, new(BollingerBandsTestSuite))
}

func (suite *BollingerBandsTestSuite) TestKnownValues() {
	// window 3: sample std of (1,2,3) and (2,3,4) is exactly 1
	upper, lower, err := Bands([]float64{1, 2, 3, 4}, 3, 2.0)
	suite.Require().NoError(err)

	suite.False(upper.Defined(0))
	suite.False(upper.Defined(1))
	suite.False(lower.Defined(0))
	suite.False(lower.Defined(1))

	value, ok := upper.Value(2)
	suite.Require().True(ok)
	suite.InDelta(4.0, value, 1e-9)

	value, ok = lower.Value(2)
	suite.Require().True(ok)
	suite.InDelta(0.0, value, 1e-9)

	value, ok = upper.Value(3)
	suite.Require().True(ok)
	suite.InDelta(5.0, value, 1e-9)

	value, ok = lower.Value(3)
	suite.Require().True(ok)
	suite.InDelta(1.0, value, 1e-9)
}

func (suite *BollingerBandsTestSuite) TestZeroStdDevsCollapseToMean() {
	upper, lower, err := Bands([]float64{1, 2, 3, 4, 5}, 3, 0)
	suite.Require().NoError(err)

	sma, err := SimpleMovingAverage([]float64{1, 2, 3, 4, 5}, 3)
	suite.Require().NoError(err)

	for i := 2; i < 5; i++ {
		up, ok := upper.Value(i)
		suite.Require().True(ok)

		low, ok := lower.Value(i)
		suite.Require().True(ok)

		mean, ok := sma.Value(i)
		suite.Require().True(ok)

		suite.InDelta(mean, up, 1e-9, "position %d", i)
		suite.InDelta(mean, low, 1e-9, "position %d", i)
	}
}

func (suite *BollingerBandsTestSuite) TestConstantSeriesHasZeroWidth() {
	upper, lower, err := Bands([]float64{9, 9, 9, 9}, 2, 2.0)
	suite.Require().NoError(err)

	for i := 1; i < 4; i++ {
		up, ok := upper.Value(i)
		suite.Require().True(ok)

		low, ok := lower.Value(i)
		suite.Require().True(ok)

		suite.InDelta(9.0, up, 1e-9)
		suite.InDelta(9.0, low, 1e-9)
	}
}

func (suite *BollingerBandsTestSuite) TestInvalidParameters() {
	_, _, err := Bands([]float64{1, 2, 3}, 1, 2.0)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))

	_, _, err = Bands([]float64{1, 2, 3}, 3, -1.0)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidStdDev))
}

func (suite *BollingerBandsTestSuite) TestConfig() {
	bb := NewBollingerBands()

	err := bb.Config(3)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingParameter))

	err = bb.Config(1, 2.0)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))

	err = bb.Config(3, -0.5)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidStdDev))

	suite.Require().NoError(bb.Config(3, 1.5))

	upper, lower, err := bb.Bands([]float64{1, 2, 3, 4})
	suite.Require().NoError(err)
	suite.True(upper.Defined(2))
	suite.True(lower.Defined(2))

	// Compute returns the middle band
	middle, err := bb.Compute([]float64{1, 2, 3, 4})
	suite.Require().NoError(err)

	value, ok := middle.Value(2)
	suite.Require().True(ok)
	suite.InDelta(2.0, value, 1e-9)
}
