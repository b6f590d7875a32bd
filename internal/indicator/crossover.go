package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
)

// CrossoverFlag returns a binary series that is 1 where the short moving
// average is strictly above the long moving average and 0 otherwise. A
// position where either average is undefined compares false and yields 0,
// so the flag is defined at every position.
func CrossoverFlag(short, long Series) (Series, error) {
	if len(short) != len(long) {
		return nil, errors.Newf(errors.ErrCodeIndicatorCalculation,
			"series length mismatch: short has %d positions, long has %d", len(short), len(long))
	}

	flag := NewSeries(len(short))

	for i := range short {
		value := 0.0

		s, sOK := short.Value(i)
		l, lOK := long.Value(i)

		if sOK && lOK && s > l {
			value = 1.0
		}

		flag[i] = optional.Some(value)
	}

	return flag, nil
}

// CrossoverSignal returns the first difference of the crossover flag:
// +1 on a bullish 0→1 transition, -1 on a bearish 1→0 transition, 0
// otherwise. The first position has no prior value and is undefined.
func CrossoverSignal(flag Series) Series {
	signal := NewSeries(len(flag))

	for i := 1; i < len(flag); i++ {
		cur, curOK := flag.Value(i)
		prev, prevOK := flag.Value(i - 1)

		if curOK && prevOK {
			signal[i] = optional.Some(cur - prev)
		}
	}

	return signal
}
