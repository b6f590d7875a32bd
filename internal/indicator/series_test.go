package indicator

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
)

func TestNewSeries(t *testing.T) {
	s := NewSeries(3)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0, s.DefinedCount())
}

func TestFromValues(t *testing.T) {
	s := FromValues([]float64{1.5, 2.5})

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.DefinedCount())

	value, ok := s.Value(1)
	assert.True(t, ok)
	assert.Equal(t, 2.5, value)
}

func TestValueOutOfRange(t *testing.T) {
	s := FromValues([]float64{1})

	_, ok := s.Value(-1)
	assert.False(t, ok)

	_, ok = s.Value(1)
	assert.False(t, ok)
}

func TestLastDefined(t *testing.T) {
	t.Run("skips trailing undefined positions", func(t *testing.T) {
		s := Series{
			optional.Some(1.0),
			optional.Some(2.0),
			optional.None[float64](),
		}

		value, ok := s.LastDefined()
		assert.True(t, ok)
		assert.Equal(t, 2.0, value)
	})

	t.Run("fully undefined series", func(t *testing.T) {
		s := NewSeries(4)

		_, ok := s.LastDefined()
		assert.False(t, ok)
	})
}
