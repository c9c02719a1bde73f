package shared_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/settlement-go/internal/domain/shared"
)

func TestPosition_DistanceTo(t *testing.T) {
	a := shared.NewPosition(0, 0, 0)
	b := shared.NewPosition(3, 4, 12)

	assert.Equal(t, 13.0, a.DistanceTo(b))
	assert.Equal(t, 13.0, b.DistanceTo(a))
	assert.Equal(t, 0.0, a.DistanceTo(a))
}

func TestPosition_IsFinite(t *testing.T) {
	assert.True(t, shared.NewPosition(1, -2, 3).IsFinite())
	assert.False(t, shared.NewPosition(math.NaN(), 0, 0).IsFinite())
	assert.False(t, shared.NewPosition(0, math.Inf(1), 0).IsFinite())
}

func TestFindNearestPosition(t *testing.T) {
	from := shared.NewPosition(1, 0, 0)

	t.Run("empty", func(t *testing.T) {
		idx, dist := shared.FindNearestPosition(from, nil)
		assert.Equal(t, -1, idx)
		assert.Equal(t, 0.0, dist)
	})

	t.Run("picks closest", func(t *testing.T) {
		targets := []shared.Position{
			shared.NewPosition(10, 0, 0),
			shared.NewPosition(0, 0, 0),
			shared.NewPosition(5, 5, 5),
		}
		idx, dist := shared.FindNearestPosition(from, targets)
		assert.Equal(t, 1, idx)
		assert.Equal(t, 1.0, dist)
	})

	t.Run("tie keeps first", func(t *testing.T) {
		targets := []shared.Position{
			shared.NewPosition(0, 0, 0),
			shared.NewPosition(2, 0, 0),
		}
		idx, _ := shared.FindNearestPosition(from, targets)
		assert.Equal(t, 0, idx)
	})
}
