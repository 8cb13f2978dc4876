package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvroute/matrix"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEuclidean_SymmetricZeroDiagonal(t *testing.T) {
	pts := []orb.Point{{0, 0}, {3, 4}, {6, 8}}
	m, err := matrix.NewEuclidean(pts)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())

	var i, j int
	for i = 0; i < 3; i++ {
		d, _ := m.At(i, i)
		assert.Zero(t, d)
		for j = 0; j < 3; j++ {
			a, _ := m.At(i, j)
			b, _ := m.At(j, i)
			assert.Equal(t, a, b)
		}
	}
	d01, _ := m.At(0, 1)
	d02, _ := m.At(0, 2)
	assert.InDelta(t, 5.0, d01, 1e-12)
	assert.InDelta(t, 10.0, d02, 1e-12)
}

func TestNewEuclidean_Rejects(t *testing.T) {
	_, err := matrix.NewEuclidean(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewEuclidean([]orb.Point{{0, 0}, {math.NaN(), 1}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
