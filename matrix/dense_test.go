package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvroute/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Construction
// -----------------------------------------------------------------------------

func TestNewDense_RejectsBadShape(t *testing.T) {
	var err error
	_, err = matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDense_ZeroFilled(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 3; j++ {
			v, aerr := m.At(i, j)
			require.NoError(t, aerr)
			assert.Zero(t, v)
		}
	}
}

// -----------------------------------------------------------------------------
// Accessors
// -----------------------------------------------------------------------------

func TestDense_SetAt_RoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 4.5))

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)
}

func TestDense_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.True(t, errors.Is(err, matrix.ErrOutOfRange), "At(2,0): %v", err)
	err = m.Set(0, -1, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Contains(t, err.Error(), "Dense.Set(0,-1)")
}

func TestDense_SetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7))

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 9))

	orig, _ := m.At(0, 1)
	cloned, _ := c.At(0, 1)
	assert.Equal(t, 7.0, orig)
	assert.Equal(t, 9.0, cloned)
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 0, 2.5))
	assert.Equal(t, "[0, 1]\n[2.5, 0]\n", m.String())
}
