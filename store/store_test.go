package store_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvroute/shape"
	"github.com/katalvlaran/lvroute/store"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "nested", "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func layer(t *testing.T, name string, pts ...orb.Point) shape.Layer {
	t.Helper()
	l := shape.Layer{Name: name}
	for i, p := range pts {
		s, err := shape.New(string(rune('a'+i)), name, p, true)
		require.NoError(t, err)
		l.Shapes = append(l.Shapes, s)
	}

	return l
}

func TestStore_SaveLoad(t *testing.T) {
	s := openTemp(t)

	require.NoError(t, s.Save("cut", 7, []int{2, 0, 1}))
	order, ok, err := s.Load("cut", 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{2, 0, 1}, order)

	require.NoError(t, s.Save("cut", 8, []int{0, 1, 2}))
	order, ok, err = s.Load("cut", 8)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, order)

	layers, err := s.Layers()
	require.NoError(t, err)
	assert.Equal(t, []string{"cut"}, layers)
}

func TestStore_MissAndMismatch(t *testing.T) {
	s := openTemp(t)

	_, ok, err := s.Load("nothing", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save("cut", 1, []int{0}))
	_, ok, err = s.Load("cut", 2)
	require.NoError(t, err)
	assert.False(t, ok, "stale fingerprint must miss")
}

func TestStore_Errors(t *testing.T) {
	s := openTemp(t)
	assert.ErrorIs(t, s.Save("", 1, nil), store.ErrEmptyLayer)
	_, _, err := s.Load("", 1)
	assert.ErrorIs(t, err, store.ErrEmptyLayer)

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Save("x", 1, nil), store.ErrClosed)
	_, _, err = s.Load("x", 1)
	assert.ErrorIs(t, err, store.ErrClosed)
	_, err = s.Layers()
	assert.ErrorIs(t, err, store.ErrClosed)
	assert.NoError(t, s.Close())
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("engrave", 3, []int{1, 0}))
	require.NoError(t, s.Close())

	s, err = store.Open(path)
	require.NoError(t, err)
	defer s.Close()
	order, ok, err := s.Load("engrave", 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 0}, order)
}

func TestFingerprint(t *testing.T) {
	a := layer(t, "cut", orb.Point{0, 0}, orb.Point{1, 1})
	b := layer(t, "cut", orb.Point{0, 0}, orb.Point{1, 1})
	c := layer(t, "cut", orb.Point{0, 0}, orb.Point{1, 2})

	fa, err := store.Fingerprint(a)
	require.NoError(t, err)
	fb, err := store.Fingerprint(b)
	require.NoError(t, err)
	fc, err := store.Fingerprint(c)
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
	assert.NotEqual(t, fa, fc)

	b.Shapes[1].Optimize = false
	fpin, err := store.Fingerprint(b)
	require.NoError(t, err)
	assert.NotEqual(t, fa, fpin)
}
