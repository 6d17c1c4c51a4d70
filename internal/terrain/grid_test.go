package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := New(w, h)
	require.NoError(t, err)
	return g
}

func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, 5},
		{"too large", MaxCells, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.w, tc.h)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
			assert.Nil(t, g)
		})
	}
}

func TestNew_StartsEmpty(t *testing.T) {
	g := mustGrid(t, 7, 4)

	assert.Equal(t, 7, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 28, g.Count(Empty))
	assert.Zero(t, g.CountNonEmpty())
}

func TestGrid_IsInsideAndCollidesAt(t *testing.T) {
	g := mustGrid(t, 5, 3)
	require.NoError(t, g.SetRect(Rock, 0, 0, 5, 3))

	for _, p := range [][2]int{{5, 0}, {0, 3}, {5, 3}, {-1, 0}, {0, -1}, {100, 100}} {
		assert.False(t, g.IsInside(p[0], p[1]), "IsInside(%d,%d)", p[0], p[1])
		assert.False(t, g.CollidesAt(p[0], p[1]), "CollidesAt(%d,%d)", p[0], p[1])
	}
	assert.True(t, g.IsInside(4, 2))
	assert.True(t, g.CollidesAt(4, 2))

	require.NoError(t, g.Set(4, 2, Empty))
	assert.False(t, g.CollidesAt(4, 2))
}

func TestGrid_At(t *testing.T) {
	g := mustGrid(t, 3, 3)
	require.NoError(t, g.Set(1, 2, Snow))

	m, err := g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, Snow, m)

	_, err = g.At(3, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, Empty, g.MaterialAt(-4, 0))
}

func TestGrid_SetRect(t *testing.T) {
	g := mustGrid(t, 6, 4)
	require.NoError(t, g.SetRect(Dirt, 1, 1, 3, 3))

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			want := Empty
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = Dirt
			}
			assert.Equal(t, want, g.MaterialAt(x, y), "cell (%d,%d)", x, y)
		}
	}

	// Full-grid rectangle touches the edge exactly and is legal.
	require.NoError(t, g.SetRect(Water, 0, 0, 6, 4))
	assert.Equal(t, 24, g.Count(Water))

	// Empty rectangle is a no-op.
	require.NoError(t, g.SetRect(Rock, 2, 2, 2, 4))
	assert.Zero(t, g.Count(Rock))
}

func TestGrid_SetRectRejectsOutOfBounds(t *testing.T) {
	g := mustGrid(t, 6, 4)
	cases := [][4]int{
		{-1, 0, 2, 2},
		{0, -1, 2, 2},
		{0, 0, 7, 2},
		{0, 0, 2, 5},
		{4, 0, 2, 2},
		{0, 3, 2, 1},
	}
	for _, c := range cases {
		err := g.SetRect(Dirt, c[0], c[1], c[2], c[3])
		assert.ErrorIs(t, err, ErrOutOfBounds, "rect %v", c)
	}
	assert.Zero(t, g.CountNonEmpty(), "rejected rectangles must not paint anything")
}

func TestGrid_SetRejectsTransientMaterial(t *testing.T) {
	g := mustGrid(t, 3, 3)

	assert.ErrorIs(t, g.Set(0, 0, Moving), ErrInvalidMaterial)
	assert.ErrorIs(t, g.SetRect(Moving, 0, 0, 1, 1), ErrInvalidMaterial)
	assert.ErrorIs(t, g.Set(0, 0, Material(200)), ErrInvalidMaterial)
	assert.ErrorIs(t, g.Set(3, 0, Dirt), ErrOutOfBounds)
}

func TestGrid_SnapshotLoadRoundTrip(t *testing.T) {
	g := mustGrid(t, 4, 4)
	require.NoError(t, g.SetRect(Dirt, 0, 2, 4, 4))
	require.NoError(t, g.Set(1, 1, BunkerRed))

	snap := g.Snapshot()
	other := mustGrid(t, 4, 4)
	require.NoError(t, other.Load(snap))
	assert.Equal(t, snap, other.Snapshot())

	assert.ErrorIs(t, other.Load(snap[:3]), ErrOutOfBounds)
	snap[0] = Moving
	assert.ErrorIs(t, other.Load(snap), ErrInvalidMaterial)
}

func TestGrid_Loose(t *testing.T) {
	g := mustGrid(t, 2, 2)

	for _, m := range DefaultLoose() {
		assert.True(t, g.IsLoose(m), "%s should fall by default", m)
	}
	assert.False(t, g.IsLoose(Rock))
	assert.False(t, g.IsLoose(Concrete))
	assert.False(t, g.IsLoose(BunkerBlue))

	g.SetLoose(BunkerBlue, true)
	assert.True(t, g.IsLoose(BunkerBlue))
	g.SetLoose(Empty, true)
	assert.False(t, g.IsLoose(Empty))
}

func TestMaterial_Predicates(t *testing.T) {
	markers := BunkerMarkers()
	require.Len(t, markers, 8)
	for _, m := range markers {
		assert.True(t, m.IsBunker(), m.String())
	}
	for _, m := range []Material{Empty, Dirt, Rock, Snow, Water, Concrete, Moving} {
		assert.False(t, m.IsBunker(), m.String())
	}

	parsed, err := ParseMaterial("bunker-teal")
	require.NoError(t, err)
	assert.Equal(t, BunkerTeal, parsed)
	_, err = ParseMaterial("lava")
	assert.Error(t, err)
	assert.Equal(t, "material(99)", Material(99).String())
}
