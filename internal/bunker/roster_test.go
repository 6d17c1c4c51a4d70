package bunker

import (
	"testing"

	"cannonland/internal/terrain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster_Add(t *testing.T) {
	r := NewRoster()

	id, err := r.Add(NewAtNowhere(terrain.BunkerBlue))
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	id, err = r.Add(NewAtNowhere(terrain.BunkerRed))
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	_, err = r.Add(NewAtNowhere(terrain.BunkerBlue))
	assert.ErrorIs(t, err, ErrDuplicateTag)

	_, err = r.Add(NewAtNowhere(terrain.Rock))
	assert.ErrorIs(t, err, ErrNotBunkerMarker)

	assert.Equal(t, 2, r.Len())
}

func TestRoster_Lookup(t *testing.T) {
	r := NewRoster()
	red := NewAtNowhere(terrain.BunkerRed)
	_, err := r.Add(red)
	require.NoError(t, err)

	got, err := r.ByTag(terrain.BunkerRed)
	require.NoError(t, err)
	assert.Same(t, red, got)

	_, err = r.ByTag(terrain.BunkerGreen)
	assert.ErrorIs(t, err, ErrUnknownTag)
	_, err = r.ByTag(terrain.Material(250))
	assert.ErrorIs(t, err, ErrUnknownTag)

	b, ok := r.Get(0)
	assert.True(t, ok)
	assert.Same(t, red, b)
	_, ok = r.Get(3)
	assert.False(t, ok)
}

func TestRoster_Locate(t *testing.T) {
	r := NewRoster()
	green := NewAtNowhere(terrain.BunkerGreen)
	_, err := r.Add(green)
	require.NoError(t, err)

	assert.True(t, r.Locate(terrain.BunkerGreen, 11, 22))
	x, y := green.Position()
	assert.Equal(t, [2]int{11, 22}, [2]int{x, y})

	assert.False(t, r.Locate(terrain.BunkerTeal, 1, 1))
	assert.False(t, r.Locate(terrain.Material(250), 1, 1))
}

func TestRoster_SyncWithGrid(t *testing.T) {
	g, err := terrain.New(10, 10)
	require.NoError(t, err)
	require.NoError(t, g.Set(2, 3, terrain.BunkerBlue))
	require.NoError(t, g.Set(7, 3, terrain.BunkerRed))

	r := NewRoster()
	blue := NewAtNowhere(terrain.BunkerBlue)
	_, err = r.Add(blue)
	require.NoError(t, err)

	healed := g.UpdateBunkers(r)

	assert.Equal(t, 1, healed)
	x, y := blue.Position()
	assert.Equal(t, [2]int{2, 3}, [2]int{x, y})
	assert.Equal(t, terrain.Empty, g.MaterialAt(7, 3))
}

func TestRoster_HarmInRadius(t *testing.T) {
	r := NewRoster()
	near := New(terrain.BunkerBlue, 50, 50)
	far := New(terrain.BunkerRed, 200, 50)
	_, err := r.Add(near)
	require.NoError(t, err)
	_, err = r.Add(far)
	require.NoError(t, err)

	hit := r.HarmInRadius(55, 50, 8, 100)

	assert.Equal(t, []int{0}, hit)
	assert.False(t, near.IsAlive())
	assert.True(t, far.IsAlive())
	assert.Equal(t, 1, r.Alive())
	assert.Equal(t, 2, r.Len(), "dead bunkers stay in the roster")
	assert.Len(t, r.States(), 2)
}
