package bunker

import (
	"math"
	"testing"

	"cannonland/internal/terrain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	b := New(terrain.BunkerRed, 30, 40)

	x, y := b.Position()
	assert.Equal(t, 30, x)
	assert.Equal(t, 40, y)
	assert.Equal(t, terrain.BunkerRed, b.Tag())
	assert.Equal(t, 10, b.Radius())
	assert.Equal(t, 20, b.CannonLength())
	assert.Equal(t, 1.5*math.Pi, b.Angle())
	assert.Equal(t, 0, b.Charge())
	assert.Equal(t, 100, b.MaxCharge())
	assert.Equal(t, 100, b.Health())
	assert.Equal(t, 100, b.MaxHealth())
	assert.Equal(t, Cannon, b.CurrentWeapon())
	assert.False(t, b.PlayerActive)
	assert.True(t, b.IsAlive())
	assert.True(t, b.Placed())
}

func TestNewAtNowhere(t *testing.T) {
	b := NewAtNowhere(terrain.BunkerBlue)

	x, y := b.Position()
	assert.Equal(t, Nowhere, x)
	assert.Equal(t, Nowhere, y)
	assert.False(t, b.Placed())

	b.SetPosition(12, 3)
	assert.True(t, b.Placed())
}

func TestBunker_ShootPos(t *testing.T) {
	cases := []struct {
		name   string
		delta  float64
		wantDx int
		wantDy int
	}{
		{"straight up", 0, 0, -20},
		{"left", -10, -20, 0},
		{"right", 10, 20, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(terrain.BunkerGreen, 100, 50)
			b.ChangeAngle(tc.delta)

			x, y := b.ShootPos()
			assert.Equal(t, 100+tc.wantDx, x)
			assert.Equal(t, 50+tc.wantDy, y)

			x1, y1, x2, y2 := b.CannonSegment()
			assert.Equal(t, [4]int{100, 50, x, y}, [4]int{x1, y1, x2, y2})
		})
	}
}

func TestBunker_ChangeAngleClamps(t *testing.T) {
	b := New(terrain.BunkerTeal, 0, 0)

	b.ChangeAngle(10.0)
	assert.Equal(t, 2*math.Pi, b.Angle())

	b.ChangeAngle(-10.0)
	assert.Equal(t, math.Pi, b.Angle())

	b.ChangeAngle(0.25)
	assert.InDelta(t, math.Pi+0.25, b.Angle(), 1e-12)
}

func TestBunker_Charge(t *testing.T) {
	b := New(terrain.BunkerPurple, 0, 0)

	for _, want := range []int{30, 60, 90, 100, 100} {
		b.IncrementCharge(30)
		assert.Equal(t, want, b.Charge())
		assert.LessOrEqual(t, b.Charge(), b.MaxCharge())
	}

	b.ResetCharge()
	assert.Zero(t, b.Charge())
	b.ResetCharge()
	assert.Zero(t, b.Charge())

	b.IncrementCharge(-5)
	assert.Zero(t, b.Charge(), "charge never goes below zero")
}

func TestBunker_ChargeSaturatesAtIntLimits(t *testing.T) {
	b := New(terrain.BunkerPurple, 0, 0)

	b.IncrementCharge(10)
	b.IncrementCharge(math.MaxInt)
	assert.Equal(t, b.MaxCharge(), b.Charge())

	b.IncrementCharge(math.MaxInt)
	assert.Equal(t, b.MaxCharge(), b.Charge())

	b.IncrementCharge(math.MinInt)
	assert.Zero(t, b.Charge())
}

func TestBunker_WouldHarmInRadius(t *testing.T) {
	cases := []struct {
		name   string
		x, y   int
		radius int
		want   bool
	}{
		{"distance equals radius sum", 115, 100, 5, false},
		{"one inside radius sum", 114, 100, 5, true},
		{"direct hit", 100, 100, 1, true},
		{"far away", 300, 100, 5, false},
		{"blast from above", 100, 88, 5, true},
		{"blast from below in range", 100, 112, 5, false},
		{"upper edge level with centre", 100, 105, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(terrain.BunkerYellow, 100, 100)
			assert.Equal(t, tc.want, b.WouldHarmInRadius(tc.x, tc.y, tc.radius))
		})
	}
}

func TestBunker_HarmIfInRadius(t *testing.T) {
	b := New(terrain.BunkerGrey, 100, 100)

	assert.False(t, b.HarmIfInRadius(115, 100, 5, 40))
	assert.Equal(t, 100, b.Health())

	assert.True(t, b.HarmIfInRadius(114, 100, 5, 40))
	assert.Equal(t, 60, b.Health())
}

func TestBunker_HarmAndHealSaturate(t *testing.T) {
	b := New(terrain.BunkerOrange, 0, 0)

	b.Harm(250)
	assert.Zero(t, b.Health())
	assert.False(t, b.IsAlive())

	b.Heal(30)
	assert.Equal(t, 30, b.Health())
	assert.True(t, b.IsAlive())

	b.Heal(500)
	assert.Equal(t, 100, b.Health())

	b.Harm(-20)
	b.Heal(-20)
	assert.Equal(t, 100, b.Health(), "negative amounts are ignored")
}

func TestBunker_HarmAndHealAtIntLimits(t *testing.T) {
	b := New(terrain.BunkerOrange, 0, 0)

	b.Heal(math.MaxInt)
	assert.Equal(t, 100, b.Health())
	assert.True(t, b.IsAlive())

	b.Harm(40)
	b.Heal(math.MaxInt)
	assert.Equal(t, 100, b.Health())

	b.Harm(math.MaxInt)
	assert.Zero(t, b.Health())
	assert.False(t, b.IsAlive())

	b.Harm(math.MaxInt)
	assert.Zero(t, b.Health())
}

func TestBunker_WeaponCycling(t *testing.T) {
	b := New(terrain.BunkerRed, 0, 0)

	b.NextWeapon()
	assert.Equal(t, Rocket, b.CurrentWeapon())
	b.PrevWeapon()
	b.PrevWeapon()
	assert.Equal(t, SnowBall, b.CurrentWeapon())
}

func TestFromState_RoundTrip(t *testing.T) {
	b := New(terrain.BunkerBlue, 7, 9)
	b.ChangeAngle(-0.5)
	b.IncrementCharge(42)
	b.Harm(35)
	b.NextWeapon()
	b.NextWeapon()
	b.PlayerActive = true

	got, err := FromState(b.State())
	require.NoError(t, err)
	assert.Equal(t, b.State(), got.State())
	assert.Equal(t, SnowBall, got.CurrentWeapon())
}

func TestFromState_ClampsAndValidates(t *testing.T) {
	_, err := FromState(State{Tag: terrain.Dirt})
	assert.ErrorIs(t, err, ErrNotBunkerMarker)

	got, err := FromState(State{
		Tag:         terrain.BunkerRed,
		Angle:       0,
		Charge:      900,
		Health:      -4,
		WeaponIndex: -1,
	})
	require.NoError(t, err)
	assert.Equal(t, math.Pi, got.Angle())
	assert.Equal(t, 100, got.Charge())
	assert.Zero(t, got.Health())
	assert.Equal(t, SnowBall, got.CurrentWeapon())
}
