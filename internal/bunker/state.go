package bunker

import (
	"fmt"
	"math"

	"cannonland/internal/terrain"
)

// State is the exported form of a bunker used for transfer between processes.
type State struct {
	Tag          terrain.Material
	X, Y         int
	Angle        float64
	Charge       int
	Health       int
	WeaponIndex  int
	PlayerActive bool
}

// State captures the bunker's combat state.
func (b *Bunker) State() State {
	return State{
		Tag:          b.tag,
		X:            b.x,
		Y:            b.y,
		Angle:        b.angle,
		Charge:       b.charge,
		Health:       b.health,
		WeaponIndex:  b.weapons.Index(),
		PlayerActive: b.PlayerActive,
	}
}

// FromState rebuilds a bunker with the default loadout. Out-of-range values
// are clamped the same way the mutators clamp them.
func FromState(s State) (*Bunker, error) {
	if !s.Tag.IsBunker() {
		return nil, fmt.Errorf("%w: %s", ErrNotBunkerMarker, s.Tag)
	}
	b := New(s.Tag, s.X, s.Y)
	b.angle = math.Min(math.Max(s.Angle, MinAngle), MaxAngle)
	b.IncrementCharge(s.Charge)
	b.health = clampInt(s.Health, 0, b.maxHealth)
	b.weapons.selectIndex(s.WeaponIndex)
	b.PlayerActive = s.PlayerActive
	return b, nil
}
