// Package bunker models the stationary combat entities that sit in the
// terrain grid: aim, charge, health and weapon selection.
package bunker

import (
	"math"

	"cannonland/internal/terrain"
)

// Nowhere is the coordinate used for bunkers that have not been placed yet.
const Nowhere = 4096

const (
	defaultRadius       = 10
	defaultCannonLength = 20
	defaultMaxCharge    = 100
	defaultMaxHealth    = 100
)

const (
	// MinAngle and MaxAngle bound the aim to the upper half-turn; y grows downwards.
	MinAngle = math.Pi
	MaxAngle = 2 * math.Pi
	// StraightUp is the aim of a freshly built bunker.
	StraightUp = 1.5 * math.Pi
)

// Bunker is a combat entity. Its tag identifies the marker material that
// represents it in the grid and never changes.
type Bunker struct {
	tag          terrain.Material
	x, y         int
	radius       int
	angle        float64
	cannonLength int
	charge       int
	maxCharge    int
	health       int
	maxHealth    int
	weapons      WeaponDepot

	// PlayerActive records whether a controlling player is attached.
	PlayerActive bool
}

// New returns a bunker at (x, y) with full health and the default loadout.
func New(tag terrain.Material, x, y int) *Bunker {
	depot, _ := NewWeaponDepot(DefaultWeapons()...)
	return &Bunker{
		tag:          tag,
		x:            x,
		y:            y,
		radius:       defaultRadius,
		angle:        StraightUp,
		cannonLength: defaultCannonLength,
		maxCharge:    defaultMaxCharge,
		health:       defaultMaxHealth,
		maxHealth:    defaultMaxHealth,
		weapons:      depot,
	}
}

// NewAtNowhere returns a bunker that is not placed on any real grid yet.
func NewAtNowhere(tag terrain.Material) *Bunker {
	return New(tag, Nowhere, Nowhere)
}

// Tag returns the bunker's marker material.
func (b *Bunker) Tag() terrain.Material { return b.tag }

// Position returns the bunker centre in grid coordinates.
func (b *Bunker) Position() (int, int) { return b.x, b.y }

// SetPosition moves the bunker's logical position.
func (b *Bunker) SetPosition(x, y int) {
	b.x, b.y = x, y
}

// Placed reports whether the bunker left the Nowhere sentinel.
func (b *Bunker) Placed() bool { return b.x != Nowhere || b.y != Nowhere }

// Radius returns the physical footprint radius.
func (b *Bunker) Radius() int { return b.radius }

// CannonLength returns the barrel length.
func (b *Bunker) CannonLength() int { return b.cannonLength }

// IsAlive reports whether health is above zero. Dead bunkers are kept.
func (b *Bunker) IsAlive() bool { return b.health > 0 }

// ShootPos returns the muzzle tip.
func (b *Bunker) ShootPos() (int, int) {
	sin, cos := math.Sincos(b.angle)
	l := float64(b.cannonLength)
	return b.x + int(l*cos), b.y + int(l*sin)
}

// CannonSegment returns the bunker centre and the muzzle tip.
func (b *Bunker) CannonSegment() (x1, y1, x2, y2 int) {
	x2, y2 = b.ShootPos()
	return b.x, b.y, x2, y2
}

// Angle returns the aim in radians.
func (b *Bunker) Angle() float64 { return b.angle }

// ChangeAngle turns the cannon by delta radians, clamping into [MinAngle, MaxAngle].
func (b *Bunker) ChangeAngle(delta float64) {
	b.angle = math.Min(math.Max(b.angle+delta, MinAngle), MaxAngle)
}

// Charge returns the accumulated shot charge.
func (b *Bunker) Charge() int { return b.charge }

// MaxCharge returns the charge ceiling.
func (b *Bunker) MaxCharge() int { return b.maxCharge }

// IncrementCharge adds amount, saturating at MaxCharge. Negative amounts
// drain the charge down to zero.
func (b *Bunker) IncrementCharge(amount int) {
	b.charge = saturatingAdd(b.charge, amount, 0, b.maxCharge)
}

// ResetCharge drops the charge to zero.
func (b *Bunker) ResetCharge() { b.charge = 0 }

// Health returns the remaining health.
func (b *Bunker) Health() int { return b.health }

// MaxHealth returns the health ceiling.
func (b *Bunker) MaxHealth() int { return b.maxHealth }

// WouldHarmInRadius reports whether a blast of radius at (x, y) reaches the
// bunker. A blast whose upper edge (y - radius) lies below the bunker centre
// never counts, whatever the distance.
func (b *Bunker) WouldHarmInRadius(x, y, radius int) bool {
	if b.y < y-radius {
		return false
	}
	dx := float64(b.x - x)
	dy := float64(b.y - y)
	return math.Sqrt(dx*dx+dy*dy) < float64(b.radius+radius)
}

// HarmIfInRadius applies amount damage when the blast reaches the bunker and
// reports whether it did.
func (b *Bunker) HarmIfInRadius(x, y, radius, amount int) bool {
	if !b.WouldHarmInRadius(x, y, radius) {
		return false
	}
	b.Harm(amount)
	return true
}

// Harm subtracts amount from health, flooring at zero.
func (b *Bunker) Harm(amount int) {
	if amount < 0 {
		return
	}
	b.health = saturatingAdd(b.health, -amount, 0, b.maxHealth)
}

// Heal adds amount to health, capping at MaxHealth.
func (b *Bunker) Heal(amount int) {
	if amount < 0 {
		return
	}
	b.health = saturatingAdd(b.health, amount, 0, b.maxHealth)
}

// NextWeapon cycles the selection forward.
func (b *Bunker) NextWeapon() { b.weapons.Next() }

// PrevWeapon cycles the selection backward.
func (b *Bunker) PrevWeapon() { b.weapons.Prev() }

// CurrentWeapon returns the selected weapon.
func (b *Bunker) CurrentWeapon() Weapon { return b.weapons.Current() }

// saturatingAdd returns v+delta clamped to [lo, hi] without forming a sum
// that could overflow. v must already lie in [lo, hi].
func saturatingAdd(v, delta, lo, hi int) int {
	if delta > 0 {
		return v + min(delta, hi-v)
	}
	return v + max(delta, lo-v)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
