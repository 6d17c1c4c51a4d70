package bunker

import "fmt"

// Weapon identifies a shot type a bunker can fire.
type Weapon uint8

const (
	Cannon Weapon = iota
	Rocket
	SnowBall
)

// String returns the weapon name.
func (w Weapon) String() string {
	switch w {
	case Cannon:
		return "cannon"
	case Rocket:
		return "rocket"
	case SnowBall:
		return "snow"
	default:
		return fmt.Sprintf("weapon(%d)", uint8(w))
	}
}

// Blast returns the crater radius and the damage dealt by one shot.
func (w Weapon) Blast() (radius, damage int) {
	switch w {
	case Rocket:
		return 20, 25
	case SnowBall:
		return 6, 5
	default:
		return 12, 35
	}
}

// DefaultWeapons is the loadout every new bunker starts with.
func DefaultWeapons() []Weapon {
	return []Weapon{Cannon, Rocket, SnowBall}
}

// WeaponDepot is an ordered weapon list with a cyclic selection. The index
// always stays in [0, len(weapons)). A zero WeaponDepot holds no weapons: it
// reports Cannon as current and ignores cycling.
type WeaponDepot struct {
	index   int
	weapons []Weapon
}

// NewWeaponDepot builds a depot selecting the first weapon.
func NewWeaponDepot(weapons ...Weapon) (WeaponDepot, error) {
	if len(weapons) == 0 {
		return WeaponDepot{}, ErrEmptyDepot
	}
	return WeaponDepot{weapons: append([]Weapon(nil), weapons...)}, nil
}

// Current returns the selected weapon.
func (d *WeaponDepot) Current() Weapon {
	if len(d.weapons) == 0 {
		return Cannon
	}
	return d.weapons[d.index%len(d.weapons)]
}

// Next selects the following weapon, wrapping past the end.
func (d *WeaponDepot) Next() {
	if len(d.weapons) == 0 {
		return
	}
	d.index = (d.index + 1) % len(d.weapons)
}

// Prev selects the preceding weapon, wrapping before the start.
func (d *WeaponDepot) Prev() {
	n := len(d.weapons)
	if n == 0 {
		return
	}
	d.index = (d.index - 1 + n) % n
}

// Index returns the raw selection index.
func (d *WeaponDepot) Index() int { return d.index }

// Weapons returns a copy of the weapon list.
func (d *WeaponDepot) Weapons() []Weapon {
	return append([]Weapon(nil), d.weapons...)
}

func (d *WeaponDepot) selectIndex(i int) {
	n := len(d.weapons)
	if n == 0 {
		return
	}
	d.index = ((i % n) + n) % n
}
