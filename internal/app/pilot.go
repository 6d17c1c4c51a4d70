package app

import (
	"errors"
	"fmt"

	"cannonland/internal/sims/battlefield"
	"cannonland/internal/terrain"
)

// Pilot steers one bunker of a battlefield on behalf of the local player.
type Pilot struct {
	field    *battlefield.Battlefield
	selected int
}

// NewPilot joins the first living bunker of field.
func NewPilot(field *battlefield.Battlefield) *Pilot {
	p := &Pilot{field: field, selected: -1}
	p.Cycle(1)
	return p
}

// Selected returns the tag of the piloted bunker.
func (p *Pilot) Selected() (terrain.Material, bool) {
	bk, ok := p.field.Roster().Get(p.selected)
	if !ok {
		return terrain.Empty, false
	}
	return bk.Tag(), true
}

// Cycle hands control to the next living bunker in direction dir (+1 or -1),
// wrapping around the roster. The current bunker is kept when no other one
// is alive.
func (p *Pilot) Cycle(dir int) {
	roster := p.field.Roster()
	n := roster.Len()
	if n == 0 {
		p.selected = -1
		return
	}
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	start := p.selected
	if start < 0 {
		start = n - 1
		if dir < 0 {
			start = 0
		}
	}
	for i := 1; i <= n; i++ {
		id := ((start+dir*i)%n + n) % n
		bk, _ := roster.Get(id)
		if !bk.IsAlive() {
			continue
		}
		if id != p.selected {
			p.handOver(id)
		}
		return
	}
}

func (p *Pilot) handOver(id int) {
	if tag, ok := p.Selected(); ok {
		_, _ = p.field.Apply(battlefield.Command{Tag: tag, Action: battlefield.ActionLeave})
	}
	p.selected = id
	if tag, ok := p.Selected(); ok {
		_, _ = p.field.Apply(battlefield.Command{Tag: tag, Action: battlefield.ActionJoin})
	}
}

// Aim turns the cannon by delta radians.
func (p *Pilot) Aim(delta float64) error {
	return p.apply(battlefield.Command{Action: battlefield.ActionAim, Angle: delta})
}

// Charge adds amount to the shot charge.
func (p *Pilot) Charge(amount int) error {
	return p.apply(battlefield.Command{Action: battlefield.ActionCharge, Amount: amount})
}

// NextWeapon selects the following weapon.
func (p *Pilot) NextWeapon() error {
	return p.apply(battlefield.Command{Action: battlefield.ActionNextWeapon})
}

// PrevWeapon selects the preceding weapon.
func (p *Pilot) PrevWeapon() error {
	return p.apply(battlefield.Command{Action: battlefield.ActionPrevWeapon})
}

// Fire shoots with the accumulated charge. When the piloted bunker has died
// control passes to the next living one.
func (p *Pilot) Fire() (battlefield.Detonation, error) {
	tag, ok := p.Selected()
	if !ok {
		return battlefield.Detonation{}, errNoBunker
	}
	d, err := p.field.Fire(tag)
	if errors.Is(err, battlefield.ErrDeadBunker) {
		p.Cycle(1)
	}
	return d, err
}

// Status describes the piloted bunker for the HUD.
func (p *Pilot) Status() string {
	tag, ok := p.Selected()
	if !ok {
		return "no bunker to pilot"
	}
	bk, err := p.field.Roster().ByTag(tag)
	if err != nil {
		return "no bunker to pilot"
	}
	return fmt.Sprintf("piloting %s: %s, charge %d", tag, bk.CurrentWeapon(), bk.Charge())
}

var errNoBunker = errors.New("app: no bunker selected")

func (p *Pilot) apply(cmd battlefield.Command) error {
	tag, ok := p.Selected()
	if !ok {
		return errNoBunker
	}
	cmd.Tag = tag
	_, err := p.field.Apply(cmd)
	if errors.Is(err, battlefield.ErrDeadBunker) {
		p.Cycle(1)
	}
	return err
}
