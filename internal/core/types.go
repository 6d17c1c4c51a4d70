package core

import (
	"fmt"
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a registered simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// PaletteProvider is implemented by sims whose cell values index a color table.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Turret is a drawable entity that lives on top of the cell grid.
type Turret struct {
	X, Y      int
	MuzzleX   int
	MuzzleY   int
	Radius    int
	Color     color.RGBA
	Alive     bool
	Health    int
	MaxHealth int
	Charge    int
	MaxCharge int
	Label     string
}

// TurretProvider is implemented by sims that expose entities for the overlay.
type TurretProvider interface {
	Turrets() []Turret
}

// Blast is the footprint of the most recent explosion.
type Blast struct {
	X, Y   int
	Radius int
	Tick   int
}

// BlastProvider is implemented by sims that can report their last explosion.
type BlastProvider interface {
	LastBlast() (Blast, bool)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Lookup builds the named simulation.
func Lookup(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		names := make([]string, 0, len(sims))
		for n := range sims {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown sim %q (available: %v)", name, names)
	}
	return f(cfg)
}
