//go:build !ebiten

package app

import (
	"errors"

	"cannonland/internal/core"
)

// ErrNoGUI is returned by the headless Game.
var ErrNoGUI = errors.New("app: the viewer requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New returns a Game whose Update always fails in the headless build.
func New(core.Sim, *Config) *Game { return &Game{} }

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
