//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"time"

	"cannonland/internal/core"
	"cannonland/internal/render"
	"cannonland/internal/sims/battlefield"
	"cannonland/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
)

const (
	aimStep    = 0.03
	chargeStep = 2
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.PalettePainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pilot   *Pilot
	stepper *core.FixedStep
	logger  *log.Entry

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	var palette []color.RGBA
	if provider, ok := sim.(core.PaletteProvider); ok {
		palette = provider.Palette()
	}
	g := &Game{
		sim:      sim,
		painter:  render.NewPalettePainter(size.W, size.H, palette),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		stepper:  core.NewFixedStep(cfg.TPS),
		logger:   log.WithField("component", "app"),
		scale:    cfg.Scale,
		hudWidth: max(cfg.HUDWidth, 0),
		seed:     cfg.Seed,
	}
	if field, ok := sim.(*battlefield.Battlefield); ok {
		g.pilot = NewPilot(field)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	if field, ok := g.sim.(*battlefield.Battlefield); ok {
		g.pilot = NewPilot(field)
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.updatePilot()
	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)

	due := g.stepper.Advance(time.Now())
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = max(due, 1)
		g.tickOnce = false
	}
	for range due {
		g.sim.Step()
	}
	return nil
}

func (g *Game) updatePilot() {
	if g.pilot == nil {
		return
	}
	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.pilot.Cycle(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		err = g.pilot.PrevWeapon()
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		err = g.pilot.NextWeapon()
	case ebiten.IsKeyPressed(ebiten.KeyLeft):
		err = g.pilot.Aim(-aimStep)
	case ebiten.IsKeyPressed(ebiten.KeyRight):
		err = g.pilot.Aim(aimStep)
	}
	if err == nil && ebiten.IsKeyPressed(ebiten.KeyUp) {
		err = g.pilot.Charge(chargeStep)
	}
	if err == nil && inpututil.IsKeyJustReleased(ebiten.KeyUp) {
		_, err = g.pilot.Fire()
	}
	if err != nil && !errors.Is(err, battlefield.ErrNoCharge) {
		g.logger.WithError(err).Debug("pilot input rejected")
	}
	g.hud.SetStatus(g.pilot.Status(), "tab: next bunker  z/x: weapon", "arrows: aim  hold up: charge")
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
