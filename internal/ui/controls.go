package ui

import (
	"math"
	"strconv"
	"strings"

	"cannonland/internal/core"
)

// stepTarget returns the value one step away from value in direction,
// clamped to the control bounds, and whether it differs from value.
func stepTarget(ctrl core.ParameterControl, value, direction int) (int, bool) {
	if direction == 0 {
		return value, false
	}
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if ctrl.HasMin {
		target = max(target, int(math.Round(ctrl.Min)))
	}
	if ctrl.HasMax {
		target = min(target, int(math.Round(ctrl.Max)))
	}
	return target, target != value
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

// rosterLine formats one turret for the HUD roster.
func rosterLine(t core.Turret) string {
	if !t.Alive {
		return t.Label + "  destroyed"
	}
	return t.Label + "  hp " + strconv.Itoa(t.Health) + "  ch " + strconv.Itoa(t.Charge)
}
