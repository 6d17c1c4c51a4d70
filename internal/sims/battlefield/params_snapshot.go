package battlefield

import (
	"strconv"

	"cannonland/internal/core"
)

// Parameters reports the current configuration and match state for the HUD.
func (b *Battlefield) Parameters() core.ParameterSnapshot {
	params := b.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", b.cfg.Width),
				intParam("h", "Height", b.cfg.Height),
				int64Param("seed", "Seed", b.cfg.Seed),
				stringParam("layout", "Layout", params.Layout),
				boolParam("bunkers_fall", "Bunkers fall", params.BunkersFall),
			},
		},
		{
			Name: "Bombardment",
			Params: []core.Parameter{
				intParam("bombard_every", "Bombard every", params.BombardEvery),
				intParam("bombard_radius", "Blast radius", params.BombardRadius),
				intParam("bombard_damage", "Blast damage", params.BombardDamage),
			},
		},
		{
			Name: "Match",
			Params: []core.Parameter{
				intParam("tick", "Tick", b.tick),
				intParam("alive", "Bunkers alive", b.roster.Alive()),
				intParam("healed", "Markers healed", b.healed),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the knobs the HUD may adjust while running.
func (b *Battlefield) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "bombard_every", Label: "Bombard every", Type: core.ParamTypeInt, Step: 10, Min: 0, Max: 1000, HasMin: true, HasMax: true},
		{Key: "bombard_radius", Label: "Blast radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "bombard_damage", Label: "Blast damage", Type: core.ParamTypeInt, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an adjustable integer parameter.
func (b *Battlefield) SetIntParameter(key string, value int) bool {
	for _, ctrl := range b.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = min(max(value, int(ctrl.Min)), int(ctrl.Max))
		switch key {
		case "bombard_every":
			b.cfg.Params.BombardEvery = value
		case "bombard_radius":
			b.cfg.Params.BombardRadius = value
		case "bombard_damage":
			b.cfg.Params.BombardDamage = value
		}
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
