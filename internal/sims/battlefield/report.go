package battlefield

import (
	"fmt"

	"cannonland/internal/terrain"
)

// MatchResult captures telemetry from a deterministic bombardment run.
type MatchResult struct {
	Seed int64
	// StepsSimulated reports how many ticks were executed.
	StepsSimulated int
	Detonations    int
	CellsCleared   int
	// Survivors lists the tags still alive at the end of the run.
	Survivors []terrain.Material
	// LastDeathStep is the tick the most recent bunker died, 0 if none did.
	LastDeathStep int
	// ConservationBreaks counts ticks without a detonation in which the
	// number of solid cells changed beyond the healed markers.
	ConservationBreaks int
	Healed             int
	// FinalState is the battlefield after the last tick.
	FinalState State
}

// Summary renders the result as a single report line.
func (r MatchResult) Summary() string {
	return fmt.Sprintf("seed=%d steps=%d detonations=%d cleared=%d survivors=%d last_death=%d healed=%d conservation_breaks=%d",
		r.Seed, r.StepsSimulated, r.Detonations, r.CellsCleared, len(r.Survivors), r.LastDeathStep, r.Healed, r.ConservationBreaks)
}

// RunBombardment builds a battlefield from cfg and steps it until steps ticks
// have passed or at most one bunker is left standing.
func RunBombardment(cfg Config, steps int) (MatchResult, error) {
	result := MatchResult{Seed: cfg.Seed}
	world, err := NewWithConfig(cfg)
	if err != nil {
		return result, err
	}

	alive := world.roster.Alive()
	for step := 1; step <= steps; step++ {
		before := world.grid.CountNonEmpty()
		healedBefore := world.healed
		lastBefore := world.last

		world.Step()
		result.StepsSimulated = step

		if world.last != lastBefore {
			result.Detonations++
			result.CellsCleared += world.last.Cleared
		} else {
			healed := world.healed - healedBefore
			if world.grid.CountNonEmpty()+healed != before {
				result.ConservationBreaks++
			}
		}

		if now := world.roster.Alive(); now < alive {
			result.LastDeathStep = step
			alive = now
		}
		if world.roster.Len() > 1 && alive <= 1 {
			break
		}
	}

	for _, bk := range world.roster.All() {
		if bk.IsAlive() {
			result.Survivors = append(result.Survivors, bk.Tag())
		}
	}
	result.Healed = world.healed
	result.FinalState = world.State()
	return result, nil
}
