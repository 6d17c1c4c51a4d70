package battlefield

import (
	"errors"
	"fmt"

	"cannonland/internal/terrain"
)

var (
	// ErrUnknownBunker is returned for commands addressed to a tag nobody owns.
	ErrUnknownBunker = errors.New("battlefield: unknown bunker")
	// ErrDeadBunker is returned for combat commands sent to a destroyed bunker.
	ErrDeadBunker = errors.New("battlefield: bunker is destroyed")
	// ErrUnknownAction is returned for undeclared actions.
	ErrUnknownAction = errors.New("battlefield: unknown action")
)

// Action is a player input applied to a bunker between ticks.
type Action uint8

const (
	ActionAim Action = iota
	ActionCharge
	ActionReleaseCharge
	ActionNextWeapon
	ActionPrevWeapon
	ActionJoin
	ActionLeave
)

func (a Action) String() string {
	switch a {
	case ActionAim:
		return "aim"
	case ActionCharge:
		return "charge"
	case ActionReleaseCharge:
		return "release"
	case ActionNextWeapon:
		return "next-weapon"
	case ActionPrevWeapon:
		return "prev-weapon"
	case ActionJoin:
		return "join"
	case ActionLeave:
		return "leave"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// Command addresses one action to the bunker carrying Tag. Angle is used by
// ActionAim, Amount by ActionCharge.
type Command struct {
	Tag    terrain.Material
	Action Action
	Angle  float64
	Amount int
}

// Apply mutates the addressed bunker. Releasing the charge returns the charge
// that was accumulated so the caller can size the shot.
func (b *Battlefield) Apply(cmd Command) (int, error) {
	target, err := b.roster.ByTag(cmd.Tag)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownBunker, cmd.Tag)
	}

	switch cmd.Action {
	case ActionJoin:
		target.PlayerActive = true
		return 0, nil
	case ActionLeave:
		target.PlayerActive = false
		return 0, nil
	}

	if !target.IsAlive() {
		return 0, fmt.Errorf("%w: %s %s", ErrDeadBunker, cmd.Tag, cmd.Action)
	}
	switch cmd.Action {
	case ActionAim:
		target.ChangeAngle(cmd.Angle)
	case ActionCharge:
		target.IncrementCharge(cmd.Amount)
	case ActionReleaseCharge:
		charge := target.Charge()
		target.ResetCharge()
		return charge, nil
	case ActionNextWeapon:
		target.NextWeapon()
	case ActionPrevWeapon:
		target.PrevWeapon()
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownAction, cmd.Action)
	}
	return 0, nil
}
