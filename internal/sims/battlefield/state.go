package battlefield

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"cannonland/internal/bunker"
	"cannonland/internal/terrain"
)

// ErrStateMismatch is returned when a State cannot be applied to this battlefield.
var ErrStateMismatch = errors.New("battlefield: state does not match")

// State is the transferable form of a match: every cell plus every bunker.
type State struct {
	Width   int
	Height  int
	Tick    int
	Cells   []terrain.Material
	Bunkers []bunker.State
}

// State captures the battlefield between ticks.
func (b *Battlefield) State() State {
	return State{
		Width:   b.grid.Width(),
		Height:  b.grid.Height(),
		Tick:    b.tick,
		Cells:   b.grid.Snapshot(),
		Bunkers: b.roster.States(),
	}
}

// Restore replaces grid and roster with s. The battlefield is left untouched
// when s is rejected.
func (b *Battlefield) Restore(s State) error {
	if s.Width != b.grid.Width() || s.Height != b.grid.Height() {
		return fmt.Errorf("%w: %dx%d state for %dx%d grid", ErrStateMismatch, s.Width, s.Height, b.grid.Width(), b.grid.Height())
	}

	roster := bunker.NewRoster()
	for i, bs := range s.Bunkers {
		bk, err := bunker.FromState(bs)
		if err != nil {
			return fmt.Errorf("%w: bunker %d: %w", ErrStateMismatch, i, err)
		}
		if _, err := roster.Add(bk); err != nil {
			return fmt.Errorf("%w: bunker %d: %w", ErrStateMismatch, i, err)
		}
	}

	if err := b.grid.Load(s.Cells); err != nil {
		return fmt.Errorf("%w: %w", ErrStateMismatch, err)
	}
	b.roster = roster
	b.tick = s.Tick
	b.last = nil
	return nil
}

// EncodeState writes s to w as a gob stream.
func EncodeState(w io.Writer, s State) error {
	if err := gob.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return nil
}

// DecodeState reads one State written by EncodeState.
func DecodeState(r io.Reader) (State, error) {
	var s State
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	return s, nil
}
