// Package battlefield runs a cannonland match: the terrain grid, the bunker
// roster and the per-tick ordering between them.
package battlefield

import (
	"fmt"
	"time"

	"cannonland/internal/bunker"
	"cannonland/internal/core"
	"cannonland/internal/terrain"

	log "github.com/sirupsen/logrus"
)

// Battlefield owns one grid and the bunkers placed on it. It is not safe for
// concurrent use; callers serialise access for the duration of a tick.
type Battlefield struct {
	cfg Config

	grid   *terrain.Grid
	roster *bunker.Roster
	rng    *core.RNG

	tick    int
	healed  int
	elapsed time.Duration
	last    *Detonation

	logger *log.Entry
}

// New returns a battlefield with the provided dimensions using defaults.
func New(w, h int) (*Battlefield, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds a battlefield and lays out its first match.
func NewWithConfig(cfg Config) (*Battlefield, error) {
	grid, err := terrain.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("battlefield: %w", err)
	}
	b := &Battlefield{
		cfg:    cfg,
		grid:   grid,
		roster: bunker.NewRoster(),
		logger: log.WithField("sim", "battlefield"),
	}
	if limit := maxTeams(cfg.Width); cfg.Params.Bunkers > limit {
		b.logger.WithFields(log.Fields{"requested": cfg.Params.Bunkers, "limit": limit}).Warn("too many bunkers for the grid, clamping")
	}
	b.cfg.Params.Bunkers = min(max(cfg.Params.Bunkers, 0), maxTeams(cfg.Width))
	b.applyLoose()
	b.Reset(0)
	return b, nil
}

// Name returns the simulation identifier.
func (b *Battlefield) Name() string { return "battlefield" }

// Size reports the grid dimensions.
func (b *Battlefield) Size() core.Size {
	return core.Size{W: b.grid.Width(), H: b.grid.Height()}
}

// Cells exposes the grid's material values for display.
func (b *Battlefield) Cells() []uint8 { return b.grid.Bytes() }

// Grid exposes the terrain.
func (b *Battlefield) Grid() *terrain.Grid { return b.grid }

// Roster exposes the bunkers.
func (b *Battlefield) Roster() *bunker.Roster { return b.roster }

// Config returns the active configuration.
func (b *Battlefield) Config() Config { return b.cfg }

// Tick returns the number of completed steps since the last Reset.
func (b *Battlefield) Tick() int { return b.tick }

// Healed returns how many orphaned bunker markers were erased since Reset.
func (b *Battlefield) Healed() int { return b.healed }

// SetLogger replaces the entry used for simulation logs.
func (b *Battlefield) SetLogger(entry *log.Entry) {
	if entry != nil {
		b.logger = entry
	}
}

// Reset rebuilds terrain and bunkers. A zero seed reuses the configured seed.
func (b *Battlefield) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = b.cfg.Seed
	}
	b.rng = core.NewRNG(effective)
	b.tick = 0
	b.healed = 0
	b.elapsed = 0
	b.last = nil

	w, h := b.grid.Width(), b.grid.Height()
	if err := b.grid.SetRect(terrain.Empty, 0, 0, w, h); err != nil {
		b.logger.WithError(err).Error("clearing grid")
	}
	startRow, err := b.buildTerrain(b.rng)
	if err != nil {
		b.logger.WithError(err).WithField("layout", b.cfg.Params.Layout).Error("painting layout")
	}

	teams := terrain.BunkerMarkers()[:b.cfg.Params.Bunkers]
	b.roster = bunker.NewRoster()
	for _, tag := range teams {
		if _, err := b.roster.Add(bunker.NewAtNowhere(tag)); err != nil {
			b.logger.WithError(err).Error("adding bunker")
		}
	}
	b.placeMarkers(teams, startRow)
	b.grid.UpdateBunkers(b.roster)

	b.logger.WithFields(log.Fields{
		"seed":    effective,
		"layout":  b.cfg.Params.Layout,
		"bunkers": len(teams),
		"size":    fmt.Sprintf("%dx%d", w, h),
	}).Info("battlefield reset")
}

// Step advances one tick: scheduled bombardment, terrain physics, then bunker
// re-synchronisation from the grid.
func (b *Battlefield) Step() {
	start := time.Now()
	b.tick++

	if every := b.cfg.Params.BombardEvery; every > 0 && b.tick%every == 0 {
		b.bombard()
	}

	b.grid.Stride()
	if healed := b.grid.UpdateBunkers(b.roster); healed > 0 {
		b.healed += healed
		b.logger.WithFields(log.Fields{"tick": b.tick, "cells": healed}).Warn("erased bunker markers without an owner")
	}

	b.elapsed += time.Since(start)
	if every := b.cfg.Params.ReportEvery; every > 0 && b.tick%every == 0 {
		b.logger.WithFields(log.Fields{
			"tick":  b.tick,
			"avg":   b.elapsed / time.Duration(every),
			"alive": b.roster.Alive(),
		}).Debug("tick timing")
		b.elapsed = 0
	}
}

func (b *Battlefield) applyLoose() {
	for _, tag := range terrain.BunkerMarkers() {
		b.grid.SetLoose(tag, b.cfg.Params.BunkersFall)
	}
}

func init() {
	core.Register("battlefield", func(cfg map[string]string) (core.Sim, error) {
		b, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}
