package battlefield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bombardConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Width = 200
	cfg.Height = 125
	cfg.Seed = seed
	cfg.Params.Bunkers = 4
	cfg.Params.BombardEvery = 5
	cfg.Params.BombardRadius = 12
	cfg.Params.BombardDamage = 40
	return cfg
}

func TestRunBombardment_Deterministic(t *testing.T) {
	a, err := RunBombardment(bombardConfig(7), 300)
	require.NoError(t, err)
	b, err := RunBombardment(bombardConfig(7), 300)
	require.NoError(t, err)

	assert.Equal(t, a.Summary(), b.Summary())
	assert.Equal(t, a.FinalState, b.FinalState)
}

func TestRunBombardment_ConservesBetweenBlasts(t *testing.T) {
	for _, layout := range []string{LayoutClassic, LayoutHills, LayoutEmpty} {
		t.Run(layout, func(t *testing.T) {
			cfg := bombardConfig(11)
			cfg.Params.Layout = layout

			res, err := RunBombardment(cfg, 200)
			require.NoError(t, err)
			assert.Zero(t, res.ConservationBreaks)
			assert.Positive(t, res.Detonations)
			assert.Equal(t, res.StepsSimulated, res.FinalState.Tick)
		})
	}
}

func TestRunBombardment_StopsWithOneSurvivor(t *testing.T) {
	cfg := bombardConfig(3)
	cfg.Params.BombardEvery = 1
	cfg.Params.BombardDamage = 100

	res, err := RunBombardment(cfg, 1000)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(res.Survivors), 1)
	assert.Less(t, res.StepsSimulated, 1000)
	assert.Equal(t, res.StepsSimulated, res.LastDeathStep)
}

func TestRunBombardment_InvalidConfig(t *testing.T) {
	cfg := bombardConfig(1)
	cfg.Height = 0

	_, err := RunBombardment(cfg, 10)
	assert.Error(t, err)
}
