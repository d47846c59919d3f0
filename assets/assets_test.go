package assets

import (
	"testing"

	"github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevels(t *testing.T) {
	levels, err := LoadLevels()
	require.NoError(t, err)
	require.Len(t, levels, 3)

	names := []string{"01_first_steps", "02_spikes", "03_shaft"}
	for i, level := range levels {
		t.Run(names[i], func(t *testing.T) {
			assert.Equal(t, names[i], level.Name)
			assert.Equal(t, float64(config.C.Width), level.Width)
			assert.Equal(t, float64(config.C.Height), level.Height)
			assert.Equal(t, 1, level.Count(leveldata.TileGoal), "one goal per level")
		})
	}
}
