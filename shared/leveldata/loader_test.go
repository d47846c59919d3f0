package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTMX(t *testing.T) {
	level, err := LoadTMX(os.DirFS("testdata"), "levels/02_tiled.tmx")
	require.NoError(t, err)

	assert.Equal(t, "02_tiled", level.Name)
	assert.Equal(t, 100.0, level.Width)
	assert.Equal(t, 60.0, level.Height)
	assert.Equal(t, Point{X: 20, Y: 0}, level.Spawn)
	require.Len(t, level.Tiles, 7)

	bounce := level.Tiles[0]
	assert.Equal(t, TileBounce, bounce.Kind)
	assert.Equal(t, 80.0, bounce.X)
	assert.InDelta(t, 0.75, bounce.BounceSpeed, 1e-9)

	assert.Equal(t, Tile{X: 40, Y: 20, W: 20, H: 20, Kind: TileCheckpoint}, level.Tiles[1])
	assert.Equal(t, 3, level.Count(TileNormal))
	assert.Equal(t, 1, level.Count(TileHazard))
	assert.Equal(t, 1, level.Count(TileGoal))
}

func TestLoadAllLevels(t *testing.T) {
	levels, err := LoadAllLevels(os.DirFS("testdata"), "levels", 20)
	require.NoError(t, err)
	require.Len(t, levels, 2)

	assert.Equal(t, "01_start", levels[0].Name)
	assert.Equal(t, "02_tiled", levels[1].Name)
	assert.Equal(t, Point{X: 20, Y: 20}, levels[0].Spawn)
	assert.Equal(t, 200.0, levels[0].Width)
	assert.Equal(t, 100.0, levels[0].Height)
}

func TestLoadAllLevelsEmptyDir(t *testing.T) {
	_, err := LoadAllLevels(os.DirFS("testdata"), "missing", 20)
	assert.Error(t, err)
}

func TestLoadLevelUnsupported(t *testing.T) {
	_, err := LoadLevel(os.DirFS("testdata"), "levels/readme.md", 20)
	assert.ErrorContains(t, err, "unsupported")
}
