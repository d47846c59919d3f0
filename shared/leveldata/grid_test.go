package leveldata

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	src := strings.Join([]string{
		"; comment rows are skipped",
		"P...",
		"..C.",
		"#BXG",
		"##",
		"",
	}, "\n")

	level, err := ParseGrid("test", strings.NewReader(src), 10)
	require.NoError(t, err)

	assert.Equal(t, "test", level.Name)
	assert.Equal(t, Point{X: 0, Y: 0}, level.Spawn)
	assert.Equal(t, 40.0, level.Width)
	assert.Equal(t, 40.0, level.Height)
	require.Len(t, level.Tiles, 7)

	assert.Equal(t, Tile{X: 20, Y: 10, W: 10, H: 10, Kind: TileCheckpoint}, level.Tiles[0])
	assert.Equal(t, Tile{X: 0, Y: 20, W: 10, H: 10, Kind: TileNormal}, level.Tiles[1])
	assert.Equal(t, TileBounce, level.Tiles[2].Kind)
	assert.Equal(t, TileHazard, level.Tiles[3].Kind)
	assert.Equal(t, TileGoal, level.Tiles[4].Kind)
	assert.Equal(t, 5, level.Count(TileNormal)+level.Count(TileGoal)+level.Count(TileCheckpoint))
}

func TestParseGridWindowsLineEndings(t *testing.T) {
	level, err := ParseGrid("crlf", strings.NewReader("P.\r\n##\r\n"), 20)
	require.NoError(t, err)
	assert.Equal(t, 40.0, level.Width)
	assert.Len(t, level.Tiles, 2)
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		file string
		want error
	}{
		{"testdata/bad_symbol.txt", ErrUnknownSymbol},
		{"testdata/no_spawn.txt", ErrNoSpawn},
		{"testdata/two_spawns.txt", ErrMultipleSpawns},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := LoadGrid(os.DirFS("."), tt.file, 20)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ParseGrid("empty", strings.NewReader("; only a comment\n\n"), 20)
	assert.ErrorIs(t, err, ErrEmptyLevel)
}
