package assets

import (
	"embed"

	"github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadLevels parses every embedded level, in file name order.
func LoadLevels() ([]*leveldata.Level, error) {
	return leveldata.LoadAllLevels(assetFS, config.Level.Dir, config.Level.TileSize)
}
