package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const spawnGroup = "PlayerSpawn"

// LoadTMX parses a Tiled map. Every non-empty tile of every tile layer
// becomes a Tile whose kind comes from the tileset tile's "kind" property;
// the PlayerSpawn object group must hold exactly one object. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   stem(tmxPath),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil {
					return nil, fmt.Errorf("%s: tile %d at %d,%d: %w", tmxPath, tile.ID, x, y, err)
				}
				kind, err := parseKind(tilesetTile.Properties.GetString("kind"))
				if err != nil {
					return nil, fmt.Errorf("%s: tile %d at %d,%d: %w", tmxPath, tile.ID, x, y, err)
				}

				level.Tiles = append(level.Tiles, Tile{
					X:           float64(x) * tileW,
					Y:           float64(y) * tileH,
					W:           tileW,
					H:           tileH,
					Kind:        kind,
					BounceSpeed: tilesetTile.Properties.GetFloat("bounceSpeed"),
				})
			}
		}
	}

	spawns := 0
	for _, og := range levelMap.ObjectGroups {
		if og.Name != spawnGroup {
			continue
		}
		for _, o := range og.Objects {
			level.Spawn = Point{X: o.X, Y: o.Y}
			spawns++
		}
	}
	switch {
	case spawns == 0:
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	case spawns > 1:
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrMultipleSpawns)
	}

	return level, nil
}

// LoadGrid parses a character grid file from fsys.
func LoadGrid(fsys fs.FS, gridPath string, tileSize float64) (*Level, error) {
	f, err := fsys.Open(gridPath)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", gridPath, err)
	}
	defer f.Close()
	return ParseGrid(stem(gridPath), f, tileSize)
}

// LoadLevel loads a .txt grid or .tmx map depending on the file extension.
func LoadLevel(fsys fs.FS, levelPath string, tileSize float64) (*Level, error) {
	switch path.Ext(levelPath) {
	case ".txt":
		return LoadGrid(fsys, levelPath, tileSize)
	case ".tmx":
		return LoadTMX(fsys, levelPath)
	}
	return nil, fmt.Errorf("unsupported level file %s", levelPath)
}

// LoadAllLevels loads every .txt and .tmx level in levelsDir, ordered by
// file name.
func LoadAllLevels(fsys fs.FS, levelsDir string, tileSize float64) ([]*Level, error) {
	var matches []string
	for _, ext := range []string{"*.txt", "*.tmx"} {
		pattern := path.Join(levelsDir, ext)
		found, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, found...)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no level files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		level, err := LoadLevel(fsys, p, tileSize)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func stem(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}
