package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Grid symbols.
const (
	SymbolEmpty      = '.'
	SymbolNormal     = '#'
	SymbolHazard     = 'X'
	SymbolGoal       = 'G'
	SymbolBounce     = 'B'
	SymbolCheckpoint = 'C'
	SymbolSpawn      = 'P'
	commentPrefix    = ";"
)

var symbolKinds = map[rune]TileKind{
	SymbolNormal:     TileNormal,
	SymbolHazard:     TileHazard,
	SymbolGoal:       TileGoal,
	SymbolBounce:     TileBounce,
	SymbolCheckpoint: TileCheckpoint,
}

// ParseGrid reads a character grid, one tile per character, rows top to
// bottom. Rows may be ragged; the level is as wide as its longest row.
func ParseGrid(name string, r io.Reader, tileSize float64) (*Level, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, commentPrefix) {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read level %s: %w", name, err)
	}

	// Trailing blank lines do not add height.
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("level %s: %w", name, ErrEmptyLevel)
	}

	level := &Level{Name: name}
	cols := 0
	spawns := 0
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			px, py := float64(x)*tileSize, float64(y)*tileSize
			switch ch {
			case SymbolEmpty, ' ':
			case SymbolSpawn:
				level.Spawn = Point{X: px, Y: py}
				spawns++
			default:
				kind, ok := symbolKinds[ch]
				if !ok {
					return nil, fmt.Errorf("level %s row %d col %d %q: %w", name, y+1, x+1, ch, ErrUnknownSymbol)
				}
				level.Tiles = append(level.Tiles, Tile{X: px, Y: py, W: tileSize, H: tileSize, Kind: kind})
			}
			x++
		}
		cols = max(cols, x)
	}

	switch {
	case spawns == 0:
		return nil, fmt.Errorf("level %s: %w", name, ErrNoSpawn)
	case spawns > 1:
		return nil, fmt.Errorf("level %s: %w", name, ErrMultipleSpawns)
	}

	level.Width = float64(cols) * tileSize
	level.Height = float64(len(rows)) * tileSize
	return level, nil
}
