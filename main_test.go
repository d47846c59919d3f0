package main

import (
	"testing"

	"github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/fonts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutIsFixed(t *testing.T) {
	g := NewGame()
	for _, size := range [][2]int{{640, 480}, {2560, 1440}} {
		w, h := g.Layout(size[0], size[1])
		assert.Equal(t, config.C.Width, w)
		assert.Equal(t, config.C.Height, h)
	}
}

func TestLoadFonts(t *testing.T) {
	require.NoError(t, loadFonts())
	for _, name := range []fonts.FontName{fonts.HUD, fonts.Title, fonts.Hint} {
		assert.NotNil(t, name.Get(), "font %s", name)
	}
}
