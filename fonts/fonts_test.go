package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontWithSize(t *testing.T) {
	require.NoError(t, LoadFontWithSize(Title, goregular.TTF, 32))
	require.NoError(t, LoadFont(Hint, goregular.TTF))

	title, hint := Title.Get(), Hint.Get()
	require.NotNil(t, title)
	assert.Greater(t, title.Metrics().Height.Ceil(), hint.Metrics().Height.Ceil())

	wide := font.MeasureString(title, "Level Complete!")
	narrow := font.MeasureString(hint, "Level Complete!")
	assert.Greater(t, wide.Ceil(), narrow.Ceil())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 12)
	assert.Error(t, err)
	assert.Panics(t, func() { FontName("broken").Get() })
}
