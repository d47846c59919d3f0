package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelCompleteReady(t *testing.T) {
	var d LevelCompleteData
	assert.False(t, d.Ready(), "nothing to dismiss before completion")
	assert.False(t, d.Armed)

	d.IsComplete = true
	assert.False(t, d.Ready(), "the completing tick only arms the overlay")
	assert.True(t, d.Ready())
	assert.True(t, d.Ready())

	d = LevelCompleteData{}
	d.IsComplete = true
	assert.False(t, d.Ready(), "a reset overlay arms again")
}
