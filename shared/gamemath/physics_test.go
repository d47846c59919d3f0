package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFriction(t *testing.T) {
	assert.InDelta(t, 0.4, ApplyFriction(0.5, 0.1), 1e-12)
	assert.InDelta(t, -0.4, ApplyFriction(-0.5, 0.1), 1e-12)
	assert.Equal(t, 0.0, ApplyFriction(0.05, 0.1), "must snap instead of crossing zero")
	assert.Equal(t, 0.0, ApplyFriction(-0.05, 0.1))
	assert.Equal(t, 0.0, ApplyFriction(0, 0.1))
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 2.0, ClampSpeed(5, 2))
	assert.Equal(t, -2.0, ClampSpeed(-5, 2))
	assert.Equal(t, 1.5, ClampSpeed(1.5, 2))
}

func TestApproachCap(t *testing.T) {
	tests := []struct {
		name               string
		speed, max, amount float64
		want               float64
	}{
		{"under cap untouched", 0.2, 0.25, 0.1, 0.2},
		{"bleeds toward cap", 0.6, 0.25, 0.1, 0.5},
		{"stops at cap", 0.3, 0.25, 0.1, 0.25},
		{"negative bleeds toward cap", -0.6, 0.25, 0.1, -0.5},
		{"negative stops at cap", -0.3, 0.25, 0.1, -0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ApproachCap(tt.speed, tt.max, tt.amount), 1e-12)
		})
	}
}

func TestClampDelta(t *testing.T) {
	assert.Equal(t, 16.0, ClampDelta(16, 33))
	assert.Equal(t, 33.0, ClampDelta(250, 33))
	assert.Equal(t, 0.0, ClampDelta(-4, 33))
}
