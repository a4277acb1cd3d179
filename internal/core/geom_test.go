package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"bottom-right inside", 5, 4, true},
		{"right edge is exclusive", 6, 3, false},
		{"bottom edge is exclusive", 2, 5, false},
		{"left of rect", 1, 3, false},
		{"above rect", 3, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y))
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 5, 20, 8)

	assert.Equal(t, 30, r.Right())
	assert.Equal(t, 13, r.Bottom())
}

func TestRectInset(t *testing.T) {
	assert.Equal(t, NewRect(1, 1, 8, 4), NewRect(0, 0, 10, 6).Inset(1))

	got := NewRect(0, 0, 3, 3).Inset(2)
	assert.Zero(t, got.W, "over-inset collapses to zero size")
	assert.Zero(t, got.H, "over-inset collapses to zero size")
}

func TestRectCentered(t *testing.T) {
	assert.Equal(t, NewRect(30, 7, 20, 10), NewRect(0, 0, 80, 24).Centered(20, 10))

	got := NewRect(0, 0, 10, 4).Centered(14, 4)
	assert.Equal(t, -2, got.X, "oversized content starts left of the area")
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.lo, tc.hi), "Clamp(%d, %d, %d)", tc.val, tc.lo, tc.hi)
	}
}

func TestClampF(t *testing.T) {
	assert.Equal(t, 1.0, ClampF(1.5, 0, 1))
	assert.Equal(t, 0.0, ClampF(-0.1, 0, 1))
	assert.Equal(t, 0.4, ClampF(0.4, 0, 1))
}

func TestMax(t *testing.T) {
	assert.Equal(t, 7, Max(3, 7))
	assert.Equal(t, 7, Max(7, 3))
}
