package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectFOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "touching edges do not overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 10.5, 10, 10),
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.9, 9.9, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFOverlapsCircle(t *testing.T) {
	box := NewRectF(0, 0, 10, 10)

	if !box.OverlapsCircle(Vec2{X: 5, Y: 5}, 1) {
		t.Error("circle inside box should overlap")
	}
	if !box.OverlapsCircle(Vec2{X: 11, Y: 5}, 2) {
		t.Error("circle poking through the right edge should overlap")
	}
	if box.OverlapsCircle(Vec2{X: 13, Y: 5}, 2) {
		t.Error("circle clear of the box should not overlap")
	}
	// Corner case: circle near a corner overlaps only if the corner is
	// inside the radius, not the bounding box of the circle.
	if box.OverlapsCircle(Vec2{X: 11.5, Y: 11.5}, 2) {
		t.Error("circle diagonal to the corner should not overlap")
	}
	if !box.OverlapsCircle(Vec2{X: 10.5, Y: 10.5}, 1) {
		t.Error("circle close to the corner should overlap")
	}
}

func TestVec2Add(t *testing.T) {
	v := Vec2{X: 1.5, Y: -2}.Add(Vec2{X: 0.5, Y: 3})
	if v.X != 2 || v.Y != 1 {
		t.Errorf("Add() = %+v, expected {2 1}", v)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("value in range should be unchanged")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Error("value below range should clamp to min")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("value above range should clamp to max")
	}
	if ClampF(0.5, 0, 1) != 0.5 {
		t.Error("float in range should be unchanged")
	}
	if ClampF(-0.5, 0, 1) != 0 {
		t.Error("float below range should clamp to min")
	}
}
