package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(100, 450, 34, 20)

	if b.Left() != 83 || b.Right() != 117 {
		t.Errorf("horizontal edges = (%v, %v), expected (83, 117)", b.Left(), b.Right())
	}
	if b.Top() != 440 || b.Bottom() != 460 {
		t.Errorf("vertical edges = (%v, %v), expected (440, 460)", b.Top(), b.Bottom())
	}
}

func TestBoxOverlapsAndTouches(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		overlaps bool
		touches  bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true, true},
		{"sharing an edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false, true},
		{"resting on top", NewBox(0, 0, 10, 10), NewBox(0, 10, 10, 10), false, true},
		{"apart", NewBox(0, 0, 10, 10), NewBox(30, 0, 10, 10), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.overlaps {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.overlaps)
			}
			if got := tc.a.Touches(tc.b); got != tc.touches {
				t.Errorf("Touches() = %v, expected %v", got, tc.touches)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5.5, 0, 10) = %v, expected 0", got)
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max should return the larger value")
	}
}
