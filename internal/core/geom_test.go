package core

import "testing"

func TestCenteredBounds(t *testing.T) {
	b := CenteredBounds(600, 400, 400, 300)

	if b.Left != 100 || b.Right != 500 {
		t.Errorf("horizontal bounds = [%v, %v], expected [100, 500]", b.Left, b.Right)
	}
	if b.Top != 50 || b.Bottom != 350 {
		t.Errorf("vertical bounds = [%v, %v], expected [50, 350]", b.Top, b.Bottom)
	}
	if b.Width() != 400 || b.Height() != 300 {
		t.Errorf("size = %vx%v, expected 400x300", b.Width(), b.Height())
	}
}

func TestPointInBox(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		expected bool
	}{
		{"center", 10, 10, true},
		{"inside", 12, 8, true},
		{"left edge inclusive", 6, 10, true},
		{"right edge inclusive", 14, 10, true},
		{"top edge inclusive", 10, 7, true},
		{"bottom edge inclusive", 10, 13, true},
		{"corner inclusive", 6, 7, true},
		{"outside left", 5.9, 10, false},
		{"outside right", 14.1, 10, false},
		{"outside above", 10, 6.9, false},
		{"outside below", 10, 13.1, false},
	}

	// Box centered at (10, 10), 8 wide, 6 tall
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := PointInBox(tc.px, tc.py, 10, 10, 8, 6)
			if result != tc.expected {
				t.Errorf("PointInBox(%v, %v) = %v, expected %v", tc.px, tc.py, result, tc.expected)
			}
		})
	}
}

func TestBoxesOverlap(t *testing.T) {
	tests := []struct {
		name           string
		bx, by, bw, bh float64
		expected       bool
	}{
		{"same box", 0, 0, 10, 10, true},
		{"partial overlap", 5, 5, 10, 10, true},
		{"contained", 1, 1, 2, 2, true},
		{"touching right edge", 10, 0, 10, 10, true},
		{"touching bottom edge", 0, 10, 10, 10, true},
		{"touching corner", 10, 10, 10, 10, true},
		{"separated horizontal", 10.1, 0, 10, 10, false},
		{"separated vertical", 0, 10.1, 10, 10, false},
		{"far away", 100, 100, 10, 10, false},
	}

	// First box centered at origin, 10x10
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := BoxesOverlap(0, 0, 10, 10, tc.bx, tc.by, tc.bw, tc.bh)
			if result != tc.expected {
				t.Errorf("BoxesOverlap = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			reverse := BoxesOverlap(tc.bx, tc.by, tc.bw, tc.bh, 0, 0, 10, 10)
			if reverse != tc.expected {
				t.Errorf("BoxesOverlap (reversed) = %v, expected %v", reverse, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max float64
		expected      float64
	}{
		{"below min", -5, 0, 10, 0},
		{"above max", 15, 0, 10, 10},
		{"in range", 5, 0, 10, 5},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("ClampF(%v) = %v, expected %v", tc.val, got, tc.expected)
			}
		})
	}
}
