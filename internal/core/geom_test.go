package core

import "testing"

func TestPointAdd(t *testing.T) {
	p := Point{X: 10, Y: 10}.Add(Point{X: -1, Y: 0})
	if p != (Point{X: 9, Y: 10}) {
		t.Errorf("Add() = %v, expected (9,10)", p)
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Point{0, 0}, true},
		{"far corner", Point{19, 19}, true},
		{"left of board", Point{-1, 5}, false},
		{"above board", Point{5, -1}, false},
		{"right of board", Point{20, 5}, false},
		{"below board", Point{5, 20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.In(20, 20); got != tc.expected {
				t.Errorf("%v.In(20, 20) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	r := NewRect(0, 0, 80, 24).Centered(42, 22)
	if r.X != 19 || r.Y != 1 || r.W != 42 || r.H != 22 {
		t.Errorf("Centered() = %+v", r)
	}
}
