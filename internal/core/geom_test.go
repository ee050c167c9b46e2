package core

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
		empty    bool
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5), false},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 3, 4, 4), NewRect(2, 3, 4, 4), false},
		{"touching edges", NewRect(0, 0, 5, 5), NewRect(5, 0, 5, 5), Rect{}, true},
		{"disjoint", NewRect(0, 0, 2, 2), NewRect(8, 8, 2, 2), Rect{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got.Empty() != tt.empty {
				t.Fatalf("Intersect().Empty() = %v, expected %v (got %+v)", got.Empty(), tt.empty, got)
			}
			if !tt.empty && got != tt.expected {
				t.Errorf("Intersect() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if !r.Contains(14, 14) {
		t.Error("last pixel should be inside")
	}
	if r.Contains(15, 10) || r.Contains(10, 15) {
		t.Error("right and bottom edges are exclusive")
	}
	if r.Contains(9, 12) {
		t.Error("point left of rect should be outside")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 20)
	if r.Right() != 13 {
		t.Errorf("Right() = %d, expected 13", r.Right())
	}
	if r.Bottom() != 24 {
		t.Errorf("Bottom() = %d, expected 24", r.Bottom())
	}
}

func TestClampHelpers(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %d, expected 0", got)
	}
	if got := Clamp(50, 0, 10); got != 10 {
		t.Errorf("Clamp(50, 0, 10) = %d, expected 10", got)
	}
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %f, expected 0.5", got)
	}
	if Min(3, 7) != 3 || Max(3, 7) != 7 {
		t.Error("Min/Max returned wrong operand")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs should drop the sign")
	}
}
