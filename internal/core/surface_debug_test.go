//go:build picofb_debug

package core

import "testing"

func TestSetUncheckedPanicsOutOfRange(t *testing.T) {
	cases := []struct{ x, y int }{{-1, 0}, {4, 0}, {0, 3}, {0, -1}}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SetUnchecked(%d, %d) did not panic", c.x, c.y)
				}
			}()
			NewSurface(4, 3).SetUnchecked(c.x, c.y, White)
		}()
	}

	s := NewSurface(4, 3)
	s.SetUnchecked(3, 2, White)
	if got := s.Get(3, 2); got != 0xFFFFFFFF {
		t.Errorf("Get(3, 2) = %#x, expected 0xffffffff", got)
	}
}
