package window

import "testing"

func TestTile(t *testing.T) {
	widths := []int{300, 200}
	tl := Tile(widths, []int{200, 300})

	if tl.Width != 500 || tl.Height != 300 {
		t.Errorf("Tile() size = %dx%d, expected 500x300", tl.Width, tl.Height)
	}
	if tl.Offsets[0] != 0 || tl.Offsets[1] != 300 {
		t.Errorf("Offsets = %v, expected [0 300]", tl.Offsets)
	}

	if i, x := tl.Hit(widths, 310); i != 1 || x != 10 {
		t.Errorf("Hit(310) = %d, %d; expected 1, 10", i, x)
	}
	if i, _ := tl.Hit(widths, 500); i != -1 {
		t.Errorf("Hit(500) = %d, expected -1", i)
	}
}

func TestTileEmpty(t *testing.T) {
	tl := Tile(nil, nil)
	if tl.Width != 1 || tl.Height != 1 {
		t.Errorf("empty Tile() = %dx%d, expected 1x1", tl.Width, tl.Height)
	}
}

func TestJoinTitles(t *testing.T) {
	if got := JoinTitles([]string{"main FPS 60.000", "", "side"}); got != "main FPS 60.000 | side" {
		t.Errorf("JoinTitles() = %q", got)
	}
}
