//go:build sdl2

package sdl

import (
	"testing"

	sdl2 "github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/picofb/internal/core"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		sym  sdl2.Keycode
		want core.Key
	}{
		{sdl2.K_a, core.KeyA},
		{sdl2.K_z, core.KeyZ},
		{sdl2.K_0, core.Key0},
		{sdl2.K_9, core.Key9},
		{sdl2.K_SPACE, core.KeySpace},
		{sdl2.K_ESCAPE, core.KeyEscape},
		{sdl2.K_F12, core.KeyF12},
		{sdl2.K_CAPSLOCK, core.KeyUnknown},
	}
	for _, tt := range tests {
		if got := translateKey(tt.sym); got != tt.want {
			t.Errorf("translateKey(%d) = %v, expected %v", tt.sym, got, tt.want)
		}
	}
}
