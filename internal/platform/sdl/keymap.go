//go:build sdl2

package sdl

import (
	sdl2 "github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/picofb/internal/core"
)

var keyTable = map[sdl2.Keycode]core.Key{
	sdl2.K_SPACE:        core.KeySpace,
	sdl2.K_RETURN:       core.KeyEnter,
	sdl2.K_ESCAPE:       core.KeyEscape,
	sdl2.K_BACKSPACE:    core.KeyBackspace,
	sdl2.K_TAB:          core.KeyTab,
	sdl2.K_DELETE:       core.KeyDelete,
	sdl2.K_INSERT:       core.KeyInsert,
	sdl2.K_HOME:         core.KeyHome,
	sdl2.K_END:          core.KeyEnd,
	sdl2.K_PAGEUP:       core.KeyPageUp,
	sdl2.K_PAGEDOWN:     core.KeyPageDown,
	sdl2.K_UP:           core.KeyUp,
	sdl2.K_DOWN:         core.KeyDown,
	sdl2.K_LEFT:         core.KeyLeft,
	sdl2.K_RIGHT:        core.KeyRight,
	sdl2.K_F1:           core.KeyF1,
	sdl2.K_F2:           core.KeyF2,
	sdl2.K_F3:           core.KeyF3,
	sdl2.K_F4:           core.KeyF4,
	sdl2.K_F5:           core.KeyF5,
	sdl2.K_F6:           core.KeyF6,
	sdl2.K_F7:           core.KeyF7,
	sdl2.K_F8:           core.KeyF8,
	sdl2.K_F9:           core.KeyF9,
	sdl2.K_F10:          core.KeyF10,
	sdl2.K_F11:          core.KeyF11,
	sdl2.K_F12:          core.KeyF12,
	sdl2.K_LSHIFT:       core.KeyShiftLeft,
	sdl2.K_RSHIFT:       core.KeyShiftRight,
	sdl2.K_LCTRL:        core.KeyControlLeft,
	sdl2.K_RCTRL:        core.KeyControlRight,
	sdl2.K_LALT:         core.KeyAltLeft,
	sdl2.K_RALT:         core.KeyAltRight,
	sdl2.K_MINUS:        core.KeyMinus,
	sdl2.K_EQUALS:       core.KeyEquals,
	sdl2.K_COMMA:        core.KeyComma,
	sdl2.K_PERIOD:       core.KeyPeriod,
	sdl2.K_SLASH:        core.KeySlash,
	sdl2.K_SEMICOLON:    core.KeySemicolon,
	sdl2.K_QUOTE:        core.KeyApostrophe,
	sdl2.K_LEFTBRACKET:  core.KeyBracketLeft,
	sdl2.K_RIGHTBRACKET: core.KeyBracketRight,
	sdl2.K_BACKSLASH:    core.KeyBackslash,
	sdl2.K_BACKQUOTE:    core.KeyGrave,
}

// translateKey maps an SDL keycode. Letter and digit keycodes are their
// lowercase ASCII values.
func translateKey(sym sdl2.Keycode) core.Key {
	switch {
	case sym >= sdl2.K_a && sym <= sdl2.K_z:
		return core.KeyA + core.Key(sym-sdl2.K_a)
	case sym >= sdl2.K_0 && sym <= sdl2.K_9:
		return core.Key0 + core.Key(sym-sdl2.K_0)
	}
	if k, ok := keyTable[sym]; ok {
		return k
	}
	return core.KeyUnknown
}
