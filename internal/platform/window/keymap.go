//go:build cgo

package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/picofb/internal/core"
)

var keyTable = map[ebiten.Key]core.Key{
	ebiten.KeyA:            core.KeyA,
	ebiten.KeyB:            core.KeyB,
	ebiten.KeyC:            core.KeyC,
	ebiten.KeyD:            core.KeyD,
	ebiten.KeyE:            core.KeyE,
	ebiten.KeyF:            core.KeyF,
	ebiten.KeyG:            core.KeyG,
	ebiten.KeyH:            core.KeyH,
	ebiten.KeyI:            core.KeyI,
	ebiten.KeyJ:            core.KeyJ,
	ebiten.KeyK:            core.KeyK,
	ebiten.KeyL:            core.KeyL,
	ebiten.KeyM:            core.KeyM,
	ebiten.KeyN:            core.KeyN,
	ebiten.KeyO:            core.KeyO,
	ebiten.KeyP:            core.KeyP,
	ebiten.KeyQ:            core.KeyQ,
	ebiten.KeyR:            core.KeyR,
	ebiten.KeyS:            core.KeyS,
	ebiten.KeyT:            core.KeyT,
	ebiten.KeyU:            core.KeyU,
	ebiten.KeyV:            core.KeyV,
	ebiten.KeyW:            core.KeyW,
	ebiten.KeyX:            core.KeyX,
	ebiten.KeyY:            core.KeyY,
	ebiten.KeyZ:            core.KeyZ,
	ebiten.KeyDigit0:       core.Key0,
	ebiten.KeyDigit1:       core.Key1,
	ebiten.KeyDigit2:       core.Key2,
	ebiten.KeyDigit3:       core.Key3,
	ebiten.KeyDigit4:       core.Key4,
	ebiten.KeyDigit5:       core.Key5,
	ebiten.KeyDigit6:       core.Key6,
	ebiten.KeyDigit7:       core.Key7,
	ebiten.KeyDigit8:       core.Key8,
	ebiten.KeyDigit9:       core.Key9,
	ebiten.KeySpace:        core.KeySpace,
	ebiten.KeyEnter:        core.KeyEnter,
	ebiten.KeyEscape:       core.KeyEscape,
	ebiten.KeyBackspace:    core.KeyBackspace,
	ebiten.KeyTab:          core.KeyTab,
	ebiten.KeyDelete:       core.KeyDelete,
	ebiten.KeyInsert:       core.KeyInsert,
	ebiten.KeyHome:         core.KeyHome,
	ebiten.KeyEnd:          core.KeyEnd,
	ebiten.KeyPageUp:       core.KeyPageUp,
	ebiten.KeyPageDown:     core.KeyPageDown,
	ebiten.KeyArrowUp:      core.KeyUp,
	ebiten.KeyArrowDown:    core.KeyDown,
	ebiten.KeyArrowLeft:    core.KeyLeft,
	ebiten.KeyArrowRight:   core.KeyRight,
	ebiten.KeyF1:           core.KeyF1,
	ebiten.KeyF2:           core.KeyF2,
	ebiten.KeyF3:           core.KeyF3,
	ebiten.KeyF4:           core.KeyF4,
	ebiten.KeyF5:           core.KeyF5,
	ebiten.KeyF6:           core.KeyF6,
	ebiten.KeyF7:           core.KeyF7,
	ebiten.KeyF8:           core.KeyF8,
	ebiten.KeyF9:           core.KeyF9,
	ebiten.KeyF10:          core.KeyF10,
	ebiten.KeyF11:          core.KeyF11,
	ebiten.KeyF12:          core.KeyF12,
	ebiten.KeyShiftLeft:    core.KeyShiftLeft,
	ebiten.KeyShiftRight:   core.KeyShiftRight,
	ebiten.KeyControlLeft:  core.KeyControlLeft,
	ebiten.KeyControlRight: core.KeyControlRight,
	ebiten.KeyAltLeft:      core.KeyAltLeft,
	ebiten.KeyAltRight:     core.KeyAltRight,
	ebiten.KeyMinus:        core.KeyMinus,
	ebiten.KeyEqual:        core.KeyEquals,
	ebiten.KeyComma:        core.KeyComma,
	ebiten.KeyPeriod:       core.KeyPeriod,
	ebiten.KeySlash:        core.KeySlash,
	ebiten.KeySemicolon:    core.KeySemicolon,
	ebiten.KeyQuote:        core.KeyApostrophe,
	ebiten.KeyBracketLeft:  core.KeyBracketLeft,
	ebiten.KeyBracketRight: core.KeyBracketRight,
	ebiten.KeyBackslash:    core.KeyBackslash,
	ebiten.KeyBackquote:    core.KeyGrave,
}

func translateKey(k ebiten.Key) core.Key {
	return keyTable[k]
}
