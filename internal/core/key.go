package core

import (
	"strconv"
	"strings"
)

// Key identifies a keyboard key independently of any windowing library.
// Backends translate their native key codes into Key; codes without a
// mapping become KeyUnknown and are dropped by the engine.
type Key uint16

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeySpace
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight

	KeyMinus
	KeyEquals
	KeyComma
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyApostrophe
	KeyBracketLeft
	KeyBracketRight
	KeyBackslash
	KeyGrave

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:      "Unknown",
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyEscape:       "Escape",
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyDelete:       "Delete",
	KeyInsert:       "Insert",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyShiftLeft:    "ShiftLeft",
	KeyShiftRight:   "ShiftRight",
	KeyControlLeft:  "ControlLeft",
	KeyControlRight: "ControlRight",
	KeyAltLeft:      "AltLeft",
	KeyAltRight:     "AltRight",
	KeyMinus:        "Minus",
	KeyEquals:       "Equals",
	KeyComma:        "Comma",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeySemicolon:    "Semicolon",
	KeyApostrophe:   "Apostrophe",
	KeyBracketLeft:  "BracketLeft",
	KeyBracketRight: "BracketRight",
	KeyBackslash:    "Backslash",
	KeyGrave:        "Grave",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('A' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + int(k-Key0)))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
}

// String returns the key name, e.g. "A", "Space", "F12".
func (k Key) String() string {
	if k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// ParseKey looks a key up by name, case-insensitively.
// Returns KeyUnknown and false for unrecognized names.
func ParseKey(name string) (Key, bool) {
	for k := KeyA; k < keyCount; k++ {
		if strings.EqualFold(keyNames[k], name) {
			return k, true
		}
	}
	return KeyUnknown, false
}

// KeyForRune maps a printable ASCII rune to its key, ignoring case.
func KeyForRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}
	switch r {
	case ' ':
		return KeySpace
	case '-':
		return KeyMinus
	case '=':
		return KeyEquals
	case ',':
		return KeyComma
	case '.':
		return KeyPeriod
	case '/':
		return KeySlash
	case ';':
		return KeySemicolon
	case '\'':
		return KeyApostrophe
	case '[':
		return KeyBracketLeft
	case ']':
		return KeyBracketRight
	case '\\':
		return KeyBackslash
	case '`':
		return KeyGrave
	}
	return KeyUnknown
}
