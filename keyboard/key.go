package keyboard

import "fmt"

// Key is the layout-independent identity of a physical key.
type Key int

const (
	KeyUndefined Key = iota
	KeyTab
	KeyEnter
	KeySpace
	KeyBackspace
	KeyPauseBreak
	KeyEscape
	KeyPageUp
	KeyPageDown
	KeyEnd
	KeyHome
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyPrintScreen
	KeyInsert
	KeyDelete
	KeyNumLock
	KeyScrollLock
	KeyLeftWindow
	KeyRightWindow
	KeyApplications
	KeyCapsLock
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
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
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyMultiply
	KeyAdd
	KeySeparator
	KeySubtract
	KeyDecimal
	KeyDivide
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
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyCedilla
	KeyPlus
	KeyComma
	KeyMinus
	KeyPeriod
	KeyColon
	KeyQuote
	KeyAcute
	KeyRightBracket
	KeyLeftBracket
	KeyTilde
	KeySlash
	KeyBackSlash
)

var keyNames = [...]string{
	KeyUndefined:    "KEY_UNDEFINED",
	KeyTab:          "KEY_TAB",
	KeyEnter:        "KEY_ENTER",
	KeySpace:        "KEY_SPACE",
	KeyBackspace:    "KEY_BACKSPACE",
	KeyPauseBreak:   "KEY_PAUSE_BREAK",
	KeyEscape:       "KEY_ESCAPE",
	KeyPageUp:       "KEY_PAGE_UP",
	KeyPageDown:     "KEY_PAGE_DOWN",
	KeyEnd:          "KEY_END",
	KeyHome:         "KEY_HOME",
	KeyLeft:         "KEY_LEFT",
	KeyUp:           "KEY_UP",
	KeyRight:        "KEY_RIGHT",
	KeyDown:         "KEY_DOWN",
	KeyPrintScreen:  "KEY_PRINT_SCREEN",
	KeyInsert:       "KEY_INSERT",
	KeyDelete:       "KEY_DELETE",
	KeyNumLock:      "KEY_NUMLOCK",
	KeyScrollLock:   "KEY_SCROLL_LOCK",
	KeyLeftWindow:   "KEY_LEFT_WINDOW",
	KeyRightWindow:  "KEY_RIGHT_WINDOW",
	KeyApplications: "KEY_APPLICATIONS",
	KeyCapsLock:     "KEY_CAPSLOCK",
	KeyLeftShift:    "KEY_LEFT_SHIFT",
	KeyRightShift:   "KEY_RIGHT_SHIFT",
	KeyLeftControl:  "KEY_LEFT_CONTROL",
	KeyRightControl: "KEY_RIGHT_CONTROL",
	KeyLeftAlt:      "KEY_LEFT_ALT",
	KeyRightAlt:     "KEY_RIGHT_ALT",
	Key0:            "KEY_0",
	Key1:            "KEY_1",
	Key2:            "KEY_2",
	Key3:            "KEY_3",
	Key4:            "KEY_4",
	Key5:            "KEY_5",
	Key6:            "KEY_6",
	Key7:            "KEY_7",
	Key8:            "KEY_8",
	Key9:            "KEY_9",
	KeyA:            "KEY_A",
	KeyB:            "KEY_B",
	KeyC:            "KEY_C",
	KeyD:            "KEY_D",
	KeyE:            "KEY_E",
	KeyF:            "KEY_F",
	KeyG:            "KEY_G",
	KeyH:            "KEY_H",
	KeyI:            "KEY_I",
	KeyJ:            "KEY_J",
	KeyK:            "KEY_K",
	KeyL:            "KEY_L",
	KeyM:            "KEY_M",
	KeyN:            "KEY_N",
	KeyO:            "KEY_O",
	KeyP:            "KEY_P",
	KeyQ:            "KEY_Q",
	KeyR:            "KEY_R",
	KeyS:            "KEY_S",
	KeyT:            "KEY_T",
	KeyU:            "KEY_U",
	KeyV:            "KEY_V",
	KeyW:            "KEY_W",
	KeyX:            "KEY_X",
	KeyY:            "KEY_Y",
	KeyZ:            "KEY_Z",
	KeyNumpad0:      "KEY_NUMPAD_0",
	KeyNumpad1:      "KEY_NUMPAD_1",
	KeyNumpad2:      "KEY_NUMPAD_2",
	KeyNumpad3:      "KEY_NUMPAD_3",
	KeyNumpad4:      "KEY_NUMPAD_4",
	KeyNumpad5:      "KEY_NUMPAD_5",
	KeyNumpad6:      "KEY_NUMPAD_6",
	KeyNumpad7:      "KEY_NUMPAD_7",
	KeyNumpad8:      "KEY_NUMPAD_8",
	KeyNumpad9:      "KEY_NUMPAD_9",
	KeyMultiply:     "KEY_MULTIPLY",
	KeyAdd:          "KEY_ADD",
	KeySeparator:    "KEY_SEPARATOR",
	KeySubtract:     "KEY_SUB",
	KeyDecimal:      "KEY_DECIMAL",
	KeyDivide:       "KEY_DIVIDE",
	KeyF1:           "KEY_F1",
	KeyF2:           "KEY_F2",
	KeyF3:           "KEY_F3",
	KeyF4:           "KEY_F4",
	KeyF5:           "KEY_F5",
	KeyF6:           "KEY_F6",
	KeyF7:           "KEY_F7",
	KeyF8:           "KEY_F8",
	KeyF9:           "KEY_F9",
	KeyF10:          "KEY_F10",
	KeyF11:          "KEY_F11",
	KeyF12:          "KEY_F12",
	KeyF13:          "KEY_F13",
	KeyF14:          "KEY_F14",
	KeyF15:          "KEY_F15",
	KeyF16:          "KEY_F16",
	KeyF17:          "KEY_F17",
	KeyF18:          "KEY_F18",
	KeyF19:          "KEY_F19",
	KeyF20:          "KEY_F20",
	KeyF21:          "KEY_F21",
	KeyF22:          "KEY_F22",
	KeyF23:          "KEY_F23",
	KeyF24:          "KEY_F24",
	KeyCedilla:      "KEY_CEDILLA",
	KeyPlus:         "KEY_PLUS",
	KeyComma:        "KEY_COMMA",
	KeyMinus:        "KEY_MINUS",
	KeyPeriod:       "KEY_PERIOD",
	KeyColon:        "KEY_COLON",
	KeyQuote:        "KEY_QUOTE",
	KeyAcute:        "KEY_ACUTE",
	KeyRightBracket: "KEY_RIGHT_BRACKET",
	KeyLeftBracket:  "KEY_LEFT_BRACKET",
	KeyTilde:        "KEY_TILDE",
	KeySlash:        "KEY_SLASH",
	KeyBackSlash:    "KEY_BACK_SLASH",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return fmt.Sprintf("KEY(%d)", int(k))
	}
	return keyNames[k]
}

// ParseKey is the inverse of Key.String.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return KeyUndefined, false
}
