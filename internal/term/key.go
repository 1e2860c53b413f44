package term

import (
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// KeyType identifies a decoded key press.
type KeyType int

const (
	KeyRune KeyType = iota
	KeyEnter
	KeyBackspace
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCtrlA
	KeyCtrlC
	KeyCtrlE
	KeyCtrlU
	KeyCtrlW
)

// Key is a single key press. Rune is only meaningful for KeyRune. The
// decoder reports presses only; release and repeat kinds never surface here.
type Key struct {
	Type KeyType
	Rune rune
}

// String returns a readable name for trace logging.
func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyEsc:
		return "esc"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyPageUp:
		return "pgup"
	case KeyPageDown:
		return "pgdown"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyCtrlA:
		return "ctrl+a"
	case KeyCtrlC:
		return "ctrl+c"
	case KeyCtrlE:
		return "ctrl+e"
	case KeyCtrlU:
		return "ctrl+u"
	case KeyCtrlW:
		return "ctrl+w"
	default:
		return "unknown"
	}
}

// DecodeKeys translates a chunk of raw terminal input into key presses.
// Unrecognised escape sequences and control bytes are dropped.
func DecodeKeys(data []byte) []Key {
	keys := make([]Key, 0, 4)
	for len(data) > 0 {
		if data[0] == 0x1b {
			if len(data) == 1 {
				keys = append(keys, Key{Type: KeyEsc})
				break
			}
			seq, _, n, _ := ansi.DecodeSequence(data, 0, nil)
			if n <= 1 {
				keys = append(keys, Key{Type: KeyEsc})
				data = data[1:]
				continue
			}
			if key, ok := mapSequence(string(seq)); ok {
				keys = append(keys, key)
			}
			data = data[n:]
			continue
		}
		if data[0] < 0x20 || data[0] == 0x7f {
			if key, ok := mapControl(data[0]); ok {
				keys = append(keys, key)
			}
			data = data[1:]
			continue
		}
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r == utf8.RuneError && size == 1 {
			continue
		}
		keys = append(keys, Key{Type: KeyRune, Rune: r})
	}
	return keys
}

func mapSequence(seq string) (Key, bool) {
	switch seq {
	case "\x1b[A", "\x1bOA":
		return Key{Type: KeyUp}, true
	case "\x1b[B", "\x1bOB":
		return Key{Type: KeyDown}, true
	case "\x1b[C", "\x1bOC":
		return Key{Type: KeyRight}, true
	case "\x1b[D", "\x1bOD":
		return Key{Type: KeyLeft}, true
	case "\x1b[H", "\x1bOH", "\x1b[1~", "\x1b[7~":
		return Key{Type: KeyHome}, true
	case "\x1b[F", "\x1bOF", "\x1b[4~", "\x1b[8~":
		return Key{Type: KeyEnd}, true
	case "\x1b[5~":
		return Key{Type: KeyPageUp}, true
	case "\x1b[6~":
		return Key{Type: KeyPageDown}, true
	}
	return Key{}, false
}

func mapControl(b byte) (Key, bool) {
	switch b {
	case 0x01:
		return Key{Type: KeyCtrlA}, true
	case 0x03:
		return Key{Type: KeyCtrlC}, true
	case 0x05:
		return Key{Type: KeyCtrlE}, true
	case 0x0d, 0x0a:
		return Key{Type: KeyEnter}, true
	case 0x15:
		return Key{Type: KeyCtrlU}, true
	case 0x17:
		return Key{Type: KeyCtrlW}, true
	case 0x7f, 0x08:
		return Key{Type: KeyBackspace}, true
	}
	return Key{}, false
}
