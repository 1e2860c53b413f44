// Package state holds the pure view state mutated by the controller: the
// filter editor, the service list, and the details pane. Nothing here talks
// to the terminal; the controller renders from these values after every
// event.
package state

import (
	"strings"
	"unicode"
)

// FilterMode is the editor's input mode.
type FilterMode int

const (
	FilterNormal FilterMode = iota
	FilterEditing
)

// Filter is the text editor producing the list predicate. The cursor is a
// rune offset, clamped to [0, rune length]; edits never split an encoded
// character.
type Filter struct {
	mode   FilterMode
	text   string
	cursor int
}

// Mode returns the current input mode.
func (f *Filter) Mode() FilterMode { return f.mode }

// Editing reports whether the editor currently owns character input. While
// editing, list navigation keys must not be interpreted.
func (f *Filter) Editing() bool { return f.mode == FilterEditing }

// Text returns the in-progress filter text.
func (f *Filter) Text() string { return f.text }

// CursorPos returns the rune offset of the cursor, clamped to the text.
func (f *Filter) CursorPos() int {
	runes := []rune(f.text)
	if f.cursor < 0 {
		return 0
	}
	if f.cursor > len(runes) {
		return len(runes)
	}
	return f.cursor
}

// EnterEditing switches to Editing mode.
func (f *Filter) EnterEditing() {
	f.mode = FilterEditing
	f.cursor = len([]rune(f.text))
}

// Submit leaves Editing mode and returns the text to commit as the active
// predicate.
func (f *Filter) Submit() string {
	f.mode = FilterNormal
	return f.text
}

// Cancel leaves Editing mode without committing; the in-progress text is
// discarded in favour of the supplied committed predicate.
func (f *Filter) Cancel(committed string) {
	f.mode = FilterNormal
	f.text = committed
	f.cursor = len([]rune(committed))
}

// Clear wipes the text. Returns false when there was nothing to clear.
func (f *Filter) Clear() bool {
	if f.text == "" && f.cursor == 0 {
		return false
	}
	f.text = ""
	f.cursor = 0
	return true
}

// InsertRune inserts a printable rune at the cursor and advances it by one.
func (f *Filter) InsertRune(r rune) bool {
	if unicode.IsControl(r) {
		return false
	}
	runes := []rune(f.text)
	pos := f.CursorPos()
	updated := make([]rune, 0, len(runes)+1)
	updated = append(updated, runes[:pos]...)
	updated = append(updated, r)
	updated = append(updated, runes[pos:]...)
	f.text = string(updated)
	f.cursor = pos + 1
	return true
}

// DeleteRuneBackward removes the rune left of the cursor. A cursor at
// position 0 makes this a no-op.
func (f *Filter) DeleteRuneBackward() bool {
	runes := []rune(f.text)
	pos := f.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	f.text = string(append(runes[:pos-1], runes[pos:]...))
	f.cursor = pos - 1
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (f *Filter) DeleteWordBackward() bool {
	runes := []rune(f.text)
	pos := f.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	f.text = string(append(runes[:i], runes[pos:]...))
	f.cursor = i
	return true
}

// MoveCursorLeft moves the cursor one rune backward.
func (f *Filter) MoveCursorLeft() bool {
	pos := f.CursorPos()
	if pos == 0 {
		return false
	}
	f.cursor = pos - 1
	return true
}

// MoveCursorRight moves the cursor one rune forward.
func (f *Filter) MoveCursorRight() bool {
	runes := []rune(f.text)
	pos := f.CursorPos()
	if pos >= len(runes) {
		return false
	}
	f.cursor = pos + 1
	return true
}

// MoveCursorStart moves the cursor to the beginning of the text.
func (f *Filter) MoveCursorStart() bool {
	if f.CursorPos() == 0 {
		return false
	}
	f.cursor = 0
	return true
}

// MoveCursorEnd moves the cursor past the last rune.
func (f *Filter) MoveCursorEnd() bool {
	end := len([]rune(f.text))
	if f.CursorPos() == end {
		return false
	}
	f.cursor = end
	return true
}

// MatchesPredicate reports whether the service name or description contains
// the predicate, case-insensitively. The predicate is taken verbatim, spaces
// included; the empty predicate matches everything.
func MatchesPredicate(name, description, predicate string) bool {
	if predicate == "" {
		return true
	}
	lower := strings.ToLower(predicate)
	return strings.Contains(strings.ToLower(name), lower) ||
		strings.Contains(strings.ToLower(description), lower)
}
