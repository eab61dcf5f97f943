package entry

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/bingo-caller/game"
)

// MaxLen caps the number of runes the field holds
const MaxLen = 8

// Caller is the slice of the game store the field submits into
type Caller interface {
	IsCalled(n int) bool
	Call(n int) bool
}

// Outcome classifies a submit
type Outcome uint8

const (
	OutcomeEmpty     Outcome = iota // nothing typed
	OutcomeRejected                 // not an integer or out of range
	OutcomeDuplicate                // valid but already called
	OutcomeCalled                   // appended to history
)

// String returns the outcome name for logging
func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeCalled:
		return "called"
	default:
		return "empty"
	}
}

// Parse converts field text to a callable number
// Accepts only a base-10 integer in [game.MinNumber, game.MaxNumber]
func Parse(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !game.Valid(n) {
		return 0, false
	}
	return n, true
}

// IsDigit reports whether r is a single decimal digit key
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Field is the quick-add text field with its focus state
type Field struct {
	text    []rune
	cursor  int
	focused bool
}

// NewField creates an empty unfocused field
func NewField() *Field {
	return &Field{}
}

// --- Value access ---

// Value returns the current text
func (f *Field) Value() string {
	return string(f.text)
}

// Cursor returns the rune index the caret sits before
func (f *Field) Cursor() int {
	return f.cursor
}

// Empty reports whether nothing is typed; submit is disabled while empty
func (f *Field) Empty() bool {
	return len(f.text) == 0
}

// Clear empties the field
func (f *Field) Clear() {
	f.text = f.text[:0]
	f.cursor = 0
}

// --- Focus ---

// Focused reports whether key input goes to the field
func (f *Field) Focused() bool {
	return f.focused
}

// Focus directs key input to the field
func (f *Field) Focus() {
	f.focused = true
}

// Blur releases key focus
func (f *Field) Blur() {
	f.focused = false
}

// --- Editing ---

// Insert adds r at the caret, ignored once the field is full
func (f *Field) Insert(r rune) bool {
	if len(f.text) >= MaxLen {
		return false
	}
	f.text = append(f.text, 0)
	copy(f.text[f.cursor+1:], f.text[f.cursor:])
	f.text[f.cursor] = r
	f.cursor++
	return true
}

// DeleteBackward removes the rune before the caret
func (f *Field) DeleteBackward() bool {
	if f.cursor == 0 {
		return false
	}
	f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
	f.cursor--
	return true
}

// DeleteForward removes the rune at the caret
func (f *Field) DeleteForward() bool {
	if f.cursor >= len(f.text) {
		return false
	}
	f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
	return true
}

// Left moves the caret one rune left
func (f *Field) Left() {
	if f.cursor > 0 {
		f.cursor--
	}
}

// Right moves the caret one rune right
func (f *Field) Right() {
	if f.cursor < len(f.text) {
		f.cursor++
	}
}

// Home moves the caret to the start
func (f *Field) Home() {
	f.cursor = 0
}

// End moves the caret past the last rune
func (f *Field) End() {
	f.cursor = len(f.text)
}

// TypeDigit routes a digit keypress typed anywhere in the view
// An unfocused field takes focus first so fast entry needs no refocusing
// Returns false for non-digit runes
func (f *Field) TypeDigit(r rune) bool {
	if !IsDigit(r) {
		return false
	}
	if !f.focused {
		f.Focus()
	}
	f.Insert(r)
	return true
}

// Submit parses the field, calls the number when valid and new, and always clears
// Rejection is silent: the cleared field is the only feedback
func (f *Field) Submit(c Caller) (int, Outcome) {
	if f.Empty() {
		return 0, OutcomeEmpty
	}
	text := f.Value()
	f.Clear()

	n, ok := Parse(text)
	if !ok {
		return 0, OutcomeRejected
	}
	if c.IsCalled(n) {
		return n, OutcomeDuplicate
	}
	c.Call(n)
	return n, OutcomeCalled
}
