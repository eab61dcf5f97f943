package entry

import (
	"testing"

	"github.com/lixenwraith/bingo-caller/game"
)

func typeText(f *Field, s string) {
	for _, r := range s {
		f.Insert(r)
	}
}

// TestSubmitRejectsInvalid verifies malformed and out-of-range input is discarded silently
func TestSubmitRejectsInvalid(t *testing.T) {
	for _, input := range []string{"0", "76", "abc", "", "7.5", "-3", "4 2"} {
		t.Run(input, func(t *testing.T) {
			store := game.NewStore()
			f := NewField()
			typeText(f, input)

			_, outcome := f.Submit(store)

			if store.Count() != 0 {
				t.Errorf("Expected no state change, got history %v", store.History())
			}
			if !f.Empty() {
				t.Errorf("Expected cleared field, got %q", f.Value())
			}
			if outcome == OutcomeCalled || outcome == OutcomeDuplicate {
				t.Errorf("Expected rejection, got %s", outcome)
			}
		})
	}
}

// TestSubmitCallsNewNumber verifies a valid entry becomes the latest call
func TestSubmitCallsNewNumber(t *testing.T) {
	store := game.NewStore()
	f := NewField()
	typeText(f, "42")

	n, outcome := f.Submit(store)
	if outcome != OutcomeCalled || n != 42 {
		t.Fatalf("Expected 42 called, got %d (%s)", n, outcome)
	}
	if !store.Called().Has(42) {
		t.Error("Expected 42 in called set")
	}
	if last, ok := store.Last(); !ok || last != 42 {
		t.Errorf("Expected last call 42, got %d", last)
	}
	if !f.Empty() {
		t.Errorf("Expected cleared field, got %q", f.Value())
	}
}

// TestSubmitDuplicate verifies re-entering a called number neither re-appends nor errors
func TestSubmitDuplicate(t *testing.T) {
	store := game.NewStore()
	store.Call(42)
	store.Call(7)

	f := NewField()
	typeText(f, "42")
	_, outcome := f.Submit(store)

	if outcome != OutcomeDuplicate {
		t.Errorf("Expected duplicate outcome, got %s", outcome)
	}
	h := store.History()
	if len(h) != 2 || h[0] != 42 || h[1] != 7 {
		t.Errorf("Expected history [42 7], got %v", h)
	}
	if !f.Empty() {
		t.Errorf("Expected cleared field, got %q", f.Value())
	}
}

// TestTypeDigitTakesFocus verifies focus follows a digit keypress
func TestTypeDigitTakesFocus(t *testing.T) {
	f := NewField()
	if f.Focused() {
		t.Fatal("Expected new field unfocused")
	}

	if f.TypeDigit('x') {
		t.Error("Expected non-digit to be ignored")
	}
	if f.Focused() {
		t.Error("Expected non-digit to leave focus alone")
	}

	if !f.TypeDigit('7') {
		t.Fatal("Expected digit to be accepted")
	}
	if !f.Focused() {
		t.Error("Expected digit to move focus to the field")
	}
	f.TypeDigit('3')
	if f.Value() != "73" {
		t.Errorf("Expected %q, got %q", "73", f.Value())
	}
}

// TestEditing verifies caret movement and deletion
func TestEditing(t *testing.T) {
	f := NewField()
	typeText(f, "125")
	f.Left()
	f.DeleteBackward() // removes '2'
	if f.Value() != "15" {
		t.Errorf("Expected %q, got %q", "15", f.Value())
	}
	f.Home()
	f.Insert('6')
	if f.Value() != "615" || f.Cursor() != 1 {
		t.Errorf("Expected %q with caret 1, got %q caret %d", "615", f.Value(), f.Cursor())
	}
	f.DeleteForward()
	f.End()
	if f.Value() != "65" || f.Cursor() != 2 {
		t.Errorf("Expected %q with caret 2, got %q caret %d", "65", f.Value(), f.Cursor())
	}
}

// TestInsertCapsLength verifies the field stops growing at MaxLen
func TestInsertCapsLength(t *testing.T) {
	f := NewField()
	for i := 0; i < MaxLen+3; i++ {
		f.Insert('1')
	}
	if len([]rune(f.Value())) != MaxLen {
		t.Errorf("Expected %d runes, got %d", MaxLen, len([]rune(f.Value())))
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"75", 75, true},
		{" 30 ", 30, true},
		{"075", 75, true},
		{"76", 0, false},
		{"7.5", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Parse(%q): expected (%d, %v), got (%d, %v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}
