package game

// ResetPrompt is the question put to the operator before clearing the board
const ResetPrompt = "Are you sure you want to reset the entire game?"

// Confirmer asks the operator a yes/no question
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(message string) bool

// Confirm calls f(message)
func (f ConfirmFunc) Confirm(message string) bool {
	return f(message)
}

// Store owns the call history, the only writable game state
// Called set and last call are derived from history on every read
// Not safe for concurrent use; owned by the event loop
type Store struct {
	history []int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{history: make([]int, 0, MaxNumber)}
}

// Call appends n if it is valid and not already called
// Returns true if history changed
func (s *Store) Call(n int) bool {
	if !Valid(n) || s.IsCalled(n) {
		return false
	}
	s.history = append(s.history, n)
	return true
}

// Uncall removes n wherever it occurs in history
// Returns true if history changed
func (s *Store) Uncall(n int) bool {
	kept := s.history[:0]
	removed := false
	for _, v := range s.history {
		if v == n {
			removed = true
			continue
		}
		kept = append(kept, v)
	}
	s.history = kept
	return removed
}

// Toggle uncalls n if called, otherwise calls it
// Returns true if history changed
func (s *Store) Toggle(n int) bool {
	if s.IsCalled(n) {
		return s.Uncall(n)
	}
	return s.Call(n)
}

// Undo removes the most recently appended number
// Returns the removed number and false on empty history
func (s *Store) Undo() (int, bool) {
	if len(s.history) == 0 {
		return 0, false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	return last, true
}

// Reset clears history after the confirmer accepts ResetPrompt
// A nil confirmer declines
func (s *Store) Reset(confirm Confirmer) bool {
	if confirm == nil || !confirm.Confirm(ResetPrompt) {
		return false
	}
	s.Clear()
	return true
}

// Clear empties history unconditionally
// Callers own the confirmation step
func (s *Store) Clear() {
	s.history = s.history[:0]
}

// History returns a copy of the call order
func (s *Store) History() []int {
	out := make([]int, len(s.history))
	copy(out, s.history)
	return out
}

// Called builds the called set from history
func (s *Store) Called() Set {
	var set Set
	for _, n := range s.history {
		set.Add(n)
	}
	return set
}

// IsCalled reports whether n is in history
func (s *Store) IsCalled(n int) bool {
	for _, v := range s.history {
		if v == n {
			return true
		}
	}
	return false
}

// Last returns the most recent call, false when history is empty
func (s *Store) Last() (int, bool) {
	if len(s.history) == 0 {
		return 0, false
	}
	return s.history[len(s.history)-1], true
}

// Count returns the number of live calls
func (s *Store) Count() int {
	return len(s.history)
}
