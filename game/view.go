package game

import "strconv"

// CellState is the visual state of one board number
type CellState uint8

const (
	CellUncalled CellState = iota
	CellCalled
	CellLatest
)

// String returns a short state name for logs and tests
func (c CellState) String() string {
	switch c {
	case CellCalled:
		return "called"
	case CellLatest:
		return "latest"
	default:
		return "uncalled"
	}
}

// Placeholder is shown in place of the current number before the first call
const Placeholder = "--"

// Cell is one board number with its derived state
type Cell struct {
	Number int
	State  CellState
}

// Row is one lettered board row
type Row struct {
	Range LetterRange
	Cells [RangeSize]Cell
}

// View is the render-ready snapshot derived from history
type View struct {
	Rows    [LetterCount]Row
	Called  Set
	Last    int
	HasLast bool
	Count   int
}

// StateOf derives a cell state from the called set and the last call
func StateOf(n int, called Set, last int, hasLast bool) CellState {
	switch {
	case hasLast && n == last:
		return CellLatest
	case called.Has(n):
		return CellCalled
	default:
		return CellUncalled
	}
}

// View derives the full board snapshot
func (s *Store) View() View {
	called := s.Called()
	last, hasLast := s.Last()

	v := View{
		Called:  called,
		Last:    last,
		HasLast: hasLast,
		Count:   s.Count(),
	}
	for i, r := range Ranges {
		v.Rows[i].Range = r
		for j := 0; j < RangeSize; j++ {
			n := r.Min + j
			v.Rows[i].Cells[j] = Cell{Number: n, State: StateOf(n, called, last, hasLast)}
		}
	}
	return v
}

// Cell returns the state of a single number
func (v View) Cell(n int) CellState {
	return StateOf(n, v.Called, v.Last, v.HasLast)
}

// Current returns the current-number readout text
func (v View) Current() string {
	if !v.HasLast {
		return Placeholder
	}
	return strconv.Itoa(v.Last)
}

// Counter returns the running "called / total" text
func (v View) Counter() string {
	return strconv.Itoa(v.Count) + " / " + strconv.Itoa(MaxNumber)
}
