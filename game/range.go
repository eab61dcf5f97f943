package game

import "strconv"

// Letter identifies one of the five board rows
type Letter uint8

const (
	LetterB Letter = iota
	LetterI
	LetterN
	LetterG
	LetterO
	letterCount
)

// Board geometry
const (
	MinNumber   = 1
	MaxNumber   = 75
	RangeSize   = 15
	LetterCount = int(letterCount)
)

var letterLabels = [LetterCount]rune{'B', 'I', 'N', 'G', 'O'}

// Rune returns the display label of the letter
func (l Letter) Rune() rune {
	if l >= letterCount {
		return '?'
	}
	return letterLabels[l]
}

// String returns the display label of the letter
func (l Letter) String() string {
	return string(l.Rune())
}

// LetterRange is a contiguous block of numbers headed by a letter
type LetterRange struct {
	Letter Letter
	Min    int
	Max    int
}

// Ranges partitions [MinNumber, MaxNumber] into the five lettered rows
var Ranges = [LetterCount]LetterRange{
	{Letter: LetterB, Min: 1, Max: 15},
	{Letter: LetterI, Min: 16, Max: 30},
	{Letter: LetterN, Min: 31, Max: 45},
	{Letter: LetterG, Min: 46, Max: 60},
	{Letter: LetterO, Min: 61, Max: 75},
}

// Contains reports whether n falls in the range
func (r LetterRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Numbers returns the range members in ascending order
func (r LetterRange) Numbers() []int {
	nums := make([]int, 0, r.Max-r.Min+1)
	for n := r.Min; n <= r.Max; n++ {
		nums = append(nums, n)
	}
	return nums
}

// Valid reports whether n is a callable number
func Valid(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}

// RangeOf returns the lettered range holding n
func RangeOf(n int) (LetterRange, bool) {
	if !Valid(n) {
		return LetterRange{}, false
	}
	return Ranges[(n-MinNumber)/RangeSize], true
}

// Label formats n with its letter, e.g. "N-42"
func Label(n int) string {
	r, ok := RangeOf(n)
	if !ok {
		return ""
	}
	return r.Letter.String() + "-" + strconv.Itoa(n)
}
