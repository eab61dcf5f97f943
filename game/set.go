package game

import "math/bits"

// Set is a membership bitmap over [MinNumber, MaxNumber]
// Zero value is the empty set
type Set struct {
	words [2]uint64
}

// Add marks n as present, out-of-range values are ignored
func (s *Set) Add(n int) {
	if !Valid(n) {
		return
	}
	s.words[n/64] |= 1 << (n % 64)
}

// Has reports membership of n
func (s Set) Has(n int) bool {
	if !Valid(n) {
		return false
	}
	return s.words[n/64]&(1<<(n%64)) != 0
}

// Len returns the member count
func (s Set) Len() int {
	return bits.OnesCount64(s.words[0]) + bits.OnesCount64(s.words[1])
}

// Numbers returns members in ascending order
func (s Set) Numbers() []int {
	nums := make([]int, 0, s.Len())
	for n := MinNumber; n <= MaxNumber; n++ {
		if s.Has(n) {
			nums = append(nums, n)
		}
	}
	return nums
}
