package palette

import (
	"cmp"
	"iter"

	"github.com/gogpu/gg-palette/internal/sorted"
)

// GradientStop is one (position, color) keyframe of a linear gradient.
type GradientStop struct {
	// Distance is the stop position in [0, 1] as 16-bit fixed point
	// (scaled by 65535).
	Distance uint16
	// ID is the insertion sequence number within the gradient.
	// It breaks ties between stops at the same distance.
	ID uint16
	// Color is the color at this position.
	Color ColorU
}

// CompareStops orders stops by distance, then by insertion ID.
func CompareStops(a, b GradientStop) int {
	if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortedGradientStops is a sequence of gradient stops that is always in
// ascending (Distance, ID) order.
//
// The zero value is an empty, ready-to-use sequence.
type SortedGradientStops struct {
	vec *sorted.Vector[GradientStop]
}

func (s *SortedGradientStops) lazyInit() {
	if s.vec == nil {
		s.vec = sorted.New(CompareStops)
	}
}

// Push inserts stop in order. O(n) worst case, O(1) when stops arrive
// in ascending order.
func (s *SortedGradientStops) Push(stop GradientStop) {
	s.lazyInit()
	s.vec.Push(stop)
}

// Peek returns the last (largest) stop.
func (s *SortedGradientStops) Peek() (GradientStop, bool) {
	if s.vec == nil {
		return GradientStop{}, false
	}
	return s.vec.Peek()
}

// Pop removes and returns the last (largest) stop.
func (s *SortedGradientStops) Pop() (GradientStop, bool) {
	if s.vec == nil {
		return GradientStop{}, false
	}
	return s.vec.Pop()
}

// At returns the i-th stop in ascending order. It panics if i is out of range.
func (s *SortedGradientStops) At(i int) GradientStop {
	s.lazyInit()
	return s.vec.At(i)
}

// Len returns the number of stops.
func (s *SortedGradientStops) Len() int {
	if s.vec == nil {
		return 0
	}
	return s.vec.Len()
}

// IsEmpty reports whether there are no stops.
func (s *SortedGradientStops) IsEmpty() bool {
	return s.Len() == 0
}

// Clear removes all stops.
func (s *SortedGradientStops) Clear() {
	if s.vec != nil {
		s.vec.Clear()
	}
}

// All iterates over the stops in ascending order.
func (s *SortedGradientStops) All() iter.Seq2[int, GradientStop] {
	s.lazyInit()
	return s.vec.All()
}

func (s *SortedGradientStops) clone() SortedGradientStops {
	if s.vec == nil {
		return SortedGradientStops{}
	}
	return SortedGradientStops{vec: s.vec.Clone()}
}

// StopsView is read-only access to the stops of a LinearGradient.
// Stops can only be added through AddColorStop, which assigns their IDs.
type StopsView struct {
	s *SortedGradientStops
}

// Len returns the number of stops.
func (v StopsView) Len() int {
	if v.s == nil {
		return 0
	}
	return v.s.Len()
}

// IsEmpty reports whether there are no stops.
func (v StopsView) IsEmpty() bool {
	return v.Len() == 0
}

// At returns the i-th stop in ascending order. It panics if i is out of range.
func (v StopsView) At(i int) GradientStop {
	return v.s.At(i)
}

// Peek returns the last (largest) stop.
func (v StopsView) Peek() (GradientStop, bool) {
	if v.s == nil {
		return GradientStop{}, false
	}
	return v.s.Peek()
}

// All iterates over the stops in ascending order.
func (v StopsView) All() iter.Seq2[int, GradientStop] {
	if v.s == nil {
		return func(func(int, GradientStop) bool) {}
	}
	return v.s.All()
}
