package sorted

import (
	"cmp"
	"slices"
	"testing"
	"testing/quick"
)

func TestVectorPushKeepsOrder(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   []int
	}{
		{"empty", nil, nil},
		{"single", []int{7}, []int{7}},
		{"ascending", []int{1, 2, 3, 4}, []int{1, 2, 3, 4}},
		{"descending", []int{4, 3, 2, 1}, []int{1, 2, 3, 4}},
		{"mixed", []int{5, 1, 4, 2, 3}, []int{1, 2, 3, 4, 5}},
		{"duplicates", []int{2, 1, 2, 1, 0}, []int{0, 1, 1, 2, 2}},
		{"negative", []int{-1, 10, -20, 0}, []int{-20, -1, 0, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(cmp.Compare[int])
			for _, value := range tt.values {
				v.Push(value)
			}
			if v.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", v.Len(), len(tt.want))
			}
			for i, want := range tt.want {
				if got := v.At(i); got != want {
					t.Errorf("At(%d) = %d, want %d", i, got, want)
				}
			}
		})
	}
}

// Popping everything must yield the reverse of the ascending sort of the
// pushed values, regardless of push order.
func TestVectorSortedProperty(t *testing.T) {
	prop := func(values []int32) bool {
		v := New(cmp.Compare[int32])
		for _, value := range values {
			v.Push(value)
		}

		want := slices.Clone(values)
		slices.Sort(want)

		got := make([]int32, 0, len(values))
		for !v.IsEmpty() {
			value, ok := v.Pop()
			if !ok {
				return false
			}
			got = append(got, value)
		}
		slices.Reverse(got)
		return slices.Equal(got, want)
	}

	if err := quick.Check(prop, nil); err != nil {
		t.Error(err)
	}
}

type keyed struct {
	key int
	seq int
}

func TestVectorEqualKeysKeepPushOrder(t *testing.T) {
	v := New(func(a, b keyed) int { return cmp.Compare(a.key, b.key) })
	v.Push(keyed{key: 1, seq: 0})
	v.Push(keyed{key: 0, seq: 1})
	v.Push(keyed{key: 1, seq: 2})
	v.Push(keyed{key: 1, seq: 3})

	wantSeq := []int{1, 0, 2, 3}
	for i, want := range wantSeq {
		if got := v.At(i).seq; got != want {
			t.Errorf("At(%d).seq = %d, want %d", i, got, want)
		}
	}
}

func TestVectorPeekPopEmpty(t *testing.T) {
	v := New(cmp.Compare[int])
	if _, ok := v.Peek(); ok {
		t.Error("Peek() on empty vector ok = true, want false")
	}
	if _, ok := v.Pop(); ok {
		t.Error("Pop() on empty vector ok = true, want false")
	}
	if !v.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestVectorPeekReturnsMax(t *testing.T) {
	v := New(cmp.Compare[int])
	for _, value := range []int{3, 9, 1} {
		v.Push(value)
	}
	got, ok := v.Peek()
	if !ok || got != 9 {
		t.Errorf("Peek() = %d, %v; want 9, true", got, ok)
	}
	if v.Len() != 3 {
		t.Errorf("Peek() changed Len() to %d, want 3", v.Len())
	}
}

func TestVectorClear(t *testing.T) {
	v := New(cmp.Compare[int])
	v.Push(1)
	v.Push(2)
	v.Clear()
	if v.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", v.Len())
	}
	v.Push(5)
	if got := v.At(0); got != 5 {
		t.Errorf("At(0) after Clear and Push = %d, want 5", got)
	}
}

func TestVectorAllAndClone(t *testing.T) {
	v := New(cmp.Compare[int])
	for _, value := range []int{2, 0, 1} {
		v.Push(value)
	}

	c := v.Clone()
	c.Push(-1)

	var seen []int
	for i, value := range v.All() {
		if i != len(seen) {
			t.Errorf("All() index = %d, want %d", i, len(seen))
		}
		seen = append(seen, value)
	}
	if !slices.Equal(seen, []int{0, 1, 2}) {
		t.Errorf("All() = %v, want [0 1 2]", seen)
	}
	if c.Len() != 4 || v.Len() != 3 {
		t.Errorf("Clone() not independent: clone Len %d, original Len %d", c.Len(), v.Len())
	}
}
