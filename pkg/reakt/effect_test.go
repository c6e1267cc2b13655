package reakt

import (
	"math"
	"testing"
)

func TestSameValue(t *testing.T) {
	m := map[string]int{"a": 1}
	s := []int{1, 2, 3}
	ch := make(chan int)
	fn := func() {}
	p := &struct{ n int }{1}
	negZero := math.Copysign(0, -1)

	type pair struct {
		a int
		b string
	}
	type withSlice struct{ s []int }

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil and zero", nil, 0, false},
		{"equal ints", 3, 3, true},
		{"different ints", 3, 4, false},
		{"int and int64", 3, int64(3), false},
		{"equal strings", "x", "x", true},
		{"bools", true, false, false},
		{"NaN", math.NaN(), math.NaN(), true},
		{"float32 NaN", float32(math.NaN()), float32(math.NaN()), true},
		{"signed zeros", 0.0, negZero, false},
		{"equal floats", 1.5, 1.5, true},
		{"same map", m, m, true},
		{"equal maps", map[string]int{"a": 1}, map[string]int{"a": 1}, false},
		{"same slice", s, s, true},
		{"subslice", s, s[:2], false},
		{"equal slices", []int{1}, []int{1}, false},
		{"same chan", ch, ch, true},
		{"same func", fn, fn, true},
		{"same pointer", p, p, true},
		{"equal pointees", p, &struct{ n int }{1}, false},
		{"equal structs", pair{1, "x"}, pair{1, "x"}, true},
		{"different structs", pair{1, "x"}, pair{2, "x"}, false},
		{"uncomparable struct", withSlice{s}, withSlice{s}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameValue(tt.a, tt.b); got != tt.want {
				t.Errorf("sameValue(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDepsChanged(t *testing.T) {
	tests := []struct {
		name       string
		prev, next []any
		want       bool
	}{
		{"both empty", nil, []any{}, false},
		{"identical", []any{1, "a"}, []any{1, "a"}, false},
		{"value changed", []any{1, "a"}, []any{1, "b"}, true},
		{"grew", []any{1}, []any{1, 2}, true},
		{"shrank", []any{1, 2}, []any{1}, true},
		{"reordered", []any{1, 2}, []any{2, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := depsChanged(tt.prev, tt.next); got != tt.want {
				t.Errorf("depsChanged(%v, %v) = %v, want %v", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}
