package reakt

import (
	"math"
	"reflect"
)

// UseEffect declares a dependency-gated side effect.
//
// fn runs synchronously, inline with the render pass, the first time the
// slot is visited and on every later pass whose deps differ from the deps
// of the previous pass: a different length, or any position that is not
// the same value. Values compare by identity, never deeply: comparable
// values with ==, maps, slices, channels and funcs by reference. The
// current deps are stored whether or not fn ran.
//
// fn must not set state; the pass fails with E004 if it does.
func UseEffect(fn func(), deps ...any) {
	r := mustCurrent("UseEffect")
	idx, s := r.useSlot(hookEffect)

	changed := true
	if s.set {
		prev, ok := s.value.([]any)
		changed = !ok || depsChanged(prev, deps)
	}

	if changed {
		r.stats.EffectRuns++
		if r.metrics != nil {
			r.metrics.effectRuns.Inc()
		}
		fn()
	}

	stored := make([]any, len(deps))
	copy(stored, deps)
	r.writeSlot(idx, stored)
}

// depsChanged compares two dependency lists position by position.
func depsChanged(prev, next []any) bool {
	if len(prev) != len(next) {
		return true
	}
	for i := range next {
		if !sameValue(prev[i], next[i]) {
			return true
		}
	}
	return false
}

// sameValue is an identity comparison in the spirit of Object.is: NaN is
// the same as NaN, +0 and -0 differ, reference types compare by pointer.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Float32, reflect.Float64:
		x, y := va.Float(), vb.Float()
		if math.IsNaN(x) && math.IsNaN(y) {
			return true
		}
		return x == y && math.Signbit(x) == math.Signbit(y)
	case reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	if va.Comparable() {
		return a == b
	}
	return false
}
