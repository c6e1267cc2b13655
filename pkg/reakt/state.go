package reakt

import "fmt"

// UseState declares a persistent state slot.
//
// On the first visit of the slot, initial is stored. The returned value is
// the slot's current value; the returned setter stores a new value and
// synchronously re-renders from the remembered root and container. The
// setter captures the slot position, so it stays valid after the pass that
// created it, for example inside an event handler. Every call re-renders,
// even when next equals the current value.
func UseState[T any](initial T) (T, func(T)) {
	r := mustCurrent("UseState")
	idx, s := r.useSlot(hookState)

	if !s.set || (r.opts.falsyAsUnset && isZero(s.value)) {
		r.writeSlot(idx, initial)
		s = r.slots[idx]
	}

	value := slotValue[T](s, idx, "UseState")
	gen := r.generation
	setter := func(next T) {
		r.setSlot(gen, idx, next)
	}
	return value, setter
}

// UseReducer declares a state slot updated through a reducer.
// dispatch(action) stores reducer(current, action) and re-renders.
func UseReducer[S, A any](reducer func(S, A) S, initial S) (S, func(A)) {
	r := mustCurrent("UseReducer")
	idx, s := r.useSlot(hookReducer)

	if !s.set {
		r.writeSlot(idx, initial)
		s = r.slots[idx]
	}

	value := slotValue[S](s, idx, "UseReducer")
	gen := r.generation
	dispatch := func(action A) {
		if r.rendering {
			panic(newError("E004").WithDetailf("dispatch to reducer slot %d during render", idx))
		}
		if err := r.checkSetter(gen, idx); err != nil {
			r.reportError(err)
			return
		}
		current := slotValue[S](r.slots[idx], idx, "UseReducer")
		r.setSlot(gen, idx, reducer(current, action))
	}
	return value, dispatch
}

// slotValue asserts the slot contents to T. A nil interface value yields
// the zero T.
func slotValue[T any](s slot, idx int, hook string) T {
	if s.value == nil {
		var zero T
		return zero
	}
	v, ok := s.value.(T)
	if !ok {
		var zero T
		panic(newError("E003").WithDetailf("%s slot %d holds %T, want %T",
			hook, idx, s.value, any(zero)))
	}
	return v
}

// setSlot writes a state slot and re-renders. It is the body of every
// setter returned by UseState and UseReducer. A setter created before the
// last Reset reports E010 and changes nothing.
func (r *Runtime) setSlot(gen uint64, idx int, value any) {
	if r.rendering {
		panic(newError("E004").WithDetailf("setter for slot %d called during render", idx))
	}
	if err := r.checkSetter(gen, idx); err != nil {
		r.reportError(err)
		return
	}
	r.writeSlot(idx, value)
	r.stats.StateUpdates++
	if r.metrics != nil {
		r.metrics.stateUpdates.Inc()
	}

	if err := r.Rerender(); err != nil {
		r.reportError(fmt.Errorf("re-render after state update: %w", err))
	}
}

// checkSetter returns E010 for a setter whose slot store was discarded.
func (r *Runtime) checkSetter(gen uint64, idx int) error {
	if gen != r.generation || idx >= len(r.slots) {
		return newError("E010").WithDetailf("setter for slot %d outlived a Reset", idx)
	}
	return nil
}
