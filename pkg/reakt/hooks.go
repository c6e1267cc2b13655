package reakt

import "reflect"

// hookKind identifies the type of hook call for order validation.
type hookKind uint8

const (
	hookState hookKind = iota + 1
	hookReducer
	hookEffect
)

// String returns a human-readable name for the hook kind.
func (k hookKind) String() string {
	switch k {
	case hookState:
		return "UseState"
	case hookReducer:
		return "UseReducer"
	case hookEffect:
		return "UseEffect"
	default:
		return "Unknown"
	}
}

// slot is one positional cell of the hook slot store. set distinguishes
// "never written" from a stored zero value.
type slot struct {
	set   bool
	value any
}

// useSlot returns the index and contents of the slot at the cursor and
// advances the cursor. A slot is appended on first visit.
func (r *Runtime) useSlot(kind hookKind) (int, slot) {
	idx := r.cursor
	r.trackHook(kind, idx)
	r.cursor++

	if idx >= len(r.slots) {
		r.slots = append(r.slots, slot{})
	}
	return idx, r.slots[idx]
}

// writeSlot stores value at idx.
func (r *Runtime) writeSlot(idx int, value any) {
	r.slots[idx] = slot{set: true, value: value}
}

// trackHook records the hook order during the first completed pass and
// validates it on later passes.
func (r *Runtime) trackHook(kind hookKind, idx int) {
	if !r.opts.hookOrderCheck {
		return
	}
	if !r.orderLocked {
		r.hookOrder = append(r.hookOrder, kind)
		return
	}
	if idx >= len(r.hookOrder) {
		panic(newError("E002").WithDetailf(
			"extra %s hook at index %d; the first pass made %d hook calls",
			kind, idx, len(r.hookOrder)))
	}
	if expected := r.hookOrder[idx]; expected != kind {
		panic(newError("E002").WithDetailf(
			"hook %d changed from %s to %s", idx, expected, kind))
	}
}

// finishHookOrder validates the hook count at the end of a successful
// materialization, or locks in the order after the first one.
func (r *Runtime) finishHookOrder() error {
	if !r.opts.hookOrderCheck {
		return nil
	}
	if !r.orderLocked {
		r.orderLocked = true
		return nil
	}
	if r.cursor < len(r.hookOrder) {
		return newError("E002").WithDetailf(
			"expected %d hook calls, got %d", len(r.hookOrder), r.cursor)
	}
	return nil
}

// abandonHookOrder discards a partially recorded order after a failed
// first pass.
func (r *Runtime) abandonHookOrder() {
	if !r.orderLocked {
		r.hookOrder = r.hookOrder[:0]
	}
}

// isZero reports whether v is nil or the zero value of its type.
func isZero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
