// Package reakttest provides testing helpers for reakt components.
//
// A Harness mounts an element tree on a fresh in-memory document and
// exposes the result for assertions and interaction:
//
//	func TestCounter(t *testing.T) {
//	    h := reakttest.Mount(t, vdom.Create(Counter, nil))
//	    h.Click("inc")
//	    reakttest.ExpectContains(t, h, "Count: 1")
//	}
//
// Elements are found by their id attribute at call time, since every
// render pass replaces the host nodes. Lookup failures and render errors
// fail the test immediately.
package reakttest
