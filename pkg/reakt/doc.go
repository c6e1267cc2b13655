// Package reakt is a minimal declarative UI rendering engine.
//
// A Runtime lowers a tree of vdom elements into host nodes, lets function
// components keep local state and run side effects through hooks, and
// rebuilds the whole host tree whenever state changes.
//
// # Rendering
//
//	doc := memdom.NewDocument()
//	root := doc.Element("div")
//	rt := reakt.New(doc)
//	if err := rt.Render(vdom.Func(Counter, nil), root); err != nil {
//	    log.Fatal(err)
//	}
//
// Every render pass materializes the complete element tree into new host
// nodes and swaps the previous output for the new one in the container.
// There is no diffing: an update costs O(tree size).
//
// # Hooks
//
// UseState, UseReducer and UseEffect may only be called from component
// bodies while a pass is running. Hooks are identified by call position
// across the whole tree, so every pass must make the same hook calls in the
// same order:
//
//	func Counter(vdom.Props) *vdom.Element {
//	    count, setCount := reakt.UseState(0)
//	    reakt.UseEffect(func() { log.Println("count changed") }, count)
//	    return vdom.Button(vdom.OnClick(func() { setCount(count + 1) }),
//	        vdom.Textf("Count: %d", count))
//	}
//
// A setter stores the new value and synchronously re-renders from the
// remembered root element and container. Setters must not be called while a
// pass is in progress (from a component body or an effect); doing so fails
// the pass with E004.
//
// # Concurrency
//
// A Runtime is single-threaded. Callers that deliver events from several
// goroutines must serialize access themselves, as the inspector package does.
package reakt
