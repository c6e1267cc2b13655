// Package memdom is an in-memory, DOM-like host for the reakt engine.
//
// It implements host.Document and host.Node with browser semantics where
// the engine can observe them: elements expose a fixed set of intrinsic
// properties per tag, reflected properties (id, className, hidden, ...)
// also update their attribute, listeners run synchronously in registration
// order, and ReplaceChild fails when the old node is not a child.
//
// memdom backs the CLI, the inspector and the engine's tests:
//
//	doc := memdom.NewDocument()
//	root := doc.Element("div")
//	if err := reakt.Render(app, root); err != nil { ... }
//	root.GetElementByID("inc").Click()
//	fmt.Println(root.InnerHTML())
//
// Nodes are not safe for concurrent use.
package memdom
