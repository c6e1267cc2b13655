// Package vdom provides the element model consumed by the reakt engine.
//
// An Element is an immutable descriptor of one unit of UI: a host tag with
// props and children, a function component with props, or literal text.
// Elements carry no identity; application code builds a fresh tree on every
// render pass and the engine lowers it to host nodes.
//
// # Core Types
//
// Element is a tagged variant discriminated by Kind. Props holds attributes,
// properties and event handlers keyed by name. Component is a function from
// Props to an Element.
//
// # Element API
//
// Create mirrors the classic createElement(type, props, ...children)
// factory:
//
//	vdom.Create("div", nil,
//	    vdom.Create("h1", vdom.Props{"id": "title"}, "Hi"),
//	    vdom.Create("button", vdom.Props{"onClick": fn}, "Go"),
//	)
//
// The variadic helpers build the same tree with typed attributes:
//
//	Div(
//	    H1(ID("title"), "Hi"),
//	    Button(OnClick(fn), "Go"),
//	)
//
// # Components
//
// Function components receive their props, with any children passed to the
// element available under the "children" key:
//
//	func Card(p vdom.Props) *vdom.Element {
//	    return vdom.Div(vdom.Class("card"), vdom.ChildrenOf(p))
//	}
//
//	vdom.Create(vdom.Component(Card), nil, vdom.P("body"))
package vdom
