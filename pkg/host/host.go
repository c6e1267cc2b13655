// Package host defines the host platform surface the reakt engine renders
// into.
//
// The engine never implements these interfaces itself. A platform adapter
// (a browser DOM binding, a terminal widget tree, or the in-memory memdom
// package) supplies a Document that creates nodes, and the engine wires
// children, properties, attributes and event listeners through Node.
package host

// Document creates host nodes.
type Document interface {
	// CreateElement creates an element node for tag.
	CreateElement(tag string) Node

	// CreateTextNode creates a text node.
	CreateTextNode(text string) Node
}

// Node is one node of the host tree.
type Node interface {
	// NodeName returns the tag name for elements or "#text".
	NodeName() string

	// AppendChild appends child as the last child.
	AppendChild(child Node)

	// ReplaceChild replaces old, which must be a child of this node, with
	// replacement at the same position.
	ReplaceChild(replacement, old Node) error

	// HasProperty reports whether name is an intrinsic property of the node.
	HasProperty(name string) bool

	// SetProperty assigns an intrinsic property.
	SetProperty(name string, value any)

	// SetAttribute sets a generic attribute.
	SetAttribute(name, value string)

	// AddEventListener binds handler to the named event.
	AddEventListener(event string, handler EventHandler)
}

// DocumentOwner is implemented by nodes that know the document that created
// them. The engine uses it to find a Document when none was configured.
type DocumentOwner interface {
	OwnerDocument() Document
}

// Event is delivered to event handlers.
type Event struct {
	// Type is the event name, e.g. "click".
	Type string

	// Target is the node the event was dispatched on.
	Target Node

	// Value carries an event payload such as an input's new value.
	Value any
}

// EventHandler handles a dispatched event.
type EventHandler func(Event)

// AsEventHandler converts a prop value into an EventHandler.
// It accepts EventHandler, func(Event) and func(); ok is false otherwise.
func AsEventHandler(v any) (handler EventHandler, ok bool) {
	switch h := v.(type) {
	case EventHandler:
		return h, h != nil
	case func(Event):
		return EventHandler(h), h != nil
	case func():
		if h == nil {
			return nil, false
		}
		return func(Event) { h() }, true
	default:
		return nil, false
	}
}
