package vdom

import "strings"

// Kind is the element type discriminator.
type Kind uint8

const (
	KindInvalid Kind = iota // Unrecognized type passed to Create
	KindHost                // <div>, <button>, etc.
	KindFunc                // Function component
	KindText                // Literal text
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindHost:
		return "Host"
	case KindFunc:
		return "Func"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// ChildrenKey is the reserved prop that carries children into a component.
const ChildrenKey = "children"

// Element is the immutable UI descriptor.
type Element struct {
	Kind     Kind       // Variant discriminator
	Tag      string     // Host tag name (KindHost)
	Comp     Component  // Component function (KindFunc)
	Props    Props      // Attributes, properties and event handlers
	Children []*Element // Ordered children (KindHost)
	Text     string     // Text content (KindText), rejected type (KindInvalid)
}

// Props maps prop names to values.
type Props map[string]any

// Component renders props to an element.
type Component func(props Props) *Element

// IsInteractive returns true if this element has event handler props.
func (e *Element) IsInteractive() bool {
	if e == nil || e.Kind != KindHost {
		return false
	}
	for key := range e.Props {
		if IsEventProp(key) {
			return true
		}
	}
	return false
}

// IsEventProp reports whether key follows the on<Event> naming convention.
func IsEventProp(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on")
}

// EventName returns the platform event name for an on<Event> prop key,
// e.g. "onClick" becomes "click". It returns "" for other keys.
func EventName(key string) string {
	if !IsEventProp(key) {
		return ""
	}
	return strings.ToLower(key[2:])
}

// Get returns the prop value for key, or nil.
func (p Props) Get(key string) any {
	if p == nil {
		return nil
	}
	return p[key]
}

// String returns the prop value for key if it is a string.
func (p Props) String(key string) string {
	s, _ := p.Get(key).(string)
	return s
}

// ChildrenOf returns the children passed to a component through its props.
func ChildrenOf(p Props) []*Element {
	children, _ := p.Get(ChildrenKey).([]*Element)
	return children
}

// Attr represents a single prop set by the element helpers.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}
