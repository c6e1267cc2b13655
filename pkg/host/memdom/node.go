package memdom

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/reakt-dev/reakt/pkg/host"
)

// NodeType distinguishes element and text nodes.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Document creates memdom nodes. The zero value is not usable; call
// NewDocument.
type Document struct {
	nextID  atomic.Uint64
	created atomic.Uint64
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement implements host.Document.
func (d *Document) CreateElement(tag string) host.Node {
	return d.Element(tag)
}

// CreateTextNode implements host.Document.
func (d *Document) CreateTextNode(text string) host.Node {
	return d.Text(text)
}

// Element creates an element node.
func (d *Document) Element(tag string) *Node {
	d.created.Add(1)
	return &Node{
		id:   d.nextID.Add(1),
		typ:  ElementNode,
		tag:  strings.ToLower(tag),
		doc:  d,
		attr: make(map[string]string),
		prop: make(map[string]any),
	}
}

// Text creates a text node.
func (d *Document) Text(text string) *Node {
	d.created.Add(1)
	return &Node{
		id:   d.nextID.Add(1),
		typ:  TextNode,
		text: text,
		doc:  d,
	}
}

// NodesCreated returns how many nodes this document has created.
func (d *Document) NodesCreated() uint64 {
	return d.created.Load()
}

// Node is an element or text node.
type Node struct {
	id   uint64
	typ  NodeType
	tag  string
	text string
	doc  *Document

	attr      map[string]string
	prop      map[string]any
	listeners map[string][]host.EventHandler

	parent   *Node
	children []*Node
}

var (
	_ host.Node          = (*Node)(nil)
	_ host.DocumentOwner = (*Node)(nil)
)

// ID returns the document-unique node id.
func (n *Node) ID() uint64 { return n.id }

// Type returns the node type.
func (n *Node) Type() NodeType { return n.typ }

// Tag returns the lowercased tag name, "" for text nodes.
func (n *Node) Tag() string { return n.tag }

// Data returns the text of a text node.
func (n *Node) Data() string { return n.text }

// Parent returns the parent node or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// OwnerDocument implements host.DocumentOwner.
func (n *Node) OwnerDocument() host.Document { return n.doc }

// Document returns the document that created the node.
func (n *Node) Document() *Document { return n.doc }

// NodeName implements host.Node.
func (n *Node) NodeName() string {
	if n.typ == TextNode {
		return "#text"
	}
	return n.tag
}

// asNode converts a host.Node from this package, panicking otherwise like a
// DOM TypeError.
func asNode(v host.Node) *Node {
	node, ok := v.(*Node)
	if !ok || node == nil {
		panic(fmt.Sprintf("memdom: %T is not a memdom node", v))
	}
	return node
}

// AppendChild implements host.Node. A child that already has a parent is
// moved.
func (n *Node) AppendChild(child host.Node) {
	c := asNode(child)
	if n.typ == TextNode {
		panic("memdom: text nodes cannot have children")
	}
	c.detach()
	c.parent = n
	n.children = append(n.children, c)
}

// ReplaceChild implements host.Node.
func (n *Node) ReplaceChild(replacement, old host.Node) error {
	r, o := asNode(replacement), asNode(old)
	idx := n.indexOf(o)
	if idx < 0 {
		return fmt.Errorf("memdom: node %d is not a child of node %d", o.id, n.id)
	}
	if r == o {
		return nil
	}
	r.detach()
	// detaching r may shift o when both share this parent
	idx = n.indexOf(o)
	n.children[idx] = r
	r.parent = n
	o.parent = nil
	return nil
}

// RemoveChild removes child from this node.
func (n *Node) RemoveChild(child *Node) error {
	idx := n.indexOf(child)
	if idx < 0 {
		return fmt.Errorf("memdom: node %d is not a child of node %d", child.id, n.id)
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	child.parent = nil
	return nil
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *Node) detach() {
	if n.parent != nil {
		_ = n.parent.RemoveChild(n)
	}
}

// HasProperty implements host.Node.
func (n *Node) HasProperty(name string) bool {
	if n.typ == TextNode {
		_, ok := textProps[name]
		return ok
	}
	_, ok := lookupProp(n.tag, name)
	return ok
}

// SetProperty implements host.Node. Reflected properties also update their
// attribute; textContent replaces the children with one text node.
func (n *Node) SetProperty(name string, value any) {
	if n.typ == TextNode {
		n.text = stringify(value)
		return
	}
	spec, ok := lookupProp(n.tag, name)
	if !ok {
		n.prop[name] = value
		return
	}

	switch name {
	case "textContent", "innerText":
		for _, c := range n.children {
			c.parent = nil
		}
		n.children = nil
		if s := stringify(value); s != "" {
			n.AppendChild(n.doc.Text(s))
		}
		return
	}

	n.prop[name] = value
	if spec.attr == "" {
		return
	}
	if spec.boolean {
		if truthy(value) {
			n.attr[spec.attr] = ""
		} else {
			delete(n.attr, spec.attr)
		}
		return
	}
	n.attr[spec.attr] = stringify(value)
}

// Property returns a property value. Reflected properties fall back to
// their attribute.
func (n *Node) Property(name string) (any, bool) {
	if n.typ == TextNode {
		if _, ok := textProps[name]; ok {
			return n.text, true
		}
		return nil, false
	}
	if v, ok := n.prop[name]; ok {
		return v, true
	}
	if spec, ok := lookupProp(n.tag, name); ok && spec.attr != "" {
		v, present := n.attr[spec.attr]
		if spec.boolean {
			return present, true
		}
		return v, present
	}
	return nil, false
}

// SetAttribute implements host.Node. Names that are not valid HTML
// attribute names are ignored.
func (n *Node) SetAttribute(name, value string) {
	if n.typ == TextNode || !validAttrName(name) {
		return
	}
	n.attr[strings.ToLower(name)] = value
}

// validAttrName rejects empty names and names containing whitespace,
// controls, quotes, '=', '<', '>' or '/'.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r <= ' ' || r == 0x7f {
			return false
		}
		switch r {
		case '"', '\'', '=', '<', '>', '/':
			return false
		}
	}
	return true
}

// Attribute returns an attribute value.
func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.attr[strings.ToLower(name)]
	return v, ok
}

// Attributes returns a copy of the attributes.
func (n *Node) Attributes() map[string]string {
	out := make(map[string]string, len(n.attr))
	for k, v := range n.attr {
		out[k] = v
	}
	return out
}

// AddEventListener implements host.Node.
func (n *Node) AddEventListener(event string, handler host.EventHandler) {
	if handler == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]host.EventHandler)
	}
	n.listeners[event] = append(n.listeners[event], handler)
}

// ListenerCount returns the number of listeners bound to event.
func (n *Node) ListenerCount(event string) int {
	return len(n.listeners[event])
}

// Events returns the names of events with at least one listener.
func (n *Node) Events() []string {
	out := make([]string, 0, len(n.listeners))
	for name, ls := range n.listeners {
		if len(ls) > 0 {
			out = append(out, name)
		}
	}
	return out
}

// Dispatch runs the listeners bound to ev.Type on this node, in
// registration order, and returns how many ran. ev.Target is set to n.
func (n *Node) Dispatch(ev host.Event) int {
	ls := append([]host.EventHandler(nil), n.listeners[ev.Type]...)
	ev.Target = n
	for _, l := range ls {
		l(ev)
	}
	return len(ls)
}

// Click dispatches a click event.
func (n *Node) Click() int {
	return n.Dispatch(host.Event{Type: "click"})
}

// TextContent returns the concatenated text of the subtree.
func (n *Node) TextContent() string {
	if n.typ == TextNode {
		return n.text
	}
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.typ == TextNode {
			b.WriteString(c.text)
		}
		return true
	})
	return b.String()
}

// Walk visits the subtree depth-first in document order, including n.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// GetElementByID returns the first element in the subtree whose id
// attribute equals id.
func (n *Node) GetElementByID(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.typ == ElementNode && c.attr["id"] == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// QuerySelectorAll returns all elements in the subtree with the given tag.
func (n *Node) QuerySelectorAll(tag string) []*Node {
	tag = strings.ToLower(tag)
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.typ == ElementNode && c.tag == tag {
			out = append(out, c)
		}
		return true
	})
	return out
}

// FindByID returns the node with the given node id in the subtree.
func (n *Node) FindByID(id uint64) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.id == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes in the subtree, including n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	default:
		return true
	}
}
