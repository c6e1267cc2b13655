package memdom

import (
	"fmt"
	"sort"
)

// Snapshot is a serializable view of a subtree, used by the inspector.
type Snapshot struct {
	ID       uint64            `json:"id"`
	Type     string            `json:"type"`
	Tag      string            `json:"tag,omitempty"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Props    map[string]string `json:"props,omitempty"`
	Events   []string          `json:"events,omitempty"`
	Children []*Snapshot       `json:"children,omitempty"`
}

// Snapshot captures the subtree rooted at n. Property values are formatted
// with %v since they may hold arbitrary Go values.
func (n *Node) Snapshot() *Snapshot {
	s := &Snapshot{
		ID:   n.id,
		Type: n.typ.String(),
	}
	if n.typ == TextNode {
		s.Text = n.text
		return s
	}

	s.Tag = n.tag
	if len(n.attr) > 0 {
		s.Attrs = n.Attributes()
	}
	if len(n.prop) > 0 {
		s.Props = make(map[string]string, len(n.prop))
		for k, v := range n.prop {
			s.Props[k] = fmt.Sprintf("%v", v)
		}
	}
	if events := n.Events(); len(events) > 0 {
		sort.Strings(events)
		s.Events = events
	}
	for _, c := range n.children {
		s.Children = append(s.Children, c.Snapshot())
	}
	return s
}
