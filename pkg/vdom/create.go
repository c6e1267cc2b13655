package vdom

import (
	"fmt"
	"sort"
)

// Create builds an element from a type, props and children.
//
// typ is a host tag name (string) or a Component. Any other type yields a
// KindInvalid element that the engine reports when materializing it.
// nil props become an empty map. Children are flattened: nested []any and
// []*Element are expanded, nil entries dropped, strings become text
// elements and other scalars are formatted with fmt.Sprint.
//
// For components the children are passed in props under ChildrenKey;
// the caller's props map is never modified.
func Create(typ any, props Props, children ...any) *Element {
	kids := flatten(nil, children)

	switch t := typ.(type) {
	case string:
		if t == "" {
			return &Element{Kind: KindInvalid, Text: `empty tag ""`}
		}
		return &Element{
			Kind:     KindHost,
			Tag:      t,
			Props:    copyProps(props, 0),
			Children: kids,
		}
	case Component:
		return funcElement(t, props, kids)
	case func(Props) *Element:
		return funcElement(Component(t), props, kids)
	default:
		return &Element{Kind: KindInvalid, Text: fmt.Sprintf("%T", typ)}
	}
}

// Func creates a function component element. It is Create with a typed
// component argument.
func Func(comp Component, props Props, children ...any) *Element {
	return Create(comp, props, children...)
}

func funcElement(comp Component, props Props, kids []*Element) *Element {
	if comp == nil {
		return &Element{Kind: KindInvalid, Text: "nil component"}
	}
	p := copyProps(props, 1)
	if len(kids) > 0 {
		p[ChildrenKey] = kids
	}
	return &Element{
		Kind:  KindFunc,
		Comp:  comp,
		Props: p,
	}
}

func copyProps(props Props, extra int) Props {
	p := make(Props, len(props)+extra)
	for k, v := range props {
		p[k] = v
	}
	return p
}

// flatten appends the child arguments to dst as elements.
func flatten(dst []*Element, children []any) []*Element {
	if dst == nil {
		dst = make([]*Element, 0, len(children))
	}
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *Element:
			if v != nil {
				dst = append(dst, v)
			}
		case []*Element:
			for _, c := range v {
				if c != nil {
					dst = append(dst, c)
				}
			}
		case []any:
			dst = flatten(dst, v)
		case []string:
			for _, s := range v {
				dst = append(dst, Text(s))
			}
		case string:
			dst = append(dst, Text(v))
		case fmt.Stringer:
			dst = append(dst, Text(v.String()))
		default:
			dst = append(dst, Text(fmt.Sprint(v)))
		}
	}
	return dst
}

// createElement creates a host element from helper arguments.
// Arguments can be: nil, Attr, []Attr, Props, *Element, []*Element,
// []any, string or any scalar (formatted as text).
func createElement(tag string, args []any) *Element {
	el := &Element{
		Kind:     KindHost,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*Element, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			if !v.IsEmpty() {
				el.Props[v.Key] = v.Value
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					el.Props[a.Key] = a.Value
				}
			}
		case Props:
			for k, val := range v {
				el.Props[k] = val
			}
		default:
			el.Children = flatten(el.Children, []any{arg})
		}
	}

	return el
}

// Equal reports whether two element trees are structurally equal.
// Function components compare by kind and props keys only, since Go
// functions are not comparable; event handler values are compared the
// same way.
func Equal(a, b *Element) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Text != b.Text {
		return false
	}
	if !equalProps(a.Props, b.Props) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func equalProps(a, b Props) bool {
	if len(a) != len(b) {
		return false
	}
	for _, k := range sortedKeys(a) {
		bv, ok := b[k]
		if !ok {
			return false
		}
		av := a[k]
		if IsEventProp(k) || k == ChildrenKey {
			continue
		}
		if !comparableEqual(av, bv) {
			return false
		}
	}
	return true
}

func comparableEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// SortedPropKeys returns the prop keys in sorted order.
func SortedPropKeys(p Props) []string {
	return sortedKeys(p)
}

func sortedKeys(p Props) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
