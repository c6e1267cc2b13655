package reakt

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/reakt-dev/reakt/pkg/host"
	"github.com/reakt-dev/reakt/pkg/vdom"
)

// materialize lowers an element into a new host node. Function components
// are invoked and their output materialized in their place, so their hook
// calls consume slots in depth-first order. Nothing is memoized: every call
// creates new host nodes.
func (r *Runtime) materialize(el *vdom.Element) (host.Node, error) {
	if el == nil {
		return nil, newError("E020").WithDetail("nil element")
	}

	switch el.Kind {
	case vdom.KindFunc:
		if el.Comp == nil {
			return nil, newError("E020").WithDetail("function element without a component")
		}
		out := el.Comp(el.Props)
		if out == nil {
			return nil, newError("E021").WithDetailf("%s returned nil", componentName(el.Comp))
		}
		return r.materialize(out)

	case vdom.KindHost:
		if el.Tag == "" {
			return nil, newError("E020").WithDetail("host element without a tag")
		}
		return r.materializeHost(el)

	case vdom.KindText:
		r.nodesThisPass++
		return r.doc.CreateTextNode(el.Text), nil

	default:
		detail := fmt.Sprintf("element of kind %s", el.Kind)
		if el.Text != "" {
			detail = fmt.Sprintf("element type %s is neither a tag nor a component", el.Text)
		}
		return nil, newError("E020").WithDetail(detail)
	}
}

// materializeHost creates the host node, appends its children in order,
// then applies its props in sorted key order.
func (r *Runtime) materializeHost(el *vdom.Element) (host.Node, error) {
	node := r.doc.CreateElement(el.Tag)
	r.nodesThisPass++

	for _, child := range el.Children {
		if child == nil {
			continue
		}
		if child.Kind == vdom.KindText {
			node.AppendChild(r.doc.CreateTextNode(child.Text))
			r.nodesThisPass++
			continue
		}
		cn, err := r.materialize(child)
		if err != nil {
			return nil, err
		}
		node.AppendChild(cn)
	}

	for _, key := range vdom.SortedPropKeys(el.Props) {
		if key == vdom.ChildrenKey {
			continue
		}
		if err := applyProp(node, el.Tag, key, el.Props[key]); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// applyProp wires one prop: intrinsic properties are assigned, on<Event>
// props become listeners for the lowercased event name, and everything
// else is set as an attribute. nil handlers and nil attribute values are
// skipped.
func applyProp(node host.Node, tag, key string, value any) error {
	if node.HasProperty(key) {
		node.SetProperty(key, value)
		return nil
	}

	if name := vdom.EventName(key); name != "" {
		if isNil(value) {
			return nil
		}
		handler, ok := host.AsEventHandler(value)
		if !ok {
			return newError("E022").WithDetailf("<%s %s> holds %T", tag, key, value)
		}
		node.AddEventListener(name, handler)
		return nil
	}

	if value == nil {
		return nil
	}
	node.SetAttribute(key, attrString(value))
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && rv.IsNil()
}

func attrString(v any) string {
	switch x := v.(type) {
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
