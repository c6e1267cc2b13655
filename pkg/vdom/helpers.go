package vdom

import "fmt"

// Text creates a text element.
func Text(content string) *Element {
	return &Element{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text element.
func Textf(format string, args ...any) *Element {
	return Text(fmt.Sprintf(format, args...))
}

// If returns the element if condition is true, nil otherwise.
// nil children are dropped, so If can be used inline in a child list.
func If(condition bool, el *Element) *Element {
	if condition {
		return el
	}
	return nil
}

// IfElse returns the first element if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Element) *Element {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Element) *Element {
	if condition {
		return fn()
	}
	return nil
}

// Map renders each item to an element.
func Map[T any](items []T, fn func(T) *Element) []*Element {
	out := make([]*Element, 0, len(items))
	for _, item := range items {
		if el := fn(item); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// MapIndexed renders each item with its index.
func MapIndexed[T any](items []T, fn func(int, T) *Element) []*Element {
	out := make([]*Element, 0, len(items))
	for i, item := range items {
		if el := fn(i, item); el != nil {
			out = append(out, el)
		}
	}
	return out
}
