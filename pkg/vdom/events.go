package vdom

// event creates an on<Event> prop with the given handler.
// The name is prefixed with "on" (e.g., "Click" becomes "onClick").
func event(name string, handler any) Attr {
	return Attr{Key: "on" + name, Value: handler}
}

// On binds a handler to an arbitrary event name.
func On(name string, handler any) Attr { return event(name, handler) }

// Mouse events

// OnClick handles click events.
func OnClick(handler any) Attr { return event("Click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) Attr { return event("DblClick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler any) Attr { return event("MouseDown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler any) Attr { return event("MouseUp", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) Attr { return event("MouseEnter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) Attr { return event("MouseLeave", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) Attr { return event("KeyDown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) Attr { return event("KeyUp", handler) }

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(handler any) Attr { return event("Input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) Attr { return event("Change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) Attr { return event("Submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) Attr { return event("Focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) Attr { return event("Blur", handler) }
