package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryRuntime,
		Message:  "Hook called outside render",
		Detail:   "UseState, UseEffect and UseReducer read the hook slot store of the runtime that is currently rendering. Call them from the body of a function component.",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Hook order changed",
		Detail:   "Hooks are addressed by call position. Every render pass must make the same hook calls in the same order; do not call hooks inside conditions or loops.",
	},
	"E003": {
		Category: CategoryRuntime,
		Message:  "Hook slot type mismatch",
		Detail:   "The value stored in this hook slot has a different type than the hook reading it. This usually follows a hook order change.",
	},
	"E004": {
		Category: CategoryRuntime,
		Message:  "State set during render",
		Detail:   "A state setter was called while a render pass was in progress. Set state from event handlers, not from component bodies or effects.",
	},
	"E010": {
		Category: CategoryRuntime,
		Message:  "No render binding",
		Detail:   "A re-render was requested before any root element and container were rendered.",
	},
	"E011": {
		Category: CategoryRuntime,
		Message:  "Nil container",
		Detail:   "Render needs a host container node to attach the materialized tree to.",
	},

	// ============================================
	// Render Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryRender,
		Message:  "Invalid element",
		Detail:   "The element type is neither a host tag nor a function component.",
	},
	"E021": {
		Category: CategoryRender,
		Message:  "Component rendered nil",
		Detail:   "A function component must return an element.",
	},
	"E022": {
		Category: CategoryRender,
		Message:  "Invalid event handler",
		Detail:   "Event props must hold a func(), a func(host.Event) or a host.EventHandler.",
	},
	"E023": {
		Category: CategoryRender,
		Message:  "Replace failed",
		Detail:   "The previously materialized tree is no longer a child of the container.",
	},
	"E030": {
		Category: CategoryRender,
		Message:  "Component panicked",
		Detail:   "A component or effect panicked during the render pass.",
	},

	// ============================================
	// Inspector Errors (E040-E059)
	// ============================================

	"E044": {
		Category: CategoryInspect,
		Message:  "Node not found",
		Detail:   "The node ID does not exist in the current materialized tree.",
	},
	"E045": {
		Category: CategoryInspect,
		Message:  "Nothing mounted",
		Detail:   "The inspector has no mounted application to operate on.",
	},

	// ============================================
	// Config Errors (E120-E149)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration file could not be read or parsed.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "log.level must be one of debug, info, warn or error.",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Configuration not found",
		Detail:   "No reakt.json, reakt.yaml or reakt.yml was found.",
	},

	// ============================================
	// CLI Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryCLI,
		Message:  "Invalid argument",
		Detail:   "A command line argument is out of range.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
