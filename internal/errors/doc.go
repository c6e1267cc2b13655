// Package errors provides structured, coded errors for reakt.
//
// Every failure the engine can detect carries a short code (e.g. "E002")
// registered with a category, a one-line message and a longer explanation.
// Callers match on codes with HasCode or errors.Is against a template:
//
//	if errors.HasCode(err, "E002") {
//	    // hook order changed between render passes
//	}
//
// # Categories
//
//   - runtime: hook misuse, reentrant renders, missing render binding
//   - render: invalid elements and host tree failures
//   - inspect: devtools inspector lookups
//   - config: reakt.json / reakt.yaml problems
//   - cli: command line usage
//
// # Output
//
// Format renders a multi-line, optionally colored message for terminals;
// FormatCompact renders a single line; FormatJSON is used by the inspector.
package errors
