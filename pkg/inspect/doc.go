// Package inspect serves a live view of a mounted reakt application.
//
// The inspector exposes the current host tree as HTML and JSON, lets
// clients dispatch DOM events to individual nodes, and pushes the new
// HTML to websocket clients after every render pass:
//
//	GET  /tree                     HTML of the container, with node ids
//	GET  /tree.json                JSON snapshot of the container
//	POST /nodes/{id}/events/{type} dispatch an event on a node
//	GET  /stats                    runtime counters
//	GET  /metrics                  Prometheus metrics
//	GET  /ws                       websocket stream of HTML after each pass
//
// A Runtime is single-threaded, so every request that touches the runtime
// or its container holds one mutex for its whole duration. Event handlers,
// the state setters they call and the resulting render passes all run
// inside that critical section.
package inspect
