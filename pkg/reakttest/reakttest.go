package reakttest

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/reakt-dev/reakt/pkg/host"
	"github.com/reakt-dev/reakt/pkg/host/memdom"
	"github.com/reakt-dev/reakt/pkg/reakt"
	"github.com/reakt-dev/reakt/pkg/vdom"
)

// Harness is a mounted element tree.
type Harness struct {
	t         testing.TB
	Runtime   *reakt.Runtime
	Document  *memdom.Document
	Container *memdom.Node
	errs      []error
}

// Mount renders root into a new container and fails the test on error.
// Logging is discarded unless opts set a logger. Errors from re-renders
// triggered by state setters are collected and fail the test at the next
// interaction.
func Mount(t testing.TB, root *vdom.Element, opts ...reakt.Option) *Harness {
	t.Helper()
	h := &Harness{t: t, Document: memdom.NewDocument()}
	h.Container = h.Document.Element("div")
	h.Container.SetAttribute("id", "root")

	base := []reakt.Option{
		reakt.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		reakt.WithErrorHandler(func(err error) { h.errs = append(h.errs, err) }),
	}
	h.Runtime = reakt.New(h.Document, append(base, opts...)...)

	if err := h.Runtime.Render(root, h.Container); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return h
}

// HTML returns the serialized contents of the container.
func (h *Harness) HTML() string {
	return h.Container.InnerHTML()
}

// Text returns the text content of the container.
func (h *Harness) Text() string {
	return h.Container.TextContent()
}

// Find returns the element with the given id attribute, failing the test
// if there is none.
func (h *Harness) Find(id string) *memdom.Node {
	h.t.Helper()
	n := h.Container.GetElementByID(id)
	if n == nil {
		h.t.Fatalf("no element with id %q in:\n%s", id, truncate(h.HTML(), 500))
	}
	return n
}

// Click clicks the element with the given id.
func (h *Harness) Click(id string) {
	h.t.Helper()
	h.Dispatch(id, "click", nil)
}

// Dispatch sends an event of type typ with value to the element with the
// given id. The test fails if no listener ran or a re-render failed.
func (h *Harness) Dispatch(id, typ string, value any) {
	h.t.Helper()
	n := h.Find(id)
	if ran := n.Dispatch(host.Event{Type: typ, Value: value}); ran == 0 {
		h.t.Fatalf("element %q has no %s listener", id, typ)
	}
	h.checkErrors()
}

// Rerender runs a pass from the current binding.
func (h *Harness) Rerender() {
	h.t.Helper()
	if err := h.Runtime.Rerender(); err != nil {
		h.t.Fatalf("Rerender() error = %v", err)
	}
}

func (h *Harness) checkErrors() {
	h.t.Helper()
	if len(h.errs) > 0 {
		errs := h.errs
		h.errs = nil
		h.t.Fatalf("re-render failed: %v", errs[0])
	}
}

// ExpectContains asserts that the rendered output contains expected.
func ExpectContains(t testing.TB, h *Harness, expected string) {
	t.Helper()
	html := h.HTML()
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered output does not contain
// unexpected.
func ExpectNotContains(t testing.TB, h *Harness, unexpected string) {
	t.Helper()
	html := h.HTML()
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that the rendered output contains a tag.
func ExpectElement(t testing.TB, h *Harness, tag string) {
	t.Helper()
	if len(h.Container.QuerySelectorAll(tag)) == 0 {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(h.HTML(), 500))
	}
}

// ExpectAttribute asserts that the element with the given id has an
// attribute with the given value.
func ExpectAttribute(t testing.TB, h *Harness, id, attr, value string) {
	t.Helper()
	got, ok := h.Find(id).Attribute(attr)
	if !ok || got != value {
		t.Errorf("expected #%s %s=%q, got %q (present=%v)", id, attr, value, got, ok)
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
