package reakt

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/reakt-dev/reakt/pkg/host"
	"github.com/reakt-dev/reakt/pkg/host/memdom"
	"github.com/reakt-dev/reakt/pkg/vdom"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRuntime returns a runtime and an empty container on a fresh document.
func newTestRuntime(opts ...Option) (*Runtime, *memdom.Node) {
	doc := memdom.NewDocument()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	return New(doc, opts...), doc.Element("main")
}

func mustRender(t *testing.T, r *Runtime, root *vdom.Element, container host.Node) {
	t.Helper()
	if err := r.Render(root, container); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
}

func TestRenderHostTree(t *testing.T) {
	r, container := newTestRuntime()
	clicked := 0
	root := vdom.Create("div", nil,
		vdom.Create("h1", vdom.Props{"id": "title"}, "Hi"),
		vdom.Create("button", vdom.Props{"onClick": func() { clicked++ }}, "Go"),
	)

	mustRender(t, r, root, container)

	if got := len(container.Children()); got != 1 {
		t.Fatalf("container children = %d, want 1", got)
	}
	div := container.FirstChild()
	if div.Tag() != "div" || len(div.Children()) != 2 {
		t.Fatalf("output = %s, want div with 2 children", div.OuterHTML())
	}

	h1, button := div.Children()[0], div.Children()[1]
	if id, _ := h1.Attribute("id"); id != "title" {
		t.Errorf("h1 id = %q, want %q", id, "title")
	}
	if h1.TextContent() != "Hi" || button.TextContent() != "Go" {
		t.Errorf("texts = %q, %q", h1.TextContent(), button.TextContent())
	}
	if n := button.ListenerCount("click"); n != 1 {
		t.Errorf("click listeners = %d, want 1", n)
	}
	button.Click()
	if clicked != 1 {
		t.Errorf("clicked = %d, want 1", clicked)
	}

	want := `<div><h1 id="title">Hi</h1><button>Go</button></div>`
	if got := container.InnerHTML(); got != want {
		t.Errorf("InnerHTML() = %q, want %q", got, want)
	}
	if r.Output() != div {
		t.Error("Output() is not the grafted node")
	}
}

func TestRenderMirrorsElementTree(t *testing.T) {
	tests := []struct {
		name string
		root *vdom.Element
		want string
	}{
		{
			name: "text only",
			root: vdom.P("hello"),
			want: `<p>hello</p>`,
		},
		{
			name: "child order",
			root: vdom.Ul(vdom.Li("a"), vdom.Li("b"), vdom.Li("c")),
			want: `<ul><li>a</li><li>b</li><li>c</li></ul>`,
		},
		{
			name: "attributes and properties",
			root: vdom.Div(vdom.Class("box"), vdom.Title("t"), vdom.Data("k", "v"),
				vdom.Input(vdom.Type("checkbox"), vdom.Disabled(true))),
			want: `<div class="box" data-k="v" title="t"><input disabled type="checkbox"></div>`,
		},
		{
			name: "false boolean property",
			root: vdom.Button(vdom.Disabled(false), "ok"),
			want: `<button>ok</button>`,
		},
		{
			name: "mixed children",
			root: vdom.Create("p", nil, "n=", 4, nil, vdom.Strong("!")),
			want: `<p>n=4<strong>!</strong></p>`,
		},
		{
			name: "nil attribute skipped",
			root: vdom.Create("span", vdom.Props{"title": nil}, "x"),
			want: `<span>x</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, container := newTestRuntime()
			mustRender(t, r, tt.root, container)
			if got := container.InnerHTML(); got != tt.want {
				t.Errorf("InnerHTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRerenderIsIdempotent(t *testing.T) {
	r, container := newTestRuntime()
	root := vdom.Div(vdom.ID("app"), vdom.H1("Title"), vdom.P("body"))

	mustRender(t, r, root, container)
	first := container.FirstChild()
	firstSnap := first.Snapshot()

	mustRender(t, r, root, container)
	second := container.FirstChild()

	if len(container.Children()) != 1 {
		t.Fatalf("container children = %d, want 1", len(container.Children()))
	}
	if first == second {
		t.Error("re-render reused the previous host node")
	}
	if first.Parent() != nil {
		t.Error("replaced output is still attached")
	}

	// ids differ between passes; compare shape only
	ignoreIDs := cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".ID"
	}, cmp.Ignore())
	if diff := cmp.Diff(firstSnap, second.Snapshot(), ignoreIDs); diff != "" {
		t.Errorf("re-render changed the tree (-first +second):\n%s", diff)
	}
}

func TestRenderNilArgumentsUseBinding(t *testing.T) {
	r, container := newTestRuntime()
	mustRender(t, r, vdom.P("one"), container)

	if err := r.Render(nil, nil); err != nil {
		t.Fatalf("Render(nil, nil) error = %v", err)
	}
	if err := r.Render(vdom.P("two"), nil); err != nil {
		t.Fatalf("Render(root, nil) error = %v", err)
	}
	if got := container.InnerHTML(); got != "<p>two</p>" {
		t.Errorf("InnerHTML() = %q", got)
	}
	if r.Root() == nil || r.Container() != container {
		t.Error("binding not remembered")
	}
}

func TestRenderIntoNewContainerAppends(t *testing.T) {
	doc := memdom.NewDocument()
	r := New(doc, WithLogger(quietLogger()))
	a, b := doc.Element("div"), doc.Element("div")

	mustRender(t, r, vdom.P("x"), a)
	mustRender(t, r, vdom.P("y"), b)

	if a.InnerHTML() != "<p>x</p>" || b.InnerHTML() != "<p>y</p>" {
		t.Errorf("a = %q, b = %q", a.InnerHTML(), b.InnerHTML())
	}
	if r.Container() != b {
		t.Error("binding did not move to the new container")
	}
}

func TestDocumentFromContainer(t *testing.T) {
	doc := memdom.NewDocument()
	container := doc.Element("body")
	r := New(nil, WithLogger(quietLogger()))

	mustRender(t, r, vdom.P("owned"), container)

	if got := container.InnerHTML(); got != "<p>owned</p>" {
		t.Errorf("InnerHTML() = %q", got)
	}
	if doc.NodesCreated() != 3 {
		t.Errorf("NodesCreated() = %d, want 3", doc.NodesCreated())
	}
}

func TestRenderErrors(t *testing.T) {
	badHandler := vdom.Create("button", vdom.Props{"onClick": 42})
	nilComp := func(vdom.Props) *vdom.Element { return nil }
	panicky := func(vdom.Props) *vdom.Element { panic("boom") }

	tests := []struct {
		name string
		root *vdom.Element
		want error
	}{
		{"invalid type", vdom.Create(42, nil), ErrInvalidElement},
		{"invalid nested type", vdom.Div(vdom.Create(struct{}{}, nil)), ErrInvalidElement},
		{"empty tag", vdom.Create("", nil), ErrInvalidElement},
		{"nil component result", vdom.Create(nilComp, nil), ErrNilRender},
		{"bad handler", badHandler, ErrInvalidHandler},
		{"panic", vdom.Create(panicky, nil), ErrPanic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, container := newTestRuntime()
			err := r.Render(tt.root, container)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Render() error = %v, want %v", err, tt.want)
			}
			if len(container.Children()) != 0 {
				t.Error("failed pass modified the container")
			}
			if r.Output() != nil || r.Root() != nil {
				t.Error("failed pass updated the binding")
			}
			if s := r.Stats(); s.FailedPasses != 1 || s.Passes != 0 {
				t.Errorf("Stats() = %+v", s)
			}
		})
	}
}

func TestRenderWithoutBinding(t *testing.T) {
	r, _ := newTestRuntime()

	if err := r.Rerender(); !errors.Is(err, ErrNoBinding) {
		t.Errorf("Rerender() error = %v, want %v", err, ErrNoBinding)
	}
	if err := r.Render(nil, nil); !errors.Is(err, ErrNoBinding) {
		t.Errorf("Render(nil, nil) error = %v, want %v", err, ErrNoBinding)
	}
	if err := r.Render(vdom.P("x"), nil); !errors.Is(err, ErrNilContainer) {
		t.Errorf("Render(root, nil) error = %v, want %v", err, ErrNilContainer)
	}

	orphan := New(nil, WithLogger(quietLogger()))
	if err := orphan.Render(vdom.P("x"), stubNode{}); !errors.Is(err, ErrNilContainer) {
		t.Errorf("Render() without document error = %v, want %v", err, ErrNilContainer)
	}
}

func TestFailedPassKeepsPreviousOutput(t *testing.T) {
	r, container := newTestRuntime()
	broken := false
	app := func(vdom.Props) *vdom.Element {
		if broken {
			return nil
		}
		return vdom.P("fine")
	}

	mustRender(t, r, vdom.Create(app, nil), container)
	before := container.FirstChild()

	broken = true
	if err := r.Rerender(); !errors.Is(err, ErrNilRender) {
		t.Fatalf("Rerender() error = %v, want %v", err, ErrNilRender)
	}
	if container.FirstChild() != before || r.Output() != before {
		t.Error("failed pass replaced the previous output")
	}

	broken = false
	if err := r.Rerender(); err != nil {
		t.Fatalf("Rerender() after recovery error = %v", err)
	}
	if container.FirstChild() == before {
		t.Error("recovered pass did not replace the output")
	}
}

func TestReplaceFailure(t *testing.T) {
	r, container := newTestRuntime()
	mustRender(t, r, vdom.P("a"), container)

	// detach the output behind the runtime's back
	if err := container.RemoveChild(container.FirstChild()); err != nil {
		t.Fatal(err)
	}
	if err := r.Rerender(); !errors.Is(err, ErrReplace) {
		t.Errorf("Rerender() error = %v, want %v", err, ErrReplace)
	}
}

func TestOnCommit(t *testing.T) {
	r, container := newTestRuntime()
	var commits []host.Node
	unsubscribe := r.OnCommit(func(out host.Node) {
		commits = append(commits, out)
	})

	mustRender(t, r, vdom.P("a"), container)
	mustRender(t, r, vdom.P("b"), container)
	if len(commits) != 2 || commits[1] != r.Output() {
		t.Fatalf("commits = %d, want 2 ending with the output", len(commits))
	}

	unsubscribe()
	mustRender(t, r, vdom.P("c"), container)
	if len(commits) != 2 {
		t.Errorf("commit hook ran after unsubscribe")
	}
}

func TestReset(t *testing.T) {
	r, container := newTestRuntime()
	app := func(vdom.Props) *vdom.Element {
		n, _ := UseState(7)
		return vdom.P(n)
	}
	mustRender(t, r, vdom.Create(app, nil), container)
	if r.SlotCount() != 1 {
		t.Fatalf("SlotCount() = %d, want 1", r.SlotCount())
	}

	if err := r.Reset(); err != nil {
		t.Fatal(err)
	}
	if r.SlotCount() != 0 || r.Output() != nil {
		t.Error("Reset() kept state")
	}
	if err := r.Rerender(); !errors.Is(err, ErrNoBinding) {
		t.Errorf("Rerender() after Reset error = %v", err)
	}
}

func TestSetterAfterReset(t *testing.T) {
	var reported []error
	r, container := newTestRuntime(WithErrorHandler(func(err error) {
		reported = append(reported, err)
	}))

	var (
		set      func(int)
		dispatch func(int)
	)
	app := func(vdom.Props) *vdom.Element {
		n, s := UseState(7)
		total, d := UseReducer(func(s, a int) int { return s + a }, 0)
		set, dispatch = s, d
		return vdom.P(n + total)
	}
	mustRender(t, r, vdom.Create(app, nil), container)
	staleSet, staleDispatch := set, dispatch

	if err := r.Reset(); err != nil {
		t.Fatal(err)
	}
	staleSet(8)
	staleDispatch(1)

	if len(reported) != 2 {
		t.Fatalf("reported %d errors, want 2", len(reported))
	}
	for _, err := range reported {
		if !errors.Is(err, ErrNoBinding) {
			t.Errorf("reported %v, want %v", err, ErrNoBinding)
		}
	}
	if r.SlotCount() != 0 || r.Stats().StateUpdates != 0 {
		t.Errorf("stale setter wrote state: slots = %d, updates = %d", r.SlotCount(), r.Stats().StateUpdates)
	}

	// a new mount gets working setters; the old ones stay stale
	mustRender(t, r, vdom.Create(app, nil), container)
	set(9)
	if got := r.Output().(*memdom.Node).TextContent(); got != "9" {
		t.Errorf("TextContent() = %q, want 9", got)
	}
	staleSet(1)
	if len(reported) != 3 {
		t.Errorf("stale setter after remount reported %d errors, want 3", len(reported))
	}
}

func TestStats(t *testing.T) {
	r, container := newTestRuntime(WithTracerProvider(noop.NewTracerProvider()))
	mustRender(t, r, vdom.Div(vdom.P("a"), "b"), container)
	mustRender(t, r, vdom.Div(vdom.P("a"), "b"), container)

	s := r.Stats()
	if s.Passes != 2 || s.FailedPasses != 0 {
		t.Errorf("passes = %d/%d", s.Passes, s.FailedPasses)
	}
	// div, p, "a", "b"
	if s.LastNodes != 4 || s.NodesCreated != 8 {
		t.Errorf("LastNodes = %d, NodesCreated = %d", s.LastNodes, s.NodesCreated)
	}
}

func TestDefaultRuntime(t *testing.T) {
	container := memdom.NewDocument().Element("body")
	if err := Render(vdom.P("default"), container); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if err := Rerender(); err != nil {
		t.Fatalf("Rerender() error = %v", err)
	}
	if Default() != Default() {
		t.Error("Default() is not stable")
	}
	if got := container.InnerHTML(); got != "<p>default</p>" {
		t.Errorf("InnerHTML() = %q", got)
	}
}

func TestErrorCodeAndHandler(t *testing.T) {
	var reported []error
	r, container := newTestRuntime(WithErrorHandler(func(err error) {
		reported = append(reported, err)
	}))

	var set func(int)
	app := func(vdom.Props) *vdom.Element {
		n, s := UseState(1)
		set = s
		if n == 0 {
			return nil
		}
		return vdom.P(fmt.Sprint(n))
	}
	mustRender(t, r, vdom.Create(app, nil), container)

	set(0)
	if len(reported) != 1 || ErrorCode(reported[0]) != "E021" {
		t.Fatalf("reported = %v, want one E021", reported)
	}
}

// stubNode is a host node with no owner document.
type stubNode struct{}

func (stubNode) NodeName() string                           { return "STUB" }
func (stubNode) AppendChild(host.Node)                      {}
func (stubNode) ReplaceChild(_, _ host.Node) error          { return nil }
func (stubNode) HasProperty(string) bool                    { return false }
func (stubNode) SetProperty(string, any)                    {}
func (stubNode) SetAttribute(_, _ string)                   {}
func (stubNode) AddEventListener(string, host.EventHandler) {}
