package reakt

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/reakt-dev/reakt/pkg/host"
	"github.com/reakt-dev/reakt/pkg/vdom"
)

const tracerName = "github.com/reakt-dev/reakt"

// Stats are cumulative counters for a Runtime.
type Stats struct {
	Passes       int           `json:"passes"`
	FailedPasses int           `json:"failedPasses"`
	Slots        int           `json:"slots"`
	LastNodes    int           `json:"lastNodes"`
	NodesCreated int           `json:"nodesCreated"`
	EffectRuns   int           `json:"effectRuns"`
	StateUpdates int           `json:"stateUpdates"`
	LastDuration time.Duration `json:"lastDuration"`
}

type commitHook struct {
	id int
	fn CommitFunc
}

// Runtime owns one hook slot store and one render binding.
//
// Every pass rebuilds the whole host tree from the remembered root element
// and grafts it into the container, replacing the previous output. Hooks
// called by components during the pass read and write the slot store
// positionally, in call order.
//
// A Runtime is not safe for concurrent use. Render, Rerender and the state
// setters it hands out must be called from one goroutine at a time.
type Runtime struct {
	opts    options
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer

	// ownDoc is the document given to New; doc is the one used by the
	// current pass.
	ownDoc host.Document
	doc    host.Document

	slots       []slot
	generation  uint64
	cursor      int
	hookOrder   []hookKind
	orderLocked bool
	rendering   bool

	root      *vdom.Element
	container host.Node
	output    host.Node

	nodesThisPass int
	stats         Stats

	commitHooks []commitHook
	nextHookID  int
}

// New creates a Runtime that creates nodes with doc. If doc is nil, each
// pass uses the owner document of its container, which must then
// implement host.DocumentOwner.
func New(doc host.Document, opts ...Option) *Runtime {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	tp := o.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Runtime{
		opts:    o,
		logger:  logger.With("component", "reakt"),
		metrics: o.metrics,
		tracer:  tp.Tracer(tracerName),
		ownDoc:  doc,
	}
}

// Render materializes root and grafts the result into container.
//
// The first pass, or a pass into a different container, appends the
// output to the container. Later passes replace the previous output in
// place. A nil root or container falls back to the remembered binding, so
// Render(nil, nil) is the same as Rerender. After a successful pass, root
// and container become the binding used by state setters.
//
// A failed pass leaves the binding, the previous output and the container
// untouched.
func (r *Runtime) Render(root *vdom.Element, container host.Node) error {
	if root == nil {
		root = r.root
	}
	if container == nil {
		container = r.container
	}
	if root == nil {
		return newError("E010").WithDetail("no root element given and none remembered")
	}
	if container == nil {
		return newError("E011")
	}
	return r.pass(root, container)
}

// Rerender runs a pass from the remembered root and container.
func (r *Runtime) Rerender() error {
	if r.root == nil || r.container == nil {
		return newError("E010")
	}
	return r.pass(r.root, r.container)
}

// pass runs one render pass. The slot cursor is reset to zero when it
// returns, whether it succeeded or not.
func (r *Runtime) pass(root *vdom.Element, container host.Node) (err error) {
	if r.rendering {
		return newError("E004").WithDetail("render requested during a render pass")
	}

	doc, err := r.documentFor(container)
	if err != nil {
		return err
	}

	_, span := r.tracer.Start(context.Background(), "reakt.render")
	defer span.End()

	start := time.Now()
	r.doc = doc
	r.nodesThisPass = 0
	r.cursor = 0

	prev := setCurrentRuntime(r)
	r.rendering = true
	defer func() {
		r.rendering = false
		r.cursor = 0
		r.doc = nil
		setCurrentRuntime(prev)
	}()

	var out host.Node
	err = protect(func() error {
		var merr error
		out, merr = r.materialize(root)
		return merr
	})
	if err == nil {
		err = r.finishHookOrder()
	} else {
		r.abandonHookOrder()
	}
	r.rendering = false

	if err == nil {
		err = protect(func() error {
			return r.graft(out, container)
		})
	}

	elapsed := time.Since(start)
	r.stats.LastDuration = elapsed
	r.stats.Slots = len(r.slots)
	span.SetAttributes(
		attribute.Int("reakt.pass", r.stats.Passes+r.stats.FailedPasses+1),
		attribute.Int("reakt.slots", len(r.slots)),
		attribute.Int("reakt.nodes", r.nodesThisPass),
	)

	if err != nil {
		r.stats.FailedPasses++
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if r.metrics != nil {
			r.metrics.observePass("error", elapsed.Seconds(), r.nodesThisPass, len(r.slots))
		}
		r.logger.Debug("render pass failed", "error", err, "code", ErrorCode(err))
		return err
	}

	r.root = root
	r.container = container
	r.output = out
	r.stats.Passes++
	r.stats.LastNodes = r.nodesThisPass
	r.stats.NodesCreated += r.nodesThisPass
	if r.metrics != nil {
		r.metrics.observePass("ok", elapsed.Seconds(), r.nodesThisPass, len(r.slots))
	}
	r.logger.Debug("render pass",
		"pass", r.stats.Passes,
		"nodes", r.nodesThisPass,
		"slots", len(r.slots),
		"duration", elapsed)

	r.notifyCommit(out)
	return nil
}

// documentFor returns the document a pass into container creates nodes with.
func (r *Runtime) documentFor(container host.Node) (host.Document, error) {
	if r.ownDoc != nil {
		return r.ownDoc, nil
	}
	if owner, ok := container.(host.DocumentOwner); ok {
		if doc := owner.OwnerDocument(); doc != nil {
			return doc, nil
		}
	}
	return nil, newError("E011").WithDetailf(
		"no document given to New and container %s has no owner document", container.NodeName())
}

// graft puts out into container, replacing the previous output when the
// container is the remembered one.
func (r *Runtime) graft(out, container host.Node) error {
	if r.output != nil && r.container == container {
		if err := container.ReplaceChild(out, r.output); err != nil {
			return newError("E023").Wrap(err)
		}
		return nil
	}
	container.AppendChild(out)
	return nil
}

// protect runs fn and converts a panic into an error.
func protect(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = recoverError(p)
		}
	}()
	return fn()
}

// Output returns the host node produced by the last successful pass.
func (r *Runtime) Output() host.Node {
	return r.output
}

// Container returns the remembered container, or nil before the first pass.
func (r *Runtime) Container() host.Node {
	return r.container
}

// Root returns the remembered root element.
func (r *Runtime) Root() *vdom.Element {
	return r.root
}

// Stats returns a copy of the runtime counters.
func (r *Runtime) Stats() Stats {
	s := r.stats
	s.Slots = len(r.slots)
	return s
}

// SlotCount returns the number of hook slots in the store.
func (r *Runtime) SlotCount() int {
	return len(r.slots)
}

// OnCommit registers fn to be called after every successful pass with the
// new output. The returned function removes it.
func (r *Runtime) OnCommit(fn CommitFunc) (unsubscribe func()) {
	r.nextHookID++
	id := r.nextHookID
	r.commitHooks = append(r.commitHooks, commitHook{id: id, fn: fn})

	return func() {
		for i, h := range r.commitHooks {
			if h.id == id {
				r.commitHooks = append(r.commitHooks[:i], r.commitHooks[i+1:]...)
				return
			}
		}
	}
}

func (r *Runtime) notifyCommit(out host.Node) {
	hooks := make([]commitHook, len(r.commitHooks))
	copy(hooks, r.commitHooks)
	for _, h := range hooks {
		h.fn(out)
	}
}

// Reset forgets the slot store, the recorded hook order and the binding.
// The container keeps the last output; the next Render appends a new one.
// Setters handed out before Reset report E010 instead of writing state.
func (r *Runtime) Reset() error {
	if r.rendering {
		return newError("E004").WithDetail("reset during a render pass")
	}
	r.slots = nil
	r.generation++
	r.cursor = 0
	r.hookOrder = nil
	r.orderLocked = false
	r.root = nil
	r.container = nil
	r.output = nil
	return nil
}

// reportError handles an error that has no caller to return to.
func (r *Runtime) reportError(err error) {
	r.logger.Warn("render failed", "error", err, "code", ErrorCode(err))
	if r.opts.onError != nil {
		r.opts.onError(err)
	}
}

var (
	defaultOnce    sync.Once
	defaultRuntime *Runtime
)

// Default returns the process-wide runtime used by the package-level
// Render and Rerender. Its document is taken from the container.
func Default() *Runtime {
	defaultOnce.Do(func() {
		defaultRuntime = New(nil)
	})
	return defaultRuntime
}

// Render renders root into container with the default runtime.
func Render(root *vdom.Element, container host.Node) error {
	return Default().Render(root, container)
}

// Rerender re-renders the default runtime's binding.
func Rerender() error {
	return Default().Rerender()
}
