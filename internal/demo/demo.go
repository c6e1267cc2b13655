// Package demo contains the counter application bundled with the reakt
// command. It is a function component with one state slot and one effect,
// mounted under a plain div.
package demo

import (
	"fmt"
	"log/slog"

	"github.com/reakt-dev/reakt/internal/errors"
	"github.com/reakt-dev/reakt/pkg/host/memdom"
	"github.com/reakt-dev/reakt/pkg/reakt"
	"github.com/reakt-dev/reakt/pkg/vdom"
)

// Element IDs of the demo controls.
const (
	TitleID     = "title"
	IncrementID = "increment"
	NoopID      = "noop"
)

// App is the demo application.
type App struct {
	// Title is the header text.
	Title string

	// Logger receives the "count has changed" effect message.
	Logger *slog.Logger
}

// New returns an App with the given title.
func New(title string, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{Title: title, Logger: logger}
}

// Root returns the root element: a div wrapping one Header.
func (a *App) Root() *vdom.Element {
	return vdom.Create("div", nil,
		vdom.Create(a.Header, vdom.Props{"text": a.Title}),
	)
}

// Header renders the title, the current count and two buttons. The first
// button increments the count; the second sets it to its current value,
// which still re-renders.
func (a *App) Header(props vdom.Props) *vdom.Element {
	count, setCount := reakt.UseState(0)

	reakt.UseEffect(func() {
		a.Logger.Info("count has changed", "count", count)
	}, count)

	return vdom.Div(
		vdom.H1(vdom.ID(TitleID), props.String("text")),
		vdom.H2(fmt.Sprintf("Count: %d", count)),
		vdom.Button(vdom.ID(IncrementID), vdom.OnClick(func() { setCount(count + 1) }), "Increment Count!"),
		vdom.Button(vdom.ID(NoopID), vdom.OnClick(func() { setCount(count) }), "Not increment Count!"),
	)
}

// Failures collects render errors reported by a runtime. Pass Report to
// reakt.WithErrorHandler so clicks can return the re-render they caused.
type Failures struct {
	errs []error
}

// Report records err.
func (f *Failures) Report(err error) {
	f.errs = append(f.errs, err)
}

// take returns the first recorded error and clears the rest.
func (f *Failures) take() error {
	if f == nil || len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = nil
	return err
}

// Click dispatches a click on the element with the given id attribute in
// container. The lookup happens at call time since every pass replaces
// the nodes. A re-render failure recorded in failures is returned; failures
// may be nil.
func Click(container *memdom.Node, id string, failures *Failures) error {
	node := container.GetElementByID(id)
	if node == nil {
		return errors.New("E044").WithDetailf("no element with id %q", id)
	}
	node.Click()
	return failures.take()
}

// ClickN clicks the element with the given id n times, stopping at the
// first failed click.
func ClickN(container *memdom.Node, id string, n int, failures *Failures) error {
	if n < 0 {
		return errors.New("E160").WithDetailf("click count %d is negative", n)
	}
	for i := 0; i < n; i++ {
		if err := Click(container, id, failures); err != nil {
			return err
		}
	}
	return nil
}
