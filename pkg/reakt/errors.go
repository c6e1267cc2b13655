package reakt

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/reakt-dev/reakt/internal/errors"
)

// Sentinel errors for errors.Is. Errors returned by the engine match these
// by code, whatever their detail text.
var (
	// ErrHookOutsideRender is raised when a hook is called with no pass running.
	ErrHookOutsideRender error = errors.New("E001")

	// ErrHookOrder is returned when hook calls differ from the first pass.
	ErrHookOrder error = errors.New("E002")

	// ErrHookType is returned when a slot holds a value of another type.
	ErrHookType error = errors.New("E003")

	// ErrSetDuringRender is returned when state is set while rendering.
	ErrSetDuringRender error = errors.New("E004")

	// ErrNoBinding is returned by Rerender before the first Render.
	ErrNoBinding error = errors.New("E010")

	// ErrNilContainer is returned when Render has no container.
	ErrNilContainer error = errors.New("E011")

	// ErrInvalidElement is returned for elements of unknown type.
	ErrInvalidElement error = errors.New("E020")

	// ErrNilRender is returned when a component returns nil.
	ErrNilRender error = errors.New("E021")

	// ErrInvalidHandler is returned for on<Event> props that are not handlers.
	ErrInvalidHandler error = errors.New("E022")

	// ErrReplace is returned when the previous output cannot be replaced.
	ErrReplace error = errors.New("E023")

	// ErrPanic wraps a panic raised by a component or effect.
	ErrPanic error = errors.New("E030")
)

// ErrorCode returns the reakt error code carried by err, or "".
func ErrorCode(err error) string {
	return errors.Code(err)
}

func newError(code string) *errors.ReaktError {
	return errors.New(code)
}

// recoverError converts a recovered panic value into a pass error.
func recoverError(p any) error {
	if err, ok := p.(error); ok {
		if errors.Code(err) != "" {
			return err
		}
		return newError("E030").Wrap(err)
	}
	return newError("E030").Wrap(fmt.Errorf("%v", p))
}

// componentName returns the function name of a component for diagnostics.
func componentName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "<nil>"
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return "<unknown>"
}
