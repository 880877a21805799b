package compositor

import (
	"fmt"

	"github.com/loomterm/compositor/internal/widget"
)

// NoWidgetKind distinguishes the handful of situations that raise
// NoWidgetError, for callers that want to branch on it.
type NoWidgetKind string

const (
	// KindNotInLayout means the widget was looked up but never placed by
	// the last reflow (it may be hidden, or simply not part of the tree).
	KindNotInLayout NoWidgetKind = "not_in_layout"
	// KindNoWidgetAtCoordinate means a spatial query found no widget
	// under the given screen cell.
	KindNoWidgetAtCoordinate NoWidgetKind = "no_widget_at_coordinate"
	// KindNoRoot means a query was made before any Reflow established a
	// root widget.
	KindNoRoot NoWidgetKind = "no_root"
)

// NoWidgetError is the compositor's spatial-query error (spec.md §7): every
// spatial-query failure surfaces as this, so callers can use errors.Is to
// distinguish "nothing there" from a real failure.
type NoWidgetError struct {
	Kind NoWidgetKind
	X, Y int
	HasCoordinate bool
}

func (e *NoWidgetError) Error() string {
	switch e.Kind {
	case KindNoWidgetAtCoordinate:
		return fmt.Sprintf("no widget under screen coordinate (%d, %d)", e.X, e.Y)
	case KindNoRoot:
		return "widget is not in layout: no root set"
	default:
		return "widget is not in layout"
	}
}

// Is reports whether target is a NoWidgetError of the same Kind, so
// sentinel comparisons via errors.Is ignore the coordinate payload.
func (e *NoWidgetError) Is(target error) bool {
	other, ok := target.(*NoWidgetError)
	if !ok {
		return false
	}
	if other.Kind == "" {
		return true
	}
	return e.Kind == other.Kind
}

func errNotInLayout() error {
	return &NoWidgetError{Kind: KindNotInLayout}
}

func errNoRoot() error {
	return &NoWidgetError{Kind: KindNoRoot}
}

func errNoWidgetAt(x, y int) error {
	return &NoWidgetError{Kind: KindNoWidgetAtCoordinate, X: x, Y: y, HasCoordinate: true}
}

// ErrNoWidget is a bare sentinel matching any NoWidgetError kind, for
// callers that only care whether a query came up empty.
var ErrNoWidget = &NoWidgetError{}

// RenderPanicError wraps a panic recovered from an external widget's
// RenderLines call (spec.md §7.2's "sentinel set on the call stack" note),
// so the caller can print a clean diagnostic instead of a raw panic trace.
// The compositor adds no other wrapping: the failure escapes unmodified
// beyond that.
type RenderPanicError struct {
	Widget widget.Widget
	Cause  interface{}
}

func (e *RenderPanicError) Error() string {
	return fmt.Sprintf("panic while rendering widget: %v", e.Cause)
}

func (e *RenderPanicError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}
