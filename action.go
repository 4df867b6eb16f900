package datatable

import (
	"strings"
)

// ClickEvent is passed to the click handlers of inline actions.
// An action stops the click from reaching the row click handler
// by calling StopPropagation.
type ClickEvent struct {
	RowKey string
	Column string
	Action string

	stopped bool
}

// StopPropagation prevents the row click handler
// from being called for this event.
func (e *ClickEvent) StopPropagation() { e.stopped = true }

// PropagationStopped returns if StopPropagation was called.
func (e *ClickEvent) PropagationStopped() bool { return e.stopped }

// Action is an interactive element within a cell,
// typically returned by a Column.Render projection.
type Action struct {
	// Name identifies the action within its cell
	Name  string
	Label string
	// Class is an optional style hint passed through to writers.
	Class string
	// OnClick is called when the action is clicked.
	// It's responsible for stopping the propagation of the event
	// if the row click handler must not be called.
	OnClick func(event *ClickEvent)
}

// String returns the label of the action.
func (a Action) String() string { return a.Label }

// Actions is a group of actions displayed within one cell.
type Actions []Action

// String returns the labels of the actions separated by " / ".
func (a Actions) String() string {
	labels := make([]string, len(a))
	for i := range a {
		labels[i] = a[i].Label
	}
	return strings.Join(labels, " / ")
}

// StopPropagation returns a click handler that stops
// the propagation of the event before calling fn.
func StopPropagation(fn func()) func(*ClickEvent) {
	return func(event *ClickEvent) {
		event.StopPropagation()
		if fn != nil {
			fn()
		}
	}
}

// cellActions returns the actions of a cell value
// that is an Action, *Action, or Actions.
func cellActions(value any) Actions {
	switch v := value.(type) {
	case Action:
		return Actions{v}
	case *Action:
		if v != nil {
			return Actions{*v}
		}
	case Actions:
		return v
	}
	return nil
}
