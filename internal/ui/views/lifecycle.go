package views

// State identifies which interactive mode, if any, a list view is in
type State int

const (
	StateIdle State = iota
	StateEditing            // editing a pending item's title/category
	StateAwaitingComment    // collecting a completion comment for a pending item
	StateEditingDoneComment // editing a done item's comment
)

// Lifecycle is the one-active-editor discipline for a list view: at most
// one item is being edited or awaiting a completion comment at any time.
// Entering an interactive state for item B while item A is active discards
// A's in-progress buffer silently; the caller resets its inputs on every
// transition, so no state leaks between targets.
type Lifecycle struct {
	state  State
	itemID string
}

// State returns the current state
func (l Lifecycle) State() State {
	return l.state
}

// ItemID returns the item the current state targets, or "" when idle
func (l Lifecycle) ItemID() string {
	if l.state == StateIdle {
		return ""
	}
	return l.itemID
}

// Active reports whether any interactive state is held
func (l Lifecycle) Active() bool {
	return l.state != StateIdle
}

// Targets reports whether the view is in the given state for the given item
func (l Lifecycle) Targets(state State, id string) bool {
	return l.state == state && l.itemID == id
}

// StartEdit begins editing a pending item, displacing whatever was active
func (l Lifecycle) StartEdit(id string) Lifecycle {
	return Lifecycle{state: StateEditing, itemID: id}
}

// StartComplete begins collecting a completion comment for a pending item
func (l Lifecycle) StartComplete(id string) Lifecycle {
	return Lifecycle{state: StateAwaitingComment, itemID: id}
}

// StartCommentEdit begins editing a done item's comment
func (l Lifecycle) StartCommentEdit(id string) Lifecycle {
	return Lifecycle{state: StateEditingDoneComment, itemID: id}
}

// Finish returns to idle, on save and cancel alike
func (l Lifecycle) Finish() Lifecycle {
	return Lifecycle{}
}
