package views

import (
	"testing"
)

func TestLifecycleStartsIdle(t *testing.T) {
	var l Lifecycle
	if l.Active() {
		t.Error("zero lifecycle should be idle")
	}
	if l.ItemID() != "" {
		t.Errorf("idle ItemID = %q", l.ItemID())
	}
}

func TestEditDisplacesEdit(t *testing.T) {
	var l Lifecycle
	l = l.StartEdit("a")
	if !l.Targets(StateEditing, "a") {
		t.Fatalf("expected editing a, got %v/%s", l.State(), l.ItemID())
	}

	// Requesting an edit on B while A is active swaps cleanly, no leak
	l = l.StartEdit("b")
	if !l.Targets(StateEditing, "b") {
		t.Fatalf("expected editing b, got %v/%s", l.State(), l.ItemID())
	}
	if l.Targets(StateEditing, "a") {
		t.Error("state for a leaked into b's edit")
	}
}

func TestInteractiveStatesAreExclusive(t *testing.T) {
	var l Lifecycle
	l = l.StartEdit("a")
	l = l.StartComplete("b")

	if l.State() != StateAwaitingComment || l.ItemID() != "b" {
		t.Fatalf("completion request should displace the edit: %v/%s", l.State(), l.ItemID())
	}
	// Exactly one state at a time
	if l.Targets(StateEditing, "a") || l.Targets(StateEditing, "b") {
		t.Error("editing state survived the completion request")
	}
}

func TestFinishReturnsToIdle(t *testing.T) {
	var l Lifecycle
	for _, start := range []func(Lifecycle) Lifecycle{
		func(l Lifecycle) Lifecycle { return l.StartEdit("x") },
		func(l Lifecycle) Lifecycle { return l.StartComplete("x") },
		func(l Lifecycle) Lifecycle { return l.StartCommentEdit("x") },
	} {
		l = start(l)
		if !l.Active() {
			t.Fatal("expected an active state")
		}
		l = l.Finish()
		if l.Active() || l.ItemID() != "" {
			t.Errorf("Finish left residue: %v/%s", l.State(), l.ItemID())
		}
	}
}
