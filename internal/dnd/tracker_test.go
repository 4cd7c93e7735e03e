package dnd

import "testing"

func TestTrackerClick(t *testing.T) {
	tr := NewTracker(2)
	src := Source{Kind: KindTemplate, ID: "top-bun"}
	tr.Press(src, 5, 5)
	if tr.Move(6, 5, "palette") {
		t.Fatalf("motion below threshold should not start a drag")
	}
	if _, dragging := tr.Dragging(); dragging {
		t.Fatalf("unexpected drag")
	}
	out := tr.Release(6, 5, "palette")
	if out.Kind != OutcomeClick || out.Source != src {
		t.Fatalf("outcome = %+v, want click on %v", out, src)
	}
	if _, pressed := tr.Pressed(); pressed {
		t.Fatalf("release should clear the gesture")
	}
}

func TestTrackerDrag(t *testing.T) {
	tr := NewTracker(1)
	src := Source{Kind: KindInstance, ID: "p1"}
	tr.Press(src, 40, 4)
	if !tr.Move(40, 6, "p3") {
		t.Fatalf("motion past threshold should start a drag")
	}
	if got, dragging := tr.Dragging(); !dragging || got != src {
		t.Fatalf("dragging = %v %+v", dragging, got)
	}
	if tr.Over() != "p3" {
		t.Fatalf("over = %q, want p3", tr.Over())
	}
	if tr.Move(41, 6, "p3") {
		t.Fatalf("same hover target should not report a change")
	}
	if !tr.Move(41, 7, StackContainerID) {
		t.Fatalf("new hover target should report a change")
	}
	out := tr.Release(41, 9, "")
	want := DragEnd{Kind: KindInstance, DraggedID: "p1"}
	if out.Kind != OutcomeDrop || out.Drop != want {
		t.Fatalf("outcome = %+v, want drop %+v", out, want)
	}
}

func TestTrackerReleaseFarWithoutMotion(t *testing.T) {
	tr := Tracker{}
	tr.Press(Source{Kind: KindTemplate, ID: "patty"}, 2, 4)
	out := tr.Release(50, 4, StackContainerID)
	if out.Kind != OutcomeDrop || out.Drop.DropTargetID != StackContainerID {
		t.Fatalf("outcome = %+v, want drop on stack", out)
	}
}

func TestTrackerIgnoresEmptyPress(t *testing.T) {
	tr := NewTracker(1)
	tr.Press(Source{}, 1, 1)
	if tr.Move(10, 10, "stack") {
		t.Fatalf("no gesture should be armed")
	}
	if out := tr.Release(10, 10, "stack"); out.Kind != OutcomeNone {
		t.Fatalf("outcome = %+v, want none", out)
	}
}

func TestTrackerCancel(t *testing.T) {
	tr := NewTracker(3)
	tr.Press(Source{Kind: KindTemplate, ID: "patty"}, 0, 0)
	tr.Move(10, 0, "stack")
	tr.Cancel()
	if out := tr.Release(10, 0, "stack"); out.Kind != OutcomeNone {
		t.Fatalf("cancelled gesture should not produce an outcome: %+v", out)
	}
	tr.Press(Source{Kind: KindTemplate, ID: "patty"}, 0, 0)
	if tr.Move(2, 0, "stack") {
		t.Fatalf("threshold should survive cancel")
	}
}
