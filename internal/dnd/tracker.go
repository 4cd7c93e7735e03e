package dnd

// Source is the item a gesture started on.
type Source struct {
	Kind DragKind
	ID   string
}

func (s Source) valid() bool {
	return s.Kind != 0 && s.ID != ""
}

type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeClick
	OutcomeDrop
)

type Outcome struct {
	Kind   OutcomeKind
	Source Source
	Drop   DragEnd
}

// Tracker follows one pointer gesture at a time. The zero value is usable
// with an activation distance of one cell.
type Tracker struct {
	threshold int

	armed    bool
	dragging bool
	source   Source
	startX   int
	startY   int
	over     string
}

// NewTracker returns a tracker that starts a drag once the pointer has moved
// threshold cells from the press position.
func NewTracker(threshold int) Tracker {
	return Tracker{threshold: threshold}
}

func (t *Tracker) activation() int {
	if t.threshold < 1 {
		return 1
	}
	return t.threshold
}

// Press arms a gesture on src. Presses on nothing clear any pending gesture.
func (t *Tracker) Press(src Source, x, y int) {
	t.Cancel()
	if !src.valid() {
		return
	}
	t.armed = true
	t.source = src
	t.startX, t.startY = x, y
}

// Move records pointer motion. It reports whether the drag state visibly
// changed (drag started or hover target changed).
func (t *Tracker) Move(x, y int, over string) bool {
	if !t.armed {
		return false
	}
	if !t.dragging {
		if distance(t.startX, t.startY, x, y) < t.activation() {
			return false
		}
		t.dragging = true
		t.over = over
		return true
	}
	if over == t.over {
		return false
	}
	t.over = over
	return true
}

// Release ends the gesture.
func (t *Tracker) Release(x, y int, over string) Outcome {
	if !t.armed {
		return Outcome{}
	}
	src := t.source
	dragging := t.dragging || distance(t.startX, t.startY, x, y) >= t.activation()
	t.Cancel()
	if !dragging {
		return Outcome{Kind: OutcomeClick, Source: src}
	}
	return Outcome{
		Kind:   OutcomeDrop,
		Source: src,
		Drop:   DragEnd{Kind: src.Kind, DraggedID: src.ID, DropTargetID: over},
	}
}

func (t *Tracker) Cancel() {
	threshold := t.threshold
	*t = Tracker{threshold: threshold}
}

// Dragging returns the dragged source while a drag is in progress.
func (t Tracker) Dragging() (Source, bool) {
	return t.source, t.dragging
}

// Pressed returns the armed source, dragging or not.
func (t Tracker) Pressed() (Source, bool) {
	return t.source, t.armed
}

// Over returns the hovered target id during a drag.
func (t Tracker) Over() string {
	if !t.dragging {
		return ""
	}
	return t.over
}

func distance(x1, y1, x2, y2 int) int {
	return max(abs(x2-x1), abs(y2-y1))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
