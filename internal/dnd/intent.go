package dnd

import (
	"github.com/jask/sandwich/internal/catalog"
	"github.com/jask/sandwich/internal/stack"
)

// StackContainerID identifies the stack area itself as a drop target.
const StackContainerID = "stack"

// PaletteContainerID identifies the palette as a drop target. It is a valid
// target but never inside the stack region.
const PaletteContainerID = "palette"

type DragKind int

const (
	KindTemplate DragKind = iota + 1
	KindInstance
)

func (k DragKind) String() string {
	switch k {
	case KindTemplate:
		return "template"
	case KindInstance:
		return "placedInstance"
	default:
		return "unknown"
	}
}

// DragEnd is the signal emitted when a drag is released. An empty
// DropTargetID means the pointer was not over any recognised target.
type DragEnd struct {
	Kind         DragKind
	DraggedID    string
	DropTargetID string
}

type IntentKind int

const (
	IntentIgnore IntentKind = iota
	IntentAppend
	IntentReorder
)

func (k IntentKind) String() string {
	switch k {
	case IntentAppend:
		return "append"
	case IntentReorder:
		return "reorder"
	default:
		return "ignore"
	}
}

// Intent is the classified outcome of a drag-end.
type Intent struct {
	Kind        IntentKind
	Template    catalog.Template
	InstanceID  string
	TargetIndex int
	// Reason explains an ignored drop.
	Reason string
}

func ignore(reason string) Intent {
	return Intent{Kind: IntentIgnore, Reason: reason}
}

// Resolve classifies ev against the current stack and catalog.
func Resolve(ev DragEnd, s *stack.Stack, cat *catalog.Catalog) Intent {
	if ev.DropTargetID == "" {
		return ignore("no drop target")
	}
	onContainer := ev.DropTargetID == StackContainerID
	if !onContainer && !s.Contains(ev.DropTargetID) {
		return ignore("drop target outside stack")
	}

	switch ev.Kind {
	case KindTemplate:
		t, ok := cat.Lookup(ev.DraggedID)
		if !ok {
			return ignore("unknown template " + ev.DraggedID)
		}
		return Intent{Kind: IntentAppend, Template: t}
	case KindInstance:
		from := s.IndexOf(ev.DraggedID)
		if from < 0 {
			return ignore("dragged instance not on stack")
		}
		to := s.Len()
		if !onContainer {
			to = s.IndexOf(ev.DropTargetID)
		}
		if from == to {
			return ignore("unchanged position")
		}
		return Intent{Kind: IntentReorder, InstanceID: ev.DraggedID, TargetIndex: to}
	default:
		return ignore("unknown drag kind")
	}
}

// Apply performs the intent on s. Ignored intents return s unchanged.
func (i Intent) Apply(s *stack.Stack) *stack.Stack {
	switch i.Kind {
	case IntentAppend:
		return s.Append(i.Template)
	case IntentReorder:
		return s.MoveTo(i.InstanceID, i.TargetIndex)
	default:
		return s
	}
}
