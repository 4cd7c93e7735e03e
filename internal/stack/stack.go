// Package stack is the ordered list of placed ingredient instances.
//
// A Stack is treated as a value: every mutation returns a new *Stack and
// leaves the receiver untouched. Operations that would not change the order
// return the receiver itself, so callers can compare pointers to detect a
// no-op.
package stack

import (
	"slices"

	"github.com/google/uuid"

	"github.com/jask/sandwich/internal/catalog"
)

// Instance is one placement of a template on the stack.
type Instance struct {
	ID       string
	Template catalog.Template
}

// IDSource generates instance ids.
type IDSource func() string

type Option func(*Stack)

// WithIDSource replaces the uuid generator, mainly for tests.
func WithIDSource(src IDSource) Option {
	return func(s *Stack) {
		if src != nil {
			s.newID = src
		}
	}
}

type Stack struct {
	items []Instance
	newID IDSource
}

func New(opts ...Option) *Stack {
	s := &Stack{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Stack) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns a copy of the instances in stacking order.
func (s *Stack) Items() []Instance {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

func (s *Stack) At(index int) (Instance, bool) {
	if s == nil || index < 0 || index >= len(s.items) {
		return Instance{}, false
	}
	return s.items[index], true
}

// IndexOf returns the position of id, or -1.
func (s *Stack) IndexOf(id string) int {
	if s == nil {
		return -1
	}
	return slices.IndexFunc(s.items, func(in Instance) bool { return in.ID == id })
}

func (s *Stack) Contains(id string) bool {
	return s.IndexOf(id) >= 0
}

// Append places template at the end with a fresh instance id.
func (s *Stack) Append(t catalog.Template) *Stack {
	if s == nil {
		s = New()
	}
	next := s.derive(len(s.items) + 1)
	next.items = append(next.items, s.items...)
	next.items = append(next.items, Instance{ID: s.uniqueID(), Template: t})
	return next
}

// RemoveByID drops the instance with id. An unknown id is a no-op.
func (s *Stack) RemoveByID(id string) *Stack {
	idx := s.IndexOf(id)
	if idx < 0 {
		return s
	}
	next := s.derive(len(s.items) - 1)
	next.items = append(next.items, s.items[:idx]...)
	next.items = append(next.items, s.items[idx+1:]...)
	return next
}

// MoveTo takes the instance out and reinserts it at target, clamped to the
// bounds of the remaining list. Unknown ids and moves that land on the
// current position are no-ops.
func (s *Stack) MoveTo(id string, target int) *Stack {
	from := s.IndexOf(id)
	if from < 0 {
		return s
	}
	to := min(max(target, 0), len(s.items)-1)
	if to == from {
		return s
	}
	moved := s.items[from]
	rest := slices.Delete(slices.Clone(s.items), from, from+1)
	return &Stack{items: slices.Insert(rest, to, moved), newID: s.newID}
}

// Clear drops every layer, keeping the id source. Clearing an empty stack
// is a no-op.
func (s *Stack) Clear() *Stack {
	if s.Len() == 0 {
		return s
	}
	return &Stack{newID: s.newID}
}

func (s *Stack) derive(capacity int) *Stack {
	return &Stack{items: make([]Instance, 0, max(capacity, 0)), newID: s.newID}
}

// maxIDAttempts bounds retries against a custom source before falling back
// to uuid.
const maxIDAttempts = 8

func (s *Stack) uniqueID() string {
	gen := s.newID
	if gen == nil {
		gen = uuid.NewString
	}
	for range maxIDAttempts {
		if id := gen(); id != "" && !s.Contains(id) {
			return id
		}
	}
	for {
		if id := uuid.NewString(); !s.Contains(id) {
			return id
		}
	}
}
