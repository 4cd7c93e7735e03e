package stack

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jask/sandwich/internal/catalog"
)

var (
	bread   = catalog.Template{ID: "bread", Name: "Bread"}
	lettuce = catalog.Template{ID: "lettuce", Name: "Lettuce"}
	tomato  = catalog.Template{ID: "tomato", Name: "Tomato"}
)

func sequentialIDs() IDSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// abc builds [A,B,C] with ids id-1..id-3.
func abc(t *testing.T) *Stack {
	t.Helper()
	return New(WithIDSource(sequentialIDs())).Append(bread).Append(lettuce).Append(tomato)
}

func ids(s *Stack) []string {
	out := make([]string, 0, s.Len())
	for _, in := range s.Items() {
		out = append(out, in.ID)
	}
	return out
}

func TestAppend(t *testing.T) {
	empty := New(WithIDSource(sequentialIDs()))
	s := empty.Append(bread)
	if s.Len() != 1 || empty.Len() != 0 {
		t.Fatalf("append should grow a copy: got %d, receiver %d", s.Len(), empty.Len())
	}
	got, _ := s.At(0)
	if got.Template != bread || got.ID != "id-1" {
		t.Fatalf("unexpected instance %+v", got)
	}
	s2 := s.Append(bread)
	if s2.Len() != 2 {
		t.Fatalf("len = %d, want 2", s2.Len())
	}
	first, _ := s2.At(0)
	second, _ := s2.At(1)
	if first.ID == second.ID {
		t.Fatalf("same template twice must get distinct ids")
	}
}

func TestAppendRetriesDuplicateIDs(t *testing.T) {
	calls := 0
	src := func() string {
		calls++
		if calls <= 2 {
			return "dup"
		}
		return fmt.Sprintf("id-%d", calls)
	}
	s := New(WithIDSource(src)).Append(bread).Append(lettuce)
	if diff := cmp.Diff([]string{"dup", "id-3"}, ids(s)); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	stuck := New(WithIDSource(func() string { return "same" })).Append(bread).Append(bread)
	a, _ := stuck.At(0)
	b, _ := stuck.At(1)
	if a.ID == b.ID {
		t.Fatalf("stuck id source must still yield unique ids")
	}
}

func TestRemoveByID(t *testing.T) {
	s := abc(t)
	got := s.RemoveByID("id-2")
	if diff := cmp.Diff([]string{"id-1", "id-3"}, ids(got)); diff != "" {
		t.Fatalf("remove mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 3 {
		t.Fatalf("receiver must be unchanged")
	}
	if same := s.RemoveByID("missing"); same != s {
		t.Fatalf("removing an absent id should return the receiver")
	}
}

func TestMoveTo(t *testing.T) {
	cases := []struct {
		name   string
		id     string
		target int
		want   []string
	}{
		{name: "last to front", id: "id-3", target: 0, want: []string{"id-3", "id-1", "id-2"}},
		{name: "front to last", id: "id-1", target: 2, want: []string{"id-2", "id-3", "id-1"}},
		{name: "middle down", id: "id-2", target: 2, want: []string{"id-1", "id-3", "id-2"}},
		{name: "clamp high", id: "id-1", target: 99, want: []string{"id-2", "id-3", "id-1"}},
		{name: "clamp low", id: "id-2", target: -5, want: []string{"id-2", "id-1", "id-3"}},
		{name: "length moves to end", id: "id-2", target: 3, want: []string{"id-1", "id-3", "id-2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := abc(t)
			got := s.MoveTo(tc.id, tc.target)
			if diff := cmp.Diff(tc.want, ids(got)); diff != "" {
				t.Fatalf("order mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]string{"id-1", "id-2", "id-3"}, ids(s)); diff != "" {
				t.Fatalf("receiver mutated (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMoveToNoOps(t *testing.T) {
	s := abc(t)
	if got := s.MoveTo("id-2", 1); got != s {
		t.Fatalf("moving to the current index should return the receiver")
	}
	if got := s.MoveTo("id-3", 3); got != s {
		t.Fatalf("moving the last item to the end should return the receiver")
	}
	if got := s.MoveTo("missing", 0); got != s {
		t.Fatalf("moving an absent id should return the receiver")
	}
}

func TestMovePreservesInstances(t *testing.T) {
	s := abc(t).Append(bread).Append(lettuce)
	before := map[string]catalog.Template{}
	for _, in := range s.Items() {
		before[in.ID] = in.Template
	}
	for from := 0; from < s.Len(); from++ {
		for to := 0; to <= s.Len(); to++ {
			in, _ := s.At(from)
			got := s.MoveTo(in.ID, to)
			if got.Len() != s.Len() {
				t.Fatalf("move %d->%d changed length to %d", from, to, got.Len())
			}
			seen := map[string]bool{}
			for _, moved := range got.Items() {
				if seen[moved.ID] {
					t.Fatalf("move %d->%d duplicated %s", from, to, moved.ID)
				}
				seen[moved.ID] = true
				if before[moved.ID] != moved.Template {
					t.Fatalf("move %d->%d changed template of %s", from, to, moved.ID)
				}
			}
		}
	}
}

func TestAccessors(t *testing.T) {
	s := abc(t)
	if s.IndexOf("id-3") != 2 || s.IndexOf("nope") != -1 {
		t.Fatalf("unexpected index lookups")
	}
	if !s.Contains("id-1") || s.Contains("nope") {
		t.Fatalf("unexpected contains results")
	}
	if _, ok := s.At(3); ok {
		t.Fatalf("At past the end should miss")
	}
	items := s.Items()
	items[0].ID = "changed"
	if s.IndexOf("changed") != -1 {
		t.Fatalf("Items must return a copy")
	}

	var nilStack *Stack
	if nilStack.Len() != 0 || nilStack.IndexOf("x") != -1 {
		t.Fatalf("nil stack should behave as empty")
	}
	if nilStack.Append(bread).Len() != 1 {
		t.Fatalf("append on nil stack should work")
	}
}

func TestClear(t *testing.T) {
	s := abc(t)
	cleared := s.Clear()
	if cleared.Len() != 0 || s.Len() != 3 {
		t.Fatalf("clear should empty a copy: got %d, receiver %d", cleared.Len(), s.Len())
	}
	if same := cleared.Clear(); same != cleared {
		t.Fatalf("clearing an empty stack should return the receiver")
	}
	next := cleared.Append(bread)
	if got, _ := next.At(0); got.ID != "id-4" {
		t.Fatalf("cleared stack should keep the id source, got %q", got.ID)
	}
}
