package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetCreatesSectionsInOrder(t *testing.T) {
	d := NewDocument()
	d.Set("B", "y", "2")
	d.Set("A", "x", "1")
	d.Set("B", "z", "3")

	if diff := cmp.Diff([]string{"B", "A"}, d.Sections()); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
	if v, ok := d.Get("B", "z"); !ok || v != "3" {
		t.Fatalf("Get(B, z) = %q, %v", v, ok)
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
}

func TestSetUpdatesInPlaceKeepingPosition(t *testing.T) {
	d := NewDocument()
	s := d.EnsureSection("A")
	s.Set("first", "1")
	s.Set("second", "2")
	s.Set("first", "updated")

	if diff := cmp.Diff([]string{"first", "second"}, s.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
	if v, _ := s.Get("first"); v != "updated" {
		t.Fatalf("Get(first) = %q", v)
	}
}

func TestGetDistinguishesUnsetFromEmpty(t *testing.T) {
	d := NewDocument()
	d.Set("A", "x", "")

	if v, ok := d.Get("A", "x"); !ok || v != "" {
		t.Fatalf("Get(A, x) = %q, %v; want empty string, true", v, ok)
	}
	if _, ok := d.Get("A", "y"); ok {
		t.Fatal("unset key reported as present")
	}
}

func TestDeleteRemovesKeyAndReindexes(t *testing.T) {
	d := NewDocument()
	s := d.EnsureSection("A")
	s.Set("a", "1")
	s.Set("b", "2")
	s.Set("c", "3")

	if !d.Delete("A", "b") {
		t.Fatal("Delete(existing) = false")
	}
	if d.Delete("A", "b") {
		t.Fatal("Delete(removed) = true")
	}
	if diff := cmp.Diff([]string{"a", "c"}, s.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, ok := s.Get("c"); !ok || v != "3" {
		t.Fatalf("Get(c) after delete = %q, %v", v, ok)
	}
}

func TestFlattenFirstSectionWins(t *testing.T) {
	d := NewDocument()
	d.Set("Input", "bEnableMouseSmoothing", "False")
	d.Set("Engine", "bEnableMouseSmoothing", "True")
	d.Set("Engine", "bSmoothFrameRate", "True")

	want := map[string]string{
		"bEnableMouseSmoothing": "False",
		"bSmoothFrameRate":      "True",
	}
	if diff := cmp.Diff(want, d.Flatten()); diff != "" {
		t.Fatalf("Flatten() mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d := NewDocument()
	d.AppendPreamble("; header")
	d.Set("A", "x", "1")

	c := d.Clone()
	c.Set("A", "x", "2")
	c.Set("B", "y", "3")

	if v, _ := d.Get("A", "x"); v != "1" {
		t.Fatalf("clone mutation leaked: Get(A, x) = %q", v)
	}
	if _, ok := d.Lookup("B"); ok {
		t.Fatal("clone mutation added a section to the original")
	}
	if diff := cmp.Diff(d.Preamble(), c.Preamble()); diff != "" {
		t.Fatalf("preamble mismatch (-want +got):\n%s", diff)
	}
}

func TestMutationSeparatesNewSectionWithBlank(t *testing.T) {
	d := NewDocument()
	d.Set("A", "x", "1")
	d.Set("B", "y", "2")

	a, _ := d.Lookup("A")
	entries := a.Entries()
	last := entries[len(entries)-1]
	if !last.IsRaw || last.Raw != "" {
		t.Fatalf("section A does not end with a blank separator: %+v", last)
	}

	// but not twice
	d.Set("C", "z", "3")
	b, _ := d.Lookup("B")
	count := 0
	for _, e := range b.Entries() {
		if e.IsRaw && e.Raw == "" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("section B has %d blank separators, want 1", count)
	}
}
