package interval

import "testing"

import "github.com/google/go-cmp/cmp"

func testTree() *Tree {
	return NewTree([]Entry{
		{ID: 5, Span: Interval{10, 17}},
		{ID: 7, Span: Interval{0, 21}},
		{ID: 9, Span: Interval{30, 36}},
		{ID: 13, Span: Interval{10, 12}},
		{ID: 21, Span: Interval{100, 101}},
		{ID: 22, Span: Interval{}}, // empty spans are dropped
	})
}

func TestTreeOverlapping(t *testing.T) {
	tree := testTree()
	tests := []struct {
		query Interval
		out   []int
	}{
		{Interval{0, 1}, []int{7}},
		{Interval{10, 11}, []int{5, 7, 13}},
		{Interval{20, 31}, []int{7, 9}},
		{Interval{36, 100}, nil},          // [30,36) ends before, [100,101) starts after
		{Interval{36, 101}, []int{21}},
		{Interval{0, 200}, []int{5, 7, 9, 13, 21}},
		{Interval{25, 30}, nil},
		{Interval{5, 5}, nil}, // empty query
	}

	for i, test := range tests {
		out := tree.Overlapping(test.query)
		if diff := cmp.Diff(test.out, out); diff != "" {
			t.Fatalf("test #%d: Overlapping(%v) mismatch (-want +got):\n%s",
				i, test.query, diff)
		}
	}
}

func TestTreeAdjacencyDoesNotCount(t *testing.T) {
	tree := testTree()
	// span [30,36): the query ending exactly at its start shares no frame
	if out := tree.Overlapping(Interval{28, 30}); len(out) != 0 {
		t.Fatalf("expected no overlap for touching query, got %v", out)
	}
	if out := tree.Overlapping(Interval{28, 31}); len(out) != 1 || out[0] != 9 {
		t.Fatalf("expected [9], got %v", out)
	}
}

func TestTreeEmpty(t *testing.T) {
	tree := NewTree(nil)
	if out := tree.Overlapping(Interval{0, 100}); out != nil {
		t.Fatalf("expected nil from empty tree, got %v", out)
	}
}

func TestTreeManyEntries(t *testing.T) {
	// brute-force comparison over a denser layout
	var entries []Entry
	for i := 0; i < 200; i++ {
		entries = append(entries, Entry{ID: i, Span: Interval{i * 3, i*3 + 7}})
	}
	tree := NewTree(entries)

	for _, query := range []Interval{{0, 10}, {50, 60}, {300, 400}, {599, 700}, {597, 598}} {
		var want []int
		for _, entry := range entries {
			if entry.Span.Overlaps(query) {
				want = append(want, entry.ID)
			}
		}
		if diff := cmp.Diff(want, tree.Overlapping(query)); diff != "" {
			t.Fatalf("Overlapping(%v) mismatch (-want +got):\n%s", query, diff)
		}
	}
}
