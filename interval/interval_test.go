package interval

import "testing"

import "github.com/google/go-cmp/cmp"

func TestContains(t *testing.T) {
	tests := []struct {
		iv    Interval
		frame int
		out   bool
	}{
		{Interval{0, 1}, 0, true},
		{Interval{0, 1}, 1, false},
		{Interval{10, 13}, 9, false},
		{Interval{10, 13}, 10, true},
		{Interval{10, 13}, 12, true},
		{Interval{10, 13}, 13, false},
		{Interval{5, 5}, 5, false}, // empty
	}

	for i, test := range tests {
		out := test.iv.Contains(test.frame)
		if out != test.out {
			t.Fatalf("test #%d: %v.Contains(%d) expected %t, got %t",
				i, test.iv, test.frame, test.out, out)
		}
	}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		a, b Interval
		out  bool
	}{
		{Interval{0, 1}, Interval{1, 2}, true}, // adjacency counts
		{Interval{1, 2}, Interval{0, 1}, true},
		{Interval{0, 1}, Interval{2, 3}, false},
		{Interval{0, 5}, Interval{3, 8}, true},
		{Interval{3, 8}, Interval{0, 5}, true},
		{Interval{0, 10}, Interval{3, 4}, true},
		{Interval{10, 13}, Interval{15, 17}, false},
	}

	for i, test := range tests {
		out := test.a.Intersects(test.b)
		if out != test.out {
			t.Fatalf("test #%d: %v.Intersects(%v) expected %t, got %t",
				i, test.a, test.b, test.out, out)
		}
	}
}

func TestOverlaps(t *testing.T) {
	// adjacency is not enough for strict overlap
	if (Interval{0, 1}).Overlaps(Interval{1, 2}) {
		t.Fatalf("[0,1) must not overlap [1,2)")
	}
	if !(Interval{0, 5}).Overlaps(Interval{4, 9}) {
		t.Fatalf("[0,5) must overlap [4,9)")
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		a, b, out Interval
	}{
		{Interval{0, 1}, Interval{1, 2}, Interval{0, 2}},
		{Interval{3, 8}, Interval{0, 5}, Interval{0, 8}},
		{Interval{0, 10}, Interval{3, 4}, Interval{0, 10}},
	}

	for i, test := range tests {
		out := test.a.Merge(test.b)
		if out != test.out {
			t.Fatalf("test #%d: %v.Merge(%v) expected %v, got %v",
				i, test.a, test.b, test.out, out)
		}
	}
}

func TestIntersection(t *testing.T) {
	tests := []struct {
		a, b  Interval
		out   Interval
		empty bool
	}{
		{Interval{0, 5}, Interval{3, 8}, Interval{3, 5}, false},
		{Interval{0, 10}, Interval{3, 4}, Interval{3, 4}, false},
		{Interval{0, 1}, Interval{1, 2}, Interval{}, true}, // adjacency shares no frames
		{Interval{0, 1}, Interval{5, 6}, Interval{}, true},
	}

	for i, test := range tests {
		out := test.a.Intersection(test.b)
		if out.Empty() != test.empty {
			t.Fatalf("test #%d: empty expected %t, got %v", i, test.empty, out)
		}
		if !test.empty && out != test.out {
			t.Fatalf("test #%d: %v.Intersection(%v) expected %v, got %v",
				i, test.a, test.b, test.out, out)
		}
	}
}

func TestDifference(t *testing.T) {
	tests := []struct {
		a, b Interval
		out  []Interval
	}{
		{Interval{0, 10}, Interval{3, 5}, []Interval{{0, 3}, {5, 10}}}, // split in two
		{Interval{0, 10}, Interval{0, 5}, []Interval{{5, 10}}},        // left chopped
		{Interval{0, 10}, Interval{5, 10}, []Interval{{0, 5}}},        // right chopped
		{Interval{0, 10}, Interval{0, 10}, nil},                       // fully covered
		{Interval{0, 10}, Interval{-5, 15}, nil},
		{Interval{0, 10}, Interval{10, 15}, []Interval{{0, 10}}}, // adjacent: untouched
		{Interval{0, 10}, Interval{20, 25}, []Interval{{0, 10}}},
	}

	for i, test := range tests {
		out := test.a.Difference(test.b)
		if diff := cmp.Diff(test.out, out); diff != "" {
			t.Fatalf("test #%d: %v.Difference(%v) mismatch (-want +got):\n%s",
				i, test.a, test.b, diff)
		}
	}
}
