package interval

import "sort"

// An Entry associates an entity id with its overall presence span.
type Entry struct {
	ID   int
	Span Interval
}

// A Tree is a static centered interval tree over entity presence spans.
// It answers "which entities have a span overlapping this frame range"
// queries in O(log n + k).
//
// Trees are built once, after all observations have been ingested and
// presence intervals merged, and are immutable afterwards.
type Tree struct {
	root *treeNode
}

type treeNode struct {
	center  int
	left    *treeNode
	right   *treeNode
	byStart []Entry // entries crossing center, ascending Span.Start
	byEnd   []Entry // same entries, descending Span.End
}

// Builds a [Tree] from the given entries. Entries with empty spans are
// ignored. The input slice is not retained.
func NewTree(entries []Entry) *Tree {
	var valid []Entry
	for _, entry := range entries {
		if !entry.Span.Empty() {
			valid = append(valid, entry)
		}
	}
	return &Tree{root: buildTreeNode(valid)}
}

// Returns the ids of every entry whose span shares at least one frame
// with the query interval, in ascending id order. Adjacency does not
// count here: the query [5, 6) does not match the span [6, 9).
//
// An empty query returns nil.
func (self *Tree) Overlapping(query Interval) []int {
	if query.Empty() { return nil }
	var ids []int
	ids = self.root.collect(query, ids)
	sort.Ints(ids)
	return ids
}

func buildTreeNode(entries []Entry) *treeNode {
	if len(entries) == 0 { return nil }

	// center on the median of span midpoints to keep the tree balanced
	midpoints := make([]int, len(entries))
	for i, entry := range entries {
		midpoints[i] = entry.Span.Start + entry.Span.Len()/2
	}
	sort.Ints(midpoints)
	center := midpoints[len(midpoints)/2]

	node := &treeNode{center: center}
	var leftEntries, rightEntries []Entry
	for _, entry := range entries {
		switch {
		case entry.Span.End <= center:
			leftEntries = append(leftEntries, entry)
		case entry.Span.Start > center:
			rightEntries = append(rightEntries, entry)
		default:
			node.byStart = append(node.byStart, entry)
		}
	}

	node.byEnd = make([]Entry, len(node.byStart))
	copy(node.byEnd, node.byStart)
	sort.Slice(node.byStart, func(i, j int) bool {
		return node.byStart[i].Span.Start < node.byStart[j].Span.Start
	})
	sort.Slice(node.byEnd, func(i, j int) bool {
		return node.byEnd[i].Span.End > node.byEnd[j].Span.End
	})
	node.left = buildTreeNode(leftEntries)
	node.right = buildTreeNode(rightEntries)
	return node
}

func (self *treeNode) collect(query Interval, ids []int) []int {
	if self == nil { return ids }

	switch {
	case query.Contains(self.center):
		// every entry crossing the center overlaps the query
		for _, entry := range self.byStart {
			ids = append(ids, entry.ID)
		}
		ids = self.left.collect(query, ids)
		ids = self.right.collect(query, ids)
	case query.End <= self.center:
		// query lies left of center: crossing entries overlap iff
		// they start before the query ends
		for _, entry := range self.byStart {
			if entry.Span.Start >= query.End { break }
			ids = append(ids, entry.ID)
		}
		ids = self.left.collect(query, ids)
	default:
		// query lies right of center
		for _, entry := range self.byEnd {
			if entry.Span.End <= query.Start { break }
			ids = append(ids, entry.ID)
		}
		ids = self.right.collect(query, ids)
	}
	return ids
}
