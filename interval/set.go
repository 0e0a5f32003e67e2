package interval

import "sort"

// A Set accumulates raw intervals and exposes them as a minimal merged
// cover: sorted ascending by start, pairwise disjoint, with runs closer
// than the configured gap threshold coalesced into single intervals.
//
// Sets are built in two phases: add everything, then read the merged
// view through [Set.Intervals](). Reading is cheap to repeat; the merge
// is recomputed only after new additions.
type Set struct {
	maxGap int
	raw    []Interval
	merged []Interval
	dirty  bool
}

// Creates an empty [Set]. Two intervals separated by a gap of fewer than
// maxGap uncovered frames are merged into one; maxGap 1 therefore merges
// exactly the adjacent intervals produced by per-frame observations
// ([10, 11) and [11, 12) merge, [10, 11) and [12, 13) do not).
//
// maxGap below 1 is treated as 1.
func NewSet(maxGap int) *Set {
	if maxGap < 1 { maxGap = 1 }
	return &Set{maxGap: maxGap}
}

// Adds an interval to the set. Empty intervals are ignored.
func (self *Set) Add(iv Interval) {
	if iv.Empty() { return }
	self.raw = append(self.raw, iv)
	self.dirty = true
}

// Adds the singleton interval [frame, frame + 1).
func (self *Set) AddFrame(frame int) {
	self.Add(Interval{frame, frame + 1})
}

// Returns the minimal merged cover of everything added so far. The
// returned slice is owned by the set and must not be mutated.
func (self *Set) Intervals() []Interval {
	if self.dirty { self.remerge() }
	return self.merged
}

// Returns whether any merged interval contains the given frame.
func (self *Set) Contains(frame int) bool {
	intervals := self.Intervals()
	n := sort.Search(len(intervals), func(i int) bool {
		return intervals[i].End > frame
	})
	return n < len(intervals) && intervals[n].Contains(frame)
}

// Returns the bounding span [firstStart, lastEnd) of the merged cover,
// or an empty interval if the set is empty.
func (self *Set) Span() Interval {
	intervals := self.Intervals()
	if len(intervals) == 0 { return Interval{} }
	return Interval{intervals[0].Start, intervals[len(intervals) - 1].End}
}

// Sort ascending by start, then scan left to right merging each interval
// into the running group while it falls within the gap threshold.
func (self *Set) remerge() {
	self.dirty = false
	self.merged = self.merged[:0]
	if len(self.raw) == 0 { return }

	sorted := make([]Interval, len(self.raw))
	copy(sorted, self.raw)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	current := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start - current.End < self.maxGap {
			// Bounding union. Not Interval.Merge: with maxGap > 1 the
			// two intervals are allowed to be fully disjoint here.
			if next.End > current.End { current.End = next.End }
		} else {
			self.merged = append(self.merged, current)
			current = next
		}
	}
	self.merged = append(self.merged, current)
}
