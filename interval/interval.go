package interval

// Interval represents the half-open frame range [Start, End).
//
// Intervals are used to describe the stretches of playback time during
// which a tracked entity has observations. A single observation at frame
// f corresponds to the singleton interval [f, f + 1).
type Interval struct {
	Start int
	End   int
}

// Returns whether the interval covers no frames at all.
func (self Interval) Empty() bool { return self.End <= self.Start }

// Returns the number of frames covered by the interval.
func (self Interval) Len() int {
	if self.Empty() { return 0 }
	return self.End - self.Start
}

// Returns whether Start <= frame < End.
func (self Interval) Contains(frame int) bool {
	return self.Start <= frame && frame < self.End
}

// Returns whether two intervals overlap or touch. Adjacency counts:
// [0, 1) and [1, 2) intersect under this rule. This is intentional, as
// Intersects drives merging, and observations on consecutive frames must
// coalesce into a single presence interval.
//
// For strict overlap (shared frames required), see [Interval.Overlaps]().
func (self Interval) Intersects(other Interval) bool {
	return !(self.End < other.Start || other.End < self.Start)
}

// Returns whether two intervals share at least one frame. Unlike
// [Interval.Intersects](), adjacent intervals do not overlap.
func (self Interval) Overlaps(other Interval) bool {
	return self.Start < other.End && other.Start < self.End
}

// Returns the bounding union [min(Starts), max(Ends)).
//
// Precondition: the intervals must intersect (adjacency included, see
// [Interval.Intersects]()). Calling Merge on disjoint intervals is a
// caller error and the result is undefined; no runtime check is made.
func (self Interval) Merge(other Interval) Interval {
	merged := self
	if other.Start < merged.Start { merged.Start = other.Start }
	if other.End > merged.End { merged.End = other.End }
	return merged
}

// Returns the overlapping sub-interval of the two intervals. If they
// share no frames the result is empty (check with [Interval.Empty]()).
func (self Interval) Intersection(other Interval) Interval {
	result := self
	if other.Start > result.Start { result.Start = other.Start }
	if other.End < result.End { result.End = other.End }
	if result.End < result.Start { result.End = result.Start }
	return result
}

// Returns self minus other as zero, one or two sub-intervals.
func (self Interval) Difference(other Interval) []Interval {
	if self.Empty() { return nil }
	if !self.Overlaps(other) {
		return []Interval{self}
	}

	var parts []Interval
	if self.Start < other.Start {
		parts = append(parts, Interval{self.Start, other.Start})
	}
	if other.End < self.End {
		parts = append(parts, Interval{other.End, self.End})
	}
	return parts
}
