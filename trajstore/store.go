// trajstore indexes raw per-frame observations of tracked entities for
// playback-time queries: who is on screen at a frame, what path did an
// entity follow up to a frame, and which entities first appear inside a
// skipped frame range.
//
// A [Store] is built in two phases: every observation and metadata
// record is ingested up front, presence intervals are merged, and only
// then is the range index built from the final merged spans. After
// construction the store is immutable and may be queried freely from
// any call site without synchronization.
package trajstore

import "sort"

import "github.com/jackft/iw/interval"

// An Observation is one raw position sample: entity entityID stood at
// (x, y) on the given frame. Observations are immutable inputs; the
// store re-exposes them as [Point] values with the entity's metadata
// attached.
type Observation struct {
	EntityID int
	Frame    int
	X        float64
	Y        float64
}

// A Point is one indexed trajectory sample. Meta is a shared reference
// to the entity's attribute record, never a copy: every point of an
// entity aliases the same [Metadata].
type Point struct {
	Frame    int
	EntityID int
	X        float64
	Y        float64
	Meta     Metadata
}

// Store holds the full trajectory dataset, indexed per frame, per
// entity, and by presence span. See the package documentation for the
// construction and immutability contract.
type Store struct {
	frames   map[int][]*Point
	entities map[int][]*Point
	presence map[int][]interval.Interval
	lastSeen map[int]int // entity id -> last observed frame
	meta     map[int]Metadata
	tree     *interval.Tree
	ids      []int
	span     interval.Interval // bounding frame span of all observations
}

// Options adjust store construction.
type Options struct {
	// MergeGap is the presence-interval coalescing threshold, in frames.
	// Values below 1 fall back to 1: observations on consecutive frames
	// merge into one interval, observations further apart do not. See
	// [interval.NewSet]().
	MergeGap int
}

// Builds a [Store] from the complete dataset.
//
// Per-entity point sequences keep their insertion order; the store never
// re-sorts them. Feeding observations that are not frame-ordered within
// an entity is a precondition violation: presence intervals still come
// out right, but trajectory queries assume ordered sequences. The
// upstream preparation pipeline always emits frame-ordered records.
//
// Entities present in metadata but never observed get a metadata-only
// record: no points, no presence, and nothing is ever drawn for them.
// Observed entities missing from metadata get an empty attribute record;
// group keys for them degrade to [MissingAttribute] per attribute.
func New(observations []Observation, metadata map[int]Metadata, opts *Options) *Store {
	mergeGap := 1
	if opts != nil && opts.MergeGap > 1 { mergeGap = opts.MergeGap }

	store := &Store{
		frames:   make(map[int][]*Point),
		entities: make(map[int][]*Point),
		presence: make(map[int][]interval.Interval),
		lastSeen: make(map[int]int),
		meta:     make(map[int]Metadata, len(metadata)),
	}
	for id, record := range metadata {
		store.meta[id] = record
	}

	// phase one: ingest observations into the frame and entity indices
	sets := make(map[int]*interval.Set)
	for _, obs := range observations {
		record, found := store.meta[obs.EntityID]
		if !found {
			record = Metadata{}
			store.meta[obs.EntityID] = record
		}
		point := &Point{
			Frame:    obs.Frame,
			EntityID: obs.EntityID,
			X:        obs.X,
			Y:        obs.Y,
			Meta:     record,
		}
		store.frames[obs.Frame] = append(store.frames[obs.Frame], point)
		store.entities[obs.EntityID] = append(store.entities[obs.EntityID], point)

		set, found := sets[obs.EntityID]
		if !found {
			set = interval.NewSet(mergeGap)
			sets[obs.EntityID] = set
		}
		set.AddFrame(obs.Frame)

		last, found := store.lastSeen[obs.EntityID]
		if !found || obs.Frame > last {
			store.lastSeen[obs.EntityID] = obs.Frame
		}
		if store.span.Empty() {
			store.span = interval.Interval{obs.Frame, obs.Frame + 1}
		} else {
			if obs.Frame < store.span.Start { store.span.Start = obs.Frame }
			if obs.Frame >= store.span.End { store.span.End = obs.Frame + 1 }
		}
	}

	// phase two: freeze merged presence intervals, then build the range
	// index once from the final overall spans
	entries := make([]interval.Entry, 0, len(sets))
	for id, set := range sets {
		store.presence[id] = set.Intervals()
		entries = append(entries, interval.Entry{ID: id, Span: set.Span()})
	}
	store.tree = interval.NewTree(entries)

	store.ids = make([]int, 0, len(store.meta))
	for id := range store.meta {
		store.ids = append(store.ids, id)
	}
	sort.Ints(store.ids)
	return store
}

// Returns every distinct entity id in the dataset (observed or
// metadata-only), ascending. The returned slice must not be mutated.
func (self *Store) Entities() []int { return self.ids }

// Returns the metadata record for the entity, or nil if the id is
// unknown. Attribute lookups on a nil record degrade to
// [MissingAttribute].
func (self *Store) Meta(entityID int) Metadata { return self.meta[entityID] }

// Joins the entity's named attribute values with [GroupKeySeparator].
func (self *Store) GroupKey(entityID int, attributes ...string) string {
	return self.meta[entityID].GroupKey(attributes...)
}

// Returns the points observed at exactly the given frame, in insertion
// order. Positions are never interpolated: an entity with no observation
// at this exact frame is simply absent from the result. The returned
// slice must not be mutated.
func (self *Store) PointsAtFrame(frame int) []*Point {
	return self.frames[frame]
}

// Returns every point of the entity with Frame <= frame, used to redraw
// a trail from scratch after a backward seek. The result aliases the
// store's index; do not mutate.
func (self *Store) TrajectoryUpTo(entityID int, frame int) []*Point {
	points := self.entities[entityID]
	n := sort.Search(len(points), func(i int) bool { return points[i].Frame > frame })
	return points[:n]
}

// Returns every point of the entity with lo <= Frame <= hi, inclusive on
// both ends, used for incremental forward trail extension. The result
// aliases the store's index; do not mutate.
func (self *Store) TrajectoryBetween(entityID int, lo int, hi int) []*Point {
	points := self.entities[entityID]
	from := sort.Search(len(points), func(i int) bool { return points[i].Frame >= lo })
	to := sort.Search(len(points), func(i int) bool { return points[i].Frame > hi })
	if from >= to { return nil }
	return points[from:to]
}

// Returns the ids of entities whose overall presence span intersects the
// half-open-left range (prevFrame, frame], ascending. Used in persistence
// mode to backfill entities whose presence began inside a skipped frame
// range; the caller filters out entities already tracked on screen.
func (self *Store) NewlyAppearing(prevFrame int, frame int) []int {
	if frame <= prevFrame { return nil }
	return self.tree.Overlapping(interval.Interval{prevFrame + 1, frame + 1})
}

// Returns the entity's merged presence intervals: sorted, pairwise
// disjoint, non-adjacent, covering exactly its observed frames. Nil for
// unknown or never-observed entities. Do not mutate.
func (self *Store) Presence(entityID int) []interval.Interval {
	return self.presence[entityID]
}

// Returns the bounding span [firstStart, lastEnd) of the entity's
// presence, and whether the entity was observed at all.
func (self *Store) Span(entityID int) (interval.Interval, bool) {
	intervals := self.presence[entityID]
	if len(intervals) == 0 { return interval.Interval{}, false }
	return interval.Interval{intervals[0].Start, intervals[len(intervals) - 1].End}, true
}

// Returns the last frame at which the entity was observed, and whether
// the entity was observed at all.
func (self *Store) LastObserved(entityID int) (int, bool) {
	last, found := self.lastSeen[entityID]
	return last, found
}

// Returns the bounding frame span of the whole dataset. Empty if there
// are no observations.
func (self *Store) FrameSpan() interval.Interval { return self.span }
