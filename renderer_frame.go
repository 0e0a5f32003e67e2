package iw

import "github.com/jackft/iw/trajstore"

// The per-frame state machine. Each Render call transitions every
// entity geometry through one of the states described on the Renderer
// docs: absent, visible-forward, visible-reset, or departed (with the
// persistence sub-policies).

// Renders the given target frame. The frame number is caller-supplied
// and may move in any direction by any amount: forward play, speed
// changes and seeks are all the same call, and skipped intermediate
// frames are never rendered.
//
// Rendering the same frame twice in a row is idempotent.
func (self *Renderer) Render(frame int) {
	active := make(map[int]*trajstore.Point)
	for _, point := range self.store.PointsAtFrame(frame) {
		active[point.EntityID] = point
	}

	for _, id := range self.order {
		geometry := self.geometries[id]
		if geometry.parent == nil { continue } // no pane for it while tiled
		if point, onScreen := active[id]; onScreen {
			self.renderVisible(geometry, point, frame)
		} else {
			self.renderAbsent(geometry, frame)
		}
	}

	// In persistence mode, a jump of more than one frame may have
	// skipped right over an entity's entire presence interval; backfill
	// the ghost trails of everything that first appeared in the gap.
	if self.persist && self.prevFrame != NoFrame && frame > self.prevFrame+1 {
		self.backfillAppearing(self.prevFrame, frame)
	}

	self.prevFrame = frame
	if !self.initialized {
		self.initialized = true
		self.events.Initialized.Publish(struct{}{})
	}
}

// Resets every watermark and the persistence map, then renders. Used
// after global recolors and view-mode toggles so trails are rebuilt
// from scratch instead of leaving stale segments (e.g. segments in the
// old color) in place.
func (self *Renderer) FreshRender(frame int) {
	for _, geometry := range self.geometries {
		geometry.clearTrail()
		geometry.lastRenderedFrame = NoFrame
	}
	self.ghosted = make(map[int]bool)
	self.Render(frame)
}

// The entity has an observation at exactly this frame.
func (self *Renderer) renderVisible(geometry *EntityGeometry, point *trajstore.Point, frame int) {
	if geometry.filtered { return }

	watermark := geometry.lastRenderedFrame
	switch {
	case watermark == NoFrame || frame < watermark:
		// never drawn, or a backward seek: redraw wholesale
		geometry.clearTrail()
		geometry.extend(self.store.TrajectoryUpTo(geometry.id, frame))
	case watermark < frame:
		// forward advance: append only the (watermark, frame] slice
		geometry.extend(self.store.TrajectoryBetween(geometry.id, watermark+1, frame))
	default:
		// same frame as last time: leave everything untouched
	}
	geometry.lastRenderedFrame = frame
	delete(self.ghosted, geometry.id)
	geometry.show()
}

// The entity has no observation at this frame: it is either ahead of
// its presence, inside a gap, or departed.
func (self *Renderer) renderAbsent(geometry *EntityGeometry, frame int) {
	if !self.persist {
		// without persistence the entity vanishes entirely and must be
		// rebuilt from scratch if a seek brings it back
		if geometry.visible || geometry.lastRenderedFrame != NoFrame || geometry.TrailLen() > 0 {
			geometry.hide()
			geometry.clearTrail()
			geometry.lastRenderedFrame = NoFrame
		}
		return
	}

	if geometry.lastRenderedFrame == NoFrame {
		// nothing was ever drawn; there is no trail to persist
		geometry.hide()
		return
	}
	if geometry.filtered { return }

	// persistence: the marker goes away but the trail stays as a ghost
	// path. If the trail never reached the entity's final observed
	// frame (e.g. the departure was jumped over), extend it one last
	// time and freeze the watermark.
	last, observed := self.store.LastObserved(geometry.id)
	if observed && !self.ghosted[geometry.id] {
		target := min(frame, last)
		if geometry.lastRenderedFrame < target {
			geometry.extend(self.store.TrajectoryBetween(geometry.id, geometry.lastRenderedFrame+1, target))
			geometry.lastRenderedFrame = target
		}
		if target >= last { self.ghosted[geometry.id] = true }
	}
	geometry.showTrailOnly()
}

// Resurfaces entities whose presence began inside the skipped range
// (prevFrame, frame]: their full trail up to the current frame is drawn
// as a ghost, marker hidden. Entities already tracked on screen (their
// watermark is defined) are left to the main loop.
func (self *Renderer) backfillAppearing(prevFrame, frame int) {
	for _, id := range self.store.NewlyAppearing(prevFrame, frame) {
		geometry := self.geometries[id]
		if geometry == nil || geometry.parent == nil { continue }
		if geometry.filtered || geometry.lastRenderedFrame != NoFrame { continue }

		last, observed := self.store.LastObserved(id)
		if !observed { continue }
		target := min(frame, last)
		geometry.clearTrail()
		geometry.extend(self.store.TrajectoryUpTo(id, target))
		if geometry.TrailLen() == 0 { continue }
		geometry.lastRenderedFrame = target
		if target >= last { self.ghosted[id] = true }
		geometry.showTrailOnly()
	}
}
