package iw

import "image/color"

import "github.com/jackft/iw/trajstore"

// An EntityGeometry is the renderable state of one tracked entity: a
// marker at its latest drawn position plus the trail polyline of its
// path so far, both in the screen space of its parent viewport.
//
// Exactly one geometry exists per entity id for the whole dataset; in
// tiled mode the same geometry is re-parented into its condition pane,
// never duplicated. Geometries are created by [NewRenderer] and mutated
// exclusively by it, once per render call.
type EntityGeometry struct {
	id     int
	parent *Container

	markerX float64
	markerY float64
	trail   []float32 // x0, y0, x1, y1, ... screen space

	markerColor color.RGBA
	trailColor  color.RGBA

	// lastRenderedFrame is the watermark: the most recent frame up to
	// which the trail has been drawn. NoFrame means never drawn or
	// freshly reset, forcing a wholesale redraw on the next render.
	lastRenderedFrame int

	visible      bool
	markerHidden bool // persistence ghost: trail stays, marker does not
	selected     bool
	filtered     bool
}

func newEntityGeometry(id int) *EntityGeometry {
	return &EntityGeometry{
		id:                id,
		markerColor:       DefaultMarkerColor,
		trailColor:        DefaultTrailColor,
		lastRenderedFrame: NoFrame,
	}
}

// Returns the entity id this geometry renders.
func (self *EntityGeometry) ID() int { return self.id }

// Returns the watermark frame, or [NoFrame] when the trail has never
// been drawn or was reset.
func (self *EntityGeometry) LastRenderedFrame() int { return self.lastRenderedFrame }

// Returns whether the geometry is currently shown at all.
func (self *EntityGeometry) Visible() bool { return self.visible }

// Returns whether the geometry is selected.
func (self *EntityGeometry) Selected() bool { return self.selected }

// Returns whether the geometry is excluded by the active filter.
func (self *EntityGeometry) Filtered() bool { return self.filtered }

// Returns whether the marker itself is drawn. False both when the
// geometry is hidden and when only its ghost trail persists.
func (self *EntityGeometry) MarkerVisible() bool {
	return self.visible && !self.markerHidden
}

// Returns the number of points currently drawn in the trail.
func (self *EntityGeometry) TrailLen() int { return len(self.trail) / 2 }

// Returns a copy of the drawn trail as screen-space x, y pairs.
func (self *EntityGeometry) TrailPoints() []float32 {
	points := make([]float32, len(self.trail))
	copy(points, self.trail)
	return points
}

// Returns the viewport the geometry is currently parented to, or nil
// while unparented (no matching pane in tiled mode).
func (self *EntityGeometry) Viewport() *Viewport {
	if self.parent == nil { return nil }
	return self.parent.owner
}

// Returns the current marker color.
func (self *EntityGeometry) MarkerColor() color.RGBA { return self.markerColor }

// Returns the current trail color.
func (self *EntityGeometry) TrailColor() color.RGBA { return self.trailColor }

// Returns the marker's screen position.
func (self *EntityGeometry) MarkerPosition() (x, y float64) {
	return self.markerX, self.markerY
}

// Makes the geometry visible. Filtered geometries stay hidden: show is
// a no-op on them until the filter is toggled off.
func (self *EntityGeometry) show() {
	if self.filtered { return }
	self.visible = true
	self.markerHidden = false
}

// Shows the trail only, keeping the marker hidden. Used for persistence
// ghosts. Filtered geometries stay hidden.
func (self *EntityGeometry) showTrailOnly() {
	if self.filtered { return }
	self.visible = true
	self.markerHidden = true
}

// Hides marker and trail entirely.
func (self *EntityGeometry) hide() {
	self.visible = false
	self.markerHidden = false
}

// Drops every drawn trail point.
func (self *EntityGeometry) clearTrail() { self.trail = self.trail[:0] }

// Appends points to the trail, projected through the parent viewport's
// scales, and moves the marker onto the last one. A nil parent means
// the geometry is unrendered (no pane matched it) and the call is a
// no-op.
func (self *EntityGeometry) extend(points []*trajstore.Point) {
	if self.parent == nil || len(points) == 0 { return }
	viewport := self.parent.owner
	for _, point := range points {
		px, py := viewport.Project(point.X, point.Y)
		self.trail = append(self.trail, float32(px), float32(py))
	}
	last := points[len(points) - 1]
	self.markerX, self.markerY = viewport.Project(last.X, last.Y)
}

func (self *EntityGeometry) setColor(marker, trail color.RGBA) {
	self.markerColor = marker
	self.trailColor = trail
}

func (self *EntityGeometry) resetColor() {
	self.markerColor = DefaultMarkerColor
	self.trailColor = DefaultTrailColor
}
