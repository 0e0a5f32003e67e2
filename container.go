package iw

// A Container is the child list of one viewport. Every entity geometry
// has at most one parent container at any time; the renderer enforces
// the single-ownership transfer when the view mode toggles, rather than
// relying on any drawing-library child semantics.
type Container struct {
	owner    *Viewport
	children map[int]*EntityGeometry
}

func newContainer(owner *Viewport) *Container {
	return &Container{
		owner:    owner,
		children: make(map[int]*EntityGeometry),
	}
}

// Returns the viewport this container belongs to.
func (self *Container) Viewport() *Viewport { return self.owner }

// Returns the number of geometries currently parented here.
func (self *Container) NumChildren() int { return len(self.children) }

// Moves the geometry under this container, detaching it from its
// previous parent first. Re-parenting invalidates the geometry's drawn
// trail (it was projected through the old viewport's scales), so the
// trail is cleared and the watermark reset; the next render rebuilds it.
func (self *Container) adopt(geometry *EntityGeometry) {
	if geometry.parent == self { return }
	if geometry.parent != nil {
		delete(geometry.parent.children, geometry.id)
	}
	geometry.parent = self
	self.children[geometry.id] = geometry
	geometry.clearTrail()
	geometry.lastRenderedFrame = NoFrame
}

// Detaches the geometry from whatever container holds it, leaving it
// unparented (and therefore unrendered, e.g. entities without a matching
// pane in tiled mode).
func detach(geometry *EntityGeometry) {
	if geometry.parent != nil {
		delete(geometry.parent.children, geometry.id)
		geometry.parent = nil
	}
	geometry.clearTrail()
	geometry.lastRenderedFrame = NoFrame
	geometry.visible = false
}
