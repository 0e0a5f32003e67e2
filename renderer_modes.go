package iw

import "image/color"

// Mode toggles and entity-level operations: overlaid/tiled view, trail
// persistence, attribute filtering, group recoloring and selection.

// Switches between the overlaid view (every geometry parented to the
// full viewport) and the tiled view (each geometry re-parented to the
// pane matching its facet group key; entities whose key matches no
// configured pane are not rendered while tiled).
//
// The same geometry object moves between containers; nothing is
// duplicated per pane. Toggling twice restores the original parenting
// and, through the forced fresh render, the original trail positions.
func (self *Renderer) ToggleViewMode() {
	self.tiled = !self.tiled
	if self.tiled {
		for _, id := range self.order {
			geometry := self.geometries[id]
			key := self.store.GroupKey(id, self.cfg.FacetAttributes...)
			if pane, found := self.paneByKey[key]; found {
				pane.container.adopt(geometry)
			} else {
				detach(geometry)
			}
		}
	} else {
		for _, id := range self.order {
			self.full.container.adopt(self.geometries[id])
		}
	}
	if self.prevFrame != NoFrame { self.FreshRender(self.prevFrame) }
}

// Switches trail persistence on or off. Turning it off clears the ghost
// trails of departed entities through a fresh render; turning it on has
// no retroactive effect, it only changes what happens as entities leave
// the screen from now on.
func (self *Renderer) TogglePersistMode() {
	self.persist = !self.persist
	if !self.persist && self.prevFrame != NoFrame {
		self.FreshRender(self.prevFrame)
	}
}

// Toggles attribute filtering. When enabling, each entity's group key
// over the given attributes is compared against requiredKey (exact
// string equality of the joined key, i.e. a conjunctive equality test
// per attribute): non-matching entities are hidden and marked filtered,
// which excludes them from being shown again until the filter is
// toggled off. When disabling, the arguments are ignored and every
// entity becomes eligible again.
func (self *Renderer) ToggleFilter(attributes []string, requiredKey string) {
	self.filterOn = !self.filterOn
	if self.filterOn {
		self.filterAttrs = attributes
		self.filterKey = requiredKey
		for _, id := range self.order {
			geometry := self.geometries[id]
			if self.store.GroupKey(id, attributes...) != requiredKey {
				geometry.filtered = true
				geometry.hide()
			}
		}
	} else {
		self.filterAttrs = nil
		self.filterKey = ""
		for _, geometry := range self.geometries {
			geometry.filtered = false
		}
		if self.prevFrame != NoFrame { self.FreshRender(self.prevFrame) }
	}
}

// Recolors every entity whose value for the given attribute appears in
// the mapping; entities with unmapped values return to the default
// color. A fresh render follows, so full trails are redrawn in their
// new colors instead of leaving old-colored partial segments behind.
func (self *Renderer) ColorByGroup(attribute string, mapping map[string]color.Color) {
	for _, id := range self.order {
		geometry := self.geometries[id]
		value := self.store.GroupKey(id, attribute)
		if clr, found := mapping[value]; found {
			marker := rgbaOf(clr)
			geometry.setColor(marker, trailTint(marker))
		} else {
			geometry.resetColor()
		}
	}
	if self.prevFrame != NoFrame { self.FreshRender(self.prevFrame) }
}

// Restores every marker and trail to the default colors and fresh
// renders.
func (self *Renderer) ResetColors() {
	for _, geometry := range self.geometries {
		geometry.resetColor()
	}
	if self.prevFrame != NoFrame { self.FreshRender(self.prevFrame) }
}

// Marks the entity as selected and publishes the Selected event.
// Unknown ids and repeated selections are ignored.
func (self *Renderer) Select(entityID int) {
	geometry := self.geometries[entityID]
	if geometry == nil || geometry.selected { return }
	geometry.selected = true
	self.events.Selected.Publish(entityID)
}

// Clears the entity's selection and publishes the Deselected event.
func (self *Renderer) Deselect(entityID int) {
	geometry := self.geometries[entityID]
	if geometry == nil || !geometry.selected { return }
	geometry.selected = false
	self.events.Deselected.Publish(entityID)
}

// Deselects every selected entity, publishing one Deselected event per
// entity in ascending id order.
func (self *Renderer) DeselectAll() {
	for _, id := range self.order {
		self.Deselect(id)
	}
}

// The trail color derived from a marker color: same hue, softened
// alpha, matching the default marker/trail pairing.
func trailTint(marker color.RGBA) color.RGBA {
	trail := marker
	trail.A = 0x90
	return trail
}
