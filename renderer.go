package iw

import "image"
import "sort"

import "github.com/tinne26/etxt"

import "github.com/jackft/iw/config"
import "github.com/jackft/iw/dataset"
import "github.com/jackft/iw/scale"
import "github.com/jackft/iw/trajstore"

// This file contains the Renderer type definition, its constructor and
// the getter and setter methods. The frame-driving state machine lives
// in renderer_frame.go, mode toggles in renderer_modes.go, and the
// Ebitengine draw pass in draw.go.

// The Renderer is the heart of iw: the frame driver that decides, for a
// caller-supplied target frame, which entities are visible, whether
// their trails need a wholesale redraw (backward seek) or an incremental
// extension (forward advance), and what remains drawn when entities
// leave the screen in persistence mode.
//
// Renderers are single-threaded by design: the store is read-only after
// construction, and every geometry and viewport is mutated only inside
// [Renderer.Render]() calls issued from the one game-loop goroutine.
// The external clock owns time; Render never advances it.
type Renderer struct {
	store      *trajstore.Store
	cfg        *config.Render
	full       *Viewport
	panes      []*Viewport
	paneByKey  map[string]*Viewport
	geometries map[int]*EntityGeometry
	order      []int // draw/update order: ascending entity id
	events     Events
	text       *etxt.Renderer

	tiled       bool
	persist     bool
	filterOn    bool
	filterAttrs []string
	filterKey   string

	// prevFrame is the frame of the last Render call, NoFrame before
	// the first one. Only consulted for persistence backfill.
	prevFrame int

	// ghosted marks entities whose trail was already extended to their
	// final observed frame in persistence mode (the frozen watermarks).
	ghosted map[int]bool

	initialized  bool
	warnedNoText bool
}

// Creates a [Renderer] for the given dataset, configuration and
// environment. One entity geometry is created per distinct entity id in
// the store (metadata-only entities included; they have no points and
// are never drawn), all initially parented to the full viewport. Pane
// viewports are created here once, from the configured window groups,
// and keep their grid-cell scales for the lifetime of the renderer.
func NewRenderer(store *trajstore.Store, cfg *config.Render, environment dataset.Environment) *Renderer {
	width, height := float64(cfg.PixelWidth), float64(cfg.PixelHeight)
	xDomain := [2]float64{cfg.XDomain[0], cfg.XDomain[1]}
	yDomain := [2]float64{cfg.YDomain[0], cfg.YDomain[1]}

	fullX := scale.NewLinear(xDomain, [2]float64{0, width})
	fullY := scale.NewLinear(yDomain, [2]float64{0, height})
	renderer := &Renderer{
		store:      store,
		cfg:        cfg,
		paneByKey:  make(map[string]*Viewport, len(cfg.WindowGroups)),
		geometries: make(map[int]*EntityGeometry),
		prevFrame:  NoFrame,
		ghosted:    make(map[int]bool),
	}
	renderer.full = newViewport("", "", image.Rect(0, 0, cfg.PixelWidth, cfg.PixelHeight), fullX, fullY, environment)

	cols, rows := paneGrid(len(cfg.WindowGroups))
	for i, group := range cfg.WindowGroups {
		col, row := i%cols, i/cols
		cellW := width / float64(cols)
		cellH := height / float64(rows)
		x0, y0 := float64(col)*cellW, float64(row)*cellH
		paneX := fullX.Clone()
		paneX.SetRange([2]float64{x0, x0 + cellW})
		paneY := fullY.Clone()
		paneY.SetRange([2]float64{y0, y0 + cellH})
		cell := image.Rect(int(x0), int(y0), int(x0+cellW), int(y0+cellH))
		pane := newViewport(group.Key, group.DisplayName, cell, paneX, paneY, environment)
		renderer.panes = append(renderer.panes, pane)
		renderer.paneByKey[group.Key] = pane
	}

	for _, id := range store.Entities() {
		geometry := newEntityGeometry(id)
		renderer.geometries[id] = geometry
		renderer.full.container.adopt(geometry)
		renderer.order = append(renderer.order, id)
	}
	sort.Ints(renderer.order)
	return renderer
}

// Returns the renderer's event streams. Subscribe before the first
// render call to observe the Initialized event.
func (self *Renderer) Events() *Events { return &self.events }

// Returns the full-resolution viewport.
func (self *Renderer) FullViewport() *Viewport { return self.full }

// Returns the condition pane viewports, in window-group order.
func (self *Renderer) Panes() []*Viewport { return self.panes }

// Returns the geometry for an entity id, or nil if unknown.
func (self *Renderer) Geometry(entityID int) *EntityGeometry {
	return self.geometries[entityID]
}

// Returns the trajectory store the renderer reads from.
func (self *Renderer) Store() *trajstore.Store { return self.store }

// Returns the frame of the most recent render call, or [NoFrame] if
// nothing was rendered yet.
func (self *Renderer) CurrentFrame() int { return self.prevFrame }

// Returns whether the view is currently tiled into condition panes.
func (self *Renderer) Tiled() bool { return self.tiled }

// Returns whether trail persistence is active.
func (self *Renderer) PersistMode() bool { return self.persist }

// Returns whether an attribute filter is active.
func (self *Renderer) FilterActive() bool { return self.filterOn }

// Sets the text renderer used for pane titles in tiled mode. Without
// one, titles are skipped (with a single logged warning) rather than
// failing the draw.
func (self *Renderer) SetTextRenderer(text *etxt.Renderer) { self.text = text }

// Enables or disables the advisory out-of-domain warnings on every
// viewport scale. See [scale.Linear.SetBoundsCheck]().
func (self *Renderer) SetScaleBoundsCheck(enabled bool) {
	for _, viewport := range append([]*Viewport{self.full}, self.panes...) {
		viewport.xScale.SetBoundsCheck(enabled)
		viewport.yScale.SetBoundsCheck(enabled)
	}
}
