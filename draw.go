package iw

import "image"
import "image/color"
import "log"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/vector"

import "github.com/tinne26/etxt"

// The Ebitengine draw pass. Render calls only mutate retained state;
// this file is what actually puts pixels on the screen, once per
// Ebitengine Draw callback.

const (
	markerRadius      = 3.0
	selectionRadius   = 6.0
	trailWidth        = 1.5
	selectedWidth     = 3.0
	environmentStroke = 1.0
	borderWidth       = 1.0
	paneTitleMargin   = 4
)

var paneBorderColor = color.RGBA{0x44, 0x44, 0x44, 0xFF}

// Source image for triangle-based polygon fills.
var whitePixel *ebiten.Image

func init() {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	whitePixel = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Draws the current retained state into the screen: the environment,
// every visible trail and marker, and, in tiled mode, one bordered and
// titled cell per pane.
func (self *Renderer) Draw(screen *ebiten.Image) {
	if self.tiled {
		for _, pane := range self.panes {
			self.drawViewport(screen, pane)
			self.drawPaneTitle(screen, pane)
		}
	} else {
		self.drawViewport(screen, self.full)
	}
}

func (self *Renderer) drawViewport(screen *ebiten.Image, viewport *Viewport) {
	target := screen.SubImage(viewport.cell).(*ebiten.Image)
	drawEnvironment(target, viewport)

	for _, id := range self.order {
		geometry := self.geometries[id]
		if geometry.parent == nil || geometry.parent.owner != viewport { continue }
		if !geometry.visible { continue }
		drawTrail(target, geometry)
		if !geometry.markerHidden { drawMarker(target, geometry) }
	}

	bounds := viewport.cell
	vector.StrokeRect(target,
		float32(bounds.Min.X), float32(bounds.Min.Y),
		float32(bounds.Dx()), float32(bounds.Dy()),
		borderWidth, paneBorderColor, true)
}

func drawEnvironment(target *ebiten.Image, viewport *Viewport) {
	for _, layer := range viewport.layers {
		if len(layer.points) < 4 { continue }
		if layer.fill != nil && layer.closed {
			fillPolygon(target, layer.points, *layer.fill)
		}
		if layer.stroke != nil {
			strokePolyline(target, layer.points, layer.closed, environmentStroke,
				color.RGBA{layer.stroke[0], layer.stroke[1], layer.stroke[2], layer.stroke[3]})
		}
	}
}

func fillPolygon(target *ebiten.Image, points []float32, fill [4]uint8) {
	var path vector.Path
	path.MoveTo(points[0], points[1])
	for i := 2; i < len(points); i += 2 {
		path.LineTo(points[i], points[i+1])
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r := float32(fill[0]) / 255
	g := float32(fill[1]) / 255
	b := float32(fill[2]) / 255
	a := float32(fill[3]) / 255
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = r
		vertices[i].ColorG = g
		vertices[i].ColorB = b
		vertices[i].ColorA = a
	}
	options := &ebiten.DrawTrianglesOptions{FillRule: ebiten.EvenOdd, AntiAlias: true}
	target.DrawTriangles(vertices, indices, whitePixel, options)
}

func strokePolyline(target *ebiten.Image, points []float32, closed bool, width float32, clr color.Color) {
	for i := 2; i < len(points); i += 2 {
		vector.StrokeLine(target, points[i-2], points[i-1], points[i], points[i+1], width, clr, true)
	}
	if closed && len(points) >= 6 {
		last := len(points) - 2
		vector.StrokeLine(target, points[last], points[last+1], points[0], points[1], width, clr, true)
	}
}

func drawTrail(target *ebiten.Image, geometry *EntityGeometry) {
	if geometry.TrailLen() < 2 { return }
	width := float32(trailWidth)
	if geometry.selected { width = selectedWidth }
	strokePolyline(target, geometry.trail, false, width, geometry.trailColor)
}

func drawMarker(target *ebiten.Image, geometry *EntityGeometry) {
	x, y := float32(geometry.markerX), float32(geometry.markerY)
	vector.DrawFilledCircle(target, x, y, markerRadius, geometry.markerColor, true)
	if geometry.selected {
		vector.StrokeCircle(target, x, y, selectionRadius, 2, SelectionColor, true)
	}
}

// Pane titles need a text renderer; without one the title is skipped
// and a warning is logged once, so a missing font degrades the view
// instead of stopping it.
func (self *Renderer) drawPaneTitle(screen *ebiten.Image, pane *Viewport) {
	if pane.title == "" { return }
	if self.text == nil {
		if !self.warnedNoText {
			self.warnedNoText = true
			log.Print("iw: no text renderer set; pane titles skipped")
		}
		return
	}
	x := pane.cell.Min.X + pane.cell.Dx()/2
	y := pane.cell.Min.Y + paneTitleMargin
	self.text.SetTarget(screen)
	self.text.SetAlign(etxt.Top, etxt.XCenter)
	self.text.Draw(pane.title, x, y)
	self.text.SetTarget(nil)
}
