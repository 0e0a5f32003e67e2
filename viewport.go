package iw

import "image"

import "github.com/jackft/iw/dataset"
import "github.com/jackft/iw/scale"

// A Viewport pairs a drawable region of the screen with the pair of
// linear scales projecting world coordinates into it. The renderer owns
// one full-resolution viewport plus one pane viewport per configured
// window group; all of them alias the same world coordinate domain but
// map it onto different screen regions.
type Viewport struct {
	key       string // window group key; "" for the full viewport
	title     string // pane display name
	cell      image.Rectangle
	xScale    *scale.Linear
	yScale    *scale.Linear
	container *Container
	layers    []projectedLayer
}

// One background shape projected through this viewport's scales,
// retained so the environment is only projected once per viewport.
type projectedLayer struct {
	closed bool
	fill   *[4]uint8
	stroke *[4]uint8
	points []float32 // x0, y0, x1, y1, ...
}

func newViewport(key, title string, cell image.Rectangle, xScale, yScale *scale.Linear, environment dataset.Environment) *Viewport {
	viewport := &Viewport{
		key:    key,
		title:  title,
		cell:   cell,
		xScale: xScale,
		yScale: yScale,
	}
	viewport.container = newContainer(viewport)
	viewport.projectEnvironment(environment)
	return viewport
}

// Returns the window group key, or "" for the full viewport.
func (self *Viewport) Key() string { return self.key }

// Returns the pane display name.
func (self *Viewport) Title() string { return self.title }

// Returns the screen region this viewport draws into.
func (self *Viewport) Cell() image.Rectangle { return self.cell }

// Returns the viewport's child container.
func (self *Viewport) Container() *Container { return self.container }

// Returns the world-to-screen scales.
func (self *Viewport) Scales() (x, y *scale.Linear) { return self.xScale, self.yScale }

// Projects a world coordinate pair into screen pixels.
func (self *Viewport) Project(x, y float64) (px, py float64) {
	return self.xScale.Call(x), self.yScale.Call(y)
}

// Projects a screen pixel pair back into world coordinates.
func (self *Viewport) Unproject(px, py float64) (x, y float64) {
	return self.xScale.Inv(px), self.yScale.Inv(py)
}

func (self *Viewport) projectEnvironment(environment dataset.Environment) {
	for _, id := range environment.LayerOrder() {
		shape := environment[id]
		if len(shape.Points) == 0 { continue }
		layer := projectedLayer{closed: shape.Closed}
		if shape.Fill != nil {
			layer.fill = &[4]uint8{shape.Fill.R, shape.Fill.G, shape.Fill.B, shape.Fill.A}
		}
		if shape.Stroke != nil {
			layer.stroke = &[4]uint8{shape.Stroke.R, shape.Stroke.G, shape.Stroke.B, shape.Stroke.A}
		}
		layer.points = make([]float32, 0, len(shape.Points)*2)
		for _, vertex := range shape.Points {
			px, py := self.Project(vertex.X, vertex.Y)
			layer.points = append(layer.points, float32(px), float32(py))
		}
		self.layers = append(self.layers, layer)
	}
}
