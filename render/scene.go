package render

import (
	"image/color"
	"math"

	"github.com/gogpu/tubemap"
)

// Layer is a group of draw commands painted together.
type Layer uint8

// Layers in painting order.
const (
	LayerRiver Layer = iota
	LayerLines
	LayerInterchanges
	LayerStations
)

func (l Layer) String() string {
	switch l {
	case LayerRiver:
		return "river"
	case LayerLines:
		return "lines"
	case LayerInterchanges:
		return "interchanges"
	case LayerStations:
		return "stations"
	}
	return "unknown"
}

// drawOp is the type of drawing operation.
type drawOp uint8

const (
	opStroke drawOp = iota
	opGlyph
)

// drawCommand is a single drawing operation in device coordinates.
type drawCommand struct {
	op    drawOp
	layer Layer
	id    string // element id in SVG output
	class string // extra SVG classes

	path  *tubemap.Path // opStroke
	glyph tubemap.Glyph // opGlyph

	stroke color.RGBA
	fill   color.RGBA // opGlyph only
	width  float64    // stroke width
}

// Scene is a laid out map, ready to be rendered any number of times.
type Scene struct {
	commands []drawCommand
}

// NewScene creates a new empty Scene.
func NewScene() *Scene {
	return &Scene{
		commands: make([]drawCommand, 0, 16),
	}
}

// Reset clears the scene for reuse.
func (s *Scene) Reset() {
	s.commands = s.commands[:0]
}

// Len returns the number of draw commands.
func (s *Scene) Len() int {
	return len(s.commands)
}

// Count returns the number of draw commands in a layer.
func (s *Scene) Count(l Layer) int {
	n := 0
	for _, c := range s.commands {
		if c.layer == l {
			n++
		}
	}
	return n
}

// StrokePath adds a stroked, unfilled path.
func (s *Scene) StrokePath(l Layer, id string, p *tubemap.Path, c color.RGBA, width float64) {
	s.add(drawCommand{
		op:     opStroke,
		layer:  l,
		id:     id,
		path:   p,
		stroke: c,
		width:  width,
	})
}

// Glyph adds a filled and stroked interchange circle.
func (s *Scene) Glyph(l Layer, id string, g tubemap.Glyph, fill, stroke color.RGBA) {
	s.add(drawCommand{
		op:     opGlyph,
		layer:  l,
		id:     id,
		glyph:  g,
		stroke: stroke,
		fill:   fill,
		width:  g.StrokeWidth,
	})
}

// Bounds returns the device-space extent of everything the scene paints,
// including stroke widths. ok is false for an empty scene.
func (s *Scene) Bounds() (lo, hi tubemap.Vec2, ok bool) {
	lo = tubemap.V2(math.Inf(1), math.Inf(1))
	hi = tubemap.V2(math.Inf(-1), math.Inf(-1))
	grow := func(a, b tubemap.Vec2, pad float64) {
		lo = tubemap.V2(math.Min(lo.X, a.X-pad), math.Min(lo.Y, a.Y-pad))
		hi = tubemap.V2(math.Max(hi.X, b.X+pad), math.Max(hi.Y, b.Y+pad))
		ok = true
	}
	for _, c := range s.commands {
		switch c.op {
		case opStroke:
			if a, b, pok := c.path.Bounds(); pok {
				grow(a, b, c.width/2)
			}
		case opGlyph:
			g := c.glyph
			grow(g.Center, g.Center, g.Radius+c.width/2)
		}
	}
	if !ok {
		return tubemap.Vec2{}, tubemap.Vec2{}, false
	}
	return lo, hi, true
}

func (s *Scene) add(c drawCommand) {
	s.commands = append(s.commands, c)
}

// Renderer paints a scene onto some output.
type Renderer interface {
	Render(s *Scene) error
}
