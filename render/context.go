package render

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/tubemap"
	"github.com/gogpu/tubemap/network"
)

// ContextRenderer paints scenes onto a gg drawing context. Paths are
// replayed as gg path commands, so curves stay curves.
type ContextRenderer struct {
	dc *gg.Context
}

// NewContextRenderer creates a renderer for dc.
func NewContextRenderer(dc *gg.Context) *ContextRenderer {
	return &ContextRenderer{dc: dc}
}

// Render paints every command of s in order. The context's colour and line
// width are left as set by the last command.
func (r *ContextRenderer) Render(s *Scene) error {
	dc := r.dc
	dc.SetLineCap(gg.LineCapButt)
	for i, c := range s.commands {
		var err error
		switch c.op {
		case opStroke:
			dc.SetColor(c.stroke)
			dc.SetLineWidth(c.width)
			c.path.Replay(dc)
			err = dc.Stroke()
		case opGlyph:
			g := c.glyph
			dc.DrawCircle(g.Center.X, g.Center.Y, g.Radius)
			dc.SetColor(c.fill)
			if err = dc.FillPreserve(); err != nil {
				break
			}
			dc.SetColor(c.stroke)
			dc.SetLineWidth(c.width)
			err = dc.Stroke()
		}
		if err != nil {
			return fmt.Errorf("render: %s command %d (%s): %w", c.layer, i, c.id, err)
		}
	}
	return nil
}

// Draw lays out m and paints it onto dc. The background is left untouched.
func Draw(dc *gg.Context, m *network.Map, s network.Scales, opts ...Option) error {
	scene, err := Layout(m, s, opts...)
	if err != nil {
		return err
	}
	return NewContextRenderer(dc).Render(scene)
}

var _ tubemap.PathSink = (*gg.Context)(nil)
