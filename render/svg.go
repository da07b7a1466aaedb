package render

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"strings"

	"github.com/gogpu/tubemap"
	"github.com/gogpu/tubemap/network"
)

// SVGRenderer writes scenes as standalone SVG documents. Each layer becomes
// a group with the layer's name as its class, on a white background.
type SVGRenderer struct {
	w             io.Writer
	width, height int
}

// NewSVGRenderer creates a renderer writing width by height documents to w.
func NewSVGRenderer(w io.Writer, width, height int) *SVGRenderer {
	return &SVGRenderer{w: w, width: width, height: height}
}

// Render writes one document for s.
func (r *SVGRenderer) Render(s *Scene) error {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		r.width, r.height, r.width, r.height)
	b.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")

	open := false
	var layer Layer
	for _, c := range s.commands {
		if !open || c.layer != layer {
			if open {
				b.WriteString("</g>\n")
			}
			layer, open = c.layer, true
			fmt.Fprintf(&b, "<g class=%q>\n", layer.String())
		}
		writeCommand(&b, c)
	}
	if open {
		b.WriteString("</g>\n")
	}
	b.WriteString("</svg>\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

func writeCommand(b *strings.Builder, c drawCommand) {
	switch c.op {
	case opStroke:
		b.WriteString("<path")
		writeAttr(b, "id", c.id)
		writeAttr(b, "class", c.class)
		writeAttr(b, "d", c.path.SVG())
		writeAttr(b, "stroke", hexColor(c.stroke))
		writeAttr(b, "fill", "none")
		writeAttr(b, "stroke-width", tubemap.FormatNumber(c.width))
	case opGlyph:
		g := c.glyph
		b.WriteString("<circle")
		writeAttr(b, "id", c.id)
		writeAttr(b, "class", c.class)
		writeAttr(b, "cx", tubemap.FormatNumber(g.Center.X))
		writeAttr(b, "cy", tubemap.FormatNumber(g.Center.Y))
		writeAttr(b, "r", tubemap.FormatNumber(g.Radius))
		writeAttr(b, "fill", hexColor(c.fill))
		writeAttr(b, "stroke", hexColor(c.stroke))
		writeAttr(b, "stroke-width", tubemap.FormatNumber(c.width))
	}
	b.WriteString("/>\n")
}

func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, ` %s="%s"`, name, html.EscapeString(value))
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SVG lays out m and writes it to w as a width by height SVG document.
func SVG(w io.Writer, m *network.Map, s network.Scales, width, height int, opts ...Option) error {
	scene, err := Layout(m, s, opts...)
	if err != nil {
		return err
	}
	return NewSVGRenderer(w, width, height).Render(scene)
}
