package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/tubemap"
)

var (
	_ Renderer = (*SVGRenderer)(nil)
	_ Renderer = (*ContextRenderer)(nil)
)

func TestSVG(t *testing.T) {
	m, s := testMap(t)
	var buf bytes.Buffer
	if err := SVG(&buf, m, s, 200, 200); err != nil {
		t.Fatalf("SVG() error: %v", err)
	}
	out := buf.String()

	red, err := tubemap.LinePath(m.Line("red").Geometry(), s.SX(), s.SY(),
		tubemap.WithLineWidth(48), tubemap.WithTickRatio(3))
	if err != nil {
		t.Fatalf("LinePath() error: %v", err)
	}
	wants := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="0 0 200 200">`,
		`<rect width="100%" height="100%" fill="white"/>`,
		`<g class="river">`,
		`<path id="Thames" d="`,
		`stroke="#c4e8f8" fill="none" stroke-width="86.4"/>`,
		`<path id="red" class="line" d="` + red.SVG() + `" stroke="#ff0000" fill="none" stroke-width="48"/>`,
		`<circle id="B" class="interchange" cx="100" cy="180" r="60" fill="#ffffff" stroke="#000000" stroke-width="24"/>`,
		`<path id="A" class="station red" d="`,
		`</svg>`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q\n%s", want, out)
		}
	}

	order := []string{`<g class="river">`, `<g class="lines">`, `<g class="interchanges">`, `<g class="stations">`}
	last := -1
	for _, g := range order {
		i := strings.Index(out, g)
		if i <= last {
			t.Errorf("group %s out of order", g)
		}
		last = i
	}
	if n := strings.Count(out, "<g "); n != 4 || strings.Count(out, "</g>") != 4 {
		t.Errorf("got %d groups, want 4 balanced groups", n)
	}
}

func TestSVGRenderer_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewSVGRenderer(&buf, 10, 20).Render(NewScene()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="20" viewBox="0 0 10 20">` + "\n" +
		`<rect width="100%" height="100%" fill="white"/>` + "\n" +
		"</svg>\n"
	if got := buf.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestSVGRenderer_Escapes(t *testing.T) {
	s := NewScene()
	p := tubemap.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	s.StrokePath(LayerLines, `a"<b>`, p, fgColor, 1)

	var buf bytes.Buffer
	if err := NewSVGRenderer(&buf, 1, 1).Render(s); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(buf.String(), `id="a&#34;&lt;b&gt;"`) {
		t.Errorf("id not escaped:\n%s", buf.String())
	}
}
