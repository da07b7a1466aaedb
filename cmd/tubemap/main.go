// Command tubemap renders a tube-map network definition.
//
// Usage:
//
//	tubemap -in network.json -out map.svg
//	tubemap -in network.json -out map.png -format png -width 1200 -height 900
//	tubemap -in network.json -format geojson > network.geojson
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/tubemap"
	"github.com/gogpu/tubemap/network"
	"github.com/gogpu/tubemap/render"
)

func main() {
	var (
		input     = flag.String("in", "", "network definition (default stdin)")
		output    = flag.String("out", "", "output file (default stdout)")
		format    = flag.String("format", "svg", "output format: svg, png or geojson")
		width     = flag.Int("width", 760, "image width")
		height    = flag.Int("height", 640, "image height")
		margin    = flag.Float64("margin", -1, "margin on every side (default 80/80/20/80)")
		tickRatio = flag.Float64("tick-ratio", tubemap.DefaultTickRatio, "line width to station tick ratio")
		highlight = flag.String("highlight", "", "comma separated lines to highlight")
		visited   = flag.String("visited", "", "comma separated stations to mark visited")
		strict    = flag.Bool("strict", false, "fail on lines that cannot be drawn")
		verbose   = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		tubemap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	m, err := load(*input)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	for _, name := range split(*highlight) {
		if !m.HighlightLine(name) {
			log.Printf("No line named %q", name)
		}
	}
	if err := m.VisitStations(split(*visited)...); err != nil {
		log.Fatalf("Failed to visit: %v", err)
	}

	var fitOpts []network.FitOption
	if *margin >= 0 {
		fitOpts = append(fitOpts, network.WithMargin(network.UniformMargin(*margin)))
	}
	opts := []render.Option{render.WithTickRatio(*tickRatio)}
	if *strict {
		opts = append(opts, render.WithStrict())
	}

	data, err := encode(m, *format, *width, *height, fitOpts, opts)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if *output == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("Failed to write: %v", err)
		}
		return
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Map saved to %s (%s)\n", *output, *format)
}

// encode renders m in memory so that no output file is left behind when
// fitting or drawing fails.
func encode(m *network.Map, format string, width, height int, fitOpts []network.FitOption, opts []render.Option) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "geojson":
		if err := writeGeoJSON(&buf, m); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "svg", "png":
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	s, err := network.FitScales(m, float64(width), float64(height), fitOpts...)
	if err != nil {
		return nil, fmt.Errorf("fit map: %w", err)
	}
	if format == "svg" {
		err = render.SVG(&buf, m, s, width, height, opts...)
	} else {
		err = writePNG(&buf, m, s, width, height, opts)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func load(path string) (*network.Map, error) {
	if path == "" {
		return network.Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return network.Decode(f)
}

func writePNG(w io.Writer, m *network.Map, s network.Scales, width, height int, opts []render.Option) error {
	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	if err := render.Draw(dc, m, s, opts...); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func writeGeoJSON(w io.Writer, m *network.Map) error {
	b, err := network.GeoJSON(m)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func split(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
