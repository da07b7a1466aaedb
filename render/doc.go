// Package render draws tube maps.
//
// Layout turns a decoded network into a Scene: a retained list of draw
// commands in device coordinates, grouped into layers that are painted in
// order (river, lines, interchanges, stations). A Scene can then be given
// to any Renderer:
//
//   - ContextRenderer paints onto a *gg.Context from github.com/gogpu/gg,
//     which can be saved as PNG.
//   - SVGRenderer writes standalone SVG markup.
//
// Draw and SVG combine both steps:
//
//	m, _ := network.Decode(r)
//	s, _ := network.FitScales(m, 760, 640)
//	dc := gg.NewContext(760, 640)
//	dc.ClearWithColor(gg.White)
//	if err := render.Draw(dc, m, s); err != nil {
//	    log.Fatal(err)
//	}
//	_ = dc.SavePNG("map.png")
//
// Lines that cannot be laid out are skipped and logged at warn level
// through tubemap.Logger. WithStrict turns them into an error instead.
package render
