// Package tubemap lays out schematic transit maps in the style of the
// London Underground diagram.
//
// # Overview
//
// Lines run on an integer grid and may only travel along the eight compass
// bearings. tubemap turns the node sequence of each line into vector path
// elements (move, line, quadratic curve) ready to be stroked with a uniform
// width. Changes of bearing become rounded corners. Lines sharing a
// corridor are pushed into parallel lanes.
//
// # Pipeline
//
//	line := &tubemap.Line{Nodes: nodes, ShiftNormal: 1}
//	annotated, err := line.Annotate()    // bearing per node, validated
//	path, err := tubemap.BuildPath(annotated, sx, sy,
//	    tubemap.WithLineWidth(12))      // device-space elements
//	d := path.SVG()                      // "M...L...Q..."
//
// Annotation never modifies the caller's nodes, so lines may be annotated
// and built concurrently.
//
// # Corners
//
// A corner is a displacement that is the sum of the incoming and outgoing
// direction vectors: one-by-one steps and one-by-two (knight) steps. A
// single grid step along a bearing 45 degrees off the current one is a kink.
// Anything else is rejected with one of the sentinel errors, wrapped in a
// *SegmentError naming the offending coordinates.
//
// # Coordinate System
//
// Grid coordinates are y-up: North is (0, 1). The scales supplied by the
// caller map them to device space and usually flip the y axis.
//
// # Interchanges
//
// InterchangeShift centres an interchange glyph on the lanes of the lines
// calling at a station. Package network extracts the markers from a map
// definition and package render draws complete maps.
package tubemap
