// Package network loads tube-map network definitions and derives what the
// renderer needs from them: stations with their per-line markers, scales
// fitted to an output size, and a GeoJSON view of the grid.
//
// Definitions are JSON documents with three top-level members:
//
//	{
//	  "stations": {"Euston": {"label": "Euston"}},
//	  "lines": [{
//	    "name": "Victoria", "label": "Victoria line", "color": "#0098D4",
//	    "shiftCoords": [0, 0],
//	    "nodes": [
//	      {"coords": [0, 0], "name": "Euston", "labelPos": "W"},
//	      {"coords": [1, 0]}
//	    ]
//	  }],
//	  "river": {"shiftCoords": [0, 0], "nodes": [...]}
//	}
//
// Nodes may carry a station name, a label position, their own
// shiftCoords, and the flags hide and canonical. The marker member
// selects between a plain station tick and an interchange glyph.
package network
