package tubemap

// PathOption configures BuildPath.
//
// Example:
//
//	p, err := tubemap.BuildPath(line, sx, sy,
//	    tubemap.WithLineWidth(12),
//	    tubemap.WithTickRatio(3))
type PathOption func(*pathOptions)

// pathOptions holds the stroke parameters used to place path end points.
type pathOptions struct {
	lineWidth float64
	tickRatio float64
}

// Default stroke parameters.
const (
	DefaultLineWidth = 1
	DefaultTickRatio = 3
)

// defaultPathOptions returns the default path options.
func defaultPathOptions() pathOptions {
	return pathOptions{
		lineWidth: DefaultLineWidth,
		tickRatio: DefaultTickRatio,
	}
}

// WithLineWidth sets the stroke width in device units. Lane shifts are
// measured in multiples of it.
func WithLineWidth(w float64) PathOption {
	return func(o *pathOptions) {
		o.lineWidth = w
	}
}

// WithTickRatio sets the ratio that controls how far the ends of a line are
// moved along its tangent: by line width / (2 * ratio). It must be positive.
func WithTickRatio(r float64) PathOption {
	return func(o *pathOptions) {
		o.tickRatio = r
	}
}
