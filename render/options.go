package render

import "github.com/gogpu/tubemap"

// Option configures Layout.
type Option func(*options)

type options struct {
	strict    bool
	tickRatio float64
}

func defaultOptions() options {
	return options{tickRatio: tubemap.DefaultTickRatio}
}

// WithStrict makes Layout fail when any line, river or station cannot be
// laid out, instead of skipping it.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithTickRatio sets the ratio of line width to station tick length.
func WithTickRatio(r float64) Option {
	return func(o *options) {
		o.tickRatio = r
	}
}
