package voronoi

import "go.uber.org/zap"

// Option configures Compute.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	epsilon float64
	checks  bool
}

func defaultOptions() options {
	return options{
		logger:  zap.NewNop(),
		epsilon: 1e-9,
	}
}

// WithLogger traces every event to l. Tracing has no effect on the result.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithEpsilon sets the relative tolerance used when deciding whether a
// circle event lies above the sweep line.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps > 0 {
			o.epsilon = eps
		}
	}
}

// WithInvariantChecks re-validates the beachline order and the mesh after
// every event. A violation aborts the computation with an InvariantError.
func WithInvariantChecks(on bool) Option {
	return func(o *options) { o.checks = on }
}
