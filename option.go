package bptree

// options configures tree behavior beyond the branching order.
type options struct {
	logger Logger
}

func defaultOptions() options {
	return options{
		logger: DiscardLogger{},
	}
}

// Option configures a tree using the functional options pattern.
type Option func(*options)

// WithLogger routes internal diagnostics to the given logger. The default
// discards them.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
