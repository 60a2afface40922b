package core

// Option configures a container at construction.
type Option func(*options)

type options struct {
	hooks *hookInvoker
}

// WithHooks attaches hooks to the constructed container. Multiple WithHooks
// options compose in FIFO order.
func WithHooks(hooks Hooks) Option {
	return func(o *options) {
		o.hooks = o.hooks.with(hooks)
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
