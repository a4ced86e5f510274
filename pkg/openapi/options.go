package openapi

// Option customises document loading.
type Option func(*options)

type options struct {
	validate bool
}

// WithValidation runs the kin-openapi validator after loading. Disabled by
// default so partial documents used only for schema extraction still load.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}

func newOptions(opts []Option) options {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
