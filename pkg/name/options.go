package name

func makeOptions(opts ...Option) options {
	opt := options{
		defaultArch: DefaultArch,
	}
	for _, o := range opts {
		o(&opt)
	}
	return opt
}

type options struct {
	strict      bool
	defaultArch string
}

// Option is a functional option for name parsing.
type Option func(*options)

// WithStrict sets the parse mode. When set to "true", names are required to
// carry a recognized product base and a "-v{date}" stamp. This disables the
// loose fallbacks the naming convention allows and returns an error for
// names that only match structurally.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithDefaultArch sets the default architecture reported when the name does
// not carry an architecture token. If not set, "x86_64" will be used as
// default.
func WithDefaultArch(arch string) Option {
	return func(o *options) {
		o.defaultArch = arch
	}
}
