package spinlock

// Options control how a lock waits.
type Options struct {
	// Spins is the number of failed acquisition attempts made back to back
	// before the goroutine yields the processor. Zero, the default, yields
	// after every failed attempt.
	Spins int
}

// An Option sets a field of Options.
type Option func(opts *Options)

func loadOptions(options ...Option) *Options {
	opts := new(Options)
	for _, option := range options {
		option(opts)
	}
	if opts.Spins < 0 {
		opts.Spins = 0
	}
	return opts
}

// WithOptions replaces all options with the given ones.
func WithOptions(options Options) Option {
	return func(opts *Options) {
		*opts = options
	}
}

// WithSpins sets the number of attempts made before each yield.
func WithSpins(n int) Option {
	return func(opts *Options) {
		opts.Spins = n
	}
}
