package lookup

import loggerpkg "github.com/minhyannv/findword/pkg/logger"

// Option configures optional dependencies for a Dispatcher.
type Option func(*dispatcherDeps)

type dispatcherDeps struct {
	logger       loggerpkg.Logger
	completer    Completer
	completerSet bool
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *dispatcherDeps) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithCompleter replaces the default OpenAI-compatible completer.
func WithCompleter(c Completer) Option {
	return func(d *dispatcherDeps) {
		d.completer = c
		d.completerSet = true
	}
}
