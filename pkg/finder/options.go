package finder

import (
	loggerpkg "github.com/minhyannv/findword/pkg/logger"
	"github.com/minhyannv/findword/pkg/lookup"
)

// Option configures optional runtime dependencies for Finder.
type Option func(*finderDeps)

type finderDeps struct {
	logger       loggerpkg.Logger
	completer    lookup.Completer
	completerSet bool
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *finderDeps) {
		d.logger = l
	}
}

// WithCompleter replaces the completion client used by the dispatcher.
func WithCompleter(c lookup.Completer) Option {
	return func(d *finderDeps) {
		d.completer = c
		d.completerSet = true
	}
}
