// Package finder runs one reverse-dictionary invocation end to end.
package finder

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/minhyannv/findword/pkg/alfred"
	configpkg "github.com/minhyannv/findword/pkg/config"
	loggerpkg "github.com/minhyannv/findword/pkg/logger"
	"github.com/minhyannv/findword/pkg/lookup"
)

// minQueryRunes is the shortest trimmed query worth sending upstream.
const minQueryRunes = 2

// Finder holds the dispatcher and logging for one process.
type Finder struct {
	dispatcher *lookup.Dispatcher
	logger     loggerpkg.Logger
	verbose    bool
}

// New initializes a Finder with the provided config and dependencies.
func New(cfg configpkg.Config, opts ...Option) *Finder {
	cfg = configpkg.Normalize(cfg)
	deps := finderDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	lookupOpts := []lookup.Option{lookup.WithLogger(deps.logger)}
	if deps.completerSet {
		lookupOpts = append(lookupOpts, lookup.WithCompleter(deps.completer))
	}

	return &Finder{
		dispatcher: lookup.NewDispatcher(cfg, lookupOpts...),
		logger:     deps.logger,
		verbose:    cfg.DebugEnabled(),
	}
}

// Run produces the launcher document for inv. It always returns at least
// one item; lookup failures arrive as ordinary items.
func (f *Finder) Run(ctx context.Context, inv Invocation) alfred.Output {
	if utf8.RuneCountInString(strings.TrimSpace(inv.Query)) < minQueryRunes {
		loggerpkg.Debug(f.verbose, f.logger, "query too short", loggerpkg.Fields{"literary": inv.Literary})
		return alfred.NewOutput(alfred.Placeholder(inv.Literary))
	}

	res := f.dispatcher.Lookup(ctx, lookup.Query{Text: inv.Query, Literary: inv.Literary})
	records := res.Records()
	if len(records) == 0 {
		loggerpkg.Debug(f.verbose, f.logger, "no suggestions", loggerpkg.Fields{"query": inv.Query})
		return alfred.NewOutput(alfred.NoResults(inv.Query))
	}

	loggerpkg.Debug(f.verbose, f.logger, "rendering suggestions", loggerpkg.Fields{"count": len(records)})
	return alfred.NewOutput(alfred.Render(records)...)
}

// Failure renders an error raised before a Finder could be built, such as
// unreadable configuration, as a single item.
func Failure(err error) alfred.Output {
	return alfred.NewOutput(alfred.Render([]lookup.Suggestion{{
		Word:       "Error",
		Definition: "Configuration error: " + err.Error(),
	}})...)
}
