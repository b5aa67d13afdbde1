package lookup

import (
	"context"
	"errors"

	"github.com/openai/openai-go"

	configpkg "github.com/minhyannv/findword/pkg/config"
	loggerpkg "github.com/minhyannv/findword/pkg/logger"
)

// Dispatcher turns a Query into suggestions with one completion request.
type Dispatcher struct {
	config    configpkg.Config
	completer Completer
	clientErr error

	logger  loggerpkg.Logger
	verbose bool
}

// NewDispatcher builds a Dispatcher. Without WithCompleter the dispatcher
// talks to cfg.BaseURL through OpenAICompleter.
func NewDispatcher(cfg configpkg.Config, opts ...Option) *Dispatcher {
	cfg = configpkg.Normalize(cfg)
	deps := dispatcherDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	d := &Dispatcher{
		config:  cfg,
		logger:  deps.logger,
		verbose: cfg.DebugEnabled(),
	}
	switch {
	case deps.completerSet && deps.completer == nil:
		d.clientErr = errNoCompleter
	case deps.completerSet:
		d.completer = deps.completer
	default:
		c, err := NewOpenAICompleter(cfg)
		if err != nil {
			d.clientErr = err
		} else {
			d.completer = c
		}
	}

	loggerpkg.Debug(d.verbose, d.logger, "dispatcher init", loggerpkg.Fields{
		"model":      cfg.Model,
		"base_url":   cfg.BaseURL,
		"max_tokens": cfg.MaxTokens,
		"has_key":    cfg.APIKey != "",
	})
	return d
}

// Lookup asks the model for words matching q. It never returns a Go error
// and never panics; failures are reported in Result.Err.
func (d *Dispatcher) Lookup(ctx context.Context, q Query) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failure(KindUnexpected, recoveredError(r))
		}
		if res.Err != nil {
			loggerpkg.Warn(d.logger, "lookup failed", loggerpkg.Fields{
				"kind":  res.Err.Kind.String(),
				"error": res.Err.Error(),
			})
		}
	}()

	if d.clientErr != nil || d.completer == nil {
		err := d.clientErr
		if err == nil {
			err = errNoCompleter
		}
		return failure(KindDependency, err)
	}
	if d.config.APIKey == "" {
		return failure(KindCredential, ErrMissingCredential)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	req := CompletionRequest{
		Model:     d.config.Model,
		System:    BuildSystemPrompt(q.Literary),
		User:      q.Text,
		MaxTokens: d.config.MaxTokens,
	}
	d.debug("sending completion request", loggerpkg.Fields{
		"model":        req.Model,
		"literary":     q.Literary,
		"query_bytes":  len(req.User),
		"system_bytes": len(req.System),
		"max_tokens":   req.MaxTokens,
	})

	text, err := d.completer.Complete(ctx, req)
	if err != nil {
		if errors.Is(err, ErrEmptyCompletion) {
			return failure(KindUnexpected, err)
		}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			d.debug("completion rejected", loggerpkg.Fields{"status": apiErr.StatusCode})
		}
		return failure(KindUpstream, err)
	}
	d.debug("completion received", loggerpkg.Fields{"bytes": len(text)})

	suggestions, err := ParseSuggestions(text)
	if err != nil {
		return failure(KindParse, err)
	}
	d.debug("suggestions parsed", loggerpkg.Fields{"count": len(suggestions)})
	return Result{Suggestions: suggestions}
}

func (d *Dispatcher) debug(msg string, fields loggerpkg.Fields) {
	loggerpkg.Debug(d.verbose, d.logger, msg, fields)
}
