package lookup

import (
	"errors"
	"fmt"
)

// Kind classifies why a lookup produced no suggestions.
type Kind int

const (
	KindUnexpected Kind = iota
	KindDependency
	KindCredential
	KindUpstream
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindDependency:
		return "dependency"
	case KindCredential:
		return "credential"
	case KindUpstream:
		return "upstream"
	case KindParse:
		return "parse"
	default:
		return "unexpected"
	}
}

var (
	// ErrMissingCredential is reported when no API key is configured.
	ErrMissingCredential = errors.New("ANTHROPIC_API_KEY environment variable not set")
	// ErrEmptyCompletion is returned by a Completer when the reply has no choices.
	ErrEmptyCompletion   = errors.New("empty completion choices")
	errNoCompleter       = errors.New("no completion client configured")
)

// Error is a failed lookup. It never escapes the dispatcher as a Go error;
// Result.Records turns it into a displayable suggestion.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Record maps the failure to the single synthetic suggestion shown to the user.
func (e *Error) Record() Suggestion {
	msg := e.Error()
	switch e.Kind {
	case KindDependency:
		return Suggestion{Word: "Error", Definition: "completion client not available: " + msg}
	case KindCredential:
		return Suggestion{Word: "Error", Definition: msg}
	case KindUpstream:
		return Suggestion{Word: "API Error", Definition: "Claude API error: " + msg}
	case KindParse:
		return Suggestion{Word: "Parse Error", Definition: "Could not parse Claude response: " + msg}
	default:
		return Suggestion{Word: "Error", Definition: "Unexpected error: " + msg}
	}
}

// Result is the outcome of one lookup: either suggestions or an error.
type Result struct {
	Suggestions []Suggestion
	Err         *Error
}

// Records returns the suggestions to render. A failed lookup yields exactly
// one synthetic record describing the failure.
func (r Result) Records() []Suggestion {
	if r.Err != nil {
		return []Suggestion{r.Err.Record()}
	}
	return r.Suggestions
}

func failure(kind Kind, err error) Result {
	return Result{Err: &Error{Kind: kind, Err: err}}
}

func recoveredError(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", v)
}
