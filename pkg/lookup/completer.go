package lookup

import (
	"context"
	"fmt"
	"net/url"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	configpkg "github.com/minhyannv/findword/pkg/config"
)

// CompletionRequest is a single system + user exchange.
type CompletionRequest struct {
	Model     string
	System    string
	User      string
	MaxTokens int64
}

// Completer sends one completion request and returns the reply text.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// OpenAICompleter talks to any OpenAI-compatible chat completions endpoint,
// by default Anthropic's.
type OpenAICompleter struct {
	client openai.Client
}

// NewOpenAICompleter builds a completer from cfg. Extra request options are
// appended after the configured ones. The SDK's automatic retries are
// disabled: a lookup makes at most one request.
func NewOpenAICompleter(cfg configpkg.Config, extra ...option.RequestOption) (*OpenAICompleter, error) {
	cfg = configpkg.Normalize(cfg)
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: expected an absolute http(s) url", cfg.BaseURL)
	}

	opts := []option.RequestOption{
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	opts = append(opts, extra...)
	return &OpenAICompleter{client: openai.NewClient(opts...)}, nil
}

// Complete implements Completer.
func (c *OpenAICompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		MaxCompletionTokens: openai.Int(req.MaxTokens),
		N:                   openai.Int(1),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return completion.Choices[0].Message.Content, nil
}
