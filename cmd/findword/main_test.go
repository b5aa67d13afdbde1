package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minhyannv/findword/pkg/finder"
	"github.com/minhyannv/findword/pkg/lookup"
)

type scriptFilter struct {
	Items []struct {
		UID      string `json:"uid"`
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
		Arg      string `json:"arg"`
		Valid    bool   `json:"valid"`
	} `json:"items"`
}

type cannedCompleter string

func (c cannedCompleter) Complete(context.Context, lookup.CompletionRequest) (string, error) {
	return string(c), nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

// withoutEnvFiles keeps a developer's .env out of the test run.
func withoutEnvFiles(t *testing.T) {
	t.Helper()
	prev := envFiles
	envFiles = []string{filepath.Join(t.TempDir(), "missing.env")}
	t.Cleanup(func() { envFiles = prev })
}

func decode(t *testing.T, raw []byte) scriptFilter {
	t.Helper()
	var doc scriptFilter
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("stdout is not a script filter document: %v\n%s", err, raw)
	}
	return doc
}

func TestRunMissingCredentialExitsZero(t *testing.T) {
	withoutEnvFiles(t)
	t.Setenv("ANTHROPIC_API_KEY", "")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), finder.Invocation{Query: "to make unnecessary"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}

	doc := decode(t, stdout.Bytes())
	if len(doc.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(doc.Items))
	}
	if !doc.Items[0].Valid || !strings.Contains(doc.Items[0].Title, "Error") {
		t.Fatalf("unexpected item: %+v", doc.Items[0])
	}
	if doc.Items[0].Subtitle != "ANTHROPIC_API_KEY environment variable not set" {
		t.Fatalf("unexpected subtitle %q", doc.Items[0].Subtitle)
	}
}

func TestRunShortQueryPrintsPlaceholder(t *testing.T) {
	withoutEnvFiles(t)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), finder.Invocation{Query: "a", Literary: true}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}

	doc := decode(t, stdout.Bytes())
	if len(doc.Items) != 1 || doc.Items[0].Valid {
		t.Fatalf("expected one invalid placeholder, got %+v", doc.Items)
	}
	if doc.Items[0].Title != "Find Literary Word by Meaning" {
		t.Fatalf("unexpected title %q", doc.Items[0].Title)
	}
}

func TestRunMalformedReplyExitsZero(t *testing.T) {
	withoutEnvFiles(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), finder.Invocation{Query: "to make unnecessary"}, &stdout, &stderr,
		finder.WithCompleter(cannedCompleter("Sorry, I cannot help with that.")))
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}

	doc := decode(t, stdout.Bytes())
	if len(doc.Items) != 1 || doc.Items[0].Arg != "Parse Error" {
		t.Fatalf("expected one parse error item, got %+v", doc.Items)
	}
	if strings.Count(stdout.String(), "\n") != 1 {
		t.Fatalf("expected exactly one document on stdout, got %q", stdout.String())
	}
}

func TestRunConfigErrorIsRendered(t *testing.T) {
	withoutEnvFiles(t)
	t.Setenv("FINDWORD_MAX_TOKENS", "lots")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), finder.Invocation{Query: "to make unnecessary"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}

	doc := decode(t, stdout.Bytes())
	if len(doc.Items) != 1 || !strings.HasPrefix(doc.Items[0].Subtitle, "Configuration error: ") {
		t.Fatalf("expected configuration error item, got %+v", doc.Items)
	}
	if !strings.Contains(stderr.String(), "load config") {
		t.Fatalf("expected config error on stderr, got %q", stderr.String())
	}
}

func TestRunWriteFailure(t *testing.T) {
	withoutEnvFiles(t)

	var stderr bytes.Buffer
	code := run(context.Background(), finder.Invocation{}, failingWriter{}, &stderr)
	if code != exitWriteFailed {
		t.Fatalf("expected exit %d, got %d", exitWriteFailed, code)
	}
}

func TestLoadCLIConfigReadsEnvFile(t *testing.T) {
	t.Setenv("CLAUDE_MODEL", "")
	if err := os.Unsetenv("CLAUDE_MODEL"); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("# dev settings\nCLAUDE_MODEL=claude-from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	prev := envFiles
	envFiles = []string{path}
	t.Cleanup(func() { envFiles = prev })

	cfg, err := loadCLIConfig()
	if err != nil {
		t.Fatalf("loadCLIConfig: %v", err)
	}
	if cfg.Model != "claude-from-dotenv" {
		t.Fatalf("expected model from .env, got %q", cfg.Model)
	}
}

func TestLoadCLIConfigEnvironmentWins(t *testing.T) {
	t.Setenv("CLAUDE_MODEL", "claude-from-env")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("CLAUDE_MODEL=claude-from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	prev := envFiles
	envFiles = []string{path}
	t.Cleanup(func() { envFiles = prev })

	cfg, err := loadCLIConfig()
	if err != nil {
		t.Fatalf("loadCLIConfig: %v", err)
	}
	if cfg.Model != "claude-from-env" {
		t.Fatalf("expected launcher environment to win, got %q", cfg.Model)
	}
}
