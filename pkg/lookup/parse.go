package lookup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const codeFence = "```"

// stripCodeFence removes markdown fencing the model sometimes wraps around
// its JSON: a leading ``` with an optional language tag and a trailing ```.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(text, codeFence); ok {
		i := 0
		for i < len(rest) && isFenceTagByte(rest[i]) {
			i++
		}
		text = rest[i:]
	}
	text = strings.TrimSuffix(text, codeFence)
	return strings.TrimSpace(text)
}

func isFenceTagByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-' || b == '_'
}

// ParseSuggestions decodes a model reply into suggestions, preserving order.
// The reply must be a JSON array of objects, optionally fenced. A JSON null
// decodes to an empty list. Records without a word are skipped since there
// is nothing to insert.
func ParseSuggestions(text string) ([]Suggestion, error) {
	body := stripCodeFence(text)

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}

	out := make([]Suggestion, 0, len(raw))
	for i, item := range raw {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("suggestion %d: expected a JSON object", i)
		}
		var s Suggestion
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, fmt.Errorf("suggestion %d: %w", i, err)
		}
		s.Word = strings.TrimSpace(s.Word)
		if s.Word == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
