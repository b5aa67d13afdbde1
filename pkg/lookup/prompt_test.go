// Tests for prompt generation helpers.
package lookup

import (
	"strings"
	"testing"
)

func TestBuildSystemPromptDescribesContract(t *testing.T) {
	prompt := BuildSystemPrompt(false)
	if !containsAll(prompt, []string{
		"reverse dictionary assistant",
		"JSON array",
		"part_of_speech",
		"frequency",
		"origin",
		"etymology",
		"synonyms",
		"antonyms",
		`"word": "obviate"`,
		"5-10 words ranked by relevance",
	}) {
		t.Fatalf("prompt missing expected content:\n%s", prompt)
	}
	if strings.Contains(prompt, literaryInstruction) {
		t.Fatal("non-literary prompt should not carry the literary instruction")
	}
}

func TestBuildSystemPromptLiterary(t *testing.T) {
	prompt := BuildSystemPrompt(true)
	if !strings.Contains(prompt, "suggest words that match it. "+literaryInstruction) {
		t.Fatalf("literary instruction should follow the opening sentence:\n%s", prompt)
	}
}

// containsAll reports whether all substrings exist in text.
func containsAll(text string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(text, needle) {
			return false
		}
	}
	return true
}
