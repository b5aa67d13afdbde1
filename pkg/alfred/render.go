package alfred

import (
	"fmt"
	"strings"

	"github.com/minhyannv/findword/pkg/lookup"
)

const (
	defaultFrequency  = 5
	frequencySegments = 10
	filledSegment     = "●"
	emptySegment      = "○"

	defaultDefinition = "No definition available"
	defaultOrigin     = "Unknown"
	noSynonyms        = "No synonyms available"
	noAntonyms        = "No antonyms available"

	uidPrefix = "find-word"
)

// Render converts suggestions to items, one per suggestion, in order.
// It performs no I/O and never fails on missing optional fields.
func Render(suggestions []lookup.Suggestion) []Item {
	items := make([]Item, 0, len(suggestions))
	for i, s := range suggestions {
		items = append(items, renderItem(i, s))
	}
	return items
}

func renderItem(index int, s lookup.Suggestion) Item {
	definition := s.Definition
	if strings.TrimSpace(definition) == "" {
		definition = defaultDefinition
	}
	origin := strings.TrimSpace(s.Origin)
	if origin == "" {
		origin = defaultOrigin
	}

	return Item{
		UID:          fmt.Sprintf("%s-%s-%d", uidPrefix, s.Word, index),
		Title:        title(s),
		Subtitle:     definition,
		Arg:          s.Word,
		Autocomplete: s.Word,
		Valid:        true,
		Text: &Text{
			Copy:      s.Word,
			LargeType: s.Word + "\n\n" + definition,
		},
		Mods: &Mods{
			Shift: &Mod{
				Valid:    true,
				Arg:      s.Word,
				Subtitle: fmt.Sprintf("Synonyms: %s | Antonyms: %s", joinOr(s.Synonyms, noSynonyms), joinOr(s.Antonyms, noAntonyms)),
			},
			Ctrl: &Mod{
				Valid:    true,
				Arg:      s.Word,
				Subtitle: etymologyLine(origin, s.Etymology),
			},
		},
	}
}

// title renders "(pos) word  ●●●○○○○○○○". The tag is omitted when the
// part of speech is unknown.
func title(s lookup.Suggestion) string {
	bar := frequencyBar(s.Frequency)
	if abbr := tables.abbreviate(s.PartOfSpeech); abbr != "" {
		return fmt.Sprintf("(%s) %s  %s", abbr, s.Word, bar)
	}
	return fmt.Sprintf("%s  %s", s.Word, bar)
}

func frequencyBar(freq *int) string {
	n := defaultFrequency
	if freq != nil {
		n = *freq
	}
	n = max(0, min(n, frequencySegments))
	return strings.Repeat(filledSegment, n) + strings.Repeat(emptySegment, frequencySegments-n)
}

func etymologyLine(origin, etymology string) string {
	flag := tables.flag(origin)
	if etymology = strings.TrimSpace(etymology); etymology != "" {
		return fmt.Sprintf("%s %s • %s", flag, origin, etymology)
	}
	return fmt.Sprintf("%s %s", flag, origin)
}

func joinOr(values []string, fallback string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return fallback
	}
	return strings.Join(kept, ", ")
}

// Placeholder is shown while the query is too short to look up.
func Placeholder(literary bool) Item {
	if literary {
		return Item{
			Title:    "Find Literary Word by Meaning",
			Subtitle: "Type a description of the literary word you're looking for...",
		}
	}
	return Item{
		Title:    "Find Word by Meaning",
		Subtitle: "Type a description of the word you're looking for...",
	}
}

// NoResults is shown when the model returned an empty list.
func NoResults(query string) Item {
	return Item{
		Title:    "No Results Found",
		Subtitle: fmt.Sprintf(`No words found matching "%s"`, query),
		Valid:    false,
	}
}
