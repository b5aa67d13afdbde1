// Package lookup asks a hosted language model for words matching a description.
package lookup

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Query is one reverse-dictionary request.
type Query struct {
	Text     string
	Literary bool
}

// Suggestion is one candidate word returned by the model.
// Every field except Word and Definition is optional and may be zero.
type Suggestion struct {
	Word         string   `json:"word"`
	Definition   string   `json:"definition"`
	PartOfSpeech string   `json:"part_of_speech,omitempty"`
	Frequency    *int     `json:"frequency,omitempty"`
	Origin       string   `json:"origin,omitempty"`
	Etymology    string   `json:"etymology,omitempty"`
	Synonyms     []string `json:"synonyms,omitempty"`
	Antonyms     []string `json:"antonyms,omitempty"`
}

// UnmarshalJSON decodes a suggestion. Word and definition must be strings.
// The optional fields are decoded leniently: a value of the wrong type is
// dropped rather than rejected, frequency may be a numeric string, and a bare
// string is accepted as a one-element synonym or antonym list.
func (s *Suggestion) UnmarshalJSON(data []byte) error {
	var aux struct {
		Word         string          `json:"word"`
		Definition   string          `json:"definition"`
		PartOfSpeech json.RawMessage `json:"part_of_speech"`
		Frequency    json.RawMessage `json:"frequency"`
		Origin       json.RawMessage `json:"origin"`
		Etymology    json.RawMessage `json:"etymology"`
		Synonyms     json.RawMessage `json:"synonyms"`
		Antonyms     json.RawMessage `json:"antonyms"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*s = Suggestion{
		Word:         aux.Word,
		Definition:   aux.Definition,
		PartOfSpeech: optionalString(aux.PartOfSpeech),
		Frequency:    parseFrequency(aux.Frequency),
		Origin:       optionalString(aux.Origin),
		Etymology:    optionalString(aux.Etymology),
		Synonyms:     optionalList(aux.Synonyms),
		Antonyms:     optionalList(aux.Antonyms),
	}
	return nil
}

func optionalString(raw json.RawMessage) string {
	var v string
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return ""
	}
	return v
}

// optionalList keeps the string elements of an array. A single string
// becomes a one-element list.
func optionalList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	if v := strings.TrimSpace(optionalString(raw)); v != "" {
		return []string{v}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	var out []string
	for _, e := range elems {
		if v := optionalString(e); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// parseFrequency rounds to the nearest integer and clamps to [0, 10].
func parseFrequency(raw json.RawMessage) *int {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return nil
		}
		f = parsed
	}

	f = math.Max(0, math.Min(10, f))
	n := int(math.Round(f))
	return &n
}

// IntPtr is a convenience for building suggestions with a frequency.
func IntPtr(n int) *int {
	return &n
}
