package alfred

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

// lexicon holds the part-of-speech abbreviations and origin flags.
type lexicon struct {
	PartsOfSpeech map[string]string `yaml:"parts_of_speech"`
	Origins       map[string]string `yaml:"origins"`
	FallbackFlag  string            `yaml:"fallback_flag"`
}

var tables = mustParseLexicon(tablesYAML)

func parseLexicon(data []byte) (lexicon, error) {
	var lx lexicon
	if err := yaml.Unmarshal(data, &lx); err != nil {
		return lexicon{}, err
	}
	if len(lx.PartsOfSpeech) == 0 {
		return lexicon{}, fmt.Errorf("missing parts_of_speech table")
	}
	if len(lx.Origins) == 0 {
		return lexicon{}, fmt.Errorf("missing origins table")
	}
	if strings.TrimSpace(lx.FallbackFlag) == "" {
		return lexicon{}, fmt.Errorf("missing fallback_flag")
	}

	lx.PartsOfSpeech = lowerKeys(lx.PartsOfSpeech)
	lx.Origins = lowerKeys(lx.Origins)
	return lx, nil
}

func mustParseLexicon(data []byte) lexicon {
	lx, err := parseLexicon(data)
	if err != nil {
		panic(fmt.Sprintf("alfred: parse embedded tables: %v", err))
	}
	return lx
}

func lowerKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

// abbreviate maps a part of speech to its short tag. Unknown values are
// truncated to their first four characters.
func (lx lexicon) abbreviate(pos string) string {
	pos = strings.TrimSpace(pos)
	if abbr, ok := lx.PartsOfSpeech[strings.ToLower(pos)]; ok {
		return abbr
	}
	runes := []rune(pos)
	if len(runes) > 4 {
		runes = runes[:4]
	}
	return string(runes)
}

// flag returns the flag glyph for a language of origin.
func (lx lexicon) flag(origin string) string {
	if f, ok := lx.Origins[strings.ToLower(strings.TrimSpace(origin))]; ok {
		return f
	}
	return lx.FallbackFlag
}
