// Package alfred renders lookup suggestions as Alfred Script Filter JSON.
package alfred

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output is the Script Filter document written to stdout.
type Output struct {
	Items []Item `json:"items"`
}

// Item is one row in the launcher's result list.
type Item struct {
	UID          string `json:"uid,omitempty"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Arg          string `json:"arg,omitempty"`
	Autocomplete string `json:"autocomplete,omitempty"`
	Valid        bool   `json:"valid"`
	Text         *Text  `json:"text,omitempty"`
	Mods         *Mods  `json:"mods,omitempty"`
}

// Text is what Alfred copies (⌘C) and shows in Large Type (⌘L).
type Text struct {
	Copy      string `json:"copy"`
	LargeType string `json:"largetype"`
}

// Mods holds the alternate rows shown while a modifier key is held.
type Mods struct {
	Shift *Mod `json:"shift,omitempty"`
	Ctrl  *Mod `json:"ctrl,omitempty"`
}

// Mod overrides an item's action and subtitle under a modifier key.
type Mod struct {
	Valid    bool   `json:"valid"`
	Arg      string `json:"arg"`
	Subtitle string `json:"subtitle"`
}

// NewOutput wraps items in a document.
func NewOutput(items ...Item) Output {
	if items == nil {
		items = []Item{}
	}
	return Output{Items: items}
}

// Write encodes out as a single JSON line. Non-ASCII and HTML characters are
// written verbatim.
func Write(w io.Writer, out Output) error {
	if out.Items == nil {
		out.Items = []Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write script filter output: %w", err)
	}
	return nil
}
