package ui

import "strings"

// MaxSuggestions caps the rows shown under an input.
const MaxSuggestions = 3

// Suggest returns the names containing input, ignoring case, in source order.
func Suggest(names []string, input string) []string {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return nil
	}

	var out []string
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			out = append(out, name)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// Autocomplete drives the suggestion panel of one input.
type Autocomplete struct {
	input Input
	panel Panel
	names *NameStore
}

func NewAutocomplete(input Input, panel Panel, names *NameStore) *Autocomplete {
	return &Autocomplete{input: input, panel: panel, names: names}
}

// HandleInput runs on every change of the input text.
func (a *Autocomplete) HandleInput() {
	matches := Suggest(a.names.Names(), a.input.Value())
	if len(matches) == 0 {
		a.panel.Hide()
		return
	}
	a.panel.Show(matches, a.pick)
}

func (a *Autocomplete) pick(name string) {
	a.input.SetValue(name)
	a.panel.Hide()
}

// HandleDocumentClick hides the panel when the click landed outside both the
// input and the panel.
func (a *Autocomplete) HandleDocumentClick(target any) {
	if a.input.Contains(target) || a.panel.Contains(target) {
		return
	}
	a.panel.Hide()
}
