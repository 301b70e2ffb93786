package modules

import "strings"

// Selection records which modules are enabled.
type Selection map[string]bool

// DefaultSelection enables the modules marked Default in r.
func DefaultSelection(r *Registry) Selection {
	sel := make(Selection)
	for _, d := range r.Descriptors() {
		sel[d.Name] = d.Default
	}
	return sel
}

// Apply processes toggle tokens in order: "name" enables a module and
// "-name" disables it, so later tokens win. Tokens naming no known module
// are returned.
func (s Selection) Apply(tokens []string) []string {
	var unknown []string
	for _, tok := range tokens {
		name, disable := strings.CutPrefix(tok, "-")
		if _, known := s[name]; !known {
			unknown = append(unknown, tok)
			continue
		}
		s[name] = !disable
	}
	return unknown
}

// IsToggle reports whether tok enables or disables a known module.
func (s Selection) IsToggle(tok string) bool {
	_, known := s[strings.TrimPrefix(tok, "-")]
	return known
}

// Tokens renders the selection as toggle tokens in registry order, listing
// only the ones that differ from the defaults.
func (s Selection) Tokens(r *Registry) []string {
	var out []string
	for _, d := range r.Descriptors() {
		enabled := s[d.Name]
		if enabled == d.Default {
			continue
		}
		if enabled {
			out = append(out, d.Name)
		} else {
			out = append(out, "-"+d.Name)
		}
	}
	return out
}
