package models

import "sort"

// OptionSelection maps an option axis name to the chosen value,
// e.g. {"Cor": "Preto", "Tamanho": "42"}.
type OptionSelection map[string]string

// Equal reports whether two selections pick the same values, comparing
// key/value pairs structurally. A nil selection equals an empty one: both
// mean "no options chosen".
func (s OptionSelection) Equal(other OptionSelection) bool {
	if len(s) != len(other) {
		return false
	}
	for axis, value := range s {
		if other[axis] != value {
			return false
		}
	}
	return true
}

// Clone returns an independent copy, or nil for an empty selection.
func (s OptionSelection) Clone() OptionSelection {
	if len(s) == 0 {
		return nil
	}
	out := make(OptionSelection, len(s))
	for axis, value := range s {
		out[axis] = value
	}
	return out
}

// CoversAll reports whether every declared axis has a chosen value.
func (s OptionSelection) CoversAll(options []ProductOption) bool {
	for _, opt := range options {
		if _, ok := s[opt.Name]; !ok {
			return false
		}
	}
	return true
}

// Values returns the chosen values in axis-name order, for display.
func (s OptionSelection) Values() []string {
	axes := make([]string, 0, len(s))
	for axis := range s {
		axes = append(axes, axis)
	}
	sort.Strings(axes)

	values := make([]string, len(axes))
	for i, axis := range axes {
		values[i] = s[axis]
	}
	return values
}
