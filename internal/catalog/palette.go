package catalog

import "strings"

// DefaultHex is returned by NameToHex for names outside the palette.
const DefaultHex = "#FFFFFF"

type Color struct {
	Name string
	Hex  string
}

// Palette is the fixed set of garment colors offered for blanks and designs.
var Palette = []Color{
	{Name: "Black", Hex: "#000000"},
	{Name: "White", Hex: "#FFFFFF"},
	{Name: "Navy", Hex: "#000080"},
	{Name: "Grey", Hex: "#808080"},
	{Name: "Red", Hex: "#FF0000"},
	{Name: "Blue", Hex: "#0000FF"},
	{Name: "Green", Hex: "#008000"},
	{Name: "Yellow", Hex: "#FFFF00"},
	{Name: "Purple", Hex: "#800080"},
}

// NameToHex maps a palette name to its hex code. Lookup is exact first, then
// case-insensitive. Unknown names map to DefaultHex.
func NameToHex(name string) string {
	if c, ok := lookupName(name); ok {
		return c.Hex
	}
	return DefaultHex
}

// HexToName maps a hex code to its palette name. The comparison ignores case
// and a leading '#'.
func HexToName(hex string) (string, bool) {
	want := normalizeHex(hex)
	if want == "" {
		return "", false
	}
	for _, c := range Palette {
		if normalizeHex(c.Hex) == want {
			return c.Name, true
		}
	}
	return "", false
}

// IsPaletteHex reports whether hex is one of the palette codes.
func IsPaletteHex(hex string) bool {
	_, ok := HexToName(hex)
	return ok
}

// CanonicalColorName returns the palette spelling of name.
func CanonicalColorName(name string) (string, bool) {
	c, ok := lookupName(name)
	if !ok {
		return "", false
	}
	return c.Name, true
}

// HexFor resolves a palette name or hex code to the palette's hex spelling.
func HexFor(value string) (string, bool) {
	if name, ok := HexToName(value); ok {
		return NameToHex(name), true
	}
	if name, ok := CanonicalColorName(value); ok {
		return NameToHex(name), true
	}
	return "", false
}

// ValidColors reconciles stored color entries against the palette. Entries may
// be hex codes or names; names match exactly first, then case-insensitively.
// Anything else is dropped. The result holds palette names.
func ValidColors(entries []string) []string {
	valid := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if name, ok := HexToName(entry); ok {
			valid = append(valid, name)
			continue
		}
		if name, ok := CanonicalColorName(entry); ok {
			valid = append(valid, name)
		}
	}
	return valid
}

// ColorLabel renders a stored color for display: the palette name when the
// value is a known hex code, otherwise the value as stored.
func ColorLabel(value string) string {
	if name, ok := HexToName(value); ok {
		return name
	}
	return value
}

func lookupName(name string) (Color, bool) {
	name = strings.TrimSpace(name)
	for _, c := range Palette {
		if c.Name == name {
			return c, true
		}
	}
	for _, c := range Palette {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Color{}, false
}

func normalizeHex(hex string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
}
