package catalog

import "strings"

// Sizes lists the garment sizes in display order.
var Sizes = []string{"Small", "Medium", "Large", "X-Large", "XX-Large", "XXX-Large"}

// CanonicalSize returns the catalog spelling of size, matching exactly first
// and then case-insensitively.
func CanonicalSize(size string) (string, bool) {
	size = strings.TrimSpace(size)
	for _, s := range Sizes {
		if s == size {
			return s, true
		}
	}
	for _, s := range Sizes {
		if strings.EqualFold(s, size) {
			return s, true
		}
	}
	return "", false
}

// ValidSizes keeps the entries that name a catalog size, in input order.
// Unknown entries are dropped without error.
func ValidSizes(entries []string) []string {
	valid := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s, ok := CanonicalSize(entry); ok {
			valid = append(valid, s)
		}
	}
	return valid
}

// SizeCode is the size segment of a generated SKU.
func SizeCode(size string) string {
	switch size {
	case "XX-Large":
		return "XX"
	case "XXX-Large":
		return "XXX"
	}
	if size == "" {
		return ""
	}
	return strings.ToUpper(size[:1])
}

// SplitList parses a comma separated form value, trimming blanks.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
