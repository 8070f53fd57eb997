package str

import "strings"

// SplitTrim splits s on sep, trims whitespace and drops empty entries. Used
// for comma-separated keyword lists coming from flags, config and stored
// profiles.
func SplitTrim(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinTrim is the inverse of SplitTrim, skipping blank entries.
func JoinTrim(items []string, sep string) string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return strings.Join(out, sep)
}
