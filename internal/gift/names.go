package gift

import "strings"

// FormatNames joins display names into natural-language prose:
//
//	["Alice"]                → "Alice"
//	["Alice","Bob"]          → "Alice and Bob"
//	["Alice","Bob","Carl"]   → "Alice, Bob and Carl"
//
// No Oxford comma. Names are inserted verbatim — no HTML escaping happens
// here, so callers rendering into markup must treat the result as untrusted.
func FormatNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
