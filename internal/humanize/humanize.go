// Package humanize formats lists for error messages.
package humanize

import "strings"

// Join joins items with sep, using last before the final item:
// Join([a b c], ", ", " or ") is "a, b or c".
func Join(items []string, sep, last string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], sep) + last + items[len(items)-1]
}

// Or joins items as "a, b or c".
func Or(items []string) string { return Join(items, ", ", " or ") }

// And joins items as "a, b and c".
func And(items []string) string { return Join(items, ", ", " and ") }
