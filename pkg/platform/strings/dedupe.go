// Package strings provides string list helpers.
package strings

import (
	"strings"
)

// DedupeAndTrim trims whitespace from each element and drops blanks and
// repeats. The first occurrence keeps its position.
//
//	DedupeAndTrim([]string{"  a.json ", "b.json", "a.json", "", "  "})
//	// []string{"a.json", "b.json"}
func DedupeAndTrim(values []string) []string {
	return DedupeFunc(values, strings.TrimSpace)
}

// DedupeFunc is DedupeAndTrim with a caller-supplied normalization. Elements
// that normalize to "" are dropped.
func DedupeFunc(values []string, normalize func(string) string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		n := normalize(v)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	return result
}
