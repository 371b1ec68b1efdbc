// internal/search/filter.go
package search

import "strings"

// FieldsFunc lists the searchable text of one entity.
type FieldsFunc[T any] func(T) []string

// Filter returns the items with at least one field containing query,
// ignoring case. Relative order is kept. An empty or blank query matches
// everything and returns items as given.
func Filter[T any](items []T, query string, fields FieldsFunc[T]) []T {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(fields(item), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether a single entity matches query.
func Matches[T any](item T, query string, fields FieldsFunc[T]) bool {
	needle := strings.ToLower(strings.TrimSpace(query))
	return needle == "" || matches(fields(item), needle)
}

func matches(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
