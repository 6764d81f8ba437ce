package ptr

import "strings"

func Of[T any](v T) *T {
	return &v
}

// NonBlank returns nil for strings that are empty after trimming.
func NonBlank(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
