//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips a request DTO through JSON so tests can send payloads
// the typed struct cannot express.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key, or removes it when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// Elem applies mutate to the index-th object of the array under key.
func Elem(key string, index int, mutate func(m map[string]any)) func(m map[string]any) {
	return func(m map[string]any) {
		items, ok := m[key].([]any)
		if !ok || index >= len(items) {
			return
		}
		if obj, ok := items[index].(map[string]any); ok {
			mutate(obj)
		}
	}
}
