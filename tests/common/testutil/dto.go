//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into its JSON map so single fields can be mutated.
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

// Field sets key on the map; a nil value removes it.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// FormValues renders a flat map as form values; nil values are skipped.
func FormValues(m map[string]any) url.Values {
	form := url.Values{}
	for k, v := range m {
		if v == nil {
			continue
		}
		form.Set(k, fmt.Sprint(v))
	}
	return form
}
