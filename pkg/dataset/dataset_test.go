package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vulntor/eventkit/pkg/collection"
)

const servicesYAML = `
items:
  - name: web
    port: 80
    meta: {tier: front}
  - name: ssh
    port: 22
    meta: {tier: admin}
  - name: api
    port: 8080
    meta: {tier: front}
  - name: web
    port: 80
    meta: {tier: front}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected []any
		wantErr  bool
	}{
		{"yaml sequence", "- 1\n- 2\n- three\n", []any{1, 2, "three"}, false},
		{"json sequence", `[1, 2.5, "x", true]`, []any{1, 2.5, "x", true}, false},
		{"items mapping", "items: [4, 4, 3]\n", []any{4, 4, 3}, false},
		{"json items mapping", `{"items": [{"a": 1}]}`, []any{map[string]any{"a": 1}}, false},
		{"empty document", "", []any{}, false},
		{"null document", "null\n", []any{}, false},
		{"mapping without items", "foo: bar\n", nil, true},
		{"items not a sequence", "items: 3\n", nil, true},
		{"scalar document", "42\n", nil, true},
		{"malformed", "items: [1, 2\n", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := DecodeBytes([]byte(tt.doc))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, items)
		})
	}
}

func TestDecode_InvalidDocumentSentinel(t *testing.T) {
	_, err := DecodeBytes([]byte("foo: bar\n"))
	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestDecode_NormalizesNestedMappings(t *testing.T) {
	items, err := DecodeBytes([]byte("- {1: one, nested: {2: two}}\n"))
	require.NoError(t, err)
	require.Equal(t, []any{
		map[string]any{"1": "one", "nested": map[string]any{"2": "two"}},
	}, items)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "services.yaml", servicesYAML)

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, c.Count())

	first, ok := c.First()
	require.True(t, ok)
	name, ok := Field(first, "name")
	require.True(t, ok)
	require.Equal(t, "web", name)
}

func TestLoad_AppliesOptions(t *testing.T) {
	path := writeFile(t, "nums.json", `[1, 2, 3]`)

	c, err := Load(path, collection.WithDecorator(func(v any) any { return v.(int) * 10 }))
	require.NoError(t, err)
	require.Equal(t, []any{10, 20, 30}, c.Slice())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "bad.yaml", "foo: bar\n")
	_, err = Load(path)
	require.ErrorIs(t, err, ErrInvalidDocument)
	require.Contains(t, err.Error(), path)
}

func TestField(t *testing.T) {
	item := map[string]any{
		"name": "web",
		"meta": map[string]any{"tier": "front", "owner": map[string]any{"team": "ops"}},
	}

	tests := []struct {
		path     string
		expected any
		found    bool
	}{
		{"", item, true},
		{"name", "web", true},
		{"meta.tier", "front", true},
		{"meta.owner.team", "ops", true},
		{"meta.missing", nil, false},
		{"name.inner", nil, false},
		{"absent", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v, ok := Field(item, tt.path)
			require.Equal(t, tt.found, ok)
			require.Equal(t, tt.expected, v)
		})
	}

	_, ok := Field(42, "name")
	require.False(t, ok, "scalars have no fields")
}

func TestParseScalar(t *testing.T) {
	tests := []struct {
		in       string
		expected any
	}{
		{"80", int64(80)},
		{"-3", int64(-3)},
		{"2.5", 2.5},
		{"true", true},
		{"FALSE", false},
		{"null", nil},
		{"web", "web"},
		{"front end", "front end"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseScalar(tt.in))
		})
	}
}
