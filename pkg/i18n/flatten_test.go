package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/i18n"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("flattens nested string leaves", func(t *testing.T) {
		t.Parallel()
		doc := map[string]any{
			"title": "Dashboard",
			"actions": map[string]any{
				"save":   "Save",
				"cancel": "Cancel",
				"confirm": map[string]any{
					"yes": "Yes",
					"no":  "No",
				},
			},
		}

		require.Equal(t, map[string]string{
			"title":               "Dashboard",
			"actions.save":        "Save",
			"actions.cancel":      "Cancel",
			"actions.confirm.yes": "Yes",
			"actions.confirm.no":  "No",
		}, i18n.Flatten(doc))
	})

	t.Run("drops non-string leaves", func(t *testing.T) {
		t.Parallel()
		doc := map[string]any{
			"a": map[string]any{"b": 1},
			"c": true,
			"d": nil,
			"e": []any{"x", "y"},
			"f": 3.14,
			"g": "kept",
		}

		require.Equal(t, map[string]string{"g": "kept"}, i18n.Flatten(doc))
	})

	t.Run("empty document flattens to empty map", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, i18n.Flatten(map[string]any{}))
	})

	t.Run("empty string values are kept", func(t *testing.T) {
		t.Parallel()
		got := i18n.Flatten(map[string]any{"blank": ""})
		require.Equal(t, map[string]string{"blank": ""}, got)
	})
}

func TestParseDocument(t *testing.T) {
	t.Parallel()

	t.Run("parses JSON", func(t *testing.T) {
		t.Parallel()
		doc, err := i18n.ParseDocument("common.json", []byte(`{"hello":"Hello","nested":{"a":"A"}}`))
		require.NoError(t, err)
		require.Equal(t, map[string]string{"hello": "Hello", "nested.a": "A"}, i18n.Flatten(doc))
	})

	t.Run("parses YAML", func(t *testing.T) {
		t.Parallel()
		doc, err := i18n.ParseDocument("common.yaml", []byte("hello: Hello\nnested:\n  a: A\n"))
		require.NoError(t, err)
		require.Equal(t, map[string]string{"hello": "Hello", "nested.a": "A"}, i18n.Flatten(doc))
	})

	t.Run("blank input parses to empty tree", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{"", "   ", "\n\t\n"} {
			doc, err := i18n.ParseDocument("common.json", []byte(input))
			require.NoError(t, err)
			require.Empty(t, doc)
		}
	})

	t.Run("JSON null parses to empty tree", func(t *testing.T) {
		t.Parallel()
		doc, err := i18n.ParseDocument("common.json", []byte(`null`))
		require.NoError(t, err)
		require.NotNil(t, doc)
		require.Empty(t, doc)
	})

	t.Run("invalid JSON is reported", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.ParseDocument("common.json", []byte(`{"broken":`))
		require.Error(t, err)
		require.ErrorIs(t, err, i18n.ErrInvalidSource)
	})

	t.Run("invalid YAML is reported", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.ParseDocument("common.yaml", []byte("a: [unclosed"))
		require.Error(t, err)
		require.ErrorIs(t, err, i18n.ErrInvalidSource)
	})
}
