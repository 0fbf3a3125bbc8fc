package i18n

import (
	"bytes"
	"encoding/json"
	"slices"
)

// ClientState is the wire form of one request's client-visible translations.
// Decoding it and feeding Translations/FallbackKeys into NewTableResolver
// reconstructs resolution on the client side of a serialize boundary.
type ClientState struct {
	Locale       string            `json:"locale"`
	Translations map[string]string `json:"translations"`
	FallbackKeys []string          `json:"fallbackKeys,omitempty"`
}

// MarshalClientState serializes the catalog subset selected by prefixes.
// The encoder keeps HTML escaping on, so "<", ">" and "&" never appear raw
// in the output and the bytes are safe to embed inside a script element
// verbatim. FallbackKeys is restricted to the extracted subset and sorted.
func MarshalClientState(c *Catalog, prefixes []string, locale string) ([]byte, error) {
	sub := c.Extract(prefixes)

	state := ClientState{
		Locale:       locale,
		Translations: sub,
	}
	for key := range sub {
		if c.fallback[key] {
			state.FallbackKeys = append(state.FallbackKeys, key)
		}
	}
	slices.Sort(state.FallbackKeys)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(state); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
