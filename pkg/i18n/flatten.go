package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Flatten converts a parsed translation document into flat dot-joined keys.
// Nested objects recurse with their key appended to the path prefix; only
// string leaves survive. Leaves of any other type (number, boolean, array,
// null) are dropped entirely, so a non-string value can never be resolved.
// Pure: no I/O, same document always yields the same mapping.
func Flatten(doc map[string]any) map[string]string {
	out := make(map[string]string)
	flattenInto(out, "", doc)
	return out
}

func flattenInto(out map[string]string, prefix string, doc map[string]any) {
	for key, value := range doc {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			flattenInto(out, full, v)
		}
	}
}

// ParseDocument decodes raw source content into a document tree, choosing the
// codec by file extension (YAML for .yaml/.yml, JSON otherwise). Blank input
// parses to an empty tree, not an error.
func ParseDocument(p string, data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var doc map[string]any
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidSource, p, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidSource, p, err)
		}
	}

	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}
