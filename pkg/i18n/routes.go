package i18n

import (
	"log/slog"
	"strings"
)

// FallbackPolicy decides what ships to the client when no route pattern
// matches the requested path.
type FallbackPolicy string

const (
	// FallbackAll extracts the entire table.
	FallbackAll FallbackPolicy = "all"

	// FallbackNone skips extraction and injection entirely.
	FallbackNone FallbackPolicy = "none"

	// FallbackAlwaysOnly extracts only the Always namespaces. This is the
	// default policy.
	FallbackAlwaysOnly FallbackPolicy = "always-only"
)

// RouteNamespaces binds one route pattern to the namespace prefixes its pages
// need client-side. A pattern is a path prefix, optionally ending in a single
// "*" wildcard that matches any suffix.
type RouteNamespaces struct {
	Pattern    string
	Namespaces []string
}

// ClientLoadConfig decides which namespace prefixes are shipped to
// client-side code per route. Supplied once at configuration time and
// read-only per request.
type ClientLoadConfig struct {
	// Always lists namespace prefixes shipped on every matched route.
	Always []string

	// Routes is scanned in order; every matching pattern contributes its
	// namespaces.
	Routes []RouteNamespaces

	// FallbackPolicy applies when no pattern matches. Empty means
	// FallbackAlwaysOnly.
	FallbackPolicy FallbackPolicy

	// IgnoreTrailingSlash strips one trailing "/" from the path and each
	// pattern before matching. The root path "/" is never altered.
	IgnoreTrailingSlash bool

	// WarnOnOverlap emits a diagnostic in development when more than one
	// pattern matches the same path.
	WarnOnOverlap bool
}

// SelectNamespaces decides which namespace prefixes the page at path needs.
//
// The returned slice follows the extraction sentinel convention: an empty,
// non-nil slice means "extract everything". skip is true only under
// FallbackNone with no match, meaning no extraction or injection should
// happen at all. When at least one pattern matches, the result is Always
// plus every matched pattern's namespaces (duplicates allowed), regardless
// of the fallback policy.
func SelectNamespaces(path string, cfg ClientLoadConfig, isDev bool, log *slog.Logger) (prefixes []string, skip bool) {
	path = normalizeTrailingSlash(path, cfg.IgnoreTrailingSlash)

	var matched []string
	var matchedPatterns []string
	for _, route := range cfg.Routes {
		pattern := normalizeTrailingSlash(route.Pattern, cfg.IgnoreTrailingSlash)
		if matchRoutePattern(pattern, path) {
			matched = append(matched, route.Namespaces...)
			matchedPatterns = append(matchedPatterns, route.Pattern)
		}
	}

	if len(matchedPatterns) == 0 {
		switch cfg.FallbackPolicy {
		case FallbackAll:
			return []string{}, false
		case FallbackNone:
			return nil, true
		default:
			return append([]string{}, cfg.Always...), false
		}
	}

	if cfg.WarnOnOverlap && len(matchedPatterns) > 1 && isDev && log != nil {
		log.Warn("multiple route patterns matched",
			slog.String("path", path),
			slog.Any("patterns", matchedPatterns))
	}

	out := make([]string, 0, len(cfg.Always)+len(matched))
	out = append(out, cfg.Always...)
	out = append(out, matched...)
	return out, false
}

// matchRoutePattern reports whether path matches pattern. A pattern without a
// wildcard matches only on exact equality. A wildcard pattern matches when
// its literal prefix is a prefix of the path, or when the path is the bare
// directory form, exactly one character short of the pattern's trailing
// slash ("/indicators" for "/indicators/*").
func matchRoutePattern(pattern, path string) bool {
	star := strings.IndexByte(pattern, '*')
	if star < 0 {
		return pattern == path
	}

	prefix := pattern[:star]
	if strings.HasPrefix(path, prefix) {
		return true
	}
	return len(path) == len(prefix)-1 && prefix[:len(prefix)-1] == path
}

// normalizeTrailingSlash strips a single trailing "/" when enabled, leaving
// the root path alone.
func normalizeTrailingSlash(p string, ignore bool) string {
	if !ignore || p == "/" {
		return p
	}
	return strings.TrimSuffix(p, "/")
}

// ExtractNamespaces returns the entries of table selected by prefixes. A key
// is included when it equals a prefix exactly or starts with prefix + ".".
// An empty prefixes slice is the "load everything" sentinel: the table is
// returned unchanged.
func ExtractNamespaces(table map[string]string, prefixes []string) map[string]string {
	if len(prefixes) == 0 {
		return table
	}

	out := make(map[string]string)
	for key, value := range table {
		for _, prefix := range prefixes {
			if key == prefix || strings.HasPrefix(key, prefix+".") {
				out[key] = value
				break
			}
		}
	}
	return out
}
