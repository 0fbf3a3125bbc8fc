package i18n

import "log/slog"

// Resolver resolves a translation key into its display string.
type Resolver func(key string) string

// Config controls resolution behavior for one request.
//
// The zero value is valid: development behavior, no fallback indicator, no
// diagnostics. Inconsistent configuration (an indicator requested without a
// format function, or without a default locale) degrades to "no indicator
// applied" rather than failing.
type Config struct {
	// Locale is the resolved active locale, used in diagnostics and passed
	// to ShouldShowFallbackIndicator consumers via the catalog's provenance.
	Locale string

	// DefaultLocale is the fallback locale. Required for the fallback
	// indicator to apply.
	DefaultLocale string

	// ShowKeysInProd returns "[key]" instead of an empty string for missing
	// keys under production behavior.
	ShowKeysInProd bool

	// ShowFallbackIndicator decorates values borrowed from the default
	// locale using FallbackIndicatorFormat.
	ShowFallbackIndicator bool

	// ApplyFallbackOnDev forces production resolution behavior in
	// development, useful for previewing fallback decoration locally.
	ApplyFallbackOnDev bool

	// FallbackIndicatorFormat renders a borrowed value, e.g.
	// func(text, locale string) string { return text + " [" + locale + "]" }.
	FallbackIndicatorFormat func(text, defaultLocale string) string

	// ShouldShowFallbackIndicator, when set, gates the indicator per value.
	// It receives the raw value and the default locale.
	ShouldShowFallbackIndicator func(text, defaultLocale string) bool

	// IsProduction probes the host environment. Nil means development.
	IsProduction func() bool

	// Logger receives missing-key and wrong-type diagnostics emitted under
	// development behavior. Nil disables diagnostics.
	Logger *slog.Logger
}

// prodBehavior derives the effective resolution mode.
func (cfg Config) prodBehavior() bool {
	if cfg.ApplyFallbackOnDev {
		return true
	}
	return cfg.IsProduction != nil && cfg.IsProduction()
}

// NewResolver binds a catalog to cfg and returns the resolve function used
// for render-time lookups. The catalog is read-only to the resolver.
//
// Resolution policy:
//   - missing key: "[key]" in development (with a diagnostic); under
//     production behavior an empty string, or "[key]" when ShowKeysInProd.
//   - present key: the value, decorated by FallbackIndicatorFormat when the
//     value was borrowed from the default locale and the indicator is fully
//     configured under production behavior.
func NewResolver(c *Catalog, cfg Config) Resolver {
	return newResolver(
		func(key string) (any, bool) {
			v, ok := c.table[key]
			return v, ok
		},
		c.IsFallback,
		cfg,
	)
}

// NewTableResolver builds a resolver over an externally supplied table, such
// as one reconstructed from a client payload. Unlike a catalog, an external
// table may hold non-string values; those resolve under the same policy as
// missing keys, with a wrong-type diagnostic.
func NewTableResolver(table map[string]any, fallbackKeys map[string]bool, cfg Config) Resolver {
	return newResolver(
		func(key string) (any, bool) {
			v, ok := table[key]
			return v, ok
		},
		func(key string) bool {
			return fallbackKeys[key]
		},
		cfg,
	)
}

func newResolver(lookup func(string) (any, bool), isFallback func(string) bool, cfg Config) Resolver {
	prod := cfg.prodBehavior()

	return func(key string) string {
		raw, ok := lookup(key)
		if !ok {
			return unresolved(cfg, prod, key, "translation key not found")
		}

		value, ok := raw.(string)
		if !ok {
			return unresolved(cfg, prod, key, "translation value is not a string")
		}

		if prod && cfg.ShowFallbackIndicator && isFallback(key) &&
			cfg.DefaultLocale != "" && cfg.FallbackIndicatorFormat != nil {
			if cfg.ShouldShowFallbackIndicator == nil || cfg.ShouldShowFallbackIndicator(value, cfg.DefaultLocale) {
				return cfg.FallbackIndicatorFormat(value, cfg.DefaultLocale)
			}
		}

		return value
	}
}

// unresolved applies the missing-key policy: production behavior hides the
// key unless ShowKeysInProd; development shows it bracketed and emits a
// diagnostic naming the full key.
func unresolved(cfg Config, prod bool, key, msg string) string {
	if prod {
		if cfg.ShowKeysInProd {
			return "[" + key + "]"
		}
		return ""
	}

	if cfg.Logger != nil {
		cfg.Logger.Warn(msg,
			slog.String("key", key),
			slog.String("locale", cfg.Locale))
	}
	return "[" + key + "]"
}

// Namespaced scopes a resolver under prefix. An empty sub-key resolves the
// prefix itself. Decorators compose: Namespaced(Namespaced(r, "a"), "b")
// behaves like Namespaced(r, "a.b"), and diagnostics always carry the fully
// composed key, so callers can locate the exact absent entry.
func Namespaced(r Resolver, prefix string) Resolver {
	return func(key string) string {
		if key == "" {
			return r(prefix)
		}
		return r(prefix + "." + key)
	}
}
