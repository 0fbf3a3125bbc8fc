package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/pkg/logger"
)

// localeKey is the context key for the resolved locale.
type localeKey struct{}

// LocaleSource extracts a candidate locale code from the request.
// Returns the code and true when one was found.
type LocaleSource func(r *http.Request) (string, bool)

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Sources    []LocaleSource
	sourcesSet bool
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleSources sets a custom source chain, tried in order.
func WithLocaleSources(sources ...LocaleSource) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Sources = sources
		cfg.sourcesSet = true
	}
}

// FromPathSegment returns a source that reads the first URL path segment
// when it is a supported locale code ("/es/dashboard" -> "es").
func FromPathSegment(supported func(string) bool) LocaleSource {
	return func(r *http.Request) (string, bool) {
		segment := strings.TrimPrefix(r.URL.Path, "/")
		if i := strings.IndexByte(segment, '/'); i >= 0 {
			segment = segment[:i]
		}
		if segment != "" && supported(segment) {
			return segment, true
		}
		return "", false
	}
}

// FromCookie returns a source that reads a locale code from a cookie.
func FromCookie(name string, supported func(string) bool) LocaleSource {
	return func(r *http.Request) (string, bool) {
		cookie, err := r.Cookie(name)
		if err != nil || cookie.Value == "" || !supported(cookie.Value) {
			return "", false
		}
		return cookie.Value, true
	}
}

// FromAcceptLanguage returns a source that parses the Accept-Language header
// into an ordered preference list and picks the first supported code.
// Matching is by exact tag first, then by base language ("en" for "en-US").
func FromAcceptLanguage(available []string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return "", false
		}

		tags, _, err := language.ParseAcceptLanguage(header)
		if err != nil {
			return "", false
		}

		for _, tag := range tags {
			full := strings.ToLower(tag.String())
			base, confidence := tag.Base()
			for _, code := range available {
				lower := strings.ToLower(code)
				if lower == full {
					return code, true
				}
				if confidence != language.No && lower == base.String() {
					return code, true
				}
			}
		}
		return "", false
	}
}

// Locale returns middleware that negotiates the request's active locale and
// stores it in the context. The default chain is path segment -> "lang"
// cookie -> Accept-Language; when every source misses, the localizer's
// default locale applies. The result is echoed in a Content-Language header.
func Locale(loc *localize.Localizer, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.sourcesSet {
		cfg.Sources = []LocaleSource{
			FromPathSegment(loc.Supported),
			FromCookie("lang", loc.Supported),
			FromAcceptLanguage(loc.Locales()),
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := loc.DefaultLocale()
			for _, source := range cfg.Sources {
				if v, ok := source(r); ok && v != "" {
					code = v
					break
				}
			}

			w.Header().Set("Content-Language", code)
			ctx := context.WithValue(r.Context(), localeKey{}, code)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLocale extracts the resolved locale from the context.
// Returns an empty string if the Locale middleware is not used.
func GetLocale(ctx context.Context) string {
	if v, ok := ctx.Value(localeKey{}).(string); ok {
		return v
	}
	return ""
}

// LocaleLogExtractor returns a logger extractor that injects the resolved
// locale into every log record carrying the request context.
func LocaleLogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if code := GetLocale(ctx); code != "" {
			return slog.String("locale", code), true
		}
		return slog.Attr{}, false
	}
}
