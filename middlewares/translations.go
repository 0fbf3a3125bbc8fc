package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/pkg/i18n"
)

type (
	// resolverKey is the context key for the request's resolver.
	resolverKey struct{}
	// catalogKey is the context key for the request's catalog.
	catalogKey struct{}
	// clientStateKey is the context key for the serialized client payload.
	clientStateKey struct{}
)

// Translations returns middleware that builds the translation catalog for
// the request's resolved locale, binds a resolver, and selects the client
// payload for the requested route. Catalog, resolver, and payload are stored
// in the request context; handlers read them back with T, CatalogFrom, and
// ClientState.
//
// When the route selection skips (fallback policy "none" with no match), no
// payload is stored and ClientState reports false.
func Translations(loc *localize.Localizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := GetLocale(r.Context())
			if locale == "" {
				locale = loc.DefaultLocale()
			}

			resolve, catalog := loc.Resolver(locale)

			ctx := r.Context()
			ctx = context.WithValue(ctx, resolverKey{}, resolve)
			ctx = context.WithValue(ctx, catalogKey{}, catalog)

			if prefixes, skip := loc.SelectNamespaces(r.URL.Path); !skip {
				payload, err := i18n.MarshalClientState(catalog, prefixes, locale)
				if err != nil {
					loc.Logger().ErrorContext(ctx, "failed to serialize client translations",
						slog.String("path", r.URL.Path),
						slog.String("error", err.Error()))
				} else {
					ctx = context.WithValue(ctx, clientStateKey{}, payload)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// T extracts the request's resolver from the context. Returns a resolver
// that bracket-echoes every key if the Translations middleware is not used,
// so templates never observe a nil function.
func T(ctx context.Context) i18n.Resolver {
	if v, ok := ctx.Value(resolverKey{}).(i18n.Resolver); ok {
		return v
	}
	return func(key string) string { return "[" + key + "]" }
}

// CatalogFrom extracts the request's catalog from the context.
// Returns nil if the Translations middleware is not used.
func CatalogFrom(ctx context.Context) *i18n.Catalog {
	if v, ok := ctx.Value(catalogKey{}).(*i18n.Catalog); ok {
		return v
	}
	return nil
}

// ClientState extracts the serialized client payload from the context.
// ok is false when the middleware is absent or the route selection skipped
// injection entirely.
func ClientState(ctx context.Context) (payload []byte, ok bool) {
	if v, ok := ctx.Value(clientStateKey{}).([]byte); ok {
		return v, true
	}
	return nil, false
}
