package middlewares_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/middlewares"
	"github.com/dmitrymomot/localize/pkg/i18n"
)

func translationsLocalizer(t *testing.T, policy i18n.FallbackPolicy) *localize.Localizer {
	t.Helper()
	loc, err := localize.New(
		localize.WithSources(fstest.MapFS{
			"en/common.json":     {Data: []byte(`{"hello":"Hello"}`)},
			"en/indicators.json": {Data: []byte(`{"title":"Indicators"}`)},
			"es/common.json":     {Data: []byte(`{"hello":"Hola"}`)},
		}),
		localize.WithDefaultLocale("en"),
		localize.WithLocales("en", "es"),
		localize.WithClientLoadConfig(i18n.ClientLoadConfig{
			Always: []string{"common"},
			Routes: []i18n.RouteNamespaces{
				{Pattern: "/indicators/*", Namespaces: []string{"indicators"}},
			},
			FallbackPolicy: policy,
		}),
	)
	require.NoError(t, err)
	return loc
}

func TestTranslations(t *testing.T) {
	t.Parallel()

	t.Run("stores resolver and catalog", func(t *testing.T) {
		t.Parallel()
		loc := translationsLocalizer(t, "")

		handler := middlewares.Translations(loc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			resolve := middlewares.T(r.Context())
			require.Equal(t, "Hello", resolve("common.hello"))

			catalog := middlewares.CatalogFrom(r.Context())
			require.NotNil(t, catalog)
			require.Positive(t, catalog.Len())
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})

	t.Run("uses the negotiated locale", func(t *testing.T) {
		t.Parallel()
		loc := translationsLocalizer(t, "")

		chain := middlewares.Locale(loc)(middlewares.Translations(loc)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "Hola", middlewares.T(r.Context())("common.hello"))
			})))

		req := httptest.NewRequest(http.MethodGet, "/es/dashboard", nil)
		chain.ServeHTTP(httptest.NewRecorder(), req)
	})

	t.Run("selects the payload for the route", func(t *testing.T) {
		t.Parallel()
		loc := translationsLocalizer(t, "")

		handler := middlewares.Translations(loc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload, ok := middlewares.ClientState(r.Context())
			require.True(t, ok)

			var state i18n.ClientState
			require.NoError(t, json.Unmarshal(payload, &state))
			require.Contains(t, state.Translations, "common.hello")
			require.Contains(t, state.Translations, "indicators.title")
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/indicators/42", nil))
	})

	t.Run("skip policy stores no payload", func(t *testing.T) {
		t.Parallel()
		loc := translationsLocalizer(t, i18n.FallbackNone)

		handler := middlewares.Translations(loc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := middlewares.ClientState(r.Context())
			require.False(t, ok)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/unmatched", nil))
	})

	t.Run("missing middleware yields safe accessors", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()
		require.Equal(t, "[some.key]", middlewares.T(ctx)("some.key"))
		require.Nil(t, middlewares.CatalogFrom(ctx))
		_, ok := middlewares.ClientState(ctx)
		require.False(t, ok)
	})
}
