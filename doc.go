// Package localize turns per-locale translation source trees into
// request-scoped resolvers for server-rendered applications.
//
// A Localizer is configured once at startup with a source filesystem laid
// out as {locale}/..., the supported locale set, and a client-load
// configuration deciding which namespaces ship to client-side code per
// route. Each request then builds its own immutable catalog for the
// resolved locale:
//
//	loc, err := localize.New(
//		localize.WithSources(translationsFS),
//		localize.WithDefaultLocale("en"),
//		localize.WithLocales("en", "es", "de"),
//		localize.WithClientLoadConfig(i18n.ClientLoadConfig{
//			Always: []string{"common"},
//			Routes: []i18n.RouteNamespaces{
//				{Pattern: "/indicators/*", Namespaces: []string{"indicators"}},
//			},
//		}),
//	)
//
//	resolve, catalog := loc.Resolver("es")
//	title := resolve("indicators.title")
//
// The heavy lifting lives in pkg/i18n; this package wires it to
// configuration, logging, and the environment probe. HTTP integration lives
// in the middlewares package.
package localize
