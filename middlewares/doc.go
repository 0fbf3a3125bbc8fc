// Package middlewares wires the localization toolkit into net/http request
// handling.
//
// The intended chain is RequestID -> Locale -> Translations:
//
//	loc, _ := localize.New( ... )
//
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestID())
//	r.Use(middlewares.Locale(loc))
//	r.Use(middlewares.Translations(loc))
//
// Locale negotiates the active locale (URL path segment, cookie,
// Accept-Language, default — first supported code wins). Translations builds
// the request's catalog, binds a resolver, and selects the client payload
// for the requested route; handlers read them back with T, CatalogFrom, and
// ClientState.
package middlewares
