// Package i18n resolves user-facing text keys into localized strings for
// server-rendered applications.
//
// The package builds one flat translation table per request by discovering
// hierarchical translation sources under a locale root, flattening them into
// dot-joined namespaced keys, and overlaying the active locale on top of the
// default locale while tracking which entries are borrowed from the fallback.
// The resulting Catalog is immutable and safe for concurrent reads.
//
// # Building a catalog
//
// Translation sources are JSON or YAML files addressed through fs.FS. The
// file's path relative to the locale root becomes its namespace, with
// kebab-case and snake_case segments camelized:
//
//	en/pdi-modals.json                  -> namespace "pdiModals"
//	en/features/navigator/dashboard.json -> namespace "features.navigator.dashboard"
//
// A catalog overlays two roots, the active locale on top of the default:
//
//	catalog := i18n.Build(activeFS, defaultFS)
//	value, ok := catalog.Value("common.actions.save")
//
// Keys whose value came from the default locale are reported by
// Catalog.IsFallback, so callers can decorate borrowed text.
//
// # Resolving keys
//
// NewResolver binds a catalog to a behavior Config and returns a resolve
// function used during the full-page render:
//
//	resolve := i18n.NewResolver(catalog, i18n.Config{
//		Locale:        "es",
//		DefaultLocale: "en",
//	})
//	text := resolve("common.hello")
//
// Missing keys resolve to "[key]" in development and to an empty string in
// production (or "[key]" when ShowKeysInProd is set). Namespaced scopes a
// resolver under a prefix and composes:
//
//	tCommon := i18n.Namespaced(resolve, "common")
//	tCommon("hello") // same as resolve("common.hello")
//
// # Shipping a subset to the client
//
// SelectNamespaces decides, from an ordered route-pattern configuration,
// which namespace prefixes a page needs client-side, and ExtractNamespaces
// slices the table down to them. MarshalClientState serializes the subset
// with HTML escaping on so it can be embedded in a script element verbatim.
package i18n
