package localize

import (
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"sort"

	"github.com/dmitrymomot/localize/pkg/i18n"
	"github.com/dmitrymomot/localize/pkg/logger"
)

// DefaultLocale is used when no default locale is configured.
const DefaultLocale = "en"

// Localizer holds the process-wide localization configuration: the source
// filesystem, the locale set, resolution behavior, and the client-load
// rules. It is immutable after New and safe for concurrent use; every
// request builds its own catalog through it.
type Localizer struct {
	sources       fs.FS
	defaultLocale string
	locales       []string

	fallbackEnabled    bool
	applyFallbackOnDev bool
	showKeysInProd     bool

	showFallbackIndicator       bool
	fallbackIndicatorFormat     func(text, defaultLocale string) string
	shouldShowFallbackIndicator func(text, defaultLocale string) bool

	clientLoad   i18n.ClientLoadConfig
	log          *slog.Logger
	isProduction func() bool
}

// New creates a Localizer with the given options. All configuration happens
// during construction; request-time operations never fail.
func New(opts ...Option) (*Localizer, error) {
	l := &Localizer{
		defaultLocale:   DefaultLocale,
		fallbackEnabled: true,
		log:             logger.NewNope(),
		isProduction:    func() bool { return false },
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	l.locales = normalizeLocales(l.defaultLocale, l.locales)

	return l, nil
}

// normalizeLocales puts the default locale first and sorts the rest.
func normalizeLocales(defaultLocale string, locales []string) []string {
	set := make(map[string]bool, len(locales))
	for _, code := range locales {
		if code != "" && code != defaultLocale {
			set[code] = true
		}
	}

	out := make([]string, 0, len(set)+1)
	out = append(out, defaultLocale)
	others := make([]string, 0, len(set))
	for code := range set {
		others = append(others, code)
	}
	sort.Strings(others)
	return append(out, others...)
}

// DefaultLocale returns the configured default locale.
func (l *Localizer) DefaultLocale() string {
	return l.defaultLocale
}

// Locales returns the supported locales, default first.
func (l *Localizer) Locales() []string {
	return slices.Clone(l.locales)
}

// Supported reports whether code is a supported locale.
func (l *Localizer) Supported(code string) bool {
	return slices.Contains(l.locales, code)
}

// Catalog builds the merged translation table for locale. The default locale
// overlays as fallback when fallback is enabled and locale differs from it.
// Unsupported locales still build (the fallback overlay fills the table);
// missing locale directories simply contribute nothing.
func (l *Localizer) Catalog(locale string) *i18n.Catalog {
	var active, fallback fs.FS
	if l.sources != nil {
		active = subTree(l.sources, locale)
		if l.fallbackEnabled && locale != l.defaultLocale {
			fallback = subTree(l.sources, l.defaultLocale)
		}
	}
	return i18n.Build(active, fallback, i18n.WithBuildLogger(l.log))
}

// subTree scopes fsys to dir, treating an invalid name as an absent tree.
func subTree(fsys fs.FS, dir string) fs.FS {
	if dir == "" {
		return nil
	}
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil
	}
	return sub
}

// ResolverConfig assembles the behavior configuration for locale, sharing
// the process-wide logger and environment probe.
func (l *Localizer) ResolverConfig(locale string) i18n.Config {
	return i18n.Config{
		Locale:                      locale,
		DefaultLocale:               l.defaultLocale,
		ShowKeysInProd:              l.showKeysInProd,
		ShowFallbackIndicator:       l.showFallbackIndicator,
		ApplyFallbackOnDev:          l.applyFallbackOnDev,
		FallbackIndicatorFormat:     l.fallbackIndicatorFormat,
		ShouldShowFallbackIndicator: l.shouldShowFallbackIndicator,
		IsProduction:                l.isProduction,
		Logger:                      l.log,
	}
}

// Resolver builds the catalog for locale and binds a resolver to it.
func (l *Localizer) Resolver(locale string) (i18n.Resolver, *i18n.Catalog) {
	catalog := l.Catalog(locale)
	return i18n.NewResolver(catalog, l.ResolverConfig(locale)), catalog
}

// SelectNamespaces applies the client-load configuration to path. See
// i18n.SelectNamespaces for the sentinel conventions.
func (l *Localizer) SelectNamespaces(path string) (prefixes []string, skip bool) {
	return i18n.SelectNamespaces(path, l.clientLoad, !l.isProduction(), l.log)
}

// ClientLoad returns the client-load configuration.
func (l *Localizer) ClientLoad() i18n.ClientLoadConfig {
	return l.clientLoad
}

// Logger returns the configured diagnostics logger.
func (l *Localizer) Logger() *slog.Logger {
	return l.log
}

// IsProduction reports the host environment probe's verdict.
func (l *Localizer) IsProduction() bool {
	return l.isProduction()
}
