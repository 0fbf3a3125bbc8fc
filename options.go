package localize

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/dmitrymomot/localize/pkg/i18n"
)

var (
	ErrEmptyLocale = errors.New("localize: locale cannot be empty")
	ErrNilSources  = errors.New("localize: sources filesystem cannot be nil")
	ErrNilProbe    = errors.New("localize: production probe cannot be nil")
)

// Option configures the Localizer during construction.
type Option func(*Localizer) error

// WithSources sets the translation source filesystem, laid out as
// {locale}/... with JSON or YAML documents at any depth.
func WithSources(fsys fs.FS) Option {
	return func(l *Localizer) error {
		if fsys == nil {
			return ErrNilSources
		}
		l.sources = fsys
		return nil
	}
}

// WithDefaultLocale sets the default/fallback locale.
func WithDefaultLocale(code string) Option {
	return func(l *Localizer) error {
		if code == "" {
			return ErrEmptyLocale
		}
		l.defaultLocale = code
		return nil
	}
}

// WithLocales sets the supported locale codes. The default locale is always
// included and placed first.
func WithLocales(codes ...string) Option {
	return func(l *Localizer) error {
		l.locales = codes
		return nil
	}
}

// WithFallback toggles the default-locale overlay. Disabled, a catalog holds
// only active-locale entries and its provenance set is always empty.
func WithFallback(enabled bool) Option {
	return func(l *Localizer) error {
		l.fallbackEnabled = enabled
		return nil
	}
}

// WithShowKeysInProd makes missing keys resolve to "[key]" instead of an
// empty string under production behavior.
func WithShowKeysInProd() Option {
	return func(l *Localizer) error {
		l.showKeysInProd = true
		return nil
	}
}

// WithApplyFallbackOnDev forces production resolution behavior in
// development, useful for previewing fallback decoration locally.
func WithApplyFallbackOnDev() Option {
	return func(l *Localizer) error {
		l.applyFallbackOnDev = true
		return nil
	}
}

// WithFallbackIndicator decorates values borrowed from the default locale
// under production behavior. should may be nil to decorate unconditionally.
func WithFallbackIndicator(format func(text, defaultLocale string) string, should func(text, defaultLocale string) bool) Option {
	return func(l *Localizer) error {
		l.showFallbackIndicator = true
		l.fallbackIndicatorFormat = format
		l.shouldShowFallbackIndicator = should
		return nil
	}
}

// WithClientLoadConfig sets the route-driven client payload rules.
func WithClientLoadConfig(cfg i18n.ClientLoadConfig) Option {
	return func(l *Localizer) error {
		l.clientLoad = cfg
		return nil
	}
}

// WithLogger routes discovery, resolution, and route-overlap diagnostics to
// log. Without it, diagnostics are discarded.
func WithLogger(log *slog.Logger) Option {
	return func(l *Localizer) error {
		if log != nil {
			l.log = log
		}
		return nil
	}
}

// WithProductionProbe supplies the host's environment detection.
func WithProductionProbe(probe func() bool) Option {
	return func(l *Localizer) error {
		if probe == nil {
			return ErrNilProbe
		}
		l.isProduction = probe
		return nil
	}
}
