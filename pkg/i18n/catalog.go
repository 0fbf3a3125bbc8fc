package i18n

import (
	"io/fs"
	"log/slog"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Catalog is the merged translation table for one resolved locale, together
// with the provenance of every entry borrowed from the fallback locale.
// It is immutable after Build, making it safe for concurrent reads; each
// request owns its own catalog and no state is shared across requests.
type Catalog struct {
	table    map[string]string
	fallback map[string]bool
}

// BuildOption configures a catalog build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	logger *slog.Logger
}

// WithBuildLogger routes discovery and parse diagnostics to log.
// Without it, source errors are swallowed silently.
func WithBuildLogger(log *slog.Logger) BuildOption {
	return func(cfg *buildConfig) {
		cfg.logger = log
	}
}

// entry is one flattened (key, value) pair in fold order.
type entry struct {
	key   string
	value string
}

// Build overlays the active locale root on top of the fallback locale root
// and returns the merged catalog. Pass a nil fallback root to disable
// fallback entirely; the provenance set is then always empty.
//
// The two roots are loaded concurrently, but the fold is strictly ordered:
// the fallback pass writes first (marking every first write as borrowed), and
// the active pass overwrites, clearing provenance for every key it replaces.
// A key only the active locale defines is never marked as borrowed.
func Build(active, fallback fs.FS, opts ...BuildOption) *Catalog {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var fallbackEntries, activeEntries []entry
	var g errgroup.Group
	g.Go(func() error {
		fallbackEntries = loadRoot(fallback, cfg.logger)
		return nil
	})
	g.Go(func() error {
		activeEntries = loadRoot(active, cfg.logger)
		return nil
	})
	_ = g.Wait()

	c := &Catalog{
		table:    make(map[string]string, len(fallbackEntries)+len(activeEntries)),
		fallback: make(map[string]bool),
	}

	for _, e := range fallbackEntries {
		if _, exists := c.table[e.key]; !exists {
			c.fallback[e.key] = true
		}
		c.table[e.key] = e.value
	}
	for _, e := range activeEntries {
		_, existed := c.table[e.key]
		c.table[e.key] = e.value
		if existed {
			delete(c.fallback, e.key)
		}
	}

	return c
}

// loadRoot discovers and flattens every source under one locale root into an
// ordered entry sequence. Namespaces and keys are visited in sorted order so
// the fold, and therefore any last-wins collision, is deterministic.
// Unreadable or unparsable sources log a diagnostic and contribute nothing.
func loadRoot(fsys fs.FS, log *slog.Logger) []entry {
	if fsys == nil {
		return nil
	}

	sources := Discover(fsys, log)
	var out []entry
	for _, namespace := range slices.Sorted(maps.Keys(sources)) {
		p := sources[namespace]
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			if log != nil {
				log.Warn("translation source unreadable",
					slog.String("path", p),
					slog.String("error", err.Error()))
			}
			continue
		}

		doc, err := ParseDocument(p, data)
		if err != nil {
			if log != nil {
				log.Warn("translation source invalid",
					slog.String("path", p),
					slog.String("error", err.Error()))
			}
			continue
		}

		flat := Flatten(doc)
		for _, key := range slices.Sorted(maps.Keys(flat)) {
			out = append(out, entry{key: namespace + "." + key, value: flat[key]})
		}
	}
	return out
}

// Value returns the translation for key and whether it exists.
func (c *Catalog) Value(key string) (string, bool) {
	v, ok := c.table[key]
	return v, ok
}

// IsFallback reports whether key's current value was borrowed from the
// fallback locale.
func (c *Catalog) IsFallback(key string) bool {
	return c.fallback[key]
}

// Len returns the number of entries in the table.
func (c *Catalog) Len() int {
	return len(c.table)
}

// Table returns a copy of the merged table. The catalog itself stays
// immutable no matter what the caller does with the copy.
func (c *Catalog) Table() map[string]string {
	return maps.Clone(c.table)
}

// FallbackKeys returns the sorted list of keys borrowed from the fallback
// locale.
func (c *Catalog) FallbackKeys() []string {
	return slices.Sorted(maps.Keys(c.fallback))
}

// Extract returns the subset of the table selected by prefixes; see
// ExtractNamespaces. An empty prefixes slice selects the whole table.
// The result is always a copy.
func (c *Catalog) Extract(prefixes []string) map[string]string {
	if len(prefixes) == 0 {
		return maps.Clone(c.table)
	}
	return ExtractNamespaces(c.table, prefixes)
}
