package i18n

import (
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"unicode"
)

// sourceExtensions gates which files count as translation sources.
var sourceExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// Discover walks a locale root and maps every translation source to its
// namespace. The returned map is namespace -> path relative to fsys.
//
// The walk is lexical (fs.WalkDir order), so when two sources derive the same
// namespace the lexically-last one wins on every platform. Unreadable entries
// are reported through log and contribute nothing; a missing or nil root
// yields an empty map, never an error.
func Discover(fsys fs.FS, log *slog.Logger) map[string]string {
	sources := make(map[string]string)
	if fsys == nil {
		return sources
	}

	_ = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if log != nil {
				log.Warn("translation source unreadable",
					slog.String("path", p),
					slog.String("error", err.Error()))
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !sourceExtensions[strings.ToLower(path.Ext(p))] {
			return nil
		}
		sources[NamespaceFromPath(p)] = p
		return nil
	})

	return sources
}

// NamespaceFromPath derives the namespace for a source path relative to its
// locale root: the extension is stripped, path separators become dots, and
// each segment is camelized. Two sources with the same relative path under
// different locale roots always derive the same namespace.
func NamespaceFromPath(p string) string {
	p = strings.TrimSuffix(p, path.Ext(p))
	segments := strings.Split(p, "/")
	for i, segment := range segments {
		segments[i] = camelize(segment)
	}
	return strings.Join(segments, ".")
}

// camelize folds kebab-case and snake_case into camelCase: a "-" or "_"
// followed by a letter collapses into the uppercased letter; every other
// character passes through unchanged.
func camelize(s string) string {
	if !strings.ContainsAny(s, "-_") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if (r == '-' || r == '_') && i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
			b.WriteRune(unicode.ToUpper(runes[i+1]))
			i++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
