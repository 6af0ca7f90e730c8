// Package catalog reads and writes gettext PO translation catalogs.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"

	"github.com/xishang0128/df-translate/bisect"
	"github.com/xishang0128/df-translate/common/file"
)

var ErrNoLanguage = errors.New("catalog has no Language header")

// Catalog is a parsed PO file.
type Catalog struct {
	Source   string
	Language string
	// Pairs holds the translated entries sorted by original text.
	Pairs []bisect.Pair
}

// Parse reads a PO catalog from data. Entries with a msgctxt are included.
func Parse(data []byte) (*Catalog, error) {
	po := gotext.NewPo()
	po.Parse(data)

	domain := po.GetDomain()
	lang := domain.Headers.Get("Language")
	if lang == "" {
		return nil, ErrNoLanguage
	}

	var pairs []bisect.Pair
	seen := make(map[string]bool)
	add := func(translations map[string]*gotext.Translation) {
		for id, tr := range translations {
			if id == "" || seen[id] {
				continue
			}
			if text := tr.Trs[0]; text != "" {
				seen[id] = true
				pairs = append(pairs, bisect.Pair{Original: id, Translation: text})
			}
		}
	}

	// An original translated under several contexts keeps one translation:
	// the context-free one, else the first context by name.
	add(domain.GetTranslations())
	contexts := domain.GetCtxTranslations()
	for _, name := range slices.Sorted(maps.Keys(contexts)) {
		add(contexts[name])
	}

	slices.SortFunc(pairs, func(a, b bisect.Pair) int {
		return strings.Compare(a.Original, b.Original)
	})

	return &Catalog{Language: lang, Pairs: pairs}, nil
}

// Load reads a PO catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadFile reads a PO catalog from a local path or an HTTP(S) URL.
func LoadFile(ctx context.Context, path string) (*Catalog, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cat, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cat.Source = path

	return cat, nil
}

// Translations returns the cleaned-up translated texts.
func (c *Catalog) Translations() []string {
	texts := make([]string, len(c.Pairs))
	for i, p := range c.Pairs {
		texts[i] = CleanupString(p.Translation)
	}
	return texts
}

// Cleaned returns the pairs with cleaned-up translations. When fixSpaces is
// set, leading and trailing spaces are restored except for the originals
// excluded for the catalog language.
func (c *Catalog) Cleaned(exclusions map[string][]string, fixSpaces bool) []bisect.Pair {
	excluded := exclusions[c.Language]

	pairs := make([]bisect.Pair, len(c.Pairs))
	for i, p := range c.Pairs {
		tr := CleanupString(p.Translation)
		if fixSpaces {
			tr = FixSpaces(p.Original, tr, excluded, excluded)
		}
		pairs[i] = bisect.Pair{Original: p.Original, Translation: tr}
	}
	return pairs
}

// Write exports pairs as a PO catalog for language.
func Write(w io.Writer, language string, pairs []bisect.Pair) error {
	po := gotext.NewPo()
	po.Parse([]byte(header(language)))

	domain := po.GetDomain()
	for _, p := range pairs {
		domain.Set(p.Original, p.Translation)
	}

	data, err := domain.MarshalText()
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

// WriteFile exports pairs to path.
func WriteFile(path, language string, pairs []bisect.Pair) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, language, pairs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func header(language string) string {
	return "msgid \"\"\nmsgstr \"\"\n" +
		"\"Language: " + language + "\\n\"\n" +
		"\"MIME-Version: 1.0\\n\"\n" +
		"\"Content-Type: text/plain; charset=UTF-8\\n\"\n" +
		"\"Content-Transfer-Encoding: 8bit\\n\"\n"
}

// Languages returns the sorted set of languages of the *.po files in dir.
// Files that cannot be read are logged and skipped.
func Languages(dir string) ([]string, error) {
	files, err := scan(dir)
	if err != nil {
		return nil, err
	}

	var langs []string
	for _, f := range files {
		if !slices.Contains(langs, f.language) {
			langs = append(langs, f.language)
		}
	}
	slices.Sort(langs)

	return langs, nil
}

// FilesForLanguage returns the paths of the *.po files in dir written in language.
func FilesForLanguage(dir, language string) ([]string, error) {
	files, err := scan(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, f := range files {
		if f.language == language {
			paths = append(paths, f.path)
		}
	}

	return paths, nil
}

type scanned struct {
	path     string
	language string
}

func scan(dir string) ([]scanned, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.po"))
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)

	files := make([]scanned, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Skipping unreadable catalog")
			continue
		}

		cat, err := Parse(data)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Skipping catalog")
			continue
		}

		files = append(files, scanned{path: path, language: cat.Language})
	}

	return files, nil
}
