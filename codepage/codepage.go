// Package codepage finds the one-byte codepages a translation can be encoded in.
package codepage

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/charmap"

	"github.com/xishang0128/df-translate/catalog"
)

var ErrNoCatalogs = errors.New("no catalogs for language")

var registry = map[string]*charmap.Charmap{
	"cp437":   charmap.CodePage437,
	"cp850":   charmap.CodePage850,
	"cp852":   charmap.CodePage852,
	"cp855":   charmap.CodePage855,
	"cp858":   charmap.CodePage858,
	"cp860":   charmap.CodePage860,
	"cp862":   charmap.CodePage862,
	"cp863":   charmap.CodePage863,
	"cp865":   charmap.CodePage865,
	"cp866":   charmap.CodePage866,
	"cp874":   charmap.Windows874,
	"cp1250":  charmap.Windows1250,
	"cp1251":  charmap.Windows1251,
	"cp1252":  charmap.Windows1252,
	"cp1253":  charmap.Windows1253,
	"cp1254":  charmap.Windows1254,
	"cp1255":  charmap.Windows1255,
	"cp1256":  charmap.Windows1256,
	"cp1257":  charmap.Windows1257,
	"cp1258":  charmap.Windows1258,
	"koi8-r":  charmap.KOI8R,
	"koi8-u":  charmap.KOI8U,
	"latin1":  charmap.ISO8859_1,
	"latin2":  charmap.ISO8859_2,
	"latin3":  charmap.ISO8859_3,
	"latin4":  charmap.ISO8859_4,
	"latin5":  charmap.ISO8859_9,
	"latin6":  charmap.ISO8859_10,
	"latin7":  charmap.ISO8859_13,
	"latin8":  charmap.ISO8859_14,
	"latin9":  charmap.ISO8859_15,
	"latin10": charmap.ISO8859_16,
}

// DefaultCodepage is the codepage the game ships with.
const DefaultCodepage = "cp437"

// Supported returns the names of all known codepages in natural order.
func Supported() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.SortFunc(names, NaturalCompare)
	return names
}

// Lookup returns the charmap registered under name.
func Lookup(name string) (*charmap.Charmap, bool) {
	cm, ok := registry[name]
	return cm, ok
}

// Fits reports whether every character of every text has a one-byte
// encoding in the named codepage. Unknown codepages never fit.
func Fits(name string, texts []string) bool {
	cm, ok := registry[name]
	if !ok {
		return false
	}

	for _, text := range texts {
		for _, r := range text {
			if _, ok := cm.EncodeRune(r); !ok {
				return false
			}
		}
	}
	return true
}

// Suitable returns the names the texts fit into, in natural order.
func Suitable(names []string, texts []string) []string {
	var result []string
	for _, name := range names {
		if Fits(name, texts) {
			result = append(result, name)
		}
	}
	slices.SortFunc(result, NaturalCompare)
	return result
}

// ForCatalog returns the codepages the cleaned-up translations of cat fit into.
func ForCatalog(cat *catalog.Catalog) []string {
	return Suitable(Supported(), cat.Translations())
}

// ForDirectory returns the codepages every catalog of language in dir fits into.
// Catalogs are evaluated concurrently. ErrNoCatalogs is returned when dir has
// no catalog of language.
func ForDirectory(ctx context.Context, dir, language string) ([]string, error) {
	files, err := catalog.FilesForLanguage(dir, language)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w %s in %s", ErrNoCatalogs, language, dir)
	}

	results := make([][]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range files {
		g.Go(func() error {
			cat, err := catalog.LoadFile(ctx, path)
			if err != nil {
				return err
			}
			results[i] = ForCatalog(cat)

			log.Debug().
				Str("file", path).
				Strs("codepages", results[i]).
				Msg("Evaluated catalog")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	codepages := Supported()
	for _, r := range results {
		codepages = slices.DeleteFunc(codepages, func(name string) bool {
			return !slices.Contains(r, name)
		})
	}

	return codepages, nil
}
