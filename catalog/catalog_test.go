package catalog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xishang0128/df-translate/bisect"
)

const ruCatalog = `msgid ""
msgstr ""
"Language: ru\n"
"Content-Type: text/plain; charset=UTF-8\n"

msgid "Dwarf"
msgstr "Дварф"

msgid " of the "
msgstr "из"

msgid "Untranslated"
msgstr ""

msgid "Axe"
msgstr "Топор"
`

func writeCatalog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	cat, err := Parse([]byte(ruCatalog))
	require.NoError(t, err)

	assert.Equal(t, "ru", cat.Language)
	assert.Equal(t, []bisect.Pair{
		{Original: " of the ", Translation: "из"},
		{Original: "Axe", Translation: "Топор"},
		{Original: "Dwarf", Translation: "Дварф"},
	}, cat.Pairs)
}

func TestParseContexts(t *testing.T) {
	const po = `msgid ""
msgstr ""
"Language: ru\n"

msgctxt "ITEM"
msgid "sword"
msgstr "меч"

msgid "shield"
msgstr "щит"

msgctxt "WEAPON"
msgid "axe"
msgstr "секира"

msgctxt "ITEM"
msgid "axe"
msgstr "топор"

msgctxt "VERB"
msgid "shield"
msgstr "заслонить"

msgctxt "ITEM"
msgid "bow"
msgstr ""
`

	cat, err := Parse([]byte(po))
	require.NoError(t, err)

	assert.Equal(t, []bisect.Pair{
		{Original: "axe", Translation: "топор"},
		{Original: "shield", Translation: "щит"},
		{Original: "sword", Translation: "меч"},
	}, cat.Pairs)
}

func TestParseNoLanguage(t *testing.T) {
	_, err := Parse([]byte("msgid \"a\"\nmsgstr \"b\"\n"))
	assert.ErrorIs(t, err, ErrNoLanguage)
}

func TestLoadFile(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), "ru.po", ruCatalog)

	cat, err := LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, cat.Source)
	assert.Len(t, cat.Pairs, 3)
}

func TestCleaned(t *testing.T) {
	cat := &Catalog{
		Language: "ru",
		Pairs: []bisect.Pair{
			{Original: " of the ", Translation: "из"},
			{Original: "Histories of ", Translation: "Истории"},
			{Original: "It's", Translation: "Это’s — ok"},
		},
	}
	exclusions := map[string][]string{"ru": {"Histories of "}}

	assert.Equal(t, []bisect.Pair{
		{Original: " of the ", Translation: " из "},
		{Original: "Histories of ", Translation: "Истории"},
		{Original: "It's", Translation: "Это's - ok"},
	}, cat.Cleaned(exclusions, true))

	assert.Equal(t, []bisect.Pair{
		{Original: " of the ", Translation: "из"},
		{Original: "Histories of ", Translation: "Истории"},
		{Original: "It's", Translation: "Это's - ok"},
	}, cat.Cleaned(exclusions, false))

	assert.Equal(t, "Это’s — ok", cat.Pairs[2].Translation, "source pairs untouched")
}

func TestWriteRoundTrip(t *testing.T) {
	pairs := []bisect.Pair{
		{Original: "Axe", Translation: "Топор"},
		{Original: "Dwarf", Translation: "Дварф"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "ru", pairs))

	cat, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "ru", cat.Language)
	assert.Equal(t, pairs, cat.Pairs)
}

func TestLanguagesAndFiles(t *testing.T) {
	dir := t.TempDir()
	ru := writeCatalog(t, dir, "a_ru.po", ruCatalog)
	writeCatalog(t, dir, "b_de.po", "msgid \"\"\nmsgstr \"\"\n\"Language: de\\n\"\n\nmsgid \"Axe\"\nmsgstr \"Axt\"\n")
	ru2 := writeCatalog(t, dir, "c_ru.po", ruCatalog)
	writeCatalog(t, dir, "broken.po", "msgid \"x\"\nmsgstr \"y\"\n")
	writeCatalog(t, dir, "notes.txt", ruCatalog)

	langs, err := Languages(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "ru"}, langs)

	files, err := FilesForLanguage(dir, "ru")
	require.NoError(t, err)
	assert.Equal(t, []string{ru, ru2}, files)

	files, err = FilesForLanguage(dir, "fr")
	require.NoError(t, err)
	assert.Empty(t, files)
}
