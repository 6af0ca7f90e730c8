package catalog

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xishang0128/df-translate/bisect"
)

var replacer = strings.NewReplacer(
	"\ufeff", "",
	"\u00ad", "",
	"\u00a0", " ",
	"\u2018", "'",
	"\u2019", "'",
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2013", "-",
	"\u2014", "-",
	"\u2026", "...",
)

// CleanupString replaces typographic characters with plain ones that every
// one-byte codepage can represent.
func CleanupString(s string) string {
	return replacer.Replace(s)
}

// FixSpaces copies a leading or trailing space of original into translation
// when it is missing. Originals listed in the exclusions for a side are left
// alone on that side. Empty and untranslated strings are returned unchanged.
func FixSpaces(original, translation string, leading, trailing []string) string {
	if original == "" || translation == "" || original == translation {
		return translation
	}

	if !slices.Contains(leading, original) &&
		original[0] == ' ' && translation[0] != ' ' && translation[0] != ',' {
		translation = " " + translation
	}

	if !slices.Contains(trailing, original) &&
		original[len(original)-1] == ' ' && translation[len(translation)-1] != ' ' {
		translation += " "
	}

	return translation
}

// CandidateExclusions returns the originals that start or end with a space,
// ordered case-insensitively ignoring the surrounding spaces.
func CandidateExclusions(pairs []bisect.Pair) []string {
	var candidates []string
	for _, p := range pairs {
		if strings.HasPrefix(p.Original, " ") || strings.HasSuffix(p.Original, " ") {
			candidates = append(candidates, p.Original)
		}
	}

	slices.SortStableFunc(candidates, func(a, b string) int {
		return strings.Compare(strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b)))
	})

	return candidates
}

// HighlightSpaces replaces every leading and trailing space with a bullet.
func HighlightSpaces(s string) string {
	body := strings.TrimLeftFunc(s, unicode.IsSpace)
	lead := utf8.RuneCountInString(s) - utf8.RuneCountInString(body)

	trimmed := strings.TrimRightFunc(body, unicode.IsSpace)
	trail := utf8.RuneCountInString(body) - utf8.RuneCountInString(trimmed)

	return strings.Repeat("•", lead) + trimmed + strings.Repeat("•", trail)
}
