package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xishang0128/df-translate/bisect"
)

func TestCleanupString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"\ufeffBOM", "BOM"},
		{"don’t", "don't"},
		{"“quoted”", `"quoted"`},
		{"a—b–c", "a-b-c"},
		{"wait…", "wait..."},
		{"no\u00a0break", "no break"},
		{"soft\u00adhyphen", "softhyphen"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanupString(tt.in), "CleanupString(%q)", tt.in)
	}
}

func TestFixSpaces(t *testing.T) {
	tests := []struct {
		name                  string
		original, translation string
		leading, trailing     []string
		want                  string
	}{
		{"both sides", " a ", "b", nil, nil, " b "},
		{"already spaced", " a ", " b ", nil, nil, " b "},
		{"comma keeps leading", " a", ",b", nil, nil, ",b"},
		{"leading excluded", " a ", "b", []string{" a "}, nil, "b "},
		{"trailing excluded", " a ", "b", nil, []string{" a "}, " b"},
		{"untranslated", " a ", " a ", nil, nil, " a "},
		{"empty translation", " a ", "", nil, nil, ""},
		{"empty original", "", "b", nil, nil, "b"},
		{"no spaces", "a", "b", nil, nil, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FixSpaces(tt.original, tt.translation, tt.leading, tt.trailing))
		})
	}
}

func TestCandidateExclusions(t *testing.T) {
	pairs := []bisect.Pair{
		{Original: "zebra "},
		{Original: "Dwarf"},
		{Original: " apple"},
		{Original: "Banana "},
		{Original: "middle space"},
	}

	assert.Equal(t, []string{" apple", "Banana ", "zebra "}, CandidateExclusions(pairs))
	assert.Empty(t, CandidateExclusions(nil))
}

func TestHighlightSpaces(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"test", "test"},
		{"  test   ", "••test•••"},
		{" a b ", "•a b•"},
		{"   ", "•••"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HighlightSpaces(tt.in), "HighlightSpaces(%q)", tt.in)
	}
}
