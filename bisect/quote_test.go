package bisect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `''`},
		{"c", `'c'`},
		{"it's", `"it's"`},
		{`say "hi"`, `'say "hi"'`},
		{`it's "x"`, `'it\'s "x"'`},
		{`back\slash`, `'back\\slash'`},
		{"line\nbreak\ttab\r", `'line\nbreak\ttab\r'`},
		{"\x00\x7f", `'\x00\x7f'`},
		{"no break", `'no\xa0break'`},
		{"zero\u200bwidth", `'zero\u200bwidth'`},
		{"Привет", `'Привет'`},
		{"\xff", `'\xff'`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, quote(tt.in), "quote(%q)", tt.in)
	}
}
