package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Hello World", "Hello World"},
		{"ampersand", "R&D", `R\&D`},
		{"percent", "increased 25%", `increased 25\%`},
		{"dollar", "$1M budget", `\$1M budget`},
		{"hash", "team #1", `team \#1`},
		{"underscore", "user_name", `user\_name`},
		{"braces", "{alpha}", `\{alpha\}`},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"tilde", "~home", `\textasciitilde{}home`},
		{"caret", "x^2", `x\textasciicircum{}2`},
		{"mixed", "50% of $2M & more", `50\% of \$2M \& more`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLaTeX(tt.input))
		})
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Hello", "Hello"},
		{"ampersand", "R&D", "R&amp;D"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"mixed", "a < b & c > d", "a &lt; b &amp; c &gt; d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeXML(tt.input))
		})
	}
}
