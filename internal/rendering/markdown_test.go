package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitBoldSpans(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "no markers",
			input: "plain text",
			want:  []Span{{Text: "plain text"}},
		},
		{
			name:  "bold in the middle",
			input: "Reduced costs by **25%** annually",
			want: []Span{
				{Text: "Reduced costs by "},
				{Text: "25%", Bold: true},
				{Text: " annually"},
			},
		},
		{
			name:  "bold at start",
			input: "**Lead** engineer",
			want: []Span{
				{Text: "Lead", Bold: true},
				{Text: " engineer"},
			},
		},
		{
			name:  "multiple bold spans",
			input: "**a** and **b**",
			want: []Span{
				{Text: "a", Bold: true},
				{Text: " and "},
				{Text: "b", Bold: true},
			},
		},
		{
			name:  "unmatched marker stays literal",
			input: "a ** b",
			want:  []Span{{Text: "a ** b"}},
		},
		{
			name:  "empty bold span dropped",
			input: "a****b",
			want:  []Span{{Text: "a"}, {Text: "b"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  []Span{{Text: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitBoldSpans(tt.input))
		})
	}
}
