package rendering

import "strings"

// Span is one run of text with a single emphasis state
type Span struct {
	Text string
	Bold bool
}

// SplitBoldSpans splits text on **bold** markers into plain and bold spans.
// The markers are the only inline markup renderers interpret; an unmatched
// ** is kept as literal text. Splitting happens before escaping so the
// markers themselves never reach the escaper.
func SplitBoldSpans(text string) []Span {
	var spans []Span
	for {
		start := strings.Index(text, "**")
		if start < 0 {
			break
		}
		end := strings.Index(text[start+2:], "**")
		if end < 0 {
			break
		}
		end += start + 2

		if start > 0 {
			spans = append(spans, Span{Text: text[:start]})
		}
		if inner := text[start+2 : end]; inner != "" {
			spans = append(spans, Span{Text: inner, Bold: true})
		}
		text = text[end+2:]
	}
	if text != "" || len(spans) == 0 {
		spans = append(spans, Span{Text: text})
	}
	return spans
}
