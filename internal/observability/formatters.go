// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of an extracted resume.
func (p *Printer) PrintResume(resume *types.Resume, warnings []string) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", resume.Metadata.Name))
	if resume.Metadata.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", resume.Metadata.Email))
	}
	if resume.Metadata.Location != "" {
		sb.WriteString(fmt.Sprintf("Where:  %s\n", resume.Metadata.Location))
	}
	sb.WriteString("\n")

	if len(resume.Sections) > 0 {
		sb.WriteString("Sections:\n")
		for _, section := range resume.SortedSections() {
			sb.WriteString(fmt.Sprintf("  • %s (%d items)\n", section.Title, len(section.Items)))
		}
	} else {
		sb.WriteString("No sections extracted.\n")
	}

	if len(warnings) > 0 {
		sb.WriteString("\n")
		for _, warning := range warnings {
			sb.WriteString(fmt.Sprintf("⚠ %s\n", warning))
		}
	}

	p.printBox("EXTRACTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the analysis score, summary, and top suggestions.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:  %d/100\n", result.Score))
	if result.MatchScore != nil {
		sb.WriteString(fmt.Sprintf("Match:  %d/100\n", *result.MatchScore))
	}
	summary := result.Summary
	if len(summary) > 50 {
		summary = summary[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("%s\n", summary))
	sb.WriteString("\n")

	if len(result.Suggestions) > 0 {
		sb.WriteString(fmt.Sprintf("Suggestions (%d):\n", len(result.Suggestions)))
		count := min(len(result.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			suggestion := result.Suggestions[i]
			title := suggestion.Title
			if len(title) > 40 {
				title = title[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", suggestion.Type, title))
		}
		if len(result.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Suggestions)-maxItemsToShow))
		}
	}

	missing := missingKeywords(result.Keywords)
	if len(missing) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		keywords := strings.Join(missing, ", ")
		if len(keywords) > 50 {
			keywords = keywords[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", keywords))
	}

	p.printBox("ANALYSIS RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEdit outputs a suggested snippet rewrite.
func (p *Printer) PrintEdit(result *types.EditResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString("Suggested text:\n")
	for _, line := range strings.Split(result.SuggestedText, "\n") {
		sb.WriteString(fmt.Sprintf("  %s\n", line))
	}

	if result.Explanation != "" {
		explanation := result.Explanation
		if len(explanation) > 50 {
			explanation = explanation[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\n%s\n", explanation))
	}

	p.printBox("SUGGESTED EDIT", strings.TrimSuffix(sb.String(), "\n"))
}

// missingKeywords returns the text of keywords not present in the resume.
func missingKeywords(keywords []types.Keyword) []string {
	var missing []string
	for _, keyword := range keywords {
		if !keyword.Present {
			missing = append(missing, keyword.Text)
		}
	}
	return missing
}
