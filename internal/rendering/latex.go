package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const latexPreamble = `\documentclass[11pt,a4paper]{article}

% Packages
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage{lmodern}
\usepackage[margin=0.75in]{geometry}
\usepackage{hyperref}
\usepackage{enumitem}
\usepackage{titlesec}
\usepackage{xcolor}
\usepackage{fontawesome5}

% Colors
\definecolor{primary}{RGB}{0, 82, 147}
\definecolor{secondary}{RGB}{100, 100, 100}

% Remove page numbers
\pagestyle{empty}

% Section formatting
\titleformat{\section}{\large\bfseries\color{primary}}{}{0em}{}[\titlerule]
\titlespacing*{\section}{0pt}{12pt}{6pt}

% Hyperlink styling
\hypersetup{
    colorlinks=true,
    linkcolor=primary,
    urlcolor=primary
}

% Compact lists
\setlist[itemize]{leftmargin=*, nosep, topsep=0pt}

\begin{document}

`

const latexFooter = `
\end{document}
`

// RenderLaTeX converts a resume to LaTeX markup. It is a pure function of
// the model: sections, items and bullets are rendered in ascending order
// key, and the output never depends on map iteration or randomness.
func RenderLaTeX(resume *types.Resume) string {
	var b strings.Builder
	b.WriteString(latexPreamble)
	writeLaTeXHeader(&b, resume.Metadata)
	for _, section := range resume.SortedSections() {
		writeLaTeXSection(&b, section)
	}
	b.WriteString(latexFooter)
	return b.String()
}

// latexText escapes free text, converting **bold** spans to \textbf.
// Emphasis extraction runs before escaping so the markers survive intact.
func latexText(text string) string {
	var b strings.Builder
	for _, span := range SplitBoldSpans(text) {
		if span.Bold {
			b.WriteString(`\textbf{` + EscapeLaTeX(span.Text) + `}`)
		} else {
			b.WriteString(EscapeLaTeX(span.Text))
		}
	}
	return b.String()
}

func writeLaTeXHeader(b *strings.Builder, metadata types.ResumeMetadata) {
	fmt.Fprintf(b, "\\begin{center}\n    {\\Huge\\bfseries %s}\n\n    \\vspace{4pt}\n\n", EscapeLaTeX(metadata.Name))

	var parts []string
	if metadata.Location != "" {
		parts = append(parts, `\faMapMarker*\ `+EscapeLaTeX(metadata.Location))
	}
	if metadata.Phone != "" {
		parts = append(parts, `\faPhone*\ `+EscapeLaTeX(metadata.Phone))
	}
	if metadata.Email != "" {
		email := EscapeLaTeX(metadata.Email)
		parts = append(parts, fmt.Sprintf(`\faEnvelope\ \href{mailto:%s}{%s}`, email, email))
	}
	if metadata.LinkedIn != "" {
		linkedin := EscapeLaTeX(metadata.LinkedIn)
		parts = append(parts, fmt.Sprintf(`\faLinkedin\ \href{https://%s}{%s}`, linkedin, linkedin))
	}
	if metadata.GitHub != "" {
		github := EscapeLaTeX(metadata.GitHub)
		parts = append(parts, fmt.Sprintf(`\faGithub\ \href{https://%s}{%s}`, github, github))
	}
	if metadata.Website != "" {
		website := EscapeLaTeX(metadata.Website)
		parts = append(parts, fmt.Sprintf(`\faGlobe\ \href{https://%s}{%s}`, website, website))
	}
	if len(parts) > 0 {
		b.WriteString("    " + strings.Join(parts, ` $\cdot$ `) + "\n")
	}

	b.WriteString("\\end{center}\n\n\\vspace{-8pt}\n\n")
}

func writeLaTeXSection(b *strings.Builder, section types.ResumeSection) {
	fmt.Fprintf(b, "\\section{%s}\n\n", EscapeLaTeX(section.Title))
	for _, item := range section.SortedItems() {
		writeLaTeXItem(b, item)
	}
	b.WriteString("\n")
}

func writeLaTeXItem(b *strings.Builder, item types.SectionItem) {
	switch content := item.Content.(type) {
	case types.Experience:
		writeLaTeXExperience(b, content)
	case types.Education:
		writeLaTeXEducation(b, content)
	case types.Skills:
		writeLaTeXSkills(b, content)
	case types.Summary:
		writeLaTeXSummary(b, content)
	case types.Project:
		writeLaTeXProject(b, content)
	case types.Custom:
		writeLaTeXCustom(b, content)
	}
}

func experienceDateRange(startDate string, endDate *string, separator string) string {
	end := "Present"
	if endDate != nil && *endDate != "" {
		end = *endDate
	}
	if startDate == "" {
		return end
	}
	return startDate + separator + end
}

func writeLaTeXExperience(b *strings.Builder, item types.Experience) {
	dateRange := EscapeLaTeX(experienceDateRange(item.StartDate, item.EndDate, " -- "))
	fmt.Fprintf(b, "\\textbf{%s} \\hfill %s \\\\\n\\textit{%s} \\hfill \\textit{%s}\n",
		EscapeLaTeX(item.Role), dateRange, EscapeLaTeX(item.Company), EscapeLaTeX(item.Location))
	writeLaTeXBullets(b, item.Bullets)
	b.WriteString("\\vspace{4pt}\n\n")
}

func writeLaTeXEducation(b *strings.Builder, item types.Education) {
	degreeLine := item.Degree
	if item.Field != "" {
		degreeLine += " in " + item.Field
	}
	fmt.Fprintf(b, "\\textbf{%s} \\hfill %s \\\\\n\\textit{%s} \\hfill \\textit{%s}\n",
		EscapeLaTeX(item.Institution), EscapeLaTeX(item.Location),
		EscapeLaTeX(degreeLine), EscapeLaTeX(item.EndDate))
	if item.GPA != "" {
		fmt.Fprintf(b, "\\\\ GPA: %s\n", EscapeLaTeX(item.GPA))
	}
	writeLaTeXBullets(b, item.Bullets)
	b.WriteString("\\vspace{4pt}\n\n")
}

func writeLaTeXSkills(b *strings.Builder, item types.Skills) {
	for _, category := range item.Categories {
		skills := make([]string, 0, len(category.Skills))
		for _, skill := range category.Skills {
			skills = append(skills, EscapeLaTeX(skill))
		}
		fmt.Fprintf(b, "\\textbf{%s:} %s \\\\\n", EscapeLaTeX(category.Name), strings.Join(skills, ", "))
	}
	b.WriteString("\\vspace{4pt}\n\n")
}

func writeLaTeXSummary(b *strings.Builder, item types.Summary) {
	b.WriteString(latexText(item.Text) + "\n\n\\vspace{4pt}\n\n")
}

func writeLaTeXProject(b *strings.Builder, item types.Project) {
	fmt.Fprintf(b, "\\textbf{%s}", EscapeLaTeX(item.Name))
	if len(item.Technologies) > 0 {
		techs := make([]string, 0, len(item.Technologies))
		for _, tech := range item.Technologies {
			techs = append(techs, EscapeLaTeX(tech))
		}
		fmt.Fprintf(b, " \\textit{(%s)}", strings.Join(techs, ", "))
	}
	if item.URL != "" {
		url := EscapeLaTeX(item.URL)
		fmt.Fprintf(b, " -- \\href{%s}{%s}", url, url)
	}
	b.WriteString("\n")
	if item.Description != "" {
		fmt.Fprintf(b, "\\\\ %s\n", latexText(item.Description))
	}
	writeLaTeXBullets(b, item.Bullets)
	b.WriteString("\\vspace{4pt}\n\n")
}

func writeLaTeXCustom(b *strings.Builder, item types.Custom) {
	if item.Title != "" {
		fmt.Fprintf(b, "\\textbf{%s}", EscapeLaTeX(item.Title))
		if item.DateRange != "" {
			fmt.Fprintf(b, " \\hfill %s", EscapeLaTeX(item.DateRange))
		}
		b.WriteString("\n")
	}
	if item.Subtitle != "" {
		fmt.Fprintf(b, "\\textit{%s}", EscapeLaTeX(item.Subtitle))
		if item.Location != "" {
			fmt.Fprintf(b, " \\hfill \\textit{%s}", EscapeLaTeX(item.Location))
		}
		b.WriteString("\n")
	}
	writeLaTeXBullets(b, item.Bullets)
	b.WriteString("\\vspace{4pt}\n\n")
}

func writeLaTeXBullets(b *strings.Builder, bullets []types.Bullet) {
	if len(bullets) == 0 {
		return
	}
	b.WriteString("\\begin{itemize}\n")
	for _, bullet := range types.SortedBullets(bullets) {
		fmt.Fprintf(b, "    \\item %s\n", latexText(bullet.Text))
	}
	b.WriteString("\\end{itemize}\n")
}
