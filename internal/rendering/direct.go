package rendering

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Direct-layout metrics, in points
const (
	pageMarginX   = 43
	pageMarginTop = 36

	nameSize     float64 = 18
	sectionSize  float64 = 10
	entrySize    float64 = 10
	bodySize     float64 = 9
	bodyLeading  float64 = 12
	bulletIndent float64 = 12
)

// RenderPDF paints the resume straight into a PDF, no external compiler
// involved. Layout follows the same entry structure as the LaTeX renderer.
func RenderPDF(resume *types.Resume) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pageMarginX, pageMarginTop, pageMarginX)
	doc.SetAutoPageBreak(true, pageMarginTop)
	doc.AddPage()

	layout := &pdfLayout{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
	layout.header(resume.Metadata)
	for _, section := range resume.SortedSections() {
		layout.section(section)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to produce PDF", Cause: err}
	}
	return buf.Bytes(), nil
}

// pdfLayout paints one resume into an fpdf document
type pdfLayout struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

func (l *pdfLayout) header(metadata types.ResumeMetadata) {
	l.doc.SetFont("Helvetica", "B", nameSize)
	l.doc.SetTextColor(26, 26, 26)
	l.doc.CellFormat(0, nameSize+4, l.tr(metadata.Name), "", 1, "C", false, 0, "")

	var parts []string
	for _, value := range []string{
		metadata.Location, metadata.Phone, metadata.Email,
		metadata.LinkedIn, metadata.GitHub, metadata.Website,
	} {
		if value != "" {
			parts = append(parts, value)
		}
	}
	if len(parts) > 0 {
		l.doc.SetFont("Helvetica", "", bodySize)
		l.doc.SetTextColor(75, 85, 99)
		l.doc.CellFormat(0, bodyLeading, l.tr(strings.Join(parts, "  •  ")), "", 1, "C", false, 0, "")
	}
	l.doc.Ln(8)
}

func (l *pdfLayout) section(section types.ResumeSection) {
	l.doc.SetFont("Helvetica", "B", sectionSize)
	l.doc.SetTextColor(26, 26, 26)
	l.doc.CellFormat(0, sectionSize+6, l.tr(strings.ToUpper(section.Title)), "B", 1, "L", false, 0, "")
	l.doc.Ln(4)

	for _, item := range section.SortedItems() {
		switch content := item.Content.(type) {
		case types.Experience:
			l.experience(content)
		case types.Education:
			l.education(content)
		case types.Skills:
			l.skills(content)
		case types.Summary:
			l.summary(content)
		case types.Project:
			l.project(content)
		case types.Custom:
			l.custom(content)
		}
	}
	l.doc.Ln(4)
}

func (l *pdfLayout) experience(item types.Experience) {
	dateRange := experienceDateRange(item.StartDate, item.EndDate, " – ")
	l.entryTitle(item.Role, "("+dateRange+")")

	subtitle := item.Company
	if item.Location != "" {
		subtitle += ", " + item.Location
	}
	if subtitle != "" {
		l.entrySubtitle(subtitle)
	}
	l.bullets(item.Bullets)
	l.doc.Ln(6)
}

func (l *pdfLayout) education(item types.Education) {
	suffix := ""
	if item.EndDate != "" {
		suffix = "(" + item.EndDate + ")"
	}
	l.entryTitle(item.Institution, suffix)

	degree := item.Degree
	if item.Field != "" {
		degree += " in " + item.Field
	}
	if item.GPA != "" {
		degree += " | GPA: " + item.GPA
	}
	l.entrySubtitle(degree)
	l.bullets(item.Bullets)
	l.doc.Ln(4)
}

func (l *pdfLayout) skills(item types.Skills) {
	for _, category := range item.Categories {
		l.doc.SetFont("Helvetica", "B", bodySize)
		l.doc.SetTextColor(55, 65, 81)
		l.doc.Write(bodyLeading, l.tr(category.Name+": "))
		l.doc.SetFont("Helvetica", "", bodySize)
		l.doc.Write(bodyLeading, l.tr(strings.Join(category.Skills, ", ")))
		l.doc.Ln(bodyLeading)
	}
	l.doc.Ln(3)
}

func (l *pdfLayout) summary(item types.Summary) {
	l.doc.SetTextColor(55, 65, 81)
	l.writeSpans(bodySize, item.Text)
	l.doc.Ln(bodyLeading)
	l.doc.Ln(3)
}

func (l *pdfLayout) project(item types.Project) {
	suffix := ""
	if len(item.Technologies) > 0 {
		suffix = "(" + strings.Join(item.Technologies, ", ") + ")"
	}
	l.entryTitle(item.Name, suffix)
	if item.Description != "" {
		l.doc.SetTextColor(55, 65, 81)
		l.writeSpans(bodySize, item.Description)
		l.doc.Ln(bodyLeading)
	}
	l.bullets(item.Bullets)
	l.doc.Ln(4)
}

func (l *pdfLayout) custom(item types.Custom) {
	if item.Title != "" {
		suffix := ""
		if item.DateRange != "" {
			suffix = "(" + item.DateRange + ")"
		}
		l.entryTitle(item.Title, suffix)
	}
	if item.Subtitle != "" {
		l.entrySubtitle(item.Subtitle)
	}
	l.bullets(item.Bullets)
	l.doc.Ln(4)
}

// entryTitle writes a bold title with an optional italic suffix on one line
func (l *pdfLayout) entryTitle(title, suffix string) {
	l.doc.SetFont("Helvetica", "B", entrySize)
	l.doc.SetTextColor(26, 26, 26)
	l.doc.Write(bodyLeading, l.tr(title))
	if suffix != "" {
		l.doc.SetFont("Helvetica", "I", bodySize)
		l.doc.Write(bodyLeading, l.tr(" "+suffix))
	}
	l.doc.Ln(bodyLeading)
}

func (l *pdfLayout) entrySubtitle(text string) {
	l.doc.SetFont("Helvetica", "I", bodySize)
	l.doc.SetTextColor(75, 85, 99)
	l.doc.Write(bodyLeading, l.tr(text))
	l.doc.Ln(bodyLeading)
}

func (l *pdfLayout) bullets(bullets []types.Bullet) {
	for _, bullet := range types.SortedBullets(bullets) {
		l.doc.SetX(pageMarginX + bulletIndent)
		l.doc.SetFont("Helvetica", "", bodySize)
		l.doc.SetTextColor(55, 65, 81)
		l.doc.Write(bodyLeading, l.tr("•  "))
		l.writeSpans(bodySize, bullet.Text)
		l.doc.Ln(bodyLeading)
	}
}

// writeSpans writes text with **bold** spans switched to the bold face
func (l *pdfLayout) writeSpans(size float64, text string) {
	for _, span := range SplitBoldSpans(text) {
		style := ""
		if span.Bold {
			style = "B"
		}
		l.doc.SetFont("Helvetica", style, size)
		l.doc.Write(bodyLeading, l.tr(span.Text))
	}
}
