package rendering

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const htmlStyle = `
  body { font-family: Helvetica, Arial, sans-serif; color: #374151; font-size: 12px; margin: 40px; }
  h1 { text-align: center; color: #1a1a1a; font-size: 24px; margin-bottom: 4px; }
  .contact { text-align: center; color: #4b5563; margin-bottom: 16px; }
  h2 { color: #005293; font-size: 14px; border-bottom: 1px solid #005293; padding-bottom: 2px; margin-bottom: 6px; }
  .entry-title { font-weight: bold; color: #1a1a1a; }
  .entry-dates { float: right; font-style: italic; }
  .entry-subtitle { font-style: italic; color: #4b5563; margin-bottom: 2px; }
  ul { margin: 2px 0 8px 0; padding-left: 18px; }
  li { margin-bottom: 2px; }
  .skills b { color: #1a1a1a; }
`

// RenderHTML converts a resume to a standalone HTML document. Like the
// LaTeX renderer it is a pure function of the model.
func RenderHTML(resume *types.Resume) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>%s</style>\n</head>\n<body>\n",
		EscapeXML(resume.Metadata.Name), htmlStyle)

	writeHTMLHeader(&b, resume.Metadata)
	for _, section := range resume.SortedSections() {
		writeHTMLSection(&b, section)
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// htmlText escapes free text, converting **bold** spans to <strong>
func htmlText(text string) string {
	var b strings.Builder
	for _, span := range SplitBoldSpans(text) {
		if span.Bold {
			b.WriteString("<strong>" + EscapeXML(span.Text) + "</strong>")
		} else {
			b.WriteString(EscapeXML(span.Text))
		}
	}
	return b.String()
}

func writeHTMLHeader(b *strings.Builder, metadata types.ResumeMetadata) {
	fmt.Fprintf(b, "<h1>%s</h1>\n", EscapeXML(metadata.Name))

	var parts []string
	for _, value := range []string{
		metadata.Location, metadata.Phone, metadata.Email,
		metadata.LinkedIn, metadata.GitHub, metadata.Website,
	} {
		if value != "" {
			parts = append(parts, EscapeXML(value))
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(b, "<div class=\"contact\">%s</div>\n", strings.Join(parts, " &bull; "))
	}
}

func writeHTMLSection(b *strings.Builder, section types.ResumeSection) {
	fmt.Fprintf(b, "<h2>%s</h2>\n", EscapeXML(section.Title))
	for _, item := range section.SortedItems() {
		switch content := item.Content.(type) {
		case types.Experience:
			writeHTMLExperience(b, content)
		case types.Education:
			writeHTMLEducation(b, content)
		case types.Skills:
			writeHTMLSkills(b, content)
		case types.Summary:
			fmt.Fprintf(b, "<p>%s</p>\n", htmlText(content.Text))
		case types.Project:
			writeHTMLProject(b, content)
		case types.Custom:
			writeHTMLCustom(b, content)
		}
	}
}

func writeHTMLExperience(b *strings.Builder, item types.Experience) {
	dateRange := experienceDateRange(item.StartDate, item.EndDate, " – ")
	fmt.Fprintf(b, "<div class=\"entry-title\">%s<span class=\"entry-dates\">%s</span></div>\n",
		EscapeXML(item.Role), EscapeXML(dateRange))

	subtitle := item.Company
	if item.Location != "" {
		subtitle += ", " + item.Location
	}
	if subtitle != "" {
		fmt.Fprintf(b, "<div class=\"entry-subtitle\">%s</div>\n", EscapeXML(subtitle))
	}
	writeHTMLBullets(b, item.Bullets)
}

func writeHTMLEducation(b *strings.Builder, item types.Education) {
	fmt.Fprintf(b, "<div class=\"entry-title\">%s<span class=\"entry-dates\">%s</span></div>\n",
		EscapeXML(item.Institution), EscapeXML(item.EndDate))

	degree := item.Degree
	if item.Field != "" {
		degree += " in " + item.Field
	}
	if item.GPA != "" {
		degree += " | GPA: " + item.GPA
	}
	fmt.Fprintf(b, "<div class=\"entry-subtitle\">%s</div>\n", EscapeXML(degree))
	writeHTMLBullets(b, item.Bullets)
}

func writeHTMLSkills(b *strings.Builder, item types.Skills) {
	b.WriteString("<div class=\"skills\">\n")
	for _, category := range item.Categories {
		skills := make([]string, 0, len(category.Skills))
		for _, skill := range category.Skills {
			skills = append(skills, EscapeXML(skill))
		}
		fmt.Fprintf(b, "<div><b>%s:</b> %s</div>\n", EscapeXML(category.Name), strings.Join(skills, ", "))
	}
	b.WriteString("</div>\n")
}

func writeHTMLProject(b *strings.Builder, item types.Project) {
	title := EscapeXML(item.Name)
	if len(item.Technologies) > 0 {
		title += " <span class=\"entry-dates\">" + EscapeXML(strings.Join(item.Technologies, ", ")) + "</span>"
	}
	fmt.Fprintf(b, "<div class=\"entry-title\">%s</div>\n", title)
	if item.Description != "" {
		fmt.Fprintf(b, "<p>%s</p>\n", htmlText(item.Description))
	}
	writeHTMLBullets(b, item.Bullets)
}

func writeHTMLCustom(b *strings.Builder, item types.Custom) {
	if item.Title != "" {
		title := EscapeXML(item.Title)
		if item.DateRange != "" {
			title += "<span class=\"entry-dates\">" + EscapeXML(item.DateRange) + "</span>"
		}
		fmt.Fprintf(b, "<div class=\"entry-title\">%s</div>\n", title)
	}
	if item.Subtitle != "" {
		fmt.Fprintf(b, "<div class=\"entry-subtitle\">%s</div>\n", EscapeXML(item.Subtitle))
	}
	writeHTMLBullets(b, item.Bullets)
}

func writeHTMLBullets(b *strings.Builder, bullets []types.Bullet) {
	if len(bullets) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, bullet := range types.SortedBullets(bullets) {
		fmt.Fprintf(b, "<li>%s</li>\n", htmlText(bullet.Text))
	}
	b.WriteString("</ul>\n")
}

// printTimeout bounds the whole browser session for one print
const printTimeout = 60 * time.Second

// PrintHTMLToPDF renders an HTML document to PDF through headless Chrome.
// CHROME_PATH overrides browser discovery.
func PrintHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if path := os.Getenv("CHROME_PATH"); path != "" {
		opts = append(opts, chromedp.ExecPath(path))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, printTimeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-print-*")
	if err != nil {
		return nil, &RenderError{Message: "failed to create temporary directory", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		return nil, &RenderError{Message: "failed to write HTML document", Cause: err}
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// Letter: 8.5in x 11in
			pdf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "headless browser print failed", Cause: err}
	}
	return pdf, nil
}
