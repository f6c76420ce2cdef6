// Package extraction converts uploaded resume documents into the structured
// document model. It never fails past its boundary: any internal error is
// converted into an empty-but-valid resume plus a warning string.
package extraction

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// SourceKind identifies the upload format of a resume document
type SourceKind string

// Supported source kinds
const (
	SourcePDF  SourceKind = "pdf"
	SourceDOCX SourceKind = "docx"
	SourceHTML SourceKind = "html"
)

// KindFromFilename maps a file name to its source kind by extension
func KindFromFilename(name string) (SourceKind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return SourcePDF, nil
	case ".docx":
		return SourceDOCX, nil
	case ".html", ".htm":
		return SourceHTML, nil
	default:
		return "", fmt.Errorf("unsupported file format: only pdf, docx and html are allowed")
	}
}

// textBlock is one positioned run of text from a page-based source
type textBlock struct {
	text string
	x    float64
	y    float64
}

// ExtractLines returns the document's text as ordered lines plus the full
// concatenated text. Page-based sources are ordered by vertical then
// horizontal position; flow-based sources keep paragraph order.
func ExtractLines(data []byte, kind SourceKind) ([]string, string, error) {
	var lines []string
	var err error

	switch kind {
	case SourcePDF:
		lines, err = extractPDFLines(data)
	case SourceDOCX:
		lines, err = extractDocxLines(data)
	case SourceHTML:
		lines, err = extractHTMLLines(data)
	default:
		return nil, "", fmt.Errorf("unsupported source kind: %s", kind)
	}
	if err != nil {
		return nil, "", err
	}
	return lines, strings.Join(lines, "\n"), nil
}

// extractPDFLines reads text rows from every page and sorts them into
// reading order (top to bottom, then left to right).
func extractPDFLines(data []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var lines []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", pageNum, err)
		}

		blocks := make([]textBlock, 0, len(rows))
		for _, row := range rows {
			if len(row.Content) == 0 {
				continue
			}
			content := make([]pdf.Text, len(row.Content))
			copy(content, row.Content)
			sort.SliceStable(content, func(i, j int) bool { return content[i].X < content[j].X })

			var sb strings.Builder
			for _, word := range content {
				sb.WriteString(word.S)
			}
			text := strings.TrimSpace(sb.String())
			if text == "" {
				continue
			}
			// PDF y grows upward; negate so ascending sort is top-first
			blocks = append(blocks, textBlock{text: text, x: content[0].X, y: -float64(row.Position)})
		}

		sort.SliceStable(blocks, func(i, j int) bool {
			if blocks[i].y != blocks[j].y {
				return blocks[i].y < blocks[j].y
			}
			return blocks[i].x < blocks[j].x
		})

		for _, block := range blocks {
			lines = append(lines, block.text)
		}
	}
	return lines, nil
}

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

var xmlEntityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// extractDocxLines pulls paragraph text out of the DOCX main document part.
// A .docx file is a zip archive; word/document.xml holds the body.
func extractDocxLines(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX archive: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("failed to open document part: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return nil, fmt.Errorf("failed to read document part: %w", err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return nil, fmt.Errorf("no document.xml found in docx")
	}

	// Paragraph ends become line breaks, tabs survive, every other tag goes
	text := string(docXML)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = xmlTagRe.ReplaceAllString(text, "")
	text = xmlEntityReplacer.Replace(text)

	return splitNonEmptyLines(text), nil
}

// extractHTMLLines extracts visible text from an HTML document in DOM order
func extractHTMLLines(data []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	// Line-break block boundaries so headings and list items stay separate
	doc.Find("br").Each(func(_ int, sel *goquery.Selection) {
		sel.ReplaceWithHtml("\n")
	})
	doc.Find("p, li, h1, h2, h3, h4, h5, h6, tr, div").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	body := doc.Find("body")
	text := body.Text()
	if body.Length() == 0 {
		text = doc.Text()
	}
	return splitNonEmptyLines(text), nil
}

// splitNonEmptyLines splits text into trimmed, non-empty lines
func splitNonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
