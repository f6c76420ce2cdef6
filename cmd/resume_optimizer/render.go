package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/rendering"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a structured resume to LaTeX, PDF, or HTML",
	Long: `Render a structured resume to a formatted document.

Formats:
  latex   LaTeX markup (no compilation)
  pdf     LaTeX compiled with pdflatex
  direct  PDF generated in process, no external tools
  html    Standalone HTML document
  print   HTML printed to PDF via headless Chrome`,
	RunE: runRender,
}

var (
	renderResumeFile string
	renderFormat     string
	renderOutFile    string
)

func init() {
	renderCmd.Flags().StringVar(&renderResumeFile, "resume", "", "Path to structured resume JSON file")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "latex", "Output format: latex, pdf, direct, html, or print")
	renderCmd.Flags().StringVarP(&renderOutFile, "out", "o", "", "Path to output file (default: stdout for text formats, resume.pdf for PDF formats)")
	_ = renderCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	resume, err := loadResume(renderResumeFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	switch renderFormat {
	case "latex":
		return writeText(cmd, renderOutFile, rendering.RenderLaTeX(resume))

	case "html":
		return writeText(cmd, renderOutFile, rendering.RenderHTML(resume))

	case "pdf":
		latex, pdf := rendering.RenderAndCompile(resume)
		if pdf == nil {
			// Compilation is unavailable or failed. Keep the markup so the
			// run still produces a usable artifact.
			texPath := "resume.tex"
			if renderOutFile != "" {
				texPath = strings.TrimSuffix(renderOutFile, ".pdf") + ".tex"
			}
			fmt.Fprintln(os.Stderr, "pdflatex compilation unavailable, writing LaTeX markup instead")
			return writeText(cmd, texPath, latex)
		}
		return writePDF(cmd, renderOutFile, pdf)

	case "direct":
		pdf, err := rendering.RenderPDF(resume)
		if err != nil {
			return fmt.Errorf("failed to render PDF: %w", err)
		}
		return writePDF(cmd, renderOutFile, pdf)

	case "print":
		html := rendering.RenderHTML(resume)
		pdf, err := rendering.PrintHTMLToPDF(ctx, html)
		if err != nil {
			return fmt.Errorf("failed to print PDF: %w", err)
		}
		return writePDF(cmd, renderOutFile, pdf)

	default:
		return fmt.Errorf("unknown format %q (expected latex, pdf, direct, html, or print)", renderFormat)
	}
}

// writeText writes a text document to the output file or stdout
func writeText(cmd *cobra.Command, path string, content string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", path)
	return nil
}

// writePDF writes PDF bytes to the output file, defaulting to resume.pdf
func writePDF(cmd *cobra.Command, path string, pdf []byte) error {
	if path == "" {
		path = "resume.pdf"
	}
	if err := os.WriteFile(path, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", path)
	return nil
}
