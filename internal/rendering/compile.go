package rendering

import (
	"context"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// CompilationTimeout bounds each pdflatex invocation
	CompilationTimeout = 30 * time.Second

	texFileName = "resume.tex"
	pdfFileName = "resume.pdf"
)

// CompileLaTeX compiles LaTeX source to PDF bytes using pdflatex. The
// source is written to a scoped temporary directory which is removed on
// every exit path. pdflatex runs twice so cross-references resolve; success
// means the PDF file exists afterward, regardless of the exit code.
func CompileLaTeX(latexSource string) (pdf []byte, logOutput string, err error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return nil, "", &CompilationError{
			Message: "pdflatex not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	workDir, err := os.MkdirTemp("", "latex-compile-*")
	if err != nil {
		return nil, "", &CompilationError{
			Message: "failed to create temporary working directory",
			Cause:   err,
		}
	}
	defer os.RemoveAll(workDir)

	texPath := filepath.Join(workDir, texFileName)
	if err := os.WriteFile(texPath, []byte(latexSource), 0644); err != nil {
		return nil, "", &CompilationError{
			Message: "failed to write LaTeX source",
			Cause:   err,
		}
	}

	// Two passes for stable cross-references
	var runErr error
	for pass := 0; pass < 2; pass++ {
		logOutput, runErr = runPdflatex(texPath, workDir)
	}

	pdfPath := filepath.Join(workDir, pdfFileName)
	if _, statErr := os.Stat(pdfPath); os.IsNotExist(statErr) {
		return nil, logOutput, &CompilationError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	pdf, err = os.ReadFile(pdfPath)
	if err != nil {
		return nil, logOutput, &CompilationError{
			Message: "failed to read generated PDF",
			Cause:   err,
		}
	}
	return pdf, logOutput, nil
}

// runPdflatex executes one bounded pdflatex pass
func runPdflatex(texPath, workDir string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), CompilationTimeout)
	defer cancel()

	// -interaction=nonstopmode prevents interactive prompts
	cmd := exec.CommandContext(ctx, "pdflatex", "-interaction=nonstopmode", "-output-directory", workDir, texPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	return stdout.String() + stderr.String(), err
}

// RenderAndCompile renders the resume to LaTeX and attempts compilation.
// The markup always comes back; compiled bytes are nil when the compiler is
// missing or fails.
func RenderAndCompile(resume *types.Resume) (string, []byte) {
	latex := RenderLaTeX(resume)
	pdf, _, err := CompileLaTeX(latex)
	if err != nil {
		log.Printf("LaTeX compilation unavailable: %v", err)
		return latex, nil
	}
	return latex, pdf
}
