package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-optimizer/internal/analysis"
	"github.com/jonathan/resume-optimizer/internal/rendering"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// maxUploadBytes caps uploaded document size (10 MB)
const maxUploadBytes = 10 << 20

// AnalyzeRequest represents the request body for POST /api/analyze
type AnalyzeRequest struct {
	Resume         *types.Resume `json:"resume" validate:"required"`
	JobDescription string        `json:"job_description" validate:"required"`
}

// EditRequest represents the request body for POST /api/edit.
// An empty CurrentText asks for new content rather than a rewrite.
type EditRequest struct {
	CurrentText    string `json:"current_text"`
	Instruction    string `json:"instruction" validate:"required"`
	SectionKind    string `json:"section_kind"`
	JobDescription string `json:"job_description"`
}

// RenderRequest represents the request body for the render endpoints
type RenderRequest struct {
	Resume *types.Resume `json:"resume" validate:"required"`
}

// handleParse accepts a multipart document upload and returns the
// structured resume with any extraction warnings.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'file' field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload")
		return
	}

	result, err := s.extractor.ExtractFile(r.Context(), header.Filename, data)
	if err != nil {
		uploadErr := &ErrUnsupportedFormat{Filename: header.Filename}
		s.errorResponse(w, HTTPStatus(uploadErr), uploadErr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyze scores a resume against a job description and returns
// suggestions and keywords.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		return
	}

	result := s.analyzer.Analyze(r.Context(), req.Resume, req.JobDescription)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleEdit rewrites a single snippet of resume text per an instruction
func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	var req EditRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		return
	}

	editCtx := analysis.EditContext{
		SectionKind:    types.ParseSectionKind(req.SectionKind),
		JobDescription: req.JobDescription,
	}
	result := s.analyzer.EditSnippet(r.Context(), req.CurrentText, req.Instruction, editCtx)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleRenderLaTeX returns the LaTeX markup for a resume without compiling it
func (s *Server) handleRenderLaTeX(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"latex": rendering.RenderLaTeX(req.Resume),
	})
}

// handleRenderCompiledPDF renders LaTeX markup and compiles it with pdflatex.
// Compile failures degrade rather than error: the markup is always returned
// and pdf_base64 is empty when no compiler output is available.
func (s *Server) handleRenderCompiledPDF(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		return
	}

	latex, pdf := rendering.RenderAndCompile(req.Resume)
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"latex":      latex,
		"pdf_base64": base64.StdEncoding.EncodeToString(pdf),
	})
}

// handleRenderDirectPDF renders a PDF in process, without external tools
func (s *Server) handleRenderDirectPDF(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		return
	}

	pdf, err := rendering.RenderPDF(req.Resume)
	if err != nil {
		renderErr := &ErrRenderFailed{Format: "pdf", Cause: err}
		s.errorResponse(w, HTTPStatus(renderErr), renderErr.Error())
		return
	}

	s.pdfResponse(w, pdf, "resume.pdf")
}

// handleRenderHTML returns a standalone HTML document for a resume
func (s *Server) handleRenderHTML(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"html": rendering.RenderHTML(req.Resume),
	})
}

// handleRenderPrintedPDF renders HTML and prints it to PDF via headless Chrome
func (s *Server) handleRenderPrintedPDF(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		return
	}

	html := rendering.RenderHTML(req.Resume)
	pdf, err := rendering.PrintHTMLToPDF(r.Context(), html)
	if err != nil {
		renderErr := &ErrRenderFailed{Format: "pdf", Cause: err}
		s.errorResponse(w, HTTPStatus(renderErr), renderErr.Error())
		return
	}

	s.pdfResponse(w, pdf, "resume.pdf")
}

// decodeAndValidate decodes a JSON body into req and validates it, writing
// the error response itself on failure.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return err
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return err
	}

	return nil
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
