package extraction

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Strategy selects how extracted text is structured into a resume
type Strategy string

// Available parsing strategies
const (
	StrategyHeuristic Strategy = "heuristic"
	StrategyLLM       Strategy = "llm"
)

// Result pairs the structured resume with non-fatal warnings gathered
// during extraction
type Result struct {
	Resume   *types.Resume `json:"resume"`
	Warnings []string      `json:"warnings,omitempty"`
}

// Extractor runs the full document ingestion pipeline: raw bytes to text,
// text to structured resume. The boundary is total: Extract always returns
// a usable resume, degrading to an empty one with warnings.
type Extractor struct {
	strategy Strategy
	client   llm.Client
}

// NewExtractor creates an extractor. client may be nil when the strategy
// is heuristic.
func NewExtractor(strategy Strategy, client llm.Client) *Extractor {
	if strategy != StrategyLLM {
		strategy = StrategyHeuristic
	}
	return &Extractor{strategy: strategy, client: client}
}

// Extract converts an uploaded document into a structured resume
func (e *Extractor) Extract(ctx context.Context, data []byte, kind SourceKind) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("extraction panic recovered: %v", r)
			result = Result{
				Resume:   types.EmptyResume(),
				Warnings: []string{fmt.Sprintf("Extraction failed unexpectedly: %v", r)},
			}
		}
	}()

	lines, text, err := ExtractLines(data, kind)
	if err != nil {
		return Result{
			Resume:   types.EmptyResume(),
			Warnings: []string{fmt.Sprintf("Could not read %s document: %v", kind, err)},
		}
	}
	if len(lines) == 0 {
		return Result{
			Resume:   types.EmptyResume(),
			Warnings: []string{"Document contains no extractable text."},
		}
	}

	if e.strategy == StrategyLLM && e.client != nil {
		resume, warnings := NewOracleParser(e.client).Parse(ctx, text)
		return Result{Resume: resume, Warnings: warnings}
	}

	resume, warnings := NewHeuristicParser().Parse(lines)
	return Result{Resume: resume, Warnings: warnings}
}

// ExtractFile is Extract with the source kind inferred from the file name
func (e *Extractor) ExtractFile(ctx context.Context, filename string, data []byte) (Result, error) {
	kind, err := KindFromFilename(filename)
	if err != nil {
		return Result{}, err
	}
	return e.Extract(ctx, data, kind), nil
}
