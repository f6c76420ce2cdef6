// Package analysis turns a structured resume plus a target job description
// into typed, location-addressed improvement suggestions. Both operations
// fail closed: oracle trouble degrades the result, it never surfaces as an
// error to the caller.
package analysis

import (
	"context"
	"encoding/json"
	"log"
	"unicode/utf8"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// maxSuggestions caps the returned list; oracle order is priority order
	maxSuggestions = 10

	analyzeTemperature float32 = 0.2

	defaultScore   = 50
	defaultSummary = "Analysis complete."

	maxReasonLen = 200
)

// Service runs resume analysis and snippet edits against the oracle
type Service struct {
	client llm.Client
}

// NewService creates an analysis service
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// rawAnalysis mirrors the oracle's analysis response; suggestion and keyword
// entries stay raw so one bad entry cannot sink the batch
type rawAnalysis struct {
	Score       *int              `json:"score"`
	MatchScore  *int              `json:"match_score"`
	Summary     string            `json:"summary"`
	Suggestions []json.RawMessage `json:"suggestions"`
	Keywords    []json.RawMessage `json:"keywords"`
}

type rawSuggestion struct {
	Type          string `json:"type"`
	Action        string `json:"action"`
	Category      string `json:"category"`
	SectionID     string `json:"section_id"`
	ItemID        string `json:"item_id"`
	BulletID      string `json:"bullet_id"`
	Field         string `json:"field"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	CurrentText   string `json:"current_text"`
	SuggestedText string `json:"suggested_text"`
	Impact        string `json:"impact"`
	ScoreImpact   int    `json:"score_impact"`
}

type rawKeyword struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Present  bool   `json:"present"`
}

// Analyze scores the resume against the job description and assembles the
// suggestion list. Any failure yields a zero-score result whose summary
// names the reason.
func (s *Service) Analyze(ctx context.Context, resume *types.Resume, jobDescription string) types.AnalysisResult {
	if s.client == nil {
		return failedAnalysis("analysis client is not configured")
	}

	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return failedAnalysis("failed to serialize resume: " + err.Error())
	}

	raw, err := s.client.GenerateJSON(ctx, buildAnalysisPrompt(string(resumeJSON), jobDescription), analyzeTemperature)
	if err != nil {
		return failedAnalysis("analysis request failed: " + err.Error())
	}

	var parsed rawAnalysis
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return failedAnalysis("analysis returned malformed JSON: " + err.Error())
	}

	result := types.AnalysisResult{
		Score:       defaultScore,
		MatchScore:  parsed.MatchScore,
		Summary:     parsed.Summary,
		Suggestions: normalizeSuggestions(parsed.Suggestions),
		Keywords:    normalizeKeywords(parsed.Keywords),
	}
	if parsed.Score != nil {
		result.Score = clampScore(*parsed.Score)
	}
	if result.MatchScore != nil {
		clamped := clampScore(*result.MatchScore)
		result.MatchScore = &clamped
	}
	if result.Summary == "" {
		result.Summary = defaultSummary
	}
	return result
}

// normalizeSuggestions coerces enum fields, validates each entry, and keeps
// the first ten survivors in oracle order
func normalizeSuggestions(entries []json.RawMessage) []types.Suggestion {
	suggestions := make([]types.Suggestion, 0, len(entries))
	for _, entry := range entries {
		var raw rawSuggestion
		if err := json.Unmarshal(entry, &raw); err != nil {
			log.Printf("skipping unreadable suggestion: %v", err)
			continue
		}

		action := types.ParseSuggestionAction(raw.Action)
		suggestion := types.Suggestion{
			ID:            types.NewSuggestionID(),
			Type:          types.ParseSuggestionType(raw.Type),
			Action:        action,
			Category:      types.ParseSuggestionCategory(raw.Category, action),
			SectionID:     raw.SectionID,
			ItemID:        raw.ItemID,
			BulletID:      raw.BulletID,
			Field:         raw.Field,
			Title:         raw.Title,
			Description:   raw.Description,
			CurrentText:   raw.CurrentText,
			SuggestedText: raw.SuggestedText,
			Impact:        raw.Impact,
			ScoreImpact:   raw.ScoreImpact,
		}

		normalized, err := json.Marshal(suggestion)
		if err != nil {
			log.Printf("skipping unserializable suggestion: %v", err)
			continue
		}
		if err := schemas.ValidateSuggestion(normalized); err != nil {
			log.Printf("skipping invalid suggestion: %v", err)
			continue
		}

		suggestions = append(suggestions, suggestion)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

// normalizeKeywords validates keyword entries and coerces their categories
func normalizeKeywords(entries []json.RawMessage) []types.Keyword {
	keywords := make([]types.Keyword, 0, len(entries))
	for _, entry := range entries {
		if err := schemas.ValidateKeyword(entry); err != nil {
			log.Printf("skipping invalid keyword: %v", err)
			continue
		}
		var raw rawKeyword
		if err := json.Unmarshal(entry, &raw); err != nil {
			log.Printf("skipping unreadable keyword: %v", err)
			continue
		}
		keywords = append(keywords, types.Keyword{
			Text:     raw.Text,
			Category: types.ParseKeywordCategory(raw.Category),
			Present:  raw.Present,
		})
	}
	return keywords
}

func failedAnalysis(reason string) types.AnalysisResult {
	return types.AnalysisResult{
		Score:       0,
		Summary:     truncate(reason, maxReasonLen),
		Suggestions: []types.Suggestion{},
		Keywords:    []types.Keyword{},
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// truncate shortens s to at most limit bytes, backing up to a rune boundary
// so the cut never produces invalid UTF-8.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit] + "..."
}
