package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

type fakeClient struct {
	response   string
	err        error
	lastPrompt string
	lastTemp   float32
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, temperature float32) (string, error) {
	f.lastPrompt = prompt
	f.lastTemp = temperature
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) Close() error { return nil }

func testResume() *types.Resume {
	resume := types.NewResume(types.ResumeMetadata{Name: "John Smith"})
	section := types.NewResumeSection(types.SectionSummary, "Summary", 0)
	section.Items = []types.SectionItem{
		types.NewSectionItem(0, types.Summary{Text: "Engineer."}),
	}
	resume.Sections = append(resume.Sections, section)
	return resume
}

func suggestionJSON(title string) string {
	return fmt.Sprintf(`{"type": "critical", "action": "rewrite", "category": "content", "title": %q, "description": "d", "impact": "High"}`, title)
}

func TestAnalyzeAssemblesResult(t *testing.T) {
	client := &fakeClient{response: `{
		"score": 72,
		"match_score": 64,
		"summary": "Solid but missing cloud keywords.",
		"suggestions": [` + suggestionJSON("Quantify impact") + `],
		"keywords": [{"text": "Kubernetes", "category": "technology", "present": false}]
	}`}

	result := NewService(client).Analyze(context.Background(), testResume(), "job description")

	assert.Equal(t, 72, result.Score)
	require.NotNil(t, result.MatchScore)
	assert.Equal(t, 64, *result.MatchScore)
	assert.Equal(t, "Solid but missing cloud keywords.", result.Summary)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, "Quantify impact", result.Suggestions[0].Title)
	assert.NotEmpty(t, result.Suggestions[0].ID)
	require.Len(t, result.Keywords, 1)
	assert.Equal(t, types.KeywordTechnology, result.Keywords[0].Category)
	assert.Equal(t, analyzeTemperature, client.lastTemp)
}

func TestAnalyzePromptCarriesResumeIDs(t *testing.T) {
	client := &fakeClient{response: `{"score": 50, "summary": "ok", "suggestions": [], "keywords": []}`}
	resume := testResume()

	NewService(client).Analyze(context.Background(), resume, "the job")

	assert.Contains(t, client.lastPrompt, resume.Sections[0].ID)
	assert.Contains(t, client.lastPrompt, "the job")
}

func TestAnalyzeCapsSuggestionsInOrder(t *testing.T) {
	titles := make([]string, 15)
	entries := make([]string, 15)
	for i := range entries {
		titles[i] = fmt.Sprintf("Suggestion %02d", i)
		entries[i] = suggestionJSON(titles[i])
	}
	client := &fakeClient{response: `{"score": 60, "summary": "s", "suggestions": [` +
		strings.Join(entries, ",") + `], "keywords": []}`}

	result := NewService(client).Analyze(context.Background(), testResume(), "jd")

	require.Len(t, result.Suggestions, 10)
	for i, suggestion := range result.Suggestions {
		assert.Equal(t, titles[i], suggestion.Title)
	}
}

func TestAnalyzeCoercesUnknownEnums(t *testing.T) {
	client := &fakeClient{response: `{
		"score": 55,
		"summary": "s",
		"suggestions": [
			{"type": "urgent", "action": "remove", "category": "???", "title": "T", "description": "D"},
			{"type": "critical", "action": "format", "category": "nope", "title": "U", "description": "E"}
		],
		"keywords": [{"text": "grit", "category": "personality", "present": true}]
	}`}

	result := NewService(client).Analyze(context.Background(), testResume(), "jd")

	require.Len(t, result.Suggestions, 2)
	first := result.Suggestions[0]
	assert.Equal(t, types.SuggestionEnhancement, first.Type)
	assert.Equal(t, types.ActionDelete, first.Action)
	assert.Equal(t, types.CategoryContent, first.Category)

	second := result.Suggestions[1]
	assert.Equal(t, types.ActionFormat, second.Action)
	assert.Equal(t, types.CategoryFormatting, second.Category)

	require.Len(t, result.Keywords, 1)
	assert.Equal(t, types.KeywordOther, result.Keywords[0].Category)
}

func TestAnalyzeSkipsInvalidEntries(t *testing.T) {
	client := &fakeClient{response: `{
		"score": 55,
		"summary": "s",
		"suggestions": [
			{"type": "critical", "action": "rewrite", "description": "missing title"},
			` + suggestionJSON("Keeper") + `
		],
		"keywords": [{"category": "skill", "present": true}, {"text": "Go", "category": "skill", "present": true}]
	}`}

	result := NewService(client).Analyze(context.Background(), testResume(), "jd")

	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, "Keeper", result.Suggestions[0].Title)
	require.Len(t, result.Keywords, 1)
	assert.Equal(t, "Go", result.Keywords[0].Text)
}

func TestAnalyzeDefaultsScoreAndSummary(t *testing.T) {
	client := &fakeClient{response: `{"suggestions": [], "keywords": []}`}

	result := NewService(client).Analyze(context.Background(), testResume(), "jd")

	assert.Equal(t, 50, result.Score)
	assert.Nil(t, result.MatchScore)
	assert.Equal(t, "Analysis complete.", result.Summary)
}

func TestAnalyzeClampsScores(t *testing.T) {
	client := &fakeClient{response: `{"score": 250, "match_score": -3, "summary": "s", "suggestions": [], "keywords": []}`}

	result := NewService(client).Analyze(context.Background(), testResume(), "jd")

	assert.Equal(t, 100, result.Score)
	require.NotNil(t, result.MatchScore)
	assert.Equal(t, 0, *result.MatchScore)
}

func TestAnalyzeFailsClosedOnClientError(t *testing.T) {
	client := &fakeClient{err: errors.New("oracle unavailable")}

	result := NewService(client).Analyze(context.Background(), testResume(), "jd")

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Suggestions)
	assert.NotEmpty(t, result.Summary)
	assert.Contains(t, result.Summary, "oracle unavailable")
}

func TestAnalyzeFailsClosedOnMalformedJSON(t *testing.T) {
	client := &fakeClient{response: "<html>rate limited</html>"}

	result := NewService(client).Analyze(context.Background(), testResume(), "jd")

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Suggestions)
	assert.Contains(t, result.Summary, "malformed JSON")
}

func TestAnalyzeFailsClosedWithoutClient(t *testing.T) {
	result := NewService(nil).Analyze(context.Background(), testResume(), "jd")

	assert.Equal(t, 0, result.Score)
	assert.NotEmpty(t, result.Summary)
}

func TestAnalyzeTruncatesLongFailureReason(t *testing.T) {
	client := &fakeClient{err: errors.New(strings.Repeat("x", 500))}

	result := NewService(client).Analyze(context.Background(), testResume(), "jd")

	assert.LessOrEqual(t, len(result.Summary), maxReasonLen+len("analysis request failed: ")+len("..."))
}

func TestAnalyzeFailureReasonCutsAtRuneBoundary(t *testing.T) {
	// The 25-byte ASCII prefix puts every two-byte rune on an odd offset,
	// so the byte limit lands mid-rune.
	client := &fakeClient{err: errors.New(strings.Repeat("é", 200))}

	result := NewService(client).Analyze(context.Background(), testResume(), "jd")

	assert.True(t, utf8.ValidString(result.Summary))
	assert.LessOrEqual(t, len(result.Summary), maxReasonLen+len("analysis request failed: ")+len("..."))
}

func TestAnalysisResultSerializes(t *testing.T) {
	client := &fakeClient{response: `{"score": 50, "summary": "ok", "suggestions": [], "keywords": []}`}
	result := NewService(client).Analyze(context.Background(), testResume(), "jd")

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "match_score")
}
