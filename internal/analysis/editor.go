package analysis

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const editTemperature float32 = 0.4

// EditSnippet rewrites one piece of resume text per a free-form instruction.
// Empty currentText turns the call into a creation request. Any failure
// echoes the input text back with an error explanation, so user content is
// never lost.
func (s *Service) EditSnippet(ctx context.Context, currentText, instruction string, editCtx EditContext) types.EditResult {
	fallback := func(reason string) types.EditResult {
		return types.EditResult{
			SuggestedText: currentText,
			Explanation:   "Error: " + truncate(reason, maxReasonLen),
		}
	}

	if s.client == nil {
		return fallback("edit client is not configured")
	}

	raw, err := s.client.GenerateJSON(ctx, buildEditPrompt(currentText, instruction, editCtx), editTemperature)
	if err != nil {
		return fallback(err.Error())
	}

	var result types.EditResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return fallback("edit returned malformed JSON: " + err.Error())
	}
	return result
}
