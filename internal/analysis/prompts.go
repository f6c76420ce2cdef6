package analysis

import (
	"fmt"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const analysisInstructions = `You are an elite resume coach. Your goal is to maximize the candidate's ATS score and relevance for the target job.

Analyze the resume JSON against the job description and return a single JSON object:

{
  "score": int 0-100,
  "match_score": int 0-100,
  "summary": string,
  "suggestions": [
    {
      "type": "critical" | "enhancement",
      "action": "rewrite" | "add" | "delete" | "format",
      "category": "content" | "formatting",
      "section_id": string,
      "item_id": string,
      "bullet_id": string,
      "title": string,
      "description": string,
      "current_text": string,
      "suggested_text": string,
      "impact": string,
      "score_impact": int
    }
  ],
  "keywords": [
    {"text": string, "category": "skill" | "technology" | "qualification" | "soft_skill" | "other", "present": bool}
  ]
}

Scoring rubric:
- Keyword coverage against the job description.
- Presence of quantified impact (numbers, percentages, scale).
- Structural conventions (clear sections, consistent dates, action verbs).

Suggestion rules:
1. Be specific. "Add keyword 'Kubernetes'" is better than "Add more skills".
2. Provide suggested_text the user can swap in directly.
3. section_id, item_id and bullet_id must EXACTLY match ids present in the resume JSON. Never invent ids.
4. A "format" action must not shorten or remove words. It may only add emphasis markers like **bold** around key phrases.
5. Return 6 to 10 suggestions, roughly 2-3 formatting, 4-6 content, 1-2 structural.
6. Order suggestions by priority, most important first.

Return ONLY the JSON object.`

func buildAnalysisPrompt(resumeJSON, jobDescription string) string {
	return fmt.Sprintf("%s\n\nRESUME JSON:\n%s\n\nTARGET JOB DESCRIPTION:\n%s",
		analysisInstructions, resumeJSON, jobDescription)
}

const editInstructions = `You are a resume writing assistant. Return a single JSON object:

{"suggested_text": string, "explanation": string}

Rules:
1. Follow the instruction exactly.
2. Keep the voice concise and achievement-oriented.
3. If the instruction asks to remove or delete the content, return an empty suggested_text.
4. Return ONLY the JSON object.`

// EditContext carries optional context for a snippet edit
type EditContext struct {
	SectionKind    types.SectionKind
	JobDescription string
}

func buildEditPrompt(currentText, instruction string, editCtx EditContext) string {
	task := fmt.Sprintf("Rewrite the text below per the instruction.\n\nCURRENT TEXT:\n%s\n\nINSTRUCTION:\n%s",
		currentText, instruction)
	if currentText == "" {
		task = fmt.Sprintf("Write new resume content per the instruction.\n\nINSTRUCTION:\n%s", instruction)
	}

	prompt := editInstructions + "\n\n" + task
	if editCtx.SectionKind != "" {
		prompt += fmt.Sprintf("\n\nSECTION: %s", editCtx.SectionKind)
	}
	if editCtx.JobDescription != "" {
		prompt += fmt.Sprintf("\n\nTARGET JOB DESCRIPTION:\n%s", editCtx.JobDescription)
	}
	return prompt
}
