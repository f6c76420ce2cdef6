package types

import "github.com/google/uuid"

// SuggestionType classifies how urgent a suggestion is
type SuggestionType string

// Suggestion type constants
const (
	SuggestionCritical    SuggestionType = "critical"
	SuggestionEnhancement SuggestionType = "enhancement"
)

// ParseSuggestionType maps a raw string to a SuggestionType, defaulting to
// SuggestionEnhancement
func ParseSuggestionType(raw string) SuggestionType {
	switch SuggestionType(raw) {
	case SuggestionCritical, SuggestionEnhancement:
		return SuggestionType(raw)
	default:
		return SuggestionEnhancement
	}
}

// SuggestionAction identifies the edit operation a suggestion proposes
type SuggestionAction string

// Suggestion action constants
const (
	ActionRewrite SuggestionAction = "rewrite"
	ActionAdd     SuggestionAction = "add"
	ActionDelete  SuggestionAction = "delete"
	ActionFormat  SuggestionAction = "format"
)

// ParseSuggestionAction maps a raw string to a SuggestionAction, defaulting
// to ActionRewrite. "remove" is accepted as an alias for delete.
func ParseSuggestionAction(raw string) SuggestionAction {
	switch SuggestionAction(raw) {
	case ActionRewrite, ActionAdd, ActionDelete, ActionFormat:
		return SuggestionAction(raw)
	}
	if raw == "remove" {
		return ActionDelete
	}
	return ActionRewrite
}

// SuggestionCategory groups suggestions for display
type SuggestionCategory string

// Suggestion category constants
const (
	CategoryContent    SuggestionCategory = "content"
	CategoryFormatting SuggestionCategory = "formatting"
)

// ParseSuggestionCategory maps a raw string to a SuggestionCategory. An
// unknown value is inferred from the action: format actions are formatting,
// everything else is content.
func ParseSuggestionCategory(raw string, action SuggestionAction) SuggestionCategory {
	switch SuggestionCategory(raw) {
	case CategoryContent, CategoryFormatting:
		return SuggestionCategory(raw)
	}
	if action == ActionFormat {
		return CategoryFormatting
	}
	return CategoryContent
}

// Suggestion represents one location-addressed improvement proposal.
// SectionID/ItemID/BulletID reference node ids inside the analyzed resume;
// the suggestion never mutates the tree itself.
type Suggestion struct {
	ID            string             `json:"id"`
	Type          SuggestionType     `json:"type"`
	Action        SuggestionAction   `json:"action"`
	Category      SuggestionCategory `json:"category"`
	SectionID     string             `json:"section_id,omitempty"`
	ItemID        string             `json:"item_id,omitempty"`
	BulletID      string             `json:"bullet_id,omitempty"`
	Field         string             `json:"field,omitempty"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	CurrentText   string             `json:"current_text,omitempty"`
	SuggestedText string             `json:"suggested_text,omitempty"`
	Impact        string             `json:"impact"`
	ScoreImpact   int                `json:"score_impact"`
}

// NewSuggestionID returns a fresh suggestion id
func NewSuggestionID() string { return uuid.New().String() }

// KeywordCategory classifies a job-description keyword
type KeywordCategory string

// Keyword category constants
const (
	KeywordSkill         KeywordCategory = "skill"
	KeywordTechnology    KeywordCategory = "technology"
	KeywordQualification KeywordCategory = "qualification"
	KeywordSoftSkill     KeywordCategory = "soft_skill"
	KeywordOther         KeywordCategory = "other"
)

// ParseKeywordCategory maps a raw string to a KeywordCategory, defaulting to
// KeywordOther
func ParseKeywordCategory(raw string) KeywordCategory {
	switch KeywordCategory(raw) {
	case KeywordSkill, KeywordTechnology, KeywordQualification, KeywordSoftSkill, KeywordOther:
		return KeywordCategory(raw)
	default:
		return KeywordOther
	}
}

// Keyword represents a job-description term and whether the resume covers it
type Keyword struct {
	Text     string          `json:"text"`
	Category KeywordCategory `json:"category"`
	Present  bool            `json:"present"`
}

// AnalysisResult represents the outcome of analyzing a resume against a job
// description. On failure the engine returns score 0, an explanatory summary,
// and no suggestions instead of an error.
type AnalysisResult struct {
	Score       int          `json:"score"`
	MatchScore  *int         `json:"match_score,omitempty"`
	Summary     string       `json:"summary"`
	Suggestions []Suggestion `json:"suggestions"`
	Keywords    []Keyword    `json:"keywords"`
}

// EditResult represents the outcome of a free-form snippet edit
type EditResult struct {
	SuggestedText string `json:"suggested_text"`
	Explanation   string `json:"explanation"`
}
