package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSuggestion_Valid(t *testing.T) {
	doc := []byte(`{
		"type": "critical",
		"action": "rewrite",
		"title": "Quantify impact",
		"description": "Add numbers to the first bullet.",
		"section_id": "s1",
		"bullet_id": "b1",
		"suggested_text": "Cut costs by 25%"
	}`)
	assert.NoError(t, ValidateSuggestion(doc))
}

func TestValidateSuggestion_UnknownEnumStillValid(t *testing.T) {
	// Enum coercion is the analysis package's job; the schema only checks shape
	doc := []byte(`{"type": "urgent", "action": "restructure", "title": "T", "description": "D"}`)
	assert.NoError(t, ValidateSuggestion(doc))
}

func TestValidateSuggestion_MissingTitle(t *testing.T) {
	doc := []byte(`{"type": "critical", "description": "D"}`)
	err := ValidateSuggestion(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateSuggestion_WrongTypes(t *testing.T) {
	doc := []byte(`{"title": 7, "description": "D"}`)
	assert.Error(t, ValidateSuggestion(doc))
}

func TestValidateKeyword(t *testing.T) {
	assert.NoError(t, ValidateKeyword([]byte(`{"text": "Kubernetes", "category": "technology", "present": false}`)))
	assert.NoError(t, ValidateKeyword([]byte(`{"text": "Go"}`)))
	assert.Error(t, ValidateKeyword([]byte(`{"category": "technology"}`)), "text is required")
	assert.Error(t, ValidateKeyword([]byte(`{"text": ""}`)), "text must be non-empty")
}
