package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSectionKind(t *testing.T) {
	tests := []struct {
		raw  string
		want SectionKind
	}{
		{"experience", SectionExperience},
		{"skills", SectionSkills},
		{"languages", SectionLanguages},
		{"custom", SectionCustom},
		{"volunteering", SectionCustom},
		{"", SectionCustom},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSectionKind(tt.raw), "raw=%q", tt.raw)
	}
}

func TestNewResume_FreshIdentity(t *testing.T) {
	r1 := NewResume(ResumeMetadata{Name: "Ada Lovelace"})
	r2 := NewResume(ResumeMetadata{Name: "Ada Lovelace"})

	assert.NotEmpty(t, r1.ID)
	assert.NotEqual(t, r1.ID, r2.ID)
	assert.Equal(t, 1, r1.Version)
	assert.False(t, r1.CreatedAt.IsZero())
}

func TestEmptyResume(t *testing.T) {
	r := EmptyResume()
	assert.Equal(t, "Unknown", r.Metadata.Name)
	assert.Empty(t, r.Sections)
	assert.Equal(t, 1, r.Version)
}

func TestSectionItem_JSONRoundTrip(t *testing.T) {
	end := "Dec 2023"
	item := NewSectionItem(0, Experience{
		Company:   "Acme Corp",
		Role:      "Senior Engineer",
		StartDate: "Jan 2020",
		EndDate:   &end,
		Bullets:   []Bullet{NewBullet("Built billing pipeline", 0)},
	})

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"experience"`)

	var decoded SectionItem
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, item.ID, decoded.ID)

	exp, ok := decoded.Content.(Experience)
	require.True(t, ok, "content should decode as Experience")
	assert.Equal(t, "Acme Corp", exp.Company)
	require.NotNil(t, exp.EndDate)
	assert.Equal(t, "Dec 2023", *exp.EndDate)
	require.Len(t, exp.Bullets, 1)
	assert.Equal(t, "Built billing pipeline", exp.Bullets[0].Text)
}

func TestSectionItem_OngoingExperienceOmitsEndDate(t *testing.T) {
	item := NewSectionItem(0, Experience{Company: "Acme", Role: "Engineer", StartDate: "Jan 2024"})

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "end_date")

	var decoded SectionItem
	require.NoError(t, json.Unmarshal(data, &decoded))
	exp := decoded.Content.(Experience)
	assert.Nil(t, exp.EndDate, "absent end_date must decode to nil, never empty string")
}

func TestSectionItem_UnknownTypeDecodesAsCustom(t *testing.T) {
	raw := `{"id":"i1","order":0,"content":{"type":"award","title":"Dean's List","bullets":[]}}`

	var item SectionItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))

	custom, ok := item.Content.(Custom)
	require.True(t, ok, "unknown variant tag should decode as Custom")
	assert.Equal(t, "Dean's List", custom.Title)
}

func TestSectionItem_AllVariantsRoundTrip(t *testing.T) {
	contents := []ItemContent{
		Experience{Company: "A", Role: "B", StartDate: "2020"},
		Education{Institution: "MIT", Degree: "BSc", EndDate: "2019"},
		Skills{Categories: []SkillCategory{{Name: "Languages", Skills: []string{"Go"}}}},
		Summary{Text: "Engineer with a decade of backend work."},
		Project{Name: "resume-optimizer", Technologies: []string{"Go"}},
		Custom{Title: "Certificate"},
	}

	for _, content := range contents {
		item := NewSectionItem(0, content)
		data, err := json.Marshal(item)
		require.NoError(t, err)

		var decoded SectionItem
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, content.Kind(), decoded.Content.Kind())
	}
}

func TestSortedSections_AscendingOrder(t *testing.T) {
	r := NewResume(ResumeMetadata{Name: "Test"})
	r.Sections = []ResumeSection{
		NewResumeSection(SectionSkills, "Skills", 2),
		NewResumeSection(SectionExperience, "Experience", 0),
		NewResumeSection(SectionEducation, "Education", 1),
	}

	sorted := r.SortedSections()
	require.Len(t, sorted, 3)
	assert.Equal(t, "Experience", sorted[0].Title)
	assert.Equal(t, "Education", sorted[1].Title)
	assert.Equal(t, "Skills", sorted[2].Title)

	// Original slice is untouched
	assert.Equal(t, "Skills", r.Sections[0].Title)
}

func TestSortedItems_StableForEqualKeys(t *testing.T) {
	section := NewResumeSection(SectionExperience, "Experience", 0)
	first := NewSectionItem(1, Summary{Text: "first"})
	second := NewSectionItem(1, Summary{Text: "second"})
	section.Items = []SectionItem{first, second}

	sorted := section.SortedItems()
	assert.Equal(t, first.ID, sorted[0].ID, "ties break by insertion order")
	assert.Equal(t, second.ID, sorted[1].ID)
}

func TestSortedBullets(t *testing.T) {
	bullets := []Bullet{
		{ID: "b", Text: "second", Order: 1},
		{ID: "a", Text: "first", Order: 0},
		{ID: "c", Text: "third", Order: 2},
	}
	sorted := SortedBullets(bullets)
	assert.Equal(t, "first", sorted[0].Text)
	assert.Equal(t, "second", sorted[1].Text)
	assert.Equal(t, "third", sorted[2].Text)
}
