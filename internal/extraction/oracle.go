package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// maxOracleChars bounds how much raw text is sent to the oracle
const maxOracleChars = 15000

// OracleParser delegates document structuring to the text-completion oracle.
// The returned JSON is defensively coerced field by field: whatever shape
// comes back, the result is a valid resume tree with fresh ids.
type OracleParser struct {
	client llm.Client
}

// NewOracleParser creates an oracle-backed parser
func NewOracleParser(client llm.Client) *OracleParser {
	return &OracleParser{client: client}
}

const structurePrompt = `You are a resume parser. Convert the resume text below into a single JSON object with this exact structure:

{
  "metadata": {"name": string, "location": string, "email": string, "phone": string, "linkedin": string, "website": string, "github": string},
  "sections": [
    {
      "type": "summary" | "experience" | "education" | "skills" | "projects" | "certifications" | "languages" | "custom",
      "title": string,
      "items": [ ... ]
    }
  ]
}

Items per section type:
- experience: {"company": string, "role": string, "location": string, "start_date": string, "end_date": string or "" if ongoing, "bullets": [string]}
- education: {"institution": string, "degree": string, "field": string, "location": string, "start_date": string, "end_date": string, "gpa": string, "bullets": [string]}
- skills: {"categories": [{"name": string, "skills": [string]}]}
- summary: {"text": string}
- projects: {"name": string, "description": string, "technologies": [string], "url": string, "bullets": [string]}
- anything else: {"title": string, "subtitle": string, "date_range": string, "location": string, "bullets": [string]}

Rules:
1. Copy text verbatim from the resume; do not invent or paraphrase.
2. Keep sections in the order they appear in the document.
3. Omit fields you cannot find rather than guessing.
4. Return ONLY the JSON object, no markdown, no explanation.

Resume text:
"""
%s
"""`

// Parse structures raw resume text via the oracle. Any failure yields the
// empty resume plus a warning naming the failure.
func (p *OracleParser) Parse(ctx context.Context, text string) (*types.Resume, []string) {
	if len(text) > maxOracleChars {
		cut := maxOracleChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	raw, err := p.client.GenerateJSON(ctx, fmt.Sprintf(structurePrompt, text), 0)
	if err != nil {
		return types.EmptyResume(), []string{fmt.Sprintf("LLM parsing error: %v", err)}
	}

	var doc rawResume
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return types.EmptyResume(), []string{fmt.Sprintf("LLM returned malformed JSON: %v", err)}
	}

	resume := types.NewResume(doc.Metadata.toMetadata())
	order := 0
	for _, rawSection := range doc.Sections {
		section, ok := buildSection(rawSection, order)
		if !ok {
			continue
		}
		resume.Sections = append(resume.Sections, section)
		order++
	}

	var warnings []string
	if len(resume.Sections) == 0 {
		warnings = append(warnings, zeroSectionsWarning)
	}
	return resume, warnings
}

// rawResume mirrors the oracle's output shape with coercing field types
type rawResume struct {
	Metadata rawMetadata  `json:"metadata"`
	Sections []rawSection `json:"sections"`
}

type rawMetadata struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	GitHub   string `json:"github"`
}

func (m rawMetadata) toMetadata() types.ResumeMetadata {
	name := strings.TrimSpace(m.Name)
	if name == "" {
		name = "Unknown"
	}
	return types.ResumeMetadata{
		Name:     name,
		Location: m.Location,
		Email:    m.Email,
		Phone:    m.Phone,
		LinkedIn: m.LinkedIn,
		Website:  m.Website,
		GitHub:   m.GitHub,
	}
}

type rawSection struct {
	Type  string          `json:"type"`
	Title string          `json:"title"`
	Items json.RawMessage `json:"items"`
}

// rawItem accepts every per-kind field; the section kind decides which ones
// are read
type rawItem struct {
	Company   string `json:"company"`
	Role      string `json:"role"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	GPA         string `json:"gpa"`

	Text string `json:"text"`

	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Technologies stringList `json:"technologies"`
	URL          string     `json:"url"`

	Categories []rawCategory `json:"categories"`

	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	DateRange string `json:"date_range"`

	Bullets bulletList `json:"bullets"`
}

type rawCategory struct {
	Name   string     `json:"name"`
	Skills stringList `json:"skills"`
}

// stringList coerces a bare string into a single-element list
type stringList []string

// UnmarshalJSON accepts either a JSON array of strings or a bare string
func (l *stringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single != "" {
			*l = []string{single}
		}
		return nil
	}
	// Unrecognized shape: drop rather than fail the whole document
	*l = nil
	return nil
}

// bulletList coerces bullets that arrive as strings, objects, or a bare
// string into a flat list of bullet texts
type bulletList []string

// UnmarshalJSON accepts ["text"], [{"text": ...}], or "text"
func (l *bulletList) UnmarshalJSON(data []byte) error {
	var rawList []json.RawMessage
	if err := json.Unmarshal(data, &rawList); err != nil {
		var single string
		if err := json.Unmarshal(data, &single); err == nil && single != "" {
			*l = []string{single}
		}
		return nil
	}

	var texts []string
	for _, raw := range rawList {
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			if text != "" {
				texts = append(texts, text)
			}
			continue
		}
		var obj struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil && obj.Text != "" {
			texts = append(texts, obj.Text)
		}
	}
	*l = texts
	return nil
}

// coerceItems accepts either an items array or a single item object
func coerceItems(raw json.RawMessage) []rawItem {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var list []rawItem
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single rawItem
	if err := json.Unmarshal(raw, &single); err == nil {
		return []rawItem{single}
	}
	return nil
}

// buildSection converts one raw section into the document model. ok is
// false when the section has no usable items.
func buildSection(raw rawSection, order int) (types.ResumeSection, bool) {
	kind := types.ParseSectionKind(strings.ToLower(strings.TrimSpace(raw.Type)))
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = sectionDefaultTitle(kind)
	}

	rawItems := coerceItems(raw.Items)
	items := make([]types.SectionItem, 0, len(rawItems))
	for i, item := range rawItems {
		items = append(items, types.NewSectionItem(i, buildContent(kind, item)))
	}
	if len(items) == 0 {
		return types.ResumeSection{}, false
	}

	section := types.NewResumeSection(kind, title, order)
	section.Items = items
	return section, true
}

// buildContent maps a raw item to the content variant for its section kind
func buildContent(kind types.SectionKind, item rawItem) types.ItemContent {
	switch kind {
	case types.SectionExperience:
		exp := types.Experience{
			Company:   item.Company,
			Role:      item.Role,
			Location:  item.Location,
			StartDate: item.StartDate,
			Bullets:   toBullets(item.Bullets),
		}
		if end := strings.TrimSpace(item.EndDate); end != "" && !isOngoing(end) {
			exp.EndDate = &end
		}
		return exp
	case types.SectionEducation:
		return types.Education{
			Institution: item.Institution,
			Degree:      item.Degree,
			Field:       item.Field,
			Location:    item.Location,
			StartDate:   item.StartDate,
			EndDate:     item.EndDate,
			GPA:         item.GPA,
			Bullets:     toBullets(item.Bullets),
		}
	case types.SectionSkills:
		categories := make([]types.SkillCategory, 0, len(item.Categories))
		for _, cat := range item.Categories {
			if cat.Name == "" && len(cat.Skills) == 0 {
				continue
			}
			categories = append(categories, types.SkillCategory{Name: cat.Name, Skills: cat.Skills})
		}
		return types.Skills{Categories: categories}
	case types.SectionSummary:
		return types.Summary{Text: item.Text}
	case types.SectionProjects:
		return types.Project{
			Name:         item.Name,
			Description:  item.Description,
			Technologies: item.Technologies,
			URL:          item.URL,
			Bullets:      toBullets(item.Bullets),
		}
	default:
		return types.Custom{
			Title:     item.Title,
			Subtitle:  item.Subtitle,
			DateRange: item.DateRange,
			Location:  item.Location,
			Bullets:   toBullets(item.Bullets),
		}
	}
}

func toBullets(texts []string) []types.Bullet {
	bullets := make([]types.Bullet, 0, len(texts))
	for i, text := range texts {
		bullets = append(bullets, types.NewBullet(text, i))
	}
	return bullets
}

func isOngoing(date string) bool {
	lower := strings.ToLower(date)
	return lower == "present" || lower == "current" || lower == "ongoing"
}

func sectionDefaultTitle(kind types.SectionKind) string {
	switch kind {
	case types.SectionSummary:
		return "Summary"
	case types.SectionExperience:
		return "Experience"
	case types.SectionEducation:
		return "Education"
	case types.SectionSkills:
		return "Skills"
	case types.SectionProjects:
		return "Projects"
	case types.SectionCertifications:
		return "Certifications"
	case types.SectionLanguages:
		return "Languages"
	default:
		return "Additional"
	}
}
