package extraction

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// zeroSectionsWarning is surfaced when segmentation finds nothing usable
const zeroSectionsWarning = "Could not identify any sections. Manual editing may be required."

// HeuristicParser segments resume text into the document model using fixed
// patterns. It is fully deterministic and needs no oracle.
type HeuristicParser struct{}

// NewHeuristicParser creates a heuristic parser
func NewHeuristicParser() *HeuristicParser {
	return &HeuristicParser{}
}

// Parse builds a resume from ordered text lines. It always returns a valid
// resume; warnings report anything it could not make sense of.
func (p *HeuristicParser) Parse(lines []string) (*types.Resume, []string) {
	var warnings []string
	fullText := strings.Join(lines, "\n")

	metadata := p.extractMetadata(lines, fullText)
	sections := p.extractSections(lines)

	resume := types.NewResume(metadata)
	resume.Sections = sections

	if len(sections) == 0 {
		warnings = append(warnings, zeroSectionsWarning)
	}
	return resume, warnings
}

// extractMetadata pulls the contact block out of the document text
func (p *HeuristicParser) extractMetadata(lines []string, fullText string) types.ResumeMetadata {
	metadata := types.ResumeMetadata{Name: "Unknown"}

	// The name is usually the first significant line: skip anything that
	// looks like contact info or starts with a digit.
	scanned := 0
	for _, line := range lines {
		if scanned >= 5 {
			break
		}
		scanned++
		if strings.Contains(line, "@") || phoneRe.MatchString(line) {
			continue
		}
		if len(line) > 2 && !leadingDigitRe.MatchString(line) {
			metadata.Name = line
			break
		}
	}

	if m := emailRe.FindString(fullText); m != "" {
		metadata.Email = m
	}
	if m := phoneRe.FindString(fullText); m != "" {
		metadata.Phone = m
	}
	if m := linkedinRe.FindStringSubmatch(fullText); m != nil {
		metadata.LinkedIn = "linkedin.com/in/" + m[1]
	}
	if m := githubRe.FindStringSubmatch(fullText); m != nil {
		metadata.GitHub = "github.com/" + m[1]
	}

	// Location sits near the top; "City, ST" beats the looser pattern
	head := lines
	if len(head) > 10 {
		head = head[:10]
	}
	for _, re := range locationRes {
		for _, line := range head {
			if m := re.FindString(line); m != "" {
				metadata.Location = m
				break
			}
		}
		if metadata.Location != "" {
			break
		}
	}

	return metadata
}

// extractSections walks the lines, opening a new section at each header
// match and accumulating content lines into the open one. Sections that end
// up with zero items are dropped.
func (p *HeuristicParser) extractSections(lines []string) []types.ResumeSection {
	var sections []types.ResumeSection
	var currentKind types.SectionKind
	var currentTitle string
	var currentLines []string
	open := false
	order := 0

	flush := func() {
		if !open || len(currentLines) == 0 {
			return
		}
		if section, ok := p.parseSection(currentKind, currentTitle, currentLines, order); ok {
			sections = append(sections, section)
			order++
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		matched := false
		for _, sp := range sectionPatterns {
			if sp.pattern.MatchString(trimmed) {
				flush()
				currentKind = sp.kind
				currentTitle = trimmed
				currentLines = nil
				open = true
				matched = true
				break
			}
		}
		if !matched && open {
			currentLines = append(currentLines, line)
		}
	}
	flush()

	return sections
}

// parseSection dispatches buffer parsing on the section kind. ok is false
// when the buffer produced no items at all.
func (p *HeuristicParser) parseSection(kind types.SectionKind, title string, lines []string, order int) (types.ResumeSection, bool) {
	var items []types.SectionItem

	switch kind {
	case types.SectionExperience:
		items = p.parseExperienceLines(lines)
	case types.SectionEducation:
		items = p.parseEducationLines(lines)
	case types.SectionSkills:
		items = p.parseSkillsLines(lines)
	case types.SectionSummary:
		items = p.parseSummaryLines(lines)
	case types.SectionProjects:
		items = p.parseProjectLines(lines)
	default:
		items = p.parseGenericLines(lines)
	}

	if len(items) == 0 {
		return types.ResumeSection{}, false
	}

	section := types.NewResumeSection(kind, title, order)
	section.Items = items
	return section, true
}

// isBulletLine reports whether a line starts with a bullet glyph or a
// numbered-list marker
func isBulletLine(line string) bool {
	return bulletMarkerRe.MatchString(line) || numberedMarkerRe.MatchString(line)
}

// stripBulletMarker removes the leading bullet glyph or list number
func stripBulletMarker(line string) string {
	line = bulletMarkerRe.ReplaceAllString(line, "")
	return numberedMarkerRe.ReplaceAllString(line, "")
}

// looksLikeJobTitle reports whether a line contains a job-title keyword
func looksLikeJobTitle(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range jobTitleKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// parseExperienceLines builds experience entries. A line with a date range
// or a job-title keyword starts a new entry; bullet lines attach to the
// current one.
func (p *HeuristicParser) parseExperienceLines(lines []string) []types.SectionItem {
	var items []types.SectionItem
	var current *types.Experience
	var bullets []types.Bullet
	itemOrder := 0

	finish := func() {
		if current == nil {
			return
		}
		current.Bullets = bullets
		items = append(items, types.NewSectionItem(itemOrder, *current))
		itemOrder++
		bullets = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isBulletLine(line) {
			text := stripBulletMarker(line)
			if current != nil && text != "" {
				bullets = append(bullets, types.NewBullet(text, len(bullets)))
			}
			continue
		}

		dateMatch := dateRangeRe.FindStringSubmatch(line)
		if dateMatch != nil || looksLikeJobTitle(line) {
			finish()
			entry := newExperienceEntry(line, dateMatch)
			current = &entry
		}
	}
	finish()

	return items
}

// newExperienceEntry parses a job-entry line into role/company/dates
func newExperienceEntry(line string, dateMatch []string) types.Experience {
	entry := types.Experience{Bullets: []types.Bullet{}}

	if dateMatch != nil {
		entry.StartDate = dateMatch[1]
		end := dateMatch[2]
		lower := strings.ToLower(end)
		if lower != "present" && lower != "current" {
			entry.EndDate = &end
		}
		line = strings.TrimSpace(dateRangeRe.ReplaceAllString(line, ""))
	}

	parts := splitRoleCompanyRe.Split(line, 2)
	if len(parts) >= 2 {
		entry.Role = strings.TrimSpace(parts[0])
		entry.Company = strings.TrimSpace(parts[1])
	} else {
		entry.Role = line
	}
	return entry
}

// parseEducationLines treats the whole buffer as one entry: first line is
// the institution, second the degree, first date match the end date. Known
// limitation: resumes listing several degrees collapse into one entry.
func (p *HeuristicParser) parseEducationLines(lines []string) []types.SectionItem {
	var content []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			content = append(content, line)
		}
	}
	if len(content) == 0 {
		return nil
	}

	entry := types.Education{
		Institution: content[0],
		Degree:      "Degree",
		EndDate:     "Unknown",
		Bullets:     []types.Bullet{},
	}
	if len(content) > 1 {
		entry.Degree = content[1]
	}
	if m := dateRe.FindString(strings.Join(content, " ")); m != "" {
		entry.EndDate = m
	}

	return []types.SectionItem{types.NewSectionItem(0, entry)}
}

// parseSkillsLines groups skills into categories. "Name: a, b" lines are
// named categories; bare lists fall into "Technical Skills".
func (p *HeuristicParser) parseSkillsLines(lines []string) []types.SectionItem {
	var categories []types.SkillCategory
	var uncategorized []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if name, rest, found := strings.Cut(line, ":"); found {
			skills := splitSkills(rest, splitSkillsRe)
			if len(skills) > 0 {
				categories = append(categories, types.SkillCategory{
					Name:   strings.TrimSpace(name),
					Skills: skills,
				})
			}
		} else {
			uncategorized = append(uncategorized, splitSkills(line, splitSkillsLooseRe)...)
		}
	}

	if len(categories) == 0 && len(uncategorized) > 0 {
		categories = append(categories, types.SkillCategory{Name: "Technical Skills", Skills: uncategorized})
	}
	if len(categories) == 0 {
		return nil
	}

	return []types.SectionItem{types.NewSectionItem(0, types.Skills{Categories: categories})}
}

// splitSkills splits a list on the given separator set and trims the parts
func splitSkills(text string, re interface{ Split(string, int) []string }) []string {
	var skills []string
	for _, part := range re.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}

// parseSummaryLines joins the buffer into a single summary paragraph
func (p *HeuristicParser) parseSummaryLines(lines []string) []types.SectionItem {
	var parts []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return []types.SectionItem{types.NewSectionItem(0, types.Summary{Text: strings.Join(parts, " ")})}
}

// parseProjectLines builds project entries: non-bullet lines start a new
// project, bullet lines attach to the current one
func (p *HeuristicParser) parseProjectLines(lines []string) []types.SectionItem {
	var items []types.SectionItem
	var current *types.Project
	var bullets []types.Bullet
	itemOrder := 0

	finish := func() {
		if current == nil {
			return
		}
		current.Bullets = bullets
		items = append(items, types.NewSectionItem(itemOrder, *current))
		itemOrder++
		bullets = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if bulletMarkerRe.MatchString(line) {
			text := bulletMarkerRe.ReplaceAllString(line, "")
			if current != nil && text != "" {
				bullets = append(bullets, types.NewBullet(text, len(bullets)))
			}
			continue
		}

		finish()
		current = &types.Project{Name: line, Bullets: []types.Bullet{}}
	}
	finish()

	return items
}

// parseGenericLines is the fallback for unrecognized kinds: each non-empty
// line becomes one custom item holding a single bullet
func (p *HeuristicParser) parseGenericLines(lines []string) []types.SectionItem {
	var items []types.SectionItem
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, types.NewSectionItem(i, types.Custom{
			Bullets: []types.Bullet{types.NewBullet(line, 0)},
		}))
	}
	return items
}
