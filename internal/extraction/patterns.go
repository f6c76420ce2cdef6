package extraction

import (
	"regexp"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Contact patterns, applied to the full document text
var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe    = regexp.MustCompile(`[\+]?[(]?[0-9]{1,3}[)]?[-\s\.]?[(]?[0-9]{1,4}[)]?[-\s\.]?[0-9]{1,4}[-\s\.]?[0-9]{1,9}`)
	linkedinRe = regexp.MustCompile(`(?i)(?:linkedin\.com/in/|linkedin:?\s*)([a-zA-Z0-9_-]+)`)
	githubRe   = regexp.MustCompile(`(?i)(?:github\.com/|github:?\s*)([a-zA-Z0-9_-]+)`)

	leadingDigitRe = regexp.MustCompile(`^\d`)

	// "City, ST" is tried before the looser "City, State"
	locationRes = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z]{2}\b`),
		regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z][a-z]+`),
	}
)

// Date patterns: month-name or numeric dates, and ranges ending in a date or
// an ongoing marker ("Present"/"Current")
const datePattern = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s*\d{4}|(?:\d{1,2}/\d{4})|(?:\d{4})`

var (
	dateRe      = regexp.MustCompile(datePattern)
	dateRangeRe = regexp.MustCompile(`(?i)(` + datePattern + `)\s*[-–—to]+\s*(` + datePattern + `|Present|Current)`)
)

// sectionPattern pairs a section kind with its header-line pattern
type sectionPattern struct {
	kind    types.SectionKind
	pattern *regexp.Regexp
}

// sectionPatterns is checked in order against each trimmed line. The first
// match wins, so more specific headers come before looser ones.
var sectionPatterns = []sectionPattern{
	{types.SectionSummary, regexp.MustCompile(`(?i)^(summary|profile|objective|about\s*me|professional\s*summary)`)},
	{types.SectionExperience, regexp.MustCompile(`(?i)^(experience|work\s*experience|employment|professional\s*experience|work\s*history)`)},
	{types.SectionEducation, regexp.MustCompile(`(?i)^(education|academic|qualifications|schooling)`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)^(skills|technical\s*skills|core\s*competencies|technologies|expertise)`)},
	{types.SectionProjects, regexp.MustCompile(`(?i)^(projects|personal\s*projects|key\s*projects)`)},
	{types.SectionCertifications, regexp.MustCompile(`(?i)^(certifications|certificates|licenses|credentials)`)},
	{types.SectionLanguages, regexp.MustCompile(`(?i)^(languages)`)},
}

// Bullet markers accepted at the start of a content line
var (
	bulletMarkerRe   = regexp.MustCompile(`^[•\-–▪*○]\s*`)
	numberedMarkerRe = regexp.MustCompile(`^\d+\.\s*`)
)

// jobTitleKeywords flag a line as a probable job-entry header even without a
// date range (case-insensitive substring match)
var jobTitleKeywords = []string{
	"engineer", "developer", "manager", "director", "analyst",
	"designer", "lead", "senior", "junior", "intern", "consultant",
	"specialist", "coordinator", "associate", "executive",
}

// splitRoleCompanyRe splits a job-entry line into role and company
var splitRoleCompanyRe = regexp.MustCompile(`\s+at\s+|\s+@\s+|\s*[|,]\s*`)

// splitSkillsRe splits a skills list; splitSkillsLooseRe additionally accepts
// bullet and hyphen separators for uncategorized lines
var (
	splitSkillsRe      = regexp.MustCompile(`[,;|]`)
	splitSkillsLooseRe = regexp.MustCompile(`[,;|•\-]`)
)
