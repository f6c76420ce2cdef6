package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// renderTestResume builds a resume whose slices are deliberately stored out
// of order, so renderers must sort by order key.
func renderTestResume() *types.Resume {
	resume := types.NewResume(types.ResumeMetadata{
		Name:     "John Smith",
		Location: "Austin, TX",
		Email:    "john@example.com",
		Phone:    "(512) 555-0100",
		LinkedIn: "linkedin.com/in/johnsmith",
	})

	end := "Dec 2019"
	experience := types.NewResumeSection(types.SectionExperience, "Experience", 1)
	experience.Items = []types.SectionItem{
		types.NewSectionItem(1, types.Experience{
			Company:   "Initech",
			Role:      "Developer",
			StartDate: "Jun 2016",
			EndDate:   &end,
			Bullets:   []types.Bullet{types.NewBullet("Built internal tools", 0)},
		}),
		types.NewSectionItem(0, types.Experience{
			Company:   "Acme Corp",
			Role:      "Senior Engineer",
			StartDate: "Jan 2020",
			Bullets: []types.Bullet{
				types.NewBullet("Improved uptime to 99.99%", 1),
				types.NewBullet("Reduced costs by **25%** year over year", 0),
			},
		}),
	}

	summary := types.NewResumeSection(types.SectionSummary, "Summary", 0)
	summary.Items = []types.SectionItem{
		types.NewSectionItem(0, types.Summary{Text: "Engineer focused on R&D."}),
	}

	skills := types.NewResumeSection(types.SectionSkills, "Skills", 2)
	skills.Items = []types.SectionItem{
		types.NewSectionItem(0, types.Skills{Categories: []types.SkillCategory{
			{Name: "Programming", Skills: []string{"Go", "Python"}},
		}}),
	}

	// Stored out of order on purpose
	resume.Sections = []types.ResumeSection{experience, skills, summary}
	return resume
}

func TestRenderLaTeXStructure(t *testing.T) {
	latex := RenderLaTeX(renderTestResume())

	assert.True(t, strings.HasPrefix(latex, `\documentclass[11pt,a4paper]{article}`))
	assert.Contains(t, latex, `\begin{document}`)
	assert.Contains(t, latex, `\end{document}`)
	assert.Contains(t, latex, `{\Huge\bfseries John Smith}`)
	assert.Contains(t, latex, `\section{Summary}`)
	assert.Contains(t, latex, `\section{Experience}`)
	assert.Contains(t, latex, `\section{Skills}`)
}

func TestRenderLaTeXSectionOrder(t *testing.T) {
	latex := RenderLaTeX(renderTestResume())

	summaryAt := strings.Index(latex, `\section{Summary}`)
	experienceAt := strings.Index(latex, `\section{Experience}`)
	skillsAt := strings.Index(latex, `\section{Skills}`)
	require.True(t, summaryAt >= 0 && experienceAt >= 0 && skillsAt >= 0)
	assert.Less(t, summaryAt, experienceAt)
	assert.Less(t, experienceAt, skillsAt)

	// Items sort by order key too: Acme (order 0) before Initech (order 1)
	assert.Less(t, strings.Index(latex, "Acme Corp"), strings.Index(latex, "Initech"))
}

func TestRenderLaTeXDeterministic(t *testing.T) {
	resume := renderTestResume()
	assert.Equal(t, RenderLaTeX(resume), RenderLaTeX(resume))
}

func TestRenderLaTeXHeaderContacts(t *testing.T) {
	latex := RenderLaTeX(renderTestResume())

	assert.Contains(t, latex, `\faMapMarker*\ Austin, TX`)
	assert.Contains(t, latex, `\href{mailto:john@example.com}{john@example.com}`)
	assert.Contains(t, latex, `\href{https://linkedin.com/in/johnsmith}{linkedin.com/in/johnsmith}`)
	assert.NotContains(t, latex, `\faGithub`)
}

func TestRenderLaTeXOngoingExperience(t *testing.T) {
	latex := RenderLaTeX(renderTestResume())

	assert.Contains(t, latex, `Jan 2020 -- Present`)
	assert.Contains(t, latex, `Jun 2016 -- Dec 2019`)
}

func TestRenderLaTeXBoldSpans(t *testing.T) {
	latex := RenderLaTeX(renderTestResume())

	assert.Contains(t, latex, `Reduced costs by \textbf{25\%} year over year`)
	assert.NotContains(t, latex, "**")
}

func TestRenderLaTeXEscapesReservedCharacters(t *testing.T) {
	latex := RenderLaTeX(renderTestResume())

	assert.Contains(t, latex, `Engineer focused on R\&D.`)
	assert.Contains(t, latex, `Improved uptime to 99.99\%`)
}

func TestRenderLaTeXSkillsLine(t *testing.T) {
	latex := RenderLaTeX(renderTestResume())

	assert.Contains(t, latex, `\textbf{Programming:} Go, Python`)
}

func TestRenderLaTeXBulletOrder(t *testing.T) {
	latex := RenderLaTeX(renderTestResume())

	first := strings.Index(latex, "Reduced costs")
	second := strings.Index(latex, "Improved uptime")
	require.True(t, first >= 0 && second >= 0)
	assert.Less(t, first, second)
}

func TestRenderLaTeXEmptyResume(t *testing.T) {
	latex := RenderLaTeX(types.EmptyResume())

	assert.Contains(t, latex, `{\Huge\bfseries Unknown}`)
	assert.NotContains(t, latex, `\section{`)
}
