// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// SectionKind identifies the kind of a resume section
type SectionKind string

// Section kind constants define the closed set of recognized section kinds
const (
	SectionSummary        SectionKind = "summary"
	SectionExperience     SectionKind = "experience"
	SectionEducation      SectionKind = "education"
	SectionSkills         SectionKind = "skills"
	SectionProjects       SectionKind = "projects"
	SectionCertifications SectionKind = "certifications"
	SectionLanguages      SectionKind = "languages"
	SectionCustom         SectionKind = "custom"
)

// ParseSectionKind maps a raw string to a SectionKind, defaulting to
// SectionCustom for anything it does not recognize. LLM output routinely
// invents kinds, so an unknown value must never fail.
func ParseSectionKind(raw string) SectionKind {
	switch SectionKind(raw) {
	case SectionSummary, SectionExperience, SectionEducation, SectionSkills,
		SectionProjects, SectionCertifications, SectionLanguages, SectionCustom:
		return SectionKind(raw)
	default:
		return SectionCustom
	}
}

// ItemKind identifies the content variant carried by a SectionItem
type ItemKind string

// Item kind constants define the closed set of content variants
const (
	ItemExperience ItemKind = "experience"
	ItemEducation  ItemKind = "education"
	ItemSkills     ItemKind = "skills"
	ItemSummary    ItemKind = "summary"
	ItemProject    ItemKind = "project"
	ItemCustom     ItemKind = "custom"
)

// Bullet represents a single bullet point owned by a section item
type Bullet struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

// NewBullet creates a bullet with a fresh id
func NewBullet(text string, order int) Bullet {
	return Bullet{ID: uuid.New().String(), Text: text, Order: order}
}

// SkillCategory represents a named group of skill strings
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// ItemContent is the tagged union of section item payloads. The variant set is
// closed; consumers dispatch with a type switch over the six concrete types.
type ItemContent interface {
	Kind() ItemKind
}

// Experience represents a single job entry
type Experience struct {
	Company   string   `json:"company"`
	Role      string   `json:"role"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"start_date"`
	EndDate   *string  `json:"end_date,omitempty"` // nil means "Present"
	Bullets   []Bullet `json:"bullets"`
}

// Kind implements ItemContent
func (Experience) Kind() ItemKind { return ItemExperience }

// Education represents a degree entry
type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field,omitempty"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date"`
	GPA         string   `json:"gpa,omitempty"`
	Bullets     []Bullet `json:"bullets"`
}

// Kind implements ItemContent
func (Education) Kind() ItemKind { return ItemEducation }

// Skills represents a set of skill categories
type Skills struct {
	Categories []SkillCategory `json:"categories"`
}

// Kind implements ItemContent
func (Skills) Kind() ItemKind { return ItemSkills }

// Summary represents a free-text summary or objective paragraph
type Summary struct {
	Text string `json:"text"`
}

// Kind implements ItemContent
func (Summary) Kind() ItemKind { return ItemSummary }

// Project represents a project entry
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	Bullets      []Bullet `json:"bullets"`
}

// Kind implements ItemContent
func (Project) Kind() ItemKind { return ItemProject }

// Custom represents a generic entry for unrecognized section content
type Custom struct {
	Title     string   `json:"title,omitempty"`
	Subtitle  string   `json:"subtitle,omitempty"`
	DateRange string   `json:"date_range,omitempty"`
	Location  string   `json:"location,omitempty"`
	Bullets   []Bullet `json:"bullets"`
}

// Kind implements ItemContent
func (Custom) Kind() ItemKind { return ItemCustom }

// SectionItem represents one entry in a section. The content payload carries
// a "type" tag on the wire; the tag alone decides rendering dispatch.
type SectionItem struct {
	ID      string      `json:"id"`
	Order   int         `json:"order"`
	Content ItemContent `json:"content"`
}

// NewSectionItem creates a section item with a fresh id
func NewSectionItem(order int, content ItemContent) SectionItem {
	return SectionItem{ID: uuid.New().String(), Order: order, Content: content}
}

// sectionItemEnvelope mirrors SectionItem for wire (de)serialization
type sectionItemEnvelope struct {
	ID      string          `json:"id"`
	Order   int             `json:"order"`
	Content json.RawMessage `json:"content"`
}

// MarshalJSON injects the variant tag into the content object
func (si SectionItem) MarshalJSON() ([]byte, error) {
	if si.Content == nil {
		return nil, fmt.Errorf("section item %s has no content", si.ID)
	}
	raw, err := json.Marshal(si.Content)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["type"] = json.RawMessage(strconv.Quote(string(si.Content.Kind())))
	content, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sectionItemEnvelope{ID: si.ID, Order: si.Order, Content: content})
}

// UnmarshalJSON dispatches on the content's "type" tag. An unknown or missing
// tag decodes as Custom rather than failing.
func (si *SectionItem) UnmarshalJSON(data []byte) error {
	var env sectionItemEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	si.ID = env.ID
	si.Order = env.Order

	var tag struct {
		Type string `json:"type"`
	}
	if len(env.Content) > 0 {
		if err := json.Unmarshal(env.Content, &tag); err != nil {
			return err
		}
	}

	content, err := decodeItemContent(ItemKind(tag.Type), env.Content)
	if err != nil {
		return err
	}
	si.Content = content
	return nil
}

func decodeItemContent(kind ItemKind, raw json.RawMessage) (ItemContent, error) {
	if len(raw) == 0 {
		return Custom{}, nil
	}
	switch kind {
	case ItemExperience:
		var c Experience
		err := json.Unmarshal(raw, &c)
		return c, err
	case ItemEducation:
		var c Education
		err := json.Unmarshal(raw, &c)
		return c, err
	case ItemSkills:
		var c Skills
		err := json.Unmarshal(raw, &c)
		return c, err
	case ItemSummary:
		var c Summary
		err := json.Unmarshal(raw, &c)
		return c, err
	case ItemProject:
		var c Project
		err := json.Unmarshal(raw, &c)
		return c, err
	default:
		var c Custom
		err := json.Unmarshal(raw, &c)
		return c, err
	}
}

// ResumeSection represents an ordered group of items under one heading
type ResumeSection struct {
	ID    string        `json:"id"`
	Kind  SectionKind   `json:"type"`
	Title string        `json:"title"`
	Order int           `json:"order"`
	Items []SectionItem `json:"items"`
}

// NewResumeSection creates a section with a fresh id
func NewResumeSection(kind SectionKind, title string, order int) ResumeSection {
	return ResumeSection{ID: uuid.New().String(), Kind: kind, Title: title, Order: order}
}

// SortedItems returns the section's items in ascending order-key order.
// The sort is stable, so equal keys keep their insertion order.
func (s *ResumeSection) SortedItems() []SectionItem {
	items := make([]SectionItem, len(s.Items))
	copy(items, s.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items
}

// ResumeMetadata represents the contact block at the top of a resume
type ResumeMetadata struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Resume is the root aggregate. It exclusively owns its sections; every node
// in the tree carries a globally unique id that is never reused.
type Resume struct {
	ID        string          `json:"id"`
	Metadata  ResumeMetadata  `json:"metadata"`
	Sections  []ResumeSection `json:"sections"`
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewResume creates a resume with a fresh id, version 1, and current timestamps
func NewResume(metadata ResumeMetadata) *Resume {
	now := time.Now().UTC()
	return &Resume{
		ID:        uuid.New().String(),
		Metadata:  metadata,
		Sections:  []ResumeSection{},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EmptyResume returns the fallback resume used when extraction fails:
// valid, no sections, placeholder name.
func EmptyResume() *Resume {
	return NewResume(ResumeMetadata{Name: "Unknown"})
}

// SortedSections returns the resume's sections in ascending order-key order.
// The sort is stable, so equal keys keep their insertion order.
func (r *Resume) SortedSections() []ResumeSection {
	sections := make([]ResumeSection, len(r.Sections))
	copy(sections, r.Sections)
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })
	return sections
}

// SortedBullets returns bullets in ascending order-key order
func SortedBullets(bullets []Bullet) []Bullet {
	sorted := make([]Bullet, len(bullets))
	copy(sorted, bullets)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	return sorted
}
