package lesson

import (
	"time"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/language"
)

// Lesson is a row of the lessons table. Language and Sections are only
// populated when requested through Include.
type Lesson struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Content      string    `db:"content"`
	Introduction string    `db:"introduction"`
	Year         int       `db:"year"`
	Quarter      string    `db:"quarter"`
	Keywords     string    `db:"keywords"`
	IsPublished  bool      `db:"is_published"`
	Order        int       `db:"lesson_order"`
	LanguageID   int64     `db:"language_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`

	Language *language.Language `db:"-"`
	Sections []Section          `db:"-"`
}

// Touch marks the lesson as modified at now.
func (l *Lesson) Touch(now time.Time) {
	l.UpdatedAt = now
}

// Section is a day of a lesson, owned by exactly one lesson.
type Section struct {
	ID         int64     `db:"id"`
	LessonID   int64     `db:"lesson_id"`
	Day        string    `db:"day"`
	Content    string    `db:"content"`
	BibleTexts string    `db:"bible_texts"`
	Order      int       `db:"section_order"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Include selects the associations a read loads alongside the lessons.
type Include struct {
	Language bool
	Sections bool
}

var IncludeAll = Include{Language: true, Sections: true}

// Filter narrows a lesson listing. A nil field matches every lesson.
type Filter struct {
	Year       *int
	Quarter    *string
	LanguageID *int64
}

type LessonDTO struct {
	ID           int64                 `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Content      string                `json:"content"`
	Introduction string                `json:"introduction"`
	Year         int                   `json:"year"`
	Quarter      string                `json:"quarter"`
	Keywords     string                `json:"keywords"`
	IsPublished  bool                  `json:"isPublished"`
	Order        int                   `json:"order"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
	Language     *language.LanguageDTO `json:"language"`
	Sections     []SectionDTO          `json:"sections"`
}

type SectionDTO struct {
	ID         int64     `json:"id"`
	Day        string    `json:"day"`
	Content    string    `json:"content"`
	BibleTexts string    `json:"bibleTexts"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	LessonID   int64     `json:"lessonId"`
}

// LessonInput is the body of create and update requests.
//
// Sections distinguishes an omitted (or null) list from an empty one: nil
// leaves the stored sections alone on update, a non-nil list replaces them.
type LessonInput struct {
	Title        string         `json:"title" validate:"required,max=255"`
	Description  string         `json:"description" validate:"max=1000"`
	Content      string         `json:"content" validate:"required,max=5000"`
	Introduction string         `json:"introduction" validate:"max=2000"`
	Year         int            `json:"year" validate:"required"`
	Quarter      string         `json:"quarter" validate:"required,max=255"`
	Keywords     string         `json:"keywords" validate:"max=500"`
	IsPublished  *bool          `json:"isPublished"`
	Order        *int           `json:"order"`
	LanguageID   *int64         `json:"languageId"`
	Sections     []SectionInput `json:"sections" validate:"omitempty,dive"`
}

type SectionInput struct {
	Day        string `json:"day" validate:"required,max=255"`
	Content    string `json:"content" validate:"required,max=5000"`
	BibleTexts string `json:"bibleTexts" validate:"max=1000"`
	Order      *int   `json:"order"`
}

// apply overwrites every scalar field of l. Omitted isPublished and order keep
// the current values; a new lesson starts unpublished at order 0.
func (in LessonInput) apply(l *Lesson) {
	l.Title = in.Title
	l.Description = in.Description
	l.Content = in.Content
	l.Introduction = in.Introduction
	l.Year = in.Year
	l.Quarter = in.Quarter
	l.Keywords = in.Keywords

	if in.IsPublished != nil {
		l.IsPublished = *in.IsPublished
	}
	if in.Order != nil {
		l.Order = *in.Order
	}
}

// newSections builds fresh section rows. A section without an explicit order
// takes its position in the input list.
func newSections(inputs []SectionInput, now time.Time) []Section {
	sections := make([]Section, 0, len(inputs))
	for i, in := range inputs {
		sections = append(sections, newSection(in, i, now))
	}
	return sections
}

func newSection(in SectionInput, defaultOrder int, now time.Time) Section {
	order := defaultOrder
	if in.Order != nil {
		order = *in.Order
	}
	return Section{
		Day:        in.Day,
		Content:    in.Content,
		BibleTexts: in.BibleTexts,
		Order:      order,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func toDTO(l *Lesson) LessonDTO {
	dto := LessonDTO{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		Content:      l.Content,
		Introduction: l.Introduction,
		Year:         l.Year,
		Quarter:      l.Quarter,
		Keywords:     l.Keywords,
		IsPublished:  l.IsPublished,
		Order:        l.Order,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
		Sections:     make([]SectionDTO, 0, len(l.Sections)),
	}

	if l.Language != nil {
		lang := language.ToDTO(l.Language)
		dto.Language = &lang
	}

	for i := range l.Sections {
		dto.Sections = append(dto.Sections, sectionToDTO(&l.Sections[i]))
	}

	return dto
}

func sectionToDTO(s *Section) SectionDTO {
	return SectionDTO{
		ID:         s.ID,
		Day:        s.Day,
		Content:    s.Content,
		BibleTexts: s.BibleTexts,
		Order:      s.Order,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		LessonID:   s.LessonID,
	}
}

// storageNow is the wall clock at the precision PostgreSQL keeps.
func storageNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
