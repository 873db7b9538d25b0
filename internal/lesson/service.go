package lesson

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/language"
	"github.com/taiwoajasa245/sabbath-lesson-api/internal/logger"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/pagination"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/validation"
)

type LessonService struct {
	repo      Repository
	languages language.Repository
	validator *validation.Validator
	log       *logger.Logger
	now       func() time.Time
}

func NewLessonService(repo Repository, languages language.Repository, validator *validation.Validator, log *logger.Logger) LessonService {
	return LessonService{
		repo:      repo,
		languages: languages,
		validator: validator,
		log:       log.With("component", "lesson_service"),
		now:       storageNow,
	}
}

func (s *LessonService) ListByYearAndQuarter(ctx context.Context, year int, quarter string) ([]LessonDTO, error) {
	lessons, err := s.repo.FindByYearAndQuarter(ctx, year, quarter, IncludeAll)
	if err != nil {
		return nil, err
	}

	out := make([]LessonDTO, 0, len(lessons))
	for i := range lessons {
		out = append(out, toDTO(&lessons[i]))
	}
	return out, nil
}

func (s *LessonService) ListYears(ctx context.Context) ([]int, error) {
	years, err := s.repo.FindDistinctYears(ctx)
	if err != nil {
		return nil, err
	}
	if years == nil {
		years = []int{}
	}
	return years, nil
}

func (s *LessonService) ListFiltered(ctx context.Context, f Filter, page, size int) (pagination.Page[LessonDTO], error) {
	lessons, total, err := s.repo.FindByFilter(ctx, f, page, size, IncludeAll)
	if err != nil {
		return pagination.Page[LessonDTO]{}, err
	}
	return pageOf(lessons, page, size, total), nil
}

func (s *LessonService) Search(ctx context.Context, q string, page, size int) (pagination.Page[LessonDTO], error) {
	lessons, total, err := s.repo.Search(ctx, q, page, size, IncludeAll)
	if err != nil {
		return pagination.Page[LessonDTO]{}, err
	}
	return pageOf(lessons, page, size, total), nil
}

func (s *LessonService) GetByID(ctx context.Context, id int64) (*LessonDTO, error) {
	l, err := s.repo.FindByID(ctx, id, IncludeAll)
	if err != nil {
		return nil, err
	}
	dto := toDTO(l)
	return &dto, nil
}

func (s *LessonService) Create(ctx context.Context, input LessonInput) (*LessonDTO, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}
	if input.LanguageID == nil {
		return nil, validation.New("languageId", "languageId is required")
	}

	lang, err := s.resolveLanguage(ctx, *input.LanguageID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	l := &Lesson{
		LanguageID: lang.ID,
		Language:   lang,
		CreatedAt:  now,
		UpdatedAt:  now,
		Sections:   newSections(input.Sections, now),
	}
	input.apply(l)

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	s.log.Info("lesson created", "lesson_id", l.ID, "language_id", l.LanguageID, "sections", len(l.Sections))
	dto := toDTO(l)
	return &dto, nil
}

func (s *LessonService) Update(ctx context.Context, id int64, input LessonInput) (*LessonDTO, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	l, err := s.repo.FindByID(ctx, id, IncludeAll)
	if err != nil {
		return nil, err
	}

	input.apply(l)
	if input.LanguageID != nil {
		lang, err := s.resolveLanguage(ctx, *input.LanguageID)
		if err != nil {
			return nil, err
		}
		l.LanguageID = lang.ID
		l.Language = lang
	}

	now := s.now().UTC()
	l.Touch(now)

	replaceSections := input.Sections != nil
	if replaceSections {
		l.Sections = newSections(input.Sections, now)
	}

	if err := s.repo.Update(ctx, l, replaceSections); err != nil {
		return nil, err
	}

	s.log.Info("lesson updated", "lesson_id", l.ID, "sections_replaced", replaceSections)
	dto := toDTO(l)
	return &dto, nil
}

func (s *LessonService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id, Include{}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("lesson deleted", "lesson_id", id)
	return nil
}

func (s *LessonService) ListSections(ctx context.Context, lessonID int64) ([]SectionDTO, error) {
	if _, err := s.repo.FindByID(ctx, lessonID, Include{}); err != nil {
		return nil, err
	}

	sections, err := s.repo.FindSections(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	out := make([]SectionDTO, 0, len(sections))
	for i := range sections {
		out = append(out, sectionToDTO(&sections[i]))
	}
	return out, nil
}

// AddSection appends a section to the lesson. Without an explicit order the
// section goes after the existing ones.
func (s *LessonService) AddSection(ctx context.Context, lessonID int64, input SectionInput) (*SectionDTO, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	l, err := s.repo.FindByID(ctx, lessonID, Include{Sections: true})
	if err != nil {
		return nil, err
	}

	section := newSection(input, len(l.Sections), s.now().UTC())
	section.LessonID = l.ID

	if err := s.repo.AddSection(ctx, &section); err != nil {
		return nil, err
	}

	s.log.Info("section added", "lesson_id", l.ID, "section_id", section.ID)
	dto := sectionToDTO(&section)
	return &dto, nil
}

func (s *LessonService) resolveLanguage(ctx context.Context, id int64) (*language.Language, error) {
	lang, err := s.languages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, language.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrLanguageNotFound, id)
		}
		return nil, err
	}
	return lang, nil
}

func pageOf(lessons []Lesson, page, size int, total int64) pagination.Page[LessonDTO] {
	p := pagination.NewPage(lessons, page, size, total)
	return pagination.Map(p, func(l Lesson) LessonDTO { return toDTO(&l) })
}
