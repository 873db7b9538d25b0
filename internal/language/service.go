package language

import (
	"context"
	"errors"
	"time"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/logger"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/validation"
)

type LanguageService struct {
	repo      Repository
	validator *validation.Validator
	log       *logger.Logger
	now       func() time.Time
}

func NewLanguageService(repo Repository, validator *validation.Validator, log *logger.Logger) LanguageService {
	return LanguageService{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "language_service"),
		now:       storageNow,
	}
}

func (s *LanguageService) ListActive(ctx context.Context) ([]LanguageDTO, error) {
	languages, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]LanguageDTO, 0, len(languages))
	for i := range languages {
		out = append(out, ToDTO(&languages[i]))
	}
	return out, nil
}

func (s *LanguageService) GetByID(ctx context.Context, id int64) (*LanguageDTO, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := ToDTO(l)
	return &dto, nil
}

func (s *LanguageService) GetByCode(ctx context.Context, code string) (*LanguageDTO, error) {
	l, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	dto := ToDTO(l)
	return &dto, nil
}

func (s *LanguageService) Create(ctx context.Context, input LanguageInput) (*LanguageDTO, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	l := &Language{IsActive: true, CreatedAt: now, UpdatedAt: now}
	input.apply(l)

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	s.log.Info("language created", "language_id", l.ID, "code", l.Code)
	dto := ToDTO(l)
	return &dto, nil
}

func (s *LanguageService) Update(ctx context.Context, id int64, input LanguageInput) (*LanguageDTO, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.apply(l)
	l.Touch(s.now().UTC())

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}

	s.log.Info("language updated", "language_id", l.ID)
	dto := ToDTO(l)
	return &dto, nil
}

func (s *LanguageService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("language deleted", "language_id", id)
	return nil
}

// Ensure creates the language unless one with the same code already exists.
// The boolean reports whether a row was inserted.
func (s *LanguageService) Ensure(ctx context.Context, input LanguageInput) (*LanguageDTO, bool, error) {
	existing, err := s.repo.FindByCode(ctx, input.Code)
	switch {
	case err == nil:
		dto := ToDTO(existing)
		return &dto, false, nil
	case !errors.Is(err, ErrNotFound):
		return nil, false, err
	}

	dto, err := s.Create(ctx, input)
	if err != nil {
		return nil, false, err
	}
	return dto, true, nil
}
