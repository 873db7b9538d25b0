package lesson

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/database"
	"github.com/taiwoajasa245/sabbath-lesson-api/internal/language"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/pagination"
)

//go:generate mockgen -source=repository.go -destination=../mocks/lesson/mock_repository.go -package=mock_lesson

var (
	ErrNotFound         = errors.New("lesson not found")
	ErrLanguageNotFound = errors.New("language not found")
)

const lessonColumns = `id, title, description, content, introduction, year, quarter, keywords,
	is_published, lesson_order, language_id, created_at, updated_at`

// Repository defines the database operations on lessons and their sections.
// Every write that touches more than one row runs in a single transaction.
type Repository interface {
	FindByID(ctx context.Context, id int64, include Include) (*Lesson, error)
	FindByYearAndQuarter(ctx context.Context, year int, quarter string, include Include) ([]Lesson, error)
	FindDistinctYears(ctx context.Context) ([]int, error)
	FindByFilter(ctx context.Context, f Filter, page, size int, include Include) ([]Lesson, int64, error)
	Search(ctx context.Context, term string, page, size int, include Include) ([]Lesson, int64, error)
	FindSections(ctx context.Context, lessonID int64) ([]Section, error)

	// Create inserts l and then each of l.Sections, filling in the generated ids.
	Create(ctx context.Context, l *Lesson) error
	// Update writes the scalar fields of l. With replaceSections the stored
	// sections are deleted and l.Sections inserted in their place.
	Update(ctx context.Context, l *Lesson, replaceSections bool) error
	// Delete removes the lesson together with its sections.
	Delete(ctx context.Context, id int64) error
	// AddSection inserts s and sets the parent lesson's updated_at to s.CreatedAt.
	AddSection(ctx context.Context, s *Section) error
}

type repository struct {
	db        *sqlx.DB
	languages language.Repository
}

func NewRepository(dbService database.Service, languages language.Repository) Repository {
	return &repository{db: dbService.DB(), languages: languages}
}

func (r *repository) FindByID(ctx context.Context, id int64, include Include) (*Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`

	var l Lesson
	if err := r.db.GetContext(ctx, &l, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load lesson %d: %w", id, err)
	}

	lessons := []Lesson{l}
	if err := r.loadRelations(ctx, lessons, include); err != nil {
		return nil, err
	}
	return &lessons[0], nil
}

func (r *repository) FindByYearAndQuarter(ctx context.Context, year int, quarter string, include Include) ([]Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE year = $1 AND quarter = $2 ORDER BY id`

	var lessons []Lesson
	if err := r.db.SelectContext(ctx, &lessons, query, year, quarter); err != nil {
		return nil, fmt.Errorf("load lessons for %d %s: %w", year, quarter, err)
	}
	if err := r.loadRelations(ctx, lessons, include); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *repository) FindDistinctYears(ctx context.Context) ([]int, error) {
	var years []int
	if err := r.db.SelectContext(ctx, &years, `SELECT DISTINCT year FROM lessons ORDER BY year DESC`); err != nil {
		return nil, fmt.Errorf("load lesson years: %w", err)
	}
	return years, nil
}

func (r *repository) FindByFilter(ctx context.Context, f Filter, page, size int, include Include) ([]Lesson, int64, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if f.Year != nil {
		conditions = append(conditions, "year = ?")
		args = append(args, *f.Year)
	}
	if f.Quarter != nil {
		conditions = append(conditions, "quarter = ?")
		args = append(args, *f.Quarter)
	}
	if f.LanguageID != nil {
		conditions = append(conditions, "language_id = ?")
		args = append(args, *f.LanguageID)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	return r.findPage(ctx, where, args, "id", page, size, include)
}

func (r *repository) Search(ctx context.Context, term string, page, size int, include Include) ([]Lesson, int64, error) {
	var (
		where string
		args  []interface{}
	)
	if term = strings.TrimSpace(term); term != "" {
		where = " WHERE title ILIKE ? OR description ILIKE ? OR content ILIKE ? OR keywords ILIKE ?"
		pattern := "%" + escapeLike(term) + "%"
		args = []interface{}{pattern, pattern, pattern, pattern}
	}

	return r.findPage(ctx, where, args, "created_at DESC, id DESC", page, size, include)
}

// findPage counts the rows matching where and loads one page of them.
func (r *repository) findPage(ctx context.Context, where string, args []interface{}, orderBy string, page, size int, include Include) ([]Lesson, int64, error) {
	var total int64
	countQuery := r.db.Rebind(`SELECT COUNT(*) FROM lessons` + where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count lessons: %w", err)
	}

	query := r.db.Rebind(`SELECT ` + lessonColumns + ` FROM lessons` + where +
		` ORDER BY ` + orderBy + ` LIMIT ? OFFSET ?`)
	pageArgs := append(append([]interface{}{}, args...), size, pagination.Offset(page, size))

	var lessons []Lesson
	if err := r.db.SelectContext(ctx, &lessons, query, pageArgs...); err != nil {
		return nil, 0, fmt.Errorf("load lessons page: %w", err)
	}
	if err := r.loadRelations(ctx, lessons, include); err != nil {
		return nil, 0, err
	}
	return lessons, total, nil
}

func (r *repository) FindSections(ctx context.Context, lessonID int64) ([]Section, error) {
	sections, err := selectSections(ctx, r.db, []int64{lessonID})
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *repository) Create(ctx context.Context, l *Lesson) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		query := `
			INSERT INTO lessons (title, description, content, introduction, year, quarter, keywords,
				is_published, lesson_order, language_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id
		`
		err := tx.QueryRowxContext(ctx, query,
			l.Title, l.Description, l.Content, l.Introduction, l.Year, l.Quarter, l.Keywords,
			l.IsPublished, l.Order, l.LanguageID, l.CreatedAt, l.UpdatedAt,
		).Scan(&l.ID)
		if err != nil {
			if database.IsForeignKeyViolation(err) {
				return ErrLanguageNotFound
			}
			return fmt.Errorf("insert lesson: %w", err)
		}

		return insertSections(ctx, tx, l.ID, l.Sections)
	})
}

func (r *repository) Update(ctx context.Context, l *Lesson, replaceSections bool) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		query := `
			UPDATE lessons
			SET title = $1, description = $2, content = $3, introduction = $4, year = $5, quarter = $6,
				keywords = $7, is_published = $8, lesson_order = $9, language_id = $10, updated_at = $11
			WHERE id = $12
		`
		result, err := tx.ExecContext(ctx, query,
			l.Title, l.Description, l.Content, l.Introduction, l.Year, l.Quarter,
			l.Keywords, l.IsPublished, l.Order, l.LanguageID, l.UpdatedAt, l.ID,
		)
		if err != nil {
			if database.IsForeignKeyViolation(err) {
				return ErrLanguageNotFound
			}
			return fmt.Errorf("update lesson %d: %w", l.ID, err)
		}
		if err := requireRow(result); err != nil {
			return err
		}

		if !replaceSections {
			return nil
		}
		if err := deleteSections(ctx, tx, l.ID); err != nil {
			return err
		}
		return insertSections(ctx, tx, l.ID, l.Sections)
	})
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := deleteSections(ctx, tx, id); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM lessons WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete lesson %d: %w", id, err)
		}
		return requireRow(result)
	})
}

func (r *repository) AddSection(ctx context.Context, s *Section) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `UPDATE lessons SET updated_at = $1 WHERE id = $2`, s.CreatedAt, s.LessonID)
		if err != nil {
			return fmt.Errorf("touch lesson %d: %w", s.LessonID, err)
		}
		if err := requireRow(result); err != nil {
			return err
		}

		sections := []Section{*s}
		if err := insertSections(ctx, tx, s.LessonID, sections); err != nil {
			return err
		}
		*s = sections[0]
		return nil
	})
}

// loadRelations fills the associations selected by include, one query per
// association for the whole batch.
func (r *repository) loadRelations(ctx context.Context, lessons []Lesson, include Include) error {
	if len(lessons) == 0 {
		return nil
	}

	if include.Sections {
		lessonIDs := make([]int64, len(lessons))
		byID := make(map[int64]*Lesson, len(lessons))
		for i := range lessons {
			lessonIDs[i] = lessons[i].ID
			byID[lessons[i].ID] = &lessons[i]
			lessons[i].Sections = []Section{}
		}

		sections, err := selectSections(ctx, r.db, lessonIDs)
		if err != nil {
			return err
		}
		for _, s := range sections {
			if l, ok := byID[s.LessonID]; ok {
				l.Sections = append(l.Sections, s)
			}
		}
	}

	if include.Language {
		seen := make(map[int64]bool)
		var languageIDs []int64
		for _, l := range lessons {
			if !seen[l.LanguageID] {
				seen[l.LanguageID] = true
				languageIDs = append(languageIDs, l.LanguageID)
			}
		}

		languages, err := r.languages.FindByIDs(ctx, languageIDs)
		if err != nil {
			return err
		}
		byID := make(map[int64]*language.Language, len(languages))
		for i := range languages {
			byID[languages[i].ID] = &languages[i]
		}
		for i := range lessons {
			lessons[i].Language = byID[lessons[i].LanguageID]
		}
	}

	return nil
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
