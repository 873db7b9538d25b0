package language

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/language/mock_repository.go -package=mock_language

var (
	ErrNotFound = errors.New("language not found")
	ErrInUse    = errors.New("language is still referenced by lessons")
)

const languageColumns = `id, name, code, flag, is_active, created_at, updated_at`

// Repository defines the database operations on languages.
type Repository interface {
	FindActive(ctx context.Context) ([]Language, error)
	FindByID(ctx context.Context, id int64) (*Language, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Language, error)
	FindByCode(ctx context.Context, code string) (*Language, error)
	Create(ctx context.Context, l *Language) error
	Update(ctx context.Context, l *Language) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

func (r *repository) FindActive(ctx context.Context) ([]Language, error) {
	query := `SELECT ` + languageColumns + ` FROM languages WHERE is_active = TRUE ORDER BY id`

	var languages []Language
	if err := r.db.SelectContext(ctx, &languages, query); err != nil {
		return nil, fmt.Errorf("load active languages: %w", err)
	}
	return languages, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Language, error) {
	query := `SELECT ` + languageColumns + ` FROM languages WHERE id = $1`

	var l Language
	if err := r.db.GetContext(ctx, &l, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load language %d: %w", id, err)
	}
	return &l, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []int64) ([]Language, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+languageColumns+` FROM languages WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("build languages query: %w", err)
	}

	var languages []Language
	if err := r.db.SelectContext(ctx, &languages, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load languages: %w", err)
	}
	return languages, nil
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Language, error) {
	query := `SELECT ` + languageColumns + ` FROM languages WHERE code = $1 ORDER BY id LIMIT 1`

	var l Language
	if err := r.db.GetContext(ctx, &l, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load language by code %q: %w", code, err)
	}
	return &l, nil
}

func (r *repository) Create(ctx context.Context, l *Language) error {
	query := `
		INSERT INTO languages (name, code, flag, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		l.Name, l.Code, l.Flag, l.IsActive, l.CreatedAt, l.UpdatedAt,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert language: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, l *Language) error {
	query := `
		UPDATE languages
		SET name = $1, code = $2, flag = $3, is_active = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query, l.Name, l.Code, l.Flag, l.IsActive, l.UpdatedAt, l.ID)
	if err != nil {
		return fmt.Errorf("update language %d: %w", l.ID, err)
	}
	return requireRow(result)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM languages WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return fmt.Errorf("delete language %d: %w", id, err)
	}
	return requireRow(result)
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
