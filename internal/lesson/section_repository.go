package lesson

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const sectionColumns = `id, lesson_id, day, content, bible_texts, section_order, created_at, updated_at`

// selectSections loads the sections of every lesson in lessonIDs, ordered by
// lesson and then by section order.
func selectSections(ctx context.Context, q sqlx.QueryerContext, lessonIDs []int64) ([]Section, error) {
	if len(lessonIDs) == 0 {
		return []Section{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+sectionColumns+` FROM sections
		WHERE lesson_id IN (?) ORDER BY lesson_id, section_order, id`, lessonIDs)
	if err != nil {
		return nil, fmt.Errorf("build sections query: %w", err)
	}

	sections := []Section{}
	if err := sqlx.SelectContext(ctx, q, &sections, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		return nil, fmt.Errorf("load sections: %w", err)
	}
	return sections, nil
}

// insertSections writes sections under lessonID, updating each element with
// its generated id and owning lesson.
func insertSections(ctx context.Context, tx *sqlx.Tx, lessonID int64, sections []Section) error {
	query := `
		INSERT INTO sections (lesson_id, day, content, bible_texts, section_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	for i := range sections {
		s := &sections[i]
		s.LessonID = lessonID
		err := tx.QueryRowxContext(ctx, query,
			s.LessonID, s.Day, s.Content, s.BibleTexts, s.Order, s.CreatedAt, s.UpdatedAt,
		).Scan(&s.ID)
		if err != nil {
			return fmt.Errorf("insert section %d of lesson %d: %w", i, lessonID, err)
		}
	}
	return nil
}

func deleteSections(ctx context.Context, tx *sqlx.Tx, lessonID int64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM sections WHERE lesson_id = $1`, lessonID); err != nil {
		return fmt.Errorf("delete sections of lesson %d: %w", lessonID, err)
	}
	return nil
}
