package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/database"
	"github.com/taiwoajasa245/sabbath-lesson-api/internal/testutil"
)

func TestMigrate(t *testing.T) {
	db := testutil.StartPostgres(t)
	ctx := context.Background()

	version, err := database.MigrationVersion(ctx, db.DB)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// Applying again is a no-op.
	require.NoError(t, database.Migrate(ctx, db.DB))

	var tables []string
	err = db.SelectContext(ctx, &tables, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name IN ('languages', 'lessons', 'sections')
		ORDER BY table_name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"languages", "lessons", "sections"}, tables)

	assert.Equal(t, "up", database.NewFromDB(db).Health()["status"])
}
