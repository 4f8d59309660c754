package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/MariamElsayed172/Notes-Management-API/internal/database"
	"github.com/MariamElsayed172/Notes-Management-API/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func testUser(email string) models.User {
	return models.User{
		ID:           uuid.New().String(),
		Name:         "Mariam",
		Email:        email,
		PasswordHash: "$2a$10$fakehashvalue",
		PhoneCipher:  "abcd:ef0123",
		Age:          25,
	}
}
