package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MariamElsayed172/Notes-Management-API/internal/auth"
	"github.com/MariamElsayed172/Notes-Management-API/internal/crypto"
	"github.com/MariamElsayed172/Notes-Management-API/internal/database"
	"github.com/MariamElsayed172/Notes-Management-API/internal/models"
	"github.com/MariamElsayed172/Notes-Management-API/internal/store"
)

// newTestServices wires real stores, a real cipher and a real token manager
// over an in-memory database, so service tests exercise the full stack
// below the HTTP layer.
func newTestServices(t *testing.T) (*UserService, *NoteService) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i + 1)
	}
	phones, err := crypto.NewPhoneCipher(key)
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret-0123456789", time.Hour)

	users := NewUserService(store.NewUserStore(db), phones, tokens)
	notes := NewNoteService(store.NewNoteStore(db))
	return users, notes
}

func signupUser(t *testing.T, users *UserService, email string) models.Profile {
	t.Helper()
	profile, err := users.Signup(context.Background(), "Mariam", email, "s3cret-pass", "+201001234567", 25)
	require.NoError(t, err)
	return profile
}
