package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MariamElsayed172/Notes-Management-API/internal/apperr"
)

func TestUserStore_InsertAndFind(t *testing.T) {
	users := NewUserStore(newTestDB(t))
	ctx := context.Background()

	user := testUser("mariam@example.com")
	require.NoError(t, users.Insert(ctx, user))

	byID, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, byID.Email)
	require.Equal(t, user.PhoneCipher, byID.PhoneCipher)

	byEmail, err := users.FindByEmail(ctx, user.Email)
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	_, err = users.FindByEmail(ctx, "unknown@example.com")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUserStore_DuplicateEmail(t *testing.T) {
	users := NewUserStore(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, users.Insert(ctx, testUser("dup@example.com")))

	err := users.Insert(ctx, testUser("dup@example.com"))
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestUserStore_ValidatesOnWrite(t *testing.T) {
	users := NewUserStore(newTestDB(t))
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(u *testUserBuilder)
	}{
		{"empty name", func(u *testUserBuilder) { u.name = "" }},
		{"empty email", func(u *testUserBuilder) { u.email = "" }},
		{"too young", func(u *testUserBuilder) { u.age = 17 }},
		{"too old", func(u *testUserBuilder) { u.age = 61 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &testUserBuilder{name: "Mariam", email: "v@example.com", age: 25}
			tc.mutate(b)
			u := testUser(b.email)
			u.Name = b.name
			u.Age = b.age
			err := users.Insert(ctx, u)
			require.True(t, apperr.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

type testUserBuilder struct {
	name  string
	email string
	age   int
}

func TestUserStore_EmailTakenByOther(t *testing.T) {
	users := NewUserStore(newTestDB(t))
	ctx := context.Background()

	a := testUser("a@example.com")
	b := testUser("b@example.com")
	require.NoError(t, users.Insert(ctx, a))
	require.NoError(t, users.Insert(ctx, b))

	taken, err := users.EmailTakenByOther(ctx, "b@example.com", a.ID)
	require.NoError(t, err)
	require.True(t, taken)

	// A user's own email does not count as taken.
	taken, err = users.EmailTakenByOther(ctx, "a@example.com", a.ID)
	require.NoError(t, err)
	require.False(t, taken)
}

func TestUserStore_UpdateMissing(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	err := users.Update(context.Background(), testUser("ghost@example.com"))
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUserStore_DeleteTwice(t *testing.T) {
	users := NewUserStore(newTestDB(t))
	ctx := context.Background()

	user := testUser("gone@example.com")
	require.NoError(t, users.Insert(ctx, user))

	require.NoError(t, users.Delete(ctx, user.ID))
	require.ErrorIs(t, users.Delete(ctx, user.ID), apperr.ErrNotFound)
}
