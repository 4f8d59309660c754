// Package store implements the data-access layer over SQLite. Stores run
// the centralized validators before any write and translate driver errors
// into the application taxonomy; services never see raw sqlite errors.
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/MariamElsayed172/Notes-Management-API/internal/apperr"
	"github.com/MariamElsayed172/Notes-Management-API/internal/models"
)

// UserStore persists user records. Email uniqueness is backed by the
// schema's unique index, so concurrent duplicate signups lose the race at
// the constraint and surface as ErrConflict.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Insert stores a new user. The caller supplies an already-hashed password
// and an already-encrypted phone.
func (s *UserStore) Insert(ctx context.Context, user models.User) error {
	if err := ValidateUserFields(user.Name, user.Email, user.PhoneCipher, user.Age); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password_hash, phone_cipher, age) VALUES (?, ?, ?, ?, ?, ?)",
		user.ID, user.Name, user.Email, user.PasswordHash, user.PhoneCipher, user.Age)
	return translateConstraint(err)
}

// FindByID retrieves a single user by id.
func (s *UserStore) FindByID(ctx context.Context, id string) (models.User, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, phone_cipher, age, created_at FROM users WHERE id = ?", id))
}

// FindByEmail retrieves a single user by email, including the password hash.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, phone_cipher, age, created_at FROM users WHERE email = ?", email))
}

// EmailTakenByOther reports whether email belongs to any user other than
// selfID. Used by self-update to re-check uniqueness excluding the caller.
func (s *UserStore) EmailTakenByOther(ctx context.Context, email, selfID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM users WHERE email = ? AND id != ?", email, selfID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Update overwrites the mutable user fields. Returns ErrNotFound if the
// row vanished between authentication and the write.
func (s *UserStore) Update(ctx context.Context, user models.User) error {
	if err := ValidateUserFields(user.Name, user.Email, user.PhoneCipher, user.Age); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET name = ?, email = ?, phone_cipher = ?, age = ? WHERE id = ?",
		user.Name, user.Email, user.PhoneCipher, user.Age, user.ID)
	if err != nil {
		return translateConstraint(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Delete removes a user. Returns ErrNotFound if the user is already gone.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *UserStore) scanOne(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.PhoneCipher, &user.Age, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, apperr.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// translateConstraint maps a unique-constraint violation to ErrConflict and
// passes everything else through.
func translateConstraint(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return apperr.ErrConflict
	}
	return err
}
