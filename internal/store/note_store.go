package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MariamElsayed172/Notes-Management-API/internal/apperr"
	"github.com/MariamElsayed172/Notes-Management-API/internal/models"
)

// NoteStore persists notes. Ownership checks are the note service's job;
// the store only scopes the bulk and list queries it is asked to scope.
type NoteStore struct {
	db *sql.DB
}

// NewNoteStore creates a new NoteStore.
func NewNoteStore(db *sql.DB) *NoteStore {
	return &NoteStore{db: db}
}

// Insert stores a new note. Timestamps are set here so creation order is
// preserved at full precision.
func (s *NoteStore) Insert(ctx context.Context, note *models.Note) error {
	if err := ValidateTitle(note.Title); err != nil {
		return err
	}
	if err := ValidateContent(note.Content); err != nil {
		return err
	}
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO notes (id, title, content, owner_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		note.ID, note.Title, note.Content, note.OwnerID, note.CreatedAt, note.UpdatedAt)
	return err
}

// FindByID retrieves a single note by id.
func (s *NoteStore) FindByID(ctx context.Context, id string) (models.Note, error) {
	var note models.Note
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, content, owner_id, created_at, updated_at FROM notes WHERE id = ?", id).
		Scan(&note.ID, &note.Title, &note.Content, &note.OwnerID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, apperr.ErrNotFound
		}
		return models.Note{}, err
	}
	return note, nil
}

// Update overwrites title and content of one note and bumps updated_at.
// The owner column is never touched by this statement.
func (s *NoteStore) Update(ctx context.Context, note models.Note) error {
	if err := ValidateTitle(note.Title); err != nil {
		return err
	}
	if err := ValidateContent(note.Content); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		"UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?",
		note.Title, note.Content, time.Now().UTC(), note.ID)
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

// UpdateTitlesByOwner bulk-sets the title across all of one owner's notes
// and returns how many rows matched.
func (s *NoteStore) UpdateTitlesByOwner(ctx context.Context, ownerID, title string) (int64, error) {
	if err := ValidateTitle(title); err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx,
		"UPDATE notes SET title = ?, updated_at = ? WHERE owner_id = ?",
		title, time.Now().UTC(), ownerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a single note.
func (s *NoteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
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

// DeleteByOwner removes all of one owner's notes and returns the count.
// Zero deletions is not an error.
func (s *NoteStore) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE owner_id = ?", ownerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListByOwner returns one page of an owner's notes, newest-created-first.
// rowid breaks ties between notes created in the same instant.
func (s *NoteStore) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]models.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, owner_id, created_at, updated_at
		 FROM notes WHERE owner_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ? OFFSET ?`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.OwnerID,
			&note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// CountByOwner returns the total number of notes an owner has.
func (s *NoteStore) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM notes WHERE owner_id = ?", ownerID).Scan(&n)
	return n, err
}

// FindByOwnerAndContent looks up one of the owner's notes by exact content
// match. Literal equality, not substring search; ties go to the earliest
// inserted note.
func (s *NoteStore) FindByOwnerAndContent(ctx context.Context, ownerID, content string) (models.Note, error) {
	var note models.Note
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, owner_id, created_at, updated_at
		 FROM notes WHERE owner_id = ? AND content = ?
		 ORDER BY rowid ASC LIMIT 1`, ownerID, content).
		Scan(&note.ID, &note.Title, &note.Content, &note.OwnerID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, apperr.ErrNotFound
		}
		return models.Note{}, err
	}
	return note, nil
}

// ListWithOwner returns the owner's notes joined with the owner's email,
// projected down to title, owner id and creation time.
func (s *NoteStore) ListWithOwner(ctx context.Context, ownerID string) ([]models.NoteWithOwner, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT n.title, n.owner_id, n.created_at, u.email
		 FROM notes n JOIN users u ON u.id = n.owner_id
		 WHERE n.owner_id = ?
		 ORDER BY n.created_at DESC, n.rowid DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.NoteWithOwner
	for rows.Next() {
		var n models.NoteWithOwner
		if err := rows.Scan(&n.Title, &n.OwnerID, &n.CreatedAt, &n.OwnerEmail); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// AggregateByOwner runs the join projection for the aggregate endpoint,
// optionally filtered by exact title. The raw note id stays out of the
// result set.
func (s *NoteStore) AggregateByOwner(ctx context.Context, ownerID, titleFilter string) ([]models.NoteAggregate, error) {
	query := `SELECT n.owner_id, n.title, n.created_at, u.name, u.email
		 FROM notes n JOIN users u ON u.id = n.owner_id
		 WHERE n.owner_id = ?`
	args := []any{ownerID}
	if titleFilter != "" {
		query += " AND n.title = ?"
		args = append(args, titleFilter)
	}
	query += " ORDER BY n.created_at DESC, n.rowid DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.NoteAggregate
	for rows.Next() {
		var n models.NoteAggregate
		if err := rows.Scan(&n.OwnerID, &n.Title, &n.CreatedAt, &n.OwnerName, &n.OwnerEmail); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
