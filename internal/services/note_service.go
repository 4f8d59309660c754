package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/MariamElsayed172/Notes-Management-API/internal/apperr"
	"github.com/MariamElsayed172/Notes-Management-API/internal/models"
	"github.com/MariamElsayed172/Notes-Management-API/internal/store"
)

// Default pagination values when the query omits them or sends garbage.
const (
	defaultPage     = 1
	defaultPageSize = 5
)

// NoteUpdate carries the partial-update fields. Nil pointers leave the
// corresponding field untouched.
type NoteUpdate struct {
	Title   *string
	Content *string
}

// NoteServiceProvider defines the interface for note services.
type NoteServiceProvider interface {
	Create(ctx context.Context, ownerID, title, content string) (models.Note, error)
	Get(ctx context.Context, noteID, callerID string) (models.Note, error)
	Update(ctx context.Context, noteID, callerID string, upd NoteUpdate) (models.Note, error)
	Replace(ctx context.Context, noteID, callerID, title, content string) (models.Note, error)
	Delete(ctx context.Context, noteID, callerID string) (models.Note, error)
	UpdateAllTitles(ctx context.Context, callerID, title string) (int64, error)
	DeleteAll(ctx context.Context, callerID string) (int64, error)
	ListPaginated(ctx context.Context, callerID string, page, pageSize int) (models.NotePage, error)
	FindByContent(ctx context.Context, callerID, content string) (models.Note, error)
	ListWithOwner(ctx context.Context, callerID string) ([]models.NoteWithOwner, error)
	AggregateByOwner(ctx context.Context, callerID, titleFilter string) ([]models.NoteAggregate, error)
}

// NoteService provides ownership-scoped note CRUD. Every single-note
// operation runs the same protocol: fetch, compare owner to caller, act.
type NoteService struct {
	notes *store.NoteStore
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes *store.NoteStore) *NoteService {
	return &NoteService{notes: notes}
}

// fetchOwned loads a note and enforces ownership. Absent notes yield
// ErrNotFound before any ownership comparison, so a caller cannot learn
// whether a foreign id exists faster than a missing one.
func (s *NoteService) fetchOwned(ctx context.Context, noteID, callerID string) (models.Note, error) {
	note, err := s.notes.FindByID(ctx, noteID)
	if err != nil {
		return models.Note{}, err
	}
	if note.OwnerID != callerID {
		return models.Note{}, apperr.ErrForbidden
	}
	return note, nil
}

// Create stores a new note owned by the caller.
func (s *NoteService) Create(ctx context.Context, ownerID, title, content string) (models.Note, error) {
	note := models.Note{
		ID:      uuid.New().String(),
		Title:   title,
		Content: content,
		OwnerID: ownerID,
	}
	if err := s.notes.Insert(ctx, &note); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// Get returns a single note after the ownership check.
func (s *NoteService) Get(ctx context.Context, noteID, callerID string) (models.Note, error) {
	return s.fetchOwned(ctx, noteID, callerID)
}

// Update applies a partial update: only supplied fields change, absent
// fields are left untouched. An explicit empty string counts as absent,
// so a partial update can never blank out a field.
func (s *NoteService) Update(ctx context.Context, noteID, callerID string, upd NoteUpdate) (models.Note, error) {
	note, err := s.fetchOwned(ctx, noteID, callerID)
	if err != nil {
		return models.Note{}, err
	}
	if upd.Title != nil && *upd.Title != "" {
		note.Title = *upd.Title
	}
	if upd.Content != nil && *upd.Content != "" {
		note.Content = *upd.Content
	}
	if err := s.notes.Update(ctx, note); err != nil {
		return models.Note{}, err
	}
	return s.notes.FindByID(ctx, noteID)
}

// Replace overwrites title and content entirely. The owner is preserved;
// this path can never reassign a note to another identity.
func (s *NoteService) Replace(ctx context.Context, noteID, callerID, title, content string) (models.Note, error) {
	note, err := s.fetchOwned(ctx, noteID, callerID)
	if err != nil {
		return models.Note{}, err
	}
	note.Title = title
	note.Content = content
	if err := s.notes.Update(ctx, note); err != nil {
		return models.Note{}, err
	}
	return s.notes.FindByID(ctx, noteID)
}

// Delete removes a single note and returns it.
func (s *NoteService) Delete(ctx context.Context, noteID, callerID string) (models.Note, error) {
	note, err := s.fetchOwned(ctx, noteID, callerID)
	if err != nil {
		return models.Note{}, err
	}
	if err := s.notes.Delete(ctx, noteID); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// UpdateAllTitles bulk-sets the title across all of the caller's notes.
// The scope is strictly the caller's own notes, never global.
func (s *NoteService) UpdateAllTitles(ctx context.Context, callerID, title string) (int64, error) {
	return s.notes.UpdateTitlesByOwner(ctx, callerID, title)
}

// DeleteAll removes all of the caller's notes and returns the count.
// A second call deletes zero and still succeeds.
func (s *NoteService) DeleteAll(ctx context.Context, callerID string) (int64, error) {
	return s.notes.DeleteByOwner(ctx, callerID)
}

// ListPaginated returns one 1-indexed page of the caller's notes, newest
// created first, with total page and note counts.
func (s *NoteService) ListPaginated(ctx context.Context, callerID string, page, pageSize int) (models.NotePage, error) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	notes, err := s.notes.ListByOwner(ctx, callerID, pageSize, (page-1)*pageSize)
	if err != nil {
		return models.NotePage{}, err
	}
	total, err := s.notes.CountByOwner(ctx, callerID)
	if err != nil {
		return models.NotePage{}, err
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return models.NotePage{
		Notes:      notes,
		Page:       page,
		TotalPages: (total + pageSize - 1) / pageSize,
		TotalNotes: total,
	}, nil
}

// FindByContent looks up one of the caller's notes by exact content match.
func (s *NoteService) FindByContent(ctx context.Context, callerID, content string) (models.Note, error) {
	if content == "" {
		return models.Note{}, apperr.NewValidation("content", "is required in query")
	}
	return s.notes.FindByOwnerAndContent(ctx, callerID, content)
}

// ListWithOwner returns the caller's notes joined with the owner's email.
func (s *NoteService) ListWithOwner(ctx context.Context, callerID string) ([]models.NoteWithOwner, error) {
	notes, err := s.notes.ListWithOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.NoteWithOwner{}
	}
	return notes, nil
}

// AggregateByOwner returns the join projection over the caller's notes,
// optionally filtered by exact title.
func (s *NoteService) AggregateByOwner(ctx context.Context, callerID, titleFilter string) ([]models.NoteAggregate, error) {
	notes, err := s.notes.AggregateByOwner(ctx, callerID, titleFilter)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.NoteAggregate{}
	}
	return notes, nil
}
