package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/MariamElsayed172/Notes-Management-API/internal/apperr"
	"github.com/MariamElsayed172/Notes-Management-API/internal/auth"
	"github.com/MariamElsayed172/Notes-Management-API/internal/services"
)

// NoteHandler handles HTTP requests for notes.
type NoteHandler struct {
	service services.NoteServiceProvider
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(service services.NoteServiceProvider) *NoteHandler {
	return &NoteHandler{service: service}
}

// NotePayload defines the structure for create and replace requests.
type NotePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteUpdatePayload defines the structure for partial updates.
type NoteUpdatePayload struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func identity(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apperr.ErrMissingToken)
	}
	return id, ok
}

// Create handles note creation.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity(w, r)
	if !ok {
		return
	}

	var payload NotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.NewValidation("body", "must be valid JSON"))
		return
	}

	note, err := h.service.Create(r.Context(), callerID, payload.Title, payload.Content)
	if err != nil {
		log.Warn().Err(err).Str("user_id", callerID).Msg("Failed to create note")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

// Get handles retrieving a single note by id.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity(w, r)
	if !ok {
		return
	}

	note, err := h.service.Get(r.Context(), chi.URLParam(r, "noteId"), callerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// Update handles partial note updates.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity(w, r)
	if !ok {
		return
	}

	var payload NoteUpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.NewValidation("body", "must be valid JSON"))
		return
	}

	note, err := h.service.Update(r.Context(), chi.URLParam(r, "noteId"), callerID, services.NoteUpdate{
		Title:   payload.Title,
		Content: payload.Content,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// Replace handles full note replacement.
func (h *NoteHandler) Replace(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity(w, r)
	if !ok {
		return
	}

	var payload NotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.NewValidation("body", "must be valid JSON"))
		return
	}

	note, err := h.service.Replace(r.Context(), chi.URLParam(r, "noteId"), callerID, payload.Title, payload.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// Delete handles deleting a single note.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity(w, r)
	if !ok {
		return
	}

	note, err := h.service.Delete(r.Context(), chi.URLParam(r, "noteId"), callerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// UpdateAllTitles handles bulk-updating the title of all caller notes.
func (h *NoteHandler) UpdateAllTitles(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity(w, r)
	if !ok {
		return
	}

	var payload struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.NewValidation("body", "must be valid JSON"))
		return
	}

	count, err := h.service.UpdateAllTitles(r.Context(), callerID, payload.Title)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"updatedCount": count})
}

// DeleteAll handles deleting all of the caller's notes.
func (h *NoteHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity(w, r)
	if !ok {
		return
	}

	count, err := h.service.DeleteAll(r.Context(), callerID)
	if err != nil {
		log.Error().Err(err).Str("user_id", callerID).Msg("Failed to delete notes")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": count})
}

// ListPaginated handles the paginated, newest-first note listing.
func (h *NoteHandler) ListPaginated(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity(w, r)
	if !ok {
		return
	}

	// Missing or non-numeric values fall back to the defaults.
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.service.ListPaginated(r.Context(), callerID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// FindByContent handles the exact-match content lookup.
func (h *NoteHandler) FindByContent(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity(w, r)
	if !ok {
		return
	}

	note, err := h.service.FindByContent(r.Context(), callerID, r.URL.Query().Get("content"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// ListWithOwner handles the owner-joined note listing.
func (h *NoteHandler) ListWithOwner(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity(w, r)
	if !ok {
		return
	}

	notes, err := h.service.ListWithOwner(r.Context(), callerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

// Aggregate handles the grouped join projection with optional title filter.
func (h *NoteHandler) Aggregate(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity(w, r)
	if !ok {
		return
	}

	notes, err := h.service.AggregateByOwner(r.Context(), callerID, r.URL.Query().Get("title"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, notes)
}
