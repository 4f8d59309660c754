package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/MariamElsayed172/Notes-Management-API/internal/apperr"
	"github.com/MariamElsayed172/Notes-Management-API/internal/auth"
	"github.com/MariamElsayed172/Notes-Management-API/internal/services"
)

// AuthHandler handles HTTP requests for the account lifecycle.
type AuthHandler struct {
	service services.UserServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignupPayload defines the structure for signup requests.
type SignupPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Age      int    `json:"age"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePayload defines the structure for self-update requests. Absent
// fields are left untouched.
type UpdatePayload struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Age   *int    `json:"age"`
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.NewValidation("body", "must be valid JSON"))
		return
	}

	profile, err := h.service.Signup(r.Context(), payload.Name, payload.Email, payload.Password, payload.Phone, payload.Age)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

// Login handles authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.NewValidation("body", "must be valid JSON"))
		return
	}

	token, profile, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed authentication attempt")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  profile,
	})
}

// Update handles updating the authenticated user's own profile.
func (h *AuthHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apperr.ErrMissingToken)
		return
	}

	var payload UpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.NewValidation("body", "must be valid JSON"))
		return
	}

	profile, err := h.service.UpdateSelf(r.Context(), id, services.UserUpdate{
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
		Age:   payload.Age,
	})
	if err != nil {
		log.Warn().Err(err).Str("user_id", id).Msg("Failed to update user")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Delete handles deleting the authenticated user's own account.
func (h *AuthHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apperr.ErrMissingToken)
		return
	}

	if err := h.service.DeleteSelf(r.Context(), id); err != nil {
		log.Warn().Err(err).Str("user_id", id).Msg("Failed to delete user")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

// Me returns the authenticated user's profile with the phone decrypted.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apperr.ErrMissingToken)
		return
	}

	profile, err := h.service.ReadSelf(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("Failed to read user")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
