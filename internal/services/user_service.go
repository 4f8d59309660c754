package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/MariamElsayed172/Notes-Management-API/internal/apperr"
	"github.com/MariamElsayed172/Notes-Management-API/internal/crypto"
	"github.com/MariamElsayed172/Notes-Management-API/internal/models"
	"github.com/MariamElsayed172/Notes-Management-API/internal/store"
)

// UserUpdate carries the self-update fields. Nil pointers leave the
// corresponding field untouched.
type UserUpdate struct {
	Name  *string
	Email *string
	Phone *string
	Age   *int
}

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Signup(ctx context.Context, name, email, password, phone string, age int) (models.Profile, error)
	Login(ctx context.Context, email, password string) (string, models.Profile, error)
	UpdateSelf(ctx context.Context, id string, upd UserUpdate) (models.Profile, error)
	DeleteSelf(ctx context.Context, id string) error
	ReadSelf(ctx context.Context, id string) (models.Profile, error)
}

// TokenIssuer mints bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// UserService provides signup, login and the self-scoped account
// operations. Every request re-authenticates via token; the service holds
// no session state.
type UserService struct {
	users  *store.UserStore
	phones *crypto.PhoneCipher
	tokens TokenIssuer
}

// NewUserService creates a new UserService.
func NewUserService(users *store.UserStore, phones *crypto.PhoneCipher, tokens TokenIssuer) *UserService {
	return &UserService{users: users, phones: phones, tokens: tokens}
}

// Signup registers a new account. The password is stored as a bcrypt hash
// and the phone number encrypted; neither plaintext is ever persisted or
// echoed back.
func (s *UserService) Signup(ctx context.Context, name, email, password, phone string, age int) (models.Profile, error) {
	if err := store.ValidateUserFields(name, email, phone, age); err != nil {
		return models.Profile{}, err
	}
	if err := store.ValidatePassword(password); err != nil {
		return models.Profile{}, err
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return models.Profile{}, apperr.ErrConflict
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return models.Profile{}, err
	}
	phoneCipher, err := s.phones.Encrypt(phone)
	if err != nil {
		return models.Profile{}, err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		PhoneCipher:  phoneCipher,
		Age:          age,
	}
	// A concurrent signup with the same email loses the race at the unique
	// index and comes back as ErrConflict.
	if err := s.users.Insert(ctx, user); err != nil {
		return models.Profile{}, err
	}

	return models.Profile{ID: user.ID, Name: user.Name, Email: user.Email, Age: user.Age}, nil
}

// Login verifies credentials and returns a fresh token plus the public
// profile. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, models.Profile, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", models.Profile{}, apperr.ErrInvalidCredentials
	}
	if !crypto.CheckPassword(password, user.PasswordHash) {
		return "", models.Profile{}, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", models.Profile{}, err
	}
	return token, models.Profile{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// UpdateSelf mutates the caller's own account. Only name, email, phone and
// age are mutable; supplied fields overwrite, absent fields stay. An email
// change re-checks uniqueness excluding the caller.
func (s *UserService) UpdateSelf(ctx context.Context, id string, upd UserUpdate) (models.Profile, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return models.Profile{}, err
	}

	phone := ""
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil && *upd.Email != user.Email {
		taken, err := s.users.EmailTakenByOther(ctx, *upd.Email, id)
		if err != nil {
			return models.Profile{}, err
		}
		if taken {
			return models.Profile{}, apperr.ErrConflict
		}
		user.Email = *upd.Email
	}
	if upd.Age != nil {
		user.Age = *upd.Age
	}
	if upd.Phone != nil {
		phone = *upd.Phone
		if phone == "" {
			return models.Profile{}, apperr.NewValidation("phone", "must not be empty")
		}
		cipher, err := s.phones.Encrypt(phone)
		if err != nil {
			return models.Profile{}, err
		}
		user.PhoneCipher = cipher
	}

	if err := s.users.Update(ctx, user); err != nil {
		return models.Profile{}, err
	}
	if phone == "" {
		if phone, err = s.phones.Decrypt(user.PhoneCipher); err != nil {
			return models.Profile{}, err
		}
	}
	return models.Profile{ID: user.ID, Name: user.Name, Email: user.Email, Phone: phone, Age: user.Age}, nil
}

// DeleteSelf removes the caller's account. Notes are intentionally not
// cascaded; see the notes table ownership semantics.
func (s *UserService) DeleteSelf(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// ReadSelf returns the caller's profile with the phone number decrypted
// for display. The password hash never leaves the store layer.
func (s *UserService) ReadSelf(ctx context.Context, id string) (models.Profile, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return models.Profile{}, err
	}
	phone, err := s.phones.Decrypt(user.PhoneCipher)
	if err != nil {
		return models.Profile{}, err
	}
	return models.Profile{ID: user.ID, Name: user.Name, Email: user.Email, Phone: phone, Age: user.Age}, nil
}
