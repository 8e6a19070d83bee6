package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/folio/folio-go/internal/crypto"
	"github.com/folio/folio-go/internal/model"
	"github.com/folio/folio-go/internal/repository"
)

// AuthService handles operator authentication.
type AuthService struct {
	users     UserStore
	hasher    *crypto.Hasher
	jwtSecret string
	jwtExpiry time.Duration
	now       func() time.Time
}

// NewAuthService creates a new AuthService. A nil hasher uses the default
// Argon2id parameters.
func NewAuthService(users UserStore, hasher *crypto.Hasher, secret string, expiry time.Duration) *AuthService {
	if hasher == nil {
		hasher = crypto.NewHasher(crypto.DefaultHashParams())
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		jwtSecret: secret,
		jwtExpiry: expiry,
		now:       time.Now,
	}
}

// CreateUser registers an operator account.
func (s *AuthService) CreateUser(ctx context.Context, email, name, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || name == "" || password == "" {
		return nil, ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Password:  hash,
		CreatedAt: s.now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, storageErr("create user", err)
	}
	return user, nil
}

// Login checks credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return model.AuthResponse{}, ErrMissingFields
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, storageErr("look up user", err)
	}

	match, err := s.hasher.Verify(req.Password, user.Password)
	if err != nil {
		slog.Warn("stored password hash unreadable", "user_id", user.ID, "error", err)
		return model.AuthResponse{}, ErrInvalidCredentials
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}
	if s.hasher.NeedsRehash(user.Password) {
		s.rehash(ctx, user.ID, req.Password)
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, storageErr("get user", err)
	}
	return toUserResponse(user), nil
}

// rehash upgrades a stored hash to the current parameters. Failures only
// cost the upgrade, never the login.
func (s *AuthService) rehash(ctx context.Context, userID, password string) {
	hash, err := s.hasher.Hash(password)
	if err == nil {
		err = s.users.UpdatePassword(ctx, userID, hash)
	}
	if err != nil {
		slog.Warn("password rehash failed", "user_id", userID, "error", err)
		return
	}
	slog.Info("password hash upgraded", "user_id", userID)
}

func toUserResponse(u *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}
