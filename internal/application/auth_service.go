package application

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/go-employee-auth/internal/domain/repository"
	"github.com/oksasatya/go-employee-auth/pkg/validation"
)

// PasswordHasher is satisfied by helpers.PasswordHasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer is satisfied by helpers.TokenManager.
type TokenIssuer interface {
	Issue(userID int64) (string, time.Time, error)
	Verify(token string) (int64, error)
}

// RegisteredUser is what a RegistrationNotifier learns about a new account.
type RegisteredUser struct {
	ID       int64
	Username string
	Email    string
}

// RegistrationNotifier is told about every successful registration.
// Failures are logged and never fail the registration.
type RegistrationNotifier interface {
	NotifyRegistered(ctx context.Context, u RegisteredUser) error
}

type AuthService struct {
	Repo     repo.UserRepository
	Hasher   PasswordHasher
	Tokens   TokenIssuer
	Notifier RegistrationNotifier
	Logger   logrus.FieldLogger
}

func NewAuthService(users repo.UserRepository, hasher PasswordHasher, tokens TokenIssuer, notifier RegistrationNotifier, logger logrus.FieldLogger) *AuthService {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &AuthService{
		Repo:     users,
		Hasher:   hasher,
		Tokens:   tokens,
		Notifier: notifier,
		Logger:   logger,
	}
}

type RegisterInput struct {
	Username string `json:"username" validate:"notblank"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"pwd"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

// Profile is the public view of a user; it has no password hash on purpose.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Register validates in, rejects taken usernames/emails, hashes the password
// and inserts the user. The lookup is only a fast path: the store's unique
// constraint decides, so a concurrent duplicate still ends up as a conflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (int64, error) {
	if err := validation.Struct(in); err != nil {
		return 0, Validation(MsgInvalidPayload, validation.ToDetails(err))
	}

	existing, err := s.Repo.FindByEmailOrUsername(ctx, in.Email, in.Username)
	switch {
	case err == nil && existing != nil:
		authStats.Add(statRegisterConflict, 1)
		return 0, Conflict(MsgUserExists, nil)
	case err != nil && !errors.Is(err, repo.ErrNotFound):
		s.Logger.WithError(err).Error("register: uniqueness lookup failed")
		return 0, Internal(MsgDatabaseError, err)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		s.Logger.WithError(err).Error("register: hash password failed")
		return 0, Internal(MsgHashFailed, err)
	}

	id, err := s.Repo.Create(ctx, in.Username, in.Email, hash)
	if err != nil {
		if errors.Is(err, repo.ErrConflict) {
			authStats.Add(statRegisterConflict, 1)
			return 0, Conflict(MsgUserExists, err)
		}
		s.Logger.WithError(err).Error("register: insert user failed")
		return 0, Internal(MsgRegisterFailed, err)
	}

	authStats.Add(statRegisterOK, 1)
	s.Logger.WithField("user_id", id).Info("user registered")

	if s.Notifier != nil {
		u := RegisteredUser{ID: id, Username: in.Username, Email: in.Email}
		if nErr := s.Notifier.NotifyRegistered(ctx, u); nErr != nil {
			s.Logger.WithError(nErr).WithField("user_id", id).Warn("registration notification failed")
		}
	}
	return id, nil
}

// Login checks the credentials and issues a session token. An unknown email
// and a wrong password produce the same error and cost the same hashing work.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, Validation(MsgInvalidPayload, validation.ToDetails(err))
	}

	u, err := s.Repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			s.Hasher.Verify(in.Password, "")
			authStats.Add(statLoginFailed, 1)
			s.Logger.WithField("reason", "unknown_email").Debug("login rejected")
			return nil, Auth(MsgInvalidCredentials)
		}
		s.Logger.WithError(err).Error("login: lookup failed")
		return nil, Internal(MsgDatabaseError, err)
	}

	if !s.Hasher.Verify(in.Password, u.PasswordHash) {
		authStats.Add(statLoginFailed, 1)
		s.Logger.WithFields(logrus.Fields{"reason": "password_mismatch", "user_id": u.ID}).Debug("login rejected")
		return nil, Auth(MsgInvalidCredentials)
	}

	token, exp, err := s.Tokens.Issue(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("login: issue token failed")
		return nil, Internal(MsgTokenFailed, err)
	}

	authStats.Add(statLoginOK, 1)
	s.Logger.WithField("user_id", u.ID).Info("user logged in")
	return &LoginResult{UserID: u.ID, Token: token, ExpiresAt: exp}, nil
}

// Authenticate resolves a presented token to a user id. Every rejection
// reason maps to the same error.
func (s *AuthService) Authenticate(token string) (int64, error) {
	if token == "" {
		return 0, Unauthorized(MsgNoToken)
	}
	uid, err := s.Tokens.Verify(token)
	if err != nil {
		authStats.Add(statTokenRejected, 1)
		return 0, Unauthorized(MsgTokenInvalid)
	}
	return uid, nil
}

func (s *AuthService) Profile(ctx context.Context, userID int64) (*Profile, error) {
	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NotFound(MsgUserNotFound)
		}
		s.Logger.WithError(err).WithField("user_id", userID).Error("profile: lookup failed")
		return nil, Internal(MsgDatabaseError, err)
	}
	return &Profile{ID: u.ID, Username: u.Username, Email: u.Email}, nil
}
