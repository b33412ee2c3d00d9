package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/example/restorun-backoffice/internal/domain"
)

const minPasswordLen = 6

// Login — проверить пароль и открыть сессию.
type Login struct {
	Users      domain.UserRepository
	Sessions   domain.SessionStore
	SessionTTL time.Duration
}

func (uc Login) Execute(ctx context.Context, username, password string) (domain.Session, error) {
	u, err := uc.Users.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Session{}, domain.ErrUnauthorized
	}
	if err != nil {
		return domain.Session{}, errors.Wrap(err, "load user")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return domain.Session{}, domain.ErrUnauthorized
	}

	s := domain.Session{
		Token:    uuid.NewString(),
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
	if err := uc.Sessions.Save(ctx, s, uc.SessionTTL); err != nil {
		return domain.Session{}, errors.Wrap(err, "save session")
	}
	return s, nil
}

type Logout struct {
	Sessions domain.SessionStore
}

func (uc Logout) Execute(ctx context.Context, token string) error {
	return uc.Sessions.Delete(ctx, token)
}

// Authenticate — найти сессию по токену.
type Authenticate struct {
	Sessions domain.SessionStore
}

func (uc Authenticate) Execute(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, domain.ErrUnauthorized
	}
	s, err := uc.Sessions.Get(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Session{}, domain.ErrUnauthorized
	}
	if err != nil {
		return domain.Session{}, errors.Wrap(err, "load session")
	}
	s.Token = token
	return s, nil
}

// Register — создать пользователя с уникальным именем.
type Register struct {
	Users domain.UserRepository
	Now   func() time.Time
}

func (uc Register) Execute(ctx context.Context, username, password string, role domain.Role) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.User{}, domain.Invalid("username is required")
	}
	if len(password) < minPasswordLen {
		return domain.User{}, domain.Invalid("password must be at least %d characters", minPasswordLen)
	}
	if !role.Valid() {
		return domain.User{}, domain.Invalid("unknown role %q", role)
	}

	_, err := uc.Users.GetByUsername(ctx, username)
	if err == nil {
		return domain.User{}, errors.Wrapf(domain.ErrConflict, "user %s", username)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, errors.Wrap(err, "load user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, errors.Wrap(err, "hash password")
	}
	u := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now(uc.Now).UTC(),
	}
	if err := uc.Users.Create(ctx, u); err != nil {
		return domain.User{}, errors.Wrap(err, "create user")
	}
	return u, nil
}

// EnsureAdmin создаёт стартового администратора, если его ещё нет.
type EnsureAdmin struct {
	Register Register
}

func (uc EnsureAdmin) Execute(ctx context.Context, username, password string) (bool, error) {
	if password == "" {
		return false, nil
	}
	_, err := uc.Register.Execute(ctx, username, password, domain.RoleAdmin)
	if errors.Is(err, domain.ErrConflict) {
		return false, nil
	}
	return err == nil, err
}
