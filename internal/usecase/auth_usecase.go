package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email")
)

// IAuthUseCase covers the identity flows: self-service registration, sign-in
// and e-mail change. Changing the e-mail requires re-authentication with the
// current password. Sign-out is a client-side token discard and has no
// server operation.

type IAuthUseCase interface {
	Register(ctx context.Context, email, password string) (entities.User, error)
	Login(ctx context.Context, email, password string) (entities.User, string, time.Time, error)
	ChangeEmail(ctx context.Context, userID, currentPassword, newEmail string) (entities.User, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
	tokens interfaces.ITokenManager
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, hasher interfaces.IPasswordHasher, tokens interfaces.ITokenManager) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a self-service account with the client role. Staff and
// admin accounts are only created through the user management endpoints.
func (u *AuthUseCase) Register(ctx context.Context, email, password string) (entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return entities.User{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return entities.User{}, ErrWeakPassword
	}

	if existing, err := u.users.GetByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrEmailInUse
	}

	uc := NewUserUseCase(u.users, u.hasher)
	return uc.Create(ctx, entities.User{Email: email, Role: entities.RoleClient}, password)
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", time.Time{}, err
	}
	if user.ID == "" {
		return entities.User{}, "", time.Time{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return entities.User{}, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := u.tokens.Generate(user)
	if err != nil {
		return entities.User{}, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// ChangeEmail re-authenticates with the current password before switching
// the account e-mail. The new address must not belong to another account.
func (u *AuthUseCase) ChangeEmail(ctx context.Context, userID, currentPassword, newEmail string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrInvalidUserID
	}
	newEmail = strings.ToLower(strings.TrimSpace(newEmail))
	if newEmail == "" || !strings.Contains(newEmail, "@") {
		return entities.User{}, ErrInvalidEmail
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	if err := u.hasher.Compare(user.PasswordHash, currentPassword); err != nil {
		return entities.User{}, ErrInvalidCredentials
	}

	if other, err := u.users.GetByEmail(ctx, newEmail); err != nil {
		return entities.User{}, err
	} else if other.ID != "" && other.ID != user.ID {
		return entities.User{}, ErrEmailInUse
	}

	user.Email = newEmail
	user.UpdatedAt = time.Now().UTC()
	return u.users.Update(ctx, user)
}
