package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrEmailInUse      = errors.New("email already in use")
	ErrInvalidUserRole = errors.New("invalid user role")
	ErrWeakPassword    = errors.New("password too short")
)

const minPasswordLen = 6

// IUserUseCase exposes client/staff account operations. Password handling is
// restricted to account creation; updates never touch the stored hash.

type IUserUseCase interface {
	Create(ctx context.Context, u entities.User, password string) (entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Delete(ctx context.Context, id string) error
}

type UserUseCase struct {
	repo   interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, hasher interfaces.IPasswordHasher) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher}
}

func (u *UserUseCase) Create(ctx context.Context, user entities.User, password string) (entities.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Role == "" {
		user.Role = entities.RoleClient
	}
	if !user.Role.Valid() {
		return entities.User{}, ErrInvalidUserRole
	}
	if len(password) < minPasswordLen {
		return entities.User{}, ErrWeakPassword
	}

	if existing, err := u.repo.GetByEmail(ctx, user.Email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrEmailInUse
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.PasswordHash = hash
	user.CreatedAt = now
	user.UpdatedAt = now

	return u.repo.Create(ctx, user)
}

func (u *UserUseCase) Update(ctx context.Context, user entities.User) (entities.User, error) {
	user.ID = strings.TrimSpace(user.ID)
	if user.ID == "" {
		return entities.User{}, ErrInvalidUserID
	}
	if user.Role != "" && !user.Role.Valid() {
		return entities.User{}, ErrInvalidUserRole
	}

	existing, err := u.repo.GetByID(ctx, user.ID)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID == "" {
		return entities.User{}, ErrUserNotFound
	}

	// Write-only fields survive from the stored record.
	user.PasswordHash = existing.PasswordHash
	user.CreatedAt = existing.CreatedAt
	if user.Email == "" {
		user.Email = existing.Email
	}
	if user.Role == "" {
		user.Role = existing.Role
	}
	user.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, user)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.ID == "" {
		return ErrUserNotFound
	}
	return u.repo.Delete(ctx, id)
}
