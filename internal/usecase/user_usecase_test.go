package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"casar_em_carneiros/internal/domain/entities"
	mock_interfaces "casar_em_carneiros/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_Create(t *testing.T) {
	t.Run("weak password", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.User{Email: "a@b.com"}, "123")
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.User{Email: "a@b.com", Role: "gerente"}, "secret1")
		if !errors.Is(err, ErrInvalidUserRole) {
			t.Fatalf("expected ErrInvalidUserRole, got %v", err)
		}
	})

	t.Run("email already in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{ID: "u-1"}, nil)

		_, err := uc.Create(context.Background(), entities.User{Email: " Maria@Example.com "}, "secret1")
		if !errors.Is(err, ErrEmailInUse) {
			t.Fatalf("expected ErrEmailInUse, got %v", err)
		}
	})

	t.Run("success defaults to client role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewUserUseCase(repo, hasher)

		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{}, nil)
		hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.PasswordHash != "hashed" || u.Role != entities.RoleClient {
					t.Fatalf("unexpected user: %+v", u)
				}
				if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return u, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.User{Email: "maria@example.com", FullName: "Maria"}, "secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestUserUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		_, err := uc.Update(context.Background(), entities.User{})
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{}, nil)

		_, err := uc.Update(context.Background(), entities.User{ID: "u-1"})
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("update never touches the password hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		createdAt := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{
			ID: "u-1", Email: "maria@example.com", Role: entities.RoleStaff,
			PasswordHash: "stored-hash", CreatedAt: createdAt,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.PasswordHash != "stored-hash" {
					t.Fatalf("expected stored hash to survive, got %q", u.PasswordHash)
				}
				if u.Email != "maria@example.com" || u.Role != entities.RoleStaff {
					t.Fatalf("expected fallback to stored email/role, got %+v", u)
				}
				if !u.CreatedAt.Equal(createdAt) {
					t.Fatalf("expected preserved createdAt")
				}
				return u, nil
			},
		)

		_, err := uc.Update(context.Background(), entities.User{ID: "u-1", FullName: "Maria S.", PasswordHash: "attacker"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{}, nil)

		if err := uc.Delete(context.Background(), "u-1"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "u-1").Return(nil)

		if err := uc.Delete(context.Background(), "u-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
