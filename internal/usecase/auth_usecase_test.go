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

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		_, err := uc.Register(context.Background(), "not-an-email", "secret1")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		_, err := uc.Register(context.Background(), "maria@example.com", "123")
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{ID: "u-1"}, nil)

		_, err := uc.Register(context.Background(), " Maria@Example.com ", "secret1")
		if !errors.Is(err, ErrEmailInUse) {
			t.Fatalf("expected ErrEmailInUse, got %v", err)
		}
	})

	t.Run("success creates a client account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(users, hasher, nil)

		// One lookup from Register, one from the embedded Create flow.
		users.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{}, nil).Times(2)
		hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.RoleClient {
					t.Fatalf("expected client role, got %s", u.Role)
				}
				return u, nil
			},
		)

		res, err := uc.Register(context.Background(), "maria@example.com", "secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Email != "maria@example.com" {
			t.Fatalf("unexpected user: %+v", res)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("unknown account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{}, nil)

		_, _, _, err := uc.Login(context.Background(), "maria@example.com", "secret1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(users, hasher, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{ID: "u-1", PasswordHash: "hash"}, nil)
		hasher.EXPECT().Compare("hash", "wrong").Return(errors.New("mismatch"))

		_, _, _, err := uc.Login(context.Background(), "maria@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success returns a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		uc := NewAuthUseCase(users, hasher, tokens)

		account := entities.User{ID: "u-1", Email: "maria@example.com", Role: entities.RoleStaff, PasswordHash: "hash"}
		expiresAt := time.Now().Add(12 * time.Hour)

		users.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(account, nil)
		hasher.EXPECT().Compare("hash", "secret1").Return(nil)
		tokens.EXPECT().Generate(account).Return("jwt-token", expiresAt, nil)

		user, token, exp, err := uc.Login(context.Background(), " Maria@Example.com ", "secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "u-1" || token != "jwt-token" || !exp.Equal(expiresAt) {
			t.Fatalf("unexpected login result: %+v %q %v", user, token, exp)
		}
	})
}

func TestAuthUseCase_ChangeEmail(t *testing.T) {
	t.Run("requires the current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(users, hasher, nil)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", PasswordHash: "hash"}, nil)
		hasher.EXPECT().Compare("hash", "wrong").Return(errors.New("mismatch"))

		_, err := uc.ChangeEmail(context.Background(), "u-1", "wrong", "nova@example.com")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("new email owned by another account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(users, hasher, nil)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", PasswordHash: "hash"}, nil)
		hasher.EXPECT().Compare("hash", "secret1").Return(nil)
		users.EXPECT().GetByEmail(gomock.Any(), "nova@example.com").Return(entities.User{ID: "u-2"}, nil)

		_, err := uc.ChangeEmail(context.Background(), "u-1", "secret1", "nova@example.com")
		if !errors.Is(err, ErrEmailInUse) {
			t.Fatalf("expected ErrEmailInUse, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(users, hasher, nil)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Email: "old@example.com", PasswordHash: "hash"}, nil)
		hasher.EXPECT().Compare("hash", "secret1").Return(nil)
		users.EXPECT().GetByEmail(gomock.Any(), "nova@example.com").Return(entities.User{}, nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Email != "nova@example.com" {
					t.Fatalf("expected new email, got %q", u.Email)
				}
				return u, nil
			},
		)

		res, err := uc.ChangeEmail(context.Background(), "u-1", "secret1", " Nova@Example.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Email != "nova@example.com" {
			t.Fatalf("unexpected user: %+v", res)
		}
	})
}
