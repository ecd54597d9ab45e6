package interfaces

import (
	"context"

	"casar_em_carneiros/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// The wizard reads the full client snapshot once per open; the identity flows
// resolve accounts by e-mail at sign-in time.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Delete(ctx context.Context, id string) error
}
