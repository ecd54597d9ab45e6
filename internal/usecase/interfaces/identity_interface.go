package interfaces

import (
	"time"

	"casar_em_carneiros/internal/domain/entities"
)

// SessionClaims is the session context resolved once at sign-in and carried
// by the access token. Components that need the current user's id or role
// receive these claims explicitly; nothing re-derives roles from e-mails.
type SessionClaims struct {
	UserID string
	Email  string
	Role   entities.Role
}

// ITokenManager abstracts access-token issuing and validation.
type ITokenManager interface {
	Generate(u entities.User) (token string, expiresAt time.Time, err error)
	Parse(token string) (SessionClaims, error)
}

// IPasswordHasher abstracts password hashing so usecases never touch bcrypt
// directly.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
