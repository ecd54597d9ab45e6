package identity

import (
	"errors"
	"time"

	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

const defaultTokenTTL = 12 * time.Hour

type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 access tokens. The role travels in
// the claims so authorization never goes back to the users table per request.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

var _ interfaces.ITokenManager = (*TokenManager)(nil)

func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

func (m *TokenManager) Generate(u entities.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := sessionClaims{
		Email: u.Email,
		Role:  string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   u.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (m *TokenManager) Parse(tokenString string) (interfaces.SessionClaims, error) {
	claims := &sessionClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithIssuer(m.issuer))
	token, err := parser.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return interfaces.SessionClaims{}, err
	}
	if !token.Valid || claims.Subject == "" {
		return interfaces.SessionClaims{}, ErrInvalidToken
	}

	return interfaces.SessionClaims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   entities.Role(claims.Role),
	}, nil
}
