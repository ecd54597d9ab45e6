package response

import (
	"time"

	"casar_em_carneiros/internal/domain/entities"
)

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

func FromLogin(u entities.User, token string, expiresAt time.Time) LoginResponse {
	return LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      FromUser(u),
	}
}
