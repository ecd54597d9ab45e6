package response

import (
	"time"

	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/pkg"
)

// UserResponse never carries password material.
type UserResponse struct {
	ID                  string    `json:"id"`
	FullName            string    `json:"fullName"`
	PhoneNumber         string    `json:"phoneNumber"`
	PhoneNumberFmt      string    `json:"phoneNumberFormatado"`
	Email               string    `json:"email"`
	Role                string    `json:"role"`
	BirthDate           string    `json:"birthDate"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		FullName:       u.FullName,
		PhoneNumber:    u.PhoneNumber,
		PhoneNumberFmt: pkg.FormatPhoneBR(u.PhoneNumber),
		Email:          u.Email,
		Role:           string(u.Role),
		BirthDate:      u.BirthDate,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
