package entities

import "time"

// Role is the account role resolved once at session load. Authorization
// decisions compare against these constants, never against e-mail literals.

type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// PapelCliente is the wedding role of a client inside a budget.
type PapelCliente string

const (
	PapelNoivo PapelCliente = "noivo"
	PapelNoiva PapelCliente = "noiva"
)

// User is the account record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - Table: users
//   - PK: id
//
// PasswordHash is write-only: it is set at account creation and on password
// change, and never leaves the persistence layer through the HTTP responses.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	PhoneNumber  string    `json:"phoneNumber"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	BirthDate    string    `json:"birthDate"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
