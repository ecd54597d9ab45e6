package request

type CreateUserRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	PhoneNumber     string `json:"phoneNumber" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Role            string `json:"role" binding:"omitempty,oneof=client staff admin"`
	BirthDate       string `json:"birthDate" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type UpdateUserRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Role        string `json:"role" binding:"omitempty,oneof=client staff admin"`
	BirthDate   string `json:"birthDate"`
}
