package request

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangeEmailRequest requires re-authentication with the current password
// before the account e-mail is switched.
type ChangeEmailRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewEmail        string `json:"newEmail" binding:"required,email"`
}
