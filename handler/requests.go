package handler

// Request bodies follow the storefront client's wire contract; the field
// names are load-bearing.

type signupRequest struct {
	Name     string `json:"name" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type verifyOtpRequest struct {
	UserID string `json:"userId" validate:"required"`
	Otp    string `json:"otp" validate:"required"`
}

// resendOtpRequest carries the user id in a field named "user".
type resendOtpRequest struct {
	User string `json:"user" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}
