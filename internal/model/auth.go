package model

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required,phone"`
	Password string `json:"password" binding:"required,min=6,max=50"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password
type ResetPasswordRequest struct {
	Phone string `json:"phone" binding:"required,phone"`
}

// VerifyCodeRequest is the body of POST /auth/verify-code
type VerifyCodeRequest struct {
	Phone string `json:"phone" binding:"required,phone"`
	Code  string `json:"code" binding:"required,len=6,number"`
}

// SetPasswordRequest is the body of POST /auth/set-password
type SetPasswordRequest struct {
	Phone       string `json:"phone" binding:"required,phone"`
	Code        string `json:"code" binding:"required,len=6,number"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=50"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	User  *Account `json:"user"`
	Token string   `json:"token"`
}

// SuccessResponse is returned by operations that only report success
type SuccessResponse struct {
	Success bool `json:"success"`
}
