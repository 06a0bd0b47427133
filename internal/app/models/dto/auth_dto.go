package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int64  `json:"expiresIn"`
}

// RegisterRequest represents a user registration request. Registration is
// multipart so an optional profile picture can ride along with the form.
type RegisterRequest struct {
	FullName string `form:"fullName" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
	Role     string `form:"role"`
}

// RegisterResponse confirms that registration was initiated
type RegisterResponse struct {
	UserID  int64  `json:"userId"`
	Message string `json:"message" example:"User registered successfully. Please check your email to verify your account."`
}

// VerifyEmailResponse confirms email verification
type VerifyEmailResponse struct {
	Message string `json:"message" example:"Email verified successfully"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	FullName string  `json:"fullName" binding:"required"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
}

// UpdateTeachModeRequest toggles tutor mode for the current user
type UpdateTeachModeRequest struct {
	ReadyToTeach *bool `json:"readyToTeach" binding:"required"`
}

// UpdateActiveRequest activates or deactivates an account
type UpdateActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
