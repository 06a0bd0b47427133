package dto

// AdminUpdateActiveRequest toggles a user's active flag
type AdminUpdateActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// AdminUpdateRoleRequest changes a user's role
type AdminUpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
