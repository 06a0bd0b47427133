package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skilllink/skilllink/internal/app/models/dto"
	"github.com/skilllink/skilllink/internal/app/services"
	"github.com/skilllink/skilllink/internal/middleware"
)

// AdminController handles user administration endpoints
type AdminController struct {
	adminService services.IAdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.IAdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// GetUsers lists users, optionally filtered
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param q query string false "Name or email substring"
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Users"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/users [get]
func (c *AdminController) GetUsers(ctx *gin.Context) {
	users, err := c.adminService.GetUsers(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(users))
}

// SetUserActive enables or disables an account
// @Summary Toggle a user's active flag
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.AdminUpdateActiveRequest true "Active flag"
// @Success 200 {object} dto.APIResponse{data=models.User} "Updated user"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id}/active [put]
func (c *AdminController) SetUserActive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AdminUpdateActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.adminService.SetUserActive(ctx, id, *req.IsActive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// SetUserRole changes a user's role
// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.AdminUpdateRoleRequest true "New role"
// @Success 200 {object} dto.APIResponse{data=models.User} "Updated user"
// @Failure 400 {object} dto.ErrorResponse "Unknown role"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id}/role [put]
func (c *AdminController) SetUserRole(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AdminUpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.adminService.SetUserRole(ctx, id, req.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}
