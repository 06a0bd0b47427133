package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/app/models/dto"
	"github.com/skilllink/skilllink/internal/app/services"
	"github.com/skilllink/skilllink/internal/middleware"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
)

// SkillsController handles the skill catalog
type SkillsController struct {
	skillService services.ISkillService
}

// NewSkillsController creates a new SkillsController
func NewSkillsController(skillService services.ISkillService) *SkillsController {
	return &SkillsController{
		skillService: skillService,
	}
}

// AddSkill attaches a skill to the caller's profile
// @Summary Add a skill
// @Description Adds a skill at a proficiency level; unknown names enter the catalog
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddSkillRequest true "Skill and level"
// @Success 201 {object} dto.APIResponse{data=models.UserSkill} "Skill added"
// @Failure 400 {object} dto.ErrorResponse "Invalid skill data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /skills/add [post]
func (c *SkillsController) AddSkill(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.AddSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userSkill, err := c.skillService.AddSkill(ctx, userID, req.SkillName, req.Level)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(userSkill))
}

// GetUserSkills lists a user's skills
// @Summary Get a user's skills
// @Tags skills
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=[]models.UserSkill} "Skills"
// @Router /skills/user/{userId} [get]
func (c *SkillsController) GetUserSkills(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	skills, err := c.skillService.GetUserSkills(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(skills))
}

// DeleteUserSkill removes a skill from a profile. Callers may only remove
// their own skills unless they are admins.
// @Summary Remove a skill
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param skillId path int true "Skill ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Skill removed"
// @Failure 403 {object} dto.ErrorResponse "Not allowed"
// @Failure 404 {object} dto.ErrorResponse "Skill not found on profile"
// @Router /skills/{userId}/{skillId} [delete]
func (c *SkillsController) DeleteUserSkill(ctx *gin.Context) {
	callerID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}
	skillID, ok := parseIDParam(ctx, "skillId")
	if !ok {
		return
	}

	role, _ := middleware.GetUserRole(ctx)
	if userID != callerID && role != models.RoleAdmin {
		middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("cannot remove another user's skill"))
		return
	}

	if err := c.skillService.DeleteUserSkill(ctx, userID, skillID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{
		Message: "Skill removed successfully",
	}))
}

// SuggestSkills autocompletes catalog names
// @Summary Suggest skills
// @Tags skills
// @Produce json
// @Param q query string true "Name prefix"
// @Success 200 {object} dto.APIResponse{data=[]string} "Matching names"
// @Router /skills/suggest [get]
func (c *SkillsController) SuggestSkills(ctx *gin.Context) {
	names, err := c.skillService.SuggestSkills(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(names))
}

// FilterTutorsBySkill finds teaching-ready users for a skill
// @Summary Filter tutors by skill
// @Tags skills
// @Produce json
// @Param skill query string true "Skill name prefix"
// @Success 200 {object} dto.APIResponse{data=[]models.TutorMatch} "Matching tutors"
// @Router /skills/filter [get]
func (c *SkillsController) FilterTutorsBySkill(ctx *gin.Context) {
	matches, err := c.skillService.GetTutorsBySkill(ctx, ctx.Query("skill"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(matches))
}
