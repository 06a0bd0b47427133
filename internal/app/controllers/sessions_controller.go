package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skilllink/skilllink/internal/app/models/dto"
	"github.com/skilllink/skilllink/internal/app/services"
	"github.com/skilllink/skilllink/internal/middleware"
)

// SessionsController handles standalone session records
type SessionsController struct {
	sessionService services.ISessionService
}

// NewSessionsController creates a new SessionsController
func NewSessionsController(sessionService services.ISessionService) *SessionsController {
	return &SessionsController{
		sessionService: sessionService,
	}
}

// CreateSession records a new session
// @Summary Create a session
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSessionRequest true "Session data"
// @Success 201 {object} dto.APIResponse{data=models.Session} "Session created"
// @Failure 400 {object} dto.ErrorResponse "Invalid session data"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /sessions [post]
func (c *SessionsController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session, err := c.sessionService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(session))
}

// GetAllSessions lists all sessions
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Session} "Sessions"
// @Router /sessions [get]
func (c *SessionsController) GetAllSessions(ctx *gin.Context) {
	sessions, err := c.sessionService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sessions))
}

// GetSessionByID retrieves one session
// @Summary Get session by ID
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} dto.APIResponse{data=models.Session} "Session"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/by-sessionId/{id} [get]
func (c *SessionsController) GetSessionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.sessionService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session))
}

// GetSessionsByTutorID lists a tutor's sessions
// @Summary Get sessions by tutor
// @Tags sessions
// @Produce json
// @Param id path int true "Tutor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Session} "Sessions"
// @Router /sessions/by-tutorId/{id} [get]
func (c *SessionsController) GetSessionsByTutorID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	sessions, err := c.sessionService.GetByTutorID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sessions))
}

// UpdateSessionStatus patches a session's status
// @Summary Update session status
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param request body dto.UpdateSessionStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Session} "Updated session"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /sessions/{id} [patch]
func (c *SessionsController) UpdateSessionStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSessionStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session, err := c.sessionService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session))
}

// DeleteSession removes a session record
// @Summary Delete a session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Session deleted"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [delete]
func (c *SessionsController) DeleteSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.sessionService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{
		Message: "Session deleted successfully",
	}))
}
