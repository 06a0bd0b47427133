package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skilllink/skilllink/internal/app/models/dto"
	"github.com/skilllink/skilllink/internal/app/services"
	"github.com/skilllink/skilllink/internal/middleware"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
)

// RequestsController handles the request board and the acceptance workflow
type RequestsController struct {
	requestService  services.IRequestService
	acceptedService services.IAcceptedRequestService
}

// NewRequestsController creates a new RequestsController
func NewRequestsController(
	requestService services.IRequestService,
	acceptedService services.IAcceptedRequestService,
) *RequestsController {
	return &RequestsController{
		requestService:  requestService,
		acceptedService: acceptedService,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateRequest posts a new learning request
// @Summary Create a learning request
// @Description Posts a request on the board; the learner is the token subject
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRequestRequest true "Request content"
// @Success 201 {object} dto.APIResponse{data=models.RequestWithUser} "Request created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /requests [post]
func (c *RequestsController) CreateRequest(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.CreateRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	request, err := c.requestService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(request))
}

// GetAllRequests lists the board
// @Summary List all requests
// @Tags requests
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.RequestWithUser} "Requests"
// @Router /requests [get]
func (c *RequestsController) GetAllRequests(ctx *gin.Context) {
	requests, err := c.requestService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(requests))
}

// SearchRequests filters the board by a free-text query
// @Summary Search requests
// @Tags requests
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} dto.APIResponse{data=[]models.RequestWithUser} "Matching requests"
// @Router /requests/search [get]
func (c *RequestsController) SearchRequests(ctx *gin.Context) {
	requests, err := c.requestService.Search(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(requests))
}

// GetRequestByID retrieves one request
// @Summary Get request by ID
// @Tags requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=models.RequestWithUser} "Request"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /requests/by-requestId/{id} [get]
func (c *RequestsController) GetRequestByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	request, err := c.requestService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(request))
}

// GetRequestsByLearnerID lists a learner's requests
// @Summary Get requests by learner
// @Tags requests
// @Produce json
// @Param id path int true "Learner ID"
// @Success 200 {object} dto.APIResponse{data=[]models.RequestWithUser} "Requests"
// @Router /requests/by-learnerId/{id} [get]
func (c *RequestsController) GetRequestsByLearnerID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	requests, err := c.requestService.GetByLearnerID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(requests))
}

// UpdateRequest edits a request's content
// @Summary Update a request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.UpdateRequestRequest true "New content"
// @Success 200 {object} dto.APIResponse{data=models.RequestWithUser} "Updated request"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /requests/{id} [put]
func (c *RequestsController) UpdateRequest(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	request, err := c.requestService.Update(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(request))
}

// UpdateRequestStatus patches a request's lifecycle status
// @Summary Update request status
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.UpdateRequestStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /requests/{id} [patch]
func (c *RequestsController) UpdateRequestStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRequestStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.requestService.UpdateStatus(ctx, id, userID, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{
		Message: "Request status updated successfully",
	}))
}

// DeleteRequest removes a request and its dependents
// @Summary Delete a request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Request deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /requests/{id} [delete]
func (c *RequestsController) DeleteRequest(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.requestService.Delete(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{
		Message: "Request deleted successfully",
	}))
}

// AcceptRequest records the caller as acceptor of a request
// @Summary Accept a request
// @Description Records the token subject as acceptor; duplicates return 409
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 201 {object} dto.APIResponse{data=models.AcceptedRequest} "Request accepted"
// @Failure 400 {object} dto.ErrorResponse "Cannot accept own request"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Already accepted"
// @Router /requests/{id}/accept [post]
func (c *RequestsController) AcceptRequest(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	accepted, err := c.acceptedService.Accept(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(accepted))
}

// GetAcceptedRequests lists what the caller is teaching
// @Summary List my acceptances
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AcceptedRequestDetails} "Acceptances"
// @Router /requests/accepted [get]
func (c *RequestsController) GetAcceptedRequests(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	details, err := c.acceptedService.GetAcceptedByUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(details))
}

// GetAcceptedStatus reports whether the caller accepted a request
// @Summary Check acceptance status
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.AcceptedStatusResponse} "Status"
// @Router /requests/{id}/accepted-status [get]
func (c *RequestsController) GetAcceptedStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	hasAccepted, err := c.acceptedService.HasUserAccepted(ctx, userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AcceptedStatusResponse{
		HasAccepted: hasAccepted,
	}))
}

// GetAcceptancesOfMyRequests lists who accepted the caller's requests
// @Summary List acceptances of my requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AcceptedRequestDetails} "Acceptances"
// @Router /requests/accepted/requester [get]
func (c *RequestsController) GetAcceptancesOfMyRequests(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	details, err := c.acceptedService.GetRequestsIAskedFor(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(details))
}

// ScheduleMeeting sets meeting details on an acceptance
// @Summary Schedule a meeting
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Accepted request ID"
// @Param request body dto.ScheduleMeetingRequest true "Meeting details"
// @Success 200 {object} dto.APIResponse{data=models.AcceptedRequest} "Meeting scheduled"
// @Failure 403 {object} dto.ErrorResponse "Not the acceptor"
// @Failure 404 {object} dto.ErrorResponse "Acceptance not found"
// @Failure 409 {object} dto.ErrorResponse "Acceptance already completed or cancelled"
// @Router /requests/accepted/{id}/schedule [post]
func (c *RequestsController) ScheduleMeeting(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ScheduleMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	accepted, err := c.acceptedService.ScheduleMeeting(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(accepted))
}

// UpdateAcceptanceStatus patches an acceptance's lifecycle status
// @Summary Update acceptance status
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Accepted request ID"
// @Param request body dto.UpdateAcceptanceStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.AcceptedRequest} "Updated acceptance"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 403 {object} dto.ErrorResponse "Not a participant"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /requests/accepted/{id} [patch]
func (c *RequestsController) UpdateAcceptanceStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAcceptanceStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	accepted, err := c.acceptedService.UpdateStatus(ctx, id, userID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(accepted))
}
