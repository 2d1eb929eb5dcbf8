package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/models/dto"
	"github.com/edulink/outreach-admin/internal/app/services"
	"github.com/edulink/outreach-admin/internal/middleware"
)

// MatchingController handles instructor-to-program matching operations
type MatchingController struct {
	matchingService       services.MatchingService
	recommendationService services.RecommendationService
}

// NewMatchingController creates a new MatchingController
func NewMatchingController(matchingService services.MatchingService, recommendationService services.RecommendationService) *MatchingController {
	return &MatchingController{
		matchingService:       matchingService,
		recommendationService: recommendationService,
	}
}

// CreateMatching assigns an instructor to a program
// @Summary Create a matching
// @Tags matchings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMatchingRequest true "Matching data"
// @Success 201 {object} dto.APIResponse{data=models.Matching} "Matching created"
// @Failure 400 {object} dto.ErrorResponse "Invalid matching data"
// @Failure 404 {object} dto.ErrorResponse "Program, round, instructor or schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /matchings [post]
func (c *MatchingController) CreateMatching(ctx *gin.Context) {
	var req dto.CreateMatchingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid matching data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	matching, err := c.matchingService.CreateMatching(ctx, req.ProgramID, req.RoundID, req.InstructorID, req.ScheduleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: matching, Timestamp: time.Now()})
}

// GetMatchingByID retrieves a matching with its status history
// @Summary Get a matching
// @Tags matchings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Matching ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Matching} "Matching retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid matching ID"
// @Failure 404 {object} dto.ErrorResponse "Matching not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /matchings/{id} [get]
func (c *MatchingController) GetMatchingByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid matching ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	matching, err := c.matchingService.GetMatchingByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: matching, Timestamp: time.Now()})
}

// GetAllMatchings lists matchings with optional filters
// @Summary List matchings
// @Tags matchings
// @Produce json
// @Security BearerAuth
// @Param programId query int false "Filter by program"
// @Param instructorId query int false "Filter by instructor"
// @Param status query string false "Filter by status" Enums(pending, active, inactive, completed, cancelled)
// @Success 200 {object} dto.APIResponse{data=[]models.Matching} "Matchings retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /matchings [get]
func (c *MatchingController) GetAllMatchings(ctx *gin.Context) {
	var programID, instructorID int64
	if raw := ctx.Query("programId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program ID filter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		programID = parsed
	}
	if raw := ctx.Query("instructorId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor ID filter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		instructorID = parsed
	}

	matchings, err := c.matchingService.GetAllMatchings(ctx, programID, instructorID, models.MatchingStatus(ctx.Query("status")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: matchings, Timestamp: time.Now()})
}

// UpdateMatchingStatus applies a non-cancelling status transition
// @Summary Update matching status
// @Tags matchings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Matching ID" Format(int64) minimum(1)
// @Param request body dto.UpdateMatchingStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=models.Matching} "Matching updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Matching not found"
// @Failure 409 {object} dto.ErrorResponse "Matching is in a final state"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /matchings/{id}/status [patch]
func (c *MatchingController) UpdateMatchingStatus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid matching ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateMatchingStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	matching, err := c.matchingService.UpdateStatus(ctx, id, models.MatchingStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: matching, Timestamp: time.Now()})
}

// CancelMatching cancels a matching with a mandatory reason
// @Summary Cancel a matching
// @Tags matchings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Matching ID" Format(int64) minimum(1)
// @Param request body dto.CancelMatchingRequest true "Cancellation reason"
// @Success 200 {object} dto.APIResponse{data=models.Matching} "Matching cancelled"
// @Failure 400 {object} dto.ErrorResponse "Missing cancellation reason"
// @Failure 404 {object} dto.ErrorResponse "Matching not found"
// @Failure 409 {object} dto.ErrorResponse "Matching is in a final state"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /matchings/{id}/cancel [post]
func (c *MatchingController) CancelMatching(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid matching ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CancelMatchingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cancellation reason is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	matching, err := c.matchingService.CancelMatching(ctx, id, req.Reason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: matching, Timestamp: time.Now()})
}

// GetRecommendations ranks candidate instructors for a program
// @Summary Recommend instructors for a program
// @Tags matchings
// @Produce json
// @Security BearerAuth
// @Param programId query int true "Program to staff"
// @Param roundId query int false "Round used for schedule risk detection"
// @Param exclude query string false "Comma-separated instructor IDs to exclude"
// @Success 200 {object} dto.APIResponse{data=[]dto.CandidateResponse} "Ranked candidates"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /matchings/recommendations [get]
func (c *MatchingController) GetRecommendations(ctx *gin.Context) {
	programID, err := strconv.ParseInt(ctx.Query("programId"), 10, 64)
	if err != nil || programID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "programId is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var roundID *int64
	if raw := ctx.Query("roundId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid round ID")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		roundID = &parsed
	}

	var excludeIDs []int64
	if raw := ctx.Query("exclude"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			parsed, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exclude list")
				ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
				return
			}
			excludeIDs = append(excludeIDs, parsed)
		}
	}

	candidates, err := c.recommendationService.Recommend(ctx, programID, roundID, excludeIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: candidates, Timestamp: time.Now()})
}
