package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulink/outreach-admin/internal/app/models/dto"
	"github.com/edulink/outreach-admin/internal/app/services"
	"github.com/edulink/outreach-admin/internal/middleware"
)

// ScheduleController handles schedule entry and conflict operations
type ScheduleController struct {
	scheduleService services.ScheduleService
	conflictService services.ConflictService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService services.ScheduleService, conflictService services.ConflictService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
		conflictService: conflictService,
	}
}

// CreateEntry creates a schedule entry. Conflicts are advisory and never
// block creation; the response carries any detected conflicts alongside the
// created entry.
// @Summary Create a schedule entry
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ScheduleEntryRequest true "Schedule entry"
// @Success 201 {object} dto.APIResponse "Entry created with advisory conflicts"
// @Failure 400 {object} dto.ErrorResponse "Invalid entry data, missing venue or bad time range"
// @Failure 404 {object} dto.ErrorResponse "Program, round or instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules [post]
func (c *ScheduleController) CreateEntry(ctx *gin.Context) {
	var req dto.ScheduleEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	entry := req.ToModel()
	id, err := c.scheduleService.CreateEntry(ctx, entry)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	entry.ID = id

	conflicts, err := c.conflictService.CheckCandidate(ctx, entry, &entry.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: gin.H{
			"entry":     entry,
			"conflicts": conflicts,
		},
		Timestamp: time.Now(),
	})
}

// GetEntryByID retrieves a schedule entry
// @Summary Get a schedule entry
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule entry ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.ScheduleEntry} "Entry retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid entry ID"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [get]
func (c *ScheduleController) GetEntryByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule entry ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	entry, err := c.scheduleService.GetEntryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: entry, Timestamp: time.Now()})
}

// GetEntries lists schedule entries by program or instructor
// @Summary List schedule entries
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param programId query int false "Filter by program"
// @Param roundId query int false "Narrow the program filter to one round"
// @Param instructorId query int false "Filter by instructor"
// @Success 200 {object} dto.APIResponse{data=[]models.ScheduleEntry} "Entries retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid filters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules [get]
func (c *ScheduleController) GetEntries(ctx *gin.Context) {
	if raw := ctx.Query("instructorId"); raw != "" {
		instructorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor ID filter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		entries, err := c.scheduleService.GetEntriesByInstructor(ctx, instructorID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{Data: entries, Timestamp: time.Now()})
		return
	}

	raw := ctx.Query("programId")
	if raw == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Either programId or instructorId is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	programID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program ID filter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var roundID *int64
	if rawRound := ctx.Query("roundId"); rawRound != "" {
		parsed, err := strconv.ParseInt(rawRound, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid round ID filter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		roundID = &parsed
	}

	entries, err := c.scheduleService.GetEntriesByProgram(ctx, programID, roundID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: entries, Timestamp: time.Now()})
}

// UpdateEntry updates a schedule entry
// @Summary Update a schedule entry
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule entry ID" Format(int64) minimum(1)
// @Param request body dto.ScheduleEntryRequest true "Schedule entry"
// @Success 200 {object} dto.APIResponse "Entry updated with advisory conflicts"
// @Failure 400 {object} dto.ErrorResponse "Invalid entry data"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [put]
func (c *ScheduleController) UpdateEntry(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule entry ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.ScheduleEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	entry := req.ToModel()
	entry.ID = id

	if err := c.scheduleService.UpdateEntry(ctx, entry); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	conflicts, err := c.conflictService.CheckCandidate(ctx, entry, &entry.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: gin.H{
			"entry":     entry,
			"conflicts": conflicts,
		},
		Timestamp: time.Now(),
	})
}

// DeleteEntry deletes a schedule entry
// @Summary Delete a schedule entry
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule entry ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Entry deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid entry ID"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [delete]
func (c *ScheduleController) DeleteEntry(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule entry ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.scheduleService.DeleteEntry(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Schedule entry deleted successfully"},
		Timestamp: time.Now(),
	})
}

// CheckConflicts runs the advisory conflict detector for a candidate entry
// that need not be persisted yet
// @Summary Check a candidate entry for conflicts
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckConflictsRequest true "Candidate entry with optional self-exclusion"
// @Success 200 {object} dto.APIResponse{data=dto.ConflictListResponse} "Conflicts (possibly empty)"
// @Failure 400 {object} dto.ErrorResponse "Invalid candidate data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/check-conflicts [post]
func (c *ScheduleController) CheckConflicts(ctx *gin.Context) {
	var req dto.CheckConflictsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid conflict check data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	conflicts, err := c.conflictService.CheckCandidate(ctx, req.Candidate.ToModel(), req.ExcludeScheduleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ConflictListResponse{Conflicts: conflicts},
		Timestamp: time.Now(),
	})
}

// GetConflicts re-runs conflict detection for a persisted entry
// @Summary Get conflicts of a persisted entry
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule entry ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.ResolvedConflict} "Conflicts with resolved entries"
// @Failure 400 {object} dto.ErrorResponse "Invalid entry ID"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id}/conflicts [get]
func (c *ScheduleController) GetConflicts(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule entry ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resolved, err := c.conflictService.ConflictsForEntry(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resolved, Timestamp: time.Now()})
}
