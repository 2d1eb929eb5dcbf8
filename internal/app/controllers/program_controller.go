package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/models/dto"
	"github.com/edulink/outreach-admin/internal/app/services"
	"github.com/edulink/outreach-admin/internal/middleware"
)

// ProgramController handles program and round operations
type ProgramController struct {
	programService services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{programService: programService}
}

// CreateProgram creates a new program
// @Summary Create a program
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProgramRequest true "Program information"
// @Success 201 {object} dto.APIResponse{data=models.Program} "Program created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Sponsor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs [post]
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.CreateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	program := &models.Program{
		SponsorID: req.SponsorID,
		Title:     req.Title,
		Type:      models.ProgramType(req.Type),
		Format:    models.ProgramFormat(req.Format),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	id, err := c.programService.CreateProgram(ctx, program)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	program.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: program, Timestamp: time.Now()})
}

// GetProgramByID retrieves a program with its rounds
// @Summary Get program details
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid program ID"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id} [get]
func (c *ProgramController) GetProgramByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	program, err := c.programService.GetProgramByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: program, Timestamp: time.Now()})
}

// GetAllPrograms retrieves programs with optional filters
// @Summary Get all programs
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param sponsorId query int false "Filter by sponsor"
// @Param status query string false "Filter by status" Enums(draft, active, completed, cancelled)
// @Success 200 {object} dto.APIResponse{data=[]models.Program} "Programs retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs [get]
func (c *ProgramController) GetAllPrograms(ctx *gin.Context) {
	var sponsorID int64
	if raw := ctx.Query("sponsorId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sponsor ID filter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		sponsorID = parsed
	}

	programs, err := c.programService.GetAllPrograms(ctx, sponsorID, models.ProgramStatus(ctx.Query("status")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: programs, Timestamp: time.Now()})
}

// UpdateProgram updates an existing program
// @Summary Update a program
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Param request body dto.UpdateProgramRequest true "Program information"
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or rounds outside new range"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id} [put]
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	program := &models.Program{
		ID:        id,
		SponsorID: req.SponsorID,
		Title:     req.Title,
		Type:      models.ProgramType(req.Type),
		Format:    models.ProgramFormat(req.Format),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    models.ProgramStatus(req.Status),
	}

	if err := c.programService.UpdateProgram(ctx, program); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: program, Timestamp: time.Now()})
}

// DeleteProgram deletes a program and its rounds
// @Summary Delete a program
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Program deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid program ID"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id} [delete]
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.programService.DeleteProgram(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Program deleted successfully"},
		Timestamp: time.Now(),
	})
}

// AddRound adds a round to a program
// @Summary Add a program round
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Param request body dto.CreateRoundRequest true "Round information"
// @Success 201 {object} dto.APIResponse{data=models.Round} "Round created"
// @Failure 400 {object} dto.ErrorResponse "Invalid round data, outside program range or overlapping"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id}/rounds [post]
func (c *ProgramController) AddRound(ctx *gin.Context) {
	programID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateRoundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid round data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	round := &models.Round{
		ProgramID: programID,
		RoundNo:   req.RoundNo,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Capacity:  req.Capacity,
	}

	id, err := c.programService.AddRound(ctx, round)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	round.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: round, Timestamp: time.Now()})
}

// UpdateRound updates a program round
// @Summary Update a program round
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Param roundId path int true "Round ID" Format(int64) minimum(1)
// @Param request body dto.UpdateRoundRequest true "Round information"
// @Success 200 {object} dto.APIResponse{data=models.Round} "Round updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid round data, outside program range or overlapping"
// @Failure 404 {object} dto.ErrorResponse "Round not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id}/rounds/{roundId} [put]
func (c *ProgramController) UpdateRound(ctx *gin.Context) {
	roundID, err := strconv.ParseInt(ctx.Param("roundId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid round ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateRoundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid round data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	round := &models.Round{
		ID:        roundID,
		RoundNo:   req.RoundNo,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Capacity:  req.Capacity,
		Status:    models.RoundStatus(req.Status),
	}

	if err := c.programService.UpdateRound(ctx, round); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: round, Timestamp: time.Now()})
}

// DeleteRound deletes a program round
// @Summary Delete a program round
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Param roundId path int true "Round ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Round deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid round ID"
// @Failure 404 {object} dto.ErrorResponse "Round not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id}/rounds/{roundId} [delete]
func (c *ProgramController) DeleteRound(ctx *gin.Context) {
	roundID, err := strconv.ParseInt(ctx.Param("roundId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid round ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.programService.DeleteRound(ctx, roundID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Round deleted successfully"},
		Timestamp: time.Now(),
	})
}
