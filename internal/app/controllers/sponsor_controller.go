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

// SponsorController handles sponsor-related operations
type SponsorController struct {
	sponsorService services.SponsorService
}

// NewSponsorController creates a new SponsorController
func NewSponsorController(sponsorService services.SponsorService) *SponsorController {
	return &SponsorController{sponsorService: sponsorService}
}

// CreateSponsor handles sponsor creation
// @Summary Create a new sponsor
// @Description Registers a sponsoring organization
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSponsorRequest true "Sponsor information"
// @Success 201 {object} dto.APIResponse{data=models.Sponsor} "Sponsor created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Sponsor already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsors [post]
func (c *SponsorController) CreateSponsor(ctx *gin.Context) {
	var req dto.CreateSponsorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sponsor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sponsor := &models.Sponsor{
		Name:         req.Name,
		Kind:         models.SponsorKind(req.Kind),
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Memo:         req.Memo,
	}

	id, err := c.sponsorService.CreateSponsor(ctx, sponsor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	sponsor.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: sponsor, Timestamp: time.Now()})
}

// GetSponsorByID retrieves a sponsor by ID
// @Summary Get sponsor details
// @Tags sponsors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Sponsor} "Sponsor retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid sponsor ID"
// @Failure 404 {object} dto.ErrorResponse "Sponsor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsors/{id} [get]
func (c *SponsorController) GetSponsorByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sponsor ID")
		errorDetail = errorDetail.WithDetails("Sponsor ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sponsor, err := c.sponsorService.GetSponsorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sponsor, Timestamp: time.Now()})
}

// GetAllSponsors retrieves all sponsors
// @Summary Get all sponsors
// @Tags sponsors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Sponsor} "Sponsors retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsors [get]
func (c *SponsorController) GetAllSponsors(ctx *gin.Context) {
	sponsors, err := c.sponsorService.GetAllSponsors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sponsors, Timestamp: time.Now()})
}

// UpdateSponsor updates an existing sponsor
// @Summary Update a sponsor
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsor ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSponsorRequest true "Sponsor information"
// @Success 200 {object} dto.APIResponse{data=models.Sponsor} "Sponsor updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Sponsor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsors/{id} [put]
func (c *SponsorController) UpdateSponsor(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sponsor ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateSponsorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sponsor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sponsor := &models.Sponsor{
		ID:           id,
		Name:         req.Name,
		Kind:         models.SponsorKind(req.Kind),
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Memo:         req.Memo,
	}

	if err := c.sponsorService.UpdateSponsor(ctx, sponsor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sponsor, Timestamp: time.Now()})
}

// DeleteSponsor deletes a sponsor
// @Summary Delete a sponsor
// @Tags sponsors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Sponsor deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid sponsor ID"
// @Failure 404 {object} dto.ErrorResponse "Sponsor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsors/{id} [delete]
func (c *SponsorController) DeleteSponsor(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sponsor ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.sponsorService.DeleteSponsor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Sponsor deleted successfully"},
		Timestamp: time.Now(),
	})
}
