package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/models/dto"
	"github.com/edulink/outreach-admin/internal/app/repositories"
	"github.com/edulink/outreach-admin/internal/app/services"
	"github.com/edulink/outreach-admin/internal/middleware"
	"github.com/edulink/outreach-admin/internal/pkg/filestorage"
)

const maxProofFileSize = 10 << 20 // 10 MB

// SettlementController handles settlement calculation, submission and proof
// file operations
type SettlementController struct {
	settlementService services.SettlementService
	fileRepo          *repositories.FileRepository
	storage           *filestorage.LocalStorage
}

// NewSettlementController creates a new SettlementController
func NewSettlementController(settlementService services.SettlementService, fileRepo *repositories.FileRepository, storage *filestorage.LocalStorage) *SettlementController {
	return &SettlementController{
		settlementService: settlementService,
		fileRepo:          fileRepo,
		storage:           storage,
	}
}

// Calculate derives a suggested settlement from program attributes. Nothing
// is persisted; the caller reviews the suggestion and submits separately.
// @Summary Calculate a suggested settlement
// @Tags settlements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CalculateSettlementRequest true "Calculation input"
// @Success 200 {object} dto.APIResponse{data=dto.CalculateSettlementResponse} "Suggested items with eligibility flags"
// @Failure 400 {object} dto.ErrorResponse "Invalid calculation input"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settlements/calculate [post]
func (c *SettlementController) Calculate(ctx *gin.Context) {
	var req dto.CalculateSettlementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid calculation data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.settlementService.Calculate(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: result, Timestamp: time.Now()})
}

// Submit records an operator-entered settlement
// @Summary Submit a settlement
// @Tags settlements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitSettlementRequest true "Settlement costs"
// @Success 201 {object} dto.APIResponse{data=models.Settlement} "Settlement created"
// @Failure 400 {object} dto.ErrorResponse "No cost items, missing fuel proof or invalid data"
// @Failure 404 {object} dto.ErrorResponse "Program or proof file not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settlements [post]
func (c *SettlementController) Submit(ctx *gin.Context) {
	var req dto.SubmitSettlementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid settlement data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	settlement, err := c.settlementService.Submit(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: settlement, Timestamp: time.Now()})
}

// GetSettlementByID retrieves a settlement with its items
// @Summary Get a settlement
// @Tags settlements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Settlement ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Settlement} "Settlement retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid settlement ID"
// @Failure 404 {object} dto.ErrorResponse "Settlement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settlements/{id} [get]
func (c *SettlementController) GetSettlementByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid settlement ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	settlement, err := c.settlementService.GetSettlementByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: settlement, Timestamp: time.Now()})
}

// GetAllSettlements lists settlements with optional filters
// @Summary List settlements
// @Tags settlements
// @Produce json
// @Security BearerAuth
// @Param programId query int false "Filter by program"
// @Param instructorId query int false "Filter by instructor"
// @Param period query string false "Filter by settlement period (YYYY-MM)"
// @Param status query string false "Filter by status" Enums(pending, calculated, approved, paid, cancelled)
// @Success 200 {object} dto.APIResponse{data=[]models.Settlement} "Settlements retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settlements [get]
func (c *SettlementController) GetAllSettlements(ctx *gin.Context) {
	var filter dto.SettlementListFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid settlement filters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	settlements, err := c.settlementService.GetAllSettlements(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: settlements, Timestamp: time.Now()})
}

// UpdateSettlementStatus applies a settlement status transition
// @Summary Update settlement status
// @Tags settlements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Settlement ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSettlementStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=models.Settlement} "Settlement updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Settlement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settlements/{id}/status [patch]
func (c *SettlementController) UpdateSettlementStatus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid settlement ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateSettlementStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	settlement, err := c.settlementService.UpdateStatus(ctx, id, models.SettlementStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: settlement, Timestamp: time.Now()})
}

// UploadProofFile stores an uploaded proof document and attaches it to a
// settlement
// @Summary Upload a settlement proof file
// @Tags settlements
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Settlement ID" Format(int64) minimum(1)
// @Param file formData file true "Proof document (max 10MB)"
// @Success 201 {object} dto.APIResponse{data=models.StoredFile} "File stored and attached"
// @Failure 400 {object} dto.ErrorResponse "Missing or oversized file"
// @Failure 404 {object} dto.ErrorResponse "Settlement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settlements/{id}/files [post]
func (c *SettlementController) UploadProofFile(ctx *gin.Context) {
	settlementID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid settlement ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A file upload is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if fileHeader.Size > maxProofFileSize {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File exceeds the 10MB limit")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	storedPath, err := c.storage.SaveFile(fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	file := &models.StoredFile{
		FileName:   fileHeader.Filename,
		StoredPath: storedPath,
		FileSize:   fileHeader.Size,
		FileType:   fileHeader.Header.Get("Content-Type"),
	}
	fileID, err := c.fileRepo.Create(ctx, file)
	if err != nil {
		_ = c.storage.DeleteFile(storedPath)
		middleware.HandleAPIError(ctx, err)
		return
	}
	file.ID = fileID

	if err := c.settlementService.AttachProof(ctx, settlementID, fileID); err != nil {
		_ = c.fileRepo.Delete(ctx, fileID)
		_ = c.storage.DeleteFile(storedPath)
		middleware.HandleAPIError(ctx, err)
		return
	}
	file.SettlementID = &settlementID

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: file, Timestamp: time.Now()})
}

// GetProofFiles lists the proof files attached to a settlement
// @Summary List settlement proof files
// @Tags settlements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Settlement ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.StoredFile} "Files retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid settlement ID"
// @Failure 404 {object} dto.ErrorResponse "Settlement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settlements/{id}/files [get]
func (c *SettlementController) GetProofFiles(ctx *gin.Context) {
	settlementID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid settlement ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	files, err := c.settlementService.GetProofFiles(ctx, settlementID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: files, Timestamp: time.Now()})
}

// DeleteProofFile detaches a proof file from a settlement and removes it
// from storage
// @Summary Delete a settlement proof file
// @Tags settlements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Settlement ID" Format(int64) minimum(1)
// @Param fileId path int true "File ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "File deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid IDs"
// @Failure 404 {object} dto.ErrorResponse "Settlement or file not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settlements/{id}/files/{fileId} [delete]
func (c *SettlementController) DeleteProofFile(ctx *gin.Context) {
	settlementID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid settlement ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	fileID, err := strconv.ParseInt(ctx.Param("fileId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid file ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := c.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.settlementService.RemoveProof(ctx, settlementID, fileID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.storage.DeleteFile(file.StoredPath); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Proof file deleted successfully"},
		Timestamp: time.Now(),
	})
}
