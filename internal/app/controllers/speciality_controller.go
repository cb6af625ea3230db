package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delis/schoolhub/internal/app/models/dto"
	"github.com/delis/schoolhub/internal/app/services"
	"github.com/delis/schoolhub/internal/middleware"
)

// SpecialityController handles speciality-related endpoints
type SpecialityController struct {
	specialityService services.SpecialityService
}

// NewSpecialityController creates a new SpecialityController
func NewSpecialityController(specialityService services.SpecialityService) *SpecialityController {
	return &SpecialityController{
		specialityService: specialityService,
	}
}

// CreateSpeciality handles speciality creation
func (c *SpecialityController) CreateSpeciality(ctx *gin.Context) {
	var req dto.SpecialityInsertDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid speciality data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	speciality, err := c.specialityService.InsertSpeciality(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(speciality))
}

// UpdateSpeciality handles a full-record speciality update
func (c *SpecialityController) UpdateSpeciality(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid speciality ID")
	if !ok {
		return
	}

	var req dto.SpecialityUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid speciality data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	req.ID = id

	speciality, err := c.specialityService.UpdateSpeciality(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(speciality))
}

// DeleteSpeciality handles speciality deletion
func (c *SpecialityController) DeleteSpeciality(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid speciality ID")
	if !ok {
		return
	}

	if err := c.specialityService.DeleteSpeciality(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"deleted": true}))
}

// GetSpecialityByID retrieves a speciality by ID. The service reports an
// absent id as a nil record, which maps to 404 here.
func (c *SpecialityController) GetSpecialityByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid speciality ID")
	if !ok {
		return
	}

	speciality, err := c.specialityService.GetSpecialityByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if speciality == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Speciality not found")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(speciality))
}

// GetAllSpecialities retrieves all specialities
func (c *SpecialityController) GetAllSpecialities(ctx *gin.Context) {
	specialities, err := c.specialityService.GetAllSpecialities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(specialities))
}
