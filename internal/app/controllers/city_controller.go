package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/delis/schoolhub/internal/app/models/dto"
	"github.com/delis/schoolhub/internal/app/services"
	"github.com/delis/schoolhub/internal/middleware"
)

// CityController handles city-related endpoints
type CityController struct {
	cityService services.CityService
}

// NewCityController creates a new CityController
func NewCityController(cityService services.CityService) *CityController {
	return &CityController{
		cityService: cityService,
	}
}

// CreateCity handles city creation
func (c *CityController) CreateCity(ctx *gin.Context) {
	var req dto.CityInsertDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid city data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	city, err := c.cityService.InsertCity(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(city))
}

// UpdateCity handles a full-record city update
func (c *CityController) UpdateCity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid city ID")
	if !ok {
		return
	}

	var req dto.CityUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid city data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	req.ID = id

	city, err := c.cityService.UpdateCity(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(city))
}

// DeleteCity handles city deletion
func (c *CityController) DeleteCity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid city ID")
	if !ok {
		return
	}

	if err := c.cityService.DeleteCity(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"deleted": true}))
}

// GetCityByID retrieves a city by ID
func (c *CityController) GetCityByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid city ID")
	if !ok {
		return
	}

	city, err := c.cityService.GetCityByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(city))
}

// GetAllCities retrieves all cities
func (c *CityController) GetAllCities(ctx *gin.Context) {
	cities, err := c.cityService.GetAllCities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(cities))
}

// parseIDParam parses the :id path parameter, writing a 400 response and
// returning false when it is not a valid integer.
func parseIDParam(ctx *gin.Context, message string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
