package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delis/schoolhub/internal/app/models/dto"
	"github.com/delis/schoolhub/internal/app/services"
	"github.com/delis/schoolhub/internal/middleware"
	"github.com/delis/schoolhub/internal/pkg/validation"
)

// TeacherController handles teacher-related endpoints
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// CreateTeacher handles teacher creation. Name rules are checked up front
// and reported per field.
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.TeacherInsertDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if errs := validation.ValidateNames(req.Firstname, req.Lastname); errs.HasErrors() {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(errs)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacher, err := c.teacherService.InsertTeacher(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(teacher))
}

// UpdateTeacher handles a full-record teacher update
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid teacher ID")
	if !ok {
		return
	}

	var req dto.TeacherUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	req.ID = id

	if errs := validation.ValidateNames(req.Firstname, req.Lastname); errs.HasErrors() {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(errs)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacher, err := c.teacherService.UpdateTeacher(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(teacher))
}

// DeleteTeacher handles teacher deletion
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid teacher ID")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"deleted": true}))
}

// GetTeacherByID retrieves a teacher by ID. The service reports an absent
// id as a nil record, which maps to 404 here.
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid teacher ID")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if teacher == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Teacher not found")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(teacher))
}

// GetTeachers retrieves teachers, optionally filtered by a lastname prefix
// via the ?lastname= query parameter.
func (c *TeacherController) GetTeachers(ctx *gin.Context) {
	prefix := ctx.Query("lastname")

	teachers, err := c.teacherService.GetTeachersByLastname(ctx, prefix)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(teachers))
}
