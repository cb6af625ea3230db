package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delis/schoolhub/internal/app/models/dto"
	"github.com/delis/schoolhub/internal/app/services"
	"github.com/delis/schoolhub/internal/middleware"
	"github.com/delis/schoolhub/internal/pkg/validation"
)

// StudentController handles student-related endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student creation. Name rules are checked up front
// and reported per field.
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentInsertDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if errs := validation.ValidateNames(req.Firstname, req.Lastname); errs.HasErrors() {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(errs)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.InsertStudent(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(student))
}

// UpdateStudent handles a full-record student update
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid student ID")
	if !ok {
		return
	}

	var req dto.StudentUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	req.ID = id

	if errs := validation.ValidateNames(req.Firstname, req.Lastname); errs.HasErrors() {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(errs)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// DeleteStudent handles student deletion
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid student ID")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"deleted": true}))
}

// GetStudentByID retrieves a student by ID. The service reports an absent
// id as a nil record, which maps to 404 here.
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid student ID")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if student == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// GetStudents retrieves students, optionally filtered by a lastname prefix
// via the ?lastname= query parameter.
func (c *StudentController) GetStudents(ctx *gin.Context) {
	prefix := ctx.Query("lastname")

	students, err := c.studentService.GetStudentsByLastname(ctx, prefix)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(students))
}
