package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tandogan/registrar/internal/app/auth"
	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/app/services"
	"github.com/tandogan/registrar/internal/middleware"
)

// GradeController handles grade record operations
type GradeController struct {
	gradeService *services.GradeService
	authzService *auth.AuthorizationService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService, authzService *auth.AuthorizationService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
		authzService: authzService,
	}
}

// CreateGrade handles grade creation
// @Summary Create a new grade
// @Description Records a grade for a student in a course. Both must exist and the (student, course, assessment type) combination must be free.
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGradeRequest true "Grade information"
// @Success 201 {object} dto.APIResponse{data=dto.GradeResponse} "Grade created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Grade already exists for this assessment"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [post]
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	var req dto.CreateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	grade, err := c.gradeService.CreateGrade(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// GetGradeByID retrieves a grade by ID
// @Summary Get grade by ID
// @Description Retrieves a specific grade with denormalized student and course display fields
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse} "Grade retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [get]
func (c *GradeController) GetGradeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "grade ID")
	if !ok {
		return
	}

	grade, err := c.gradeService.GetGradeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// GetGrades retrieves grades with optional filters
// @Summary Get grades
// @Description Retrieves grades, optionally filtered by student and/or course. Filter targets must exist.
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student ID"
// @Param courseId query int false "Filter by course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeResponse} "Grades retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [get]
func (c *GradeController) GetGrades(ctx *gin.Context) {
	studentID, hasStudent, ok := parseIDQuery(ctx, "studentId", "student ID")
	if !ok {
		return
	}
	courseID, hasCourse, ok := parseIDQuery(ctx, "courseId", "course ID")
	if !ok {
		return
	}

	var (
		grades []*dto.GradeResponse
		err    error
	)

	switch {
	case hasStudent && hasCourse:
		grades, err = c.gradeService.GetGradesByStudentAndCourse(ctx, studentID, courseID)
	case hasStudent:
		grades, err = c.gradeService.GetGradesByStudent(ctx, studentID)
	case hasCourse:
		grades, err = c.gradeService.GetGradesByCourse(ctx, courseID)
	default:
		grades, err = c.gradeService.GetAllGrades(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grades,
		Timestamp: time.Now(),
	})
}

// GetMyGrades retrieves the grades of the authenticated student
// @Summary Get own grades
// @Description Retrieves the grades of the student record linked to the authenticated account
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeResponse} "Grades retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No student profile linked to this account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/my-grades [get]
func (c *GradeController) GetMyGrades(ctx *gin.Context) {
	username := ctx.GetString(middleware.ContextUsername)

	student, err := c.authzService.ResolveSelfStudent(ctx, username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	grades, err := c.gradeService.GetGradesByStudent(ctx, student.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grades,
		Timestamp: time.Now(),
	})
}

// UpdateGrade updates an existing grade
// @Summary Update a grade
// @Description Applies a partial update to an existing grade. Only the grade value, assessment date and comments are patchable.
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Param request body dto.UpdateGradeRequest true "Updated grade information"
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse} "Grade updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [put]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "grade ID")
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	grade, err := c.gradeService.UpdateGrade(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// DeleteGrade deletes a grade
// @Summary Delete a grade
// @Description Deletes an existing grade by its ID
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Success 204 "Grade deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "grade ID")
	if !ok {
		return
	}

	if err := c.gradeService.DeleteGrade(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
