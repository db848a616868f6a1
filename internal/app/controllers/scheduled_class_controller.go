package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/app/services"
	"github.com/tandogan/registrar/internal/middleware"
)

// ScheduledClassController handles timetable entry operations
type ScheduledClassController struct {
	classService *services.ScheduledClassService
}

// NewScheduledClassController creates a new ScheduledClassController
func NewScheduledClassController(classService *services.ScheduledClassService) *ScheduledClassController {
	return &ScheduledClassController{
		classService: classService,
	}
}

// CreateScheduledClass handles timetable entry creation
// @Summary Create a timetable entry
// @Description Schedules a class for a course. The referenced course must exist.
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateScheduledClassRequest true "Timetable entry information"
// @Success 201 {object} dto.APIResponse{data=dto.ScheduledClassResponse} "Timetable entry created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable [post]
func (c *ScheduledClassController) CreateScheduledClass(ctx *gin.Context) {
	var req dto.CreateScheduledClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	class, err := c.classService.CreateScheduledClass(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      class,
		Timestamp: time.Now(),
	})
}

// GetScheduledClassByID retrieves a timetable entry by ID
// @Summary Get timetable entry by ID
// @Description Retrieves a specific timetable entry with denormalized course display fields
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Timetable entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduledClassResponse} "Timetable entry retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid timetable entry ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Timetable entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable/{id} [get]
func (c *ScheduledClassController) GetScheduledClassByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "timetable entry ID")
	if !ok {
		return
	}

	class, err := c.classService.GetScheduledClassByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      class,
		Timestamp: time.Now(),
	})
}

// GetScheduledClasses retrieves the timetable
// @Summary Get the timetable
// @Description Retrieves all timetable entries, optionally filtered by day of week
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param day query string false "Day of week (MONDAY..SUNDAY)"
// @Success 200 {object} dto.APIResponse{data=[]dto.ScheduledClassResponse} "Timetable retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown day of week"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable [get]
func (c *ScheduledClassController) GetScheduledClasses(ctx *gin.Context) {
	var (
		classes []*dto.ScheduledClassResponse
		err     error
	)

	if day := ctx.Query("day"); day != "" {
		classes, err = c.classService.GetScheduledClassesByDay(ctx, day)
	} else {
		classes, err = c.classService.GetAllScheduledClasses(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classes,
		Timestamp: time.Now(),
	})
}

// GetScheduledClassesByCourse retrieves the timetable entries for a course
// @Summary Get timetable entries for a course
// @Description Retrieves all timetable entries of a specific course. The course must exist.
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ScheduledClassResponse} "Timetable entries retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable/course/{courseId} [get]
func (c *ScheduledClassController) GetScheduledClassesByCourse(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "courseId", "course ID")
	if !ok {
		return
	}

	classes, err := c.classService.GetScheduledClassesByCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classes,
		Timestamp: time.Now(),
	})
}

// UpdateScheduledClass updates an existing timetable entry
// @Summary Update a timetable entry
// @Description Applies a partial update to an existing timetable entry. A supplied courseId is re-resolved.
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Timetable entry ID"
// @Param request body dto.UpdateScheduledClassRequest true "Updated timetable entry information"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduledClassResponse} "Timetable entry updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Timetable entry or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable/{id} [put]
func (c *ScheduledClassController) UpdateScheduledClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "timetable entry ID")
	if !ok {
		return
	}

	var req dto.UpdateScheduledClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	class, err := c.classService.UpdateScheduledClass(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      class,
		Timestamp: time.Now(),
	})
}

// DeleteScheduledClass deletes a timetable entry
// @Summary Delete a timetable entry
// @Description Deletes an existing timetable entry by its ID
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Timetable entry ID"
// @Success 204 "Timetable entry deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid timetable entry ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Timetable entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable/{id} [delete]
func (c *ScheduledClassController) DeleteScheduledClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "timetable entry ID")
	if !ok {
		return
	}

	if err := c.classService.DeleteScheduledClass(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
