package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/app/services"
	"github.com/tandogan/registrar/internal/middleware"
)

// AttendanceController handles attendance record operations
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// RecordAttendance handles attendance recording
// @Summary Record attendance
// @Description Records attendance for a student in a course on a date. Both must exist and the (student, course, date) combination must be free.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAttendanceRequest true "Attendance information"
// @Success 201 {object} dto.APIResponse{data=dto.AttendanceResponse} "Attendance recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Attendance already recorded for this date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [post]
func (c *AttendanceController) RecordAttendance(ctx *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.attendanceService.RecordAttendance(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// GetAttendanceByID retrieves an attendance record by ID
// @Summary Get attendance record by ID
// @Description Retrieves a specific attendance record with denormalized student and course display fields
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance record ID"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceResponse} "Attendance record retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance record ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [get]
func (c *AttendanceController) GetAttendanceByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "attendance record ID")
	if !ok {
		return
	}

	record, err := c.attendanceService.GetAttendanceByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// GetAttendance retrieves attendance records with filters
// @Summary Get attendance records
// @Description Retrieves attendance records filtered by student and/or course, optionally by date. Filter targets must exist; at least one of studentId or courseId is required.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student ID"
// @Param courseId query int false "Filter by course ID"
// @Param date query string false "Filter by date (YYYY-MM-DD, requires courseId)"
// @Success 200 {object} dto.APIResponse{data=[]dto.AttendanceResponse} "Attendance records retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [get]
func (c *AttendanceController) GetAttendance(ctx *gin.Context) {
	studentID, hasStudent, ok := parseIDQuery(ctx, "studentId", "student ID")
	if !ok {
		return
	}
	courseID, hasCourse, ok := parseIDQuery(ctx, "courseId", "course ID")
	if !ok {
		return
	}
	date := ctx.Query("date")

	var (
		records []*dto.AttendanceResponse
		err     error
	)

	switch {
	case date != "" && !hasCourse:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter")
		errorDetail = errorDetail.WithDetails("The date filter requires courseId")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	case hasCourse && date != "":
		records, err = c.attendanceService.GetAttendanceByCourseAndDate(ctx, courseID, date)
	case hasStudent && hasCourse:
		records, err = c.attendanceService.GetAttendanceByStudentAndCourse(ctx, studentID, courseID)
	case hasStudent:
		records, err = c.attendanceService.GetAttendanceByStudent(ctx, studentID)
	case hasCourse:
		records, err = c.attendanceService.GetAttendanceByCourse(ctx, courseID)
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing filter")
		errorDetail = errorDetail.WithDetails("At least one of studentId or courseId is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      records,
		Timestamp: time.Now(),
	})
}

// UpdateAttendance updates the status of an attendance record
// @Summary Update an attendance record
// @Description Updates the status of an existing attendance record. The student, course and date never change.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance record ID"
// @Param request body dto.UpdateAttendanceRequest true "Updated attendance status"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceResponse} "Attendance record updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [put]
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "attendance record ID")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.attendanceService.UpdateAttendance(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// DeleteAttendance deletes an attendance record
// @Summary Delete an attendance record
// @Description Deletes an existing attendance record by its ID
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance record ID"
// @Success 204 "Attendance record deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance record ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "attendance record ID")
	if !ok {
		return
	}

	if err := c.attendanceService.DeleteAttendance(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
