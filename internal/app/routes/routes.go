package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tandogan/registrar/internal/app/controllers"
	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	scheduledClassController *controllers.ScheduledClassController,
	gradeController *controllers.GradeController,
	attendanceController *controllers.AttendanceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.GetMe)
		authenticated.POST("/auth/logout", authController.Logout)

		// Student records are administrative data
		students := authenticated.Group("/students")
		students.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			students.POST("", studentController.CreateStudent)
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		// Course catalog reads are open to any authenticated account
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourseByID)

			coursesAdminProtected := courses.Group("")
			coursesAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				coursesAdminProtected.POST("", courseController.CreateCourse)
				coursesAdminProtected.PUT("/:id", courseController.UpdateCourse)
				coursesAdminProtected.DELETE("/:id", courseController.DeleteCourse)
			}
		}

		// Timetable reads are open to any authenticated account
		timetable := authenticated.Group("/timetable")
		{
			timetable.GET("", scheduledClassController.GetScheduledClasses)
			timetable.GET("/:id", scheduledClassController.GetScheduledClassByID)
			timetable.GET("/course/:courseId", scheduledClassController.GetScheduledClassesByCourse)

			timetableAdminProtected := timetable.Group("")
			timetableAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				timetableAdminProtected.POST("", scheduledClassController.CreateScheduledClass)
				timetableAdminProtected.PUT("/:id", scheduledClassController.UpdateScheduledClass)
				timetableAdminProtected.DELETE("/:id", scheduledClassController.DeleteScheduledClass)
			}
		}

		// Grades are administrative data, except the self-scoped view
		grades := authenticated.Group("/grades")
		{
			grades.GET("/my-grades", authMiddleware.RoleRequired(string(models.RoleStudent)), gradeController.GetMyGrades)

			gradesAdminProtected := grades.Group("")
			gradesAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				gradesAdminProtected.POST("", gradeController.CreateGrade)
				gradesAdminProtected.GET("", gradeController.GetGrades)
				gradesAdminProtected.GET("/:id", gradeController.GetGradeByID)
				gradesAdminProtected.PUT("/:id", gradeController.UpdateGrade)
				gradesAdminProtected.DELETE("/:id", gradeController.DeleteGrade)
			}
		}

		// Attendance records are administrative data
		attendance := authenticated.Group("/attendance")
		attendance.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			attendance.POST("", attendanceController.RecordAttendance)
			attendance.GET("", attendanceController.GetAttendance)
			attendance.GET("/:id", attendanceController.GetAttendanceByID)
			attendance.PUT("/:id", attendanceController.UpdateAttendance)
			attendance.DELETE("/:id", attendanceController.DeleteAttendance)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})

	// Prometheus metrics endpoint (public)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger routes are set up in bootstrap.go already
}
