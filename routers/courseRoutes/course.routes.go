package courseRoutes

import (
	controllers "lingua/controllers/course"
	"lingua/middleware"
	validators "lingua/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all learner-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Enrollment
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)
	userGroup.Get("/enrollments", middleware.JWTMiddleware, validators.EnrollmentList(), controllers.GetEnrollments)

	// Progress
	userGroup.Post("/:course_id/activity/:activity_id/progress", middleware.JWTMiddleware, validators.MarkActivityProgress(), controllers.MarkActivityProgress)
	userGroup.Get("/:id/cascade", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.GetCourseCascade)
	userGroup.Get("/my/summary", middleware.JWTMiddleware, controllers.GetMyCoursesSummary)

	// Certificates
	userGroup.Post("/:id/certificate", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.RequestCertificate)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)
}
