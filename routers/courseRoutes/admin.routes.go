package courseRoutes

import (
	controllers "lingua/controllers/course"
	"lingua/middleware"
	validators "lingua/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course authoring routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course")

	// Course CRUD
	adminGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", middleware.JWTMiddleware, validators.AdminList(), controllers.AdminGetAllCourses)
	adminGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, validators.CourseIDParam(), controllers.AdminDeleteCourse)
	adminGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseIDParam(), controllers.AdminGetCourseDetails)
	adminGroup.Patch("/:id/archive", middleware.JWTMiddleware, validators.CourseIDParam(), controllers.AdminArchiveCourse)

	// Quality gate and publishing
	adminGroup.Get("/:id/tree", middleware.JWTMiddleware, validators.CourseIDParam(), controllers.AdminGetCourseTree)
	adminGroup.Get("/:id/quality-report", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-quality-report"), validators.CourseIDParam(), controllers.GetCourseQualityReport)
	adminGroup.Post("/:id/publish", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("publish-course"), validators.CourseIDParam(), controllers.ValidateBeforePublish)

	// Module Management
	adminGroup.Post("/:id/module", middleware.JWTMiddleware, validators.CreateModule(), controllers.AdminCreateModule)
	adminGroup.Put("/:course_id/module/:module_id", middleware.JWTMiddleware, validators.UpdateModule(), controllers.AdminUpdateModule)
	adminGroup.Delete("/:course_id/module/:module_id", middleware.JWTMiddleware, validators.DeleteModule(), controllers.AdminDeleteModule)

	// Lesson Management
	adminGroup.Post("/module/:module_id/lesson", middleware.JWTMiddleware, validators.CreateLesson(), controllers.AdminCreateLesson)
	adminGroup.Put("/lesson/:lesson_id", middleware.JWTMiddleware, validators.UpdateLesson(), controllers.AdminUpdateLesson)
	adminGroup.Delete("/lesson/:lesson_id", middleware.JWTMiddleware, validators.LessonIDParam(), controllers.AdminDeleteLesson)
	adminGroup.Get("/lesson/:lesson_id/validate", middleware.JWTMiddleware, validators.LessonIDParam(), controllers.ValidateLessonSlots)

	// Activity Management
	adminGroup.Post("/lesson/:lesson_id/activity", middleware.JWTMiddleware, validators.CreateActivity(), controllers.AdminCreateActivity)
	adminGroup.Put("/activity/:activity_id", middleware.JWTMiddleware, validators.UpdateActivity(), controllers.AdminUpdateActivity)
	adminGroup.Delete("/activity/:activity_id", middleware.JWTMiddleware, validators.ActivityIDParam(), controllers.AdminDeleteActivity)

	// Quiz Question Management
	adminGroup.Post("/lesson/:lesson_id/question", middleware.JWTMiddleware, validators.CreateQuizQuestion(), controllers.AdminAddQuizQuestion)
	adminGroup.Delete("/question/:question_id", middleware.JWTMiddleware, validators.QuestionIDParam(), controllers.AdminDeleteQuizQuestion)
}
