package courseValidator

import (
	"strconv"
	"strings"

	"lingua/middleware"
	courseModels "lingua/models/course"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse validates course enrollment request
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// EnrollmentList validates pagination query for the enrollment listing
func EnrollmentList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request query!", nil)
		}

		// Pagination is optional; without it the handler returns everything
		if reqData.Page == nil || reqData.Limit == nil {
			return c.Next()
		}

		errors := make(map[string]string)

		if *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollmentList", reqData)
		return c.Next()
	}
}

// MarkActivityProgress validates a learner's progress update request
func MarkActivityProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("course_id"))
		activityIDStr := strings.TrimSpace(c.Params("activity_id"))

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		activityID, err := strconv.Atoi(activityIDStr)
		if err != nil || activityID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Activity ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.TrimSpace(reqData.Status)

		validStatuses := map[string]bool{
			courseModels.ProgressNotStarted: true,
			courseModels.ProgressInProgress: true,
			courseModels.ProgressCompleted:  true,
		}
		if !validStatuses[reqData.Status] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be not_started, in_progress, or completed!",
			})
		}

		c.Locals("courseID", courseID)
		c.Locals("activityID", activityID)
		c.Locals("progressStatus", reqData.Status)
		return c.Next()
	}
}
