package courseValidator

import (
	"strconv"
	"strings"

	"lingua/middleware"
	courseModels "lingua/models/course"

	"github.com/gofiber/fiber/v2"
)

// ============ Course Validators ============

// CreateCourseAdmin validates admin course creation request
func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title         string `json:"title"`
			TitleFr       string `json:"title_fr"`
			Description   string `json:"description"`
			DescriptionFr string `json:"description_fr"`
			ThumbnailURL  string `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.TitleFr = strings.TrimSpace(reqData.TitleFr)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.DescriptionFr = strings.TrimSpace(reqData.DescriptionFr)

		// Validate Title
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// French title is a quality-gate warning, not a creation error

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseAdmin validates admin course update request
func UpdateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title         string `json:"title"`
			TitleFr       string `json:"title_fr"`
			Description   string `json:"description"`
			DescriptionFr string `json:"description_fr"`
			ThumbnailURL  string `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.TitleFr = strings.TrimSpace(reqData.TitleFr)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.DescriptionFr = strings.TrimSpace(reqData.DescriptionFr)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseIDParam validates the course ID path parameter
func CourseIDParam() fiber.Handler {
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

// AdminList validates pagination query for admin course listing
func AdminList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request query!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminList", reqData)
		return c.Next()
	}
}

// ============ Module Validators ============

// CreateModule validates module creation request
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title         string `json:"title"`
			TitleFr       string `json:"title_fr"`
			SortOrder     int    `json:"sort_order"`
			ThumbnailURL  string `json:"thumbnail_url"`
			BadgeImageURL string `json:"badge_image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.TitleFr = strings.TrimSpace(reqData.TitleFr)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.SortOrder < 0 {
			errors["sort_order"] = "Sort order must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validates module update request
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("course_id"))
		moduleIDStr := strings.TrimSpace(c.Params("module_id"))

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title         string `json:"title"`
			TitleFr       string `json:"title_fr"`
			SortOrder     int    `json:"sort_order"`
			ThumbnailURL  string `json:"thumbnail_url"`
			BadgeImageURL string `json:"badge_image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.TitleFr = strings.TrimSpace(reqData.TitleFr)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// DeleteModule validates module deletion request
func DeleteModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("course_id"))
		moduleIDStr := strings.TrimSpace(c.Params("module_id"))

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// ============ Lesson Validators ============

// CreateLesson validates lesson creation request
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("module_id"))
		if moduleIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title     string `json:"title"`
			TitleFr   string `json:"title_fr"`
			SortOrder int    `json:"sort_order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.TitleFr = strings.TrimSpace(reqData.TitleFr)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validates lesson update request
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonIDStr := strings.TrimSpace(c.Params("lesson_id"))
		if lessonIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson ID is required!", nil)
		}

		lessonID, err := strconv.Atoi(lessonIDStr)
		if err != nil || lessonID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		reqData := new(struct {
			Title     string `json:"title"`
			TitleFr   string `json:"title_fr"`
			SortOrder int    `json:"sort_order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.TitleFr = strings.TrimSpace(reqData.TitleFr)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("lessonID", lessonID)
		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// LessonIDParam validates the lesson ID path parameter
func LessonIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonIDStr := strings.TrimSpace(c.Params("lesson_id"))
		if lessonIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson ID is required!", nil)
		}

		lessonID, err := strconv.Atoi(lessonIDStr)
		if err != nil || lessonID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}

// ============ Activity Validators ============

// CreateActivity validates activity creation request
func CreateActivity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonIDStr := strings.TrimSpace(c.Params("lesson_id"))
		if lessonIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson ID is required!", nil)
		}

		lessonID, err := strconv.Atoi(lessonIDStr)
		if err != nil || lessonID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		reqData := new(struct {
			SlotIndex        int    `json:"slot_index"`
			SlotType         string `json:"slot_type"`
			ActivityType     string `json:"activity_type"`
			Title            string `json:"title"`
			TitleFr          string `json:"title_fr"`
			Content          string `json:"content"`
			ContentFr        string `json:"content_fr"`
			VideoURL         string `json:"video_url"`
			AudioURL         string `json:"audio_url"`
			EmbedCode        string `json:"embed_code"`
			DownloadURL      string `json:"download_url"`
			ThumbnailURL     string `json:"thumbnail_url"`
			EstimatedMinutes int    `json:"estimated_minutes"`
			Points           int    `json:"points"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.TitleFr = strings.TrimSpace(reqData.TitleFr)
		reqData.SlotType = strings.TrimSpace(reqData.SlotType)
		reqData.ActivityType = strings.TrimSpace(reqData.ActivityType)

		if reqData.SlotIndex < 1 {
			errors["slot_index"] = "Slot index must be greater than 0!"
		}

		// Template slots may omit slot_type; extras must name theirs
		if reqData.SlotIndex > courseModels.RequiredSlots && reqData.SlotType == "" {
			errors["slot_type"] = "Slot type is required for extra slots!"
		}

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		if reqData.EstimatedMinutes < 0 {
			errors["estimated_minutes"] = "Estimated minutes must not be negative!"
		}
		if reqData.Points < 0 {
			errors["points"] = "Points must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("lessonID", lessonID)
		c.Locals("validatedActivity", reqData)
		return c.Next()
	}
}

// UpdateActivity validates activity update request
func UpdateActivity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		activityIDStr := strings.TrimSpace(c.Params("activity_id"))
		if activityIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Activity ID is required!", nil)
		}

		activityID, err := strconv.Atoi(activityIDStr)
		if err != nil || activityID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Activity ID!", nil)
		}

		reqData := new(struct {
			Title            string `json:"title"`
			TitleFr          string `json:"title_fr"`
			Content          string `json:"content"`
			ContentFr        string `json:"content_fr"`
			VideoURL         string `json:"video_url"`
			AudioURL         string `json:"audio_url"`
			EmbedCode        string `json:"embed_code"`
			DownloadURL      string `json:"download_url"`
			ThumbnailURL     string `json:"thumbnail_url"`
			Status           string `json:"status"`
			EstimatedMinutes int    `json:"estimated_minutes"`
			Points           int    `json:"points"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Status = strings.TrimSpace(reqData.Status)

		if reqData.Status != "" {
			validStatuses := map[string]bool{
				courseModels.ActivityDraft:     true,
				courseModels.ActivityPublished: true,
				courseModels.ActivityArchived:  true,
			}
			if !validStatuses[reqData.Status] {
				errors["status"] = "Status must be draft, published, or archived!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("activityID", activityID)
		c.Locals("validatedActivityUpdate", reqData)
		return c.Next()
	}
}

// ActivityIDParam validates the activity ID path parameter
func ActivityIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		activityIDStr := strings.TrimSpace(c.Params("activity_id"))
		if activityIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Activity ID is required!", nil)
		}

		activityID, err := strconv.Atoi(activityIDStr)
		if err != nil || activityID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Activity ID!", nil)
		}

		c.Locals("activityID", activityID)
		return c.Next()
	}
}

// ============ Quiz Question Validators ============

// CreateQuizQuestion validates quiz question creation request
func CreateQuizQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonIDStr := strings.TrimSpace(c.Params("lesson_id"))
		if lessonIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson ID is required!", nil)
		}

		lessonID, err := strconv.Atoi(lessonIDStr)
		if err != nil || lessonID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		reqData := new(struct {
			Question   string `json:"question"`
			QuestionFr string `json:"question_fr"`
			Options    string `json:"options"`
			OptionsFr  string `json:"options_fr"`
			Answer     int    `json:"answer"`
			SortOrder  int    `json:"sort_order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Question = strings.TrimSpace(reqData.Question)

		if reqData.Question == "" {
			errors["question"] = "Question is required!"
		}
		if strings.TrimSpace(reqData.Options) == "" {
			errors["options"] = "Options are required!"
		}
		if reqData.Answer < 0 {
			errors["answer"] = "Answer index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("lessonID", lessonID)
		c.Locals("validatedQuizQuestion", reqData)
		return c.Next()
	}
}

// QuestionIDParam validates the quiz question ID path parameter
func QuestionIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionIDStr := strings.TrimSpace(c.Params("question_id"))
		if questionIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Question ID is required!", nil)
		}

		questionID, err := strconv.Atoi(questionIDStr)
		if err != nil || questionID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		c.Locals("questionID", questionID)
		return c.Next()
	}
}
