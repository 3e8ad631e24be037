package controllers

import (
	"fmt"

	"lingua/database"
	"lingua/middleware"
	"lingua/models"
	courseModels "lingua/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TreeSlot is one activity row in the authoring tree.
type TreeSlot struct {
	ID           uint   `json:"id"`
	SlotIndex    int    `json:"slot_index"`
	SlotType     string `json:"slot_type"`
	SlotLabel    string `json:"slot_label"`
	ActivityType string `json:"activity_type"`
	Title        string `json:"title"`
	TitleFr      string `json:"title_fr"`
	HasBilingual bool   `json:"has_bilingual"`
	HasContent   bool   `json:"has_content"`
	ThumbnailURL string `json:"thumbnail_url"`
	Status       string `json:"status"`
}

// TreeLesson is one lesson node with its slot indicators.
type TreeLesson struct {
	ID                uint       `json:"id"`
	Title             string     `json:"title"`
	TitleFr           string     `json:"title_fr"`
	LessonNumber      int        `json:"lesson_number"`
	SortOrder         int        `json:"sort_order"`
	HasBilingual      bool       `json:"has_bilingual"`
	TotalSlots        int        `json:"total_slots"`
	RequiredPresent   int        `json:"required_present"`
	RequiredTotal     int        `json:"required_total"`
	ExtrasCount       int        `json:"extras_count"`
	QuizQuestionCount int        `json:"quiz_question_count"`
	QualityGateStatus string     `json:"quality_gate_status"`
	SlotsIndicator    string     `json:"slots_indicator"`
	IsComplete        bool       `json:"is_complete"`
	Slots             []TreeSlot `json:"slots"`
}

// TreeModule is one module node with lesson completion counters.
type TreeModule struct {
	ID                uint         `json:"id"`
	Title             string       `json:"title"`
	TitleFr           string       `json:"title_fr"`
	ModuleNumber      int          `json:"module_number"`
	SortOrder         int          `json:"sort_order"`
	HasBilingual      bool         `json:"has_bilingual"`
	ThumbnailURL      string       `json:"thumbnail_url"`
	BadgeImageURL     string       `json:"badge_image_url"`
	TotalLessons      int          `json:"total_lessons"`
	CompleteLessons   int          `json:"complete_lessons"`
	LessonsIndicator  string       `json:"lessons_indicator"`
	ProgressIndicator string       `json:"progress_indicator"`
	Lessons           []TreeLesson `json:"lessons"`
}

func buildTreeLesson(lesson courseModels.Lesson, lessonActs []courseModels.Activity, quizCount int) TreeLesson {
	requiredPresent := 0
	extras := 0
	for _, act := range lessonActs {
		if IsSlotFilled(act) {
			requiredPresent++
		} else if act.SlotIndex > courseModels.RequiredSlots {
			extras++
		}
	}

	slots := make([]TreeSlot, 0, len(lessonActs))
	for _, act := range lessonActs {
		slots = append(slots, TreeSlot{
			ID:           act.ID,
			SlotIndex:    act.SlotIndex,
			SlotType:     act.SlotType,
			SlotLabel:    courseModels.SlotLabelFor(act.SlotType),
			ActivityType: act.ActivityType,
			Title:        act.Title,
			TitleFr:      act.TitleFr,
			HasBilingual: act.Title != "" && act.TitleFr != "",
			HasContent:   act.Content != "" || act.VideoURL != "" || act.AudioURL != "",
			ThumbnailURL: act.ThumbnailURL,
			Status:       act.Status,
		})
	}

	gateStatus := lesson.QualityGateStatus
	if gateStatus == "" {
		gateStatus = courseModels.GatePending
	}

	return TreeLesson{
		ID:                lesson.ID,
		Title:             lesson.Title,
		TitleFr:           lesson.TitleFr,
		LessonNumber:      lesson.LessonNumber,
		SortOrder:         lesson.SortOrder,
		HasBilingual:      lesson.Title != "" && lesson.TitleFr != "",
		TotalSlots:        len(lessonActs),
		RequiredPresent:   requiredPresent,
		RequiredTotal:     courseModels.RequiredSlots,
		ExtrasCount:       extras,
		QuizQuestionCount: quizCount,
		QualityGateStatus: gateStatus,
		SlotsIndicator:    fmt.Sprintf("%d/%d slots", requiredPresent, courseModels.RequiredSlots),
		IsComplete:        requiredPresent == courseModels.RequiredSlots,
		Slots:             slots,
	}
}

// BuildCourseTree assembles the full authoring hierarchy with slot
// indicators for the course builder sidebar.
func BuildCourseTree(db *gorm.DB, courseID uint) ([]TreeModule, error) {
	var moduleList []courseModels.CourseModule
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("sort_order asc").Find(&moduleList).Error; err != nil {
		return nil, err
	}

	tree := []TreeModule{}

	for _, mod := range moduleList {
		var modLessons []courseModels.Lesson
		if err := db.Where("module_id = ? AND is_deleted = ?", mod.ID, false).
			Order("sort_order asc").Find(&modLessons).Error; err != nil {
			return nil, err
		}

		lessonNodes := []TreeLesson{}
		completeLessons := 0

		for _, lesson := range modLessons {
			var lessonActs []courseModels.Activity
			if err := db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).
				Order("slot_index asc, id asc").Find(&lessonActs).Error; err != nil {
				return nil, err
			}

			var quizCount int64
			if err := db.Model(&courseModels.QuizQuestion{}).
				Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).
				Count(&quizCount).Error; err != nil {
				return nil, err
			}

			node := buildTreeLesson(lesson, lessonActs, int(quizCount))
			if node.IsComplete {
				completeLessons++
			}
			lessonNodes = append(lessonNodes, node)
		}

		tree = append(tree, TreeModule{
			ID:                mod.ID,
			Title:             mod.Title,
			TitleFr:           mod.TitleFr,
			ModuleNumber:      mod.ModuleNumber,
			SortOrder:         mod.SortOrder,
			HasBilingual:      mod.Title != "" && mod.TitleFr != "",
			ThumbnailURL:      mod.ThumbnailURL,
			BadgeImageURL:     mod.BadgeImageURL,
			TotalLessons:      len(modLessons),
			CompleteLessons:   completeLessons,
			LessonsIndicator:  fmt.Sprintf("%d lessons", len(modLessons)),
			ProgressIndicator: fmt.Sprintf("%d/%d complete", completeLessons, len(modLessons)),
			Lessons:           lessonNodes,
		})
	}

	return tree, nil
}

// AdminGetCourseTree returns the authoring hierarchy for the course builder
func AdminGetCourseTree(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	tree, err := BuildCourseTree(database.Database.Db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build course tree!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course tree fetched successfully!", fiber.Map{
		"course": course,
		"tree":   tree,
	})
}
