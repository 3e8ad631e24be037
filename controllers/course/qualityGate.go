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

// SlotStatus captures the validator's findings for one template slot.
type SlotStatus struct {
	SlotIndex    int    `json:"slot_index"`
	Label        string `json:"label"`
	ExpectedType string `json:"expected_type"`
	ActualType   string `json:"actual_type,omitempty"`
	Present      bool   `json:"present"`
	HasBilingual bool   `json:"has_bilingual"`
	HasContent   bool   `json:"has_content"`
	Status       string `json:"status"`
}

// LessonValidation is the full per-lesson verdict. Errors block
// publishing; warnings never do.
type LessonValidation struct {
	LessonID          uint         `json:"lesson_id"`
	Valid             bool         `json:"valid"`
	TotalSlots        int          `json:"total_slots"`
	RequiredSlots     int          `json:"required_slots"`
	PresentRequired   int          `json:"present_required"`
	MissingSlots      []int        `json:"missing_slots"`
	Extras            int          `json:"extras"`
	QuizQuestionCount int          `json:"quiz_question_count"`
	Errors            []string     `json:"errors"`
	Warnings          []string     `json:"warnings"`
	SlotStatus        []SlotStatus `json:"slot_status"`
}

// findActivityAtSlot returns the activity occupying a slot index. The
// caller passes rows ordered by slot_index, id, so a legacy duplicate
// resolves to the lowest id deterministically.
func findActivityAtSlot(activities []courseModels.Activity, slotIndex int) *courseModels.Activity {
	for i := range activities {
		if activities[i].SlotIndex == slotIndex {
			return &activities[i]
		}
	}
	return nil
}

// BuildLessonValidation checks a lesson against the 7-slot template:
// presence, type conformance, bilingual titles and content sufficiency
// (the quiz slot needs at least 6 questions). Pure read, no side effects.
func BuildLessonValidation(db *gorm.DB, lessonID uint) (LessonValidation, error) {
	var activities []courseModels.Activity
	if err := db.Where("lesson_id = ? AND is_deleted = ?", lessonID, false).
		Order("slot_index asc, id asc").Find(&activities).Error; err != nil {
		return LessonValidation{}, err
	}

	var quizCount int64
	if err := db.Model(&courseModels.QuizQuestion{}).
		Where("lesson_id = ? AND is_deleted = ?", lessonID, false).
		Count(&quizCount).Error; err != nil {
		return LessonValidation{}, err
	}

	result := LessonValidation{
		LessonID:          lessonID,
		RequiredSlots:     courseModels.RequiredSlots,
		TotalSlots:        len(activities),
		QuizQuestionCount: int(quizCount),
		MissingSlots:      []int{},
		Errors:            []string{},
		Warnings:          []string{},
		SlotStatus:        []SlotStatus{},
	}

	for _, template := range courseModels.SlotTemplate {
		found := findActivityAtSlot(activities, template.SlotIndex)
		if found == nil {
			result.MissingSlots = append(result.MissingSlots, template.SlotIndex)
			result.SlotStatus = append(result.SlotStatus, SlotStatus{
				SlotIndex:    template.SlotIndex,
				Label:        template.Label,
				ExpectedType: template.SlotType,
				Status:       "missing",
			})
			result.Errors = append(result.Errors, fmt.Sprintf("Slot %d (%s) is missing", template.SlotIndex, template.Label))
			continue
		}

		hasBilingual := found.Title != "" && found.TitleFr != ""
		hasContent := found.Content != "" || found.VideoURL != "" || found.AudioURL != "" ||
			(template.SlotType == courseModels.SlotQuiz && quizCount >= courseModels.MinQuizQuestions)

		if found.SlotType != template.SlotType {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Slot %d: expected type %q, got %q", template.SlotIndex, template.SlotType, found.SlotType))
		}
		if !hasBilingual {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Slot %d (%s): missing bilingual title", template.SlotIndex, template.Label))
		}
		if !hasContent {
			if template.SlotType == courseModels.SlotQuiz {
				result.Errors = append(result.Errors,
					fmt.Sprintf("Slot %d (Quiz): needs >=%d questions, has %d", template.SlotIndex, courseModels.MinQuizQuestions, quizCount))
			} else {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Slot %d (%s): no content yet", template.SlotIndex, template.Label))
			}
		}

		status := found.Status
		if status == "" {
			status = courseModels.ActivityDraft
		}
		result.SlotStatus = append(result.SlotStatus, SlotStatus{
			SlotIndex:    template.SlotIndex,
			Label:        template.Label,
			ExpectedType: template.SlotType,
			ActualType:   found.SlotType,
			Present:      true,
			HasBilingual: hasBilingual,
			HasContent:   hasContent,
			Status:       status,
		})
	}

	for _, act := range activities {
		if act.SlotIndex > courseModels.RequiredSlots {
			result.Extras++
		}
	}

	result.PresentRequired = courseModels.RequiredSlots - len(result.MissingSlots)
	result.Valid = len(result.Errors) == 0

	return result, nil
}

// GateLabelFor maps a validation result to the cached lesson label.
func GateLabelFor(v LessonValidation) string {
	switch {
	case len(v.Errors) > 0:
		return courseModels.GateFail
	case len(v.Warnings) > 0:
		return courseModels.GateWarn
	default:
		return courseModels.GatePass
	}
}

// ValidateLessonSlots validates a lesson's slot structure for the authoring UI
func ValidateLessonSlots(c *fiber.Ctx) error {
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

	lessonID := c.Locals("lessonID").(int)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	validation, err := BuildLessonValidation(database.Database.Db, lesson.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to validate lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson validated successfully!", validation)
}
