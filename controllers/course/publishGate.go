package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"lingua/database"
	"lingua/middleware"
	"lingua/models"
	courseModels "lingua/models/course"
	"lingua/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PublishCheck is the publish gate's answer. CanPublish=false is a normal
// response, never an error; callers branch on the boolean.
type PublishCheck struct {
	CanPublish bool     `json:"can_publish"`
	Reason     string   `json:"reason"`
	Errors     []string `json:"errors"`
}

// collectPublishBlockers gathers only the blocking conditions: module and
// lesson counts, slot counts 1-7, and the French course title. Warnings
// from the quality report (thumbnails, bilingual nits) never block.
func collectPublishBlockers(db *gorm.DB, course courseModels.Course) ([]string, error) {
	criticalErrors := []string{}

	var moduleList []courseModels.CourseModule
	if err := db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("sort_order asc").Find(&moduleList).Error; err != nil {
		return nil, err
	}

	if len(moduleList) < courseModels.RequiredModules {
		criticalErrors = append(criticalErrors,
			fmt.Sprintf("Need %d modules, have %d", courseModels.RequiredModules, len(moduleList)))
	}

	for _, mod := range moduleList {
		var lessonCount int64
		if err := db.Model(&courseModels.Lesson{}).
			Where("module_id = ? AND is_deleted = ?", mod.ID, false).
			Count(&lessonCount).Error; err != nil {
			return nil, err
		}
		if lessonCount < courseModels.RequiredLessonsPerModule {
			criticalErrors = append(criticalErrors,
				fmt.Sprintf("Module %q: needs %d lessons, has %d", mod.Title, courseModels.RequiredLessonsPerModule, lessonCount))
		}
	}

	var allLessons []courseModels.Lesson
	if err := db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("sort_order asc, id asc").Find(&allLessons).Error; err != nil {
		return nil, err
	}

	for _, lesson := range allLessons {
		var slotCount int64
		if err := db.Model(&courseModels.Activity{}).
			Where("lesson_id = ? AND is_deleted = ? AND slot_index BETWEEN 1 AND ?", lesson.ID, false, courseModels.RequiredSlots).
			Count(&slotCount).Error; err != nil {
			return nil, err
		}
		if slotCount < courseModels.RequiredSlots {
			criticalErrors = append(criticalErrors,
				fmt.Sprintf("Lesson %q: needs %d slots, has %d", lesson.Title, courseModels.RequiredSlots, slotCount))
		}
	}

	if course.TitleFr == "" {
		criticalErrors = append(criticalErrors, "Course French title missing")
	}

	return criticalErrors, nil
}

// RunPublishGate re-checks the blocking conditions and, when none exist,
// flips the course to PUBLISHED. The check and the flip run in one
// transaction and the flip is conditional on the status still being DRAFT,
// so two concurrent publish attempts cannot both win.
func RunPublishGate(db *gorm.DB, courseID uint) (PublishCheck, error) {
	check := PublishCheck{Errors: []string{}}

	err := db.Transaction(func(tx *gorm.DB) error {
		var course courseModels.Course
		if err := tx.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				check.Reason = "Course not found"
				return nil
			}
			return err
		}

		criticalErrors, err := collectPublishBlockers(tx, course)
		if err != nil {
			return err
		}
		check.Errors = criticalErrors

		if len(criticalErrors) > 0 {
			check.Reason = "Critical errors found"
			return nil
		}

		now := time.Now()
		res := tx.Model(&courseModels.Course{}).
			Where("id = ? AND status = ?", course.ID, courseModels.CourseDraft).
			Updates(map[string]interface{}{"status": courseModels.CoursePublished, "published_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race, or the course already left draft.
			check.Reason = "Course is not in draft state"
			return nil
		}

		check.CanPublish = true
		check.Reason = "All checks passed"
		return nil
	})
	if err != nil {
		return PublishCheck{Errors: []string{}}, err
	}

	return check, nil
}

// ValidateBeforePublish runs the publish gate and marks the course
// published when every blocking check passes
func ValidateBeforePublish(c *fiber.Ctx) error {
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

	check, err := RunPublishGate(database.Database.Db, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to run publish gate!", nil)
	}

	if check.CanPublish {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err == nil {
			go utils.SendCoursePublishedEmail(user.Email, user.Name, course.Title)
			go func() {
				if err := utils.NotifyCoursePublished(course.ID, course.Title); err != nil {
					log.Printf("Publish webhook failed for course %d: %v", course.ID, err)
				}
			}()
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Publish gate evaluated!", check)
}
