package controllers

import (
	"errors"
	"time"

	"lingua/database"
	"lingua/middleware"
	"lingua/models"
	courseModels "lingua/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// refreshCachedProgress recomputes the cached LessonProgress rows and the
// enrollment rollup from the authoritative cascade. The cascade itself
// never writes; this is the learner workflow's side of that contract.
func refreshCachedProgress(db *gorm.DB, userID, courseID uint) error {
	cascade, err := BuildCourseCascade(db, userID, courseID)
	if err != nil {
		return err
	}

	now := time.Now()

	for _, mod := range cascade.Modules {
		for _, lesson := range mod.Lessons {
			var lp courseModels.LessonProgress
			err := db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lesson.LessonID, false).
				First(&lp).Error
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				lp = courseModels.LessonProgress{
					UserID:   userID,
					LessonID: lesson.LessonID,
					CourseID: courseID,
				}
			}

			lp.Status = lesson.Status
			lp.ProgressPercent = lesson.ProgressPercent
			lp.CompletedSlots = lesson.CompletedSlots
			lp.TotalSlots = lesson.TotalSlots
			if lesson.Status == courseModels.ProgressCompleted && lp.CompletedAt == nil {
				lp.CompletedAt = &now
			}

			if err := db.Save(&lp).Error; err != nil {
				return err
			}
		}
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error; err != nil {
		// Progress without enrollment is tolerated; nothing to roll up.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	enrollment.ProgressPercent = cascade.ProgressPercent
	enrollment.LessonsCompleted = cascade.CompletedLessons
	enrollment.TotalLessons = cascade.TotalLessons
	enrollment.Status = cascade.Status
	enrollment.LastAccessedAt = &now
	if cascade.Status == courseModels.ProgressCompleted && enrollment.CompletedAt == nil {
		enrollment.CompletedAt = &now
	}

	return db.Save(&enrollment).Error
}

// MarkActivityProgress records a learner's progress on one activity and
// refreshes the cached lesson and enrollment rollups
func MarkActivityProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	activityID := c.Locals("activityID").(int)
	status := c.Locals("progressStatus").(string)

	// Check if course exists and is published
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, courseModels.CoursePublished).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Check if activity exists within this course
	var activity courseModels.Activity
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", activityID, courseID, false).
		First(&activity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Activity not found!", nil)
	}

	// Check if user is enrolled in the course
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var progress courseModels.ActivityProgress
	err := database.Database.Db.Where("user_id = ? AND activity_id = ? AND is_deleted = ?", userID, activityID, false).
		First(&progress).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load progress!", nil)
		}
		progress = courseModels.ActivityProgress{
			UserID:     userID,
			ActivityID: activity.ID,
			LessonID:   activity.LessonID,
			CourseID:   uint(courseID),
		}
	}

	progress.Status = status
	if status == courseModels.ProgressCompleted && progress.CompletedAt == nil {
		now := time.Now()
		progress.CompletedAt = &now
	}

	tx := database.Database.Db.Begin()
	if err := tx.Save(&progress).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}
	tx.Commit()

	// Refresh cached rollups
	if err := refreshCachedProgress(database.Database.Db, userID, uint(courseID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refresh progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress saved successfully!", progress)
}
