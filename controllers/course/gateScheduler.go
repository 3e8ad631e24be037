package controllers

import (
	"fmt"
	"log"
	"time"

	"lingua/config"
	"lingua/database"
	courseModels "lingua/models/course"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logGateScheduler logs scheduler events with timestamp
func logGateScheduler(message string) {
	log.Printf("[GATE-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// RefreshGateLabels recomputes the cached quality_gate_status label on
// every lesson of every draft course and returns how many labels changed.
// The label is a display cache only; the publish gate always revalidates
// from scratch.
func RefreshGateLabels(db *gorm.DB) int {
	var draftCourses []courseModels.Course
	if err := db.Where("status = ? AND is_deleted = ?", courseModels.CourseDraft, false).
		Find(&draftCourses).Error; err != nil {
		logGateScheduler("Error fetching draft courses: " + err.Error())
		return 0
	}

	refreshed := 0
	for _, course := range draftCourses {
		var lessons []courseModels.Lesson
		if err := db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
			Find(&lessons).Error; err != nil {
			logGateScheduler("Error fetching lessons: " + err.Error())
			continue
		}

		for _, lesson := range lessons {
			validation, err := BuildLessonValidation(db, lesson.ID)
			if err != nil {
				logGateScheduler("Error validating lesson: " + err.Error())
				continue
			}

			label := GateLabelFor(validation)
			if label == lesson.QualityGateStatus {
				continue
			}

			if err := db.Model(&courseModels.Lesson{}).Where("id = ?", lesson.ID).
				Update("quality_gate_status", label).Error; err != nil {
				logGateScheduler("Error updating gate label: " + err.Error())
				continue
			}
			refreshed++
		}
	}

	logGateScheduler(fmt.Sprintf("Gate label refresh complete, %d labels updated", refreshed))
	return refreshed
}

// InitializeGateScheduler starts the nightly gate label refresh
func InitializeGateScheduler() *cron.Cron {
	logGateScheduler("Initializing gate label scheduler...")

	c := cron.New()

	schedule := config.AppConfig.GateRefreshCron
	if _, err := c.AddFunc(schedule, func() {
		logGateScheduler("Running gate label refresh...")
		RefreshGateLabels(database.Database.Db)
	}); err != nil {
		logGateScheduler("Invalid schedule " + schedule + ", falling back to daily")
		c.AddFunc("0 3 * * *", func() { RefreshGateLabels(database.Database.Db) })
	}

	c.Start()

	logGateScheduler("Gate label scheduler started - schedule: " + schedule)
	return c
}
