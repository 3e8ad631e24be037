package course

import (
	"time"

	"gorm.io/gorm"
)

// Learner progress statuses shared by activity, lesson and course levels.
const (
	ProgressNotStarted = "not_started"
	ProgressInProgress = "in_progress"
	ProgressCompleted  = "completed"
)

// ActivityProgress tracks a learner's completion of a single activity.
// Written only by the learner path, never by the authoring workflow.
type ActivityProgress struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_activity,where:is_deleted = false"`
	ActivityID  uint       `json:"activity_id" gorm:"not null;uniqueIndex:idx_user_activity,where:is_deleted = false"`
	LessonID    uint       `json:"lesson_id" gorm:"index;not null"`
	CourseID    uint       `json:"course_id" gorm:"index;not null"`
	Status      string     `json:"status" gorm:"default:'not_started'"`
	CompletedAt *time.Time `json:"completed_at"`
	IsDeleted   bool       `gorm:"default:false"`
}

// LessonProgress caches a learner's per-lesson rollup. Refreshed whenever
// the underlying activity progress changes; the cascade computer does not
// recompute it.
type LessonProgress struct {
	gorm.Model
	UserID          uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_lesson,where:is_deleted = false"`
	LessonID        uint       `json:"lesson_id" gorm:"not null;uniqueIndex:idx_user_lesson,where:is_deleted = false"`
	CourseID        uint       `json:"course_id" gorm:"index;not null"`
	Status          string     `json:"status" gorm:"default:'not_started'"`
	ProgressPercent int        `json:"progress_percent" gorm:"default:0"`
	CompletedSlots  int        `json:"completed_slots" gorm:"default:0"`
	TotalSlots      int        `json:"total_slots" gorm:"default:0"`
	CompletedAt     *time.Time `json:"completed_at"`
	IsDeleted       bool       `gorm:"default:false"`
}
