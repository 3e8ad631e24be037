package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a learner's enrollment in a course with cached
// course-level progress figures.
type Enrollment struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course,where:is_deleted = false"`
	CourseID         uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course,where:is_deleted = false"`
	Status           string     `json:"status" gorm:"default:'not_started'"`
	ProgressPercent  int        `json:"progress_percent" gorm:"default:0"`
	LessonsCompleted int        `json:"lessons_completed" gorm:"default:0"`
	TotalLessons     int        `json:"total_lessons" gorm:"default:0"`
	EnrolledAt       time.Time  `json:"enrolled_at"`
	LastAccessedAt   *time.Time `json:"last_accessed_at"`
	CompletedAt      *time.Time `json:"completed_at"`
	IsDeleted        bool       `gorm:"default:false"`
}
