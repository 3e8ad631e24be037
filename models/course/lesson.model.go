package course

import "gorm.io/gorm"

// Lesson quality-gate labels. The stored label is a cached hint for the
// authoring UI; the authoritative verdict is always recomputed by the
// quality-gate aggregator.
const (
	GatePending = "pending"
	GatePass    = "pass"
	GateWarn    = "warn"
	GateFail    = "fail"
)

// Lesson represents a lesson within a module. Each module is expected to
// hold exactly 4 lessons, and each lesson 7 mandatory activity slots.
type Lesson struct {
	gorm.Model
	ModuleID          uint   `json:"module_id" gorm:"index;not null"`
	CourseID          uint   `json:"course_id" gorm:"index;not null"` // denormalized for course-wide scans
	Title             string `json:"title"`
	TitleFr           string `json:"title_fr"`
	LessonNumber      int    `json:"lesson_number" gorm:"default:1"`
	SortOrder         int    `json:"sort_order" gorm:"default:0"`
	QualityGateStatus string `json:"quality_gate_status" gorm:"default:'pending'"`
	IsDeleted         bool   `gorm:"default:false"`
}
