package course

import "gorm.io/gorm"

// CourseModule represents a section within a course. The curriculum
// template expects exactly 4 modules per course.
type CourseModule struct {
	gorm.Model
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	Title         string `json:"title"`
	TitleFr       string `json:"title_fr"`
	ModuleNumber  int    `json:"module_number" gorm:"default:1"`
	SortOrder     int    `json:"sort_order" gorm:"default:0"`
	ThumbnailURL  string `json:"thumbnail_url"`
	BadgeImageURL string `json:"badge_image_url"`
	IsDeleted     bool   `gorm:"default:false"`
}
