package course

import (
	"time"

	"gorm.io/gorm"
)

// Course statuses. A course only moves DRAFT -> PUBLISHED through the
// publish gate; archiving is independent of publishing.
const (
	CourseDraft     = "DRAFT"
	CoursePublished = "PUBLISHED"
	CourseArchived  = "ARCHIVED"
)

// Course represents a bilingual learning course
type Course struct {
	gorm.Model
	Title         string     `json:"title"`
	TitleFr       string     `json:"title_fr"`
	Description   string     `json:"description"`
	DescriptionFr string     `json:"description_fr"`
	Status        string     `json:"status" gorm:"default:'DRAFT'"`
	ThumbnailURL  string     `json:"thumbnail_url"`
	PublishedAt   *time.Time `json:"published_at"`
	IsDeleted     bool       `gorm:"default:false"`
}
