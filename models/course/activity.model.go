package course

import "gorm.io/gorm"

// Activity statuses
const (
	ActivityDraft     = "draft"
	ActivityPublished = "published"
	ActivityArchived  = "archived"
)

// Activity occupies one slot of a lesson. Slots 1-7 are the mandatory
// template slots; anything above 7 is an unlimited "extra". A slot index
// may be occupied by at most one live activity per lesson; the partial
// unique index ignores soft-deleted rows so a deleted activity frees its
// slot for a replacement.
type Activity struct {
	gorm.Model
	LessonID         uint   `json:"lesson_id" gorm:"not null;uniqueIndex:idx_lesson_slot,where:is_deleted = false"`
	ModuleID         uint   `json:"module_id" gorm:"index;not null"`
	CourseID         uint   `json:"course_id" gorm:"index;not null"` // denormalized for cascade loads
	SlotIndex        int    `json:"slot_index" gorm:"not null;uniqueIndex:idx_lesson_slot,where:is_deleted = false"`
	SlotType         string `json:"slot_type"`                            // introduction, video_scenario, ...
	ActivityType     string `json:"activity_type" gorm:"default:'text'"`  // text, video, audio, quiz, assignment
	Title            string `json:"title"`
	TitleFr          string `json:"title_fr"`
	Content          string `json:"content" gorm:"type:text"`
	ContentFr        string `json:"content_fr" gorm:"type:text"`
	VideoURL         string `json:"video_url"`
	AudioURL         string `json:"audio_url"`
	EmbedCode        string `json:"embed_code" gorm:"type:text"`
	DownloadURL      string `json:"download_url"`
	ThumbnailURL     string `json:"thumbnail_url"`
	Status           string `json:"status" gorm:"default:'draft'"`
	EstimatedMinutes int    `json:"estimated_minutes" gorm:"default:0"`
	Points           int    `json:"points" gorm:"default:0"`
	SortOrder        int    `json:"sort_order" gorm:"default:0"`
	IsDeleted        bool   `gorm:"default:false"`
}
