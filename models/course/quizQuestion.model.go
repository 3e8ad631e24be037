package course

import "gorm.io/gorm"

// QuizQuestion belongs to a lesson's quiz slot. The quality gate requires
// at least 6 questions before the quiz slot counts as content-sufficient.
type QuizQuestion struct {
	gorm.Model
	LessonID   uint   `json:"lesson_id" gorm:"index;not null"`
	Question   string `json:"question" gorm:"type:text"`
	QuestionFr string `json:"question_fr" gorm:"type:text"`
	Options    string `json:"options" gorm:"type:text"` // JSON array of options
	OptionsFr  string `json:"options_fr" gorm:"type:text"`
	Answer     int    `json:"answer" gorm:"default:0"` // index into Options
	SortOrder  int    `json:"sort_order" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}
