package controllers

import (
	"testing"

	courseModels "lingua/models/course"

	"github.com/stretchr/testify/assert"
)

func TestSlotExclusiveWhileLive(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := createLesson(t, db, course.ID, module.ID, 1)
	fillSlot(t, db, lesson, 3)

	duplicate := courseModels.Activity{
		LessonID:     lesson.ID,
		ModuleID:     module.ID,
		CourseID:     course.ID,
		SlotIndex:    3,
		SlotType:     courseModels.SlotGrammarPoint,
		ActivityType: "text",
		Title:        "Second occupant",
		Status:       courseModels.ActivityDraft,
	}
	assert.Error(t, db.Create(&duplicate).Error, "a live slot can hold only one activity")
}

func TestSlotFreedAfterDelete(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := createLesson(t, db, course.ID, module.ID, 1)
	original := fillSlot(t, db, lesson, 3)

	// Delete the occupant the way the admin handler does
	assert.NoError(t, db.Model(&courseModels.Activity{}).
		Where("id = ?", original.ID).Update("is_deleted", true).Error)

	// The occupancy check sees the slot as free...
	var occupied int64
	assert.NoError(t, db.Model(&courseModels.Activity{}).
		Where("lesson_id = ? AND slot_index = ? AND is_deleted = ?", lesson.ID, 3, false).
		Count(&occupied).Error)
	assert.Equal(t, int64(0), occupied)

	// ...and a replacement at the same slot must actually insert
	replacement := courseModels.Activity{
		LessonID:     lesson.ID,
		ModuleID:     module.ID,
		CourseID:     course.ID,
		SlotIndex:    3,
		SlotType:     courseModels.SlotGrammarPoint,
		ActivityType: "text",
		Title:        "Replacement",
		TitleFr:      "Remplacement",
		Content:      "New grammar point",
		Status:       courseModels.ActivityDraft,
	}
	assert.NoError(t, db.Create(&replacement).Error)

	validation, err := BuildLessonValidation(db, lesson.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, validation.PresentRequired)
	assert.NotContains(t, validation.MissingSlots, 3)
}
