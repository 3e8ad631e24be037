package controllers

import (
	"testing"

	courseModels "lingua/models/course"

	"github.com/stretchr/testify/assert"
)

func TestRefreshGateLabels(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)

	complete := buildCompleteLesson(t, db, course.ID, module.ID, 1)
	partial := createLesson(t, db, course.ID, module.ID, 2)
	fillSlot(t, db, partial, 1)

	refreshed := RefreshGateLabels(db)
	assert.Equal(t, 2, refreshed)

	var reloadedComplete courseModels.Lesson
	assert.NoError(t, db.First(&reloadedComplete, complete.ID).Error)
	assert.Equal(t, courseModels.GatePass, reloadedComplete.QualityGateStatus)
	var reloadedPartial courseModels.Lesson
	assert.NoError(t, db.First(&reloadedPartial, partial.ID).Error)
	assert.Equal(t, courseModels.GateFail, reloadedPartial.QualityGateStatus)

	// Unchanged labels are not rewritten
	assert.Equal(t, 0, RefreshGateLabels(db))
}

func TestRefreshGateLabelsSkipsPublishedCourses(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := createLesson(t, db, course.ID, module.ID, 1)

	assert.NoError(t, db.Model(&courseModels.Course{}).Where("id = ?", course.ID).
		Update("status", courseModels.CoursePublished).Error)

	assert.Equal(t, 0, RefreshGateLabels(db))

	var reloaded courseModels.Lesson
	assert.NoError(t, db.First(&reloaded, lesson.ID).Error)
	assert.Equal(t, "", reloaded.QualityGateStatus)
}
