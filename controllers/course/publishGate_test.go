package controllers

import (
	"testing"

	courseModels "lingua/models/course"

	"github.com/stretchr/testify/assert"
)

func TestPublishGateCompleteCourse(t *testing.T) {
	db := setupTestDB(t)
	course := buildCompleteCourse(t, db)

	check, err := RunPublishGate(db, course.ID)
	assert.NoError(t, err)

	assert.True(t, check.CanPublish)
	assert.Equal(t, "All checks passed", check.Reason)
	assert.Empty(t, check.Errors)

	var reloaded courseModels.Course
	assert.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.Equal(t, courseModels.CoursePublished, reloaded.Status)
	assert.NotNil(t, reloaded.PublishedAt)
}

func TestPublishGateTooFewModules(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	for m := 1; m <= 3; m++ {
		module := createModule(t, db, course.ID, m)
		for l := 1; l <= courseModels.RequiredLessonsPerModule; l++ {
			buildCompleteLesson(t, db, course.ID, module.ID, l)
		}
	}

	check, err := RunPublishGate(db, course.ID)
	assert.NoError(t, err)

	assert.False(t, check.CanPublish)
	assert.Equal(t, "Critical errors found", check.Reason)
	assert.Contains(t, check.Errors, "Need 4 modules, have 3")

	// Status must not move on a failed gate
	var reloaded courseModels.Course
	assert.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.Equal(t, courseModels.CourseDraft, reloaded.Status)
	assert.Nil(t, reloaded.PublishedAt)
}

func TestPublishGateLessonAndSlotBlockers(t *testing.T) {
	db := setupTestDB(t)
	course := buildCompleteCourse(t, db)

	// Drop one lesson and one slot elsewhere
	var lessons []courseModels.Lesson
	assert.NoError(t, db.Where("course_id = ?", course.ID).Order("id asc").Find(&lessons).Error)
	assert.NoError(t, db.Model(&courseModels.Lesson{}).Where("id = ?", lessons[0].ID).
		Update("is_deleted", true).Error)
	assert.NoError(t, db.Model(&courseModels.Activity{}).
		Where("lesson_id = ? AND slot_index = ?", lessons[4].ID, 3).
		Update("is_deleted", true).Error)

	check, err := RunPublishGate(db, course.ID)
	assert.NoError(t, err)

	assert.False(t, check.CanPublish)
	assert.Contains(t, check.Errors, `Module "Module 1": needs 4 lessons, has 3`)
	assert.Contains(t, check.Errors, `Lesson "Lesson 1": needs 7 slots, has 6`)
}

func TestPublishGateFrenchTitleBlocks(t *testing.T) {
	db := setupTestDB(t)
	course := buildCompleteCourse(t, db)
	assert.NoError(t, db.Model(&courseModels.Course{}).Where("id = ?", course.ID).
		Update("title_fr", "").Error)

	check, err := RunPublishGate(db, course.ID)
	assert.NoError(t, err)

	assert.False(t, check.CanPublish)
	assert.Equal(t, []string{"Course French title missing"}, check.Errors)
}

func TestPublishGateMissingCourse(t *testing.T) {
	db := setupTestDB(t)

	check, err := RunPublishGate(db, 4242)
	assert.NoError(t, err)

	assert.False(t, check.CanPublish)
	assert.Equal(t, "Course not found", check.Reason)
}

func TestPublishGateSecondAttemptLoses(t *testing.T) {
	db := setupTestDB(t)
	course := buildCompleteCourse(t, db)

	first, err := RunPublishGate(db, course.ID)
	assert.NoError(t, err)
	assert.True(t, first.CanPublish)

	second, err := RunPublishGate(db, course.ID)
	assert.NoError(t, err)
	assert.False(t, second.CanPublish)
	assert.Equal(t, "Course is not in draft state", second.Reason)

	// Only one published_at stamp survives
	var reloaded courseModels.Course
	assert.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.Equal(t, courseModels.CoursePublished, reloaded.Status)
}
