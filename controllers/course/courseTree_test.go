package controllers

import (
	"testing"

	courseModels "lingua/models/course"

	"github.com/stretchr/testify/assert"
)

func TestCourseTreeIndicators(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)

	complete := buildCompleteLesson(t, db, course.ID, module.ID, 1)
	partial := createLesson(t, db, course.ID, module.ID, 2)
	for _, slot := range []int{1, 2, 3} {
		fillSlot(t, db, partial, slot)
	}
	fillSlot(t, db, partial, 9) // extra

	tree, err := BuildCourseTree(db, course.ID)
	assert.NoError(t, err)
	assert.Len(t, tree, 1)

	mod := tree[0]
	assert.Equal(t, 2, mod.TotalLessons)
	assert.Equal(t, 1, mod.CompleteLessons)
	assert.Equal(t, "2 lessons", mod.LessonsIndicator)
	assert.Equal(t, "1/2 complete", mod.ProgressIndicator)

	completeNode := mod.Lessons[0]
	assert.Equal(t, complete.ID, completeNode.ID)
	assert.True(t, completeNode.IsComplete)
	assert.Equal(t, "7/7 slots", completeNode.SlotsIndicator)
	assert.Equal(t, courseModels.MinQuizQuestions, completeNode.QuizQuestionCount)

	partialNode := mod.Lessons[1]
	assert.False(t, partialNode.IsComplete)
	assert.Equal(t, "3/7 slots", partialNode.SlotsIndicator)
	assert.Equal(t, 3, partialNode.RequiredPresent)
	assert.Equal(t, 1, partialNode.ExtrasCount)
	assert.Equal(t, 4, partialNode.TotalSlots)
}

func TestCourseTreeSlotLabels(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := createLesson(t, db, course.ID, module.ID, 1)
	fillSlot(t, db, lesson, 6)

	tree, err := BuildCourseTree(db, course.ID)
	assert.NoError(t, err)

	slots := tree[0].Lessons[0].Slots
	assert.Len(t, slots, 1)
	assert.Equal(t, "Quiz", slots[0].SlotLabel)
	assert.Equal(t, courseModels.SlotQuiz, slots[0].SlotType)
	assert.True(t, slots[0].HasBilingual)
}

func TestCourseTreeGateLabelDefaultsPending(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := createLesson(t, db, course.ID, module.ID, 1)
	assert.NoError(t, db.Model(&courseModels.Lesson{}).Where("id = ?", lesson.ID).
		Update("quality_gate_status", "").Error)

	tree, err := BuildCourseTree(db, course.ID)
	assert.NoError(t, err)
	assert.Equal(t, courseModels.GatePending, tree[0].Lessons[0].QualityGateStatus)
}

func TestGateLabelRefreshFlow(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := buildCompleteLesson(t, db, course.ID, module.ID, 1)

	validation, err := BuildLessonValidation(db, lesson.ID)
	assert.NoError(t, err)
	assert.Equal(t, courseModels.GatePass, GateLabelFor(validation))

	// Remove a slot: the recomputed label degrades to fail
	assert.NoError(t, db.Model(&courseModels.Activity{}).
		Where("lesson_id = ? AND slot_index = ?", lesson.ID, 4).
		Update("is_deleted", true).Error)

	validation, err = BuildLessonValidation(db, lesson.ID)
	assert.NoError(t, err)
	assert.Equal(t, courseModels.GateFail, GateLabelFor(validation))
}
