package controllers

import (
	"testing"

	courseModels "lingua/models/course"

	"github.com/stretchr/testify/assert"
)

func TestLessonValidationAllSlotsFilled(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := buildCompleteLesson(t, db, course.ID, module.ID, 1)

	validation, err := BuildLessonValidation(db, lesson.ID)
	assert.NoError(t, err)

	assert.True(t, validation.Valid)
	assert.Empty(t, validation.Errors)
	assert.Empty(t, validation.Warnings)
	assert.Equal(t, courseModels.RequiredSlots, validation.PresentRequired)
	assert.Equal(t, courseModels.RequiredSlots, validation.TotalSlots)
	assert.Empty(t, validation.MissingSlots)
	assert.Equal(t, courseModels.MinQuizQuestions, validation.QuizQuestionCount)
	assert.Len(t, validation.SlotStatus, courseModels.RequiredSlots)
}

func TestLessonValidationMissingSlot(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := createLesson(t, db, course.ID, module.ID, 1)

	// Fill everything except the quiz slot
	for slot := 1; slot <= courseModels.RequiredSlots; slot++ {
		if slot == 6 {
			continue
		}
		fillSlot(t, db, lesson, slot)
	}

	validation, err := BuildLessonValidation(db, lesson.ID)
	assert.NoError(t, err)

	assert.False(t, validation.Valid)
	assert.Equal(t, 6, validation.PresentRequired)
	assert.Equal(t, []int{6}, validation.MissingSlots)
	assert.Contains(t, validation.Errors, "Slot 6 (Quiz) is missing")
}

func TestLessonValidationWrongSlotType(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := buildCompleteLesson(t, db, course.ID, module.ID, 1)

	// Swap slot 2's type to something off-template
	assert.NoError(t, db.Model(&courseModels.Activity{}).
		Where("lesson_id = ? AND slot_index = ?", lesson.ID, 2).
		Update("slot_type", courseModels.SlotGrammarPoint).Error)

	validation, err := BuildLessonValidation(db, lesson.ID)
	assert.NoError(t, err)

	assert.False(t, validation.Valid)
	assert.Contains(t, validation.Errors,
		`Slot 2: expected type "video_scenario", got "grammar_point"`)
}

func TestLessonValidationMissingBilingualTitleIsWarning(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := buildCompleteLesson(t, db, course.ID, module.ID, 1)

	// Strip every French title; structure stays intact
	assert.NoError(t, db.Model(&courseModels.Activity{}).
		Where("lesson_id = ?", lesson.ID).
		Update("title_fr", "").Error)

	validation, err := BuildLessonValidation(db, lesson.ID)
	assert.NoError(t, err)

	assert.True(t, validation.Valid, "bilingual gaps must not block")
	assert.Empty(t, validation.Errors)
	assert.Len(t, validation.Warnings, courseModels.RequiredSlots)
	assert.Contains(t, validation.Warnings, "Slot 1 (Intro / Hook): missing bilingual title")
}

func TestLessonValidationQuizNeedsSixQuestions(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := createLesson(t, db, course.ID, module.ID, 1)
	for slot := 1; slot <= courseModels.RequiredSlots; slot++ {
		fillSlot(t, db, lesson, slot)
	}
	addQuizQuestions(t, db, lesson.ID, 4)

	validation, err := BuildLessonValidation(db, lesson.ID)
	assert.NoError(t, err)

	assert.False(t, validation.Valid)
	assert.Equal(t, 4, validation.QuizQuestionCount)
	assert.Contains(t, validation.Errors, "Slot 6 (Quiz): needs >=6 questions, has 4")
}

func TestLessonValidationCountsExtras(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := buildCompleteLesson(t, db, course.ID, module.ID, 1)
	fillSlot(t, db, lesson, 8)
	fillSlot(t, db, lesson, 9)

	validation, err := BuildLessonValidation(db, lesson.ID)
	assert.NoError(t, err)

	assert.True(t, validation.Valid)
	assert.Equal(t, 2, validation.Extras)
	assert.Equal(t, 9, validation.TotalSlots)
	// Extras never appear in the per-slot template status
	assert.Len(t, validation.SlotStatus, courseModels.RequiredSlots)
}

func TestLessonValidationIdempotent(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := createLesson(t, db, course.ID, module.ID, 1)
	fillSlot(t, db, lesson, 1)
	fillSlot(t, db, lesson, 3)

	first, err := BuildLessonValidation(db, lesson.ID)
	assert.NoError(t, err)
	second, err := BuildLessonValidation(db, lesson.ID)
	assert.NoError(t, err)

	assert.Equal(t, first, second, "validation is a pure read")
}

func TestGateLabelFor(t *testing.T) {
	assert.Equal(t, courseModels.GateFail, GateLabelFor(LessonValidation{Errors: []string{"x"}}))
	assert.Equal(t, courseModels.GateWarn, GateLabelFor(LessonValidation{Warnings: []string{"y"}}))
	assert.Equal(t, courseModels.GateFail, GateLabelFor(LessonValidation{Errors: []string{"x"}, Warnings: []string{"y"}}))
	assert.Equal(t, courseModels.GatePass, GateLabelFor(LessonValidation{}))
}
