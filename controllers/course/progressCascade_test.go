package controllers

import (
	"testing"
	"time"

	"lingua/models"
	courseModels "lingua/models/course"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func createLearner(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		Name:     "Test Learner",
		Email:    email,
		Password: "hashed",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("createLearner() failed: %v", err)
	}
	return user
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 0, percentOf(0, 0))
	assert.Equal(t, 0, percentOf(3, 0))
	assert.Equal(t, 60, percentOf(3, 5))
	assert.Equal(t, 33, percentOf(1, 3)) // rounds, never truncates
	assert.Equal(t, 67, percentOf(2, 3))
	assert.Equal(t, 100, percentOf(7, 7))
}

func TestThreeWayStatus(t *testing.T) {
	assert.Equal(t, courseModels.ProgressNotStarted, threeWayStatus(0, 7))
	assert.Equal(t, courseModels.ProgressNotStarted, threeWayStatus(0, 0))
	assert.Equal(t, courseModels.ProgressInProgress, threeWayStatus(3, 7))
	assert.Equal(t, courseModels.ProgressCompleted, threeWayStatus(7, 7))
}

func TestCascadePartialProgress(t *testing.T) {
	db := setupTestDB(t)
	user := createLearner(t, db, "learner@example.com")
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := createLesson(t, db, course.ID, module.ID, 1)

	// 5 filled slots, 3 of them completed
	var acts []courseModels.Activity
	for slot := 1; slot <= 5; slot++ {
		acts = append(acts, fillSlot(t, db, lesson, slot))
	}
	for i := 0; i < 3; i++ {
		setProgress(t, db, user.ID, acts[i], courseModels.ProgressCompleted)
	}

	cascade, err := BuildCourseCascade(db, user.ID, course.ID)
	assert.NoError(t, err)

	lessonNode := cascade.Modules[0].Lessons[0]
	assert.Equal(t, 5, lessonNode.TotalSlots, "empty slots excluded from denominator")
	assert.Equal(t, 3, lessonNode.CompletedSlots)
	assert.Equal(t, 60, lessonNode.ProgressPercent)
	assert.Equal(t, courseModels.ProgressInProgress, lessonNode.Status)

	// The 7-slot template still renders; the two unfilled slots are "empty"
	assert.Len(t, lessonNode.Slots, courseModels.RequiredSlots)
	assert.Equal(t, slotEmpty, lessonNode.Slots[5].Status)
	assert.Equal(t, slotEmpty, lessonNode.Slots[6].Status)
}

func TestCascadeEmptySlotsInvisibleToTotals(t *testing.T) {
	db := setupTestDB(t)
	user := createLearner(t, db, "learner@example.com")
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := createLesson(t, db, course.ID, module.ID, 1)

	// Only 3 of 7 slots authored, all completed: the lesson is complete
	var acts []courseModels.Activity
	for _, slot := range []int{1, 3, 6} {
		acts = append(acts, fillSlot(t, db, lesson, slot))
	}
	for _, act := range acts {
		setProgress(t, db, user.ID, act, courseModels.ProgressCompleted)
	}

	cascade, err := BuildCourseCascade(db, user.ID, course.ID)
	assert.NoError(t, err)

	lessonNode := cascade.Modules[0].Lessons[0]
	assert.Equal(t, 3, lessonNode.TotalSlots)
	assert.Equal(t, 3, lessonNode.CompletedSlots)
	assert.Equal(t, 100, lessonNode.ProgressPercent)
	assert.Equal(t, courseModels.ProgressCompleted, lessonNode.Status)

	assert.Equal(t, 3, cascade.TotalSlots)
	assert.Equal(t, 1, cascade.CompletedLessons)
}

func TestCascadeUnfilledLessonNotStarted(t *testing.T) {
	db := setupTestDB(t)
	user := createLearner(t, db, "learner@example.com")
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	createLesson(t, db, course.ID, module.ID, 1)

	cascade, err := BuildCourseCascade(db, user.ID, course.ID)
	assert.NoError(t, err)

	lessonNode := cascade.Modules[0].Lessons[0]
	assert.Equal(t, 0, lessonNode.TotalSlots)
	assert.Equal(t, 0, lessonNode.ProgressPercent)
	assert.Equal(t, courseModels.ProgressNotStarted, lessonNode.Status,
		"a lesson with no filled slots can never be completed")
}

func TestCascadeCoursePercentLessonWeighted(t *testing.T) {
	db := setupTestDB(t)
	user := createLearner(t, db, "learner@example.com")
	course := createCourse(t, db, "English A1", "Anglais A1")

	// Module 1: 3 lessons, Module 2: 1 lesson. Completing module 2 alone
	// is 1 of 4 lessons = 25%, not an average of module percentages (50%).
	mod1 := createModule(t, db, course.ID, 1)
	for l := 1; l <= 3; l++ {
		lesson := createLesson(t, db, course.ID, mod1.ID, l)
		fillSlot(t, db, lesson, 1)
	}
	mod2 := createModule(t, db, course.ID, 2)
	lesson := createLesson(t, db, course.ID, mod2.ID, 1)
	act := fillSlot(t, db, lesson, 1)
	setProgress(t, db, user.ID, act, courseModels.ProgressCompleted)

	cascade, err := BuildCourseCascade(db, user.ID, course.ID)
	assert.NoError(t, err)

	assert.Equal(t, 4, cascade.TotalLessons)
	assert.Equal(t, 1, cascade.CompletedLessons)
	assert.Equal(t, 25, cascade.ProgressPercent)
	assert.Equal(t, courseModels.ProgressInProgress, cascade.Status)
	assert.Equal(t, 1, cascade.CompletedModules)
	assert.Equal(t, 100, cascade.Modules[1].ProgressPercent)
}

func TestCascadeInProgressActivityNotCounted(t *testing.T) {
	db := setupTestDB(t)
	user := createLearner(t, db, "learner@example.com")
	course := createCourse(t, db, "English A1", "Anglais A1")
	module := createModule(t, db, course.ID, 1)
	lesson := createLesson(t, db, course.ID, module.ID, 1)

	act1 := fillSlot(t, db, lesson, 1)
	fillSlot(t, db, lesson, 2)
	setProgress(t, db, user.ID, act1, courseModels.ProgressInProgress)

	cascade, err := BuildCourseCascade(db, user.ID, course.ID)
	assert.NoError(t, err)

	lessonNode := cascade.Modules[0].Lessons[0]
	assert.Equal(t, 0, lessonNode.CompletedSlots)
	assert.Equal(t, courseModels.ProgressNotStarted, lessonNode.Status)
	assert.Equal(t, courseModels.ProgressInProgress, lessonNode.Slots[0].Status)
	assert.Equal(t, courseModels.ProgressNotStarted, lessonNode.Slots[1].Status)
}

func TestBuildCourseSummaries(t *testing.T) {
	db := setupTestDB(t)
	user := createLearner(t, db, "learner@example.com")
	courseA := createCourse(t, db, "English A1", "Anglais A1")
	courseB := createCourse(t, db, "English B2", "Anglais B2")

	done := courseModels.Enrollment{
		UserID:           user.ID,
		CourseID:         courseA.ID,
		Status:           courseModels.ProgressCompleted,
		ProgressPercent:  100,
		LessonsCompleted: 4,
		TotalLessons:     4,
		EnrolledAt:       time.Now(),
	}
	fresh := courseModels.Enrollment{
		UserID:     user.ID,
		CourseID:   courseB.ID,
		Status:     courseModels.ProgressNotStarted,
		EnrolledAt: time.Now(),
	}
	orphan := courseModels.Enrollment{
		UserID:     user.ID,
		CourseID:   9999,
		EnrolledAt: time.Now(),
	}
	for _, e := range []*courseModels.Enrollment{&done, &fresh, &orphan} {
		assert.NoError(t, db.Create(e).Error)
	}

	summaries, err := buildCourseSummaries(db, []courseModels.Enrollment{done, fresh, orphan})
	assert.NoError(t, err)

	// The enrollment with no surviving course row is skipped
	assert.Len(t, summaries, 2)
	assert.Equal(t, courseA.ID, summaries[0].CourseID)
	assert.Equal(t, courseModels.ProgressCompleted, summaries[0].Status)
	assert.Equal(t, 100, summaries[0].ProgressPercent)
	assert.Equal(t, courseB.ID, summaries[1].CourseID)
	assert.Equal(t, courseModels.ProgressNotStarted, summaries[1].Status)
	assert.Equal(t, "Anglais B2", summaries[1].TitleFr)
}

func TestCascadeMissingCourse(t *testing.T) {
	db := setupTestDB(t)
	user := createLearner(t, db, "learner@example.com")

	_, err := BuildCourseCascade(db, user.ID, 777)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCascadePercentBounds(t *testing.T) {
	db := setupTestDB(t)
	user := createLearner(t, db, "learner@example.com")
	course := buildCompleteCourse(t, db)

	var acts []courseModels.Activity
	assert.NoError(t, db.Where("course_id = ?", course.ID).Find(&acts).Error)
	for _, act := range acts {
		setProgress(t, db, user.ID, act, courseModels.ProgressCompleted)
	}

	cascade, err := BuildCourseCascade(db, user.ID, course.ID)
	assert.NoError(t, err)

	assert.Equal(t, 100, cascade.ProgressPercent)
	assert.Equal(t, courseModels.ProgressCompleted, cascade.Status)
	for _, mod := range cascade.Modules {
		assert.GreaterOrEqual(t, mod.ProgressPercent, 0)
		assert.LessOrEqual(t, mod.ProgressPercent, 100)
		for _, l := range mod.Lessons {
			assert.GreaterOrEqual(t, l.ProgressPercent, 0)
			assert.LessOrEqual(t, l.ProgressPercent, 100)
		}
	}
}
