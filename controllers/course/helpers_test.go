package controllers

import (
	"fmt"
	"testing"

	"lingua/database"
	courseModels "lingua/models/course"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database keeps every connection of this test on
	// the same schema without leaking into other tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("setupTestDB() failed: %v", err)
	}

	database.RunMigrations(db)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createCourse(t *testing.T, db *gorm.DB, title, titleFr string) courseModels.Course {
	t.Helper()
	course := courseModels.Course{
		Title:        title,
		TitleFr:      titleFr,
		Description:  "desc",
		ThumbnailURL: "https://cdn.example.com/c.png",
		Status:       courseModels.CourseDraft,
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("createCourse() failed: %v", err)
	}
	return course
}

func createModule(t *testing.T, db *gorm.DB, courseID uint, number int) courseModels.CourseModule {
	t.Helper()
	module := courseModels.CourseModule{
		CourseID:     courseID,
		Title:        fmt.Sprintf("Module %d", number),
		TitleFr:      fmt.Sprintf("Module %d FR", number),
		ModuleNumber: number,
		SortOrder:    number,
		ThumbnailURL: "https://cdn.example.com/m.png",
	}
	if err := db.Create(&module).Error; err != nil {
		t.Fatalf("createModule() failed: %v", err)
	}
	return module
}

func createLesson(t *testing.T, db *gorm.DB, courseID, moduleID uint, number int) courseModels.Lesson {
	t.Helper()
	lesson := courseModels.Lesson{
		ModuleID:     moduleID,
		CourseID:     courseID,
		Title:        fmt.Sprintf("Lesson %d", number),
		TitleFr:      fmt.Sprintf("Lesson %d FR", number),
		LessonNumber: number,
		SortOrder:    number,
	}
	if err := db.Create(&lesson).Error; err != nil {
		t.Fatalf("createLesson() failed: %v", err)
	}
	return lesson
}

// fillSlot creates an activity at a template slot with bilingual titles
// and content matching the slot type.
func fillSlot(t *testing.T, db *gorm.DB, lesson courseModels.Lesson, slotIndex int) courseModels.Activity {
	t.Helper()

	entry, ok := courseModels.SlotTemplateFor(slotIndex)
	if !ok {
		entry = courseModels.SlotTemplateEntry{SlotIndex: slotIndex, SlotType: "extra", ActivityType: "text"}
	}

	act := courseModels.Activity{
		LessonID:     lesson.ID,
		ModuleID:     lesson.ModuleID,
		CourseID:     lesson.CourseID,
		SlotIndex:    slotIndex,
		SlotType:     entry.SlotType,
		ActivityType: entry.ActivityType,
		Title:        fmt.Sprintf("Activity %d", slotIndex),
		TitleFr:      fmt.Sprintf("Activity %d FR", slotIndex),
		Status:       courseModels.ActivityDraft,
	}
	switch entry.ActivityType {
	case "video":
		act.VideoURL = "https://cdn.example.com/v.mp4"
	case "audio":
		act.AudioURL = "https://cdn.example.com/a.mp3"
	case "quiz":
		// Content sufficiency for the quiz slot comes from questions.
	default:
		act.Content = "Lesson content body"
	}

	if err := db.Create(&act).Error; err != nil {
		t.Fatalf("fillSlot() failed: %v", err)
	}
	return act
}

func addQuizQuestions(t *testing.T, db *gorm.DB, lessonID uint, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		q := courseModels.QuizQuestion{
			LessonID:  lessonID,
			Question:  fmt.Sprintf("Question %d", i+1),
			Options:   `["a","b","c","d"]`,
			Answer:    0,
			SortOrder: i + 1,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("addQuizQuestions() failed: %v", err)
		}
	}
}

// buildCompleteLesson fills all 7 template slots and seeds enough quiz
// questions for the quiz slot to count as content-sufficient.
func buildCompleteLesson(t *testing.T, db *gorm.DB, courseID, moduleID uint, number int) courseModels.Lesson {
	t.Helper()
	lesson := createLesson(t, db, courseID, moduleID, number)
	for slot := 1; slot <= courseModels.RequiredSlots; slot++ {
		fillSlot(t, db, lesson, slot)
	}
	addQuizQuestions(t, db, lesson.ID, courseModels.MinQuizQuestions)
	return lesson
}

// buildCompleteCourse creates a draft course that satisfies every blocking
// publish check: 4 modules x 4 lessons x 7 slots, French title included.
func buildCompleteCourse(t *testing.T, db *gorm.DB) courseModels.Course {
	t.Helper()
	course := createCourse(t, db, "Business English", "Anglais des affaires")
	for m := 1; m <= courseModels.RequiredModules; m++ {
		module := createModule(t, db, course.ID, m)
		for l := 1; l <= courseModels.RequiredLessonsPerModule; l++ {
			buildCompleteLesson(t, db, course.ID, module.ID, l)
		}
	}
	return course
}

func setProgress(t *testing.T, db *gorm.DB, userID uint, act courseModels.Activity, status string) {
	t.Helper()
	progress := courseModels.ActivityProgress{
		UserID:     userID,
		ActivityID: act.ID,
		LessonID:   act.LessonID,
		CourseID:   act.CourseID,
		Status:     status,
	}
	if err := db.Create(&progress).Error; err != nil {
		t.Fatalf("setProgress() failed: %v", err)
	}
}
