package controllers

import (
	"testing"

	courseModels "lingua/models/course"

	"github.com/stretchr/testify/assert"
)

func TestQualityReportCompleteCourse(t *testing.T) {
	db := setupTestDB(t)
	course := buildCompleteCourse(t, db)

	report, err := BuildCourseQualityReport(db, course.ID)
	assert.NoError(t, err)

	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.Equal(t, courseModels.RequiredModules, report.TotalModules)
	assert.Equal(t, courseModels.RequiredModules*courseModels.RequiredLessonsPerModule, report.TotalLessons)
	assert.Len(t, report.Modules, courseModels.RequiredModules)
}

func TestQualityReportWrongModuleCount(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "Anglais A1")
	for m := 1; m <= 3; m++ {
		module := createModule(t, db, course.ID, m)
		for l := 1; l <= courseModels.RequiredLessonsPerModule; l++ {
			buildCompleteLesson(t, db, course.ID, module.ID, l)
		}
	}

	report, err := BuildCourseQualityReport(db, course.ID)
	assert.NoError(t, err)

	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors, "Expected 4 modules, found 3")
}

func TestQualityReportLessonMissingSlots(t *testing.T) {
	db := setupTestDB(t)
	course := buildCompleteCourse(t, db)

	// Remove two slots from the first lesson
	var lesson courseModels.Lesson
	assert.NoError(t, db.Where("course_id = ?", course.ID).Order("id asc").First(&lesson).Error)
	assert.NoError(t, db.Model(&courseModels.Activity{}).
		Where("lesson_id = ? AND slot_index IN ?", lesson.ID, []int{4, 7}).
		Update("is_deleted", true).Error)

	report, err := BuildCourseQualityReport(db, course.ID)
	assert.NoError(t, err)

	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors, `Lesson "Lesson 1": missing 2 required slots`)

	// The finding is scoped to the owning module as well
	assert.Contains(t, report.Modules[0].Errors, `Lesson "Lesson 1": missing 2 required slots`)
	assert.Equal(t, 5, report.Modules[0].Lessons[0].RequiredPresent)
	assert.Equal(t, 2, report.Modules[0].Lessons[0].MissingRequired)
}

func TestQualityReportWarningsNeverBlock(t *testing.T) {
	db := setupTestDB(t)
	course := buildCompleteCourse(t, db)

	// Strip French title and thumbnails; structure untouched
	assert.NoError(t, db.Model(&courseModels.Course{}).Where("id = ?", course.ID).
		Updates(map[string]interface{}{"title_fr": "", "thumbnail_url": ""}).Error)
	assert.NoError(t, db.Model(&courseModels.CourseModule{}).Where("course_id = ?", course.ID).
		Update("thumbnail_url", "").Error)

	report, err := BuildCourseQualityReport(db, course.ID)
	assert.NoError(t, err)

	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.Contains(t, report.Warnings, "Course French title missing")
	assert.Contains(t, report.Warnings, "Course thumbnail missing")
	assert.Contains(t, report.Warnings, `Module "Module 1": thumbnail missing`)

	// Errors and warnings never share entries
	for _, w := range report.Warnings {
		assert.NotContains(t, report.Errors, w)
	}
}

func TestQualityReportMissingCourse(t *testing.T) {
	db := setupTestDB(t)

	report, err := BuildCourseQualityReport(db, 9999)
	assert.NoError(t, err, "a missing course is a report, not an error")

	assert.False(t, report.Valid)
	assert.Equal(t, []string{"Course not found"}, report.Errors)
	assert.Empty(t, report.Warnings)
	assert.Empty(t, report.Modules)
}

func TestQualityReportOrderStable(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "English A1", "")
	createModule(t, db, course.ID, 1)

	first, err := BuildCourseQualityReport(db, course.ID)
	assert.NoError(t, err)
	second, err := BuildCourseQualityReport(db, course.ID)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
