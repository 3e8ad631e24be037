package controllers

import (
	"errors"
	"fmt"

	"lingua/database"
	"lingua/middleware"
	"lingua/models"
	courseModels "lingua/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LessonReport summarizes one lesson inside the course quality report.
// This pass only checks slot presence; content sufficiency is the lesson
// validator's concern.
type LessonReport struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	TitleFr         string `json:"title_fr"`
	TotalSlots      int    `json:"total_slots"`
	RequiredPresent int    `json:"required_present"`
	MissingRequired int    `json:"missing_required"`
	HasBilingual    bool   `json:"has_bilingual"`
}

// ModuleReport carries a module's scoped findings plus its lessons.
type ModuleReport struct {
	ID           uint           `json:"id"`
	Title        string         `json:"title"`
	TitleFr      string         `json:"title_fr"`
	TotalLessons int            `json:"total_lessons"`
	HasThumbnail bool           `json:"has_thumbnail"`
	HasBilingual bool           `json:"has_bilingual"`
	Errors       []string       `json:"errors"`
	Warnings     []string       `json:"warnings"`
	Lessons      []LessonReport `json:"lessons"`
}

// CourseQualityReport rolls every module and lesson finding into one
// course-level report. Errors and warnings are the flattened union of all
// scoped findings, order-stable across calls.
type CourseQualityReport struct {
	CourseID     uint           `json:"course_id"`
	CourseTitle  string         `json:"course_title"`
	Valid        bool           `json:"valid"`
	TotalModules int            `json:"total_modules"`
	TotalLessons int            `json:"total_lessons"`
	Errors       []string       `json:"errors"`
	Warnings     []string       `json:"warnings"`
	Modules      []ModuleReport `json:"modules"`
}

// IsSlotFilled reports whether an activity occupies a mandatory slot.
func IsSlotFilled(act courseModels.Activity) bool {
	return act.SlotIndex >= 1 && act.SlotIndex <= courseModels.RequiredSlots
}

// BuildCourseQualityReport walks Course -> Modules -> Lessons enforcing the
// structural template (4 modules, 4 lessons each, 7 slots per lesson,
// bilingual titles, thumbnails). A missing course yields an invalid report
// rather than an error; the gate is informational during authoring.
func BuildCourseQualityReport(db *gorm.DB, courseID uint) (CourseQualityReport, error) {
	report := CourseQualityReport{
		CourseID: courseID,
		Errors:   []string{},
		Warnings: []string{},
		Modules:  []ModuleReport{},
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			report.Errors = append(report.Errors, "Course not found")
			return report, nil
		}
		return report, err
	}
	report.CourseTitle = course.Title

	var moduleList []courseModels.CourseModule
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("sort_order asc").Find(&moduleList).Error; err != nil {
		return report, err
	}

	report.TotalModules = len(moduleList)

	if len(moduleList) != courseModels.RequiredModules {
		report.Errors = append(report.Errors,
			fmt.Sprintf("Expected %d modules, found %d", courseModels.RequiredModules, len(moduleList)))
	}
	if course.ThumbnailURL == "" {
		report.Warnings = append(report.Warnings, "Course thumbnail missing")
	}
	if course.TitleFr == "" {
		report.Warnings = append(report.Warnings, "Course French title missing")
	}
	if course.DescriptionFr == "" {
		report.Warnings = append(report.Warnings, "Course French description missing")
	}

	for _, mod := range moduleList {
		var moduleLessons []courseModels.Lesson
		if err := db.Where("module_id = ? AND is_deleted = ?", mod.ID, false).
			Order("sort_order asc").Find(&moduleLessons).Error; err != nil {
			return report, err
		}

		moduleErrors := []string{}
		moduleWarnings := []string{}

		if len(moduleLessons) != courseModels.RequiredLessonsPerModule {
			moduleErrors = append(moduleErrors,
				fmt.Sprintf("Module %q: expected %d lessons, found %d", mod.Title, courseModels.RequiredLessonsPerModule, len(moduleLessons)))
		}
		if mod.ThumbnailURL == "" {
			moduleWarnings = append(moduleWarnings, fmt.Sprintf("Module %q: thumbnail missing", mod.Title))
		}
		if mod.TitleFr == "" {
			moduleWarnings = append(moduleWarnings, fmt.Sprintf("Module %q: French title missing", mod.Title))
		}

		lessonReports := []LessonReport{}

		for _, lesson := range moduleLessons {
			var lessonActs []courseModels.Activity
			if err := db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).
				Order("slot_index asc, id asc").Find(&lessonActs).Error; err != nil {
				return report, err
			}

			requiredPresent := 0
			for _, act := range lessonActs {
				if IsSlotFilled(act) {
					requiredPresent++
				}
			}
			missingCount := courseModels.RequiredSlots - requiredPresent

			if missingCount > 0 {
				moduleErrors = append(moduleErrors,
					fmt.Sprintf("Lesson %q: missing %d required slots", lesson.Title, missingCount))
			}

			lessonReports = append(lessonReports, LessonReport{
				ID:              lesson.ID,
				Title:           lesson.Title,
				TitleFr:         lesson.TitleFr,
				TotalSlots:      len(lessonActs),
				RequiredPresent: requiredPresent,
				MissingRequired: missingCount,
				HasBilingual:    lesson.Title != "" && lesson.TitleFr != "",
			})
		}

		report.Errors = append(report.Errors, moduleErrors...)
		report.Warnings = append(report.Warnings, moduleWarnings...)
		report.TotalLessons += len(moduleLessons)

		report.Modules = append(report.Modules, ModuleReport{
			ID:           mod.ID,
			Title:        mod.Title,
			TitleFr:      mod.TitleFr,
			TotalLessons: len(moduleLessons),
			HasThumbnail: mod.ThumbnailURL != "",
			HasBilingual: mod.Title != "" && mod.TitleFr != "",
			Errors:       moduleErrors,
			Warnings:     moduleWarnings,
			Lessons:      lessonReports,
		})
	}

	report.Valid = len(report.Errors) == 0

	return report, nil
}

// GetCourseQualityReport returns the full quality-gate report for a course
func GetCourseQualityReport(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	report, err := BuildCourseQualityReport(database.Database.Db, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build quality report!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quality report built successfully!", report)
}
