package controllers

import (
	"math"
	"time"

	"lingua/database"
	"lingua/middleware"
	"lingua/models"
	courseModels "lingua/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// slotEmpty marks a template slot the author never filled. Empty slots are
// invisible to learners and count toward neither the numerator nor the
// denominator of any percentage.
const slotEmpty = "empty"

// SlotCascade is one slot of a lesson merged with the learner's progress.
type SlotCascade struct {
	SlotIndex        int    `json:"slot_index"`
	ActivityID       uint   `json:"activity_id,omitempty"`
	Type             string `json:"type"`
	Title            string `json:"title"`
	TitleFr          string `json:"title_fr"`
	Status           string `json:"status"` // empty, not_started, in_progress, completed
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// LessonCascade rolls slot completion up to one lesson.
type LessonCascade struct {
	LessonID        uint          `json:"lesson_id"`
	Title           string        `json:"title"`
	TitleFr         string        `json:"title_fr"`
	SortOrder       int           `json:"sort_order"`
	TotalSlots      int           `json:"total_slots"`
	CompletedSlots  int           `json:"completed_slots"`
	ProgressPercent int           `json:"progress_percent"`
	Status          string        `json:"status"`
	Slots           []SlotCascade `json:"slots"`
}

// ModuleCascade rolls lesson completion up to one module.
type ModuleCascade struct {
	ModuleID         uint            `json:"module_id"`
	Title            string          `json:"title"`
	TitleFr          string          `json:"title_fr"`
	SortOrder        int             `json:"sort_order"`
	TotalLessons     int             `json:"total_lessons"`
	CompletedLessons int             `json:"completed_lessons"`
	ProgressPercent  int             `json:"progress_percent"`
	Status           string          `json:"status"`
	Lessons          []LessonCascade `json:"lessons"`
}

// CourseCascade is the full progress hierarchy for a learner:
// Course -> Modules -> Lessons -> Slots. The course percentage is
// lesson-weighted across all modules, not averaged per module.
type CourseCascade struct {
	CourseID         uint            `json:"course_id"`
	Title            string          `json:"title"`
	TitleFr          string          `json:"title_fr"`
	TotalModules     int             `json:"total_modules"`
	CompletedModules int             `json:"completed_modules"`
	TotalLessons     int             `json:"total_lessons"`
	CompletedLessons int             `json:"completed_lessons"`
	TotalSlots       int             `json:"total_slots"`
	CompletedSlots   int             `json:"completed_slots"`
	ProgressPercent  int             `json:"progress_percent"`
	Status           string          `json:"status"`
	EnrolledAt       *time.Time      `json:"enrolled_at"`
	LastAccessedAt   *time.Time      `json:"last_accessed_at"`
	Modules          []ModuleCascade `json:"modules"`
}

// CourseSummary is the cheap per-enrollment view for dashboards; it reads
// the cached enrollment figures and skips the hierarchy walk.
type CourseSummary struct {
	CourseID         uint       `json:"course_id"`
	Title            string     `json:"title"`
	TitleFr          string     `json:"title_fr"`
	ThumbnailURL     string     `json:"thumbnail_url"`
	ProgressPercent  int        `json:"progress_percent"`
	LessonsCompleted int        `json:"lessons_completed"`
	TotalLessons     int        `json:"total_lessons"`
	Status           string     `json:"status"`
	EnrolledAt       time.Time  `json:"enrolled_at"`
	LastAccessedAt   *time.Time `json:"last_accessed_at"`
}

func percentOf(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func threeWayStatus(completed, total int) string {
	switch {
	case completed == 0:
		return courseModels.ProgressNotStarted
	case completed >= total:
		return courseModels.ProgressCompleted
	default:
		return courseModels.ProgressInProgress
	}
}

func progressStatusOf(raw string) string {
	switch raw {
	case courseModels.ProgressCompleted:
		return courseModels.ProgressCompleted
	case courseModels.ProgressInProgress:
		return courseModels.ProgressInProgress
	default:
		return courseModels.ProgressNotStarted
	}
}

// buildLessonSlots merges the 7-slot template with a lesson's activities
// and the learner's progress, then appends any extras (slotIndex > 7).
func buildLessonSlots(lessonActs []courseModels.Activity, progressByActivity map[uint]string) []SlotCascade {
	slots := make([]SlotCascade, 0, courseModels.RequiredSlots)

	for _, template := range courseModels.SlotTemplate {
		act := findActivityAtSlot(lessonActs, template.SlotIndex)
		if act != nil {
			slots = append(slots, SlotCascade{
				SlotIndex:        template.SlotIndex,
				ActivityID:       act.ID,
				Type:             act.SlotType,
				Title:            act.Title,
				TitleFr:          act.TitleFr,
				Status:           progressStatusOf(progressByActivity[act.ID]),
				EstimatedMinutes: act.EstimatedMinutes,
			})
			continue
		}
		slots = append(slots, SlotCascade{
			SlotIndex: template.SlotIndex,
			Type:      template.SlotType,
			Title:     template.Label,
			TitleFr:   template.LabelFr,
			Status:    slotEmpty,
		})
	}

	for _, act := range lessonActs {
		if act.SlotIndex <= courseModels.RequiredSlots {
			continue
		}
		slotType := act.SlotType
		if slotType == "" {
			slotType = "extra"
		}
		slots = append(slots, SlotCascade{
			SlotIndex:        act.SlotIndex,
			ActivityID:       act.ID,
			Type:             slotType,
			Title:            act.Title,
			TitleFr:          act.TitleFr,
			Status:           progressStatusOf(progressByActivity[act.ID]),
			EstimatedMinutes: act.EstimatedMinutes,
		})
	}

	return slots
}

// BuildCourseCascade computes the learner's full progress hierarchy for a
// course. Pure projection: it never writes. Returns
// gorm.ErrRecordNotFound when the course does not exist.
func BuildCourseCascade(db *gorm.DB, userID, courseID uint) (CourseCascade, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return CourseCascade{}, err
	}

	var enrollment courseModels.Enrollment
	hasEnrollment := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error == nil

	var moduleRows []courseModels.CourseModule
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("sort_order asc").Find(&moduleRows).Error; err != nil {
		return CourseCascade{}, err
	}

	var lessonRows []courseModels.Lesson
	if len(moduleRows) > 0 {
		moduleIDs := make([]uint, len(moduleRows))
		for i, mod := range moduleRows {
			moduleIDs[i] = mod.ID
		}
		if err := db.Where("module_id IN ? AND is_deleted = ?", moduleIDs, false).
			Order("sort_order asc").Find(&lessonRows).Error; err != nil {
			return CourseCascade{}, err
		}
	}

	var activityRows []courseModels.Activity
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("slot_index asc, id asc").Find(&activityRows).Error; err != nil {
		return CourseCascade{}, err
	}

	var progressRows []courseModels.ActivityProgress
	if err := db.Where("course_id = ? AND user_id = ? AND is_deleted = ?", courseID, userID, false).
		Find(&progressRows).Error; err != nil {
		return CourseCascade{}, err
	}

	progressByActivity := make(map[uint]string, len(progressRows))
	for _, p := range progressRows {
		progressByActivity[p.ActivityID] = p.Status
	}

	activitiesByLesson := make(map[uint][]courseModels.Activity)
	for _, act := range activityRows {
		activitiesByLesson[act.LessonID] = append(activitiesByLesson[act.LessonID], act)
	}

	lessonsByModule := make(map[uint][]courseModels.Lesson)
	for _, lesson := range lessonRows {
		lessonsByModule[lesson.ModuleID] = append(lessonsByModule[lesson.ModuleID], lesson)
	}

	cascade := CourseCascade{
		CourseID:     course.ID,
		Title:        course.Title,
		TitleFr:      course.TitleFr,
		TotalModules: len(moduleRows),
		Modules:      []ModuleCascade{},
	}
	if hasEnrollment {
		enrolledAt := enrollment.EnrolledAt
		cascade.EnrolledAt = &enrolledAt
		cascade.LastAccessedAt = enrollment.LastAccessedAt
	}

	for _, mod := range moduleRows {
		modLessons := lessonsByModule[mod.ID]
		modCompletedLessons := 0
		lessonCascades := []LessonCascade{}

		for _, lesson := range modLessons {
			slots := buildLessonSlots(activitiesByLesson[lesson.ID], progressByActivity)

			filled := 0
			completed := 0
			for _, slot := range slots {
				if slot.Status == slotEmpty {
					continue
				}
				filled++
				if slot.Status == courseModels.ProgressCompleted {
					completed++
				}
			}

			lessonStatus := threeWayStatus(completed, filled)

			cascade.TotalSlots += filled
			cascade.CompletedSlots += completed
			if lessonStatus == courseModels.ProgressCompleted {
				modCompletedLessons++
			}

			lessonCascades = append(lessonCascades, LessonCascade{
				LessonID:        lesson.ID,
				Title:           lesson.Title,
				TitleFr:         lesson.TitleFr,
				SortOrder:       lesson.SortOrder,
				TotalSlots:      filled,
				CompletedSlots:  completed,
				ProgressPercent: percentOf(completed, filled),
				Status:          lessonStatus,
				Slots:           slots,
			})
		}

		cascade.TotalLessons += len(modLessons)
		cascade.CompletedLessons += modCompletedLessons

		modStatus := threeWayStatus(modCompletedLessons, len(modLessons))
		if modStatus == courseModels.ProgressCompleted {
			cascade.CompletedModules++
		}

		cascade.Modules = append(cascade.Modules, ModuleCascade{
			ModuleID:         mod.ID,
			Title:            mod.Title,
			TitleFr:          mod.TitleFr,
			SortOrder:        mod.SortOrder,
			TotalLessons:     len(modLessons),
			CompletedLessons: modCompletedLessons,
			ProgressPercent:  percentOf(modCompletedLessons, len(modLessons)),
			Status:           modStatus,
			Lessons:          lessonCascades,
		})
	}

	cascade.ProgressPercent = percentOf(cascade.CompletedLessons, cascade.TotalLessons)
	cascade.Status = threeWayStatus(cascade.CompletedLessons, cascade.TotalLessons)

	return cascade, nil
}

// GetCourseCascade returns the learner's full progress hierarchy for a course
func GetCourseCascade(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	cascade, err := BuildCourseCascade(database.Database.Db, userID, uint(courseID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build progress cascade!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress cascade fetched successfully!", cascade)
}

// buildCourseSummaries joins enrollments with their courses using a single
// batched lookup. Enrollments whose course row is gone are skipped.
func buildCourseSummaries(db *gorm.DB, enrollments []courseModels.Enrollment) ([]CourseSummary, error) {
	summaries := make([]CourseSummary, 0, len(enrollments))
	if len(enrollments) == 0 {
		return summaries, nil
	}

	courseIDs := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}

	var courses []courseModels.Course
	if err := db.Where("id IN ?", courseIDs).Find(&courses).Error; err != nil {
		return nil, err
	}

	coursesByID := make(map[uint]courseModels.Course, len(courses))
	for _, course := range courses {
		coursesByID[course.ID] = course
	}

	for _, e := range enrollments {
		course, ok := coursesByID[e.CourseID]
		if !ok {
			continue
		}

		status := courseModels.ProgressNotStarted
		if e.Status == courseModels.ProgressCompleted {
			status = courseModels.ProgressCompleted
		} else if e.ProgressPercent > 0 {
			status = courseModels.ProgressInProgress
		}

		summaries = append(summaries, CourseSummary{
			CourseID:         e.CourseID,
			Title:            course.Title,
			TitleFr:          course.TitleFr,
			ThumbnailURL:     course.ThumbnailURL,
			ProgressPercent:  e.ProgressPercent,
			LessonsCompleted: e.LessonsCompleted,
			TotalLessons:     e.TotalLessons,
			Status:           status,
			EnrolledAt:       e.EnrolledAt,
			LastAccessedAt:   e.LastAccessedAt,
		})
	}

	return summaries, nil
}

// GetMyCoursesSummary returns the learner's enrolled courses with cached
// enrollment-level progress, without walking the hierarchy
func GetMyCoursesSummary(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("enrolled_at asc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	summaries, err := buildCourseSummaries(database.Database.Db, enrollments)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses summary fetched successfully!", summaries)
}
