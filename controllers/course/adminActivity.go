package controllers

import (
	"lingua/database"
	"lingua/middleware"
	"lingua/models"
	courseModels "lingua/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateActivity creates an activity in a lesson slot. A slot index
// may hold at most one activity per lesson, so an occupied slot is a 409.
func AdminCreateActivity(c *fiber.Ctx) error {
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

	lessonID := c.Locals("lessonID").(int)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedActivity").(*struct {
		SlotIndex        int    `json:"slot_index"`
		SlotType         string `json:"slot_type"`
		ActivityType     string `json:"activity_type"`
		Title            string `json:"title"`
		TitleFr          string `json:"title_fr"`
		Content          string `json:"content"`
		ContentFr        string `json:"content_fr"`
		VideoURL         string `json:"video_url"`
		AudioURL         string `json:"audio_url"`
		EmbedCode        string `json:"embed_code"`
		DownloadURL      string `json:"download_url"`
		ThumbnailURL     string `json:"thumbnail_url"`
		EstimatedMinutes int    `json:"estimated_minutes"`
		Points           int    `json:"points"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if the slot is already occupied
	var occupied int64
	database.Database.Db.Model(&courseModels.Activity{}).
		Where("lesson_id = ? AND slot_index = ? AND is_deleted = ?", lessonID, reqData.SlotIndex, false).
		Count(&occupied)
	if occupied > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slot already occupied in this lesson!", nil)
	}

	// Template slots default their type and activity type from the registry
	slotType := reqData.SlotType
	activityType := reqData.ActivityType
	if entry, found := courseModels.SlotTemplateFor(reqData.SlotIndex); found {
		if slotType == "" {
			slotType = entry.SlotType
		}
		if activityType == "" {
			activityType = entry.ActivityType
		}
	}
	if activityType == "" {
		activityType = "text"
	}

	activity := courseModels.Activity{
		LessonID:         uint(lessonID),
		ModuleID:         lesson.ModuleID,
		CourseID:         lesson.CourseID,
		SlotIndex:        reqData.SlotIndex,
		SlotType:         slotType,
		ActivityType:     activityType,
		Title:            reqData.Title,
		TitleFr:          reqData.TitleFr,
		Content:          reqData.Content,
		ContentFr:        reqData.ContentFr,
		VideoURL:         reqData.VideoURL,
		AudioURL:         reqData.AudioURL,
		EmbedCode:        reqData.EmbedCode,
		DownloadURL:      reqData.DownloadURL,
		ThumbnailURL:     reqData.ThumbnailURL,
		Status:           courseModels.ActivityDraft,
		EstimatedMinutes: reqData.EstimatedMinutes,
		Points:           reqData.Points,
		SortOrder:        reqData.SlotIndex,
	}

	if err := database.Database.Db.Create(&activity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create activity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Activity created successfully!", activity)
}

// AdminUpdateActivity updates an existing activity
func AdminUpdateActivity(c *fiber.Ctx) error {
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

	activityID := c.Locals("activityID").(int)

	var activity courseModels.Activity
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", activityID, false).First(&activity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Activity not found!", nil)
	}

	reqData, ok := c.Locals("validatedActivityUpdate").(*struct {
		Title            string `json:"title"`
		TitleFr          string `json:"title_fr"`
		Content          string `json:"content"`
		ContentFr        string `json:"content_fr"`
		VideoURL         string `json:"video_url"`
		AudioURL         string `json:"audio_url"`
		EmbedCode        string `json:"embed_code"`
		DownloadURL      string `json:"download_url"`
		ThumbnailURL     string `json:"thumbnail_url"`
		Status           string `json:"status"`
		EstimatedMinutes int    `json:"estimated_minutes"`
		Points           int    `json:"points"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		activity.Title = reqData.Title
	}
	if reqData.TitleFr != "" {
		activity.TitleFr = reqData.TitleFr
	}
	if reqData.Content != "" {
		activity.Content = reqData.Content
	}
	if reqData.ContentFr != "" {
		activity.ContentFr = reqData.ContentFr
	}
	if reqData.VideoURL != "" {
		activity.VideoURL = reqData.VideoURL
	}
	if reqData.AudioURL != "" {
		activity.AudioURL = reqData.AudioURL
	}
	if reqData.EmbedCode != "" {
		activity.EmbedCode = reqData.EmbedCode
	}
	if reqData.DownloadURL != "" {
		activity.DownloadURL = reqData.DownloadURL
	}
	if reqData.ThumbnailURL != "" {
		activity.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.Status != "" {
		activity.Status = reqData.Status
	}
	if reqData.EstimatedMinutes > 0 {
		activity.EstimatedMinutes = reqData.EstimatedMinutes
	}
	if reqData.Points > 0 {
		activity.Points = reqData.Points
	}

	if err := database.Database.Db.Save(&activity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update activity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity updated successfully!", activity)
}

// AdminDeleteActivity soft deletes an activity, freeing its slot
func AdminDeleteActivity(c *fiber.Ctx) error {
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

	activityID := c.Locals("activityID").(int)

	var activity courseModels.Activity
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", activityID, false).First(&activity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Activity not found!", nil)
	}

	activity.IsDeleted = true
	if err := database.Database.Db.Save(&activity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete activity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity deleted successfully!", nil)
}

// AdminAddQuizQuestion adds a question to a lesson's quiz slot
func AdminAddQuizQuestion(c *fiber.Ctx) error {
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

	lessonID := c.Locals("lessonID").(int)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuizQuestion").(*struct {
		Question   string `json:"question"`
		QuestionFr string `json:"question_fr"`
		Options    string `json:"options"`
		OptionsFr  string `json:"options_fr"`
		Answer     int    `json:"answer"`
		SortOrder  int    `json:"sort_order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question := courseModels.QuizQuestion{
		LessonID:   uint(lessonID),
		Question:   reqData.Question,
		QuestionFr: reqData.QuestionFr,
		Options:    reqData.Options,
		OptionsFr:  reqData.OptionsFr,
		Answer:     reqData.Answer,
		SortOrder:  reqData.SortOrder,
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz question created successfully!", question)
}

// AdminDeleteQuizQuestion soft deletes a quiz question
func AdminDeleteQuizQuestion(c *fiber.Ctx) error {
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

	questionID := c.Locals("questionID").(int)

	var question courseModels.QuizQuestion
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz question not found!", nil)
	}

	question.IsDeleted = true
	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz question deleted successfully!", nil)
}
