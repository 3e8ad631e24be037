package utils

import (
	"fmt"
	"log"
	"time"

	"lingua/config"

	"github.com/go-resty/resty/v2"
)

// NotifyCoursePublished posts a publish event to the configured webhook.
// A missing URL disables the integration silently.
func NotifyCoursePublished(courseID uint, title string) error {
	url := config.AppConfig.PublishWebhookURL
	if url == "" {
		return nil
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":        "course.published",
			"course_id":    courseID,
			"title":        title,
			"published_at": time.Now().Format(time.RFC3339),
		}).
		Post(url)

	if err != nil {
		log.Printf("Error calling publish webhook: %v", err)
		return err
	}

	if resp.StatusCode() >= 300 {
		log.Printf("Publish webhook returned %d: %s", resp.StatusCode(), resp.String())
		return fmt.Errorf("webhook returned status %d", resp.StatusCode())
	}

	return nil
}
