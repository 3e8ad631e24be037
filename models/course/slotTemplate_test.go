package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotTemplateShape(t *testing.T) {
	assert.Len(t, SlotTemplate, RequiredSlots)

	for i, entry := range SlotTemplate {
		assert.Equal(t, i+1, entry.SlotIndex, "slot indexes must be contiguous from 1")
		assert.NotEmpty(t, entry.SlotType)
		assert.NotEmpty(t, entry.ActivityType)
		assert.NotEmpty(t, entry.Label)
		assert.NotEmpty(t, entry.LabelFr)
	}

	// No duplicate slot types
	seen := map[string]bool{}
	for _, entry := range SlotTemplate {
		assert.False(t, seen[entry.SlotType], "duplicate slot type %s", entry.SlotType)
		seen[entry.SlotType] = true
	}
}

func TestSlotTemplateActivityTypes(t *testing.T) {
	expected := map[int]string{
		1: "text",
		2: "video",
		3: "text",
		4: "assignment",
		5: "audio",
		6: "quiz",
		7: "text",
	}
	for idx, activityType := range expected {
		entry, ok := SlotTemplateFor(idx)
		assert.True(t, ok)
		assert.Equal(t, activityType, entry.ActivityType, "slot %d", idx)
	}
}

func TestSlotTemplateFor(t *testing.T) {
	entry, ok := SlotTemplateFor(6)
	assert.True(t, ok)
	assert.Equal(t, SlotQuiz, entry.SlotType)
	assert.Equal(t, "Quiz", entry.Label)

	_, ok = SlotTemplateFor(0)
	assert.False(t, ok)

	_, ok = SlotTemplateFor(8)
	assert.False(t, ok)

	_, ok = SlotTemplateFor(-3)
	assert.False(t, ok)
}

func TestSlotLabelFor(t *testing.T) {
	assert.Equal(t, "Intro / Hook", SlotLabelFor(SlotIntroduction))
	assert.Equal(t, "Written Practice", SlotLabelFor(SlotWrittenPractice))
	assert.Equal(t, "Unknown", SlotLabelFor(""))

	// Extras fall back to the raw type
	assert.Equal(t, "bonus_drill", SlotLabelFor("bonus_drill"))
}
