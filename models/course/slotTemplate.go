package course

// Slot types for the 7 mandatory lesson slots.
const (
	SlotIntroduction    = "introduction"
	SlotVideoScenario   = "video_scenario"
	SlotGrammarPoint    = "grammar_point"
	SlotWrittenPractice = "written_practice"
	SlotOralPractice    = "oral_practice"
	SlotQuiz            = "quiz_slot"
	SlotCoachingTip     = "coaching_tip"
)

// RequiredSlots is the number of mandatory slots per lesson. Activities at
// higher indexes are unlimited extras.
const RequiredSlots = 7

// RequiredModules and RequiredLessonsPerModule fix the course shape the
// quality gate enforces: 4 modules of 4 lessons each.
const (
	RequiredModules          = 4
	RequiredLessonsPerModule = 4
)

// MinQuizQuestions is the minimum question count for the quiz slot to be
// content-sufficient.
const MinQuizQuestions = 6

// SlotTemplateEntry describes one mandatory slot of the lesson template.
type SlotTemplateEntry struct {
	SlotIndex    int    `json:"slot_index"`
	SlotType     string `json:"slot_type"`
	ActivityType string `json:"activity_type"`
	Label        string `json:"label"`
	LabelFr      string `json:"label_fr"`
}

// SlotTemplate is the single source of truth for the lesson structure:
// every lesson must fill these 7 slots before it can pass the gate.
var SlotTemplate = [RequiredSlots]SlotTemplateEntry{
	{SlotIndex: 1, SlotType: SlotIntroduction, ActivityType: "text", Label: "Intro / Hook", LabelFr: "Introduction"},
	{SlotIndex: 2, SlotType: SlotVideoScenario, ActivityType: "video", Label: "Video Scenario", LabelFr: "Vidéo"},
	{SlotIndex: 3, SlotType: SlotGrammarPoint, ActivityType: "text", Label: "Grammar / Strategy", LabelFr: "Grammaire"},
	{SlotIndex: 4, SlotType: SlotWrittenPractice, ActivityType: "assignment", Label: "Written Practice", LabelFr: "Pratique écrite"},
	{SlotIndex: 5, SlotType: SlotOralPractice, ActivityType: "audio", Label: "Oral Practice", LabelFr: "Pratique orale"},
	{SlotIndex: 6, SlotType: SlotQuiz, ActivityType: "quiz", Label: "Quiz", LabelFr: "Quiz"},
	{SlotIndex: 7, SlotType: SlotCoachingTip, ActivityType: "text", Label: "Coaching Tip", LabelFr: "Conseil coaching"},
}

// SlotTemplateFor returns the template entry for a mandatory slot index,
// or false when the index is outside 1-7.
func SlotTemplateFor(slotIndex int) (SlotTemplateEntry, bool) {
	if slotIndex < 1 || slotIndex > RequiredSlots {
		return SlotTemplateEntry{}, false
	}
	return SlotTemplate[slotIndex-1], true
}

// SlotLabelFor returns the display label for a slot type, falling back to
// the raw type for extras and unknown types.
func SlotLabelFor(slotType string) string {
	for _, entry := range SlotTemplate {
		if entry.SlotType == slotType {
			return entry.Label
		}
	}
	if slotType == "" {
		return "Unknown"
	}
	return slotType
}
