package model

// Category is a top-level intent taxonomy bucket.
type Category string

const (
	CategoryTaskManagement Category = "task_management"
	CategoryGoalSetting    Category = "goal_setting"
	CategoryPlanning       Category = "planning"
	CategoryAnalytics      Category = "analytics"
	CategoryHabitFormation Category = "habit_formation"
	CategoryWorkflow       Category = "workflow"
	CategoryGeneral        Category = "general"
)

// Action is a verb scoped to a category.
type Action string

const (
	ActionCreate     Action = "create"
	ActionComplete   Action = "complete"
	ActionList       Action = "list"
	ActionPrioritize Action = "prioritize"
	ActionTrack      Action = "track"
	ActionReview     Action = "review"
	ActionSchedule   Action = "schedule"
	ActionView       Action = "view"
	ActionOrganize   Action = "organize"
	ActionHelp       Action = "help"
	ActionGreeting   Action = "greeting"
	ActionTime       Action = "time"
	ActionCalculate  Action = "calculate"
	ActionNavigate   Action = "navigate"
)

// Intent is the result of classifying an utterance. It is always fully
// populated; the lowest-signal outcome is general/help at low confidence.
type Intent struct {
	Category   Category `json:"category"`
	Action     Action   `json:"action"`
	Confidence float64  `json:"confidence"` // 0.0 to 1.0
}

// Key returns the registry lookup key for the intent.
func (i Intent) Key() string {
	return string(i.Category) + "/" + string(i.Action)
}
