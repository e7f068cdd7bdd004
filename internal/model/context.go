package model

import "time"

// Module identifies the app section the user is currently in.
type Module string

const (
	ModuleTasks     Module = "tasks"
	ModuleCapture   Module = "capture"
	ModulePlan      Module = "plan"
	ModuleCalendar  Module = "calendar"
	ModuleGoals     Module = "goals"
	ModuleEngage    Module = "engage"
	ModuleHabits    Module = "habits"
	ModuleAnalytics Module = "analytics"
	ModuleProjects  Module = "projects"
	ModuleNone      Module = ""
)

// TimeOfDay is a coarse wall-clock bucket.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
	TimeOfDayNight     TimeOfDay = "night"
)

// TimeContext captures when the request happened in the user's timezone.
type TimeContext struct {
	TimeOfDay TimeOfDay `json:"time_of_day"`
	DayOfWeek string    `json:"day_of_week"`
	Date      time.Time `json:"date"`
}

// UserPreferences carries locale and style hints for the session user.
type UserPreferences struct {
	Language           string `json:"language"` // ISO 639-1: en, es, fr, de, pt
	Timezone           string `json:"timezone"`
	WorkingHours       string `json:"working_hours"`       // e.g. "09:00-17:00"
	CommunicationStyle string `json:"communication_style"` // e.g. "concise"
}

// SessionContext is the bounded per-session memory consulted during
// classification. Windows are trimmed by the resolver, never here.
type SessionContext struct {
	RecentIntents       []Intent `json:"recent_intents"`
	ConversationHistory []string `json:"conversation_history"`
	CurrentFocus        string   `json:"current_focus"`
}

// AppContext is the merged ambient context for a single request. It is
// built per request by the resolver and never persisted.
type AppContext struct {
	CurrentRoute    string          `json:"current_route"`
	CurrentModule   Module          `json:"current_module"`
	TimeContext     TimeContext     `json:"time_context"`
	UserPreferences UserPreferences `json:"user_preferences"`
	SessionContext  SessionContext  `json:"session_context"`
}

// ContextSnapshot is the compact context reference stored on every
// classification event.
type ContextSnapshot struct {
	Route    string `json:"route"`
	Module   Module `json:"module"`
	Language string `json:"language"`
}

// Snapshot reduces the context to the fields analytics needs.
func (c AppContext) Snapshot() ContextSnapshot {
	return ContextSnapshot{
		Route:    c.CurrentRoute,
		Module:   c.CurrentModule,
		Language: c.UserPreferences.Language,
	}
}
