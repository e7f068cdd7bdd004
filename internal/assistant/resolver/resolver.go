package resolver

import (
	"context"
	"sync"
	"time"

	"luna-assistant/internal/assistant"
	"luna-assistant/internal/model"
	pkgLog "luna-assistant/pkg/log"
)

// sessionState holds the bounded per-session memory.
type sessionState struct {
	recentIntents []model.Intent
	history       []string
	lastUpdated   time.Time
}

// Resolver merges request hints with session state into an AppContext.
// Missing hints get safe defaults; session windows are fixed-size sliding
// windows with TTL-based cleanup.
type Resolver struct {
	l               pkgLog.Logger
	defaultTimezone string
	defaultLanguage string

	mu       sync.RWMutex
	sessions map[string]*sessionState

	now func() time.Time
}

// New creates a new Resolver and starts the session cleanup loop.
func New(l pkgLog.Logger, defaultTimezone, defaultLanguage string) *Resolver {
	if defaultTimezone == "" {
		defaultTimezone = DefaultTimezone
	}
	if defaultLanguage == "" {
		defaultLanguage = DefaultLanguage
	}

	r := &Resolver{
		l:               l,
		defaultTimezone: defaultTimezone,
		defaultLanguage: defaultLanguage,
		sessions:        make(map[string]*sessionState),
		now:             time.Now,
	}

	go r.cleanupExpiredSessions()

	return r
}

// Resolve builds the AppContext for one request.
func (r *Resolver) Resolve(sessionID string, hints assistant.ContextHints) model.AppContext {
	language := hints.Language
	if language == "" {
		language = r.defaultLanguage
	}
	timezone := hints.Timezone
	if timezone == "" {
		timezone = r.defaultTimezone
	}

	appCtx := model.AppContext{
		CurrentRoute:  hints.Route,
		CurrentModule: hints.Module,
		TimeContext:   buildTimeContext(timezone, r.now()),
		UserPreferences: model.UserPreferences{
			Language: language,
			Timezone: timezone,
		},
		SessionContext: model.SessionContext{
			CurrentFocus: hints.CurrentFocus,
		},
	}

	r.mu.RLock()
	if state, ok := r.sessions[sessionID]; ok {
		appCtx.SessionContext.RecentIntents = append([]model.Intent(nil), state.recentIntents...)
		appCtx.SessionContext.ConversationHistory = append([]string(nil), state.history...)
	}
	r.mu.RUnlock()

	return appCtx
}

// Remember appends a processed exchange to the session windows.
func (r *Resolver) Remember(sessionID, input string, intent model.Intent) {
	if sessionID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.sessions[sessionID]
	if !ok {
		state = &sessionState{}
		r.sessions[sessionID] = state
	}

	state.recentIntents = append(state.recentIntents, intent)
	if len(state.recentIntents) > MaxRecentIntents {
		state.recentIntents = state.recentIntents[len(state.recentIntents)-MaxRecentIntents:]
	}

	state.history = append(state.history, input)
	if len(state.history) > MaxHistoryEntries {
		state.history = state.history[len(state.history)-MaxHistoryEntries:]
	}

	state.lastUpdated = r.now()
}

// cleanupExpiredSessions periodically drops sessions idle past the TTL.
func (r *Resolver) cleanupExpiredSessions() {
	ticker := time.NewTicker(SessionCleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := r.now().Add(-SessionTTL)
		cleaned := 0

		r.mu.Lock()
		for id, state := range r.sessions {
			if state.lastUpdated.Before(cutoff) {
				delete(r.sessions, id)
				cleaned++
			}
		}
		r.mu.Unlock()

		if cleaned > 0 {
			r.l.Infof(context.Background(), LogMsgSessionsCleanedUp, cleaned)
		}
	}
}
