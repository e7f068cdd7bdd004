package resolver

import "time"

// Session window bounds. Windows are sliding: the oldest entries drop off.
const (
	MaxRecentIntents  = 5
	MaxHistoryEntries = 10
)

// Session lifecycle.
const (
	SessionTTL             = 30 * time.Minute
	SessionCleanupInterval = 5 * time.Minute
)

// Safe defaults for missing hints.
const (
	DefaultLanguage = "en"
	DefaultTimezone = "UTC"
)

// Log prefixes
const (
	LogPrefixCleanupSessions = "internal.assistant.resolver.cleanupExpiredSessions"
)

// Log messages
const (
	LogMsgSessionsCleanedUp = "Cleaned up %d expired sessions"
)
