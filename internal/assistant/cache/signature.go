package cache

import (
	"luna-assistant/internal/model"
	"luna-assistant/pkg/textnorm"
)

// Signature derives the memoization key for an utterance in context:
// the folded input plus the context fingerprint (module, language).
// "Añadir tarea" and "anadir   tarea" in the same module and language
// produce the same key.
func Signature(text string, appCtx model.AppContext) string {
	return textnorm.Fold(text) + "|" + string(appCtx.CurrentModule) + "|" + appCtx.UserPreferences.Language
}
