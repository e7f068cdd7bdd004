package cache

import (
	"fmt"
	"testing"
	"time"

	"luna-assistant/internal/model"
)

func cacheableResult(content string) model.LocalTaskResult {
	return model.LocalTaskResult{
		Type:           model.ResultSuccess,
		HandledLocally: true,
		Content:        content,
		Cacheable:      true,
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c := New(16, time.Minute)

	res := cacheableResult("200")
	c.Put("sig", res, time.Minute)

	got, ok := c.Get("sig")
	if !ok {
		t.Fatal("expected cache hit before expiry")
	}
	if got.Content != res.Content {
		t.Errorf("expected %q, got %q", res.Content, got.Content)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(16, time.Minute)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	c.Put("sig", cacheableResult("200"), 10*time.Second)

	// Still fresh.
	if _, ok := c.Get("sig"); !ok {
		t.Fatal("expected hit before expiry")
	}

	// Past the per-entry TTL.
	c.now = func() time.Time { return base.Add(11 * time.Second) }
	if _, ok := c.Get("sig"); ok {
		t.Error("expected miss after expiry")
	}
}

func TestCacheRejectsNonCacheable(t *testing.T) {
	c := New(16, time.Minute)

	res := cacheableResult("It's 14:05.")
	res.Cacheable = false
	c.Put("sig", res, time.Minute)

	if _, ok := c.Get("sig"); ok {
		t.Error("non-cacheable result must never be stored")
	}
}

func TestCacheMalformedEntryIsMiss(t *testing.T) {
	c := New(16, time.Minute)

	// A zero-valued result has no type; Get must treat it as corruption.
	c.Put("sig", model.LocalTaskResult{Cacheable: true}, time.Minute)

	if _, ok := c.Get("sig"); ok {
		t.Error("malformed entry must be discarded as a miss")
	}
}

func TestCacheBoundedSize(t *testing.T) {
	c := New(4, time.Minute)

	for i := 0; i < 10; i++ {
		c.Put(fmt.Sprintf("sig-%d", i), cacheableResult("x"), time.Minute)
	}

	if c.Len() > 4 {
		t.Errorf("expected at most 4 entries, got %d", c.Len())
	}

	// Oldest entries were evicted.
	if _, ok := c.Get("sig-0"); ok {
		t.Error("expected oldest entry to be evicted")
	}
	if _, ok := c.Get("sig-9"); !ok {
		t.Error("expected newest entry to survive")
	}
}

func TestCacheClear(t *testing.T) {
	c := New(16, time.Minute)

	c.Put("sig", cacheableResult("x"), time.Minute)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d", c.Len())
	}
}

func TestSignature(t *testing.T) {
	ctxES := model.AppContext{
		CurrentModule:   model.ModuleTasks,
		UserPreferences: model.UserPreferences{Language: "es"},
	}

	t.Run("Normalization", func(t *testing.T) {
		a := Signature("Añadir   Tarea", ctxES)
		b := Signature("anadir tarea", ctxES)
		if a != b {
			t.Errorf("expected equal signatures, got %q vs %q", a, b)
		}
	})

	t.Run("Module Differs", func(t *testing.T) {
		other := ctxES
		other.CurrentModule = model.ModuleGoals
		if Signature("anadir tarea", ctxES) == Signature("anadir tarea", other) {
			t.Error("different modules must produce different signatures")
		}
	})

	t.Run("Language Differs", func(t *testing.T) {
		other := ctxES
		other.UserPreferences.Language = "en"
		if Signature("anadir tarea", ctxES) == Signature("anadir tarea", other) {
			t.Error("different languages must produce different signatures")
		}
	})
}
