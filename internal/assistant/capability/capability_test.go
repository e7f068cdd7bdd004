package capability

import (
	"strings"
	"testing"
	"time"

	"luna-assistant/internal/model"
	"luna-assistant/pkg/datemath"
)

func TestRegistry(t *testing.T) {
	dateMath, _ := datemath.NewParser("UTC")
	reg := NewDefaultRegistry(dateMath)

	t.Run("Lookup Registered", func(t *testing.T) {
		cap, ok := reg.Get(model.CategoryGeneral, model.ActionTime)
		if !ok {
			t.Fatal("expected clock capability for general/time")
		}
		if cap.Name() != "clock" {
			t.Errorf("expected clock, got %s", cap.Name())
		}
	})

	t.Run("Lookup Unregistered", func(t *testing.T) {
		if _, ok := reg.Get(model.CategoryHabitFormation, model.ActionTrack); ok {
			t.Error("expected no capability for habit_formation/track")
		}
	})

	t.Run("Names", func(t *testing.T) {
		names := reg.Names()
		if len(names) != 4 {
			t.Errorf("expected 4 capabilities, got %d: %v", len(names), names)
		}
	})
}

func TestClock(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 14, 5, 0, 0, time.UTC)
	clock := &Clock{now: func() time.Time { return fixed }}

	appCtx := model.AppContext{
		UserPreferences: model.UserPreferences{Timezone: "UTC"},
	}

	t.Run("Time Question", func(t *testing.T) {
		out, err := clock.Execute("what time is it?", appCtx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Content, "14:05") {
			t.Errorf("expected current time in content, got %q", out.Content)
		}
	})

	t.Run("Date Question", func(t *testing.T) {
		out, err := clock.Execute("what day is it today?", appCtx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Content, "Wednesday") {
			t.Errorf("expected weekday in content, got %q", out.Content)
		}
	})

	t.Run("Not Cacheable", func(t *testing.T) {
		if clock.Cacheable() {
			t.Error("clock output must never be cached")
		}
	})

	t.Run("Invalid Timezone Falls Back", func(t *testing.T) {
		badCtx := model.AppContext{
			UserPreferences: model.UserPreferences{Timezone: "Not/AZone"},
		}
		if _, err := clock.Execute("what time is it?", badCtx); err != nil {
			t.Errorf("expected UTC fallback, got error %v", err)
		}
	})
}

func TestCalculator(t *testing.T) {
	calc := NewCalculator()
	appCtx := model.AppContext{}

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain", "Calculate 25 * 8", "200"},
		{"With Suffix", "calculate 12 + 30 for me please", "42"},
		{"Bare Expression", "144 / 12", "12"},
		{"Decimal Result", "10 / 4", "2.5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := calc.Execute(tc.input, appCtx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Content != tc.want {
				t.Errorf("Execute(%q) = %q, want %q", tc.input, out.Content, tc.want)
			}
		})
	}

	t.Run("No Expression", func(t *testing.T) {
		if _, err := calc.Execute("calculate my productivity", appCtx); err == nil {
			t.Error("expected error for input without arithmetic")
		}
	})
}

func TestTaskShortcut(t *testing.T) {
	dateMath, _ := datemath.NewParser("UTC")
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) // Wednesday
	shortcut := &TaskShortcut{dateMath: dateMath, now: func() time.Time { return fixed }}

	appCtx := model.AppContext{}

	t.Run("Title And Due Date", func(t *testing.T) {
		out, err := shortcut.Execute("remind me to buy milk tomorrow", appCtx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action == nil || out.Action.Type != "create_task" {
			t.Fatalf("expected create_task descriptor, got %+v", out.Action)
		}
		if out.Action.Payload["title"] != "buy milk" {
			t.Errorf("expected title 'buy milk', got %q", out.Action.Payload["title"])
		}
		if out.Action.Payload["due_date"] != "2024-05-02" {
			t.Errorf("expected due 2024-05-02, got %q", out.Action.Payload["due_date"])
		}
	})

	t.Run("Priority Extraction", func(t *testing.T) {
		out, err := shortcut.Execute("add urgent call the dentist", appCtx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action.Payload["priority"] != "high" {
			t.Errorf("expected high priority, got %q", out.Action.Payload["priority"])
		}
		if out.Action.Payload["title"] != "call the dentist" {
			t.Errorf("unexpected title %q", out.Action.Payload["title"])
		}
	})

	t.Run("Next Weekday", func(t *testing.T) {
		out, err := shortcut.Execute("create a task to submit the report next monday", appCtx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action.Payload["due_date"] != "2024-05-06" {
			t.Errorf("expected due 2024-05-06, got %q", out.Action.Payload["due_date"])
		}
		if out.Action.Payload["title"] != "submit the report" {
			t.Errorf("unexpected title %q", out.Action.Payload["title"])
		}
	})

	t.Run("Spanish", func(t *testing.T) {
		out, err := shortcut.Execute("añadir tarea comprar leche mañana", appCtx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action.Payload["title"] != "comprar leche" {
			t.Errorf("unexpected title %q", out.Action.Payload["title"])
		}
		if out.Action.Payload["due_date"] != "2024-05-02" {
			t.Errorf("expected due 2024-05-02, got %q", out.Action.Payload["due_date"])
		}
	})

	t.Run("No Title", func(t *testing.T) {
		if _, err := shortcut.Execute("add a task", appCtx); err == nil {
			t.Error("expected error when no title remains")
		}
	})
}

func TestNavigation(t *testing.T) {
	nav := NewNavigation()
	appCtx := model.AppContext{}

	t.Run("Known Target", func(t *testing.T) {
		out, err := nav.Execute("take me to the habits page", appCtx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action == nil || out.Action.Payload["route"] != "/habits" {
			t.Errorf("expected /habits route, got %+v", out.Action)
		}
	})

	t.Run("Unknown Target", func(t *testing.T) {
		if _, err := nav.Execute("go to the moon", appCtx); err == nil {
			t.Error("expected error for unknown target")
		}
	})
}
