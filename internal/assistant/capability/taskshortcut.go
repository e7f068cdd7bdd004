package capability

import (
	"fmt"
	"strings"
	"time"

	"luna-assistant/internal/model"
	"luna-assistant/pkg/datemath"
	"luna-assistant/pkg/textnorm"
)

// TaskShortcut turns a task-creation utterance into an inert action
// descriptor for the host app to persist. The engine itself never writes
// to any store.
type TaskShortcut struct {
	dateMath *datemath.Parser
	now      func() time.Time
}

// NewTaskShortcut creates the task-creation capability.
func NewTaskShortcut(dateMath *datemath.Parser) *TaskShortcut {
	return &TaskShortcut{
		dateMath: dateMath,
		now:      time.Now,
	}
}

func (t *TaskShortcut) Name() string { return "task-shortcut" }

func (t *TaskShortcut) Patterns() []Pattern {
	return []Pattern{
		{Category: model.CategoryTaskManagement, Action: model.ActionCreate},
	}
}

func (t *TaskShortcut) MaxExecutionTime() time.Duration { return 20 * time.Millisecond }

// Cacheable is false: the resolved due date depends on the current day.
func (t *TaskShortcut) Cacheable() bool { return false }

// leadingTriggers are folded prefixes stripped from the utterance before
// the remainder is treated as the task title.
var leadingTriggers = []string{
	"add a task to", "add a task", "create a task to", "create a task",
	"new task", "remind me to", "remind me", "add", "create",
	"anadir tarea", "crear tarea", "nueva tarea", "recuerdame",
	"ajouter une tache", "creer une tache", "nouvelle tache", "rappelle moi de",
	"aufgabe hinzufugen", "neue aufgabe", "erinnere mich an",
	"adicionar tarefa", "criar tarefa", "nova tarefa", "lembre me de",
}

// priorityWords maps folded priority markers onto priority levels.
var priorityWords = map[string]string{
	"urgent": "high", "important": "high", "asap": "high",
	"urgente": "high", "importante": "high",
	"dringend": "high", "wichtig": "high",
	"low": "low", "minor": "low", "baja": "low", "basse": "low",
	"niedrig": "low", "baixa": "low",
}

// dueWords are folded tokens handed to datemath when present.
var dueWords = []string{
	"today", "tomorrow", "hoy", "manana", "demain", "aujourd'hui",
	"heute", "morgen", "hoje", "amanha",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

func (t *TaskShortcut) Execute(input string, appCtx model.AppContext) (Output, error) {
	folded := textnorm.Fold(input)

	title := folded
	for _, trigger := range leadingTriggers {
		if title == trigger {
			title = ""
			break
		}
		if strings.HasPrefix(title, trigger+" ") {
			title = strings.TrimPrefix(title, trigger+" ")
			break
		}
	}

	priority := "medium"
	var due string

	words := strings.Fields(title)
	for i, w := range words {
		words[i] = strings.Trim(w, ".,!?;:")
	}
	kept := make([]string, 0, len(words))
	for i, w := range words {
		if p, ok := priorityWords[w]; ok {
			priority = p
			continue
		}
		if due == "" && isDueWord(w) {
			due = w
			// "next monday": fold the qualifier into the due phrase
			if i > 0 && words[i-1] == "next" && len(kept) > 0 {
				due = "next " + w
				kept = kept[:len(kept)-1]
			}
			continue
		}
		kept = append(kept, w)
	}

	title = strings.TrimSpace(strings.Join(kept, " "))
	if title == "" {
		return Output{}, fmt.Errorf("no task title in %q", input)
	}

	payload := map[string]string{
		"title":    title,
		"priority": priority,
	}
	if due != "" {
		dueDate, err := t.dateMath.Parse(due, t.now())
		if err == nil {
			payload["due_date"] = dueDate.Format("2006-01-02")
		}
	}

	content := fmt.Sprintf("Ready to add %q (priority: %s", title, priority)
	if d, ok := payload["due_date"]; ok {
		content += ", due " + d
	}
	content += ")."

	return Output{
		Content: content,
		Action: &model.ActionDescriptor{
			Type:    "create_task",
			Payload: payload,
		},
	}, nil
}

func isDueWord(w string) bool {
	for _, d := range dueWords {
		if w == d {
			return true
		}
	}
	return false
}
