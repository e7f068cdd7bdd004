package capability

import (
	"fmt"
	"time"

	"luna-assistant/internal/model"
	"luna-assistant/pkg/textnorm"
)

// Navigation resolves "take me to X" utterances into a route descriptor.
// The host app performs the actual navigation.
type Navigation struct{}

// NewNavigation creates the navigation capability.
func NewNavigation() *Navigation {
	return &Navigation{}
}

func (n *Navigation) Name() string { return "navigation" }

func (n *Navigation) Patterns() []Pattern {
	return []Pattern{
		{Category: model.CategoryGeneral, Action: model.ActionNavigate},
	}
}

func (n *Navigation) MaxExecutionTime() time.Duration { return 5 * time.Millisecond }

func (n *Navigation) Cacheable() bool { return true }

// routeTargets maps folded destination words onto app routes.
var routeTargets = map[string]string{
	"tasks": "/tasks", "task": "/tasks", "tareas": "/tasks", "taches": "/tasks",
	"aufgaben": "/tasks", "tarefas": "/tasks", "capture": "/capture",
	"goals": "/goals", "goal": "/goals", "metas": "/goals", "objectifs": "/goals",
	"ziele": "/goals", "engage": "/engage",
	"habits": "/habits", "habit": "/habits", "habitos": "/habits",
	"habitudes": "/habits", "gewohnheiten": "/habits",
	"plan": "/plan", "planning": "/plan", "calendar": "/plan",
	"calendario": "/plan", "calendrier": "/plan", "kalender": "/plan",
	"analytics": "/analytics", "stats": "/analytics", "statistics": "/analytics",
	"estadisticas": "/analytics", "statistiques": "/analytics", "statistiken": "/analytics",
	"projects": "/projects", "proyectos": "/projects", "projets": "/projects",
	"projekte": "/projects", "projetos": "/projects",
	"settings": "/settings", "home": "/", "dashboard": "/",
}

func (n *Navigation) Execute(input string, appCtx model.AppContext) (Output, error) {
	for _, tok := range textnorm.Tokenize(input) {
		route, ok := routeTargets[tok]
		if !ok {
			continue
		}

		return Output{
			Content: fmt.Sprintf("Taking you to %s.", route),
			Action: &model.ActionDescriptor{
				Type:    "navigate",
				Payload: map[string]string{"route": route},
			},
		}, nil
	}

	return Output{}, fmt.Errorf("no navigation target in %q", input)
}
