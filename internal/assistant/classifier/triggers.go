package classifier

import (
	"regexp"

	"luna-assistant/internal/model"
)

// template binds one (category, action) pair to its trigger signals.
// All phrases and keywords are stored folded (lowercase, no diacritics);
// matching happens on the folded input. Entries cover en, es, fr, de, pt.
type template struct {
	category model.Category
	action   model.Action
	phrases  []string
	keywords []string
	patterns []*regexp.Regexp
}

// arithmeticPattern recognizes an infix arithmetic expression anywhere in
// the input, e.g. "25 * 8" or "12+30".
var arithmeticPattern = regexp.MustCompile(`\d+(\.\d+)?\s*[-+*/x×÷]\s*\d+`)

// templates is the closed, ordered set of intent templates. Order matters:
// score ties keep the earliest entry, which keeps classification
// deterministic for identical inputs.
var templates = []template{
	{
		category: model.CategoryTaskManagement,
		action:   model.ActionCreate,
		phrases: []string{
			"add a task", "create a task", "new task", "remind me to",
			"anadir tarea", "crear tarea", "nueva tarea", "recuerdame",
			"ajouter une tache", "creer une tache", "nouvelle tache",
			"aufgabe hinzufugen", "neue aufgabe", "erinnere mich",
			"adicionar tarefa", "criar tarefa", "nova tarefa", "lembre me",
		},
		keywords: []string{
			"add", "create", "task", "todo", "remind", "reminder", "list",
			"anadir", "crear", "tarea", "recordar",
			"ajouter", "creer", "tache",
			"hinzufugen", "erstellen", "aufgabe",
			"adicionar", "criar", "tarefa", "lembrar",
		},
	},
	{
		category: model.CategoryTaskManagement,
		action:   model.ActionComplete,
		phrases: []string{
			"mark as done", "mark complete", "check off",
			"marcar como hecho", "marquer comme fait",
			"als erledigt markieren", "marcar como feito",
		},
		keywords: []string{
			"complete", "done", "finish", "finished",
			"completar", "hecho", "terminado",
			"terminer", "fait", "fini",
			"erledigt", "fertig", "abschliessen",
			"concluir", "feito", "terminado",
		},
	},
	{
		category: model.CategoryTaskManagement,
		action:   model.ActionList,
		phrases: []string{
			"show my tasks", "list my tasks", "my tasks", "pending tasks",
			"mis tareas", "mes taches", "meine aufgaben", "minhas tarefas",
		},
		keywords: []string{
			"show", "tasks", "pending",
			"tareas", "pendientes", "taches", "aufgaben", "tarefas",
		},
	},
	{
		category: model.CategoryTaskManagement,
		action:   model.ActionPrioritize,
		phrases: []string{
			"set priority", "prioritize my tasks",
			"establecer prioridad", "definir la priorite",
			"prioritat setzen", "definir prioridade",
		},
		keywords: []string{
			"prioritize", "priority", "urgent", "important",
			"prioridad", "urgente", "priorite", "prioritat", "dringend",
			"prioridade",
		},
	},
	{
		category: model.CategoryGoalSetting,
		action:   model.ActionCreate,
		phrases: []string{
			"set a goal", "new goal", "create a goal",
			"nueva meta", "establecer meta", "nouvel objectif",
			"neues ziel", "nova meta",
		},
		keywords: []string{
			"goal", "objective", "target", "achieve", "add", "create", "new",
			"meta", "objetivo", "lograr",
			"objectif", "atteindre",
			"ziel", "erreichen",
			"alcancar",
		},
	},
	{
		category: model.CategoryGoalSetting,
		action:   model.ActionTrack,
		phrases: []string{
			"track my goal", "goal progress",
			"seguimiento de mi meta", "suivre mon objectif",
			"mein ziel verfolgen", "acompanhar minha meta",
		},
		keywords: []string{
			"track", "progress", "goal", "milestone",
			"progreso", "meta", "seguimiento",
			"progres", "objectif", "suivre",
			"fortschritt", "ziel", "verfolgen",
			"progresso", "acompanhar",
		},
	},
	{
		category: model.CategoryGoalSetting,
		action:   model.ActionReview,
		phrases: []string{
			"review my goals", "revisar mis metas", "revoir mes objectifs",
			"meine ziele uberprufen", "revisar minhas metas",
		},
		keywords: []string{
			"review", "goals", "revisar", "metas", "objectifs", "ziele",
		},
	},
	{
		category: model.CategoryPlanning,
		action:   model.ActionSchedule,
		phrases: []string{
			"plan my day", "plan my week", "schedule a meeting",
			"planea mi dia", "planifier ma journee", "plane meinen tag",
			"planejar meu dia",
		},
		keywords: []string{
			"schedule", "plan", "calendar", "meeting", "appointment", "agenda",
			"planificar", "calendario", "cita", "reunion",
			"planifier", "calendrier",
			"planen", "kalender", "termin",
			"planejar", "reuniao",
		},
	},
	{
		category: model.CategoryPlanning,
		action:   model.ActionReview,
		phrases: []string{
			"review my week", "upcoming events",
			"revisar mi semana", "revoir ma semaine",
			"meine woche uberprufen", "revisar minha semana",
		},
		keywords: []string{
			"week", "upcoming", "semana", "semaine", "woche",
		},
	},
	{
		category: model.CategoryAnalytics,
		action:   model.ActionView,
		phrases: []string{
			"show my stats", "show my progress", "view analytics",
			"mis estadisticas", "mes statistiques", "meine statistiken",
			"minhas estatisticas",
		},
		keywords: []string{
			"stats", "statistics", "analytics", "progress", "report",
			"insights", "productivity",
			"estadisticas", "informe", "progreso", "productividad",
			"statistiques", "rapport", "progres",
			"statistiken", "bericht", "fortschritt",
			"estatisticas", "relatorio", "progresso",
		},
	},
	{
		category: model.CategoryHabitFormation,
		action:   model.ActionCreate,
		phrases: []string{
			"start a habit", "new habit", "build a habit",
			"nuevo habito", "nouvelle habitude", "neue gewohnheit",
			"novo habito",
		},
		keywords: []string{
			"habit", "start", "build", "daily", "routine", "add",
			"habito", "rutina", "diario",
			"habitude", "quotidien",
			"gewohnheit", "taglich",
			"rotina",
		},
	},
	{
		category: model.CategoryHabitFormation,
		action:   model.ActionTrack,
		phrases: []string{
			"track my habit", "habit progress", "check in",
			"seguimiento de mi habito", "suivre mon habitude",
			"gewohnheit verfolgen", "acompanhar meu habito",
		},
		keywords: []string{
			"track", "progress", "streak", "habit",
			"racha", "habito", "progreso",
			"habitude", "progres",
			"gewohnheit", "fortschritt",
			"sequencia", "progresso",
		},
	},
	{
		category: model.CategoryWorkflow,
		action:   model.ActionCreate,
		phrases: []string{
			"create a workflow", "new project", "set up a project",
			"nuevo proyecto", "nouveau projet", "neues projekt",
			"novo projeto",
		},
		keywords: []string{
			"workflow", "project", "automate", "process",
			"proyecto", "automatizar", "proceso",
			"projet", "automatiser", "processus",
			"projekt", "automatisieren", "prozess",
			"projeto", "processo",
		},
	},
	{
		category: model.CategoryWorkflow,
		action:   model.ActionOrganize,
		phrases: []string{
			"organize my projects", "organizar mis proyectos",
			"organiser mes projets", "meine projekte organisieren",
			"organizar meus projetos",
		},
		keywords: []string{
			"organize", "structure", "arrange",
			"organizar", "organiser", "organisieren",
		},
	},
	{
		category: model.CategoryGeneral,
		action:   model.ActionGreeting,
		phrases: []string{
			"good morning", "good evening", "buenos dias", "buenas tardes",
			"bonjour", "bonsoir", "guten morgen", "guten abend",
			"bom dia", "boa tarde",
		},
		keywords: []string{
			"hello", "hi", "hey", "thanks",
			"hola", "gracias", "salut", "merci",
			"hallo", "danke", "ola", "obrigado",
		},
	},
	{
		category: model.CategoryGeneral,
		action:   model.ActionTime,
		phrases: []string{
			"what time", "current time", "what day", "what is the date",
			"que hora", "quelle heure", "wie spat", "que horas",
		},
		keywords: []string{
			"time", "date", "clock", "today",
			"hora", "fecha", "heure", "uhrzeit", "datum", "heute",
			"horas", "hoje",
		},
	},
	{
		category: model.CategoryGeneral,
		action:   model.ActionCalculate,
		phrases: []string{
			"calculate", "compute", "how much is",
			"cuanto es", "calcular", "combien font", "calculer",
			"wie viel ist", "rechne", "quanto e",
		},
		keywords: []string{
			"math", "plus", "minus", "times", "divided",
			"mas", "menos", "fois", "mal", "vezes",
		},
		patterns: []*regexp.Regexp{arithmeticPattern},
	},
	{
		category: model.CategoryGeneral,
		action:   model.ActionNavigate,
		phrases: []string{
			"go to", "take me to", "navigate to", "open the",
			"ir a", "llevame a", "aller a", "ouvre la",
			"gehe zu", "offne", "ir para", "abrir a",
		},
		keywords: []string{
			"navigate", "open",
			"abrir", "ouvrir", "offnen", "navegar",
		},
	},
	{
		category: model.CategoryGeneral,
		action:   model.ActionHelp,
		phrases: []string{
			"help me", "what can you do",
			"que puedes hacer", "que peux tu faire",
			"was kannst du", "o que voce pode fazer",
		},
		keywords: []string{
			"help", "ayuda", "aide", "hilfe", "ajuda",
		},
	},
}

// moduleCategories is the fixed disambiguation table from app module to the
// category it implies. Consulted only when the keyword-score margin between
// the top two candidates is below ScoreMarginDelta.
var moduleCategories = map[model.Module]model.Category{
	model.ModuleTasks:     model.CategoryTaskManagement,
	model.ModuleCapture:   model.CategoryTaskManagement,
	model.ModulePlan:      model.CategoryPlanning,
	model.ModuleCalendar:  model.CategoryPlanning,
	model.ModuleGoals:     model.CategoryGoalSetting,
	model.ModuleEngage:    model.CategoryGoalSetting,
	model.ModuleHabits:    model.CategoryHabitFormation,
	model.ModuleAnalytics: model.CategoryAnalytics,
	model.ModuleProjects:  model.CategoryWorkflow,
}
