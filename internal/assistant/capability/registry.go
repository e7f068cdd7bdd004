package capability

import (
	"time"

	"luna-assistant/internal/model"
	"luna-assistant/pkg/datemath"
)

// Pattern is one (category, action) pair a capability can satisfy.
type Pattern struct {
	Category model.Category
	Action   model.Action
}

func (p Pattern) key() string {
	return string(p.Category) + "/" + string(p.Action)
}

// Output is what a handler produces on success.
type Output struct {
	Content string
	Action  *model.ActionDescriptor
}

// Capability is a deterministic, synchronous handler able to satisfy
// specific intents without a remote call. Handlers are pure: no I/O, no
// stored state, bounded execution time.
type Capability interface {
	// Name returns the capability name (used in analytics and logs).
	Name() string

	// Patterns returns the (category, action) pairs this capability handles.
	Patterns() []Pattern

	// MaxExecutionTime is the declared execution budget.
	MaxExecutionTime() time.Duration

	// Cacheable reports whether results may be memoized. Handlers whose
	// output depends on wall-clock time must return false.
	Cacheable() bool

	// Execute runs the handler for an already-classified input.
	Execute(input string, appCtx model.AppContext) (Output, error)
}

// Registry manages the closed set of local capabilities, keyed by
// (category, action).
type Registry struct {
	caps  map[string]Capability
	names []string
}

// NewRegistry creates an empty capability registry.
func NewRegistry() *Registry {
	return &Registry{
		caps: make(map[string]Capability),
	}
}

// Register adds a capability under every pattern it declares.
func (r *Registry) Register(cap Capability) {
	for _, p := range cap.Patterns() {
		r.caps[p.key()] = cap
	}
	r.names = append(r.names, cap.Name())
}

// Get retrieves the capability for an intent, if any.
func (r *Registry) Get(category model.Category, action model.Action) (Capability, bool) {
	cap, ok := r.caps[Pattern{Category: category, Action: action}.key()]
	return cap, ok
}

// Names returns the registered capability names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// NewDefaultRegistry builds the standard capability set.
func NewDefaultRegistry(dateMath *datemath.Parser) *Registry {
	r := NewRegistry()
	r.Register(NewClock())
	r.Register(NewCalculator())
	r.Register(NewTaskShortcut(dateMath))
	r.Register(NewNavigation())
	return r
}
