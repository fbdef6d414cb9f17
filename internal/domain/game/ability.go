package game

import "fmt"

type AbilityType string

const (
	AbilityPassive  AbilityType = "passive"
	AbilityOnAttack AbilityType = "on_attack"
	AbilityOnDefend AbilityType = "on_defend"
	AbilityOnMove   AbilityType = "on_move"
	AbilityOnTurn   AbilityType = "on_turn"
	AbilityActive   AbilityType = "active"
)

type AbilityCategory string

const (
	AbilityCategoryUnit     AbilityCategory = "unit"
	AbilityCategoryBuilding AbilityCategory = "building"
)

// ContextPhase tells an ability which hook point it is running at.
type ContextPhase string

const (
	ContextGameplay ContextPhase = "gameplay"
	ContextEndTurn  ContextPhase = "end_turn"
)

// AbilityContext is the mutable scratchpad shared by every ability fired
// for one trigger. BaseDamage/BaseDefense and Resources are working values:
// abilities rewrite them in place and the caller reads them back after
// execution.
type AbilityContext struct {
	Unit     *Unit
	Building *Building
	Target   *Unit
	State    *State

	Action ActionType
	Phase  ContextPhase

	BaseDamage  int
	BaseDefense int
	Distance    int
	TurnNumber  int

	Resources map[string]int
}

// Effect is the structured outcome one ability reports back.
type Effect map[string]any

type Ability interface {
	Type() AbilityType
	Description() string
	CanApply(ctx *AbilityContext) bool
	Apply(ctx *AbilityContext) (Effect, error)
}

type AbilityFailure struct {
	ID  string `json:"id"`
	Err string `json:"error"`
}

// AbilityReport collects what happened across one Execute call. A failed
// ability never aborts the remaining ones.
type AbilityReport struct {
	Applied []string
	Failed  []AbilityFailure
	Effects map[string]Effect
}

type registryEntry struct {
	ability  Ability
	category AbilityCategory
}

// Registry is the string-keyed ability catalog. Execution order is
// registration order, so catalog assembly decides precedence.
type Registry struct {
	order   []string
	entries map[string]registryEntry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registryEntry)}
}

// Register binds an id. Re-registering an id replaces the ability but keeps
// its original position.
func (r *Registry) Register(id string, cat AbilityCategory, a Ability) {
	if _, ok := r.entries[id]; !ok {
		r.order = append(r.order, id)
	}
	r.entries[id] = registryEntry{ability: a, category: cat}
}

func (r *Registry) Get(id string) (Ability, bool) {
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return e.ability, true
}

func (r *Registry) Category(id string) (AbilityCategory, bool) {
	e, ok := r.entries[id]
	if !ok {
		return "", false
	}
	return e.category, true
}

// IDs lists registered ids for a category in registration order.
func (r *Registry) IDs(cat AbilityCategory) []string {
	var out []string
	for _, id := range r.order {
		if r.entries[id].category == cat {
			out = append(out, id)
		}
	}
	return out
}

// Execute runs the given ability ids against the context. Ids are visited
// in registry registration order regardless of the order in ids; unknown
// ids are skipped silently. A panic or error inside one ability is recorded
// as a failure and the rest still run.
func (r *Registry) Execute(ids []string, ctx *AbilityContext) AbilityReport {
	report := AbilityReport{Effects: make(map[string]Effect)}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for _, id := range r.order {
		if !want[id] {
			continue
		}
		r.runOne(id, ctx, &report)
	}
	return report
}

func (r *Registry) runOne(id string, ctx *AbilityContext, report *AbilityReport) {
	defer func() {
		if rec := recover(); rec != nil {
			report.Failed = append(report.Failed, AbilityFailure{ID: id, Err: fmt.Sprintf("panic: %v", rec)})
		}
	}()
	a := r.entries[id].ability
	if !a.CanApply(ctx) {
		return
	}
	effect, err := a.Apply(ctx)
	if err != nil {
		report.Failed = append(report.Failed, AbilityFailure{ID: id, Err: err.Error()})
		return
	}
	report.Applied = append(report.Applied, id)
	if effect != nil {
		report.Effects[id] = effect
	}
}
