package exprcat

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"gridwar/internal/domain/game"
)

// ConditionEnv is the evaluation environment a definition's condition runs
// against. Fields are flattened from the ability context so conditions
// read naturally: `Action == "attack_unit" && HasMoved`.
type ConditionEnv struct {
	Action               string
	Phase                string
	HasMoved             bool
	HasAttacked          bool
	IsFortified          bool
	HasTarget            bool
	TargetDamaged        bool
	ConstructionComplete bool
	Distance             int
	Turn                 int
	BaseDamage           int
	BaseDefense          int
}

func envFromContext(ctx *game.AbilityContext) ConditionEnv {
	env := ConditionEnv{
		Action:      string(ctx.Action),
		Phase:       string(ctx.Phase),
		HasTarget:   ctx.Target != nil,
		Distance:    ctx.Distance,
		Turn:        ctx.TurnNumber,
		BaseDamage:  ctx.BaseDamage,
		BaseDefense: ctx.BaseDefense,
	}
	if ctx.Unit != nil {
		env.HasMoved = ctx.Unit.HasMoved
		env.HasAttacked = ctx.Unit.HasAttacked
		env.IsFortified = ctx.Unit.IsFortified
	}
	if ctx.Target != nil {
		env.TargetDamaged = ctx.Target.Stats.Health < ctx.Target.Stats.MaxHealth
	}
	if ctx.Building != nil {
		env.ConstructionComplete = ctx.Building.ConstructionComplete
	}
	return env
}

// Definition is a data-defined ability: a compiled condition gate plus
// declarative modifiers applied to the context's working values.
type Definition struct {
	ID          string
	Category    game.AbilityCategory
	Type        game.AbilityType
	Description string

	// Condition is an expr source over ConditionEnv; empty means always
	// applicable.
	Condition string

	DamageMultiplier   float64
	DefenseMultiplier  float64
	ResourceMultiplier float64

	// Effects are static entries reported back verbatim.
	Effects map[string]any
}

type exprAbility struct {
	def     Definition
	program *vm.Program
}

// compile turns a definition into a registrable ability, compiling the
// condition once.
func compile(def Definition) (*exprAbility, error) {
	a := &exprAbility{def: def}
	if def.Condition != "" {
		program, err := expr.Compile(def.Condition, expr.Env(ConditionEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("ability %s: compile condition: %w", def.ID, err)
		}
		a.program = program
	}
	return a, nil
}

func (a *exprAbility) Type() game.AbilityType { return a.def.Type }

func (a *exprAbility) Description() string { return a.def.Description }

func (a *exprAbility) CanApply(ctx *game.AbilityContext) bool {
	if a.program == nil {
		return true
	}
	out, err := expr.Run(a.program, envFromContext(ctx))
	if err != nil {
		return false
	}
	ok, _ := out.(bool)
	return ok
}

func (a *exprAbility) Apply(ctx *game.AbilityContext) (game.Effect, error) {
	effect := game.Effect{}
	if a.def.DamageMultiplier > 0 {
		before := ctx.BaseDamage
		ctx.BaseDamage = int(float64(ctx.BaseDamage) * a.def.DamageMultiplier)
		effect["damage_before"] = before
		effect["damage_after"] = ctx.BaseDamage
	}
	if a.def.DefenseMultiplier > 0 {
		before := ctx.BaseDefense
		ctx.BaseDefense = int(float64(ctx.BaseDefense) * a.def.DefenseMultiplier)
		effect["defense_before"] = before
		effect["defense_after"] = ctx.BaseDefense
	}
	if a.def.ResourceMultiplier > 0 && ctx.Resources != nil {
		for kind, amount := range ctx.Resources {
			ctx.Resources[kind] = int(float64(amount) * a.def.ResourceMultiplier)
		}
		effect["resource_multiplier"] = a.def.ResourceMultiplier
	}
	for k, v := range a.def.Effects {
		effect[k] = v
	}
	if len(effect) == 0 {
		return nil, nil
	}
	return effect, nil
}
