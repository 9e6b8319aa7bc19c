package rules

import (
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/tactician/model"
)

// ActionFunc picks a move once a rule's condition holds. ok=false means the
// rule has nothing to offer this turn and the next rule gets a chance.
type ActionFunc func(env RuleEnv) (action model.Action, ok bool)

// Rule is one decision tier: a condition → action pair.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	ConditionSrc string      // expr source
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
