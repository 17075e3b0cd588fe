package parse

import (
	"fmt"

	"github.com/dekarrin/gampa/gamma"
	"github.com/dekarrin/gampa/lex"
	"github.com/dekarrin/gampa/symbol"
)

// ActionKind tags the variant of an Action.
type ActionKind int

const (
	ActionShift ActionKind = iota
	ActionReduce
	ActionAccept
	// ActionBranching defers the actual choice of action to a BranchSelector
	// evaluated against the live runtime stacks, e.g. to encode a precedence
	// decision that depends on more than just the two conflicting actions.
	ActionBranching
)

func (k ActionKind) String() string {
	switch k {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	case ActionBranching:
		return "branching"
	default:
		return "unknown"
	}
}

// BranchContext is the runtime state a BranchSelector is evaluated against:
// the incoming lookahead and the live state/symbol/data stacks, oldest
// first.
type BranchContext struct {
	Token    lex.Token
	Terminal *symbol.Symbol
	States   []int
	Symbols  []*symbol.Symbol
	Data     []any
}

// BranchSelector resolves a Branching action to a concrete action given the
// current parse context. It returns ok == false if no branch applies, which
// the driver reports as gampaerr.ErrNoBranch.
type BranchSelector func(ctx *BranchContext) (Action, bool)

// Action is one entry of the parser's action table.
type Action struct {
	Kind     ActionKind
	To       int                 // shift target state, when Kind == ActionShift
	Rule     *gamma.CompiledRule // rule to reduce, when Kind == ActionReduce
	Selector BranchSelector      // resolver, when Kind == ActionBranching
}

func (a Action) String() string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("shift %d", a.To)
	case ActionReduce:
		return fmt.Sprintf("reduce %s", a.Rule.Rule.Head)
	case ActionAccept:
		return "accept"
	case ActionBranching:
		return "branching"
	default:
		return "error"
	}
}

func actionsEqual(a, b Action) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ActionShift:
		return a.To == b.To
	case ActionReduce:
		return a.Rule.Rule.ID == b.Rule.Rule.ID
	case ActionBranching:
		// function values are never comparable; treat every pair of
		// branching actions as distinct so a conflict solver is always
		// consulted again rather than silently picking one.
		return false
	default:
		return true
	}
}

// ConflictSolver resolves a table-build-time conflict between two actions
// that would otherwise both apply on the same lookahead terminal. Builders
// that don't register one get the default: shift wins over reduce, and the
// lowest-id rule wins a reduce/reduce conflict, matching conventional yacc
// behavior.
type ConflictSolver interface {
	Resolve(onTerminal *symbol.Symbol, a, b Action) (Action, error)
}

// DefaultConflictSolver implements ConflictSolver's conventional fallback:
// shift/reduce resolves to shift, reduce/reduce resolves to the lower rule
// id, and shift/shift or accept/anything is reported as an error (it should
// never arise from a correctly built collection).
type DefaultConflictSolver struct{}

func (DefaultConflictSolver) Resolve(onTerminal *symbol.Symbol, a, b Action) (Action, error) {
	if a.Kind == ActionShift && b.Kind == ActionReduce {
		return a, nil
	}
	if b.Kind == ActionShift && a.Kind == ActionReduce {
		return b, nil
	}
	if a.Kind == ActionReduce && b.Kind == ActionReduce {
		if a.Rule.Rule.ID <= b.Rule.Rule.ID {
			return a, nil
		}
		return b, nil
	}
	return Action{}, fmt.Errorf("unresolvable conflict on terminal %s between %s and %s", onTerminal, a, b)
}
