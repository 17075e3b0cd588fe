package parse

import (
	"fmt"

	"github.com/dekarrin/gampa/gampaerr"
	"github.com/dekarrin/gampa/symbol"
	"github.com/dekarrin/rosed"
)

// Table is a fully-synthesized parser: one action map and one goto map per
// canonical-collection state.
type Table struct {
	Grammar *Grammar
	Action  []map[*symbol.Symbol]Action
	Goto    []map[*symbol.Symbol]int
}

// BuildTable synthesizes a Table from a closed canonical Collection,
// resolving any shift/reduce or reduce/reduce conflicts with solver. A nil
// solver uses DefaultConflictSolver.
func BuildTable(g *Grammar, coll *Collection, solver ConflictSolver) (*Table, error) {
	if solver == nil {
		solver = DefaultConflictSolver{}
	}

	t := &Table{
		Grammar: g,
		Action:  make([]map[*symbol.Symbol]Action, len(coll.Nodes)),
		Goto:    make([]map[*symbol.Symbol]int, len(coll.Nodes)),
	}

	for _, n := range coll.Nodes {
		acts := map[*symbol.Symbol]Action{}
		for sym, to := range n.terminals {
			acts[sym] = Action{Kind: ActionShift, To: to}
		}

		for it, la := range n.items {
			if !it.rule.Forward.IsAccepting(it.state) {
				continue
			}
			var act Action
			if it.rule.Rule.Head == g.Start {
				act = Action{Kind: ActionAccept}
			} else {
				act = Action{Kind: ActionReduce, Rule: it.rule}
			}
			for term := range la {
				existing, conflict := acts[term]
				if conflict && !actionsEqual(existing, act) {
					resolved, err := solver.Resolve(term, existing, act)
					if err != nil {
						return nil, gampaerr.WrapBuildf(err, "state %d", n.id)
					}
					acts[term] = resolved
				} else {
					acts[term] = act
				}
			}
		}

		t.Action[n.id] = acts
		t.Goto[n.id] = n.nonterms
	}

	return t, nil
}

// String renders the action and goto tables as text, one row per state,
// using the same table-rendering call the rest of this corpus's parser
// generators use for debug dumps.
func (t *Table) String() string {
	headers := []string{"state", "action", "goto"}
	var rows [][]string
	for i, acts := range t.Action {
		var actStr, gotoStr string
		for sym, a := range acts {
			actStr += fmt.Sprintf("%s:%s  ", sym, a)
		}
		for sym, to := range t.Goto[i] {
			gotoStr += fmt.Sprintf("%s:%d  ", sym, to)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i), actStr, gotoStr})
	}

	data := make([][]string, len(rows)+1)
	data[0] = headers
	copy(data[1:], rows)

	return rosed.Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{TableHeaders: true, NoTrailingLineSeparators: true}).
		String()
}
