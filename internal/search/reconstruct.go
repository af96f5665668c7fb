package search

import "sokoplan.ai/internal/state"

// edge records how a state was first reached: its predecessor plus the
// action label. Keyed by canonical key; reconstruction only ever needs the
// winning path.
type edge struct {
	prev   state.State
	action string
}

// reconstruct walks backwards from goal through the predecessor map and
// returns the actions in forward order. The walk stops at the first state
// with no recorded predecessor (the search root).
func reconstruct(cameFrom map[string]edge, goal state.State) []string {
	var plan []string
	cur := goal
	for {
		e, ok := cameFrom[cur.Key()]
		if !ok {
			break
		}
		plan = append(plan, e.action)
		cur = e.prev
	}
	reverse(plan)
	return plan
}

// segment is reconstruct bounded at an explicit root, used by enforced hill
// climbing where each round reconstructs only back to that round's start.
func segment(cameFrom map[string]edge, root, to state.State) []string {
	rootKey := root.Key()
	var actionsBack []string
	cur := to
	for cur.Key() != rootKey {
		e, ok := cameFrom[cur.Key()]
		if !ok {
			break
		}
		actionsBack = append(actionsBack, e.action)
		cur = e.prev
	}
	reverse(actionsBack)
	return actionsBack
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
