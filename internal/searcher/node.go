package searcher

import (
	"math"

	"github.com/lox/blackjackforbots/internal/game"
)

// curiosity is the UCB1 exploration constant: larger values favour
// under-explored branches over branches with the best known average.
const curiosity = 3.5

// node is one vertex of a per-decision search tree. Its path is the action
// sequence from the root; visits and total accumulate rollout statistics.
// The tree is built lazily, never pruned, and discarded after one decision.
type node struct {
	parent   *node
	path     []game.Action
	children []*node
	visits   int
	total    float64
}

// score returns the node's estimated average reward, 0 if unvisited.
func (n *node) score() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.total / float64(n.visits)
}

// ucb1 returns the node's upper confidence bound after iterations trials.
// Unvisited nodes score +Inf so selection always explores them first.
func (n *node) ucb1(iterations int) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	return n.score() + curiosity*math.Sqrt(math.Log(float64(iterations))/float64(n.visits))
}

// selectChild returns an unvisited child if one exists, otherwise the child
// with the highest ucb1. Ties keep the first child in expansion order, so
// selection is deterministic. Returns nil if the node has no children.
func (n *node) selectChild(iterations int) *node {
	var best *node
	bestBound := math.Inf(-1)
	for _, child := range n.children {
		if child.visits == 0 {
			return child
		}
		if bound := child.ucb1(iterations); bound > bestBound {
			best = child
			bestBound = bound
		}
	}
	return best
}

// expand creates one child per action, each extending this node's path.
func (n *node) expand(actions []game.Action) {
	for _, action := range actions {
		path := make([]game.Action, 0, len(n.path)+1)
		path = append(path, n.path...)
		child := &node{parent: n, path: append(path, action)}
		n.children = append(n.children, child)
	}
}

// backpropagate adds the reward to this node and every ancestor up to and
// including the root. The walk is iterative over parent links so deep trees
// cannot exhaust the stack.
func (n *node) backpropagate(reward float64) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.total += reward
		cur.visits++
	}
}

// bestAction returns the root child with the highest average reward; ties
// keep the first child in expansion order.
func (n *node) bestAction() game.Action {
	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.score() > best.score() {
			best = child
		}
	}
	return best.path[len(best.path)-1]
}
