package searcher

import (
	rand "math/rand/v2"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// Rollout is the agent that finishes simulated rounds for the searcher. It
// replays a queue of forced actions (the tree path under evaluation) and then
// plays uniformly at random, recording every action it takes so the first
// move of a rollout can be attributed to its tree branch.
type Rollout struct {
	rng    *rand.Rand
	queued []game.Action
	record []game.Action
}

// NewRollout creates a rollout agent drawing randomness from rng.
func NewRollout(rng *rand.Rand) *Rollout {
	return &Rollout{rng: rng}
}

// Queue appends forced actions to be replayed before random play resumes.
func (r *Rollout) Queue(actions ...game.Action) {
	r.queued = append(r.queued, actions...)
}

// Decide pops the next forced action if any remain, otherwise picks uniformly
// from the legal set. Every returned action is recorded.
func (r *Rollout) Decide(hand []deck.Card, legal []game.Action, dealerUp []deck.Card) game.Action {
	var action game.Action
	if len(r.queued) > 0 {
		action = r.queued[0]
		r.queued = r.queued[1:]
	} else {
		action = legal[r.rng.IntN(len(legal))]
	}
	r.record = append(r.record, action)
	return action
}

// Actions returns the actions taken since the last Reset.
func (r *Rollout) Actions() []game.Action {
	return r.record
}

// Reset clears the forced queue and the action record for the next trial.
func (r *Rollout) Reset() {
	r.queued = r.queued[:0]
	r.record = r.record[:0]
}
