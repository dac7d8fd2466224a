package bot

import (
	rand "math/rand/v2"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// Random picks uniformly among the legal actions. It is the baseline every
// other agent gets compared against.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random agent drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Decide returns a uniformly random legal action
func (r *Random) Decide(hand []deck.Card, legal []game.Action, dealerUp []deck.Card) game.Action {
	return legal[r.rng.IntN(len(legal))]
}

// Reset is a no-op; the random agent carries no round state
func (r *Random) Reset() {}
