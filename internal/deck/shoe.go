package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrShoeExhausted is returned by Draw when no cards remain. The shoe is never
// replenished mid-round, so an unusually long hand on a small composition can
// run it dry; the engine aborts only that round.
var ErrShoeExhausted = errors.New("shoe exhausted")

// Shoe is the shuffled, consumable card sequence one round deals from. It is
// exclusively owned by a single engine round and consumed front-to-back.
type Shoe struct {
	cards []Card
}

// NewShoe copies and shuffles the given cards using the provided RNG.
func NewShoe(cards []Card, rng *rand.Rand) *Shoe {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return &Shoe{cards: shuffled}
}

// NewOrderedShoe builds a shoe that deals the given cards in order, without
// shuffling. Used by tests that need a pinned deal sequence.
func NewOrderedShoe(cards []Card) *Shoe {
	ordered := make([]Card, len(cards))
	copy(ordered, cards)
	return &Shoe{cards: ordered}
}

// Draw removes and returns the front card.
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrShoeExhausted
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the shoe.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}
