package game

import "github.com/lox/blackjackforbots/internal/deck"

// HandValue returns the best non-busting total for the hand. Aces count as 11
// and are downgraded to 1 one at a time while the total exceeds 21.
func HandValue(hand []deck.Card) float64 {
	total := 0.0
	aces := 0
	for _, c := range hand {
		total += c.Value
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}
