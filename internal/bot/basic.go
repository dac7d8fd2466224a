package bot

import (
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// Basic plays simple basic strategy keyed off the dealer's upcard: a dealer
// showing less than 7 is more likely to bust, so we only hit below 12; a
// dealer showing 7 or more is likely to stand high, so we hit below 17.
type Basic struct{}

// NewBasic creates a basic-strategy agent
func NewBasic() *Basic {
	return &Basic{}
}

// Decide hits or stands per the upcard thresholds
func (b *Basic) Decide(hand []deck.Card, legal []game.Action, dealerUp []deck.Card) game.Action {
	value := game.HandValue(hand)
	if dealerUp[0].Value < 7 {
		if value < 12 {
			return game.Hit
		}
		return game.Stand
	}
	if value < 17 {
		return game.Hit
	}
	return game.Stand
}

// Reset is a no-op
func (b *Basic) Reset() {}
