package bot

import (
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// Timid always stands, never taking another card.
type Timid struct{}

// NewTimid creates a timid agent
func NewTimid() *Timid {
	return &Timid{}
}

// Decide always stands
func (t *Timid) Decide(hand []deck.Card, legal []game.Action, dealerUp []deck.Card) game.Action {
	return game.Stand
}

// Reset is a no-op
func (t *Timid) Reset() {}
