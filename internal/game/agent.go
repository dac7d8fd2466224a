package game

import "github.com/lox/blackjackforbots/internal/deck"

// Agent represents any entity (human or AI) that can decide on an action for
// a hand. Agents receive read-only state and must return one of the legal
// actions; the engine treats anything else as a non-fatal protocol violation
// and asks again. Agents must not mutate the slices they are given.
type Agent interface {
	// Decide picks an action given the hand's cards, the legal action set,
	// and the dealer's visible card(s).
	Decide(hand []deck.Card, legal []Action, dealerUp []deck.Card) Action

	// Reset is called at the start of each fresh round so stateful agents
	// (tracked bets, action history) can start clean.
	Reset()
}

// dealerAgent is the house strategy: hit below 17, otherwise stand.
type dealerAgent struct{}

func (dealerAgent) Decide(hand []deck.Card, legal []Action, dealerUp []deck.Card) Action {
	if HandValue(hand) < 17 {
		return Hit
	}
	return Stand
}

func (dealerAgent) Reset() {}
