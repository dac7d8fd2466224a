package game

import "github.com/lox/blackjackforbots/internal/deck"

// SplitRule decides whether a two-card hand may be split. The rule is chosen
// once per process; SameValue and SameRank are mutually exclusive.
type SplitRule func(a, b deck.Card) bool

// SameValue allows splitting when both cards have the same numeric value
// (e.g. a King and a Queen). This is the default rule.
func SameValue(a, b deck.Card) bool {
	return a.Value == b.Value
}

// SameRank allows splitting only when both cards share a rank label.
func SameRank(a, b deck.Card) bool {
	return a.Rank == b.Rank
}
