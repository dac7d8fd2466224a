package deck

import "fmt"

// Card represents a playing card. Rank is a label rather than an enum because
// compositions may invent ranks (a "Fool" worth 12, a "1.5") that no fixed
// rank set covers, and Value is a float64 for the same reason.
type Card struct {
	Suit  string
	Rank  string
	Value float64
}

// NewCard creates a new card
func NewCard(suit, rank string, value float64) Card {
	return Card{Suit: suit, Rank: rank, Value: value}
}

// String returns the string representation of a card (e.g., "Ace of Spades")
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Equal reports whether two cards are the same suit and rank. Two physically
// distinct cards of the same suit and rank compare equal.
func (c Card) Equal(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == "Ace"
}
