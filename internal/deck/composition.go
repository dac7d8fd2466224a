package deck

import (
	rand "math/rand/v2"
	"sort"
	"strings"
)

// RankSpec pairs a rank label with its numeric value.
type RankSpec struct {
	Label string
	Value float64
}

// Composition describes which cards a deck is built from: a suit list crossed
// with a rank list. The same composition is used both as the shoe template for
// real rounds and as the full-deck reference the search agent subtracts seen
// cards from.
type Composition struct {
	Name  string
	Suits []string
	Ranks []RankSpec
}

// Cards materialises the full card list, suits crossed with ranks in
// declaration order.
func (c Composition) Cards() []Card {
	cards := make([]Card, 0, len(c.Suits)*len(c.Ranks))
	for _, suit := range c.Suits {
		for _, rank := range c.Ranks {
			cards = append(cards, NewCard(suit, rank.Label, rank.Value))
		}
	}
	return cards
}

var standardSuits = []string{"Hearts", "Spades", "Clubs", "Diamonds"}

var standardRanks = []RankSpec{
	{"2", 2}, {"3", 3}, {"4", 4}, {"5", 5}, {"6", 6}, {"7", 7}, {"8", 8},
	{"9", 9}, {"10", 10}, {"Jack", 10}, {"Queen", 10}, {"King", 10}, {"Ace", 11},
}

// Compositions builds the named deck composition registry. The rng drives the
// "random" preset's rank sampling; callers construct the registry once at
// startup and pass it down rather than relying on package-level state.
func Compositions(rng *rand.Rand) map[string]Composition {
	return map[string]Composition{
		"default": {
			Name:  "default",
			Suits: standardSuits,
			Ranks: standardRanks,
		},
		"high": {
			Name:  "high",
			Suits: standardSuits,
			Ranks: []RankSpec{{"2", 2}, {"10", 10}, {"Ace", 11}, {"Fool", 12}},
		},
		"low": {
			Name:  "low",
			Suits: []string{"Hearts", "Spades", "Clubs", "Diamonds", "Swords", "Wands", "Bows"},
			Ranks: []RankSpec{{"1.5", 1.5}, {"2", 2}, {"2.2", 2.2}, {"3", 3}, {"3", 4}, {"Ace", 11}},
		},
		"even": {
			Name:  "even",
			Suits: standardSuits,
			Ranks: []RankSpec{{"2", 2}, {"4", 4}, {"6", 6}, {"8", 8}, {"10", 10}, {"Jack", 10}, {"Queen", 10}, {"King", 10}},
		},
		"odd": {
			Name:  "odd",
			Suits: standardSuits,
			Ranks: []RankSpec{{"3", 3}, {"5", 5}, {"7", 7}, {"9", 9}, {"Ace", 11}},
		},
		"red": {
			Name:  "red",
			Suits: []string{"Diamonds", "Hearts"},
			Ranks: standardRanks,
		},
		"random": {
			Name:  "random",
			Suits: standardSuits,
			Ranks: sampleRanks(rng),
		},
	}
}

// sampleRanks picks between 5 and 13 ranks from the standard rank set
func sampleRanks(rng *rand.Rand) []RankSpec {
	n := 5 + rng.IntN(len(standardRanks)-4)
	perm := rng.Perm(len(standardRanks))
	ranks := make([]RankSpec, 0, n)
	for _, i := range perm[:n] {
		ranks = append(ranks, standardRanks[i])
	}
	return ranks
}

// Names returns the registry's keys sorted, for inclusion in error messages.
func Names(compositions map[string]Composition) []string {
	names := make([]string, 0, len(compositions))
	for name := range compositions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamesString renders the registry keys as a comma-separated list.
func NamesString(compositions map[string]Composition) string {
	return strings.Join(Names(compositions), ", ")
}
