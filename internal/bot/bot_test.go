package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/randutil"
)

func card(rank string, value float64) deck.Card {
	return deck.Card{Suit: "Hearts", Rank: rank, Value: value}
}

func TestTimidAlwaysStands(t *testing.T) {
	agent := NewTimid()
	hand := []deck.Card{card("2", 2), card("3", 3)}
	legal := []game.Action{game.Hit, game.Stand, game.DoubleDown, game.Split}
	up := []deck.Card{card("Ace", 11)}

	for i := 0; i < 5; i++ {
		assert.Equal(t, game.Stand, agent.Decide(hand, legal, up))
	}
}

func TestBasicStrategy(t *testing.T) {
	tests := []struct {
		name   string
		hand   []deck.Card
		upcard deck.Card
		want   game.Action
	}{
		{"weak dealer low hand hits", []deck.Card{card("5", 5), card("6", 6)}, card("4", 4), game.Hit},
		{"weak dealer twelve stands", []deck.Card{card("10", 10), card("2", 2)}, card("4", 4), game.Stand},
		{"weak dealer boundary at six", []deck.Card{card("10", 10), card("5", 5)}, card("6", 6), game.Stand},
		{"strong dealer sixteen hits", []deck.Card{card("10", 10), card("6", 6)}, card("10", 10), game.Hit},
		{"strong dealer seventeen stands", []deck.Card{card("10", 10), card("7", 7)}, card("10", 10), game.Stand},
		{"strong dealer boundary at seven", []deck.Card{card("10", 10), card("6", 6)}, card("7", 7), game.Hit},
		{"ace counts high against weak dealer", []deck.Card{card("Ace", 11), card("2", 2)}, card("4", 4), game.Stand},
	}

	agent := NewBasic()
	legal := []game.Action{game.Hit, game.Stand}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := agent.Decide(tc.hand, legal, []deck.Card{tc.upcard})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRandomPicksFromLegalSet(t *testing.T) {
	agent := NewRandom(randutil.New(1))
	hand := []deck.Card{card("5", 5), card("6", 6)}
	up := []deck.Card{card("9", 9)}
	legal := []game.Action{game.Hit, game.Stand, game.DoubleDown}

	seen := map[game.Action]bool{}
	for i := 0; i < 200; i++ {
		action := agent.Decide(hand, legal, up)
		assert.Contains(t, legal, action)
		seen[action] = true
	}
	// 200 uniform draws over three actions covers all of them.
	assert.Len(t, seen, 3)
}

func TestRandomIsDeterministicForSeed(t *testing.T) {
	hand := []deck.Card{card("5", 5), card("6", 6)}
	up := []deck.Card{card("9", 9)}
	legal := []game.Action{game.Hit, game.Stand, game.DoubleDown, game.Split}

	first := NewRandom(randutil.New(7))
	second := NewRandom(randutil.New(7))
	for i := 0; i < 50; i++ {
		assert.Equal(t, first.Decide(hand, legal, up), second.Decide(hand, legal, up))
	}
}
