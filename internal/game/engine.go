package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjackforbots/internal/deck"
)

// Engine runs blackjack rounds for a single player seat against the house
// dealer. It owns the shoe for the duration of one round and solicits every
// player decision from the configured Agent.
//
// Rounds can start fresh (PlayRound) or resume from a partial state supplied
// by a caller (ResumeRound); the search agent uses the latter to drive nested
// simulated rounds through the same state machine.
type Engine struct {
	template []deck.Card
	player   Agent
	dealer   Agent
	rule     SplitRule
	rng      *rand.Rand
	logger   *log.Logger

	shoe        *deck.Shoe
	dealerCards []deck.Card
	bet         float64
}

// NewEngine creates an engine that deals rounds from shuffled copies of the
// template card list. The template is treated as read-only.
func NewEngine(template []deck.Card, player Agent, rule SplitRule, rng *rand.Rand, logger *log.Logger) *Engine {
	return &Engine{
		template: template,
		player:   player,
		dealer:   dealerAgent{},
		rule:     rule,
		rng:      rng,
		logger:   logger,
	}
}

// PlayRound plays one full round from a fresh shuffle: two cards to the
// player, two to the dealer (the second face down), then the shared
// play/settle logic. It returns the player's net reward for the round.
func (e *Engine) PlayRound() (float64, error) {
	return e.playFresh(deck.NewShoe(e.template, e.rng))
}

// playFresh is the fresh-round body, split out so tests can supply an
// ordered shoe.
func (e *Engine) playFresh(shoe *deck.Shoe) (float64, error) {
	e.shoe = shoe
	e.dealerCards = nil
	e.bet = 2
	e.player.Reset()
	e.dealer.Reset()

	playerCards := make([]deck.Card, 0, 2)
	for i := 0; i < 2; i++ {
		var err error
		if playerCards, err = e.deal(playerCards, "player", true); err != nil {
			return 0, err
		}
		// The dealer's second card is the hole card: dealt, not narrated.
		if e.dealerCards, err = e.deal(e.dealerCards, "dealer", i < 1); err != nil {
			return 0, err
		}
	}
	return e.playRound(playerCards)
}

// ResumeRound continues a partially played round: the player already holds
// playerCards, the dealer shows dealerUp, and bet is the round's current bet.
// The dealer is topped up to two cards if fewer were supplied.
//
// The template this engine was built over must already exclude the cards in
// playerCards and dealerUp, otherwise a card can be dealt twice; the engine
// does not detect duplicates. The supplied slices are copied, never mutated.
func (e *Engine) ResumeRound(playerCards, dealerUp []deck.Card, bet float64) (float64, error) {
	e.shoe = deck.NewShoe(e.template, e.rng)
	e.bet = bet

	hand := make([]deck.Card, len(playerCards))
	copy(hand, playerCards)
	e.dealerCards = make([]deck.Card, len(dealerUp))
	copy(e.dealerCards, dealerUp)

	for len(e.dealerCards) < 2 {
		var err error
		if e.dealerCards, err = e.deal(e.dealerCards, "dealer", true); err != nil {
			return 0, err
		}
	}
	return e.playRound(hand)
}

// playRound runs the player's hand(s) to completion, then the dealer's, and
// settles every final player hand against the dealer total.
func (e *Engine) playRound(playerCards []deck.Card) (float64, error) {
	piles, err := e.playHand(e.player, "player", playerCards, true)
	if err != nil {
		return 0, err
	}

	e.logger.Info("dealer reveals",
		"card", e.dealerCards[len(e.dealerCards)-1].String(),
		"value", HandValue(e.dealerCards))

	dealerPiles, err := e.playHand(e.dealer, "dealer", e.dealerCards, true)
	if err != nil {
		return 0, err
	}
	e.dealerCards = dealerPiles[0]

	total := 0.0
	for _, pile := range piles {
		total += e.settle(pile)
	}
	e.logger.Info("round settled", "bet", e.bet, "reward", total)
	return total, nil
}

// playHand runs the per-hand action loop for one participant until they
// stand, double down, or reach 21 or more. A split produces two child hands
// played independently with splitting disabled, and returns both.
func (e *Engine) playHand(agent Agent, name string, hand []deck.Card, canSplit bool) ([][]deck.Card, error) {
	for HandValue(hand) < 21 {
		legal := []Action{Hit, Stand}
		if len(hand) == 2 {
			legal = append(legal, DoubleDown)
			if canSplit && e.rule(hand[0], hand[1]) {
				legal = append(legal, Split)
			}
		}

		action := agent.Decide(hand, legal, e.dealerCards[:1])
		if !containsAction(legal, action) {
			// Tolerate buggy agents: ignore the action and ask again.
			e.logger.Debug("ignoring illegal action", "name", name, "action", action)
			continue
		}
		e.logger.Info("action", "name", name, "does", action)

		switch action {
		case Stand:
			return [][]deck.Card{hand}, nil
		case Hit:
			var err error
			if hand, err = e.deal(hand, name, true); err != nil {
				return nil, err
			}
		case DoubleDown:
			var err error
			if hand, err = e.deal(hand, name, true); err != nil {
				return nil, err
			}
			e.bet *= 2
			return [][]deck.Card{hand}, nil
		case Split:
			first := []deck.Card{hand[0]}
			second := []deck.Card{hand[1]}
			e.logger.Info("split", "name", name,
				"hand 1", first[0].String(), "hand 2", second[0].String())

			firstPiles, err := e.playHand(agent, name, first, false)
			if err != nil {
				return nil, err
			}
			secondPiles, err := e.playHand(agent, name, second, false)
			if err != nil {
				return nil, err
			}
			return append(firstPiles, secondPiles...), nil
		}
	}
	e.logger.Info("hand ends", "name", name, "value", HandValue(hand))
	return [][]deck.Card{hand}, nil
}

// deal draws the next card into the given hand. Non-public deals (the
// dealer's hole card) are not narrated.
func (e *Engine) deal(hand []deck.Card, name string, public bool) ([]deck.Card, error) {
	card, err := e.shoe.Draw()
	if err != nil {
		return nil, fmt.Errorf("dealing to %s: %w", name, err)
	}
	if public {
		e.logger.Info("draws", "name", name, "card", card.String())
	}
	return append(hand, card), nil
}

// settle computes the net reward for one final player hand. Blackjack pays
// 3:2. The branch ordering is deliberate and load-bearing: the win check runs
// before the push check, and the push excludes two-card 21s, so a player
// natural tying a dealer 21 loses rather than pushes.
func (e *Engine) settle(hand []deck.Card) float64 {
	playerValue := HandValue(hand)
	dealerValue := HandValue(e.dealerCards)

	if playerValue > 21 {
		return -e.bet
	}
	result := -e.bet
	if playerValue > dealerValue || dealerValue > 21 {
		if playerValue == 21 && len(hand) == 2 {
			result = 1.5 * e.bet
		} else {
			result = e.bet
		}
	}
	if playerValue == dealerValue && !(playerValue == 21 && len(hand) == 2) {
		result = 0
	}
	return result
}
