package searcher

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/randutil"
)

const defaultTrials = 1000

// Option configures a Searcher
type Option func(*Searcher)

// WithTrials sets how many simulated rounds back each decision.
func WithTrials(trials int) Option {
	return func(s *Searcher) {
		if trials > 0 {
			s.trials = trials
		}
	}
}

// WithParallelism sets how many rollouts run concurrently per wave. With 1
// (the default) trials run strictly one after another.
func WithParallelism(workers int) Option {
	return func(s *Searcher) {
		if workers > 0 {
			s.parallelism = workers
		}
	}
}

// Searcher is the tree-search decision agent. For every decision it rebuilds
// a candidate pool of unseen cards, grows a fresh search tree over the legal
// actions, and estimates each action's value by resuming simulated rounds
// through the engine with a Rollout agent. The tree never outlives the
// decision.
//
// The searcher cannot see the real shoe or the dealer's hole card: the pool
// is the full configured deck minus the cards in its own hand and the
// dealer's visible card.
type Searcher struct {
	cards       []deck.Card
	rule        game.SplitRule
	seed        int64
	trials      int
	parallelism int
	logger      *log.Logger

	rng *rand.Rand
	bet float64
}

// New creates a searcher over the full configured deck. The seed makes every
// decision's trial sequence reproducible.
func New(cards []deck.Card, rule game.SplitRule, seed int64, logger *log.Logger, opts ...Option) *Searcher {
	s := &Searcher{
		cards:       cards,
		rule:        rule,
		seed:        seed,
		trials:      defaultTrials,
		parallelism: 1,
		logger:      logger,
		rng:         newRand(seed, 0),
		bet:         2,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset restores the tracked bet for a fresh round.
func (s *Searcher) Reset() {
	s.bet = 2
}

// Decide runs the configured number of simulation trials and returns the
// action with the best estimated average return. If that action is a double
// down the searcher doubles its tracked bet, mirroring the engine, so the
// next decision's simulations use the right stake.
func (s *Searcher) Decide(hand []deck.Card, legal []game.Action, dealerUp []deck.Card) game.Action {
	pool := s.unseen(hand, dealerUp)

	root := &node{}
	root.expand(legal)

	if s.parallelism > 1 {
		s.runWaves(root, legal, pool, hand, dealerUp)
	} else {
		s.run(root, legal, pool, hand, dealerUp)
	}

	action := root.bestAction()
	s.logger.Debug("search complete",
		"action", action, "trials", s.trials, "score", root.score())
	if action == game.DoubleDown {
		s.bet *= 2
	}
	return action
}

// run plays every trial sequentially: select a leaf, force its action path
// on the rollout agent, resume a simulated round, and backpropagate.
func (s *Searcher) run(root *node, legal []game.Action, pool, hand, dealerUp []deck.Card) {
	rollout := NewRollout(s.rng)
	engine := game.NewEngine(pool, rollout, s.rule, s.rng, simLogger())

	for i := 0; i < s.trials; i++ {
		selected := s.selectNode(root, legal, i+1)
		rollout.Reset()
		rollout.Queue(selected.path...)
		selected.backpropagate(s.resume(engine, hand, dealerUp))
	}
}

// runWaves runs trials in waves of up to parallelism rollouts. Selection and
// backpropagation stay on this goroutine; only the rollouts themselves run
// concurrently, each on its own engine and RNG, and a wave's results are
// applied before the next wave selects.
func (s *Searcher) runWaves(root *node, legal []game.Action, pool, hand, dealerUp []deck.Card) {
	rollouts := make([]*Rollout, s.parallelism)
	engines := make([]*game.Engine, s.parallelism)
	for i := range rollouts {
		rng := newRand(s.seed, i+1)
		rollouts[i] = NewRollout(rng)
		engines[i] = game.NewEngine(pool, rollouts[i], s.rule, rng, simLogger())
	}

	for done := 0; done < s.trials; {
		wave := min(s.parallelism, s.trials-done)
		selected := make([]*node, wave)
		for i := 0; i < wave; i++ {
			selected[i] = s.selectNode(root, legal, done+i+1)
			// Provisional visit so wave-mates select elsewhere; reversed
			// before the real statistics land.
			selected[i].visits++
		}

		rewards := make([]float64, wave)
		var g errgroup.Group
		for i := 0; i < wave; i++ {
			g.Go(func() error {
				rollouts[i].Reset()
				rollouts[i].Queue(selected[i].path...)
				rewards[i] = s.resume(engines[i], hand, dealerUp)
				return nil
			})
		}
		_ = g.Wait()

		for i := 0; i < wave; i++ {
			selected[i].visits--
			selected[i].backpropagate(rewards[i])
		}
		done += wave
	}
}

// selectNode descends from the root to a node with no visits, expanding any
// visited node that has not grown children yet.
func (s *Searcher) selectNode(root *node, legal []game.Action, iteration int) *node {
	selected := root.selectChild(iteration)
	for selected.visits > 0 {
		next := selected.selectChild(iteration)
		if next == nil {
			selected.expand(legal)
		} else {
			selected = next
		}
	}
	return selected
}

// resume finishes one simulated round. A round the pool cannot cover (shoe
// exhaustion on a tiny composition) counts as losing the tracked bet rather
// than aborting the decision.
func (s *Searcher) resume(engine *game.Engine, hand, dealerUp []deck.Card) float64 {
	reward, err := engine.ResumeRound(hand, dealerUp, s.bet)
	if err != nil {
		s.logger.Debug("simulated round failed", "error", err)
		return -s.bet
	}
	return reward
}

// unseen returns the full deck minus every card visible to the searcher.
// Removal is by card equality, first match; with compositions that contain
// duplicate cards this can remove a different physical card than the one
// actually held.
func (s *Searcher) unseen(hand, dealerUp []deck.Card) []deck.Card {
	pool := make([]deck.Card, len(s.cards))
	copy(pool, s.cards)
	for _, seen := range hand {
		pool = removeFirst(pool, seen)
	}
	for _, seen := range dealerUp {
		pool = removeFirst(pool, seen)
	}
	return pool
}

func removeFirst(cards []deck.Card, target deck.Card) []deck.Card {
	for i, c := range cards {
		if c.Equal(target) {
			return append(cards[:i], cards[i+1:]...)
		}
	}
	return cards
}

func newRand(seed int64, stream int) *rand.Rand {
	return randutil.New(randutil.Derive(seed, stream))
}

func simLogger() *log.Logger {
	return log.New(io.Discard)
}
